package season

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fortuna/janus/internal/cache"
	"github.com/fortuna/janus/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore implements KeyValueStore in memory
type memoryStore struct {
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memoryStore) Get(ctx context.Context, key string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return "", cache.ErrMiss
	}
	return v, nil
}

func (m *memoryStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

// countingLookup counts calls to the wrapped source
type countingLookup struct {
	record stats.SeasonRecord
	err    error
	calls  int
}

func (c *countingLookup) LookupPlayerSeason(ctx context.Context, fullName string) (stats.SeasonRecord, error) {
	c.calls++
	if c.err != nil {
		return stats.SeasonRecord{}, c.err
	}
	return c.record, nil
}

func sampleRecord() stats.SeasonRecord {
	var totals stats.Totals
	totals[stats.GamesPlayed] = 74
	totals[stats.Points] = 2183
	totals[stats.Assists] = 730
	var ratios stats.RatioValues
	ratios[stats.FieldGoalPct] = 0.583
	return stats.SeasonRecord{PlayerID: 3, PlayerName: "Nikola Jokic", Season: "2024-25", Totals: totals, Ratios: ratios}
}

func TestCachedLookup_MissThenHit(t *testing.T) {
	next := &countingLookup{record: sampleRecord()}
	store := newMemoryStore()
	c := NewCachedLookup(next, store, time.Hour)

	first, err := c.LookupPlayerSeason(context.Background(), "Nikola Jokic")
	require.NoError(t, err)
	assert.Equal(t, 1, next.calls)
	assert.Contains(t, store.data, "janus:season:nikola jokic")
	assert.Equal(t, time.Hour, store.ttls["janus:season:nikola jokic"])

	second, err := c.LookupPlayerSeason(context.Background(), " NIKOLA JOKIC ")
	require.NoError(t, err)
	assert.Equal(t, 1, next.calls, "second lookup is served from cache")
	assert.Equal(t, first, second)
}

func TestCachedLookup_ErrorsAreNotCached(t *testing.T) {
	notFound := &stats.PlayerNotFoundError{Name: "Ghost", Reason: stats.ReasonNoMatch}
	next := &countingLookup{err: notFound}
	store := newMemoryStore()
	c := NewCachedLookup(next, store, time.Hour)

	for i := 0; i < 2; i++ {
		_, err := c.LookupPlayerSeason(context.Background(), "Ghost")
		var nf *stats.PlayerNotFoundError
		require.ErrorAs(t, err, &nf)
	}

	assert.Equal(t, 2, next.calls)
	assert.Empty(t, store.data)
}

func TestCachedLookup_StoreFailuresFallThrough(t *testing.T) {
	next := &countingLookup{record: sampleRecord()}
	store := newMemoryStore()
	store.getErr = errors.New("redis down")
	store.setErr = errors.New("redis down")

	record, err := NewCachedLookup(next, store, time.Minute).LookupPlayerSeason(context.Background(), "Nikola Jokic")
	require.NoError(t, err)
	assert.Equal(t, sampleRecord(), record)
	assert.Equal(t, 1, next.calls)
}

func TestCachedLookup_CorruptEntry(t *testing.T) {
	next := &countingLookup{record: sampleRecord()}
	store := newMemoryStore()
	store.data["janus:season:nikola jokic"] = "{not json"

	record, err := NewCachedLookup(next, store, time.Minute).LookupPlayerSeason(context.Background(), "Nikola Jokic")
	require.NoError(t, err)
	assert.Equal(t, sampleRecord(), record)
	assert.Equal(t, 1, next.calls)
	assert.NotEqual(t, "{not json", store.data["janus:season:nikola jokic"], "entry is rewritten")
}
