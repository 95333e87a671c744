package stats

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seasonRecord(gp float64) SeasonRecord {
	var totals Totals
	totals[GamesPlayed] = gp
	totals[GamesStarted] = 60
	totals[Minutes] = 2400
	totals[FieldGoalsMade] = 700
	totals[FieldGoalsAttempted] = 1400
	totals[ThreePointersMade] = 150
	totals[ThreePointersAttempted] = 400
	totals[FreeThrowsMade] = 300
	totals[FreeThrowsAttempted] = 360
	totals[OffensiveRebounds] = 80
	totals[DefensiveRebounds] = 400
	totals[Rebounds] = 480
	totals[Assists] = 500
	totals[Steals] = 90
	totals[Blocks] = 40
	totals[Turnovers] = 250
	totals[PersonalFouls] = 120
	totals[Points] = 1850

	var ratios RatioValues
	ratios[FieldGoalPct] = 0.5
	ratios[ThreePointPct] = 0.375
	ratios[FreeThrowPct] = 0.833

	return SeasonRecord{PlayerID: 7, PlayerName: "Test Guard", Season: "2024-25", Totals: totals, Ratios: ratios}
}

func TestNormalize(t *testing.T) {
	record := seasonRecord(80)

	profile, err := Normalize(record)
	require.NoError(t, err)

	assert.Equal(t, 7, profile.PlayerID)
	assert.Equal(t, "Test Guard", profile.PlayerName)
	assert.Equal(t, "2024-25", profile.Season)

	for _, c := range Countables() {
		want := record.Totals[c] / 80
		if !c.PerGame() {
			want = record.Totals[c]
		}
		assert.InDelta(t, want, profile.Stats.Count(c), 1e-12, c.String())
	}
	for _, r := range Ratios() {
		assert.Equal(t, record.Ratios[r], profile.Stats.Ratio(r), r.String())
	}
	assert.Equal(t, Canonical(), profile.Stats.Categories())
}

func TestNormalize_GamesPlayedPassThrough(t *testing.T) {
	profile, err := Normalize(seasonRecord(40))
	require.NoError(t, err)

	assert.Equal(t, 40.0, profile.Stats.Count(GamesPlayed))
	assert.Equal(t, 60.0, profile.Stats.Count(GamesStarted))
	assert.InDelta(t, 1850.0/40, profile.Stats.Count(Points), 1e-12)
}

func TestNormalize_DidNotPlay(t *testing.T) {
	tests := []struct {
		name string
		gp   float64
	}{
		{name: "zero games", gp: 0},
		{name: "negative games", gp: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(seasonRecord(tt.gp))
			require.Error(t, err)

			var stateErr *InvalidPlayerStateError
			require.ErrorAs(t, err, &stateErr)
			assert.Equal(t, ReasonDidNotPlay, stateErr.Reason)
			assert.Equal(t, "Test Guard", stateErr.Name)
			assert.Contains(t, err.Error(), "has not played this season")
		})
	}
}

func TestNormalize_DoesNotMutateRecord(t *testing.T) {
	record := seasonRecord(50)
	before := record.Totals

	_, err := Normalize(record)
	require.NoError(t, err)
	assert.Equal(t, before, record.Totals)
}

func TestSeasonRecord_JSONRoundTrip(t *testing.T) {
	record := seasonRecord(72)

	data, err := json.Marshal(record)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"FG3_PCT":0.375`)
	assert.Contains(t, string(data), `"PTS":1850`)

	var decoded SeasonRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, record, decoded)
}

func TestTotals_UnmarshalRejectsRatio(t *testing.T) {
	var totals Totals
	err := json.Unmarshal([]byte(`{"FG_PCT": 0.5}`), &totals)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"NOPE": 1}`), &totals)
	assert.Error(t, err)
}
