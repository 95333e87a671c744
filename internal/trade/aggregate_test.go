package trade

import (
	"testing"

	"github.com/fortuna/janus/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// player builds a per-game profile from category values
func player(name string, counts map[stats.Countable]float64, ratios map[stats.Ratio]float64) stats.RateProfile {
	var t stats.Totals
	for c, v := range counts {
		t[c] = v
	}
	var r stats.RatioValues
	for k, v := range ratios {
		r[k] = v
	}
	return stats.RateProfile{PlayerName: name, Stats: stats.NewProfile(t, r)}
}

func TestAggregate_MeanOfRates(t *testing.T) {
	a := player("A", map[stats.Countable]float64{
		stats.GamesPlayed: 70, stats.Points: 20, stats.FieldGoalsMade: 8, stats.FieldGoalsAttempted: 16,
	}, nil)
	b := player("B", map[stats.Countable]float64{
		stats.GamesPlayed: 50, stats.Points: 10, stats.FieldGoalsMade: 2, stats.FieldGoalsAttempted: 4,
	}, nil)

	side, err := Aggregate([]stats.RateProfile{a, b})
	require.NoError(t, err)

	assert.Equal(t, 2, side.Players)
	assert.Equal(t, 15.0, side.Value(stats.Points))
	assert.Equal(t, 60.0, side.Value(stats.GamesPlayed))
	assert.Equal(t, 5.0, side.Value(stats.FieldGoalsMade))
	assert.Equal(t, 10.0, side.Value(stats.FieldGoalsAttempted))
	// Recomputed from averaged counts, not the mean of 0.5 and 0.5 inputs
	assert.Equal(t, 0.5, side.Value(stats.FieldGoalPct))
}

func TestAggregate_RatiosIgnorePlayerRatios(t *testing.T) {
	a := player("A", map[stats.Countable]float64{
		stats.FreeThrowsMade: 9, stats.FreeThrowsAttempted: 10,
	}, map[stats.Ratio]float64{stats.FreeThrowPct: 0.9})
	b := player("B", map[stats.Countable]float64{
		stats.FreeThrowsMade: 1, stats.FreeThrowsAttempted: 5,
	}, map[stats.Ratio]float64{stats.FreeThrowPct: 0.2})

	side, err := Aggregate([]stats.RateProfile{a, b})
	require.NoError(t, err)

	// (9+1)/2 / ((10+5)/2) = 5 / 7.5
	assert.InDelta(t, 5.0/7.5, side.Value(stats.FreeThrowPct), 1e-12)
	assert.NotEqual(t, 0.55, side.Value(stats.FreeThrowPct))
}

func TestAggregate_SinglePlayerIdentity(t *testing.T) {
	p := player("Solo", map[stats.Countable]float64{
		stats.GamesPlayed: 82, stats.Minutes: 34.5, stats.Points: 27.1, stats.Rebounds: 7.3,
		stats.ThreePointersMade: 2.5, stats.ThreePointersAttempted: 6.8,
		stats.FieldGoalsMade: 9.8, stats.FieldGoalsAttempted: 19.6,
		stats.FreeThrowsMade: 5, stats.FreeThrowsAttempted: 6.25,
	}, map[stats.Ratio]float64{
		stats.FieldGoalPct: 0.5, stats.ThreePointPct: 2.5 / 6.8, stats.FreeThrowPct: 0.8,
	})

	side, err := Aggregate([]stats.RateProfile{p})
	require.NoError(t, err)

	for _, c := range stats.Countables() {
		assert.Equal(t, p.Stats.Count(c), side.Stats.Count(c), c.String())
	}
	for _, r := range stats.Ratios() {
		assert.InDelta(t, p.Stats.Ratio(r), side.Stats.Ratio(r), 1e-12, r.String())
	}
}

func TestAggregate_ZeroDenominator(t *testing.T) {
	tests := []struct {
		name  string
		ratio stats.Ratio
		num   stats.Countable
	}{
		{name: "no field goal attempts", ratio: stats.FieldGoalPct, num: stats.FieldGoalsMade},
		{name: "no three point attempts", ratio: stats.ThreePointPct, num: stats.ThreePointersMade},
		{name: "no free throw attempts", ratio: stats.FreeThrowPct, num: stats.FreeThrowsMade},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := player("Bench", map[stats.Countable]float64{stats.Minutes: 4}, map[stats.Ratio]float64{tt.ratio: 0.4})

			side, err := Aggregate([]stats.RateProfile{p, p})
			require.NoError(t, err)

			assert.Equal(t, 0.0, side.Stats.Ratio(tt.ratio))
			assert.Equal(t, 0.0, side.Stats.Count(tt.num))
		})
	}
}

func TestAggregate_Empty(t *testing.T) {
	for _, in := range [][]stats.RateProfile{nil, {}} {
		_, err := Aggregate(in)
		require.Error(t, err)

		var emptyErr *EmptyRosterError
		assert.ErrorAs(t, err, &emptyErr)
	}
}

func TestAggregate_DoesNotMutateInputs(t *testing.T) {
	a := player("A", map[stats.Countable]float64{stats.Points: 30}, nil)
	b := player("B", map[stats.Countable]float64{stats.Points: 10}, nil)
	profiles := []stats.RateProfile{a, b}

	_, err := Aggregate(profiles)
	require.NoError(t, err)

	assert.Equal(t, 30.0, profiles[0].Stats.Count(stats.Points))
	assert.Equal(t, 10.0, profiles[1].Stats.Count(stats.Points))
}
