package trade

import "github.com/fortuna/janus/internal/stats"

// Side names one half of a trade
type Side string

const (
	SideMine Side = "mine"
	SideAway Side = "away"
)

// SideProfile is the composite per-game line of every player on one side
type SideProfile struct {
	Players int           `json:"players"`
	Stats   stats.Profile `json:"stats"`
}

// Value returns the side's value for a category
func (s SideProfile) Value(c stats.Category) float64 {
	return s.Stats.Value(c)
}

// Project returns the side restricted to the given categories
func (s SideProfile) Project(categories ...stats.Category) SideProfile {
	return SideProfile{Players: s.Players, Stats: s.Stats.Project(categories...)}
}

// Aggregate combines per-game player profiles into one side profile.
//
// Countable categories are the mean of the players' per-game values. Ratios
// are recomputed from the averaged numerator and denominator and are 0 when
// the denominator averages to 0.
func Aggregate(profiles []stats.RateProfile) (SideProfile, error) {
	if len(profiles) == 0 {
		return SideProfile{}, &EmptyRosterError{}
	}

	n := float64(len(profiles))

	var counts stats.Totals
	for _, c := range stats.Countables() {
		var sum float64
		for _, p := range profiles {
			sum += p.Stats.Count(c)
		}
		counts[c] = sum / n
	}

	var ratios stats.RatioValues
	for _, r := range stats.Ratios() {
		num, den := r.Components()
		ratios[r] = safeDiv(counts[num], counts[den])
	}

	return SideProfile{
		Players: len(profiles),
		Stats:   stats.NewProfile(counts, ratios),
	}, nil
}

// safeDiv performs division with zero check
func safeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
