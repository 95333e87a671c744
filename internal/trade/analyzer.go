package trade

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fortuna/janus/internal/stats"
)

// SeasonLookup resolves a player's full name to their latest season totals.
//
// Implementations fail with *stats.PlayerNotFoundError when the name matches
// zero or several players, and with *stats.InvalidPlayerStateError when the
// player has no season on record or did not play.
type SeasonLookup interface {
	LookupPlayerSeason(ctx context.Context, fullName string) (stats.SeasonRecord, error)
}

// Report is the outcome of a trade analysis. Mine is side A of the differential.
type Report struct {
	MinePlayers []stats.RateProfile
	AwayPlayers []stats.RateProfile
	Mine        SideProfile
	Away        SideProfile
	Diff        Differential
}

// Project returns the report restricted to the given categories.
// Player profiles are filtered the same way.
func (r *Report) Project(categories ...stats.Category) *Report {
	return &Report{
		MinePlayers: projectPlayers(r.MinePlayers, categories),
		AwayPlayers: projectPlayers(r.AwayPlayers, categories),
		Mine:        r.Mine.Project(categories...),
		Away:        r.Away.Project(categories...),
		Diff:        r.Diff.Project(categories...),
	}
}

// Fantasy returns the report restricted to the fantasy categories
func (r *Report) Fantasy() *Report {
	return r.Project(stats.Fantasy()...)
}

func projectPlayers(players []stats.RateProfile, categories []stats.Category) []stats.RateProfile {
	out := make([]stats.RateProfile, len(players))
	for i, p := range players {
		p.Stats = p.Stats.Project(categories...)
		out[i] = p
	}
	return out
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithLookupTimeout bounds each individual season lookup
func WithLookupTimeout(d time.Duration) Option {
	return func(a *Analyzer) {
		a.lookupTimeout = d
	}
}

// WithLogger replaces the default logger
func WithLogger(logger *log.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// Analyzer runs trade analyses against a season data source
type Analyzer struct {
	lookup        SeasonLookup
	lookupTimeout time.Duration
	logger        *log.Logger
}

// NewAnalyzer creates a new trade analyzer
func NewAnalyzer(lookup SeasonLookup, opts ...Option) *Analyzer {
	a := &Analyzer{
		lookup: lookup,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run evaluates trading myPlayers for awayPlayers.
//
// Any player that cannot be resolved or has no usable season aborts the whole
// analysis; nobody is silently dropped from a side.
func (a *Analyzer) Run(ctx context.Context, myPlayers, awayPlayers []string) (*Report, error) {
	if len(myPlayers) == 0 {
		return nil, &EmptyRosterError{Side: SideMine}
	}
	if len(awayPlayers) == 0 {
		return nil, &EmptyRosterError{Side: SideAway}
	}

	a.logger.Printf("[trade] Evaluating %d player(s) for %d player(s)", len(myPlayers), len(awayPlayers))

	mine, err := a.loadSide(ctx, SideMine, myPlayers)
	if err != nil {
		return nil, err
	}
	away, err := a.loadSide(ctx, SideAway, awayPlayers)
	if err != nil {
		return nil, err
	}

	mineSide, err := Aggregate(mine)
	if err != nil {
		return nil, fmt.Errorf("aggregating %s side: %w", SideMine, err)
	}
	awaySide, err := Aggregate(away)
	if err != nil {
		return nil, fmt.Errorf("aggregating %s side: %w", SideAway, err)
	}

	diff, err := Evaluate(mineSide, awaySide)
	if err != nil {
		return nil, fmt.Errorf("evaluating trade: %w", err)
	}

	a.logger.Printf("[trade] ✓ Evaluated trade: PTS diff %.2f (%.2f%%)",
		diff.Diff(stats.Points), diff.PercentDiff(stats.Points))

	return &Report{
		MinePlayers: mine,
		AwayPlayers: away,
		Mine:        mineSide,
		Away:        awaySide,
		Diff:        diff,
	}, nil
}

// Profile resolves and normalizes a single player
func (a *Analyzer) Profile(ctx context.Context, fullName string) (stats.RateProfile, error) {
	record, err := a.fetch(ctx, fullName)
	if err != nil {
		return stats.RateProfile{}, fmt.Errorf("loading %q: %w", fullName, err)
	}
	profile, err := stats.Normalize(record)
	if err != nil {
		return stats.RateProfile{}, fmt.Errorf("normalizing %q: %w", fullName, err)
	}
	return profile, nil
}

// loadSide fetches and normalizes every player on a side, in order
func (a *Analyzer) loadSide(ctx context.Context, side Side, names []string) ([]stats.RateProfile, error) {
	profiles := make([]stats.RateProfile, 0, len(names))
	for _, name := range names {
		profile, err := a.Profile(ctx, name)
		if err != nil {
			a.logger.Printf("[trade] ❌ %s side: %v", side, err)
			return nil, fmt.Errorf("%s side: %w", side, err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (a *Analyzer) fetch(ctx context.Context, fullName string) (stats.SeasonRecord, error) {
	if a.lookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.lookupTimeout)
		defer cancel()
	}
	return a.lookup.LookupPlayerSeason(ctx, fullName)
}
