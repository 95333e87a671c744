// Package season supplies players' latest season totals to the trade analyzer.
package season

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fortuna/janus/internal/stats"
	"github.com/fortuna/janus/internal/store"
	"github.com/fortuna/janus/internal/store/repository"
)

// PlayerFinder searches players by name
type PlayerFinder interface {
	GetByName(ctx context.Context, name string) ([]*store.Player, error)
}

// TotalsReader reads a player's latest season totals
type TotalsReader interface {
	GetLatestSeasonTotals(ctx context.Context, playerID int) (*store.PlayerSeasonTotals, error)
}

// Provider looks up season records in the Atlas database
type Provider struct {
	players PlayerFinder
	totals  TotalsReader
}

// NewProvider creates a new season provider
func NewProvider(players PlayerFinder, totals TotalsReader) *Provider {
	return &Provider{players: players, totals: totals}
}

// NewDatabaseProvider creates a provider backed by the Atlas repositories
func NewDatabaseProvider(db *store.Database) *Provider {
	return NewProvider(repository.NewPlayerRepository(db), repository.NewSeasonRepository(db))
}

// LookupPlayerSeason resolves fullName to exactly one player and returns
// their most recent season totals.
func (p *Provider) LookupPlayerSeason(ctx context.Context, fullName string) (stats.SeasonRecord, error) {
	player, err := p.resolve(ctx, fullName)
	if err != nil {
		return stats.SeasonRecord{}, err
	}

	totals, err := p.totals.GetLatestSeasonTotals(ctx, player.PlayerID)
	if errors.Is(err, repository.ErrNotFound) {
		return stats.SeasonRecord{}, &stats.InvalidPlayerStateError{Name: player.FullName, Reason: stats.ReasonNoSeasonData}
	}
	if err != nil {
		return stats.SeasonRecord{}, fmt.Errorf("fetching season totals: %w", err)
	}

	if totals.GamesPlayed == 0 {
		return stats.SeasonRecord{}, &stats.InvalidPlayerStateError{Name: player.FullName, Reason: stats.ReasonDidNotPlay}
	}

	return toRecord(player, totals), nil
}

// resolve narrows a name search down to one player. An exact
// (case-insensitive) full name match wins over partial matches.
func (p *Provider) resolve(ctx context.Context, fullName string) (*store.Player, error) {
	name := strings.TrimSpace(fullName)
	if name == "" {
		return nil, &stats.PlayerNotFoundError{Name: fullName, Reason: stats.ReasonNoMatch}
	}

	candidates, err := p.players.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("searching players: %w", err)
	}

	switch len(candidates) {
	case 0:
		return nil, &stats.PlayerNotFoundError{Name: fullName, Reason: stats.ReasonNoMatch}
	case 1:
		return candidates[0], nil
	}

	var exact []*store.Player
	for _, c := range candidates {
		if strings.EqualFold(c.FullName, name) {
			exact = append(exact, c)
		}
	}
	if len(exact) == 1 {
		return exact[0], nil
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.FullName
	}
	return nil, &stats.PlayerNotFoundError{Name: fullName, Reason: stats.ReasonAmbiguous, Candidates: names}
}

// toRecord maps a season totals row onto the category model
func toRecord(player *store.Player, t *store.PlayerSeasonTotals) stats.SeasonRecord {
	var totals stats.Totals
	totals[stats.GamesPlayed] = float64(t.GamesPlayed)
	totals[stats.GamesStarted] = float64(t.GamesStarted)
	totals[stats.Minutes] = t.Minutes
	totals[stats.FieldGoalsMade] = float64(t.FieldGoalsMade)
	totals[stats.FieldGoalsAttempted] = float64(t.FieldGoalsAttempted)
	totals[stats.ThreePointersMade] = float64(t.ThreePointersMade)
	totals[stats.ThreePointersAttempted] = float64(t.ThreePointersAttempted)
	totals[stats.FreeThrowsMade] = float64(t.FreeThrowsMade)
	totals[stats.FreeThrowsAttempted] = float64(t.FreeThrowsAttempted)
	totals[stats.OffensiveRebounds] = float64(t.OffensiveRebounds)
	totals[stats.DefensiveRebounds] = float64(t.DefensiveRebounds)
	totals[stats.Rebounds] = float64(t.Rebounds)
	totals[stats.Assists] = float64(t.Assists)
	totals[stats.Steals] = float64(t.Steals)
	totals[stats.Blocks] = float64(t.Blocks)
	totals[stats.Turnovers] = float64(t.Turnovers)
	totals[stats.PersonalFouls] = float64(t.PersonalFouls)
	totals[stats.Points] = float64(t.Points)

	// NULL percentages mean no attempts
	var ratios stats.RatioValues
	if t.FieldGoalPct.Valid {
		ratios[stats.FieldGoalPct] = t.FieldGoalPct.Float64
	}
	if t.ThreePointPct.Valid {
		ratios[stats.ThreePointPct] = t.ThreePointPct.Float64
	}
	if t.FreeThrowPct.Valid {
		ratios[stats.FreeThrowPct] = t.FreeThrowPct.Float64
	}

	return stats.SeasonRecord{
		PlayerID:   player.PlayerID,
		PlayerName: player.FullName,
		Season:     t.SeasonYear,
		Totals:     totals,
		Ratios:     ratios,
	}
}
