package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/janus/internal/store"
)

// SeasonRepository handles player season totals data access
type SeasonRepository struct {
	db *store.Database
}

// NewSeasonRepository creates a new season totals repository
func NewSeasonRepository(db *store.Database) *SeasonRepository {
	return &SeasonRepository{db: db}
}

// GetLatestSeasonTotals returns a player's most recent season totals.
// Returns ErrNotFound when the player has no season on record.
func (r *SeasonRepository) GetLatestSeasonTotals(ctx context.Context, playerID int) (*store.PlayerSeasonTotals, error) {
	query := `
		SELECT id, player_id, season_year, team_abbreviation, games_played, games_started, minutes,
			field_goals_made, field_goals_attempted, field_goal_pct,
			three_pointers_made, three_pointers_attempted, three_point_pct,
			free_throws_made, free_throws_attempted, free_throw_pct,
			offensive_rebounds, defensive_rebounds, rebounds, assists, steals, blocks,
			turnovers, personal_fouls, points, created_at, updated_at
		FROM player_season_totals
		WHERE player_id = $1
		ORDER BY season_year DESC
		LIMIT 1
	`

	t := &store.PlayerSeasonTotals{}
	err := r.db.DB().QueryRowContext(ctx, query, playerID).Scan(
		&t.ID, &t.PlayerID, &t.SeasonYear, &t.TeamAbbreviation, &t.GamesPlayed, &t.GamesStarted, &t.Minutes,
		&t.FieldGoalsMade, &t.FieldGoalsAttempted, &t.FieldGoalPct,
		&t.ThreePointersMade, &t.ThreePointersAttempted, &t.ThreePointPct,
		&t.FreeThrowsMade, &t.FreeThrowsAttempted, &t.FreeThrowPct,
		&t.OffensiveRebounds, &t.DefensiveRebounds, &t.Rebounds, &t.Assists, &t.Steals, &t.Blocks,
		&t.Turnovers, &t.PersonalFouls, &t.Points, &t.CreatedAt, &t.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("season totals for player %d: %w", playerID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying season totals: %w", err)
	}

	return t, nil
}
