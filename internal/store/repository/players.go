package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fortuna/janus/internal/store"
)

// ErrNotFound is returned when a lookup by key matches no row
var ErrNotFound = errors.New("not found")

// PlayerRepository handles player data access
type PlayerRepository struct {
	db *store.Database
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *store.Database) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// GetByName searches for players by name (case-insensitive partial match)
func (r *PlayerRepository) GetByName(ctx context.Context, name string) ([]*store.Player, error) {
	query := `
		SELECT player_id, sport, external_id, first_name, last_name, full_name, display_name,
			position, status, created_at, updated_at
		FROM players
		WHERE full_name ILIKE $1 OR display_name ILIKE $1
		ORDER BY full_name
		LIMIT 50
	`

	rows, err := r.db.DB().QueryContext(ctx, query, "%"+escapeLike(name)+"%")
	if err != nil {
		return nil, fmt.Errorf("querying players: %w", err)
	}
	defer rows.Close()

	return r.scanPlayers(rows)
}

// scanPlayers is a helper to scan multiple player rows
func (r *PlayerRepository) scanPlayers(rows *sql.Rows) ([]*store.Player, error) {
	var players []*store.Player
	for rows.Next() {
		player := &store.Player{}
		err := rows.Scan(
			&player.PlayerID, &player.Sport, &player.ExternalID, &player.FirstName, &player.LastName,
			&player.FullName, &player.DisplayName, &player.Position, &player.Status,
			&player.CreatedAt, &player.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning player: %w", err)
		}
		players = append(players, player)
	}

	return players, rows.Err()
}
