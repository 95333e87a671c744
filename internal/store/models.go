package store

import (
	"database/sql"
	"time"
)

// Player represents an NBA player
type Player struct {
	PlayerID    int            `json:"player_id" db:"player_id"`
	Sport       string         `json:"sport" db:"sport"`
	ExternalID  sql.NullString `json:"external_id,omitempty" db:"external_id"`
	FirstName   sql.NullString `json:"first_name,omitempty" db:"first_name"`
	LastName    string         `json:"last_name" db:"last_name"`
	FullName    string         `json:"full_name" db:"full_name"`
	DisplayName sql.NullString `json:"display_name,omitempty" db:"display_name"`
	Position    sql.NullString `json:"position,omitempty" db:"position"`
	Status      sql.NullString `json:"status,omitempty" db:"status"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}

// PlayerSeasonTotals is one row of a player's season totals, regular season
// only, one row per player and season.
type PlayerSeasonTotals struct {
	ID                     int             `json:"id" db:"id"`
	PlayerID               int             `json:"player_id" db:"player_id"`
	SeasonYear             string          `json:"season_year" db:"season_year"`
	TeamAbbreviation       sql.NullString  `json:"team_abbreviation,omitempty" db:"team_abbreviation"`
	GamesPlayed            int             `json:"games_played" db:"games_played"`
	GamesStarted           int             `json:"games_started" db:"games_started"`
	Minutes                float64         `json:"minutes" db:"minutes"`
	FieldGoalsMade         int             `json:"field_goals_made" db:"field_goals_made"`
	FieldGoalsAttempted    int             `json:"field_goals_attempted" db:"field_goals_attempted"`
	FieldGoalPct           sql.NullFloat64 `json:"field_goal_pct,omitempty" db:"field_goal_pct"`
	ThreePointersMade      int             `json:"three_pointers_made" db:"three_pointers_made"`
	ThreePointersAttempted int             `json:"three_pointers_attempted" db:"three_pointers_attempted"`
	ThreePointPct          sql.NullFloat64 `json:"three_point_pct,omitempty" db:"three_point_pct"`
	FreeThrowsMade         int             `json:"free_throws_made" db:"free_throws_made"`
	FreeThrowsAttempted    int             `json:"free_throws_attempted" db:"free_throws_attempted"`
	FreeThrowPct           sql.NullFloat64 `json:"free_throw_pct,omitempty" db:"free_throw_pct"`
	OffensiveRebounds      int             `json:"offensive_rebounds" db:"offensive_rebounds"`
	DefensiveRebounds      int             `json:"defensive_rebounds" db:"defensive_rebounds"`
	Rebounds               int             `json:"rebounds" db:"rebounds"`
	Assists                int             `json:"assists" db:"assists"`
	Steals                 int             `json:"steals" db:"steals"`
	Blocks                 int             `json:"blocks" db:"blocks"`
	Turnovers              int             `json:"turnovers" db:"turnovers"`
	PersonalFouls          int             `json:"personal_fouls" db:"personal_fouls"`
	Points                 int             `json:"points" db:"points"`
	CreatedAt              time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at" db:"updated_at"`
}
