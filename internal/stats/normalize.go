package stats

// SeasonRecord holds a player's raw totals for their latest season
type SeasonRecord struct {
	PlayerID   int         `json:"player_id"`
	PlayerName string      `json:"player_name"`
	Season     string      `json:"season"`
	Totals     Totals      `json:"totals"`
	Ratios     RatioValues `json:"ratios"`
}

// GamesPlayed returns the record's GP total
func (r SeasonRecord) GamesPlayed() float64 {
	return r.Totals[GamesPlayed]
}

// RateProfile is a player's per-game line derived from a SeasonRecord
type RateProfile struct {
	PlayerID   int     `json:"player_id"`
	PlayerName string  `json:"player_name"`
	Season     string  `json:"season"`
	Stats      Profile `json:"stats"`
}

// Normalize converts season totals into per-game rates.
//
// Every countable category except GP and GS is divided by games played. GP
// and GS are kept as raw counts and ratio categories are copied as-is, since
// they already describe the whole season.
func Normalize(record SeasonRecord) (RateProfile, error) {
	gp := record.GamesPlayed()
	if gp <= 0 {
		return RateProfile{}, &InvalidPlayerStateError{Name: record.PlayerName, Reason: ReasonDidNotPlay}
	}

	var rates Totals
	for _, c := range Countables() {
		if c.PerGame() {
			rates[c] = record.Totals[c] / gp
		} else {
			rates[c] = record.Totals[c]
		}
	}

	return RateProfile{
		PlayerID:   record.PlayerID,
		PlayerName: record.PlayerName,
		Season:     record.Season,
		Stats:      NewProfile(rates, record.Ratios),
	}, nil
}
