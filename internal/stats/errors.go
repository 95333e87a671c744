package stats

import (
	"fmt"
	"strings"
)

// NotFoundReason explains why a name did not resolve to exactly one player
type NotFoundReason string

const (
	ReasonNoMatch   NotFoundReason = "no player found"
	ReasonAmbiguous NotFoundReason = "ambiguous name"
)

// PlayerNotFoundError is returned when a name matches zero or several players
type PlayerNotFoundError struct {
	Name       string
	Reason     NotFoundReason
	Candidates []string
}

func (e *PlayerNotFoundError) Error() string {
	if e.Reason == ReasonAmbiguous && len(e.Candidates) > 0 {
		return fmt.Sprintf("%s: %q matches %s", e.Reason, e.Name, strings.Join(e.Candidates, ", "))
	}
	return fmt.Sprintf("%s: %q", e.Reason, e.Name)
}

// StateReason explains why a matched player cannot take part in a trade
type StateReason string

const (
	ReasonNoSeasonData StateReason = "no season data"
	ReasonDidNotPlay   StateReason = "player has not played this season"
)

// InvalidPlayerStateError is returned for a matched player without usable
// season numbers.
type InvalidPlayerStateError struct {
	Name   string
	Reason StateReason
}

func (e *InvalidPlayerStateError) Error() string {
	if e.Name == "" {
		return string(e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Name, e.Reason)
}
