package stats

import (
	"fmt"
	"strings"
)

// Category identifies a tracked box score statistic.
// It is implemented only by Countable and Ratio.
type Category interface {
	fmt.Stringer
	isCategory()
}

// Countable is a statistic that accumulates additively across games and players
type Countable uint8

const (
	GamesPlayed Countable = iota
	GamesStarted
	Minutes
	FieldGoalsMade
	FieldGoalsAttempted
	ThreePointersMade
	ThreePointersAttempted
	FreeThrowsMade
	FreeThrowsAttempted
	OffensiveRebounds
	DefensiveRebounds
	Rebounds
	Assists
	Steals
	Blocks
	Turnovers
	PersonalFouls
	Points

	numCountable = int(Points) + 1
)

// Ratio is a statistic defined as the quotient of two Countable statistics.
// Ratios are never summed or averaged directly.
type Ratio uint8

const (
	FieldGoalPct Ratio = iota
	ThreePointPct
	FreeThrowPct

	numRatio = int(FreeThrowPct) + 1
)

var countableNames = [numCountable]string{
	GamesPlayed:            "GP",
	GamesStarted:           "GS",
	Minutes:                "MIN",
	FieldGoalsMade:         "FGM",
	FieldGoalsAttempted:    "FGA",
	ThreePointersMade:      "FG3M",
	ThreePointersAttempted: "FG3A",
	FreeThrowsMade:         "FTM",
	FreeThrowsAttempted:    "FTA",
	OffensiveRebounds:      "OREB",
	DefensiveRebounds:      "DREB",
	Rebounds:               "REB",
	Assists:                "AST",
	Steals:                 "STL",
	Blocks:                 "BLK",
	Turnovers:              "TOV",
	PersonalFouls:          "PF",
	Points:                 "PTS",
}

var ratioNames = [numRatio]string{
	FieldGoalPct:  "FG_PCT",
	ThreePointPct: "FG3_PCT",
	FreeThrowPct:  "FT_PCT",
}

// ratioComponents declares numerator and denominator for every ratio.
// A new Ratio must be added here; nothing is inferred.
var ratioComponents = [numRatio][2]Countable{
	FieldGoalPct:  {FieldGoalsMade, FieldGoalsAttempted},
	ThreePointPct: {ThreePointersMade, ThreePointersAttempted},
	FreeThrowPct:  {FreeThrowsMade, FreeThrowsAttempted},
}

func (c Countable) String() string {
	if !c.valid() {
		return fmt.Sprintf("Countable(%d)", uint8(c))
	}
	return countableNames[c]
}

func (c Countable) isCategory() {}

func (c Countable) valid() bool { return int(c) < numCountable }

// PerGame reports whether the statistic is divided by games played when a
// season record is normalized. GP and GS stay raw counts.
func (c Countable) PerGame() bool {
	return c != GamesPlayed && c != GamesStarted
}

func (r Ratio) String() string {
	if !r.valid() {
		return fmt.Sprintf("Ratio(%d)", uint8(r))
	}
	return ratioNames[r]
}

func (r Ratio) isCategory() {}

func (r Ratio) valid() bool { return int(r) < numRatio }

// Components returns the numerator and denominator that define the ratio
func (r Ratio) Components() (numerator, denominator Countable) {
	pair := ratioComponents[r]
	return pair[0], pair[1]
}

// Countables returns every countable category in declaration order
func Countables() []Countable {
	out := make([]Countable, numCountable)
	for i := range out {
		out[i] = Countable(i)
	}
	return out
}

// Ratios returns every ratio category in declaration order
func Ratios() []Ratio {
	out := make([]Ratio, numRatio)
	for i := range out {
		out[i] = Ratio(i)
	}
	return out
}

// canonical is the display order used by reports
var canonical = []Category{
	GamesPlayed, GamesStarted, Minutes,
	FieldGoalsMade, FieldGoalsAttempted, FieldGoalPct,
	ThreePointersMade, ThreePointersAttempted, ThreePointPct,
	FreeThrowsMade, FreeThrowsAttempted, FreeThrowPct,
	OffensiveRebounds, DefensiveRebounds, Rebounds,
	Assists, Steals, Blocks, Turnovers, PersonalFouls, Points,
}

// fantasy is the nine-category head-to-head fantasy set
var fantasy = []Category{
	FieldGoalPct, FreeThrowPct, ThreePointersMade,
	Points, Rebounds, Assists, Steals, Blocks, Turnovers,
}

// Canonical returns all categories in report order
func Canonical() []Category {
	return append([]Category(nil), canonical...)
}

// Fantasy returns the fantasy-relevant categories in report order
func Fantasy() []Category {
	return append([]Category(nil), fantasy...)
}

// ParseCategory resolves a category name such as "pts" or "FG_PCT"
func ParseCategory(name string) (Category, error) {
	want := strings.ToUpper(strings.TrimSpace(name))
	for _, c := range canonical {
		if c.String() == want {
			return c, nil
		}
	}
	return nil, fmt.Errorf("unknown stat category %q", name)
}

// bit maps a category onto its slot in a categorySet
func bit(c Category) categorySet {
	switch v := c.(type) {
	case Countable:
		if v.valid() {
			return 1 << uint(v)
		}
	case Ratio:
		if v.valid() {
			return 1 << uint(numCountable+int(v))
		}
	}
	return 0
}

// categorySet is a membership bitmask over Countable then Ratio slots
type categorySet uint32

const allCategories categorySet = 1<<uint(numCountable+numRatio) - 1

func (s categorySet) has(c Category) bool {
	b := bit(c)
	return b != 0 && s&b == b
}

// ordered lists the members of s in canonical order
func (s categorySet) ordered() []Category {
	out := make([]Category, 0, len(canonical))
	for _, c := range canonical {
		if s.has(c) {
			out = append(out, c)
		}
	}
	return out
}
