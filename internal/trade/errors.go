package trade

import (
	"fmt"
	"strings"

	"github.com/fortuna/janus/internal/stats"
)

// EmptyRosterError is returned when one side of a trade has no players
type EmptyRosterError struct {
	Side Side
}

func (e *EmptyRosterError) Error() string {
	if e.Side == "" {
		return "trade side has no players"
	}
	return fmt.Sprintf("%s side has no players", e.Side)
}

// CategoryMismatchError is returned when two side profiles do not expose the
// same category set.
type CategoryMismatchError struct {
	MissingInA []stats.Category
	MissingInB []stats.Category
}

func (e *CategoryMismatchError) Error() string {
	return fmt.Sprintf("category mismatch: missing in A [%s], missing in B [%s]",
		joinCategories(e.MissingInA), joinCategories(e.MissingInB))
}

func joinCategories(cs []stats.Category) string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.String()
	}
	return strings.Join(names, " ")
}
