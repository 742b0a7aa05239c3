package validation

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/osse101/MealPlanner_Go/internal/domain"
)

// Error reports field-level constraint violations for one entity.
// errors.Is(err, domain.ErrInvalidInput) holds for every Error.
type Error struct {
	Entity string
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s: %s", domain.ErrMsgInvalidInput, e.Entity, strings.Join(parts, "; "))
}

func (e *Error) Unwrap() error {
	return domain.ErrInvalidInput
}

// Field returns the message recorded for field, or "" if it passed
func (e *Error) Field(field string) string {
	return e.Fields[field]
}
