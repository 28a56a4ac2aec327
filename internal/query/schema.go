package query

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// ErrUnknownField is returned by Schema.Validate when criteria or order refer
// to a field the schema does not define.
var ErrUnknownField = errors.New("unknown field")

// SortKey extracts the value an entity is ordered by. Exactly one of Text or
// Number should be set; Text values compare case-insensitively.
type SortKey[E any] struct {
	Text   func(E) string
	Number func(E) float64
}

// TextKey returns a case-insensitive sort key.
func TextKey[E any](fn func(E) string) SortKey[E] {
	return SortKey[E]{Text: fn}
}

// NumberKey returns a numeric sort key.
func NumberKey[E any](fn func(E) float64) SortKey[E] {
	return SortKey[E]{Number: fn}
}

// TimeValue adapts a time accessor to a numeric one so dates can be used as
// range fields and sort keys. Zero times map to 0.
func TimeValue[E any](fn func(E) time.Time) func(E) float64 {
	return func(e E) float64 {
		t := fn(e)
		if t.IsZero() {
			return 0
		}
		return float64(t.UnixMilli())
	}
}

// Schema describes an entity type to the engine through accessor functions.
type Schema[E any] struct {
	// Search lists the text fields a search query is matched against.
	Search []func(E) string

	// Keys are categorical fields used by equality constraints.
	Keys map[string]func(E) string

	// Numbers are numeric or date fields used by range constraints.
	Numbers map[string]func(E) float64

	// Flags are boolean fields used by flag constraints.
	Flags map[string]func(E) bool

	// Sorts are the keys an Order may name.
	Sorts map[string]SortKey[E]
}

// Validate checks that every field named by c and o exists in the schema.
// The pipeline itself ignores unknown fields; Validate is for callers that
// build criteria from user input.
func (s Schema[E]) Validate(c Criteria, o Order) error {
	for _, k := range sortedKeys(c.Equals) {
		if _, ok := s.Keys[k]; !ok {
			return fmt.Errorf("%w: equality key %q", ErrUnknownField, k)
		}
	}
	for _, k := range sortedKeys(c.Ranges) {
		if _, ok := s.Numbers[k]; !ok {
			return fmt.Errorf("%w: range field %q", ErrUnknownField, k)
		}
	}
	for _, k := range sortedKeys(c.Flags) {
		if _, ok := s.Flags[k]; !ok {
			return fmt.Errorf("%w: flag %q", ErrUnknownField, k)
		}
	}
	if o.Key != "" {
		if _, ok := s.Sorts[o.Key]; !ok {
			return fmt.Errorf("%w: sort key %q", ErrUnknownField, o.Key)
		}
	}
	return nil
}

// Fields returns the sorted field names of each kind, for help output.
func (s Schema[E]) Fields() (keys, numbers, flags, sorts []string) {
	return sortedKeys(s.Keys), sortedKeys(s.Numbers), sortedKeys(s.Flags), sortedKeys(s.Sorts)
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
