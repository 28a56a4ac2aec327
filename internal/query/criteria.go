package query

import "maps"

// Range is an inclusive numeric interval. A nil bound is open.
type Range struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// Between returns a range bounded on both sides.
func Between(lo, hi float64) Range {
	return Range{Min: &lo, Max: &hi}
}

// AtLeast returns a range with only a lower bound.
func AtLeast(lo float64) Range {
	return Range{Min: &lo}
}

// AtMost returns a range with only an upper bound.
func AtMost(hi float64) Range {
	return Range{Max: &hi}
}

// Criteria is the set of optional predicates applied to a collection. Every
// present constraint must hold for an entity to be retained; an absent
// constraint always passes. The zero value matches everything.
type Criteria struct {
	// Search is matched case-insensitively as a substring against the
	// schema's search fields. Empty means absent.
	Search string `json:"search,omitempty"`

	// Equals maps a key field to the exact value it must have.
	Equals map[string]string `json:"equals,omitempty"`

	// Ranges maps a numeric or date field to its inclusive bounds.
	Ranges map[string]Range `json:"ranges,omitempty"`

	// Flags maps a boolean field to the value it must have.
	Flags map[string]bool `json:"flags,omitempty"`
}

// IsZero reports whether no constraint is present.
func (c Criteria) IsZero() bool {
	return c.Search == "" && len(c.Equals) == 0 && len(c.Ranges) == 0 && len(c.Flags) == 0
}

// Patch is a partial update to Criteria. Nil fields and missing keys leave
// the current value untouched. A key mapped to nil removes that constraint.
type Patch struct {
	Search *string
	Equals map[string]*string
	Ranges map[string]*Range
	Flags  map[string]*bool
}

// Merge returns c with p applied. c is not modified.
func (c Criteria) Merge(p Patch) Criteria {
	out := Criteria{
		Search: c.Search,
		Equals: maps.Clone(c.Equals),
		Ranges: maps.Clone(c.Ranges),
		Flags:  maps.Clone(c.Flags),
	}
	if p.Search != nil {
		out.Search = *p.Search
	}
	out.Equals = mergeMap(out.Equals, p.Equals)
	out.Ranges = mergeMap(out.Ranges, p.Ranges)
	out.Flags = mergeMap(out.Flags, p.Flags)
	return out
}

func mergeMap[V any](dst map[string]V, patch map[string]*V) map[string]V {
	for k, v := range patch {
		if v == nil {
			delete(dst, k)
			continue
		}
		if dst == nil {
			dst = make(map[string]V, len(patch))
		}
		dst[k] = *v
	}
	if len(dst) == 0 {
		return nil
	}
	return dst
}

// SearchFor returns a patch that sets the search text.
func SearchFor(q string) Patch {
	return Patch{Search: &q}
}

// Where returns a patch that sets one equality constraint.
func Where(key, value string) Patch {
	return Patch{Equals: map[string]*string{key: &value}}
}

// Within returns a patch that sets one range constraint.
func Within(key string, r Range) Patch {
	return Patch{Ranges: map[string]*Range{key: &r}}
}

// Flag returns a patch that sets one boolean constraint.
func Flag(key string, want bool) Patch {
	return Patch{Flags: map[string]*bool{key: &want}}
}
