package query

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Pagination is the derived paging state for one view.
type Pagination struct {
	Current    int `json:"current_page"`
	Size       int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// HasPrev reports whether a previous page exists.
func (p Pagination) HasPrev() bool { return p.Current > 1 }

// HasNext reports whether a following page exists.
func (p Pagination) HasNext() bool { return p.Current < p.TotalPages }

// View is the full configuration of one pipeline run.
type View struct {
	Criteria Criteria
	Order    Order
	Page     int
	PageSize int
}

// Result is the output of Run: the filtered and sorted list, the slice for
// the requested page, and the paging state.
type Result[E any] struct {
	Items      []E        `json:"items"`
	Page       []E        `json:"page"`
	Pagination Pagination `json:"pagination"`
}

// Run applies Filter, Sort and Paginate in order.
func Run[E any](items []E, s Schema[E], v View) Result[E] {
	filtered := Filter(items, s, v.Criteria)
	sorted := Sort(filtered, s, v.Order)
	page, p := Paginate(sorted, v.Page, v.PageSize)
	return Result[E]{Items: sorted, Page: page, Pagination: p}
}

// Filter returns the entities of items that satisfy every present constraint
// in c, in their original order. Constraints on fields the schema does not
// define are ignored.
func Filter[E any](items []E, s Schema[E], c Criteria) []E {
	preds := compile(s, c)
	out := make([]E, 0, len(items))
	for _, e := range items {
		if matchAll(preds, e) {
			out = append(out, e)
		}
	}
	return out
}

func matchAll[E any](preds []func(E) bool, e E) bool {
	for _, p := range preds {
		if !p(e) {
			return false
		}
	}
	return true
}

// compile turns criteria into a list of predicates, one per present
// constraint.
func compile[E any](s Schema[E], c Criteria) []func(E) bool {
	var preds []func(E) bool

	if c.Search != "" && len(s.Search) > 0 {
		q := fold(c.Search)
		fields := s.Search
		preds = append(preds, func(e E) bool {
			for _, f := range fields {
				if strings.Contains(fold(f(e)), q) {
					return true
				}
			}
			return false
		})
	}

	for k, want := range c.Equals {
		get, ok := s.Keys[k]
		if !ok {
			continue
		}
		preds = append(preds, func(e E) bool { return get(e) == want })
	}

	for k, r := range c.Ranges {
		get, ok := s.Numbers[k]
		if !ok {
			continue
		}
		preds = append(preds, func(e E) bool { return r.Contains(get(e)) })
	}

	for k, want := range c.Flags {
		get, ok := s.Flags[k]
		if !ok {
			continue
		}
		preds = append(preds, func(e E) bool { return get(e) == want })
	}

	return preds
}

// Sort returns a stably sorted copy of items. Ties keep their input order.
// An empty or unknown order key returns the items in input order.
func Sort[E any](items []E, s Schema[E], o Order) []E {
	out := slices.Clone(items)
	if out == nil {
		out = []E{}
	}
	key, ok := s.Sorts[o.Key]
	if o.Key == "" || !ok {
		return out
	}

	var compare func(a, b E) int
	switch {
	case key.Number != nil:
		compare = func(a, b E) int { return cmp.Compare(key.Number(a), key.Number(b)) }
	case key.Text != nil:
		compare = func(a, b E) int { return strings.Compare(fold(key.Text(a)), fold(key.Text(b))) }
	default:
		return out
	}
	if o.Dir == Desc {
		asc := compare
		compare = func(a, b E) int { return asc(b, a) }
	}

	slices.SortStableFunc(out, compare)
	return out
}

// Paginate returns the 1-based page of items and the paging state. A page
// whose start offset falls outside the collection yields an empty slice.
// size < 1 is treated as 1.
func Paginate[E any](items []E, page, size int) ([]E, Pagination) {
	if size < 1 {
		size = 1
	}
	n := len(items)
	p := Pagination{
		Current:    page,
		Size:       size,
		TotalItems: n,
		TotalPages: TotalPages(n, size),
	}

	start := (page - 1) * size
	if page < 1 || start >= n {
		return []E{}, p
	}
	end := min(start+size, n)
	return items[start:end:end], p
}

// TotalPages returns max(1, ceil(n/size)).
func TotalPages(n, size int) int {
	if size < 1 {
		size = 1
	}
	return max(1, (n+size-1)/size)
}

// ClampPageSize normalises a user supplied page size: values below 1 become
// def, values above limit (when limit > 0) become limit.
func ClampPageSize(n, def, limit int) int {
	if n < 1 {
		n = def
	}
	if limit > 0 && n > limit {
		n = limit
	}
	if n < 1 {
		n = 1
	}
	return n
}

// fold returns the Unicode case-folded form of s. A new Caser is created per
// call because Casers are not safe for concurrent use.
func fold(s string) string {
	return cases.Fold().String(s)
}
