package store

import (
	"context"

	"github.com/sweengineeringlabs/eprocurement-sub002/internal/query"
)

// SeedKey is the equality key a parameterized route pins to its ID.
const SeedKey = "id"

// Feature is the type-erased face of a Store that the workspace and CLI
// drive without knowing the entity type.
type Feature interface {
	Name() string
	Mount(ctx context.Context) <-chan error
	Unmount()
	Seed(id string)
	SetFilter(p query.Patch)
	ClearFilters()
	SetSort(o query.Order)
	Sorting() query.Order
	SetPage(n int)
	SetPageSize(n int)
	Validate() error
	Summary() Summary
	Table() (headers []string, rows [][]string)
	Snapshot() any
	CountBy(key string) map[string]int
}

// Summary describes a feature's current view without its items.
type Summary struct {
	Name       string           `json:"name"`
	Total      int              `json:"total"`
	Criteria   query.Criteria   `json:"criteria"`
	Order      string           `json:"order"`
	Pagination query.Pagination `json:"pagination"`
	Loading    bool             `json:"loading"`
	Err        string           `json:"error,omitempty"`
	Selected   string           `json:"selected,omitempty"`
}

// Seed applies a route's parameter. A non-empty id pins the SeedKey
// constraint and selects the entity; an empty id lifts that constraint.
// Either way the view returns to page one.
func (s *Store[E]) Seed(id string) {
	if id == "" {
		s.SetFilter(query.Patch{Equals: map[string]*string{SeedKey: nil}})
	} else {
		s.SetFilter(query.Where(SeedKey, id))
	}
	s.Select(id)
	s.SetPage(1)
}

// Validate checks the current criteria and order against the schema.
func (s *Store[E]) Validate() error {
	return s.def.Schema.Validate(s.Criteria.Get(), s.Order.Get())
}

// Sorting returns the active order.
func (s *Store[E]) Sorting() query.Order { return s.Order.Get() }

// Summary reports the current view state.
func (s *Store[E]) Summary() Summary {
	res := s.Visible()
	return Summary{
		Name:       s.def.Name,
		Total:      len(s.Items.Get()),
		Criteria:   s.Criteria.Get(),
		Order:      s.Order.Get().String(),
		Pagination: res.Pagination,
		Loading:    s.Loading.Get(),
		Err:        s.Err.Get(),
		Selected:   s.Selected.Get(),
	}
}

// Table renders the visible page through the definition's columns.
func (s *Store[E]) Table() ([]string, [][]string) {
	headers := make([]string, len(s.def.Columns))
	for i, c := range s.def.Columns {
		headers[i] = c.Header
	}
	res := s.Visible()
	rows := make([][]string, 0, len(res.Page))
	for _, e := range res.Page {
		row := make([]string, len(s.def.Columns))
		for i, c := range s.def.Columns {
			row[i] = c.Value(e)
		}
		rows = append(rows, row)
	}
	return headers, rows
}

// Snapshot returns the visible result as an untyped value for encoding.
func (s *Store[E]) Snapshot() any {
	return s.Visible()
}
