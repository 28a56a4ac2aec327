// Package store binds the query pipeline to one feature's entity collection.
//
// A Store owns the raw collection plus the feature's filter criteria, sort
// order and page configuration, each held in an observable cell. Visible
// recomputes the view on every read. Loads carry a generation number so a
// result that arrives after a newer load has started, or after the page was
// unmounted, is discarded instead of overwriting fresher state.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sweengineeringlabs/eprocurement-sub002/internal/cell"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/logger"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/query"
)

// ErrStale is returned by Load when its result was discarded because a newer
// load started or its context ended first.
var ErrStale = errors.New("load superseded")

// DefaultPageSize is used when a Definition leaves PageSize zero.
const DefaultPageSize = 10

// Fetcher retrieves a feature's full collection from the data service.
type Fetcher[E any] func(ctx context.Context) ([]E, error)

// Column renders one field of an entity for tabular output.
type Column[E any] struct {
	Header string
	Value  func(E) string
}

// Definition configures a Store for one entity type.
type Definition[E any] struct {
	Name         string
	Schema       query.Schema[E]
	DefaultOrder query.Order
	PageSize     int
	ID           func(E) string
	Columns      []Column[E]
}

// Store is the per-feature view state. Cells are exported so pages can read
// and subscribe to them directly.
type Store[E any] struct {
	def     Definition[E]
	fetch   Fetcher[E]
	log     logger.Logger
	timeout time.Duration

	Items       *cell.Cell[[]E]
	Criteria    *cell.Cell[query.Criteria]
	Order       *cell.Cell[query.Order]
	CurrentPage *cell.Cell[int]
	PageSize    *cell.Cell[int]
	Loading     *cell.Cell[bool]
	Err         *cell.Cell[string]
	Selected    *cell.Cell[string]

	loadMu sync.Mutex
	gen    uint64

	mountMu sync.Mutex
	cancel  context.CancelFunc
}

// Option configures a Store.
type Option func(*options)

type options struct {
	log     logger.Logger
	timeout time.Duration
}

// WithLogger sets the logger used for load events.
func WithLogger(l logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithTimeout bounds every mount-triggered load. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// New creates a Store for def. fetch may be nil for stores that are only fed
// through Replace.
func New[E any](def Definition[E], fetch Fetcher[E], opts ...Option) *Store[E] {
	o := options{log: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	if def.PageSize < 1 {
		def.PageSize = DefaultPageSize
	}
	return &Store[E]{
		def:         def,
		fetch:       fetch,
		log:         o.log.With("feature", def.Name),
		timeout:     o.timeout,
		Items:       cell.New[[]E](nil),
		Criteria:    cell.New(query.Criteria{}),
		Order:       cell.New(def.DefaultOrder),
		CurrentPage: cell.New(1),
		PageSize:    cell.New(def.PageSize),
		Loading:     cell.New(false),
		Err:         cell.New(""),
		Selected:    cell.New(""),
	}
}

// Name returns the feature name.
func (s *Store[E]) Name() string { return s.def.Name }

// Definition returns the store's definition.
func (s *Store[E]) Definition() Definition[E] { return s.def }

// SetFilter merges p into the current criteria. Fields p omits are left as
// they are. The current page is not reset.
func (s *Store[E]) SetFilter(p query.Patch) {
	s.Criteria.Update(func(c query.Criteria) query.Criteria { return c.Merge(p) })
}

// ClearFilters resets the criteria to the all-absent default.
func (s *Store[E]) ClearFilters() {
	s.Criteria.Set(query.Criteria{})
}

// SetSort replaces the active order.
func (s *Store[E]) SetSort(o query.Order) {
	s.Order.Set(o)
}

// SetPage stores n verbatim. Out-of-range pages read as an empty slice.
func (s *Store[E]) SetPage(n int) {
	s.CurrentPage.Set(n)
}

// SetPageSize sets the page size. Values below 1 fall back to the
// definition's default so the size is always positive.
func (s *Store[E]) SetPageSize(n int) {
	s.PageSize.Set(query.ClampPageSize(n, s.def.PageSize, 0))
}

// Replace swaps the raw collection.
func (s *Store[E]) Replace(items []E) {
	s.Items.Set(items)
}

// Select records the ID of the entity a detail page is showing.
func (s *Store[E]) Select(id string) {
	s.Selected.Set(id)
}

// View returns the current pipeline configuration.
func (s *Store[E]) View() query.View {
	return query.View{
		Criteria: s.Criteria.Get(),
		Order:    s.Order.Get(),
		Page:     s.CurrentPage.Get(),
		PageSize: s.PageSize.Get(),
	}
}

// Visible runs the pipeline over the current collection.
func (s *Store[E]) Visible() query.Result[E] {
	return query.Run(s.Items.Get(), s.def.Schema, s.View())
}

// Lookup returns the entity with the given ID from the raw collection.
func (s *Store[E]) Lookup(id string) (E, bool) {
	var zero E
	if s.def.ID == nil {
		return zero, false
	}
	for _, e := range s.Items.Get() {
		if s.def.ID(e) == id {
			return e, true
		}
	}
	return zero, false
}

// CountBy counts raw entities per value of a key field. Unknown keys yield
// an empty map.
func (s *Store[E]) CountBy(key string) map[string]int {
	counts := make(map[string]int)
	get, ok := s.def.Schema.Keys[key]
	if !ok {
		return counts
	}
	for _, e := range s.Items.Get() {
		counts[get(e)]++
	}
	return counts
}

// Load fetches the collection and writes it into the store. Loading is true
// while the fetch runs and Err carries the failure message afterwards. When
// another Load starts before this one finishes, or ctx ends first, the
// result is dropped and ErrStale (or the context error) is returned.
//
// Load must not be called from a subscriber of this store's cells.
func (s *Store[E]) Load(ctx context.Context, fetch Fetcher[E]) error {
	gen := s.begin()
	return s.finish(ctx, gen, fetch)
}

func (s *Store[E]) begin() uint64 {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	s.gen++
	s.Loading.Set(true)
	s.Err.Set("")
	s.log.Debug("load started", "generation", s.gen)
	return s.gen
}

func (s *Store[E]) finish(ctx context.Context, gen uint64, fetch Fetcher[E]) error {
	items, err := fetch(ctx)

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if gen != s.gen {
		s.log.Debug("load discarded", "generation", gen, "current", s.gen)
		return ErrStale
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		s.Loading.Set(false)
		s.log.Debug("load abandoned", "generation", gen, "reason", ctxErr)
		return ctxErr
	}
	if err != nil {
		s.Err.Set(err.Error())
		s.Loading.Set(false)
		s.log.Warn("load failed", "generation", gen, "err", err)
		return err
	}
	s.Items.Set(items)
	s.Loading.Set(false)
	s.log.Debug("load done", "generation", gen, "items", len(items))
	return nil
}

// LoadAsync is Load run in the background. The generation is taken before
// it returns, so a later Load or LoadAsync always supersedes this one. The
// returned channel receives the result and is then closed.
func (s *Store[E]) LoadAsync(ctx context.Context, fetch Fetcher[E]) <-chan error {
	gen := s.begin()
	done := make(chan error, 1)
	go func() {
		done <- s.finish(ctx, gen, fetch)
		close(done)
	}()
	return done
}

// Mount starts a LoadAsync from the store's bound fetcher and returns a
// channel that receives its result. Mounting again, or calling Unmount,
// cancels the previous mount's load. A store without a fetcher completes
// immediately.
func (s *Store[E]) Mount(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	if s.fetch == nil {
		done <- nil
		close(done)
		return done
	}

	s.mountMu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	var cancel context.CancelFunc
	if s.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	s.cancel = cancel
	load := s.LoadAsync(ctx, s.fetch)
	s.mountMu.Unlock()

	go func() {
		defer close(done)
		err := <-load
		cancel()
		done <- err
	}()
	return done
}

// Unmount cancels any in-flight mount load.
func (s *Store[E]) Unmount() {
	s.mountMu.Lock()
	defer s.mountMu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
