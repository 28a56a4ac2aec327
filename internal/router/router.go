// Package router maps Route values to URL paths and back, and keeps a
// current-route cell in step with a History.
//
// Navigation pushes a new history entry and sets the cell synchronously.
// Moving through existing entries (back, forward) is observed through a
// single pop listener registered when the Router is created.
package router

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sweengineeringlabs/eprocurement-sub002/internal/cell"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/logger"
)

// DefaultPrefix is the base path the application is served under.
const DefaultPrefix = "/app"

// ErrInvalidRoute is returned by Navigate for routes that fail Valid.
var ErrInvalidRoute = errors.New("invalid route")

// Router owns the current route.
type Router struct {
	table   *Table
	history History
	prefix  string
	log     logger.Logger
	current *cell.Cell[Route]
}

// Option configures a Router.
type Option func(*Router)

// WithPrefix sets the base path prepended on push and stripped on read.
// An empty prefix serves routes from the root.
func WithPrefix(prefix string) Option {
	return func(r *Router) { r.prefix = strings.TrimRight(prefix, "/") }
}

// WithTable replaces DefaultTable.
func WithTable(t *Table) Option {
	return func(r *Router) { r.table = t }
}

// WithLogger sets the logger used for navigation events.
func WithLogger(l logger.Logger) Option {
	return func(r *Router) { r.log = l }
}

// New creates a Router whose initial route is parsed from h's present path.
func New(h History, opts ...Option) *Router {
	r := &Router{
		table:   DefaultTable,
		history: h,
		prefix:  DefaultPrefix,
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.current = cell.New(r.parse(h.Path()))
	h.OnPop(r.onPop)
	return r
}

func (r *Router) onPop() {
	next := r.parse(r.history.Path())
	r.log.Debug("history pop", "route", next)
	r.current.Set(next)
}

// parse strips the prefix, when present, then parses the remainder.
func (r *Router) parse(path string) Route {
	if r.prefix != "" {
		if path == r.prefix {
			path = "/"
		} else if rest, ok := strings.CutPrefix(path, r.prefix+"/"); ok {
			path = "/" + rest
		}
	}
	return r.table.FromPath(path)
}

// Navigate pushes rt's path onto the history and makes it current.
func (r *Router) Navigate(rt Route) error {
	if !rt.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidRoute, rt)
	}
	r.history.Push(r.Href(rt))
	r.log.Debug("navigate", "route", rt)
	r.current.Set(rt)
	return nil
}

// NavigatePath parses path, which may carry the prefix, and navigates to the
// result. Unmatched paths navigate to Dashboard.
func (r *Router) NavigatePath(path string) Route {
	rt := r.parse(path)
	// Parsed routes are always valid.
	_ = r.Navigate(rt)
	return rt
}

// Current returns the current route.
func (r *Router) Current() Route { return r.current.Get() }

// Cell exposes the current-route cell for subscription.
func (r *Router) Cell() *cell.Cell[Route] { return r.current }

// Path returns rt's canonical path without the prefix.
func (r *Router) Path(rt Route) string { return r.table.ToPath(rt) }

// Href returns rt's path with the prefix, for links and history entries.
func (r *Router) Href(rt Route) string {
	return r.prefix + r.table.ToPath(rt)
}

// Table returns the route table in use.
func (r *Router) Table() *Table { return r.table }
