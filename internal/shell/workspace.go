// Package shell wires the router, the feature stores and the data service
// into one Workspace. Route changes unmount the previous page's feature and
// mount the next one, seeding it from the route and reloading its data.
package shell

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sweengineeringlabs/eprocurement-sub002/internal/features"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/logger"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/router"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/store"
	"github.com/sweengineeringlabs/eprocurement-sub002/pkg/types"
)

// ErrUnknownFeature is returned for feature names with no store.
var ErrUnknownFeature = errors.New("unknown feature")

// ErrFeatureType is returned by Lookup when the entity type does not match
// the feature's store.
var ErrFeatureType = errors.New("feature entity type mismatch")

// Workspace is the application state container.
type Workspace struct {
	ctx      context.Context
	router   *router.Router
	cupboard types.Cupboard
	features map[string]store.Feature
	log      logger.Logger

	mu          sync.Mutex
	mounted     *mount
	unsubscribe func()
	closed      bool
}

// mount tracks one page's load.
type mount struct {
	route   router.Route
	feature string
	done    chan struct{}
	err     error
}

// Option configures a Workspace.
type Option func(*settings)

type settings struct {
	log      logger.Logger
	timeout  time.Duration
	pageSize int
}

// WithLogger sets the logger passed to every store.
func WithLogger(l logger.Logger) Option {
	return func(s *settings) { s.log = l }
}

// WithLoadTimeout bounds each mount's load.
func WithLoadTimeout(d time.Duration) Option {
	return func(s *settings) { s.timeout = d }
}

// WithPageSize overrides every feature's default page size. Zero keeps the
// per-feature defaults.
func WithPageSize(n int) Option {
	return func(s *settings) { s.pageSize = n }
}

// New builds a store for every feature, fetching from c, and mounts the
// router's current route. ctx is the parent of every load; cancelling it
// abandons them. c may be nil for a workspace without data.
func New(ctx context.Context, r *router.Router, c types.Cupboard, opts ...Option) *Workspace {
	s := settings{log: logger.Discard(), timeout: types.DefaultLoadTimeout}
	for _, opt := range opts {
		opt(&s)
	}

	ws := &Workspace{
		ctx:      ctx,
		router:   r,
		cupboard: c,
		features: features.New(c, store.WithLogger(s.log), store.WithTimeout(s.timeout)),
		log:      s.log,
	}
	if s.pageSize > 0 {
		for _, f := range ws.features {
			f.SetPageSize(s.pageSize)
		}
	}

	ws.onRoute(r.Current())
	ws.unsubscribe = r.Cell().Subscribe(ws.onRoute)
	return ws
}

func (ws *Workspace) onRoute(rt router.Route) {
	ws.mount(rt, true)
}

// mount swaps the mounted page for rt. seed applies the route's ID to the
// feature's view; a reload leaves the view alone.
func (ws *Workspace) mount(rt router.Route, seed bool) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if ws.closed {
		return
	}

	if prev := ws.mounted; prev != nil && prev.feature != "" {
		ws.features[prev.feature].Unmount()
		ws.log.Debug("page unmounted", "route", prev.route, "feature", prev.feature)
	}

	m := &mount{route: rt, done: make(chan struct{})}
	ws.mounted = m

	info, ok := features.ForKind(rt.Kind)
	if !ok {
		close(m.done)
		ws.log.Debug("page mounted", "route", rt)
		return
	}

	f := ws.features[info.Name]
	m.feature = info.Name
	if seed {
		f.Seed(rt.ID)
	}
	result := f.Mount(ws.ctx)
	ws.log.Debug("page mounted", "route", rt, "feature", info.Name)

	go func() {
		m.err = <-result
		close(m.done)
	}()
}

// Router returns the workspace's router.
func (ws *Workspace) Router() *router.Router { return ws.router }

// Cupboard returns the data service, which may be nil.
func (ws *Workspace) Cupboard() types.Cupboard { return ws.cupboard }

// Feature returns the store registered under name.
func (ws *Workspace) Feature(name string) (store.Feature, error) {
	f, ok := ws.features[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFeature, name)
	}
	return f, nil
}

// FeatureNames lists the registered features alphabetically.
func (ws *Workspace) FeatureNames() []string {
	names := make([]string, 0, len(ws.features))
	for name := range ws.features {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mounted returns the current route and the feature it mounted, if any.
func (ws *Workspace) Mounted() (router.Route, store.Feature) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if ws.mounted == nil {
		return ws.router.Current(), nil
	}
	if ws.mounted.feature == "" {
		return ws.mounted.route, nil
	}
	return ws.mounted.route, ws.features[ws.mounted.feature]
}

// Wait blocks until the current page's load finishes and returns its error.
// A later navigation does not affect a Wait already in progress.
func (ws *Workspace) Wait(ctx context.Context) error {
	ws.mu.Lock()
	m := ws.mounted
	ws.mu.Unlock()
	if m == nil {
		return nil
	}
	select {
	case <-m.done:
		return m.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Reload refetches the mounted feature without changing its view state.
func (ws *Workspace) Reload(ctx context.Context) error {
	ws.mount(ws.router.Current(), false)
	return ws.Wait(ctx)
}

// Close stops following the router, abandons the current load and detaches
// the data service.
func (ws *Workspace) Close() error {
	ws.mu.Lock()
	if ws.closed {
		ws.mu.Unlock()
		return nil
	}
	ws.closed = true
	ws.unsubscribe()
	if m := ws.mounted; m != nil && m.feature != "" {
		ws.features[m.feature].Unmount()
	}
	ws.mu.Unlock()

	if ws.cupboard == nil {
		return nil
	}
	if err := ws.cupboard.Detach(); err != nil {
		return fmt.Errorf("detach: %w", err)
	}
	return nil
}

// Lookup returns the typed store registered under name.
func Lookup[E any](ws *Workspace, name string) (*store.Store[E], error) {
	f, err := ws.Feature(name)
	if err != nil {
		return nil, err
	}
	s, ok := f.(*store.Store[E])
	if !ok {
		var zero E
		return nil, fmt.Errorf("%w: %s holds %T, not %T", ErrFeatureType, name, f, zero)
	}
	return s, nil
}
