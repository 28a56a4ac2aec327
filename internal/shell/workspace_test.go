package shell

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweengineeringlabs/eprocurement-sub002/internal/router"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/sqlite"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/store"
	"github.com/sweengineeringlabs/eprocurement-sub002/pkg/types"
)

func newWorkspace(t *testing.T, initial string, opts ...Option) (*Workspace, *router.MemoryHistory) {
	t.Helper()
	b := sqlite.NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}))

	h := router.NewMemoryHistory(initial)
	ws := New(context.Background(), router.New(h), b, opts...)
	t.Cleanup(func() { ws.Close() })
	require.NoError(t, ws.Wait(context.Background()))
	return ws, h
}

func TestInitialRouteMounts(t *testing.T) {
	ws, _ := newWorkspace(t, "/app/catalogue")

	rt, f := ws.Mounted()
	assert.Equal(t, router.To(router.CatalogueList), rt)
	require.NotNil(t, f)
	assert.Equal(t, types.CatalogueTable, f.Name())

	sum := f.Summary()
	assert.Equal(t, 15, sum.Total)
	assert.Equal(t, 12, sum.Pagination.Size)
	assert.Equal(t, 2, sum.Pagination.TotalPages)
	assert.False(t, sum.Loading)
}

func TestNavigationSeedsFeature(t *testing.T) {
	ws, h := newWorkspace(t, "/app")
	r := ws.Router()

	_, f := ws.Mounted()
	assert.Nil(t, f)

	require.NoError(t, r.Navigate(router.WithID(router.TendersEdit, "tnd-002")))
	require.NoError(t, ws.Wait(context.Background()))

	tenders, err := Lookup[types.Tender](ws, types.TendersTable)
	require.NoError(t, err)
	assert.Equal(t, "tnd-002", tenders.Selected.Get())
	assert.Equal(t, []string{"tnd-002"}, tenderIDs(tenders.Visible().Items))

	require.NoError(t, r.Navigate(router.To(router.TendersList)))
	require.NoError(t, ws.Wait(context.Background()))
	assert.Empty(t, tenders.Selected.Get())
	assert.Len(t, tenders.Visible().Items, 5)

	require.True(t, h.Back())
	require.NoError(t, ws.Wait(context.Background()))
	rt, f := ws.Mounted()
	assert.Equal(t, router.WithID(router.TendersEdit, "tnd-002"), rt)
	assert.Equal(t, types.TendersTable, f.Name())
	assert.Equal(t, []string{"tnd-002"}, tenderIDs(tenders.Visible().Items))
}

func tenderIDs(ts []types.Tender) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}

func TestMountReloadsFresh(t *testing.T) {
	ws, _ := newWorkspace(t, "/app/suppliers")
	r := ws.Router()

	tbl, err := ws.Cupboard().GetTable(types.SuppliersTable)
	require.NoError(t, err)
	_, err = tbl.Set("", &types.Supplier{Name: "Newco"})
	require.NoError(t, err)

	require.NoError(t, r.Navigate(router.To(router.SuppliersRisk)))
	require.NoError(t, ws.Wait(context.Background()))

	suppliers, err := Lookup[types.Supplier](ws, types.SuppliersTable)
	require.NoError(t, err)
	assert.Len(t, suppliers.Items.Get(), 8)
}

func TestReloadKeepsView(t *testing.T) {
	ws, _ := newWorkspace(t, "/app/catalogue")
	f, err := ws.Feature(types.CatalogueTable)
	require.NoError(t, err)
	f.SetPage(2)

	require.NoError(t, ws.Reload(context.Background()))
	assert.Equal(t, 2, f.Summary().Pagination.Current)
	assert.Len(t, mustStore[types.CatalogueItem](t, ws, types.CatalogueTable).Visible().Page, 3)
}

func mustStore[E any](t *testing.T, ws *Workspace, name string) *store.Store[E] {
	t.Helper()
	s, err := Lookup[E](ws, name)
	require.NoError(t, err)
	return s
}

func TestLookupErrors(t *testing.T) {
	ws, _ := newWorkspace(t, "/app")

	_, err := Lookup[types.Supplier](ws, types.TendersTable)
	assert.ErrorIs(t, err, ErrFeatureType)

	_, err = Lookup[types.Supplier](ws, "invoices")
	assert.ErrorIs(t, err, ErrUnknownFeature)

	assert.Len(t, ws.FeatureNames(), len(types.StandardTableNames))
}

func TestPageSizeOption(t *testing.T) {
	ws, _ := newWorkspace(t, "/app/documents", WithPageSize(5))
	_, f := ws.Mounted()
	require.NotNil(t, f)
	assert.Equal(t, 5, f.Summary().Pagination.Size)
}

type stubTable struct {
	fetch func(ctx context.Context) ([]any, error)
}

func (s stubTable) Get(string) (any, error)         { return nil, types.ErrNotFound }
func (s stubTable) Set(string, any) (string, error) { return "", nil }
func (s stubTable) Delete(string) error             { return nil }
func (s stubTable) Fetch(ctx context.Context, _ types.Filter) ([]any, error) {
	return s.fetch(ctx)
}

type stubCupboard struct {
	table    stubTable
	detached bool
}

func (c *stubCupboard) GetTable(string) (types.Table, error) { return c.table, nil }
func (c *stubCupboard) Attach(types.Config) error            { return nil }
func (c *stubCupboard) Detach() error                        { c.detached = true; return nil }

func TestLoadFailures(t *testing.T) {
	t.Run("error surfaces on the store", func(t *testing.T) {
		c := &stubCupboard{table: stubTable{fetch: func(context.Context) ([]any, error) {
			return nil, errors.New("upstream down")
		}}}
		ws := New(context.Background(), router.New(router.NewMemoryHistory("/app/contracts")), c)
		defer ws.Close()

		assert.Error(t, ws.Wait(context.Background()))
		_, f := ws.Mounted()
		assert.Contains(t, f.Summary().Err, "upstream down")
		assert.False(t, f.Summary().Loading)
	})

	t.Run("timeout abandons the load", func(t *testing.T) {
		c := &stubCupboard{table: stubTable{fetch: func(ctx context.Context) ([]any, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}}}
		ws := New(context.Background(), router.New(router.NewMemoryHistory("/app/audit")), c,
			WithLoadTimeout(20*time.Millisecond))
		defer ws.Close()

		assert.ErrorIs(t, ws.Wait(context.Background()), context.DeadlineExceeded)
	})

	t.Run("navigating away cancels the load", func(t *testing.T) {
		started := make(chan struct{}, 1)
		c := &stubCupboard{table: stubTable{fetch: func(ctx context.Context) ([]any, error) {
			started <- struct{}{}
			<-ctx.Done()
			return nil, ctx.Err()
		}}}
		h := router.NewMemoryHistory("/app/audit")
		ws := New(context.Background(), router.New(h), c)
		defer ws.Close()
		<-started

		ws.mu.Lock()
		first := ws.mounted
		ws.mu.Unlock()

		require.NoError(t, ws.Router().Navigate(router.To(router.Dashboard)))
		<-first.done
		assert.ErrorIs(t, first.err, context.Canceled)
		assert.NoError(t, ws.Wait(context.Background()))
	})
}

func TestClose(t *testing.T) {
	c := &stubCupboard{table: stubTable{fetch: func(context.Context) ([]any, error) { return nil, nil }}}
	ws := New(context.Background(), router.New(router.NewMemoryHistory("/app")), c)

	require.NoError(t, ws.Close())
	require.NoError(t, ws.Close())
	assert.True(t, c.detached)

	require.NoError(t, ws.Router().Navigate(router.To(router.TendersList)))
	rt, f := ws.Mounted()
	assert.Equal(t, router.To(router.Dashboard), rt)
	assert.Nil(t, f)
}
