package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/sweengineeringlabs/eprocurement-sub002/internal/features"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/logger"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/paths"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/router"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/shell"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/sqlite"
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/store"
	"github.com/sweengineeringlabs/eprocurement-sub002/pkg/types"
)

// dataDir resolves the data directory from flag, environment and config.
func (a *app) dataDir() (string, error) {
	dir, err := paths.ResolveDataDir(a.flags.dataDir, a.cfg.DataDir)
	if err != nil {
		return "", systemError(fmt.Errorf("resolve data dir: %w", err))
	}
	return dir, nil
}

// attach opens the data service. The caller must Detach it.
func (a *app) attach(ctx context.Context) (*sqlite.Backend, error) {
	dir, err := a.dataDir()
	if err != nil {
		return nil, err
	}
	cfg := a.cfg
	cfg.DataDir = dir

	backend := sqlite.NewBackend(sqlite.WithLogger(logger.FromContext(ctx)))
	if err := backend.Attach(cfg); err != nil {
		return nil, systemError(fmt.Errorf("attach backend: %w", err))
	}
	return backend, nil
}

// table attaches and returns the named feature table along with the backend
// to detach.
func (a *app) table(ctx context.Context, name string) (types.Table, *sqlite.Backend, error) {
	backend, err := a.attach(ctx)
	if err != nil {
		return nil, nil, err
	}
	t, err := backend.GetTable(name)
	if err != nil {
		_ = backend.Detach()
		if errors.Is(err, types.ErrTableNotFound) {
			return nil, nil, fmt.Errorf("unknown feature %q (valid: %s)", name, strings.Join(types.StandardTableNames, ", "))
		}
		return nil, nil, fmt.Errorf("get table: %w", err)
	}
	return t, backend, nil
}

// workspace attaches the data service and builds a Workspace over a router
// driven by h. Closing the workspace detaches the backend.
func (a *app) workspace(ctx context.Context, h router.History) (*shell.Workspace, error) {
	backend, err := a.attach(ctx)
	if err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)
	r := router.New(h,
		router.WithPrefix(a.cfg.EffectiveRoutePrefix()),
		router.WithLogger(log),
	)
	return shell.New(ctx, r, backend,
		shell.WithLogger(log),
		shell.WithLoadTimeout(a.cfg.EffectiveLoadTimeout()),
		shell.WithPageSize(a.cfg.PageSize),
	), nil
}

// newRouter builds a router without data, for the route commands.
func (a *app) newRouter(ctx context.Context, path string) (*router.Router, *router.MemoryHistory) {
	h := router.NewMemoryHistory(path)
	r := router.New(h,
		router.WithPrefix(a.cfg.EffectiveRoutePrefix()),
		router.WithLogger(logger.FromContext(ctx)),
	)
	return r, h
}

// open navigates ws to the feature's list page and waits for its data.
func open(ctx context.Context, ws *shell.Workspace, name string) (store.Feature, error) {
	f, err := ws.Feature(name)
	info, ok := features.Lookup(name)
	if err != nil || !ok || len(info.Kinds) == 0 {
		return nil, fmt.Errorf("unknown feature %q (valid: %s)", name, strings.Join(ws.FeatureNames(), ", "))
	}
	if err := ws.Router().Navigate(router.To(info.Kinds[0])); err != nil {
		return nil, err
	}
	if err := ws.Wait(ctx); err != nil {
		return nil, systemError(fmt.Errorf("load %s: %w", name, err))
	}
	return f, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeTable prints headers and rows aligned in columns.
func writeTable(w io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// writeView prints the feature's visible page and its paging line.
func writeView(w io.Writer, f store.Feature) error {
	sum := f.Summary()
	headers, rows := f.Table()
	if len(rows) == 0 {
		fmt.Fprintln(w, "No items.")
	} else if err := writeTable(w, headers, rows); err != nil {
		return err
	}
	fmt.Fprintln(w, pageLine(sum))
	return nil
}

func pageLine(sum store.Summary) string {
	p := sum.Pagination
	return fmt.Sprintf("Page %d of %d (%s items)", p.Current, p.TotalPages, humanize.Comma(int64(p.TotalItems)))
}
