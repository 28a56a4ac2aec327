package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweengineeringlabs/eprocurement-sub002/pkg/types"
)

func attachTemp(t *testing.T) (*Backend, string) {
	t.Helper()
	dir := t.TempDir()
	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	t.Cleanup(func() { b.Detach() })
	return b, dir
}

func TestAttachSeedsDataDir(t *testing.T) {
	b, dir := attachTemp(t)
	assert.Equal(t, dir, b.DataDir())

	for _, name := range types.StandardTableNames {
		_, err := os.Stat(filepath.Join(dir, name+".jsonl"))
		assert.NoError(t, err, name)

		tbl, err := b.GetTable(name)
		require.NoError(t, err)
		rows, err := tbl.Fetch(t.Context(), nil)
		require.NoError(t, err)
		assert.NotEmpty(t, rows, name)
	}
}

func TestAttachKeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "suppliers.jsonl"),
		[]byte(`{"id":"only","name":"Solo Supplies"}`+"\n"), 0o644))

	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	defer b.Detach()

	tbl, err := b.GetTable(types.SuppliersTable)
	require.NoError(t, err)
	rows, err := tbl.Fetch(t.Context(), nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Solo Supplies", rows[0].(*types.Supplier).Name)
}

func TestAttachErrors(t *testing.T) {
	tests := []struct {
		name   string
		config types.Config
		want   error
	}{
		{"empty backend", types.Config{DataDir: t.TempDir()}, types.ErrBackendEmpty},
		{"unknown backend", types.Config{Backend: "postgres", DataDir: t.TempDir()}, types.ErrBackendUnknown},
		{"bad prefix", types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir(), RoutePrefix: "app"}, types.ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewBackend().Attach(tt.config)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("already attached", func(t *testing.T) {
		b, dir := attachTemp(t)
		err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir})
		assert.ErrorIs(t, err, types.ErrAlreadyAttached)
	})
}

func TestDetach(t *testing.T) {
	b, _ := attachTemp(t)
	tbl, err := b.GetTable(types.TendersTable)
	require.NoError(t, err)

	require.NoError(t, b.Detach())
	require.NoError(t, b.Detach())

	_, err = b.GetTable(types.TendersTable)
	assert.ErrorIs(t, err, types.ErrCupboardDetached)
	_, err = tbl.Get("tnd-001")
	assert.ErrorIs(t, err, types.ErrCupboardDetached)
	_, err = tbl.Fetch(t.Context(), nil)
	assert.ErrorIs(t, err, types.ErrCupboardDetached)
}

func TestGetTableUnknown(t *testing.T) {
	b, _ := attachTemp(t)
	_, err := b.GetTable("invoices")
	assert.ErrorIs(t, err, types.ErrTableNotFound)
}

func TestWritesSurviveReattach(t *testing.T) {
	b, dir := attachTemp(t)
	tbl, err := b.GetTable(types.RequisitionsTable)
	require.NoError(t, err)

	id, err := tbl.Set("", &types.Requisition{Number: "REQ-2025-0099", Title: "Projectors"})
	require.NoError(t, err)
	require.NoError(t, tbl.Delete("req-001"))
	require.NoError(t, b.Detach())

	again := NewBackend()
	require.NoError(t, again.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	defer again.Detach()

	tbl, err = again.GetTable(types.RequisitionsTable)
	require.NoError(t, err)
	got, err := tbl.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Projectors", got.(*types.Requisition).Title)

	_, err = tbl.Get("req-001")
	assert.ErrorIs(t, err, types.ErrNotFound)
}
