package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T, dir string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(dir, dbFile))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	for _, ddl := range schemaDDL {
		_, err := db.Exec(ddl)
		require.NoError(t, err)
	}
	return db
}

func TestLoadAllJSONL(t *testing.T) {
	dir := t.TempDir()
	db := openTestDB(t, dir)
	require.NoError(t, os.WriteFile(jsonlFile(dir, "alpha"), []byte(
		`{"id":"a1","extra":{"kept":true}}`+"\n"+
			`{"name":"no id"}`+"\n"+
			`[1,2,3]`+"\n"+
			`{"id":"a2"}`+"\n"), 0o644))
	require.NoError(t, os.WriteFile(jsonlFile(dir, "beta"), nil, 0o644))

	counts, err := loadAllJSONL(db, dir, []string{"alpha", "beta"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"alpha": 2}, counts)

	var doc string
	require.NoError(t, db.QueryRow("SELECT doc FROM records WHERE tbl = 'alpha' AND id = 'a1'").Scan(&doc))
	assert.JSONEq(t, `{"id":"a1","extra":{"kept":true}}`, doc)

	var seq int
	require.NoError(t, db.QueryRow("SELECT seq FROM records WHERE tbl = 'alpha' AND id = 'a2'").Scan(&seq))
	assert.Equal(t, 4, seq)
}

func TestLoadAllJSONLMissingFileRollsBack(t *testing.T) {
	dir := t.TempDir()
	db := openTestDB(t, dir)
	require.NoError(t, os.WriteFile(jsonlFile(dir, "alpha"), []byte(`{"id":"a1"}`+"\n"), 0o644))

	_, err := loadAllJSONL(db, dir, []string{"alpha", "missing"})
	require.Error(t, err)

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM records").Scan(&n))
	assert.Zero(t, n)
}

func TestSeedMissingJSONL(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(jsonlFile(dir, "catalogue"), []byte("mine\n"), 0o644))

	created, err := seedMissingJSONL(dir, []string{"catalogue", "tenders", "invoices"})
	require.NoError(t, err)
	assert.Equal(t, []string{"tenders", "invoices"}, created)

	data, err := os.ReadFile(jsonlFile(dir, "catalogue"))
	require.NoError(t, err)
	assert.Equal(t, "mine\n", string(data))

	records, err := readJSONL(jsonlFile(dir, "tenders"))
	require.NoError(t, err)
	assert.Len(t, records, 5)

	info, err := os.Stat(jsonlFile(dir, "invoices"))
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}
