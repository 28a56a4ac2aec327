package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"regexp"
	"slices"

	"github.com/google/uuid"

	"github.com/sweengineeringlabs/eprocurement-sub002/pkg/types"
)

var _ types.Table = (*table)(nil)

// filterKey limits filter keys to plain JSON field names.
var filterKey = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// table implements types.Table for one feature. Records are hydrated into
// the entity type types.NewEntity returns for the table name.
type table struct {
	name    string
	backend *Backend
}

// newUUID generates a UUID v7, falling back to v4.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// db returns the open database, or ErrCupboardDetached. Callers hold the
// backend lock.
func (t *table) db() (*sql.DB, error) {
	if !t.backend.attached {
		return nil, types.ErrCupboardDetached
	}
	return t.backend.db, nil
}

// Get returns the entity with id as the table's entity pointer type.
func (t *table) Get(id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()

	db, err := t.db()
	if err != nil {
		return nil, err
	}
	var doc string
	err = db.QueryRow("SELECT doc FROM records WHERE tbl = ? AND id = ?", t.name, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting %s %s: %w", t.name, id, err)
	}
	return t.hydrate(doc)
}

// Set creates or updates an entity. data must be the table's entity pointer
// type. An empty id creates a new entity with a UUID v7 written back into
// data; otherwise id replaces whatever ID data carries.
func (t *table) Set(id string, data any) (string, error) {
	e, err := t.entity(data)
	if err != nil {
		return "", err
	}
	if id == "" {
		id = newUUID()
	}
	e.SetEntityID(id)

	doc, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrInvalidData, err)
	}

	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()

	db, err := t.db()
	if err != nil {
		return "", err
	}
	_, err = db.Exec(`INSERT INTO records (tbl, id, seq, doc)
VALUES (?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM records WHERE tbl = ?), ?)
ON CONFLICT (tbl, id) DO UPDATE SET doc = excluded.doc`,
		t.name, id, t.name, string(doc))
	if err != nil {
		return "", fmt.Errorf("saving %s %s: %w", t.name, id, err)
	}
	if err := t.persistJSONL(db); err != nil {
		return "", err
	}
	t.backend.log.Debug("record saved", "table", t.name, "id", id)
	return id, nil
}

// Delete removes the entity with id.
func (t *table) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()

	db, err := t.db()
	if err != nil {
		return err
	}
	res, err := db.Exec("DELETE FROM records WHERE tbl = ? AND id = ?", t.name, id)
	if err != nil {
		return fmt.Errorf("deleting %s %s: %w", t.name, id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return types.ErrNotFound
	}
	if err := t.persistJSONL(db); err != nil {
		return err
	}
	t.backend.log.Debug("record deleted", "table", t.name, "id", id)
	return nil
}

// Fetch returns the entities whose top-level JSON fields equal every value
// in filter, in insertion order. Filter values may be strings, bools or
// numbers.
func (t *table) Fetch(ctx context.Context, filter types.Filter) ([]any, error) {
	q := "SELECT doc FROM records WHERE tbl = ?"
	args := []any{t.name}
	for _, key := range sortedFilterKeys(filter) {
		if !filterKey.MatchString(key) {
			return nil, fmt.Errorf("%w: key %q", types.ErrInvalidFilter, key)
		}
		v, err := filterValue(filter[key])
		if err != nil {
			return nil, fmt.Errorf("%w: key %q", err, key)
		}
		q += " AND json_extract(doc, ?) = ?"
		args = append(args, "$."+key, v)
	}
	q += " ORDER BY seq"

	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()

	db, err := t.db()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", t.name, err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", t.name, err)
		}
		e, err := t.hydrate(doc)
		if err != nil {
			return nil, err
		}
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", t.name, err)
	}
	return results, nil
}

func (t *table) hydrate(doc string) (types.Entity, error) {
	e, err := types.NewEntity(t.name)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(doc), e); err != nil {
		return nil, fmt.Errorf("hydrating %s: %w", t.name, err)
	}
	return e, nil
}

// entity checks that data is the table's entity pointer type.
func (t *table) entity(data any) (types.Entity, error) {
	proto, err := types.NewEntity(t.name)
	if err != nil {
		return nil, err
	}
	e, ok := data.(types.Entity)
	if !ok || reflect.TypeOf(e) != reflect.TypeOf(proto) || reflect.ValueOf(e).IsNil() {
		return nil, fmt.Errorf("%w: %s expects %T, got %T", types.ErrInvalidData, t.name, proto, data)
	}
	return e, nil
}

// persistJSONL rewrites the table's JSONL file from the database.
func (t *table) persistJSONL(db *sql.DB) error {
	rows, err := db.Query("SELECT doc FROM records WHERE tbl = ? ORDER BY seq", t.name)
	if err != nil {
		return fmt.Errorf("querying %s for JSONL: %w", t.name, err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return fmt.Errorf("scanning %s for JSONL: %w", t.name, err)
		}
		records = append(records, json.RawMessage(doc))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating %s for JSONL: %w", t.name, err)
	}
	if err := writeJSONL(jsonlFile(t.backend.dataDir, t.name), records); err != nil {
		return fmt.Errorf("persisting %s.jsonl: %w", t.name, err)
	}
	return nil
}

func filterValue(v any) (any, error) {
	switch x := v.(type) {
	case string, int, int64, float64:
		return x, nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	default:
		return nil, types.ErrInvalidFilter
	}
}

func sortedFilterKeys(f types.Filter) []string {
	return slices.Sorted(maps.Keys(f))
}
