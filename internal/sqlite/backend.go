// Package sqlite implements the data service behind every feature store.
//
// JSONL files in the data dir, one per feature table, are the source of
// truth. On Attach they are loaded into a fresh SQLite database, which
// answers reads. Every write updates SQLite and then rewrites the table's
// JSONL file atomically.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/sweengineeringlabs/eprocurement-sub002/internal/logger"
	"github.com/sweengineeringlabs/eprocurement-sub002/pkg/types"
)

const dbFile = "eproc.db"

// Backend implements types.Cupboard on SQLite.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	dataDir  string
	db       *sql.DB
	tables   map[string]*table
	log      logger.Logger
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger sets the logger for attach, detach and write events.
func WithLogger(l logger.Logger) Option {
	return func(b *Backend) { b.log = l }
}

// NewBackend creates a detached backend. Call Attach before use.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{
		tables: make(map[string]*table),
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// GetTable returns the table for a feature name.
func (b *Backend) GetTable(name string) (types.Table, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrCupboardDetached
	}
	t, ok := b.tables[name]
	if !ok {
		return nil, types.ErrTableNotFound
	}
	return t, nil
}

// Attach validates config, seeds missing JSONL files, and loads every table
// into a fresh database under config.DataDir.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	seeded, err := seedMissingJSONL(dataDir, types.StandardTableNames)
	if err != nil {
		return err
	}
	if len(seeded) > 0 {
		b.log.Info("seeded data dir", "dir", dataDir, "tables", seeded)
	}

	// The database is a cache of the JSONL files and is rebuilt every time.
	dbPath := filepath.Join(dataDir, dbFile)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	counts, err := loadAllJSONL(db, dataDir, types.StandardTableNames)
	if err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	b.db = db
	b.config = config
	b.dataDir = dataDir
	b.attached = true
	for _, name := range types.StandardTableNames {
		b.tables[name] = &table{name: name, backend: b}
	}

	b.log.Info("backend attached", "dir", dataDir, "records", counts)
	return nil
}

// Detach closes the database. It is safe to call more than once; tables
// obtained earlier return ErrCupboardDetached afterwards.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if err := b.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	b.db = nil
	b.attached = false
	b.tables = make(map[string]*table)
	b.log.Info("backend detached", "dir", b.dataDir)
	return nil
}

// DataDir returns the directory the backend is attached to.
func (b *Backend) DataDir() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dataDir
}
