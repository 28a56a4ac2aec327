// Package sqlite exposes the SQLite data service to callers outside this
// module while keeping its implementation internal.
package sqlite

import (
	"github.com/sweengineeringlabs/eprocurement-sub002/internal/sqlite"
	"github.com/sweengineeringlabs/eprocurement-sub002/pkg/types"
)

// NewBackend creates a detached SQLite backend.
//
// Example:
//
//	backend := sqlite.NewBackend()
//	err := backend.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: "/var/lib/eproc",
//	})
//	defer backend.Detach()
func NewBackend() types.Cupboard {
	return sqlite.NewBackend()
}
