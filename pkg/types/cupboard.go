package types

import "errors"

// Cupboard defines backend-agnostic access to the procurement data service.
// Callers attach to a backend, access feature tables by name, and detach
// when done.
type Cupboard interface {
	// GetTable returns the Table for the given feature name.
	// Returns ErrTableNotFound if the name is not a known feature table.
	GetTable(name string) (Table, error)

	// Attach connects the Cupboard to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, operations on tables return ErrCupboardDetached.
	Detach() error
}

// Cupboard lifecycle errors.
var (
	ErrCupboardDetached = errors.New("cupboard is detached")
	ErrAlreadyAttached  = errors.New("cupboard is already attached")
	ErrTableNotFound    = errors.New("table not found")
)
