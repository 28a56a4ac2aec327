package types

import (
	"errors"
	"testing"
)

func TestNewEntity(t *testing.T) {
	for _, name := range StandardTableNames {
		t.Run(name, func(t *testing.T) {
			e, err := NewEntity(name)
			if err != nil {
				t.Fatalf("NewEntity(%q) error: %v", name, err)
			}
			e.SetEntityID("X-1")
			if got := e.EntityID(); got != "X-1" {
				t.Fatalf("EntityID() = %q, want X-1", got)
			}
		})
	}

	if _, err := NewEntity("widgets"); !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("expected ErrTableNotFound, got %v", err)
	}
}
