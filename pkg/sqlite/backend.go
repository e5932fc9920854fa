// Package sqlite provides the public API for the SQLite address book
// backend. It exposes the factory function while keeping implementation
// details internal.
package sqlite

import (
	"github.com/mesh-intelligence/contacts/internal/sqlite"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// NewBackend creates a new SQLite store.
// The store is not attached; call Attach to initialize.
//
// Example:
//
//	store := sqlite.NewBackend()
//	if err := store.Attach(); err != nil {
//	    return err
//	}
//	defer store.Detach()
func NewBackend() types.Store {
	return sqlite.NewBackend()
}
