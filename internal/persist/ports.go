// Package persist stores and retrieves the application state document.
// The contract is deliberately coarse: whole-document read and whole-
// document replace, never a partial update.
package persist

import (
	"context"

	"evocoffee/internal/store"
)

// Store is the persistence port the orchestrator writes through and the
// process loads from at startup.
type Store interface {
	// Read returns the last written document. A backend with nothing
	// stored yet returns the zero document and no error.
	Read(ctx context.Context) (store.Document, error)
	// Write replaces the stored document atomically.
	Write(ctx context.Context, doc store.Document) error
	Close() error
}
