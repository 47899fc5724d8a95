package persist

import (
	"context"
	"sync"

	"evocoffee/internal/store"
)

// MemoryStore holds the document in memory only. Used in tests and for
// throwaway runs.
type MemoryStore struct {
	mu  sync.Mutex
	doc store.Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Read(_ context.Context) (store.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.doc, nil
}

func (m *MemoryStore) Write(_ context.Context, doc store.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc = doc
	return nil
}

func (m *MemoryStore) Close() error { return nil }
