// Package memory is an in-process PurchaseWriter used in tests and when no
// spreadsheet is configured.
package memory

import (
	"context"
	"fmt"
	"sync"

	ports "evocoffee/internal/sheets"
)

type Store struct {
	mu   sync.Mutex
	rows []ports.PurchaseRow
}

func New() *Store {
	return &Store{}
}

// Append stores the row and returns a synthetic row reference.
func (s *Store) Append(_ context.Context, row ports.PurchaseRow) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, row)
	return fmt.Sprintf("mem:%d", len(s.rows)), nil
}

// Rows returns a copy of everything appended so far.
func (s *Store) Rows() []ports.PurchaseRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ports.PurchaseRow(nil), s.rows...)
}
