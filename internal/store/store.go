// Package store owns the canonical application state. Every mutation in
// the system funnels through a Store method; aggregation and rendering only
// ever see read-only copies.
package store

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/google/uuid"

	"evocoffee/internal/core"
)

// Store holds the single AppState for the process lifetime.
type Store struct {
	mu    sync.Mutex
	state core.AppState
	dirty bool
}

// New returns a store holding the canonical empty state.
func New() *Store {
	return &Store{state: DefaultState()}
}

// Load replaces the state with the normalized form of a raw persisted
// document. It is total: malformed input yields the default state.
func (s *Store) Load(raw []byte) {
	s.Hydrate(ParseDocument(raw))
}

// Hydrate replaces the state with the normalized form of a document.
func (s *Store) Hydrate(doc Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Normalize(doc)
	s.dirty = false
}

// RecordRestock replaces the inventory snapshot wholesale and prepends a
// matching log entry. Negative inputs are stored as given; the caller is
// responsible for numeric coercion of raw form values.
func (s *Store) RecordRestock(lor, illy, other, milk float64) core.InventoryLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	capsules := lor + illy + other
	counts := core.BrandCounts{LOR: lor, Illy: illy, Other: other}

	s.state.Inventory = core.InventorySnapshot{
		CapsuleCount: capsules,
		MilkLiters:   milk,
		UpdatedAt:    core.Now(),
		Brands:       counts,
	}

	entry := core.InventoryLogEntry{
		ID:           uuid.NewString(),
		Date:         core.Today(),
		CapsuleCount: capsules,
		MilkLiters:   milk,
		Brands:       counts,
	}
	s.state.InventoryLog = append([]core.InventoryLogEntry{entry}, s.state.InventoryLog...)
	s.dirty = true
	return entry
}

// RecordPurchase prepends a purchase entry. A blank buyer or non-positive
// amount is rejected silently: the state is untouched and ok is false.
func (s *Store) RecordPurchase(date, buyer string, amount float64, notes string) (core.PurchaseEntry, bool) {
	entry := core.PurchaseEntry{
		ID:     uuid.NewString(),
		Date:   date,
		Buyer:  strings.TrimSpace(buyer),
		Amount: amount,
		Notes:  strings.TrimSpace(notes),
	}
	if entry.Validate() != nil {
		return core.PurchaseEntry{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Purchases = append([]core.PurchaseEntry{entry}, s.state.Purchases...)
	s.dirty = true
	return entry, true
}

// ReplaceAll swaps in a complete new state atomically. Used by the demo
// seed and the clear operation.
func (s *Store) ReplaceAll(state core.AppState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = cloneState(state)
	s.dirty = true
}

// Serialize produces the exact persisted document shape.
func (s *Store) Serialize() Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BuildDocument(s.state)
}

// Export renders the persisted document as indented JSON, the shape the
// export download carries.
func (s *Store) Export() ([]byte, error) {
	return json.MarshalIndent(s.Serialize(), "", "  ")
}

// Snapshot returns a deep copy of the current state for read-only use.
func (s *Store) Snapshot() core.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state)
}

// Dirty reports whether the state changed since the last MarkClean.
func (s *Store) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// MarkClean records that the current state has been persisted.
func (s *Store) MarkClean() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = false
}

func cloneState(state core.AppState) core.AppState {
	out := state
	out.Purchases = append([]core.PurchaseEntry(nil), state.Purchases...)
	out.InventoryLog = append([]core.InventoryLogEntry(nil), state.InventoryLog...)
	if out.Purchases == nil {
		out.Purchases = []core.PurchaseEntry{}
	}
	if out.InventoryLog == nil {
		out.InventoryLog = []core.InventoryLogEntry{}
	}
	return out
}
