package store

import (
	"encoding/json"

	"evocoffee/internal/core"
)

// Document is the persisted wire shape of the application state. Field
// names are frozen: every document ever written by any version of the app
// must load indefinitely.
type (
	Document struct {
		Purchases    []PurchaseRecord `json:"purchases"`
		InventoryLog []LogRecord      `json:"inventoryLog"`
		Inventory    *SnapshotRecord  `json:"inventory"`
	}

	PurchaseRecord struct {
		ID     string  `json:"id"`
		Date   string  `json:"date"`
		Buyer  string  `json:"buyer"`
		Amount float64 `json:"amount"`
		Notes  string  `json:"notes"`
	}

	// LogRecord accepts two layouts: the current one carries capsLor,
	// capsIlly and capsOther, the legacy one carries a single brand (or
	// reason) label plus a total capsule count. Absent per-brand fields
	// mark a record as legacy.
	LogRecord struct {
		ID        string   `json:"id"`
		Date      string   `json:"date"`
		Capsules  float64  `json:"capsules"`
		CapsLOR   *float64 `json:"capsLor,omitempty"`
		CapsIlly  *float64 `json:"capsIlly,omitempty"`
		CapsOther *float64 `json:"capsOther,omitempty"`
		Milk      float64  `json:"milk"`
		Brand     string   `json:"brand,omitempty"`
		Reason    string   `json:"reason,omitempty"`
	}

	SnapshotRecord struct {
		CapsuleCount float64           `json:"beans_g"`
		MilkLiters   float64           `json:"milk_l"`
		UpdatedAt    *string           `json:"updated_at"`
		Reason       string            `json:"reason"`
		Brands       *core.BrandCounts `json:"brand_counts,omitempty"`
	}
)

// DefaultState returns the canonical empty state every fallback resolves to.
func DefaultState() core.AppState {
	return core.AppState{
		Purchases:    []core.PurchaseEntry{},
		InventoryLog: []core.InventoryLogEntry{},
	}
}

// ParseDocument decodes raw JSON into a Document. It never fails: any
// unparseable or non-object input yields the zero Document, which
// normalizes to the default state.
func ParseDocument(raw []byte) Document {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}
	}
	return doc
}

// Normalize materializes a loosely-shaped document into the canonical
// state. Both the legacy and the current log-entry layout are accepted;
// a missing snapshot brand breakdown is reconstructed from the most recent
// log entry, or defaults to all-zero when no log exists.
func Normalize(doc Document) core.AppState {
	state := DefaultState()

	for _, p := range doc.Purchases {
		state.Purchases = append(state.Purchases, core.PurchaseEntry(p))
	}
	for _, rec := range doc.InventoryLog {
		state.InventoryLog = append(state.InventoryLog, normalizeLogRecord(rec))
	}

	if snap := doc.Inventory; snap != nil {
		state.Inventory.CapsuleCount = snap.CapsuleCount
		state.Inventory.MilkLiters = snap.MilkLiters
		state.Inventory.Reason = snap.Reason
		if snap.UpdatedAt != nil {
			state.Inventory.UpdatedAt = *snap.UpdatedAt
		}
		if snap.Brands != nil {
			state.Inventory.Brands = *snap.Brands
		} else if len(state.InventoryLog) > 0 {
			state.Inventory.Brands = state.InventoryLog[0].Brands
		}
	} else if len(state.InventoryLog) > 0 {
		state.Inventory.Brands = state.InventoryLog[0].Brands
	}

	return state
}

func normalizeLogRecord(rec LogRecord) core.InventoryLogEntry {
	brand := rec.Brand
	if brand == "" {
		brand = rec.Reason
	}

	// Each per-brand field falls back independently to the legacy
	// single-brand attribution, mirroring documents where only some of
	// the fields were ever written.
	legacy := func(key core.BrandKey) float64 {
		if brand != "" && core.NormalizeBrand(brand) == key {
			return rec.Capsules
		}
		return 0
	}
	counts := core.BrandCounts{
		LOR:   orLegacy(rec.CapsLOR, legacy(core.BrandLOR)),
		Illy:  orLegacy(rec.CapsIlly, legacy(core.BrandIlly)),
		Other: orLegacy(rec.CapsOther, legacy(core.BrandOther)),
	}

	return core.InventoryLogEntry{
		ID:           rec.ID,
		Date:         rec.Date,
		CapsuleCount: rec.Capsules,
		MilkLiters:   rec.Milk,
		Brands:       counts,
		Brand:        brand,
	}
}

func orLegacy(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}

// BuildDocument produces the exact persisted shape for a state.
func BuildDocument(state core.AppState) Document {
	doc := Document{
		Purchases:    make([]PurchaseRecord, 0, len(state.Purchases)),
		InventoryLog: make([]LogRecord, 0, len(state.InventoryLog)),
	}
	for _, p := range state.Purchases {
		doc.Purchases = append(doc.Purchases, PurchaseRecord(p))
	}
	for _, e := range state.InventoryLog {
		lor, illy, other := e.Brands.LOR, e.Brands.Illy, e.Brands.Other
		doc.InventoryLog = append(doc.InventoryLog, LogRecord{
			ID:        e.ID,
			Date:      e.Date,
			Capsules:  e.CapsuleCount,
			CapsLOR:   &lor,
			CapsIlly:  &illy,
			CapsOther: &other,
			Milk:      e.MilkLiters,
			Brand:     e.Brand,
		})
	}

	brands := state.Inventory.Brands
	snap := SnapshotRecord{
		CapsuleCount: state.Inventory.CapsuleCount,
		MilkLiters:   state.Inventory.MilkLiters,
		Reason:       state.Inventory.Reason,
		Brands:       &brands,
	}
	if state.Inventory.UpdatedAt != "" {
		ts := state.Inventory.UpdatedAt
		snap.UpdatedAt = &ts
	}
	doc.Inventory = &snap

	return doc
}
