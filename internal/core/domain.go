package core

import (
	"errors"
	"strings"
	"time"
)

const (
	BrandLOR   BrandKey = "LOR"
	BrandIlly  BrandKey = "Illy"
	BrandOther BrandKey = "Other"
)

// DateLayout is the calendar-day form used in persisted records.
const DateLayout = "2006-01-02"

type (
	// BrandKey identifies one of the fixed capsule brand buckets.
	BrandKey string

	// BrandCounts stores the capsule count per brand bucket.
	BrandCounts struct {
		LOR   float64 `json:"LOR"`
		Illy  float64 `json:"Illy"`
		Other float64 `json:"Other"`
	}

	// InventorySnapshot is the single current-stock record. It is replaced
	// wholesale by a restock, never partially mutated.
	InventorySnapshot struct {
		CapsuleCount float64
		MilkLiters   float64
		UpdatedAt    string // RFC 3339 timestamp, empty when never updated
		Reason       string
		Brands       BrandCounts
	}

	// InventoryLogEntry is an immutable historical restock record.
	InventoryLogEntry struct {
		ID           string
		Date         string // calendar day, ISO form
		CapsuleCount float64
		MilkLiters   float64
		Brands       BrandCounts
		// Brand carries the single-brand label of legacy records so that a
		// loaded document serializes back unchanged.
		Brand string
	}

	// PurchaseEntry is an immutable record of money spent on supplies.
	PurchaseEntry struct {
		ID     string
		Date   string
		Buyer  string
		Amount float64
		Notes  string
	}

	// AppState is the aggregate root. Exactly one instance exists per
	// process; it is owned by the record store and every other component
	// receives it read-only.
	AppState struct {
		Inventory    InventorySnapshot
		InventoryLog []InventoryLogEntry
		Purchases    []PurchaseEntry
	}
)

var (
	ErrEmptyBuyer    = errors.New("empty buyer")
	ErrInvalidAmount = errors.New("invalid amount")
)

// NormalizeBrand maps an arbitrary brand label onto a fixed brand key.
// Unrecognized labels fall into the Other bucket.
func NormalizeBrand(label string) BrandKey {
	switch label {
	case string(BrandLOR):
		return BrandLOR
	case string(BrandIlly):
		return BrandIlly
	default:
		return BrandOther
	}
}

// Total returns the sum of the per-brand counts.
func (b BrandCounts) Total() float64 {
	return b.LOR + b.Illy + b.Other
}

// IsZero reports whether every brand bucket is zero.
func (b BrandCounts) IsZero() bool {
	return b.LOR == 0 && b.Illy == 0 && b.Other == 0
}

// Get returns the count stored under the given brand key.
func (b BrandCounts) Get(key BrandKey) float64 {
	switch key {
	case BrandLOR:
		return b.LOR
	case BrandIlly:
		return b.Illy
	default:
		return b.Other
	}
}

func (p PurchaseEntry) Validate() error {
	if strings.TrimSpace(p.Buyer) == "" {
		return ErrEmptyBuyer
	}
	if p.Amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Today returns the current calendar day in ISO form.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}

// Now returns the current instant as an RFC 3339 timestamp.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
