package store

import (
	"encoding/json"
	"reflect"
	"testing"

	"evocoffee/internal/core"
)

func TestLoadMalformedInputYieldsDefault(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty object", "{}"},
		{"null", "null"},
		{"invalid json", "{not json"},
		{"array", "[1,2,3]"},
		{"empty input", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			s.Load([]byte(tc.raw))
			got := s.Snapshot()
			want := DefaultState()
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("state = %+v, want default %+v", got, want)
			}
		})
	}
}

func TestRecordRestock(t *testing.T) {
	s := New()
	entry := s.RecordRestock(40, 35, 15, 2.8)

	state := s.Snapshot()
	if state.Inventory.CapsuleCount != 90 {
		t.Errorf("CapsuleCount = %v, want 90", state.Inventory.CapsuleCount)
	}
	if state.Inventory.MilkLiters != 2.8 {
		t.Errorf("MilkLiters = %v, want 2.8", state.Inventory.MilkLiters)
	}
	want := core.BrandCounts{LOR: 40, Illy: 35, Other: 15}
	if state.Inventory.Brands != want {
		t.Errorf("Brands = %+v, want %+v", state.Inventory.Brands, want)
	}
	if state.Inventory.UpdatedAt == "" {
		t.Error("UpdatedAt not stamped")
	}

	if len(state.InventoryLog) != 1 {
		t.Fatalf("log length = %d, want 1", len(state.InventoryLog))
	}
	head := state.InventoryLog[0]
	if head.ID != entry.ID || head.CapsuleCount != 90 || head.MilkLiters != 2.8 || head.Brands != want {
		t.Errorf("log head %+v does not mirror restock values", head)
	}
	if !s.Dirty() {
		t.Error("store not marked dirty after restock")
	}
}

func TestRecordRestockNegativesKeptAsIs(t *testing.T) {
	s := New()
	s.RecordRestock(-5, 10, 0, -1)
	state := s.Snapshot()
	if state.Inventory.CapsuleCount != 5 {
		t.Errorf("CapsuleCount = %v, want 5", state.Inventory.CapsuleCount)
	}
	if state.Inventory.Brands.LOR != -5 || state.Inventory.MilkLiters != -1 {
		t.Errorf("negative inputs were clamped: %+v", state.Inventory)
	}
}

func TestRecordRestockPrependsNewestFirst(t *testing.T) {
	s := New()
	s.RecordRestock(1, 0, 0, 0)
	s.RecordRestock(2, 0, 0, 0)
	state := s.Snapshot()
	if state.InventoryLog[0].Brands.LOR != 2 {
		t.Errorf("newest entry not at the head: %+v", state.InventoryLog)
	}
}

func TestRecordPurchaseRejections(t *testing.T) {
	cases := []struct {
		name   string
		buyer  string
		amount float64
	}{
		{"empty buyer", "", 10},
		{"whitespace buyer", "  ", 10},
		{"zero amount", "Priya", 0},
		{"negative amount", "Priya", -4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			if _, ok := s.RecordPurchase("2024-03-01", tc.buyer, tc.amount, ""); ok {
				t.Fatal("expected rejection")
			}
			if got := len(s.Snapshot().Purchases); got != 0 {
				t.Fatalf("purchases length = %d, want 0", got)
			}
			if s.Dirty() {
				t.Error("rejected purchase marked the store dirty")
			}
		})
	}
}

func TestRecordPurchaseTrimsAndPrepends(t *testing.T) {
	s := New()
	if _, ok := s.RecordPurchase("2024-03-01", " Priya ", 12.5, " snacks "); !ok {
		t.Fatal("valid purchase rejected")
	}
	if _, ok := s.RecordPurchase("2024-03-02", "Marcus", 8, ""); !ok {
		t.Fatal("valid purchase rejected")
	}
	got := s.Snapshot().Purchases
	if got[0].Buyer != "Marcus" {
		t.Errorf("newest purchase not at the head: %+v", got)
	}
	if got[1].Buyer != "Priya" || got[1].Notes != "snacks" {
		t.Errorf("buyer/notes not trimmed: %+v", got[1])
	}
}

func TestSerializeLoadRoundTrip(t *testing.T) {
	s := New()
	s.ReplaceAll(DemoState())
	want := s.Snapshot()

	raw, err := json.Marshal(s.Serialize())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	reloaded := New()
	reloaded.Load(raw)
	got := reloaded.Snapshot()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestNormalizeLegacyLogEntry(t *testing.T) {
	raw := []byte(`{
		"inventoryLog": [
			{"id": "a", "date": "2024-01-05", "capsules": 20, "milk": 1.5, "brand": "LOR"}
		]
	}`)
	s := New()
	s.Load(raw)
	entry := s.Snapshot().InventoryLog[0]

	want := core.BrandCounts{LOR: 20}
	if entry.Brands != want {
		t.Errorf("Brands = %+v, want %+v", entry.Brands, want)
	}
	if entry.Brand != "LOR" {
		t.Errorf("Brand = %q, want LOR", entry.Brand)
	}
}

func TestNormalizeLegacyReasonAndUnknownBrand(t *testing.T) {
	raw := []byte(`{
		"inventoryLog": [
			{"id": "a", "date": "2024-01-05", "capsules": 12, "reason": "Lavazza"}
		]
	}`)
	s := New()
	s.Load(raw)
	entry := s.Snapshot().InventoryLog[0]
	if entry.Brands.Other != 12 || entry.Brands.LOR != 0 || entry.Brands.Illy != 0 {
		t.Errorf("unrecognized brand not attributed to Other: %+v", entry.Brands)
	}
}

func TestNormalizeSnapshotBrandsFromLatestLog(t *testing.T) {
	raw := []byte(`{
		"inventory": {"beans_g": 50, "milk_l": 3, "updated_at": null, "reason": ""},
		"inventoryLog": [
			{"id": "a", "date": "2024-02-01", "capsules": 50, "capsLor": 30, "capsIlly": 15, "capsOther": 5, "milk": 3},
			{"id": "b", "date": "2024-01-01", "capsules": 20, "milk": 1, "brand": "Illy"}
		]
	}`)
	s := New()
	s.Load(raw)
	got := s.Snapshot().Inventory.Brands
	want := core.BrandCounts{LOR: 30, Illy: 15, Other: 5}
	if got != want {
		t.Errorf("snapshot brands = %+v, want %+v (from newest log entry)", got, want)
	}
}

// The snapshot's capsule total and brand breakdown can disagree in
// documents written by older code paths. Loading must keep the drift
// rather than reconciling one side from the other.
func TestLoadPreservesCountBrandDrift(t *testing.T) {
	raw := []byte(`{
		"inventory": {
			"beans_g": 100, "milk_l": 1, "updated_at": null, "reason": "",
			"brand_counts": {"LOR": 10, "Illy": 5, "Other": 0}
		}
	}`)
	s := New()
	s.Load(raw)
	inv := s.Snapshot().Inventory
	if inv.CapsuleCount != 100 {
		t.Errorf("CapsuleCount = %v, want 100 kept as-is", inv.CapsuleCount)
	}
	if inv.Brands.Total() != 15 {
		t.Errorf("Brands total = %v, want 15 kept as-is", inv.Brands.Total())
	}
}

func TestReplaceAllAndClear(t *testing.T) {
	s := New()
	s.ReplaceAll(DemoState())
	if len(s.Snapshot().Purchases) != 3 {
		t.Fatal("demo state not installed")
	}
	s.ReplaceAll(DefaultState())
	if !reflect.DeepEqual(s.Snapshot(), DefaultState()) {
		t.Error("clear did not restore the default state")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New()
	s.RecordPurchase("2024-03-01", "Priya", 10, "")
	snap := s.Snapshot()
	snap.Purchases[0].Buyer = "mutated"
	if s.Snapshot().Purchases[0].Buyer != "Priya" {
		t.Error("snapshot shares backing storage with the store")
	}
}
