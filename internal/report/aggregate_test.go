package report

import (
	"reflect"
	"testing"

	"evocoffee/internal/core"
)

func purchases(entries ...core.PurchaseEntry) []core.PurchaseEntry {
	return entries
}

func TestTotalSpend(t *testing.T) {
	ps := purchases(
		core.PurchaseEntry{Buyer: "A", Amount: 10.5},
		core.PurchaseEntry{Buyer: "B", Amount: 4.25},
	)
	if got := TotalSpend(ps); got != 14.75 {
		t.Errorf("TotalSpend = %v, want 14.75", got)
	}
	if got := TotalSpend(nil); got != 0 {
		t.Errorf("TotalSpend(nil) = %v, want 0", got)
	}
}

func TestAveragePurchase(t *testing.T) {
	ps := purchases(
		core.PurchaseEntry{Buyer: "A", Amount: 10},
		core.PurchaseEntry{Buyer: "B", Amount: 20},
	)
	if got := AveragePurchase(ps); got != 15 {
		t.Errorf("AveragePurchase = %v, want 15", got)
	}
	if got := AveragePurchase(nil); got != 0 {
		t.Errorf("AveragePurchase(nil) = %v, want 0", got)
	}
}

func TestTopSpenders(t *testing.T) {
	ps := purchases(
		core.PurchaseEntry{Buyer: "A", Amount: 10},
		core.PurchaseEntry{Buyer: "B", Amount: 30},
		core.PurchaseEntry{Buyer: "A", Amount: 5},
	)
	got := TopSpenders(ps, 5)
	want := Series{Labels: []string{"B", "A"}, Values: []float64{30, 15}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopSpenders = %+v, want %+v", got, want)
	}
}

func TestTopSpendersTiesKeepFirstAppearance(t *testing.T) {
	ps := purchases(
		core.PurchaseEntry{Buyer: "A", Amount: 10},
		core.PurchaseEntry{Buyer: "B", Amount: 10},
		core.PurchaseEntry{Buyer: "C", Amount: 10},
	)
	got := TopSpenders(ps, 5)
	if !reflect.DeepEqual(got.Labels, []string{"A", "B", "C"}) {
		t.Errorf("tie order = %v, want first-appearance order", got.Labels)
	}
}

func TestTopSpendersTruncates(t *testing.T) {
	var ps []core.PurchaseEntry
	for _, b := range []string{"A", "B", "C", "D", "E", "F"} {
		ps = append(ps, core.PurchaseEntry{Buyer: b, Amount: 1})
	}
	if got := TopSpenders(ps, 5); len(got.Values) != 5 {
		t.Errorf("len = %d, want 5", len(got.Values))
	}
}

func TestSpendShare(t *testing.T) {
	ps := purchases(
		core.PurchaseEntry{Buyer: "A", Amount: 50},
		core.PurchaseEntry{Buyer: "B", Amount: 40},
		core.PurchaseEntry{Buyer: "C", Amount: 30},
		core.PurchaseEntry{Buyer: "D", Amount: 20},
		core.PurchaseEntry{Buyer: "E", Amount: 10},
		core.PurchaseEntry{Buyer: "F", Amount: 5},
	)
	got := SpendShare(ps)
	want := Series{
		Labels: []string{"A", "B", "C", "D", "Other"},
		Values: []float64{50, 40, 30, 20, 15},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SpendShare = %+v, want %+v", got, want)
	}
}

func TestSpendShareNoOtherBucket(t *testing.T) {
	ps := purchases(
		core.PurchaseEntry{Buyer: "A", Amount: 50},
		core.PurchaseEntry{Buyer: "B", Amount: 40},
	)
	got := SpendShare(ps)
	if len(got.Labels) != 2 {
		t.Errorf("labels = %v, want no Other bucket for 2 buyers", got.Labels)
	}
}

func TestGroupByMonth(t *testing.T) {
	ps := purchases(
		core.PurchaseEntry{Date: "2024-01-05", Amount: 10},
		core.PurchaseEntry{Date: "2024-01-20", Amount: 5},
		core.PurchaseEntry{Date: "2024-02-01", Amount: 7},
	)
	got := MonthlySpend(ps)
	want := Series{Labels: []string{"2024-01", "2024-02"}, Values: []float64{15, 7}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MonthlySpend = %+v, want %+v", got, want)
	}
}

func TestGroupByMonthSkipsMissingDates(t *testing.T) {
	ps := purchases(
		core.PurchaseEntry{Date: "", Amount: 10},
		core.PurchaseEntry{Date: "2024-03-04", Amount: 5},
	)
	got := MonthlyPurchaseCount(ps)
	want := Series{Labels: []string{"2024-03"}, Values: []float64{1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MonthlyPurchaseCount = %+v, want %+v", got, want)
	}
}

func TestTopSpenderLabel(t *testing.T) {
	ps := purchases(
		core.PurchaseEntry{Buyer: "Lena", Amount: 89.1},
		core.PurchaseEntry{Buyer: "Priya", Amount: 54.5},
	)
	if got := TopSpenderLabel(ps); got != "Lena (€89.10)" {
		t.Errorf("TopSpenderLabel = %q", got)
	}
	if got := TopSpenderLabel(nil); got != "None yet" {
		t.Errorf("TopSpenderLabel(nil) = %q, want \"None yet\"", got)
	}
}

func TestInventoryBrandShareSnapshotWins(t *testing.T) {
	inv := core.InventorySnapshot{Brands: core.BrandCounts{LOR: 40, Illy: 35, Other: 15}}
	log := []core.InventoryLogEntry{{Brands: core.BrandCounts{LOR: 1}}}
	got := InventoryBrandShare(inv, log)
	want := Series{
		Labels: []string{"LOR", "Illy", "Other"},
		Values: []float64{40, 35, 15},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("InventoryBrandShare = %+v, want %+v", got, want)
	}
}

func TestInventoryBrandShareFallsBackToLatestLog(t *testing.T) {
	inv := core.InventorySnapshot{CapsuleCount: 90}
	log := []core.InventoryLogEntry{
		{Brands: core.BrandCounts{LOR: 30, Illy: 20, Other: 10}},
		{Brands: core.BrandCounts{LOR: 99}},
	}
	got := InventoryBrandShare(inv, log)
	if !reflect.DeepEqual(got.Values, []float64{30, 20, 10}) {
		t.Errorf("values = %v, want newest log entry breakdown", got.Values)
	}
}

func TestInventoryBrandShareLegacySingleBrandEntry(t *testing.T) {
	inv := core.InventorySnapshot{}
	log := []core.InventoryLogEntry{{CapsuleCount: 20, Brand: "LOR"}}
	got := InventoryBrandShare(inv, log)
	if !reflect.DeepEqual(got.Values, []float64{20, 0, 0}) {
		t.Errorf("values = %v, want [20 0 0]", got.Values)
	}
}

func TestInventoryBrandShareLastResortOther(t *testing.T) {
	inv := core.InventorySnapshot{CapsuleCount: 42}
	got := InventoryBrandShare(inv, nil)
	if !reflect.DeepEqual(got.Values, []float64{0, 0, 42}) {
		t.Errorf("values = %v, want whole count under Other", got.Values)
	}
}

func TestInventoryBrandShareNoData(t *testing.T) {
	got := InventoryBrandShare(core.InventorySnapshot{}, nil)
	if !reflect.DeepEqual(got.Values, []float64{0, 0, 0}) {
		t.Errorf("values = %v, want all zero", got.Values)
	}
}
