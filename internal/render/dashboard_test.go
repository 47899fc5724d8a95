package render

import (
	"reflect"
	"strings"
	"testing"

	"evocoffee/internal/core"
)

func TestBuildDashboardEmptyState(t *testing.T) {
	d := BuildDashboard(core.AppState{})

	if d.Metrics.Capsules != "0 caps" {
		t.Errorf("Capsules=%q", d.Metrics.Capsules)
	}
	if d.Metrics.TotalSpend != "€0.00" {
		t.Errorf("TotalSpend=%q", d.Metrics.TotalSpend)
	}
	if d.Metrics.TopSpender != "None yet" {
		t.Errorf("TopSpender=%q", d.Metrics.TopSpender)
	}
	if len(d.InventoryRows) != 0 || len(d.PurchaseRows) != 0 {
		t.Error("empty state produced table rows")
	}
	// Both thresholds fire on a zeroed snapshot.
	if len(d.Warnings) != 2 {
		t.Fatalf("warnings=%v", d.Warnings)
	}
	// Monthly charts have no data, the brand donut falls back to the
	// empty placeholder too.
	if !strings.Contains(string(d.Charts.MonthlySpend), "No data yet.") {
		t.Error("monthly spend chart not empty")
	}
	if !strings.Contains(string(d.Charts.BrandShare), "No data yet.") {
		t.Error("brand share chart not empty")
	}
}

func TestLowStockWarningsThresholds(t *testing.T) {
	cases := []struct {
		name     string
		capsules float64
		milk     float64
		want     int
	}{
		{"plenty", 50, 5, 0},
		{"low capsules only", 9, 5, 1},
		{"low milk only", 50, 1.9, 1},
		{"both low", 0, 0, 2},
		{"at thresholds", 10, 2, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := lowStockWarnings(core.InventorySnapshot{CapsuleCount: tc.capsules, MilkLiters: tc.milk})
			if len(got) != tc.want {
				t.Errorf("warnings=%v, want %d", got, tc.want)
			}
		})
	}
}

func TestBuildDashboardMetricsAndTables(t *testing.T) {
	state := core.AppState{
		Inventory: core.InventorySnapshot{CapsuleCount: 1250, MilkLiters: 3.5},
		Purchases: []core.PurchaseEntry{
			{ID: "p1", Date: "2026-02-10", Buyer: "Priya", Amount: 54.5, Notes: "beans"},
			{ID: "p2", Date: "2026-02-03", Buyer: "Marcus", Amount: 38.2},
		},
		InventoryLog: []core.InventoryLogEntry{
			{ID: "l1", Date: "2026-02-09", CapsuleCount: 90, MilkLiters: 2, Brands: core.BrandCounts{LOR: 40, Illy: 35, Other: 15}},
			{ID: "l2", Date: "2026-01-30", CapsuleCount: 20, MilkLiters: 1, Brand: "LOR"},
		},
	}
	d := BuildDashboard(state)

	if d.Metrics.Capsules != "1,250 caps" {
		t.Errorf("Capsules=%q", d.Metrics.Capsules)
	}
	if d.Metrics.PurchaseCount != "2" {
		t.Errorf("PurchaseCount=%q", d.Metrics.PurchaseCount)
	}
	if d.Metrics.TotalSpend != "€92.70" {
		t.Errorf("TotalSpend=%q", d.Metrics.TotalSpend)
	}
	if d.Metrics.TopSpender != "Priya (€54.50)" {
		t.Errorf("TopSpender=%q", d.Metrics.TopSpender)
	}

	if len(d.InventoryRows) != 2 {
		t.Fatalf("inventory rows=%d", len(d.InventoryRows))
	}
	if d.InventoryRows[0].Brands != "LOR 40 | Illy 35 | Other 15" {
		t.Errorf("brands cell=%q", d.InventoryRows[0].Brands)
	}
	// Legacy entry carries only the single-brand label.
	if d.InventoryRows[1].Brands != "LOR 20" {
		t.Errorf("legacy brands cell=%q", d.InventoryRows[1].Brands)
	}

	if d.PurchaseRows[1].Notes != "-" {
		t.Errorf("empty notes cell=%q", d.PurchaseRows[1].Notes)
	}
	if d.PurchaseRows[0].Amount != "€54.50" {
		t.Errorf("amount cell=%q", d.PurchaseRows[0].Amount)
	}
}

func TestTablesCapAtFiveRows(t *testing.T) {
	var state core.AppState
	for i := 0; i < 8; i++ {
		state.Purchases = append(state.Purchases, core.PurchaseEntry{
			ID: "p", Date: "2026-01-01", Buyer: "B", Amount: 1,
		})
		state.InventoryLog = append(state.InventoryLog, core.InventoryLogEntry{
			ID: "l", Date: "2026-01-01", CapsuleCount: 1,
		})
	}
	d := BuildDashboard(state)
	if len(d.PurchaseRows) != 5 || len(d.InventoryRows) != 5 {
		t.Fatalf("rows=%d/%d, want 5/5", len(d.PurchaseRows), len(d.InventoryRows))
	}
}

func TestBrandBreakdownFallsBackToDash(t *testing.T) {
	got := brandBreakdown(core.InventoryLogEntry{CapsuleCount: 30})
	if got != "-" {
		t.Fatalf("breakdown=%q", got)
	}
}

func TestBuildFormClampsNegatives(t *testing.T) {
	form := buildForm(core.InventorySnapshot{
		MilkLiters: -1.5,
		Brands:     core.BrandCounts{LOR: -5, Illy: 12, Other: 0},
	})
	want := RestockForm{LOR: 0, Illy: 12, Other: 0, Milk: 0}
	if !reflect.DeepEqual(form, want) {
		t.Fatalf("form=%+v, want %+v", form, want)
	}
}

func TestChartsCarrySVGMarkup(t *testing.T) {
	state := core.AppState{
		Inventory: core.InventorySnapshot{
			CapsuleCount: 90,
			Brands:       core.BrandCounts{LOR: 40, Illy: 35, Other: 15},
		},
		Purchases: []core.PurchaseEntry{
			{ID: "p1", Date: "2026-01-05", Buyer: "Priya", Amount: 30},
			{ID: "p2", Date: "2026-02-05", Buyer: "Marcus", Amount: 20},
		},
	}
	charts := buildCharts(state)

	for name, svg := range map[string]string{
		"brand share":   string(charts.BrandShare),
		"monthly spend": string(charts.MonthlySpend),
		"monthly count": string(charts.MonthlyCount),
		"top spenders":  string(charts.TopSpenders),
		"spend share":   string(charts.SpendShare),
	} {
		if !strings.Contains(svg, "<svg") {
			t.Errorf("%s chart missing svg markup", name)
		}
	}
	if !strings.Contains(string(charts.BrandShare), "90 caps") {
		t.Errorf("donut center label missing: %s", charts.BrandShare)
	}
}
