package render

import (
	"html/template"

	"evocoffee/internal/chart"
	"evocoffee/internal/core"
	"evocoffee/internal/report"
)

// chartPalette is the shared series color cycle.
var chartPalette = []string{"#4cf7a5", "#e6c36a", "#6ab7ff", "#ff8f5c", "#9b7bff", "#7df5ff"}

// brandPalette colors the three brand buckets.
var brandPalette = []string{"#4cf7a5", "#e6c36a", "#6ab7ff"}

type (
	// Dashboard is the fully derived presentation model. It is rebuilt
	// from scratch on every state change; nothing in it is incremental.
	Dashboard struct {
		Metrics       Metrics
		Warnings      []string
		InventoryRows []InventoryRow
		PurchaseRows  []PurchaseRow
		Charts        Charts
		Form          RestockForm
	}

	Metrics struct {
		Capsules        string
		Milk            string
		PurchaseCount   string
		AveragePurchase string
		TotalSpend      string
		TopSpender      string
	}

	InventoryRow struct {
		Date     string
		Capsules string
		Milk     string
		Brands   string
	}

	PurchaseRow struct {
		Date   string
		Buyer  string
		Amount string
		Notes  string
	}

	Charts struct {
		BrandShare   template.HTML
		MonthlySpend template.HTML
		MonthlyCount template.HTML
		TopSpenders  template.HTML
		SpendShare   template.HTML
	}

	// RestockForm mirrors the snapshot back into the restock inputs.
	// Displayed values are clamped at zero even when the store holds
	// negatives.
	RestockForm struct {
		LOR   float64
		Illy  float64
		Other float64
		Milk  float64
	}
)

// BuildDashboard derives every metric, table, warning and chart from a
// state snapshot.
func BuildDashboard(state core.AppState) Dashboard {
	return Dashboard{
		Metrics:       buildMetrics(state),
		Warnings:      lowStockWarnings(state.Inventory),
		InventoryRows: buildInventoryRows(state.InventoryLog),
		PurchaseRows:  buildPurchaseRows(state.Purchases),
		Charts:        buildCharts(state),
		Form:          buildForm(state.Inventory),
	}
}

func buildMetrics(state core.AppState) Metrics {
	return Metrics{
		Capsules:        core.FormatCapsules(state.Inventory.CapsuleCount),
		Milk:            core.FormatLiters(state.Inventory.MilkLiters),
		PurchaseCount:   core.FormatNumber(float64(len(state.Purchases))),
		AveragePurchase: core.FormatMoney(report.AveragePurchase(state.Purchases)),
		TotalSpend:      core.FormatMoney(report.TotalSpend(state.Purchases)),
		TopSpender:      report.TopSpenderLabel(state.Purchases),
	}
}

// lowStockWarnings checks both thresholds independently; both may fire.
func lowStockWarnings(inv core.InventorySnapshot) []string {
	var warnings []string
	if inv.CapsuleCount < 10 {
		warnings = append(warnings, "Capsules below 10 — time to reorder.")
	}
	if inv.MilkLiters < 2 {
		warnings = append(warnings, "Milk below 2L — stock up.")
	}
	return warnings
}

const tableLimit = 5

func buildInventoryRows(log []core.InventoryLogEntry) []InventoryRow {
	if len(log) > tableLimit {
		log = log[:tableLimit]
	}
	rows := make([]InventoryRow, 0, len(log))
	for _, e := range log {
		rows = append(rows, InventoryRow{
			Date:     e.Date,
			Capsules: core.FormatCapsules(e.CapsuleCount),
			Milk:     core.FormatLiters(e.MilkLiters),
			Brands:   brandBreakdown(e),
		})
	}
	return rows
}

// brandBreakdown renders the per-brand cell text, falling back to the
// legacy single-brand form and then to a dash.
func brandBreakdown(e core.InventoryLogEntry) string {
	if !e.Brands.IsZero() {
		return "LOR " + core.FormatNumber(e.Brands.LOR) +
			" | Illy " + core.FormatNumber(e.Brands.Illy) +
			" | Other " + core.FormatNumber(e.Brands.Other)
	}
	if e.Brand != "" {
		return e.Brand + " " + core.FormatNumber(e.CapsuleCount)
	}
	return "-"
}

func buildPurchaseRows(purchases []core.PurchaseEntry) []PurchaseRow {
	if len(purchases) > tableLimit {
		purchases = purchases[:tableLimit]
	}
	rows := make([]PurchaseRow, 0, len(purchases))
	for _, p := range purchases {
		notes := p.Notes
		if notes == "" {
			notes = "-"
		}
		rows = append(rows, PurchaseRow{
			Date:   p.Date,
			Buyer:  p.Buyer,
			Amount: core.FormatMoney(p.Amount),
			Notes:  notes,
		})
	}
	return rows
}

func buildCharts(state core.AppState) Charts {
	capsFormat := func(v float64) string { return core.FormatCapsules(v) }
	moneyFormat := func(v float64) string { return core.FormatMoney(v) }

	brand := report.InventoryBrandShare(state.Inventory, state.InventoryLog)
	spend := report.MonthlySpend(state.Purchases)
	count := report.MonthlyPurchaseCount(state.Purchases)
	spenders := report.TopSpenders(state.Purchases, 5)
	share := report.SpendShare(state.Purchases)

	return Charts{
		BrandShare: template.HTML(chart.Donut(brand.Labels, brand.Values, chart.Style{
			Palette:      brandPalette,
			LegendFormat: capsFormat,
			CenterFormat: capsFormat,
		})),
		MonthlySpend: template.HTML(chart.Line(spend.Labels, spend.Values, chart.Style{
			Stroke:       "#e6c36a",
			Fill:         "rgba(230, 195, 106, 0.2)",
			LegendFormat: moneyFormat,
		})),
		MonthlyCount: template.HTML(chart.Bar(count.Labels, count.Values, chart.Style{
			Palette:      []string{"#4cf7a5"},
			LegendFormat: func(v float64) string { return core.FormatNumber(v) + " purchases" },
		})),
		TopSpenders: template.HTML(chart.Bar(spenders.Labels, spenders.Values, chart.Style{
			Palette:      chartPalette,
			LegendFormat: moneyFormat,
		})),
		SpendShare: template.HTML(chart.Donut(share.Labels, share.Values, chart.Style{
			Palette:      chartPalette,
			LegendFormat: moneyFormat,
		})),
	}
}

func buildForm(inv core.InventorySnapshot) RestockForm {
	clamp := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		return v
	}
	return RestockForm{
		LOR:   clamp(inv.Brands.LOR),
		Illy:  clamp(inv.Brands.Illy),
		Other: clamp(inv.Brands.Other),
		Milk:  clamp(inv.MilkLiters),
	}
}
