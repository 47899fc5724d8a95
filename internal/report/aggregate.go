// Package report derives chart-ready series from the application state.
// Everything here is a pure function over read-only input: no mutation, no
// rounding, no formatting. Display shaping belongs to the render boundary.
package report

import (
	"sort"

	"evocoffee/internal/core"
)

// Series is a labeled numeric sequence, the common currency between the
// aggregation and chart layers. Labels and Values are parallel.
type Series struct {
	Labels []string
	Values []float64
}

// Empty reports whether the series carries no points.
func (s Series) Empty() bool {
	return len(s.Values) == 0
}

// TotalSpend sums the amount over all purchases.
func TotalSpend(purchases []core.PurchaseEntry) float64 {
	var total float64
	for _, p := range purchases {
		total += p.Amount
	}
	return total
}

// AveragePurchase returns the mean purchase amount, or 0 when there are no
// purchases.
func AveragePurchase(purchases []core.PurchaseEntry) float64 {
	if len(purchases) == 0 {
		return 0
	}
	return TotalSpend(purchases) / float64(len(purchases))
}

// TopSpenders groups purchases by buyer, sums the amounts and returns the
// heaviest spenders first, truncated to limit. The sort is stable: buyers
// with equal totals keep the order of their first appearance.
func TopSpenders(purchases []core.PurchaseEntry, limit int) Series {
	s := spendByBuyer(purchases)
	if limit >= 0 && len(s.Values) > limit {
		s.Labels = s.Labels[:limit]
		s.Values = s.Values[:limit]
	}
	return s
}

// SpendShare keeps the top four buyers individually and collapses the rest
// into an "Other" bucket, emitted only when its sum is strictly positive.
func SpendShare(purchases []core.PurchaseEntry) Series {
	s := spendByBuyer(purchases)
	if len(s.Values) <= 4 {
		return s
	}

	var rest float64
	for _, v := range s.Values[4:] {
		rest += v
	}
	out := Series{
		Labels: append([]string(nil), s.Labels[:4]...),
		Values: append([]float64(nil), s.Values[:4]...),
	}
	if rest > 0 {
		out.Labels = append(out.Labels, "Other")
		out.Values = append(out.Values, rest)
	}
	return out
}

// spendByBuyer returns every buyer's total, sorted descending.
func spendByBuyer(purchases []core.PurchaseEntry) Series {
	totals := make(map[string]float64)
	var order []string
	for _, p := range purchases {
		if p.Buyer == "" {
			continue
		}
		if _, seen := totals[p.Buyer]; !seen {
			order = append(order, p.Buyer)
		}
		totals[p.Buyer] += p.Amount
	}

	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})

	s := Series{Labels: order, Values: make([]float64, len(order))}
	for i, name := range order {
		s.Values[i] = totals[name]
	}
	return s
}

// TopSpenderLabel renders the single highest spender as "name (amount)",
// or "None yet" when there are no purchases.
func TopSpenderLabel(purchases []core.PurchaseEntry) string {
	s := TopSpenders(purchases, 1)
	if s.Empty() {
		return "None yet"
	}
	return s.Labels[0] + " (" + core.FormatMoney(s.Values[0]) + ")"
}

// GroupByMonth buckets entries by the year-month prefix of their date and
// sums valueOf per bucket. Labels come back sorted ascending, which for ISO
// dates is chronological order. Entries without a date are skipped.
func GroupByMonth[T any](entries []T, dateOf func(T) string, valueOf func(T) float64) Series {
	totals := make(map[string]float64)
	for _, e := range entries {
		date := dateOf(e)
		if date == "" {
			continue
		}
		month := date
		if len(month) > 7 {
			month = month[:7]
		}
		totals[month] += valueOf(e)
	}

	labels := make([]string, 0, len(totals))
	for month := range totals {
		labels = append(labels, month)
	}
	sort.Strings(labels)

	s := Series{Labels: labels, Values: make([]float64, len(labels))}
	for i, label := range labels {
		s.Values[i] = totals[label]
	}
	return s
}

// MonthlySpend is the per-month purchase amount series.
func MonthlySpend(purchases []core.PurchaseEntry) Series {
	return GroupByMonth(purchases,
		func(p core.PurchaseEntry) string { return p.Date },
		func(p core.PurchaseEntry) float64 { return p.Amount })
}

// MonthlyPurchaseCount is the per-month purchase count series.
func MonthlyPurchaseCount(purchases []core.PurchaseEntry) Series {
	return GroupByMonth(purchases,
		func(p core.PurchaseEntry) string { return p.Date },
		func(core.PurchaseEntry) float64 { return 1 })
}
