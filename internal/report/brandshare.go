package report

import "evocoffee/internal/core"

// brandShareSource is one strategy for deriving the brand breakdown. It
// returns ok=false when it has nothing usable so the next source can try.
type brandShareSource func(inv core.InventorySnapshot, log []core.InventoryLogEntry) (core.BrandCounts, bool)

// brandShareSources is the documented fallback order: the snapshot's own
// breakdown wins, then the newest log entry, then the whole capsule count
// attributed to Other as a last-resort approximation.
var brandShareSources = []brandShareSource{
	snapshotBrands,
	latestLogBrands,
	capsuleCountAsOther,
}

// InventoryBrandShare derives the capsule share per brand, evaluating each
// fallback source in priority order. With no usable source the series is
// all zero, which the donut renderer treats as empty.
func InventoryBrandShare(inv core.InventorySnapshot, log []core.InventoryLogEntry) Series {
	counts := core.BrandCounts{}
	for _, source := range brandShareSources {
		if c, ok := source(inv, log); ok {
			counts = c
			break
		}
	}
	return Series{
		Labels: []string{string(core.BrandLOR), string(core.BrandIlly), string(core.BrandOther)},
		Values: []float64{counts.LOR, counts.Illy, counts.Other},
	}
}

func snapshotBrands(inv core.InventorySnapshot, _ []core.InventoryLogEntry) (core.BrandCounts, bool) {
	return inv.Brands, !inv.Brands.IsZero()
}

func latestLogBrands(_ core.InventorySnapshot, log []core.InventoryLogEntry) (core.BrandCounts, bool) {
	if len(log) == 0 {
		return core.BrandCounts{}, false
	}
	entry := log[0]
	if !entry.Brands.IsZero() {
		return entry.Brands, true
	}
	// Legacy single-brand attribution for entries that never carried a
	// per-brand breakdown.
	if entry.Brand != "" && entry.CapsuleCount != 0 {
		counts := core.BrandCounts{}
		switch core.NormalizeBrand(entry.Brand) {
		case core.BrandLOR:
			counts.LOR = entry.CapsuleCount
		case core.BrandIlly:
			counts.Illy = entry.CapsuleCount
		default:
			counts.Other = entry.CapsuleCount
		}
		return counts, true
	}
	return core.BrandCounts{}, false
}

func capsuleCountAsOther(inv core.InventorySnapshot, _ []core.InventoryLogEntry) (core.BrandCounts, bool) {
	if inv.CapsuleCount <= 0 {
		return core.BrandCounts{}, false
	}
	return core.BrandCounts{Other: inv.CapsuleCount}, true
}
