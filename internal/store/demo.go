package store

import (
	"time"

	"github.com/google/uuid"

	"evocoffee/internal/core"
)

// DemoState builds the sample dataset offered by the "load demo data"
// action: three purchases spread over the last month and two restocks.
func DemoState() core.AppState {
	today := time.Now().UTC()
	daysAgo := func(days int) string {
		return today.AddDate(0, 0, -days).Format(core.DateLayout)
	}

	state := DefaultState()
	state.Purchases = []core.PurchaseEntry{
		{ID: uuid.NewString(), Date: daysAgo(30), Buyer: "Priya", Amount: 54.5, Notes: "Capsules + filters"},
		{ID: uuid.NewString(), Date: daysAgo(18), Buyer: "Marcus", Amount: 38.2, Notes: "Milk + cups"},
		{ID: uuid.NewString(), Date: daysAgo(6), Buyer: "Lena", Amount: 89.1, Notes: "Monthly restock"},
	}
	state.InventoryLog = []core.InventoryLogEntry{
		{
			ID:           uuid.NewString(),
			Date:         daysAgo(2),
			CapsuleCount: 90,
			MilkLiters:   2.8,
			Brands:       core.BrandCounts{LOR: 40, Illy: 35, Other: 15},
			Brand:        "Illy",
		},
		{
			ID:           uuid.NewString(),
			Date:         daysAgo(10),
			CapsuleCount: 140,
			MilkLiters:   4.5,
			Brands:       core.BrandCounts{LOR: 90, Illy: 30, Other: 20},
			Brand:        "LOR",
		},
	}
	state.Inventory = core.InventorySnapshot{
		CapsuleCount: 90,
		MilkLiters:   2.8,
		UpdatedAt:    core.Now(),
		Reason:       "Demo seed",
		Brands:       core.BrandCounts{LOR: 40, Illy: 35, Other: 15},
	}
	return state
}
