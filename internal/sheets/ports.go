// Package sheets defines the outbound port for mirroring purchases to a
// spreadsheet.
package sheets

import "context"

// PurchaseRow is the flattened purchase shape a mirror target appends.
type PurchaseRow struct {
	ID     string
	Date   string
	Buyer  string
	Amount float64
	Notes  string
}

// PurchaseWriter appends a purchase row to a mirror target and returns an
// opaque row reference.
type PurchaseWriter interface {
	Append(ctx context.Context, row PurchaseRow) (rowRef string, err error)
}
