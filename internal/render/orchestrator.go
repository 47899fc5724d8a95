// Package render sequences the derivation pipeline: every state-changing
// action funnels through the Orchestrator, which mutates the record store,
// persists the new document, and rebuilds the full dashboard. It is the
// only component that knows both the aggregation and chart engines and the
// presentation surface.
package render

import (
	"context"
	"encoding/json"

	applog "evocoffee/internal/log"
	"evocoffee/internal/persist"
	"evocoffee/internal/store"
)

// PurchaseNotifier publishes a recorded purchase to interested consumers,
// such as the spreadsheet mirror worker.
type PurchaseNotifier interface {
	PublishPurchaseSync(ctx context.Context, id, date, buyer string, amount float64, notes string) error
}

type Orchestrator struct {
	records  *store.Store
	state    persist.Store
	notifier PurchaseNotifier // nil when eventing is disabled
	logger   *applog.Logger
}

func NewOrchestrator(records *store.Store, state persist.Store, notifier PurchaseNotifier, logger *applog.Logger) *Orchestrator {
	return &Orchestrator{
		records:  records,
		state:    state,
		notifier: notifier,
		logger:   logger.WithComponent(applog.ComponentRender),
	}
}

// Dashboard re-derives the complete presentation model from the current
// state. Recomputation is unconditional; there is no diffing.
func (o *Orchestrator) Dashboard() Dashboard {
	return BuildDashboard(o.records.Snapshot())
}

// Restock records a restock and persists the new state.
func (o *Orchestrator) Restock(ctx context.Context, lor, illy, other, milk float64) error {
	entry := o.records.RecordRestock(lor, illy, other, milk)
	o.logger.InfoContext(ctx, "Restock recorded",
		applog.FieldEntryID, entry.ID,
		applog.FieldCapsules, entry.CapsuleCount,
		applog.FieldMilkLiters, entry.MilkLiters)
	return o.save(ctx)
}

// Purchase records a purchase. An invalid entry is rejected silently:
// ok is false, nothing is stored and nothing is saved.
func (o *Orchestrator) Purchase(ctx context.Context, date, buyer string, amount float64, notes string) (bool, error) {
	entry, ok := o.records.RecordPurchase(date, buyer, amount, notes)
	if !ok {
		o.logger.DebugContext(ctx, "Purchase rejected", applog.FieldBuyer, buyer, applog.FieldAmount, amount)
		return false, nil
	}
	o.logger.InfoContext(ctx, "Purchase recorded",
		applog.FieldEntryID, entry.ID,
		applog.FieldBuyer, entry.Buyer,
		applog.FieldAmount, entry.Amount)

	if err := o.save(ctx); err != nil {
		return true, err
	}
	if o.notifier != nil {
		// Mirroring is best effort; the purchase is already durable.
		if err := o.notifier.PublishPurchaseSync(ctx, entry.ID, entry.Date, entry.Buyer, entry.Amount, entry.Notes); err != nil {
			o.logger.WarnContext(ctx, "Purchase sync publish failed", applog.FieldError, err)
		}
	}
	return true, nil
}

// SeedDemo replaces the state with the demo dataset.
func (o *Orchestrator) SeedDemo(ctx context.Context) error {
	o.records.ReplaceAll(store.DemoState())
	o.logger.InfoContext(ctx, "Demo data loaded")
	return o.save(ctx)
}

// Clear replaces the state with the canonical empty default.
func (o *Orchestrator) Clear(ctx context.Context) error {
	o.records.ReplaceAll(store.DefaultState())
	o.logger.InfoContext(ctx, "All records cleared")
	return o.save(ctx)
}

// Import hydrates the store from an uploaded document. Malformed JSON is
// swallowed: the current state stays untouched and no error surfaces.
func (o *Orchestrator) Import(ctx context.Context, raw []byte) {
	if !json.Valid(raw) {
		o.logger.WarnContext(ctx, "Invalid import ignored", applog.FieldSize, len(raw))
		return
	}
	o.records.Load(raw)
	if err := o.save(ctx); err != nil {
		o.logger.WarnContext(ctx, "Persist after import failed", applog.FieldError, err)
	}
}

// ReplaceDocument installs a whole replacement document, the PUT /api/state
// operation.
func (o *Orchestrator) ReplaceDocument(ctx context.Context, doc store.Document) error {
	o.records.Hydrate(doc)
	return o.save(ctx)
}

// Export renders the current document for a file download.
func (o *Orchestrator) Export() ([]byte, error) {
	return o.records.Export()
}

// Serialize exposes the persisted document shape for the read endpoint.
func (o *Orchestrator) Serialize() store.Document {
	return o.records.Serialize()
}

func (o *Orchestrator) save(ctx context.Context) error {
	if err := o.state.Write(ctx, o.records.Serialize()); err != nil {
		o.logger.ErrorContext(ctx, "Persist failed", applog.FieldError, err)
		return err
	}
	o.records.MarkClean()
	return nil
}
