// Package worker mirrors recorded purchases from the event queue to a
// spreadsheet.
package worker

import (
	"context"
	"fmt"

	"evocoffee/internal/events"
	applog "evocoffee/internal/log"
	"evocoffee/internal/sheets"
)

// MirrorWorker handles purchase sync messages by appending each purchase
// to the configured mirror target.
type MirrorWorker struct {
	writer sheets.PurchaseWriter
	logger *applog.Logger
}

func NewMirrorWorker(writer sheets.PurchaseWriter, logger *applog.Logger) *MirrorWorker {
	return &MirrorWorker{
		writer: writer,
		logger: logger.WithComponent(applog.ComponentWorker),
	}
}

// HandleSyncMessage processes a single purchase sync message.
func (w *MirrorWorker) HandleSyncMessage(ctx context.Context, msg *events.PurchaseSyncMessage) error {
	row := sheets.PurchaseRow{
		ID:     msg.ID,
		Date:   msg.Date,
		Buyer:  msg.Buyer,
		Amount: msg.Amount,
		Notes:  msg.Notes,
	}
	ref, err := w.writer.Append(ctx, row)
	if err != nil {
		return fmt.Errorf("append purchase %s: %w", msg.ID, err)
	}

	w.logger.InfoContext(ctx, "Purchase mirrored",
		applog.FieldEntryID, msg.ID,
		applog.FieldBuyer, msg.Buyer,
		"row_ref", ref)
	return nil
}
