package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/receipt"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/core/ports"
)

// ConfirmReceiptCommandHandler handles delivery confirmation, the exactly-once
// core of the subsystem. One transaction flips the receipt, credits the
// buyer's stock batches, and delivers the order; failure at any step rolls
// back all of it, so no partial credit is ever observable. Concurrent
// attempts on the same code are serialized by the store: the loser observes
// the confirmed flag and is rejected before crediting anything.
type ConfirmReceiptCommandHandler struct {
	uowFactory ConfirmReceiptUoWFactory
	notifier   ports.Notifier
}

// NewConfirmReceiptCommandHandler creates a handler for receipt confirmation.
func NewConfirmReceiptCommandHandler(
	uowFactory ConfirmReceiptUoWFactory,
	notifier ports.Notifier,
) ConfirmReceiptCommandHandler {
	return ConfirmReceiptCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the confirmation command. The buyer is notified with a
// stock.delivered event strictly after commit.
func (h *ConfirmReceiptCommandHandler) Handle(ctx context.Context, cmd ConfirmReceiptCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	receiptRepo := uow.ReceiptRepository()
	target, err := receiptRepo.GetByCode(ctx, cmd.Code())
	if err != nil {
		return err
	}

	now := time.Now()
	if err = target.Confirm(cmd.Caller(), now); err != nil {
		return err
	}
	if err = receiptRepo.Update(ctx, target); err != nil {
		return err
	}

	for _, line := range target.Lines() {
		if err = h.creditLine(ctx, uow, target, line, now); err != nil {
			return err
		}
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, target.OrderID())
	if err != nil {
		return err
	}
	if o.Status() != order.StatusDelivered {
		if err = o.MarkDelivered(now); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Notify(ctx, target.BuyerID(), "stock.delivered", map[string]any{
		"receipt_code": target.Code(),
		"order_id":     target.OrderID().String(),
	})

	return nil
}

// creditLine merges one snapshot line into the buyer's stock, grouped by
// product name. An existing batch is incremented; otherwise a new batch is
// created carrying over the snapshot's price and catalog metadata.
func (h *ConfirmReceiptCommandHandler) creditLine(
	ctx context.Context,
	uow ConfirmReceiptUoW,
	target *receipt.Receipt,
	line receipt.SnapshotLine,
	now time.Time,
) error {
	stockRepo := uow.StockRepository()
	entries, err := stockRepo.GetEntriesByOwnerAndName(ctx, target.BuyerID(), line.Name())
	if err != nil {
		return err
	}

	if len(entries) > 0 {
		batch := entries[0]
		if err = batch.Credit(line.Quantity()); err != nil {
			return err
		}
		return stockRepo.UpdateEntry(ctx, batch)
	}

	unitPrice := line.UnitPrice()
	receiptID := target.ID()
	batch, err := stock.NewEntry(
		kernel.NewUUID(),
		target.BuyerID(),
		line.Name(),
		line.Quantity(),
		&unitPrice,
		line.Barcode(),
		line.Category(),
		line.ImageURL(),
		&receiptID,
		now,
	)
	if err != nil {
		return err
	}

	return stockRepo.AddEntry(ctx, batch)
}
