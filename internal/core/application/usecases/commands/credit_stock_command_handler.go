package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"
)

// CreditStockCommandHandler handles manual personal stock credits.
type CreditStockCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewCreditStockCommandHandler creates a handler for manual credits.
func NewCreditStockCommandHandler(uowFactory StockUoWFactory) CreditStockCommandHandler {
	return CreditStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the credit command, merging into an existing batch of the
// same name when one exists.
func (h *CreditStockCommandHandler) Handle(ctx context.Context, cmd CreditStockCommand) error {
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

	stockRepo := uow.StockRepository()
	entries, err := stockRepo.GetEntriesByOwnerAndName(ctx, cmd.OwnerID(), cmd.Name())
	if err != nil {
		return err
	}

	if len(entries) > 0 {
		batch := entries[0]
		if err = batch.Credit(cmd.Quantity()); err != nil {
			return err
		}
		if err = stockRepo.UpdateEntry(ctx, batch); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	batch, err := stock.NewEntry(
		kernel.NewUUID(),
		cmd.OwnerID(),
		cmd.Name(),
		cmd.Quantity(),
		cmd.UnitPrice(),
		cmd.Barcode(),
		cmd.Category(),
		cmd.ImageURL(),
		nil,
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = stockRepo.AddEntry(ctx, batch); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
