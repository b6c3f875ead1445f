package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/core/domain/services"
)

// DepleteStockCommandHandler handles FIFO stock depletion. The plan is
// computed by the domain service; this handler persists its deletions and
// update and, when the sale has a value, appends a credit ledger row, all in
// one transaction.
type DepleteStockCommandHandler struct {
	uowFactory StockUoWFactory
	depletion  services.StockDepletion
}

// NewDepleteStockCommandHandler creates a handler for depletion operations.
func NewDepleteStockCommandHandler(uowFactory StockUoWFactory) DepleteStockCommandHandler {
	return DepleteStockCommandHandler{
		uowFactory: uowFactory,
		depletion:  services.NewStockDepletion(),
	}
}

// Handle processes the depletion command.
func (h *DepleteStockCommandHandler) Handle(ctx context.Context, cmd DepleteStockCommand) error {
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

	plan, err := h.depletion.Plan(entries, cmd.Quantity(), cmd.UnitPriceOverride())
	if err != nil {
		return err
	}

	for _, exhausted := range plan.Exhausted {
		if err = stockRepo.DeleteEntry(ctx, exhausted.ID()); err != nil {
			return err
		}
	}
	if plan.Updated != nil {
		if err = stockRepo.UpdateEntry(ctx, plan.Updated); err != nil {
			return err
		}
	}

	if !plan.Amount.IsZero() {
		sale, saleErr := stock.NewLedgerEntry(
			kernel.NewUUID(),
			cmd.OwnerID(),
			stock.LedgerKindCredit,
			fmt.Sprintf("sale of %d x %s", cmd.Quantity(), cmd.Name()),
			plan.Amount,
			"sale",
			nil,
			time.Now(),
		)
		if saleErr != nil {
			return saleErr
		}
		if err = stockRepo.AddLedgerEntry(ctx, sale); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
