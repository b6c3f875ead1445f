package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/pkg/errs"
)

// RestockProductCommandHandler handles the business logic for restocking.
// Credits quantity onto the product and, when a unit cost is known, appends a
// purchase row to the depot's ledger in the same transaction.
type RestockProductCommandHandler struct {
	uowFactory CatalogStockUoWFactory
}

// NewRestockProductCommandHandler creates a handler for restock operations.
func NewRestockProductCommandHandler(uowFactory CatalogStockUoWFactory) RestockProductCommandHandler {
	return RestockProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restock command.
func (h *RestockProductCommandHandler) Handle(ctx context.Context, cmd RestockProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if !cmd.Caller().Role().HasCapability(kernel.CapabilityManageCatalog) {
		return errs.NewAuthorizationError("caller cannot manage the catalog")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogRepo := uow.CatalogRepository()
	target, err := catalogRepo.GetProduct(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = target.Restock(cmd.Quantity()); err != nil {
		return err
	}
	if err = catalogRepo.UpdateProduct(ctx, target); err != nil {
		return err
	}

	if err = recordPurchase(ctx, uow, target.DepotID(), target.UnitCost(), cmd.Quantity(),
		fmt.Sprintf("restock of %s", target.Name())); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// recordPurchase appends a purchase ledger row for a stock credit. A nil unit
// cost means no amount can be computed, and nothing is recorded.
func recordPurchase(
	ctx context.Context,
	uow CatalogStockUoW,
	ownerID kernel.UUID,
	unitCost *kernel.Money,
	quantity int,
	description string,
) error {
	if unitCost == nil {
		return nil
	}

	amount, err := unitCost.MultiplyQuantity(quantity)
	if err != nil {
		return err
	}
	if amount.IsZero() {
		return nil
	}

	entry, err := stock.NewLedgerEntry(
		kernel.NewUUID(),
		ownerID,
		stock.LedgerKindDebit,
		description,
		amount,
		"purchase",
		nil,
		time.Now(),
	)
	if err != nil {
		return err
	}

	return uow.StockRepository().AddLedgerEntry(ctx, entry)
}
