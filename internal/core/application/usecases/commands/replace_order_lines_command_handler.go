package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ReplaceOrderLinesCommandHandler handles the business logic for line edits.
// The old line set's stock is restored and the new set's stock decremented in
// the same transaction, so the catalog never drifts from the order book.
type ReplaceOrderLinesCommandHandler struct {
	uowFactory OrderCatalogUoWFactory
}

// NewReplaceOrderLinesCommandHandler creates a handler for line edits.
func NewReplaceOrderLinesCommandHandler(uowFactory OrderCatalogUoWFactory) ReplaceOrderLinesCommandHandler {
	return ReplaceOrderLinesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the line replacement command. Buyer-only; the pending-only
// rule is enforced by the order aggregate.
func (h *ReplaceOrderLinesCommandHandler) Handle(ctx context.Context, cmd ReplaceOrderLinesCommand) error {
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

	orderRepo := uow.OrderRepository()
	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !target.BuyerID().IsEqual(cmd.Caller().ID()) {
		return errs.NewAuthorizationError("order lines can only be edited by the buyer")
	}

	catalogRepo := uow.CatalogRepository()
	if err = restoreLineStock(ctx, catalogRepo, target.Lines()); err != nil {
		return err
	}

	lines := make([]order.Line, 0, len(cmd.Lines()))
	for _, input := range cmd.Lines() {
		line, lineErr := order.NewLine(kernel.NewUUID(), input.ProductID, input.Name, input.Quantity, input.UnitPrice)
		if lineErr != nil {
			return lineErr
		}
		lines = append(lines, line)
	}

	if err = target.ReplaceLines(lines); err != nil {
		return err
	}

	for _, line := range target.Lines() {
		productID := line.ProductID()
		if productID == nil {
			continue
		}

		p, getErr := catalogRepo.GetProduct(ctx, *productID)
		if getErr != nil {
			return getErr
		}
		if err = p.Decrement(line.Quantity()); err != nil {
			return err
		}
		if err = catalogRepo.UpdateProduct(ctx, p); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// restoreLineStock credits decremented stock back onto the catalog for every
// line carrying a product reference. Used by line edits and cancellation.
func restoreLineStock(ctx context.Context, repo ports.CatalogRepository, lines []order.Line) error {
	for _, line := range lines {
		productID := line.ProductID()
		if productID == nil {
			continue
		}

		p, err := repo.GetProduct(ctx, *productID)
		if err != nil {
			return err
		}
		if err = p.Restock(line.Quantity()); err != nil {
			return err
		}
		if err = repo.UpdateProduct(ctx, p); err != nil {
			return err
		}
	}

	return nil
}
