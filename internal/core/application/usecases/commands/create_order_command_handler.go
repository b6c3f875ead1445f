package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// The order insert and the catalog stock decrements share one transaction:
// any line that cannot be covered aborts the whole creation.
type CreateOrderCommandHandler struct {
	uowFactory OrderCatalogUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderCatalogUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	lines := make([]order.Line, 0, len(cmd.Lines()))
	for _, input := range cmd.Lines() {
		line, err := order.NewLine(kernel.NewUUID(), input.ProductID, input.Name, input.Quantity, input.UnitPrice)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Caller().ID(),
		cmd.DepotID(),
		cmd.DeliveryMode(),
		cmd.Address(),
		cmd.Priority(),
		cmd.Notes(),
		lines,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogRepo := uow.CatalogRepository()
	for _, line := range newOrder.Lines() {
		productID := line.ProductID()
		if productID == nil {
			continue
		}

		target, getErr := catalogRepo.GetProduct(ctx, *productID)
		if getErr != nil {
			return getErr
		}
		if err = target.Decrement(line.Quantity()); err != nil {
			return err
		}
		if err = catalogRepo.UpdateProduct(ctx, target); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
