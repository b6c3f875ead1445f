package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ChangeOrderStateCommandHandler handles the business logic for order
// lifecycle transitions. Cancellation restores decremented product stock in
// the same transaction. The buyer is notified after commit.
type ChangeOrderStateCommandHandler struct {
	uowFactory OrderCatalogUoWFactory
	notifier   ports.Notifier
}

// NewChangeOrderStateCommandHandler creates a handler for order transitions.
func NewChangeOrderStateCommandHandler(
	uowFactory OrderCatalogUoWFactory,
	notifier ports.Notifier,
) ChangeOrderStateCommandHandler {
	return ChangeOrderStateCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the transition command. Depot staff may move any order;
// a buyer may only cancel their own.
func (h *ChangeOrderStateCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStateCommand) error {
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

	if !cmd.Caller().Role().HasCapability(kernel.CapabilityManageOrders) {
		ownCancellation := cmd.Target() == order.StatusCancelled &&
			target.BuyerID().IsEqual(cmd.Caller().ID())
		if !ownCancellation {
			return errs.NewAuthorizationError("caller cannot manage orders")
		}
	}

	if err = target.TransitionTo(cmd.Target()); err != nil {
		return err
	}

	if cmd.Target() == order.StatusCancelled {
		if err = restoreLineStock(ctx, uow.CatalogRepository(), target.Lines()); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Notify(ctx, target.BuyerID(), "order.status_changed", map[string]any{
		"order_id": target.ID().String(),
		"status":   target.Status().String(),
	})

	return nil
}
