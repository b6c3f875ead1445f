package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ChangeShipmentStateCommandHandler handles the business logic for shipment
// lifecycle transitions. Marking a shipment delivered also delivers its
// order; the dual update is one transaction, never two independent writes.
// The buyer is notified after commit.
type ChangeShipmentStateCommandHandler struct {
	uowFactory ShipmentOrderUoWFactory
	notifier   ports.Notifier
}

// NewChangeShipmentStateCommandHandler creates a handler for shipment transitions.
func NewChangeShipmentStateCommandHandler(
	uowFactory ShipmentOrderUoWFactory,
	notifier ports.Notifier,
) ChangeShipmentStateCommandHandler {
	return ChangeShipmentStateCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the shipment transition command.
func (h *ChangeShipmentStateCommandHandler) Handle(ctx context.Context, cmd ChangeShipmentStateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if !cmd.Caller().Role().HasCapability(kernel.CapabilityManageShipments) {
		return errs.NewAuthorizationError("caller cannot manage shipments")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	target, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	now := time.Now()
	var deliveredOrder *deliveredOrderRef

	switch cmd.Target() {
	case shipment.StatusInTransit:
		err = target.Depart(now)
	case shipment.StatusDelivered:
		deliveredOrder, err = h.completeDelivery(ctx, uow, target, now)
	case shipment.StatusFailed:
		err = target.MarkFailed()
	default:
		_, err = target.Status().TransitionTo(cmd.Target())
	}
	if err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if deliveredOrder != nil {
		_ = h.notifier.Notify(ctx, deliveredOrder.buyerID, "order.status_changed", map[string]any{
			"order_id": deliveredOrder.orderID.String(),
			"status":   "delivered",
		})
	}

	return nil
}

type deliveredOrderRef struct {
	orderID kernel.UUID
	buyerID kernel.UUID
}

// completeDelivery marks the shipment and its order delivered at the same
// moment and persists the order within the open transaction.
func (h *ChangeShipmentStateCommandHandler) completeDelivery(
	ctx context.Context,
	uow ShipmentOrderUoW,
	target *shipment.Shipment,
	now time.Time,
) (*deliveredOrderRef, error) {
	if err := target.MarkDelivered(now); err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, target.OrderID())
	if err != nil {
		return nil, err
	}
	if err = o.MarkDelivered(now); err != nil {
		return nil, err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	return &deliveredOrderRef{orderID: o.ID(), buyerID: o.BuyerID()}, nil
}
