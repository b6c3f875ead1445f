package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
)

// defaultDeliveryWindow is the delivery promise made when a shipment is
// opened. The reminder sweep flags orders still undelivered past it.
const defaultDeliveryWindow = 24 * time.Hour

// CreateShipmentCommandHandler handles the business logic for opening a
// shipment. The duplicate check, the shipment insert, and the order's move to
// shipped share one transaction.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentOrderUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(uowFactory ShipmentOrderUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command. The order must be ready,
// and at most one shipment may exist per order.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
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

	orderRepo := uow.OrderRepository()
	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if target.Status() != order.StatusReady {
		return errs.NewConflictError(fmt.Sprintf(
			"shipment requires a ready order, order %s is %s", target.ID(), target.Status()))
	}

	shipmentRepo := uow.ShipmentRepository()
	_, err = shipmentRepo.GetByOrderID(ctx, target.ID())
	if err == nil {
		return errs.NewConflictError(fmt.Sprintf(
			"order %s already has a shipment", target.ID()))
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newShipment, err := shipment.NewShipment(cmd.ShipmentID(), target.ID(), cmd.Notes())
	if err != nil {
		return err
	}
	if carrierID := cmd.CarrierID(); carrierID != nil {
		if err = newShipment.AssignCarrier(*carrierID, cmd.Vehicle(), cmd.Driver()); err != nil {
			return err
		}
	}

	estimate := time.Now().Add(defaultDeliveryWindow)
	newShipment.SetEstimatedArrival(estimate)
	target.SetEstimatedDelivery(estimate)

	if err = target.TransitionTo(order.StatusShipped); err != nil {
		return err
	}

	if err = shipmentRepo.Add(ctx, newShipment); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
