package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// AssignCarrierCommandHandler handles the business logic for carrier
// assignment.
type AssignCarrierCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewAssignCarrierCommandHandler creates a handler for carrier assignment.
func NewAssignCarrierCommandHandler(uowFactory ShipmentUoWFactory) AssignCarrierCommandHandler {
	return AssignCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
func (h *AssignCarrierCommandHandler) Handle(ctx context.Context, cmd AssignCarrierCommand) error {
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

	if err = target.AssignCarrier(cmd.CarrierID(), cmd.Vehicle(), cmd.Driver()); err != nil {
		return err
	}
	if err = shipmentRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
