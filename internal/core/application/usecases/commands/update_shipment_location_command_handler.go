package commands

import (
	"context"
)

// UpdateShipmentLocationCommandHandler handles position reports. The shipment
// aggregate enforces that only the assigned carrier may report.
type UpdateShipmentLocationCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewUpdateShipmentLocationCommandHandler creates a handler for position reports.
func NewUpdateShipmentLocationCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentLocationCommandHandler {
	return UpdateShipmentLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the position report.
func (h *UpdateShipmentLocationCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentLocationCommand) error {
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

	shipmentRepo := uow.ShipmentRepository()
	target, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = target.UpdateLocation(cmd.Caller().ID(), cmd.Point()); err != nil {
		return err
	}
	if err = shipmentRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
