package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateShipmentLocationCommandIsNotConstructed = errors.New(
	"UpdateShipmentLocationCommand must be created via NewUpdateShipmentLocationCommand constructor",
)

// UpdateShipmentLocationCommand represents a position report from the
// assigned carrier. The report overwrites the previous position.
type UpdateShipmentLocationCommand struct { //nolint:recvcheck //using for validation
	caller     kernel.Caller
	shipmentID kernel.UUID
	point      kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateShipmentLocationCommand creates a command to report a position.
func NewUpdateShipmentLocationCommand(
	caller kernel.Caller,
	shipmentID kernel.UUID,
	point kernel.GeoPoint,
) (UpdateShipmentLocationCommand, error) {
	cmd := UpdateShipmentLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setShipmentID(shipmentID),
		cmd.setPoint(point),
	); err != nil {
		return UpdateShipmentLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentLocationCommandIsNotConstructed)
}

// Caller returns the reporting party.
func (c UpdateShipmentLocationCommand) Caller() kernel.Caller { return c.caller }

// ShipmentID returns the shipment being tracked.
func (c UpdateShipmentLocationCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// Point returns the reported position.
func (c UpdateShipmentLocationCommand) Point() kernel.GeoPoint { return c.point }

func (c *UpdateShipmentLocationCommand) setCaller(caller kernel.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *UpdateShipmentLocationCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentLocationCommand) setPoint(point kernel.GeoPoint) error {
	if point.IsZero() {
		return errs.NewValueIsRequiredError("point")
	}
	c.point = point
	return nil
}
