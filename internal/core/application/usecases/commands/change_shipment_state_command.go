package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/guard"
)

var ErrChangeShipmentStateCommandIsNotConstructed = errors.New(
	"ChangeShipmentStateCommand must be created via NewChangeShipmentStateCommand constructor",
)

// ChangeShipmentStateCommand represents a request to move a shipment through
// its lifecycle. Completion also delivers the order in the same transaction.
type ChangeShipmentStateCommand struct { //nolint:recvcheck //using for validation
	caller     kernel.Caller
	shipmentID kernel.UUID
	target     shipment.Status

	guard guard.ConstructorGuard
}

// NewChangeShipmentStateCommand creates a command to transition a shipment.
func NewChangeShipmentStateCommand(
	caller kernel.Caller,
	shipmentID kernel.UUID,
	target shipment.Status,
) (ChangeShipmentStateCommand, error) {
	cmd := ChangeShipmentStateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setShipmentID(shipmentID),
		cmd.setTarget(target),
	); err != nil {
		return ChangeShipmentStateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeShipmentStateCommand) Validate() error {
	return c.guard.Validate(ErrChangeShipmentStateCommandIsNotConstructed)
}

// Caller returns the party requesting the transition.
func (c ChangeShipmentStateCommand) Caller() kernel.Caller { return c.caller }

// ShipmentID returns the shipment to transition.
func (c ChangeShipmentStateCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// Target returns the requested lifecycle state.
func (c ChangeShipmentStateCommand) Target() shipment.Status { return c.target }

func (c *ChangeShipmentStateCommand) setCaller(caller kernel.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *ChangeShipmentStateCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *ChangeShipmentStateCommand) setTarget(target shipment.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
