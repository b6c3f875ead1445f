package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignCarrierCommandIsNotConstructed = errors.New(
	"AssignCarrierCommand must be created via NewAssignCarrierCommand constructor",
)

// AssignCarrierCommand represents a request to put a carrier on a shipment.
// Reassignment is allowed until the shipment reaches a terminal state.
type AssignCarrierCommand struct { //nolint:recvcheck //using for validation
	caller     kernel.Caller
	shipmentID kernel.UUID
	carrierID  kernel.UUID
	vehicle    string
	driver     string

	guard guard.ConstructorGuard
}

// NewAssignCarrierCommand creates a command to assign a carrier.
func NewAssignCarrierCommand(
	caller kernel.Caller,
	shipmentID kernel.UUID,
	carrierID kernel.UUID,
	vehicle string,
	driver string,
) (AssignCarrierCommand, error) {
	cmd := AssignCarrierCommand{
		vehicle: vehicle,
		driver:  driver,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setShipmentID(shipmentID),
		cmd.setCarrierID(carrierID),
	); err != nil {
		return AssignCarrierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCarrierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCarrierCommandIsNotConstructed)
}

// Caller returns the party assigning the carrier.
func (c AssignCarrierCommand) Caller() kernel.Caller { return c.caller }

// ShipmentID returns the shipment to assign.
func (c AssignCarrierCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// CarrierID returns the carrier to put on the shipment.
func (c AssignCarrierCommand) CarrierID() kernel.UUID { return c.carrierID }

// Vehicle returns the optional vehicle description.
func (c AssignCarrierCommand) Vehicle() string { return c.vehicle }

// Driver returns the optional driver name.
func (c AssignCarrierCommand) Driver() string { return c.driver }

func (c *AssignCarrierCommand) setCaller(caller kernel.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *AssignCarrierCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *AssignCarrierCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}
	c.carrierID = carrierID
	return nil
}
