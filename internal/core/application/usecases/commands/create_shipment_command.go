package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to open a shipment for a ready
// order. Carrier, vehicle, and driver are optional at creation.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	caller     kernel.Caller
	shipmentID kernel.UUID
	orderID    kernel.UUID
	carrierID  *kernel.UUID
	vehicle    string
	driver     string
	notes      string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to open a shipment.
func NewCreateShipmentCommand(
	caller kernel.Caller,
	shipmentID kernel.UUID,
	orderID kernel.UUID,
	carrierID *kernel.UUID,
	vehicle string,
	driver string,
	notes string,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		vehicle: vehicle,
		driver:  driver,
		notes:   notes,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setShipmentID(shipmentID),
		cmd.setOrderID(orderID),
		cmd.setCarrierID(carrierID),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// Caller returns the party opening the shipment.
func (c CreateShipmentCommand) Caller() kernel.Caller { return c.caller }

// ShipmentID returns the identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// OrderID returns the order to ship.
func (c CreateShipmentCommand) OrderID() kernel.UUID { return c.orderID }

// CarrierID returns the optional carrier to assign at creation.
func (c CreateShipmentCommand) CarrierID() *kernel.UUID { return c.carrierID }

// Vehicle returns the optional vehicle description.
func (c CreateShipmentCommand) Vehicle() string { return c.vehicle }

// Driver returns the optional driver name.
func (c CreateShipmentCommand) Driver() string { return c.driver }

// Notes returns free-form shipment notes.
func (c CreateShipmentCommand) Notes() string { return c.notes }

func (c *CreateShipmentCommand) setCaller(caller kernel.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateShipmentCommand) setCarrierID(carrierID *kernel.UUID) error {
	if carrierID == nil {
		return nil
	}
	if err := carrierID.Validate(); err != nil {
		return err
	}
	c.carrierID = carrierID
	return nil
}
