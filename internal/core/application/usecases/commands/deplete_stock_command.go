package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrDepleteStockCommandIsNotConstructed = errors.New(
	"DepleteStockCommand must be created via NewDepleteStockCommand constructor",
)

// DepleteStockCommand represents a request to consume quantity from an
// owner's personal stock, oldest batches first. All-or-nothing.
type DepleteStockCommand struct { //nolint:recvcheck //using for validation
	ownerID           kernel.UUID
	name              string
	quantity          int
	unitPriceOverride *kernel.Money

	guard guard.ConstructorGuard
}

// NewDepleteStockCommand creates a command to deplete personal stock. The
// optional price override replaces the oldest batch's price in the sale
// amount calculation.
func NewDepleteStockCommand(
	ownerID kernel.UUID,
	name string,
	quantity int,
	unitPriceOverride *kernel.Money,
) (DepleteStockCommand, error) {
	cmd := DepleteStockCommand{
		unitPriceOverride: unitPriceOverride,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setName(name),
		cmd.setQuantity(quantity),
	); err != nil {
		return DepleteStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DepleteStockCommand) Validate() error {
	return c.guard.Validate(ErrDepleteStockCommandIsNotConstructed)
}

// OwnerID returns the stock owner.
func (c DepleteStockCommand) OwnerID() kernel.UUID { return c.ownerID }

// Name returns the product name to deplete.
func (c DepleteStockCommand) Name() string { return c.name }

// Quantity returns the quantity to consume.
func (c DepleteStockCommand) Quantity() int { return c.quantity }

// UnitPriceOverride returns the optional sale price override.
func (c DepleteStockCommand) UnitPriceOverride() *kernel.Money { return c.unitPriceOverride }

func (c *DepleteStockCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

func (c *DepleteStockCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *DepleteStockCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}
