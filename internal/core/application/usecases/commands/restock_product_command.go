package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRestockProductCommandIsNotConstructed = errors.New(
		"RestockProductCommand must be created via NewRestockProductCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// RestockProductCommand represents a request to credit quantity onto a
// catalog product. When the product carries a unit cost, the restock also
// records a purchase in the depot's ledger.
type RestockProductCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.Caller
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewRestockProductCommand creates a command to restock a product.
func NewRestockProductCommand(caller kernel.Caller, productID kernel.UUID, quantity int) (RestockProductCommand, error) {
	cmd := RestockProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return RestockProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RestockProductCommand) Validate() error {
	return c.guard.Validate(ErrRestockProductCommandIsNotConstructed)
}

// Caller returns the party requesting the restock.
func (c RestockProductCommand) Caller() kernel.Caller { return c.caller }

// ProductID returns the product to credit.
func (c RestockProductCommand) ProductID() kernel.UUID { return c.productID }

// Quantity returns the quantity to credit.
func (c RestockProductCommand) Quantity() int { return c.quantity }

func (c *RestockProductCommand) setCaller(caller kernel.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *RestockProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *RestockProductCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}
