package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRemoveProductCommandIsNotConstructed = errors.New(
	"RemoveProductCommand must be created via NewRemoveProductCommand constructor",
)

// RemoveProductCommand represents a request to soft-delete a catalog product.
// The row is kept for historical lookups; only the active flag drops.
type RemoveProductCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.Caller
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveProductCommand creates a command to deactivate a product.
func NewRemoveProductCommand(caller kernel.Caller, productID kernel.UUID) (RemoveProductCommand, error) {
	cmd := RemoveProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setProductID(productID),
	); err != nil {
		return RemoveProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveProductCommand) Validate() error {
	return c.guard.Validate(ErrRemoveProductCommandIsNotConstructed)
}

// Caller returns the party requesting the removal.
func (c RemoveProductCommand) Caller() kernel.Caller { return c.caller }

// ProductID returns the product to deactivate.
func (c RemoveProductCommand) ProductID() kernel.UUID { return c.productID }

func (c *RemoveProductCommand) setCaller(caller kernel.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *RemoveProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}
