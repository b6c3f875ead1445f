package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateReceiptCommandIsNotConstructed = errors.New(
	"CreateReceiptCommand must be created via NewCreateReceiptCommand constructor",
)

// CreateReceiptCommand represents a request to issue the delivery receipt for
// an order. Creation is idempotent: an existing receipt is returned unchanged.
type CreateReceiptCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.Caller
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateReceiptCommand creates a command to issue a receipt.
func NewCreateReceiptCommand(caller kernel.Caller, orderID kernel.UUID) (CreateReceiptCommand, error) {
	cmd := CreateReceiptCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
	); err != nil {
		return CreateReceiptCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReceiptCommand) Validate() error {
	return c.guard.Validate(ErrCreateReceiptCommandIsNotConstructed)
}

// Caller returns the party issuing the receipt.
func (c CreateReceiptCommand) Caller() kernel.Caller { return c.caller }

// OrderID returns the order to issue a receipt for.
func (c CreateReceiptCommand) OrderID() kernel.UUID { return c.orderID }

func (c *CreateReceiptCommand) setCaller(caller kernel.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *CreateReceiptCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
