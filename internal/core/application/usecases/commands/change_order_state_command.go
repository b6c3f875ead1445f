package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrChangeOrderStateCommandIsNotConstructed = errors.New(
	"ChangeOrderStateCommand must be created via NewChangeOrderStateCommand constructor",
)

// ChangeOrderStateCommand represents a request to move an order through its
// lifecycle. The transition table decides legality; an illegal pair is a
// ConflictError naming both states.
type ChangeOrderStateCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.Caller
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStateCommand creates a command to transition an order.
func NewChangeOrderStateCommand(
	caller kernel.Caller,
	orderID kernel.UUID,
	target order.Status,
) (ChangeOrderStateCommand, error) {
	cmd := ChangeOrderStateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return ChangeOrderStateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStateCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStateCommandIsNotConstructed)
}

// Caller returns the party requesting the transition.
func (c ChangeOrderStateCommand) Caller() kernel.Caller { return c.caller }

// OrderID returns the order to transition.
func (c ChangeOrderStateCommand) OrderID() kernel.UUID { return c.orderID }

// Target returns the requested lifecycle state.
func (c ChangeOrderStateCommand) Target() order.Status { return c.target }

func (c *ChangeOrderStateCommand) setCaller(caller kernel.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *ChangeOrderStateCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStateCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
