package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrReplaceOrderLinesCommandIsNotConstructed = errors.New(
	"ReplaceOrderLinesCommand must be created via NewReplaceOrderLinesCommand constructor",
)

// ReplaceOrderLinesCommand represents a request to swap an order's entire
// line set. Only the buyer may edit, and only while the order is pending.
type ReplaceOrderLinesCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.Caller
	orderID kernel.UUID
	lines   []OrderLineInput

	guard guard.ConstructorGuard
}

// NewReplaceOrderLinesCommand creates a command to replace order lines.
func NewReplaceOrderLinesCommand(
	caller kernel.Caller,
	orderID kernel.UUID,
	lines []OrderLineInput,
) (ReplaceOrderLinesCommand, error) {
	cmd := ReplaceOrderLinesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
		cmd.setLines(lines),
	); err != nil {
		return ReplaceOrderLinesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplaceOrderLinesCommand) Validate() error {
	return c.guard.Validate(ErrReplaceOrderLinesCommandIsNotConstructed)
}

// Caller returns the editing party.
func (c ReplaceOrderLinesCommand) Caller() kernel.Caller { return c.caller }

// OrderID returns the order to edit.
func (c ReplaceOrderLinesCommand) OrderID() kernel.UUID { return c.orderID }

// Lines returns the replacement line inputs.
func (c ReplaceOrderLinesCommand) Lines() []OrderLineInput { return c.lines }

func (c *ReplaceOrderLinesCommand) setCaller(caller kernel.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *ReplaceOrderLinesCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ReplaceOrderLinesCommand) setLines(lines []OrderLineInput) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}
	c.lines = make([]OrderLineInput, len(lines))
	copy(c.lines, lines)
	return nil
}
