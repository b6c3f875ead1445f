package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("at least one order line is required")
)

// OrderLineInput carries one requested line. Name and unit price become the
// order's snapshot; the product reference is optional for off-catalog lines.
type OrderLineInput struct {
	ProductID *kernel.UUID
	Name      string
	Quantity  int
	UnitPrice kernel.Money
}

// CreateOrderCommand represents a request to create a new order for the
// calling buyer. Stock for every line carrying a product reference is
// decremented in the same transaction.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(caller, orderID, depotID, order.DeliveryModeShip,
//	    "123 Main Street", 0, "", lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	caller       kernel.Caller
	orderID      kernel.UUID
	depotID      kernel.UUID
	deliveryMode order.DeliveryMode
	address      string
	priority     int
	notes        string
	lines        []OrderLineInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// The caller is the buyer; line-level validation happens in the domain model.
func NewCreateOrderCommand(
	caller kernel.Caller,
	orderID kernel.UUID,
	depotID kernel.UUID,
	deliveryMode order.DeliveryMode,
	address string,
	priority int,
	notes string,
	lines []OrderLineInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		address:  address,
		priority: priority,
		notes:    notes,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setOrderID(orderID),
		cmd.setDepotID(depotID),
		cmd.setDeliveryMode(deliveryMode),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Caller returns the ordering buyer.
func (c CreateOrderCommand) Caller() kernel.Caller { return c.caller }

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// DepotID returns the fulfilling depot.
func (c CreateOrderCommand) DepotID() kernel.UUID { return c.depotID }

// DeliveryMode returns how the goods leave the depot.
func (c CreateOrderCommand) DeliveryMode() order.DeliveryMode { return c.deliveryMode }

// Address returns the delivery address, if any.
func (c CreateOrderCommand) Address() string { return c.address }

// Priority returns the handling priority.
func (c CreateOrderCommand) Priority() int { return c.priority }

// Notes returns free-form order notes.
func (c CreateOrderCommand) Notes() string { return c.notes }

// Lines returns the requested line inputs.
func (c CreateOrderCommand) Lines() []OrderLineInput { return c.lines }

func (c *CreateOrderCommand) setCaller(caller kernel.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setDepotID(depotID kernel.UUID) error {
	if err := depotID.Validate(); err != nil {
		return err
	}
	c.depotID = depotID
	return nil
}

func (c *CreateOrderCommand) setDeliveryMode(deliveryMode order.DeliveryMode) error {
	if err := deliveryMode.Validate(); err != nil {
		return err
	}
	c.deliveryMode = deliveryMode
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLineInput) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}
	c.lines = make([]OrderLineInput, len(lines))
	copy(c.lines, lines)
	return nil
}
