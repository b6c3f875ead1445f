package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the order workbook. It owns its line items
// and total and moves through the lifecycle defined by Status.
//
// Order maintains these invariants:
//   - at least one line item at all times
//   - total always equals the sum of line subtotals
//   - lifecycle transitions follow the Status table; terminal states are final
//   - line edits are only possible while pending, and replace the whole set
type Order struct {
	id                  kernel.UUID
	sequenceNumber      int64
	buyerID             kernel.UUID
	depotID             kernel.UUID
	deliveryMode        DeliveryMode
	address             string
	status              Status
	priority            int
	total               kernel.Money
	notes               string
	estimatedDeliveryAt *time.Time
	deliveredAt         *time.Time
	lines               []Line

	isConstructed bool
}

// NewOrder creates a pending order from a non-empty line list. The total is
// computed from the lines; an empty list is a validation error. The sequence
// number is assigned by the store on first insert.
func NewOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	depotID kernel.UUID,
	deliveryMode DeliveryMode,
	address string,
	priority int,
	notes string,
	lines []Line,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		address:       address,
		priority:      priority,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyerID(buyerID),
		o.setDepotID(depotID),
		o.setDeliveryMode(deliveryMode),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rehydrates an order from persistence. The total is recomputed
// from the stored lines so the total invariant cannot drift from stale rows.
func RestoreOrder(
	id kernel.UUID,
	sequenceNumber int64,
	buyerID kernel.UUID,
	depotID kernel.UUID,
	deliveryMode DeliveryMode,
	address string,
	status Status,
	priority int,
	notes string,
	estimatedDeliveryAt *time.Time,
	deliveredAt *time.Time,
	lines []Line,
) (*Order, error) {
	o, err := NewOrder(id, buyerID, depotID, deliveryMode, address, priority, notes, lines)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.sequenceNumber = sequenceNumber
	o.status = status
	o.estimatedDeliveryAt = estimatedDeliveryAt
	o.deliveredAt = deliveredAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// SequenceNumber returns the store-assigned human-facing order number.
// Zero until first persisted.
func (o *Order) SequenceNumber() int64 { return o.sequenceNumber }

// BuyerID returns the ordering party.
func (o *Order) BuyerID() kernel.UUID { return o.buyerID }

// DepotID returns the fulfilling depot.
func (o *Order) DepotID() kernel.UUID { return o.depotID }

// DeliveryMode returns how the goods leave the depot.
func (o *Order) DeliveryMode() DeliveryMode { return o.deliveryMode }

// Address returns the delivery address, if any.
func (o *Order) Address() string { return o.address }

// Status returns the current lifecycle state.
func (o *Order) Status() Status { return o.status }

// Priority returns the handling priority.
func (o *Order) Priority() int { return o.priority }

// Total returns the order total, always equal to the sum of line subtotals.
func (o *Order) Total() kernel.Money { return o.total }

// Notes returns free-form order notes.
func (o *Order) Notes() string { return o.notes }

// EstimatedDeliveryAt returns the promised delivery time, if set.
func (o *Order) EstimatedDeliveryAt() *time.Time { return o.estimatedDeliveryAt }

// DeliveredAt returns the delivery timestamp, set on reaching delivered.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// Lines returns a copy of the order's line items.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// SetSequenceNumber records the store-assigned order number after insert.
func (o *Order) SetSequenceNumber(n int64) error {
	if n <= 0 {
		return errs.NewValueIsInvalidError("sequenceNumber")
	}
	o.sequenceNumber = n
	return nil
}

// SetEstimatedDelivery records the promised delivery time.
func (o *Order) SetEstimatedDelivery(t time.Time) {
	utc := t.UTC()
	o.estimatedDeliveryAt = &utc
}

// ReplaceLines swaps the entire line set and recomputes the total.
//
// Line editing is a full replacement, not a merge, and is permitted while the
// order is pending only. Ownership (only the buyer edits) is checked by the
// calling operation.
func (o *Order) ReplaceLines(lines []Line) error {
	if o.status != StatusPending {
		return errs.NewConflictError(fmt.Sprintf(
			"order lines can only be edited while pending, order is %s", o.status))
	}
	return o.setLines(lines)
}

// TransitionTo moves the order to the target lifecycle state, enforcing the
// transition table. Reaching delivered stamps the delivery time.
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target, o.deliveryMode)
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == StatusDelivered {
		o.stampDelivered(time.Now())
	}
	return nil
}

// MarkDelivered sets the order delivered at the given moment, regardless of
// delivery mode. It backs the shipment-completion and receipt-confirmation
// paths, which may close ready or shipped orders directly. Calling it on an
// already delivered order is a no-op, so the two paths cannot double-stamp.
func (o *Order) MarkDelivered(now time.Time) error {
	if o.status == StatusDelivered {
		return nil
	}
	if o.status != StatusReady && o.status != StatusShipped {
		return errs.NewConflictError(fmt.Sprintf("order cannot go from %s to %s", o.status, StatusDelivered))
	}

	o.status = StatusDelivered
	o.stampDelivered(now)
	return nil
}

func (o *Order) stampDelivered(now time.Time) {
	if o.deliveredAt != nil {
		return
	}
	utc := now.UTC()
	o.deliveredAt = &utc
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	o.buyerID = buyerID
	return nil
}

func (o *Order) setDepotID(depotID kernel.UUID) error {
	if err := depotID.Validate(); err != nil {
		return err
	}
	o.depotID = depotID
	return nil
}

func (o *Order) setDeliveryMode(mode DeliveryMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	o.deliveryMode = mode
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}

	total := kernel.Money{}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		total = total.Add(line.Subtotal())
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	o.total = total
	return nil
}
