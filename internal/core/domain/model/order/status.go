package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	pending   ──> preparing, cancelled
//	preparing ──> ready, cancelled
//	ready     ──> shipped, delivered*, cancelled   (*pickup mode only)
//	shipped   ──> delivered
//	delivered ──> (terminal)
//	cancelled ──> (terminal)
//
// Any transition outside this table is rejected with a ConflictError naming
// the illegal pair.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status. Only while pending may the buyer
	// edit line items.
	StatusPending

	// StatusPreparing indicates the depot is assembling the order.
	StatusPreparing

	// StatusReady indicates the order awaits shipment or pickup.
	StatusReady

	// StatusShipped indicates a shipment has been created for the order.
	StatusShipped

	// StatusDelivered is a terminal status: goods handed over.
	StatusDelivered

	// StatusCancelled is a terminal status, reachable before shipping only.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusPreparing: "preparing",
		StatusReady:     "ready",
		StatusShipped:   "shipped",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

// getNextStatuses returns the transition table of the order lifecycle.
// Delivered straight from ready is mode-dependent and handled by TransitionTo.
func getNextStatuses() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:   {StatusPreparing, StatusCancelled},
		StatusPreparing: {StatusReady, StatusCancelled},
		StatusReady:     {StatusShipped, StatusDelivered, StatusCancelled},
		StatusShipped:   {StatusDelivered},
		StatusDelivered: {},
		StatusCancelled: {},
	}
}

// StatusFromString parses a status name as received from transport or storage.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != StatusUnknown && name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid order status", s))
}

// String returns the lowercase status name, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid order status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// TransitionTo validates the move from s to target under the order's
// delivery mode and returns the new status.
//
// Delivered directly from ready is allowed for pickup orders only; shipped
// orders reach delivered through the shipment path. An illegal pair yields
// a ConflictError identifying both states.
func (s Status) TransitionTo(target Status, mode DeliveryMode) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	for _, next := range getNextStatuses()[s] {
		if next != target {
			continue
		}

		if s == StatusReady && target == StatusDelivered && mode != DeliveryModePickup {
			return 0, errs.NewConflictError(fmt.Sprintf(
				"order cannot go from %s to %s unless it is a pickup order", s, target))
		}

		return target, nil
	}

	return 0, errs.NewConflictError(fmt.Sprintf("order cannot go from %s to %s", s, target))
}
