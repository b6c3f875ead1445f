package shipment

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// State transitions:
//
//	pending    ──> in_transit, failed
//	in_transit ──> delivered, failed
//	delivered  ──> (terminal)
//	failed     ──> (terminal)
//
// Failed is reachable from any non-terminal state; delivered and failed are
// final.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status after shipment creation.
	StatusPending

	// StatusInTransit indicates the carrier has departed.
	StatusInTransit

	// StatusDelivered is a terminal status: goods handed over.
	StatusDelivered

	// StatusFailed is a terminal status for abandoned shipments.
	StatusFailed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusFailed:    "failed",
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
		"status", fmt.Errorf("%q is not a valid shipment status", s))
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
			"status", fmt.Errorf("%d is not a valid shipment status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid shipment status", s))
	}
	return nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusFailed
}

// TransitionTo validates the move from s to target and returns the new status.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	allowed := false
	switch target {
	case StatusInTransit:
		allowed = s == StatusPending
	case StatusDelivered:
		allowed = s == StatusInTransit
	case StatusFailed:
		allowed = !s.IsTerminal()
	case StatusPending, StatusUnknown:
		allowed = false
	}

	if !allowed {
		return 0, errs.NewConflictError(fmt.Sprintf("shipment cannot go from %s to %s", s, target))
	}
	return target, nil
}
