package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// DeliveryMode says how the goods leave the depot: shipped by the depot's
// own logistics, handed to an external carrier, or picked up by the buyer.
// Pickup orders may go straight from ready to delivered; the other modes
// pass through the shipment path.
type DeliveryMode int

const (
	// DeliveryModeUnknown represents an invalid or undefined mode.
	DeliveryModeUnknown DeliveryMode = iota

	// DeliveryModeShip is depot-managed delivery.
	DeliveryModeShip

	// DeliveryModeCarrier is delivery by an external carrier.
	DeliveryModeCarrier

	// DeliveryModePickup is collection by the buyer at the depot.
	DeliveryModePickup
)

func getDeliveryModeStrings() map[DeliveryMode]string {
	return map[DeliveryMode]string{
		DeliveryModeUnknown: "unknown",
		DeliveryModeShip:    "ship",
		DeliveryModeCarrier: "carrier",
		DeliveryModePickup:  "pickup",
	}
}

// DeliveryModeFromString parses a mode name.
func DeliveryModeFromString(s string) (DeliveryMode, error) {
	for mode, name := range getDeliveryModeStrings() {
		if mode != DeliveryModeUnknown && name == s {
			return mode, nil
		}
	}
	return DeliveryModeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"deliveryMode", fmt.Errorf("%q is not a valid delivery mode", s))
}

// String returns the lowercase mode name.
func (m DeliveryMode) String() string {
	if s, ok := getDeliveryModeStrings()[m]; ok {
		return s
	}
	return "unknown"
}

// Validate checks the mode is one of the defined values.
func (m DeliveryMode) Validate() error {
	if m == DeliveryModeUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryMode", fmt.Errorf("%d is not a valid delivery mode", m))
	}
	if _, ok := getDeliveryModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryMode", fmt.Errorf("%d is not a valid delivery mode", m))
	}
	return nil
}
