package shipment

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through the NewShipment factory method.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
)

// Shipment tracks the physical movement of exactly one order: carrier
// assignment, the last reported location, and completion. It exists only for
// orders that reached ready; the one-to-one relation with the order is
// enforced by the store and rechecked at creation.
//
// Marking a shipment delivered also delivers its order; that dual update is
// one atomic step owned by the completing operation, never two independent
// writes.
type Shipment struct {
	id              kernel.UUID
	orderID         kernel.UUID
	carrierID       *kernel.UUID
	vehicle         string
	driver          string
	status          Status
	departedAt      *time.Time
	deliveredAt     *time.Time
	estimatedAt     *time.Time
	currentLocation kernel.GeoPoint
	notes           string

	isConstructed bool
}

// NewShipment creates a pending shipment for an order.
func NewShipment(id, orderID kernel.UUID, notes string) (*Shipment, error) {
	s := &Shipment{
		status:        StatusPending,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment rehydrates a shipment from persistence.
func RestoreShipment(
	id kernel.UUID,
	orderID kernel.UUID,
	carrierID *kernel.UUID,
	vehicle string,
	driver string,
	status Status,
	departedAt *time.Time,
	deliveredAt *time.Time,
	estimatedAt *time.Time,
	currentLocation kernel.GeoPoint,
	notes string,
) (*Shipment, error) {
	s, err := NewShipment(id, orderID, notes)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if carrierID != nil {
		if err = carrierID.Validate(); err != nil {
			return nil, err
		}
	}

	s.carrierID = carrierID
	s.vehicle = vehicle
	s.driver = driver
	s.status = status
	s.departedAt = departedAt
	s.deliveredAt = deliveredAt
	s.estimatedAt = estimatedAt
	s.currentLocation = currentLocation
	return s, nil
}

// Validate ensures the Shipment was constructed through NewShipment.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID { return s.id }

// OrderID returns the order this shipment moves.
func (s *Shipment) OrderID() kernel.UUID { return s.orderID }

// CarrierID returns the assigned carrier, if any.
func (s *Shipment) CarrierID() *kernel.UUID { return s.carrierID }

// Vehicle returns the vehicle description, if any.
func (s *Shipment) Vehicle() string { return s.vehicle }

// Driver returns the driver name, if any.
func (s *Shipment) Driver() string { return s.driver }

// Status returns the current lifecycle state.
func (s *Shipment) Status() Status { return s.status }

// DepartedAt returns the departure timestamp, set on entering transit.
func (s *Shipment) DepartedAt() *time.Time { return s.departedAt }

// DeliveredAt returns the delivery timestamp.
func (s *Shipment) DeliveredAt() *time.Time { return s.deliveredAt }

// EstimatedAt returns the estimated arrival, if set.
func (s *Shipment) EstimatedAt() *time.Time { return s.estimatedAt }

// CurrentLocation returns the last reported position; zero when never reported.
func (s *Shipment) CurrentLocation() kernel.GeoPoint { return s.currentLocation }

// Notes returns free-form shipment notes.
func (s *Shipment) Notes() string { return s.notes }

// AssignCarrier records the carrier, vehicle, and driver. Assignment and
// reassignment are allowed until the shipment reaches a terminal state.
func (s *Shipment) AssignCarrier(carrierID kernel.UUID, vehicle, driver string) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}
	if s.status.IsTerminal() {
		return errs.NewConflictError(fmt.Sprintf(
			"carrier cannot be assigned to a %s shipment", s.status))
	}

	s.carrierID = &carrierID
	s.vehicle = vehicle
	s.driver = driver
	return nil
}

// SetEstimatedArrival records the estimated arrival time.
func (s *Shipment) SetEstimatedArrival(t time.Time) {
	utc := t.UTC()
	s.estimatedAt = &utc
}

// UpdateLocation overwrites the last reported position. Only the assigned
// carrier may report; anyone else gets an AuthorizationError.
func (s *Shipment) UpdateLocation(reporter kernel.UUID, point kernel.GeoPoint) error {
	if err := reporter.Validate(); err != nil {
		return err
	}
	if s.carrierID == nil || !s.carrierID.IsEqual(reporter) {
		return errs.NewAuthorizationError("only the assigned carrier may update the shipment location")
	}
	if s.status.IsTerminal() {
		return errs.NewConflictError(fmt.Sprintf(
			"location cannot be updated on a %s shipment", s.status))
	}

	s.currentLocation = point
	return nil
}

// Depart moves the shipment into transit and stamps the departure time.
func (s *Shipment) Depart(now time.Time) error {
	newStatus, err := s.status.TransitionTo(StatusInTransit)
	if err != nil {
		return err
	}

	s.status = newStatus
	utc := now.UTC()
	s.departedAt = &utc
	return nil
}

// MarkDelivered completes the shipment and stamps the delivery time.
// The caller is responsible for delivering the order in the same transaction.
func (s *Shipment) MarkDelivered(now time.Time) error {
	newStatus, err := s.status.TransitionTo(StatusDelivered)
	if err != nil {
		return err
	}

	s.status = newStatus
	utc := now.UTC()
	s.deliveredAt = &utc
	return nil
}

// MarkFailed abandons the shipment from any non-terminal state.
func (s *Shipment) MarkFailed() error {
	newStatus, err := s.status.TransitionTo(StatusFailed)
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	s.orderID = orderID
	return nil
}
