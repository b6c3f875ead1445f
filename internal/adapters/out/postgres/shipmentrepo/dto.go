// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. The unique index on order id backs the one
// shipment per order rule.
package shipmentrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The last reported location is embedded; a nil ReportedAt means
// no report has been taken yet.
type ShipmentDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	CarrierID   *uuid.UUID `gorm:"type:uuid;index"`
	Vehicle     string
	Driver      string
	Status      int `gorm:"index"`
	DepartedAt  *time.Time
	DeliveredAt *time.Time
	EstimatedAt *time.Time
	Location    LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	Notes       string
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// LocationDTO represents the embedded last reported position within the
// shipment table.
type LocationDTO struct {
	Latitude   float64
	Longitude  float64
	Address    string
	ReportedAt *time.Time
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(s *shipment.Shipment) ShipmentDTO {
	var carrierID *uuid.UUID
	if id := s.CarrierID(); id != nil {
		raw := id.Bytes()
		carrierID = &raw
	}

	var location LocationDTO
	if point := s.CurrentLocation(); !point.IsZero() {
		reportedAt := point.ReportedAt()
		location = LocationDTO{
			Latitude:   point.Latitude(),
			Longitude:  point.Longitude(),
			Address:    point.Address(),
			ReportedAt: &reportedAt,
		}
	}

	return ShipmentDTO{
		ID:          s.ID().Bytes(),
		OrderID:     s.OrderID().Bytes(),
		CarrierID:   carrierID,
		Vehicle:     s.Vehicle(),
		Driver:      s.Driver(),
		Status:      int(s.Status()),
		DepartedAt:  s.DepartedAt(),
		DeliveredAt: s.DeliveredAt(),
		EstimatedAt: s.EstimatedAt(),
		Location:    location,
		Notes:       s.Notes(),
	}
}

// toDomain converts a database DTO to a shipment aggregate using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var carrierID *kernel.UUID
	if dto.CarrierID != nil {
		cID, cErr := kernel.UUIDFromBytes((*dto.CarrierID)[:])
		if cErr != nil {
			return nil, cErr
		}
		carrierID = &cID
	}

	var location kernel.GeoPoint
	if dto.Location.ReportedAt != nil {
		location, err = kernel.NewGeoPoint(
			dto.Location.Latitude,
			dto.Location.Longitude,
			dto.Location.Address,
			*dto.Location.ReportedAt,
		)
		if err != nil {
			return nil, err
		}
	}

	return shipment.RestoreShipment(
		id,
		orderID,
		carrierID,
		dto.Vehicle,
		dto.Driver,
		shipment.Status(dto.Status),
		dto.DepartedAt,
		dto.DeliveredAt,
		dto.EstimatedAt,
		location,
		dto.Notes,
	)
}
