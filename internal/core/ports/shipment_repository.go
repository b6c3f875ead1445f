package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// Shipments are one-to-one with orders; the store carries a uniqueness
// constraint on the order id backing the duplicate-shipment check.
type ShipmentRepository interface {
	// Add persists a new shipment.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by id.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByOrderID retrieves the shipment for an order.
	// Returns ObjectNotFoundError when the order has none.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*shipment.Shipment, error)
}
