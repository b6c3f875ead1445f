package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its lines are stored together; updating an order replaces its
// full line set (delete-then-recreate) so line edits are never merges.
type OrderRepository interface {
	// Add persists a new order and its lines, and feeds the store-assigned
	// sequence number back into the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, replacing its line set.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines by id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllUndelivered retrieves orders that are neither delivered nor
	// cancelled, for work-queue listings.
	GetAllUndelivered(ctx context.Context) ([]*order.Order, error)
}
