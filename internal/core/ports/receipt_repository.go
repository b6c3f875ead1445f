package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/receipt"
)

// ReceiptRepository defines the persistence contract for delivery receipts.
// The store enforces uniqueness of the receipt code and of the order id,
// which is what makes receipt creation idempotent and confirmation
// serializable under concurrency.
type ReceiptRepository interface {
	// Add persists a new receipt and its line snapshot.
	Add(ctx context.Context, aggregate *receipt.Receipt) error

	// Update persists changes to an existing receipt (the confirmation flip).
	Update(ctx context.Context, aggregate *receipt.Receipt) error

	// Get retrieves a receipt by id.
	Get(ctx context.Context, id kernel.UUID) (*receipt.Receipt, error)

	// GetByCode retrieves a receipt by its confirmation code.
	GetByCode(ctx context.Context, code string) (*receipt.Receipt, error)

	// GetByOrderID retrieves the receipt for an order.
	// Returns ObjectNotFoundError when the order has none.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*receipt.Receipt, error)
}
