package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"
)

// StockRepository defines the persistence contract for personal stock batches
// and the financial ledger. Ledger rows are append-only: there is no update
// or delete for them.
type StockRepository interface {
	// AddEntry persists a new stock batch.
	AddEntry(ctx context.Context, aggregate *stock.Entry) error

	// UpdateEntry persists a changed batch quantity.
	UpdateEntry(ctx context.Context, aggregate *stock.Entry) error

	// DeleteEntry removes an exhausted batch.
	DeleteEntry(ctx context.Context, id kernel.UUID) error

	// GetEntriesByOwnerAndName retrieves all batches for the (owner, name)
	// group ordered by creation time ascending — the FIFO walk order.
	GetEntriesByOwnerAndName(ctx context.Context, ownerID kernel.UUID, name string) ([]*stock.Entry, error)

	// AddLedgerEntry appends a financial audit row.
	AddLedgerEntry(ctx context.Context, aggregate *stock.LedgerEntry) error
}
