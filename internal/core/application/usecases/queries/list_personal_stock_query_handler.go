package queries

import (
	"context"
	"database/sql"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListPersonalStockQueryHandler retrieves the stock batches owned by a party.
type ListPersonalStockQueryHandler struct {
	db *gorm.DB
}

// NewListPersonalStockQueryHandler creates a handler for personal stock
// queries.
func NewListPersonalStockQueryHandler(db *gorm.DB) ListPersonalStockQueryHandler {
	return ListPersonalStockQueryHandler{db: db}
}

// Handle executes the query. Batches are grouped by item name and sorted
// oldest first within each name.
func (h ListPersonalStockQueryHandler) Handle(
	ctx context.Context,
	query ListPersonalStockQuery,
) ([]ListPersonalStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]ListPersonalStockQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			quantity,
			unit_price_cents,
			barcode,
			category,
			image_url,
			created_at
		FROM personal_stock_entries
		WHERE owner_id = ?
		ORDER BY name, created_at ASC
	`, query.OwnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entry     ListPersonalStockQueryResponse
			id        uuid.UUID
			unitPrice sql.NullInt64
			createdAt time.Time
		)

		err = rows.Scan(
			&id,
			&entry.Name,
			&entry.Quantity,
			&unitPrice,
			&entry.Barcode,
			&entry.Category,
			&entry.ImageURL,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = entryID

		if unitPrice.Valid {
			cents := unitPrice.Int64
			entry.UnitPriceCents = &cents
		}
		entry.CreatedAt = createdAt

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
