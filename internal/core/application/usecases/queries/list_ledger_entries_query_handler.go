package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListLedgerEntriesQueryHandler retrieves the financial audit trail of a
// party.
type ListLedgerEntriesQueryHandler struct {
	db *gorm.DB
}

// NewListLedgerEntriesQueryHandler creates a handler for ledger history
// queries.
func NewListLedgerEntriesQueryHandler(db *gorm.DB) ListLedgerEntriesQueryHandler {
	return ListLedgerEntriesQueryHandler{db: db}
}

// Handle executes the query. Entries are returned newest first.
func (h ListLedgerEntriesQueryHandler) Handle(
	ctx context.Context,
	query ListLedgerEntriesQuery,
) ([]ListLedgerEntriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]ListLedgerEntriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			description,
			amount_cents,
			category,
			related_order_id,
			created_at
		FROM ledger_entries
		WHERE owner_id = ?
		ORDER BY created_at DESC
	`, query.OwnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entry          ListLedgerEntriesQueryResponse
			id             uuid.UUID
			kind           int
			relatedOrderID uuid.NullUUID
			createdAt      time.Time
		)

		err = rows.Scan(
			&id,
			&kind,
			&entry.Description,
			&entry.AmountCents,
			&entry.Category,
			&relatedOrderID,
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

		if relatedOrderID.Valid {
			orderID, orderErr := kernel.UUIDFromBytes(relatedOrderID.UUID[:])
			if orderErr != nil {
				return nil, orderErr
			}
			entry.RelatedOrderID = &orderID
		}

		entry.Kind = stock.LedgerKind(kind).String()
		entry.CreatedAt = createdAt

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
