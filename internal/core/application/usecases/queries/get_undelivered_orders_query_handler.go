package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUndeliveredOrdersQueryHandler retrieves orders that have not reached a
// terminal status. Newest orders come first.
type GetUndeliveredOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUndeliveredOrdersQueryHandler creates a handler for undelivered order
// queries.
func NewGetUndeliveredOrdersQueryHandler(db *gorm.DB) GetUndeliveredOrdersQueryHandler {
	return GetUndeliveredOrdersQueryHandler{db: db}
}

// Handle executes the query. Totals are computed from the line rows so the
// response never disagrees with the order's lines.
func (h GetUndeliveredOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUndeliveredOrdersQuery,
) ([]GetUndeliveredOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUndeliveredOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.sequence_number,
			o.buyer_id,
			o.status,
			o.priority,
			o.address,
			o.estimated_delivery_at,
			COALESCE((
				SELECT SUM(ol.quantity * ol.unit_price_cents)
				FROM order_lines ol
				WHERE ol.order_id = o.id
			), 0)
		FROM orders o
		WHERE o.status NOT IN (?, ?)
		ORDER BY o.sequence_number DESC
	`, int(order.StatusDelivered), int(order.StatusCancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderResp GetUndeliveredOrdersQueryResponse
			id        uuid.UUID
			buyerID   uuid.UUID
			status    int
			estimated sql.NullTime
		)

		err = rows.Scan(
			&id,
			&orderResp.SequenceNumber,
			&buyerID,
			&status,
			&orderResp.Priority,
			&orderResp.Address,
			&estimated,
			&orderResp.TotalCents,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		buyer, buyerErr := kernel.UUIDFromBytes(buyerID[:])
		if buyerErr != nil {
			return nil, buyerErr
		}
		orderResp.BuyerID = buyer

		orderResp.Status = order.Status(status).String()
		if estimated.Valid {
			at := estimated.Time
			orderResp.EstimatedDeliveryAt = &at
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
