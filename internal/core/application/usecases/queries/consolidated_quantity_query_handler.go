package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConsolidatedQuantityQueryHandler sums a product's on-hand quantity with the
// quantities of its active one-hop neighbours in the linkage graph.
type ConsolidatedQuantityQueryHandler struct {
	db *gorm.DB
}

// NewConsolidatedQuantityQueryHandler creates a handler for consolidated
// quantity queries.
func NewConsolidatedQuantityQueryHandler(db *gorm.DB) ConsolidatedQuantityQueryHandler {
	return ConsolidatedQuantityQueryHandler{db: db}
}

// Handle executes the query. Returns an object-not-found error when the
// product itself does not exist; an inactive product still reports its own
// quantity but contributes no neighbours and gains none.
func (h ConsolidatedQuantityQueryHandler) Handle(
	ctx context.Context,
	query ConsolidatedQuantityQuery,
) (ConsolidatedQuantityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ConsolidatedQuantityQueryResponse{}, err
	}

	var ownQuantity int
	var active bool
	err := h.db.WithContext(ctx).Raw(`
		SELECT quantity_on_hand, active
		FROM products
		WHERE id = ?
	`, query.ProductID().Bytes()).Row().Scan(&ownQuantity, &active)
	if errors.Is(err, sql.ErrNoRows) {
		return ConsolidatedQuantityQueryResponse{},
			errs.NewObjectNotFoundError("product", query.ProductID().String())
	}
	if err != nil {
		return ConsolidatedQuantityQueryResponse{}, err
	}

	resp := ConsolidatedQuantityQueryResponse{
		ProductID:      query.ProductID(),
		OwnQuantity:    ownQuantity,
		TotalQuantity:  ownQuantity,
		LinkedProducts: make([]LinkedProductQuantity, 0),
	}
	if !active {
		return resp, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT p.id, p.name, p.quantity_on_hand
		FROM product_linkages l
		JOIN products p ON p.id = CASE
			WHEN l.product_a = ? THEN l.product_b
			ELSE l.product_a
		END
		WHERE l.active = ?
		  AND p.active = ?
		  AND (l.product_a = ? OR l.product_b = ?)
		ORDER BY p.name
	`,
		query.ProductID().Bytes(), true, true,
		query.ProductID().Bytes(), query.ProductID().Bytes(),
	).Rows()
	if err != nil {
		return ConsolidatedQuantityQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        uuid.UUID
			neighbour LinkedProductQuantity
		)
		if err = rows.Scan(&id, &neighbour.Name, &neighbour.Quantity); err != nil {
			return ConsolidatedQuantityQueryResponse{}, err
		}

		neighbourID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ConsolidatedQuantityQueryResponse{}, idErr
		}
		neighbour.ProductID = neighbourID

		resp.LinkedProducts = append(resp.LinkedProducts, neighbour)
		resp.TotalQuantity += neighbour.Quantity
	}

	if err = rows.Err(); err != nil {
		return ConsolidatedQuantityQueryResponse{}, err
	}

	return resp, nil
}
