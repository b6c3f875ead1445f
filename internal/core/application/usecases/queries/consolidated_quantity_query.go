package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrConsolidatedQuantityQueryIsNotConstructed = errors.New(
	"ConsolidatedQuantityQuery must be created via NewConsolidatedQuantityQuery constructor",
)

// ConsolidatedQuantityQuery reads the combined on-hand quantity of a product
// and its directly linked neighbours. Only active linkage edges and active
// neighbours count; the walk is one hop, never transitive.
type ConsolidatedQuantityQuery struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConsolidatedQuantityQuery creates a query for a product's consolidated
// quantity.
func NewConsolidatedQuantityQuery(productID kernel.UUID) (ConsolidatedQuantityQuery, error) {
	query := ConsolidatedQuantityQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setProductID(productID); err != nil {
		return ConsolidatedQuantityQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ConsolidatedQuantityQuery) Validate() error {
	return q.guard.Validate(ErrConsolidatedQuantityQueryIsNotConstructed)
}

// ProductID returns the product whose quantity is consolidated.
func (q ConsolidatedQuantityQuery) ProductID() kernel.UUID { return q.productID }

func (q *ConsolidatedQuantityQuery) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	q.productID = productID
	return nil
}

// LinkedProductQuantity is one neighbour's contribution to the total.
type LinkedProductQuantity struct {
	ProductID kernel.UUID
	Name      string
	Quantity  int
}

// ConsolidatedQuantityQueryResponse is the quantity breakdown for a product.
// TotalQuantity is OwnQuantity plus the sum over LinkedProducts.
type ConsolidatedQuantityQueryResponse struct {
	ProductID      kernel.UUID
	OwnQuantity    int
	TotalQuantity  int
	LinkedProducts []LinkedProductQuantity
}
