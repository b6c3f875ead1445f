package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrListPersonalStockQueryIsNotConstructed = errors.New(
	"ListPersonalStockQuery must be created via NewListPersonalStockQuery constructor",
)

// ListPersonalStockQuery retrieves one party's stock batches. Batches of the
// same item are returned oldest first, matching the order depletion consumes
// them in.
type ListPersonalStockQuery struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListPersonalStockQuery creates a query for a party's stock batches.
func NewListPersonalStockQuery(ownerID kernel.UUID) (ListPersonalStockQuery, error) {
	query := ListPersonalStockQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOwnerID(ownerID); err != nil {
		return ListPersonalStockQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListPersonalStockQuery) Validate() error {
	return q.guard.Validate(ErrListPersonalStockQueryIsNotConstructed)
}

// OwnerID returns the party whose stock is listed.
func (q ListPersonalStockQuery) OwnerID() kernel.UUID { return q.ownerID }

func (q *ListPersonalStockQuery) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	q.ownerID = ownerID
	return nil
}

// ListPersonalStockQueryResponse is one stock batch. UnitPriceCents is nil
// when the batch was credited without a known price.
type ListPersonalStockQueryResponse struct {
	ID             kernel.UUID
	Name           string
	Quantity       int
	UnitPriceCents *int64
	Barcode        string
	Category       string
	ImageURL       string
	CreatedAt      time.Time
}
