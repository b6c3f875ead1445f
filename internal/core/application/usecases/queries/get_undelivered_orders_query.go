package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetUndeliveredOrdersQueryIsNotConstructed = errors.New(
	"GetUndeliveredOrdersQuery must be created via NewGetUndeliveredOrdersQuery constructor",
)

// GetUndeliveredOrdersQuery retrieves all orders still in flight. Delivered
// and cancelled orders are excluded; everything else counts as workload.
//
// Example:
//
//	query := NewGetUndeliveredOrdersQuery()
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders in flight\n", len(orders))
type GetUndeliveredOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUndeliveredOrdersQuery creates a query to retrieve undelivered orders.
func NewGetUndeliveredOrdersQuery() GetUndeliveredOrdersQuery {
	return GetUndeliveredOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUndeliveredOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUndeliveredOrdersQueryIsNotConstructed)
}

// GetUndeliveredOrdersQueryResponse is one in-flight order. TotalCents is the
// sum over the order's lines of quantity times unit price.
type GetUndeliveredOrdersQueryResponse struct {
	ID                  kernel.UUID
	SequenceNumber      int64
	BuyerID             kernel.UUID
	Status              string
	Priority            int
	Address             string
	EstimatedDeliveryAt *time.Time
	TotalCents          int64
}
