package queries_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUndeliveredOrdersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	db := setupQueryDB(t)
	handler := queries.NewGetUndeliveredOrdersQueryHandler(db)

	t.Run("should return an empty list when nothing is in flight", func(t *testing.T) {
		orders, err := handler.Handle(ctx, queries.NewGetUndeliveredOrdersQuery())
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("should list in-flight orders newest first with computed totals", func(t *testing.T) {
		buyerID := kernel.NewUUID()
		eta := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

		pendingID := seedOrder(t, db, 10, buyerID, order.StatusPending, nil, []seedLine{
			{name: "flour 1kg", quantity: 2, unitPriceCents: 250},
			{name: "eggs", quantity: 2, unitPriceCents: 100},
		})
		readyID := seedOrder(t, db, 11, buyerID, order.StatusReady, &eta, []seedLine{
			{name: "sugar 1kg", quantity: 3, unitPriceCents: 200},
		})
		seedOrder(t, db, 12, buyerID, order.StatusDelivered, nil, []seedLine{
			{name: "salt 1kg", quantity: 1, unitPriceCents: 50},
		})
		seedOrder(t, db, 13, buyerID, order.StatusCancelled, nil, []seedLine{
			{name: "oats 500g", quantity: 1, unitPriceCents: 150},
		})

		orders, err := handler.Handle(ctx, queries.NewGetUndeliveredOrdersQuery())
		require.NoError(t, err)
		require.Len(t, orders, 2)

		assert.True(t, orders[0].ID.IsEqual(readyID))
		assert.Equal(t, int64(11), orders[0].SequenceNumber)
		assert.Equal(t, "ready", orders[0].Status)
		assert.Equal(t, int64(600), orders[0].TotalCents)
		require.NotNil(t, orders[0].EstimatedDeliveryAt)
		assert.True(t, eta.Equal(*orders[0].EstimatedDeliveryAt))

		assert.True(t, orders[1].ID.IsEqual(pendingID))
		assert.Equal(t, "pending", orders[1].Status)
		assert.Equal(t, int64(700), orders[1].TotalCents)
		assert.True(t, orders[1].BuyerID.IsEqual(buyerID))
		assert.Nil(t, orders[1].EstimatedDeliveryAt)
	})

	t.Run("should reject a query made without the constructor", func(t *testing.T) {
		_, err := handler.Handle(ctx, queries.GetUndeliveredOrdersQuery{})
		assert.ErrorIs(t, err, queries.ErrGetUndeliveredOrdersQueryIsNotConstructed)
	})
}
