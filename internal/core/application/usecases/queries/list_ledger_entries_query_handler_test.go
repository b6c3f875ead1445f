package queries_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLedgerEntriesQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	db := setupQueryDB(t)
	handler := queries.NewListLedgerEntriesQueryHandler(db)

	ownerID := kernel.NewUUID()
	base := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)

	t.Run("should return an empty history for an unknown owner", func(t *testing.T) {
		query, err := queries.NewListLedgerEntriesQuery(kernel.NewUUID())
		require.NoError(t, err)

		entries, err := handler.Handle(ctx, query)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("should list entries newest first", func(t *testing.T) {
		orderID := kernel.NewUUID()
		purchase := seedLedgerEntry(t, db, ownerID,
			stock.LedgerKindDebit, "restock: flour 1kg", 240, nil, base)
		sale := seedLedgerEntry(t, db, ownerID,
			stock.LedgerKindCredit, "order fulfilled", 500, &orderID, base.Add(2*time.Hour))

		// a different owner's history must stay invisible
		seedLedgerEntry(t, db, kernel.NewUUID(),
			stock.LedgerKindCredit, "order fulfilled", 999, nil, base)

		query, err := queries.NewListLedgerEntriesQuery(ownerID)
		require.NoError(t, err)

		entries, err := handler.Handle(ctx, query)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.True(t, entries[0].ID.IsEqual(sale))
		assert.Equal(t, "credit", entries[0].Kind)
		assert.Equal(t, int64(500), entries[0].AmountCents)
		require.NotNil(t, entries[0].RelatedOrderID)
		assert.True(t, entries[0].RelatedOrderID.IsEqual(orderID))

		assert.True(t, entries[1].ID.IsEqual(purchase))
		assert.Equal(t, "debit", entries[1].Kind)
		assert.Equal(t, "restock: flour 1kg", entries[1].Description)
		assert.Nil(t, entries[1].RelatedOrderID)
	})

	t.Run("should reject a query made without the constructor", func(t *testing.T) {
		_, err := handler.Handle(ctx, queries.ListLedgerEntriesQuery{})
		assert.ErrorIs(t, err, queries.ErrListLedgerEntriesQueryIsNotConstructed)
	})
}
