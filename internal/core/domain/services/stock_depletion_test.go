package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeBatch(t *testing.T, quantity int, priceCents int64, createdAt time.Time) *stock.Entry {
	t.Helper()
	var price *kernel.Money
	if priceCents > 0 {
		m, err := kernel.NewMoney(priceCents)
		require.NoError(t, err)
		price = &m
	}
	e, err := stock.NewEntry(kernel.NewUUID(), kernel.NewUUID(),
		"flour 1kg", quantity, price, "", "", "", nil, createdAt)
	require.NoError(t, err)
	return e
}

func TestStockDepletionPlan(t *testing.T) {
	depletion := services.NewStockDepletion()
	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	t.Run("should consume oldest batches first", func(t *testing.T) {
		oldest := makeBatch(t, 3, 100, t1)
		newest := makeBatch(t, 5, 200, t2)

		plan, err := depletion.Plan([]*stock.Entry{newest, oldest}, 4, nil)

		require.NoError(t, err)
		require.Len(t, plan.Exhausted, 1)
		assert.Same(t, oldest, plan.Exhausted[0])
		require.NotNil(t, plan.Updated)
		assert.Same(t, newest, plan.Updated)
		assert.Equal(t, 4, newest.Quantity())
	})

	t.Run("should price the sale by the oldest batch", func(t *testing.T) {
		oldest := makeBatch(t, 3, 100, t1)
		newest := makeBatch(t, 5, 200, t2)

		plan, err := depletion.Plan([]*stock.Entry{oldest, newest}, 4, nil)

		require.NoError(t, err)
		assert.Equal(t, int64(400), plan.Amount.Cents())
	})

	t.Run("should prefer the price override", func(t *testing.T) {
		oldest := makeBatch(t, 3, 100, t1)
		override, err := kernel.NewMoney(250)
		require.NoError(t, err)

		plan, err := depletion.Plan([]*stock.Entry{oldest}, 2, &override)

		require.NoError(t, err)
		assert.Equal(t, int64(500), plan.Amount.Cents())
	})

	t.Run("should price at zero when no batch carries a price", func(t *testing.T) {
		batch := makeBatch(t, 3, 0, t1)

		plan, err := depletion.Plan([]*stock.Entry{batch}, 2, nil)

		require.NoError(t, err)
		assert.True(t, plan.Amount.IsZero())
	})

	t.Run("should end exactly on a batch boundary", func(t *testing.T) {
		oldest := makeBatch(t, 3, 100, t1)
		newest := makeBatch(t, 5, 200, t2)

		plan, err := depletion.Plan([]*stock.Entry{oldest, newest}, 8, nil)

		require.NoError(t, err)
		assert.Len(t, plan.Exhausted, 2)
		assert.Nil(t, plan.Updated)
	})

	t.Run("should fail without touching any batch when stock is short", func(t *testing.T) {
		oldest := makeBatch(t, 3, 100, t1)
		newest := makeBatch(t, 5, 200, t2)

		_, err := depletion.Plan([]*stock.Entry{oldest, newest}, 9, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInsufficientStock)
		assert.Equal(t, 3, oldest.Quantity())
		assert.Equal(t, 5, newest.Quantity())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		batch := makeBatch(t, 3, 100, t1)

		_, err := depletion.Plan([]*stock.Entry{batch}, 0, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
