package product_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeProduct(t *testing.T) *product.Product {
	t.Helper()
	unitPrice, err := kernel.NewMoney(125)
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(),
		"4006381333931", "flour 1kg", unitPrice, nil, "baking", "")
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("should create active product with zero stock", func(t *testing.T) {
		p := makeProduct(t)

		require.NoError(t, p.Validate())
		assert.True(t, p.IsActive())
		assert.Equal(t, 0, p.QuantityOnHand())
		assert.Nil(t, p.UnitCost())
		assert.Equal(t, "baking", p.Category())
	})

	t.Run("should fail with blank barcode", func(t *testing.T) {
		unitPrice, err := kernel.NewMoney(100)
		require.NoError(t, err)

		p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(),
			"  ", "flour", unitPrice, nil, "", "")

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with blank name", func(t *testing.T) {
		unitPrice, err := kernel.NewMoney(100)
		require.NoError(t, err)

		p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(),
			"4006381333931", "", unitPrice, nil, "", "")

		require.Error(t, err)
		assert.Nil(t, p)
	})
}

func TestProductHasBarcode(t *testing.T) {
	t.Run("should match the primary barcode", func(t *testing.T) {
		p := makeProduct(t)

		assert.True(t, p.HasBarcode("4006381333931"))
		assert.False(t, p.HasBarcode("0000000000000"))
	})

	t.Run("should match mixed-case alphanumeric codes", func(t *testing.T) {
		unitPrice, err := kernel.NewMoney(100)
		require.NoError(t, err)
		p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(),
			"AbC-123", "widget", unitPrice, nil, "", "")
		require.NoError(t, err)

		assert.True(t, p.HasBarcode("abc-123"))
		assert.True(t, p.HasBarcode("ABC-123"))
	})
}

func TestProductStockArithmetic(t *testing.T) {
	t.Run("should restock and decrement", func(t *testing.T) {
		p := makeProduct(t)

		require.NoError(t, p.Restock(10))
		require.NoError(t, p.Decrement(4))

		assert.Equal(t, 6, p.QuantityOnHand())
	})

	t.Run("should reject non-positive restock", func(t *testing.T) {
		p := makeProduct(t)

		require.Error(t, p.Restock(0))
		require.Error(t, p.Restock(-3))
		assert.Equal(t, 0, p.QuantityOnHand())
	})

	t.Run("should reject overdraw without mutating", func(t *testing.T) {
		p := makeProduct(t)
		require.NoError(t, p.Restock(3))

		err := p.Decrement(5)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInsufficientStock)
		assert.Equal(t, 3, p.QuantityOnHand())
	})

	t.Run("should reject negative overwrite", func(t *testing.T) {
		p := makeProduct(t)

		err := p.SetQuantityOnHand(-1)

		require.Error(t, err)
	})
}

func TestProductDeactivate(t *testing.T) {
	t.Run("should keep data after deactivation", func(t *testing.T) {
		p := makeProduct(t)
		require.NoError(t, p.Restock(5))

		p.Deactivate()

		assert.False(t, p.IsActive())
		assert.Equal(t, 5, p.QuantityOnHand())
		assert.Equal(t, "flour 1kg", p.Name())
	})
}

func TestNewLinkage(t *testing.T) {
	t.Run("should create active symmetric edge", func(t *testing.T) {
		a := kernel.NewUUID()
		b := kernel.NewUUID()

		l, err := product.NewLinkage(kernel.NewUUID(), kernel.NewUUID(), a, b)

		require.NoError(t, err)
		require.NoError(t, l.Validate())
		assert.True(t, l.IsActive())
		assert.True(t, l.Connects(a, b))
		assert.True(t, l.Connects(b, a))
	})

	t.Run("should reject a self-link", func(t *testing.T) {
		a := kernel.NewUUID()

		l, err := product.NewLinkage(kernel.NewUUID(), kernel.NewUUID(), a, a)

		require.Error(t, err)
		assert.Nil(t, l)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestLinkageOtherSide(t *testing.T) {
	a := kernel.NewUUID()
	b := kernel.NewUUID()
	l, err := product.NewLinkage(kernel.NewUUID(), kernel.NewUUID(), a, b)
	require.NoError(t, err)

	t.Run("should return the opposite product", func(t *testing.T) {
		other, ok := l.OtherSide(a)
		require.True(t, ok)
		assert.True(t, other.IsEqual(b))

		other, ok = l.OtherSide(b)
		require.True(t, ok)
		assert.True(t, other.IsEqual(a))
	})

	t.Run("should report non-participants", func(t *testing.T) {
		_, ok := l.OtherSide(kernel.NewUUID())
		assert.False(t, ok)
	})
}

func TestNewAlternateBarcode(t *testing.T) {
	t.Run("should create active alias", func(t *testing.T) {
		a, err := product.NewAlternateBarcode(kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), "5000112637922")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.IsActive())
		assert.True(t, a.Matches("5000112637922"))
	})

	t.Run("should fail with blank code", func(t *testing.T) {
		a, err := product.NewAlternateBarcode(kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), " ")

		require.Error(t, err)
		assert.Nil(t, a)
	})

	t.Run("should match codes case-insensitively", func(t *testing.T) {
		a, err := product.NewAlternateBarcode(kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), "AbC-999")
		require.NoError(t, err)

		assert.True(t, a.Matches("abc-999"))
	})
}
