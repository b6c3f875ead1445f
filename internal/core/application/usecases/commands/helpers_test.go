package commands_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

func makeTestCaller(t *testing.T, role kernel.Role) kernel.Caller {
	t.Helper()
	caller, err := kernel.NewCaller(kernel.NewUUID(), role)
	require.NoError(t, err)
	return caller
}

func makeTestProduct(t *testing.T, quantity int, unitCostCents int64) *product.Product {
	t.Helper()
	unitPrice, err := kernel.NewMoney(200)
	require.NoError(t, err)
	var unitCost *kernel.Money
	if unitCostCents > 0 {
		m, err := kernel.NewMoney(unitCostCents)
		require.NoError(t, err)
		unitCost = &m
	}
	p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(),
		"4006381333931", "flour 1kg", unitPrice, unitCost, "baking", "")
	require.NoError(t, err)
	if quantity > 0 {
		require.NoError(t, p.Restock(quantity))
	}
	return p
}

func makeTestLine(t *testing.T, productID *kernel.UUID, name string, quantity int) order.Line {
	t.Helper()
	unitPrice, err := kernel.NewMoney(200)
	require.NoError(t, err)
	line, err := order.NewLine(kernel.NewUUID(), productID, name, quantity, unitPrice)
	require.NoError(t, err)
	return line
}

func makeTestOrder(t *testing.T, buyerID kernel.UUID, status order.Status, lines []order.Line) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), 1, buyerID, kernel.NewUUID(),
		order.DeliveryModeShip, "123 Main Street", status, 0, "", nil, nil, lines)
	require.NoError(t, err)
	return o
}
