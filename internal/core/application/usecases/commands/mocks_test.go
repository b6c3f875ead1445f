package commands_test

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/domain/model/receipt"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) AddProduct(ctx context.Context, aggregate *product.Product) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpdateProduct(ctx context.Context, aggregate *product.Product) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCatalogRepository) GetProduct(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockCatalogRepository) GetActiveProductByBarcode(
	ctx context.Context, depotID kernel.UUID, code string,
) (*product.Product, error) {
	args := m.Called(ctx, depotID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockCatalogRepository) AddLinkage(ctx context.Context, aggregate *product.Linkage) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpdateLinkage(ctx context.Context, aggregate *product.Linkage) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCatalogRepository) GetActiveLinkageBetween(ctx context.Context, a, b kernel.UUID) (*product.Linkage, error) {
	args := m.Called(ctx, a, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Linkage), args.Error(1)
}

func (m *MockCatalogRepository) GetActiveLinkagesFor(
	ctx context.Context, productID kernel.UUID,
) ([]*product.Linkage, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Linkage), args.Error(1)
}

func (m *MockCatalogRepository) AddAlternateBarcode(ctx context.Context, aggregate *product.AlternateBarcode) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpdateAlternateBarcode(ctx context.Context, aggregate *product.AlternateBarcode) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCatalogRepository) GetAlternateBarcode(
	ctx context.Context, id kernel.UUID,
) (*product.AlternateBarcode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.AlternateBarcode), args.Error(1)
}

func (m *MockCatalogRepository) GetActiveAlternateBarcodeByCode(
	ctx context.Context, depotID kernel.UUID, code string,
) (*product.AlternateBarcode, error) {
	args := m.Called(ctx, depotID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.AlternateBarcode), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllUndelivered(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

type MockReceiptRepository struct{ mock.Mock }

func (m *MockReceiptRepository) Add(ctx context.Context, aggregate *receipt.Receipt) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockReceiptRepository) Update(ctx context.Context, aggregate *receipt.Receipt) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockReceiptRepository) Get(ctx context.Context, id kernel.UUID) (*receipt.Receipt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*receipt.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) GetByCode(ctx context.Context, code string) (*receipt.Receipt, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*receipt.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*receipt.Receipt, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*receipt.Receipt), args.Error(1)
}

type MockStockRepository struct{ mock.Mock }

func (m *MockStockRepository) AddEntry(ctx context.Context, aggregate *stock.Entry) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockStockRepository) UpdateEntry(ctx context.Context, aggregate *stock.Entry) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockStockRepository) DeleteEntry(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStockRepository) GetEntriesByOwnerAndName(
	ctx context.Context, ownerID kernel.UUID, name string,
) ([]*stock.Entry, error) {
	args := m.Called(ctx, ownerID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*stock.Entry), args.Error(1)
}

func (m *MockStockRepository) AddLedgerEntry(ctx context.Context, aggregate *stock.LedgerEntry) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, partyID kernel.UUID, event string, payload any) error {
	args := m.Called(ctx, partyID, event, payload)
	return args.Error(0)
}

type MockOrderCatalogUoW struct{ mock.Mock }

func (m *MockOrderCatalogUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderCatalogUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderCatalogUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderCatalogUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderCatalogUoW) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

type MockOrderCatalogUoWFactory struct{ mock.Mock }

func (m *MockOrderCatalogUoWFactory) Create() commands.OrderCatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderCatalogUoW)
}

type MockShipmentOrderUoW struct{ mock.Mock }

func (m *MockShipmentOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentOrderUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockShipmentOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockShipmentOrderUoWFactory struct{ mock.Mock }

func (m *MockShipmentOrderUoWFactory) Create() commands.ShipmentOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentOrderUoW)
}

type MockConfirmReceiptUoW struct{ mock.Mock }

func (m *MockConfirmReceiptUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockConfirmReceiptUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockConfirmReceiptUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockConfirmReceiptUoW) ReceiptRepository() ports.ReceiptRepository {
	args := m.Called()
	return args.Get(0).(ports.ReceiptRepository)
}

func (m *MockConfirmReceiptUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockConfirmReceiptUoW) StockRepository() ports.StockRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRepository)
}

type MockConfirmReceiptUoWFactory struct{ mock.Mock }

func (m *MockConfirmReceiptUoWFactory) Create() commands.ConfirmReceiptUoW {
	args := m.Called()
	return args.Get(0).(commands.ConfirmReceiptUoW)
}

type MockCatalogStockUoW struct{ mock.Mock }

func (m *MockCatalogStockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogStockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogStockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogStockUoW) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

func (m *MockCatalogStockUoW) StockRepository() ports.StockRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRepository)
}

type MockCatalogStockUoWFactory struct{ mock.Mock }

func (m *MockCatalogStockUoWFactory) Create() commands.CatalogStockUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogStockUoW)
}
