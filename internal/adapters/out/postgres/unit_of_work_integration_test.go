package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/domain/model/receipt"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection
// and runs migrations to prepare the schema.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = postgres_adapter.Migrate(db)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(`TRUNCATE TABLE products, product_linkages, alternate_barcodes,
		orders, order_lines, shipments, receipts, receipt_lines,
		personal_stock_entries, ledger_entries`).Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.CatalogRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.ShipmentRepository())
	suite.NotNil(uow2.ReceiptRepository())
	suite.NotNil(suite.factory.Create().StockRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testProduct := createIntegrationProduct(suite, 10)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.CatalogRepository().AddProduct(ctx, testProduct)
	suite.Require().NoError(err)

	retrieved, err := uow.CatalogRepository().GetProduct(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.True(testProduct.ID().IsEqual(retrieved.ID()))
	suite.Equal(10, retrieved.QuantityOnHand())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.CatalogRepository().GetProduct(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(testProduct.Barcode(), retrieved.Barcode())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderSequenceAssignment() {
	ctx := context.Background()
	uow := suite.factory.Create()

	first := createIntegrationOrder(suite, kernel.NewUUID())
	second := createIntegrationOrder(suite, kernel.NewUUID())

	err := uow.OrderRepository().Add(ctx, first)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, second)
	suite.Require().NoError(err)

	suite.Positive(first.SequenceNumber(), "Store should assign a sequence number")
	suite.Equal(first.SequenceNumber()+1, second.SequenceNumber(),
		"Sequence numbers should be assigned in order")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_FulfillmentWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	buyerID := kernel.NewUUID()
	testOrder := createIntegrationOrder(suite, buyerID)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = testOrder.TransitionTo(order.StatusPreparing)
	suite.Require().NoError(err)
	err = testOrder.TransitionTo(order.StatusReady)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	testShipment, err := shipment.NewShipment(kernel.NewUUID(), testOrder.ID(), "")
	suite.Require().NoError(err)
	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = testOrder.TransitionTo(order.StatusShipped)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusShipped, retrievedOrder.Status())
	suite.Len(retrievedOrder.Lines(), 1)

	retrievedShipment, err := newUow.ShipmentRepository().GetByOrderID(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrievedShipment.ID().IsEqual(testShipment.ID()))
	suite.Equal(shipment.StatusPending, retrievedShipment.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testProduct := createIntegrationProduct(suite, 5)
	testOrder := createIntegrationOrder(suite, kernel.NewUUID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.CatalogRepository().AddProduct(ctx, testProduct)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	_, err = uow.CatalogRepository().GetProduct(ctx, testProduct.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.CatalogRepository().GetProduct(ctx, testProduct.ID())
	suite.Require().Error(err, "Product should not exist after rollback")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	product1 := createIntegrationProduct(suite, 1)
	product2 := createIntegrationProduct(suite, 2)

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.CatalogRepository().AddProduct(ctx, product1)
	suite.Require().NoError(err)
	err = uow2.CatalogRepository().AddProduct(ctx, product2)
	suite.Require().NoError(err)

	_, err = uow1.CatalogRepository().GetProduct(ctx, product1.ID())
	suite.Require().NoError(err, "UOW1 should see product1")

	_, err = uow1.CatalogRepository().GetProduct(ctx, product2.ID())
	suite.Require().Error(err, "UOW1 should not see product2")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.CatalogRepository().GetProduct(ctx, product1.ID())
	suite.Require().NoError(err, "Product1 should persist after commit")

	_, err = newUow.CatalogRepository().GetProduct(ctx, product2.ID())
	suite.Require().Error(err, "Product2 should not persist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testProduct := createIntegrationProduct(suite, 3)

	err := uow.CatalogRepository().AddProduct(ctx, testProduct)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.CatalogRepository().GetProduct(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.True(testProduct.ID().IsEqual(retrieved.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ReceiptUniquePerOrder() {
	ctx := context.Background()
	uow := suite.factory.Create()

	buyerID := kernel.NewUUID()
	testOrder := createIntegrationOrder(suite, buyerID)

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	first := createIntegrationReceipt(suite, buyerID, testOrder.ID())
	err = uow.ReceiptRepository().Add(ctx, first)
	suite.Require().NoError(err)

	second := createIntegrationReceipt(suite, buyerID, testOrder.ID())
	err = uow.ReceiptRepository().Add(ctx, second)
	suite.Require().Error(err, "Second receipt for the same order should violate uniqueness")

	retrieved, err := uow.ReceiptRepository().GetByOrderID(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(first.ID()))

	byCode, err := uow.ReceiptRepository().GetByCode(ctx, first.Code())
	suite.Require().NoError(err)
	suite.False(byCode.IsConfirmed())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_StockFIFOOrdering() {
	ctx := context.Background()
	uow := suite.factory.Create()

	ownerID := kernel.NewUUID()
	older := createIntegrationStockEntry(suite, ownerID, "flour 1kg", 3,
		time.Now().Add(-2*time.Hour))
	newer := createIntegrationStockEntry(suite, ownerID, "flour 1kg", 5,
		time.Now().Add(-time.Hour))

	// Insert out of order to prove the read side sorts by creation time.
	err := uow.StockRepository().AddEntry(ctx, newer)
	suite.Require().NoError(err)
	err = uow.StockRepository().AddEntry(ctx, older)
	suite.Require().NoError(err)

	entries, err := uow.StockRepository().GetEntriesByOwnerAndName(ctx, ownerID, "flour 1kg")
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.True(entries[0].ID().IsEqual(older.ID()), "Oldest batch should come first")
	suite.Equal(3, entries[0].Quantity())
	suite.Equal(5, entries[1].Quantity())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ExhaustedBatchRemoval() {
	ctx := context.Background()
	uow := suite.factory.Create()

	ownerID := kernel.NewUUID()
	batch := createIntegrationStockEntry(suite, ownerID, "sugar 1kg", 4, time.Now())

	err := uow.StockRepository().AddEntry(ctx, batch)
	suite.Require().NoError(err)

	err = uow.StockRepository().DeleteEntry(ctx, batch.ID())
	suite.Require().NoError(err)

	entries, err := uow.StockRepository().GetEntriesByOwnerAndName(ctx, ownerID, "sugar 1kg")
	suite.Require().NoError(err)
	suite.Empty(entries)
}

// createIntegrationProduct creates a valid catalog product for testing purposes.
func createIntegrationProduct(suite *UnitOfWorkIntegrationTestSuite, quantity int) *product.Product {
	unitPrice, err := kernel.NewMoney(150)
	suite.Require().NoError(err)
	p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID().String(), "flour 1kg", unitPrice, nil, "baking", "")
	suite.Require().NoError(err)
	if quantity > 0 {
		suite.Require().NoError(p.Restock(quantity))
	}
	return p
}

// createIntegrationOrder creates a valid pending order with one line.
func createIntegrationOrder(suite *UnitOfWorkIntegrationTestSuite, buyerID kernel.UUID) *order.Order {
	unitPrice, err := kernel.NewMoney(200)
	suite.Require().NoError(err)
	line, err := order.NewLine(kernel.NewUUID(), nil, "flour 1kg", 2, unitPrice)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), buyerID, kernel.NewUUID(),
		order.DeliveryModeShip, "123 Main Street", 0, "", []order.Line{line})
	suite.Require().NoError(err)
	return o
}

// createIntegrationReceipt creates an unconfirmed receipt with one line.
func createIntegrationReceipt(
	suite *UnitOfWorkIntegrationTestSuite, buyerID, orderID kernel.UUID,
) *receipt.Receipt {
	unitPrice, err := kernel.NewMoney(100)
	suite.Require().NoError(err)
	line, err := receipt.NewSnapshotLine(kernel.NewUUID(), nil, "flour 1kg", 2, unitPrice, "", "", "")
	suite.Require().NoError(err)
	r, err := receipt.NewReceipt(kernel.NewUUID(), receipt.GenerateCode(time.Now()),
		orderID, buyerID, kernel.NewUUID(), []receipt.SnapshotLine{line}, time.Now())
	suite.Require().NoError(err)
	return r
}

// createIntegrationStockEntry creates a stock batch with a fixed creation time.
func createIntegrationStockEntry(
	suite *UnitOfWorkIntegrationTestSuite, ownerID kernel.UUID, name string, quantity int, createdAt time.Time,
) *stock.Entry {
	e, err := stock.NewEntry(kernel.NewUUID(), ownerID, name, quantity,
		nil, "", "", "", nil, createdAt)
	suite.Require().NoError(err)
	return e
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
