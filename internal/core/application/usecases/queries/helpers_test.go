package queries_test

import (
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/catalogrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/stockrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/stock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupQueryDB opens an in-memory database with the full schema. Each test
// gets its own database; cache=shared keeps it alive across connections
// within the test.
func setupQueryDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	return db
}

func seedProduct(
	t *testing.T, db *gorm.DB,
	depotID kernel.UUID, barcode, name string, quantity int, active bool,
) kernel.UUID {
	t.Helper()

	id := kernel.NewUUID()
	require.NoError(t, db.Create(&catalogrepo.ProductDTO{
		ID:             id.Bytes(),
		DepotID:        depotID.Bytes(),
		Barcode:        barcode,
		Name:           name,
		UnitPriceCents: 250,
		Category:       "baking",
		ImageURL:       "https://img.example/" + barcode,
		QuantityOnHand: quantity,
		Active:         active,
	}).Error)

	return id
}

func seedLinkage(t *testing.T, db *gorm.DB, depotID, productA, productB kernel.UUID, active bool) {
	t.Helper()

	require.NoError(t, db.Create(&catalogrepo.LinkageDTO{
		ID:       kernel.NewUUID().Bytes(),
		ProductA: productA.Bytes(),
		ProductB: productB.Bytes(),
		DepotID:  depotID.Bytes(),
		Active:   active,
	}).Error)
}

func seedAlternateBarcode(t *testing.T, db *gorm.DB, depotID, productID kernel.UUID, code string, active bool) {
	t.Helper()

	require.NoError(t, db.Create(&catalogrepo.AlternateBarcodeDTO{
		ID:        kernel.NewUUID().Bytes(),
		ProductID: productID.Bytes(),
		DepotID:   depotID.Bytes(),
		Code:      code,
		Active:    active,
	}).Error)
}

type seedLine struct {
	name           string
	quantity       int
	unitPriceCents int64
}

func seedOrder(
	t *testing.T, db *gorm.DB,
	sequenceNumber int64, buyerID kernel.UUID, status order.Status,
	estimatedDeliveryAt *time.Time, lines []seedLine,
) kernel.UUID {
	t.Helper()

	id := kernel.NewUUID()
	require.NoError(t, db.Create(&orderrepo.OrderDTO{
		ID:                  id.Bytes(),
		SequenceNumber:      sequenceNumber,
		BuyerID:             buyerID.Bytes(),
		DepotID:             kernel.NewUUID().Bytes(),
		DeliveryMode:        int(order.DeliveryModeShip),
		Address:             "123 Main Street",
		Status:              int(status),
		Priority:            1,
		EstimatedDeliveryAt: estimatedDeliveryAt,
	}).Error)

	for _, line := range lines {
		require.NoError(t, db.Create(&orderrepo.OrderLineDTO{
			ID:             kernel.NewUUID().Bytes(),
			OrderID:        id.Bytes(),
			Name:           line.name,
			Quantity:       line.quantity,
			UnitPriceCents: line.unitPriceCents,
		}).Error)
	}

	return id
}

func seedStockEntry(
	t *testing.T, db *gorm.DB,
	ownerID kernel.UUID, name string, quantity int,
	unitPriceCents *int64, createdAt time.Time,
) kernel.UUID {
	t.Helper()

	id := kernel.NewUUID()
	require.NoError(t, db.Create(&stockrepo.StockEntryDTO{
		ID:             id.Bytes(),
		OwnerID:        ownerID.Bytes(),
		Name:           name,
		Quantity:       quantity,
		UnitPriceCents: unitPriceCents,
		Barcode:        "4006381333931",
		Category:       "baking",
		CreatedAt:      createdAt,
	}).Error)

	return id
}

func seedLedgerEntry(
	t *testing.T, db *gorm.DB,
	ownerID kernel.UUID, kind stock.LedgerKind, description string,
	amountCents int64, relatedOrderID *kernel.UUID, createdAt time.Time,
) kernel.UUID {
	t.Helper()

	var related *uuid.UUID
	if relatedOrderID != nil {
		raw := relatedOrderID.Bytes()
		related = &raw
	}

	id := kernel.NewUUID()
	require.NoError(t, db.Create(&stockrepo.LedgerEntryDTO{
		ID:             id.Bytes(),
		OwnerID:        ownerID.Bytes(),
		Kind:           int(kind),
		Description:    description,
		AmountCents:    amountCents,
		Category:       "baking",
		RelatedOrderID: related,
		CreatedAt:      createdAt,
	}).Error)

	return id
}
