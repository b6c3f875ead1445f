package postgres

import (
	"fulfillment/internal/adapters/out/postgres/catalogrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/receiptrepo"
	"fulfillment/internal/adapters/out/postgres/shipmentrepo"
	"fulfillment/internal/adapters/out/postgres/stockrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persisted aggregate.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalogrepo.ProductDTO{},
		&catalogrepo.LinkageDTO{},
		&catalogrepo.AlternateBarcodeDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&shipmentrepo.ShipmentDTO{},
		&receiptrepo.ReceiptDTO{},
		&receiptrepo.ReceiptLineDTO{},
		&stockrepo.StockEntryDTO{},
		&stockrepo.LedgerEntryDTO{},
	)
}
