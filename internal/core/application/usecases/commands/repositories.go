// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and an optional post-commit notification.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler declares the narrowest combination of repositories it needs;
// the abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CatalogRepoFactory provides access to the catalog repository within a transaction.
	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// ReceiptRepoFactory provides access to the receipt repository within a transaction.
	ReceiptRepoFactory interface {
		ReceiptRepository() ports.ReceiptRepository
	}

	// StockRepoFactory provides access to the stock repository within a transaction.
	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	// CatalogUoW manages transactions for catalog-only operations
	// (linking, merging, alias removal).
	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// CatalogStockUoW manages transactions touching the catalog and the
	// financial ledger (restocks and alias credits record purchases).
	CatalogStockUoW interface {
		TxManager
		CatalogRepoFactory
		StockRepoFactory
	}

	// CatalogStockUoWFactory creates new catalog+stock unit of work instances.
	CatalogStockUoWFactory interface {
		Create() CatalogStockUoW
	}

	// OrderCatalogUoW manages transactions that move stock between an order
	// and the catalog (creation decrements, cancellation restores).
	OrderCatalogUoW interface {
		TxManager
		OrderRepoFactory
		CatalogRepoFactory
	}

	// OrderCatalogUoWFactory creates new order+catalog unit of work instances.
	OrderCatalogUoWFactory interface {
		Create() OrderCatalogUoW
	}

	// ShipmentUoW manages transactions for shipment-only operations.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// ShipmentOrderUoW manages transactions spanning a shipment and its order
	// (creation flips the order to shipped, completion delivers both).
	ShipmentOrderUoW interface {
		TxManager
		ShipmentRepoFactory
		OrderRepoFactory
	}

	// ShipmentOrderUoWFactory creates new shipment+order unit of work instances.
	ShipmentOrderUoWFactory interface {
		Create() ShipmentOrderUoW
	}

	// ReceiptUoW manages transactions for receipt creation, which also reads
	// the order and resolves catalog metadata for the line snapshot.
	ReceiptUoW interface {
		TxManager
		ReceiptRepoFactory
		OrderRepoFactory
		CatalogRepoFactory
	}

	// ReceiptUoWFactory creates new receipt unit of work instances.
	ReceiptUoWFactory interface {
		Create() ReceiptUoW
	}

	// ConfirmReceiptUoW manages the confirmation transaction, which flips the
	// receipt, delivers the order, and credits the buyer's stock atomically.
	ConfirmReceiptUoW interface {
		TxManager
		ReceiptRepoFactory
		OrderRepoFactory
		StockRepoFactory
	}

	// ConfirmReceiptUoWFactory creates new confirmation unit of work instances.
	ConfirmReceiptUoWFactory interface {
		Create() ConfirmReceiptUoW
	}

	// StockUoW manages transactions for personal stock and ledger operations.
	StockUoW interface {
		TxManager
		StockRepoFactory
	}

	// StockUoWFactory creates new stock unit of work instances.
	StockUoWFactory interface {
		Create() StockUoW
	}
)
