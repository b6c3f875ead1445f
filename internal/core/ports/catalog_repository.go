package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
)

// CatalogRepository defines the persistence contract for the catalog ledger:
// products, linkage edges, and alternate-barcode aliases. All lookups are
// scoped to active rows unless stated otherwise.
type CatalogRepository interface {
	// AddProduct persists a new product.
	AddProduct(ctx context.Context, aggregate *product.Product) error

	// UpdateProduct persists changes to an existing product.
	UpdateProduct(ctx context.Context, aggregate *product.Product) error

	// GetProduct retrieves a product by id, active or not.
	GetProduct(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetActiveProductByBarcode retrieves the active product whose primary
	// barcode matches code case-insensitively within the depot.
	GetActiveProductByBarcode(ctx context.Context, depotID kernel.UUID, code string) (*product.Product, error)

	// AddLinkage persists a new linkage edge.
	AddLinkage(ctx context.Context, aggregate *product.Linkage) error

	// UpdateLinkage persists changes to an existing linkage edge.
	UpdateLinkage(ctx context.Context, aggregate *product.Linkage) error

	// GetActiveLinkageBetween retrieves the active edge joining the unordered
	// pair, if one exists.
	GetActiveLinkageBetween(ctx context.Context, a, b kernel.UUID) (*product.Linkage, error)

	// GetActiveLinkagesFor retrieves all active edges touching the product.
	GetActiveLinkagesFor(ctx context.Context, productID kernel.UUID) ([]*product.Linkage, error)

	// AddAlternateBarcode persists a new alias.
	AddAlternateBarcode(ctx context.Context, aggregate *product.AlternateBarcode) error

	// UpdateAlternateBarcode persists changes to an existing alias.
	UpdateAlternateBarcode(ctx context.Context, aggregate *product.AlternateBarcode) error

	// GetAlternateBarcode retrieves an alias by id.
	GetAlternateBarcode(ctx context.Context, id kernel.UUID) (*product.AlternateBarcode, error)

	// GetActiveAlternateBarcodeByCode retrieves the active alias matching
	// code case-insensitively within the depot.
	GetActiveAlternateBarcodeByCode(ctx context.Context, depotID kernel.UUID, code string) (*product.AlternateBarcode, error)
}
