// Package catalogrepo provides data transfer objects and mapping functions for
// catalog persistence: products, linkage edges, and alternate-barcode aliases.
// This package implements the repository pattern for the catalog domain,
// handling the conversion between domain entities and database representations.
package catalogrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting catalog products.
// Monetary amounts are stored in minor units (cents).
type ProductDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	DepotID        uuid.UUID `gorm:"type:uuid;index"`
	Barcode        string    `gorm:"index"`
	Name           string
	UnitPriceCents int64
	UnitCostCents  *int64
	Category       string
	ImageURL       string
	QuantityOnHand int
	Active         bool `gorm:"index"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// LinkageDTO represents the database structure for persisting linkage edges.
// The unordered-pair uniqueness of active edges is rechecked by the linking
// operation; the table itself stores the pair as given.
type LinkageDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductA uuid.UUID `gorm:"type:uuid;index"`
	ProductB uuid.UUID `gorm:"type:uuid;index"`
	DepotID  uuid.UUID `gorm:"type:uuid;index"`
	Active   bool
}

// TableName specifies the database table name for linkage entities.
func (LinkageDTO) TableName() string {
	return "product_linkages"
}

// AlternateBarcodeDTO represents the database structure for persisting
// alternate-barcode aliases.
type AlternateBarcodeDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;index"`
	DepotID   uuid.UUID `gorm:"type:uuid;index"`
	Code      string    `gorm:"index"`
	Active    bool
}

// TableName specifies the database table name for alias entities.
func (AlternateBarcodeDTO) TableName() string {
	return "alternate_barcodes"
}

func productFromDomain(p *product.Product) ProductDTO {
	var unitCost *int64
	if c := p.UnitCost(); c != nil {
		cents := c.Cents()
		unitCost = &cents
	}

	return ProductDTO{
		ID:             p.ID().Bytes(),
		DepotID:        p.DepotID().Bytes(),
		Barcode:        p.Barcode(),
		Name:           p.Name(),
		UnitPriceCents: p.UnitPrice().Cents(),
		UnitCostCents:  unitCost,
		Category:       p.Category(),
		ImageURL:       p.ImageURL(),
		QuantityOnHand: p.QuantityOnHand(),
		Active:         p.IsActive(),
	}
}

func productToDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	depotID, err := kernel.UUIDFromBytes(dto.DepotID[:])
	if err != nil {
		return nil, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPriceCents)
	if err != nil {
		return nil, err
	}

	var unitCost *kernel.Money
	if dto.UnitCostCents != nil {
		cost, costErr := kernel.NewMoney(*dto.UnitCostCents)
		if costErr != nil {
			return nil, costErr
		}
		unitCost = &cost
	}

	return product.RestoreProduct(
		id, depotID, dto.Barcode, dto.Name,
		unitPrice, unitCost, dto.Category, dto.ImageURL,
		dto.QuantityOnHand, dto.Active,
	)
}

func linkageFromDomain(l *product.Linkage) LinkageDTO {
	return LinkageDTO{
		ID:       l.ID().Bytes(),
		ProductA: l.ProductA().Bytes(),
		ProductB: l.ProductB().Bytes(),
		DepotID:  l.DepotID().Bytes(),
		Active:   l.IsActive(),
	}
}

func linkageToDomain(dto LinkageDTO) (*product.Linkage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	depotID, err := kernel.UUIDFromBytes(dto.DepotID[:])
	if err != nil {
		return nil, err
	}
	productA, err := kernel.UUIDFromBytes(dto.ProductA[:])
	if err != nil {
		return nil, err
	}
	productB, err := kernel.UUIDFromBytes(dto.ProductB[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreLinkage(id, depotID, productA, productB, dto.Active)
}

func aliasFromDomain(a *product.AlternateBarcode) AlternateBarcodeDTO {
	return AlternateBarcodeDTO{
		ID:        a.ID().Bytes(),
		ProductID: a.ProductID().Bytes(),
		DepotID:   a.DepotID().Bytes(),
		Code:      a.Code(),
		Active:    a.IsActive(),
	}
}

func aliasToDomain(dto AlternateBarcodeDTO) (*product.AlternateBarcode, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	depotID, err := kernel.UUIDFromBytes(dto.DepotID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreAlternateBarcode(id, productID, depotID, dto.Code, dto.Active)
}
