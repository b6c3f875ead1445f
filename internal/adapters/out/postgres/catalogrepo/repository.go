package catalogrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB, tracker aggregateTracker) *GormCatalogRepository {
	return &GormCatalogRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddProduct saves a new product to the database.
func (r *GormCatalogRepository) AddProduct(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateProduct saves an existing product to the database. All columns are
// written so zero quantities and deactivation persist.
func (r *GormCatalogRepository) UpdateProduct(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetProduct retrieves a product by ID, active or not.
func (r *GormCatalogRepository) GetProduct(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return productToDomain(dto)
}

// GetActiveProductByBarcode retrieves the active product whose primary barcode
// matches the code case-insensitively within the depot.
func (r *GormCatalogRepository) GetActiveProductByBarcode(
	ctx context.Context, depotID kernel.UUID, code string,
) (*product.Product, error) {
	if err := depotID.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	err := r.db.WithContext(ctx).
		First(&dto, "depot_id = ? AND active = ? AND LOWER(barcode) = LOWER(?)", depotID.Bytes(), true, code).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", code)
		}
		return nil, err
	}

	return productToDomain(dto)
}

// AddLinkage saves a new linkage edge to the database.
func (r *GormCatalogRepository) AddLinkage(ctx context.Context, aggregate *product.Linkage) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := linkageFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateLinkage saves an existing linkage edge to the database.
func (r *GormCatalogRepository) UpdateLinkage(ctx context.Context, aggregate *product.Linkage) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := linkageFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&LinkageDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetActiveLinkageBetween retrieves the active edge joining the unordered
// pair, if one exists.
func (r *GormCatalogRepository) GetActiveLinkageBetween(
	ctx context.Context, a, b kernel.UUID,
) (*product.Linkage, error) {
	if err := errors.Join(a.Validate(), b.Validate()); err != nil {
		return nil, err
	}

	var dto LinkageDTO
	err := r.db.WithContext(ctx).
		First(&dto,
			"active = ? AND ((product_a = ? AND product_b = ?) OR (product_a = ? AND product_b = ?))",
			true, a.Bytes(), b.Bytes(), b.Bytes(), a.Bytes()).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("linkage", a.String()+"/"+b.String())
		}
		return nil, err
	}

	return linkageToDomain(dto)
}

// GetActiveLinkagesFor retrieves all active edges touching the product.
func (r *GormCatalogRepository) GetActiveLinkagesFor(
	ctx context.Context, productID kernel.UUID,
) ([]*product.Linkage, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LinkageDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "active = ? AND (product_a = ? OR product_b = ?)",
			true, productID.Bytes(), productID.Bytes()).
		Error
	if err != nil {
		return nil, err
	}

	linkages := make([]*product.Linkage, 0, len(dtos))
	for _, dto := range dtos {
		l, err := linkageToDomain(dto)
		if err != nil {
			return nil, err
		}
		linkages = append(linkages, l)
	}

	return linkages, nil
}

// AddAlternateBarcode saves a new alias to the database.
func (r *GormCatalogRepository) AddAlternateBarcode(ctx context.Context, aggregate *product.AlternateBarcode) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := aliasFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateAlternateBarcode saves an existing alias to the database.
func (r *GormCatalogRepository) UpdateAlternateBarcode(ctx context.Context, aggregate *product.AlternateBarcode) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := aliasFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AlternateBarcodeDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAlternateBarcode retrieves an alias by ID.
func (r *GormCatalogRepository) GetAlternateBarcode(
	ctx context.Context, id kernel.UUID,
) (*product.AlternateBarcode, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AlternateBarcodeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("alternate barcode", id.String())
		}
		return nil, err
	}

	return aliasToDomain(dto)
}

// GetActiveAlternateBarcodeByCode retrieves the active alias matching the code
// case-insensitively within the depot.
func (r *GormCatalogRepository) GetActiveAlternateBarcodeByCode(
	ctx context.Context, depotID kernel.UUID, code string,
) (*product.AlternateBarcode, error) {
	if err := depotID.Validate(); err != nil {
		return nil, err
	}

	var dto AlternateBarcodeDTO
	err := r.db.WithContext(ctx).
		First(&dto, "depot_id = ? AND active = ? AND LOWER(code) = LOWER(?)", depotID.Bytes(), true, code).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("alternate barcode", code)
		}
		return nil, err
	}

	return aliasToDomain(dto)
}
