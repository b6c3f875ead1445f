package stockrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStockRepository implements StockRepository using GORM.
type GormStockRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStockRepository creates a new GORM stock repository.
func NewGormStockRepository(db *gorm.DB, tracker aggregateTracker) *GormStockRepository {
	return &GormStockRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddEntry saves a new stock batch to the database.
func (r *GormStockRepository) AddEntry(ctx context.Context, aggregate *stock.Entry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := entryFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateEntry saves a changed batch quantity to the database.
func (r *GormStockRepository) UpdateEntry(ctx context.Context, aggregate *stock.Entry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := entryFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&StockEntryDTO{}).
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

// DeleteEntry removes an exhausted batch. Batches consumed down to zero are
// removed rather than kept empty.
func (r *GormStockRepository) DeleteEntry(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&StockEntryDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("stock entry", id.String())
	}

	return nil
}

// GetEntriesByOwnerAndName retrieves all batches for the (owner, name) group
// ordered by creation time ascending, which is the FIFO consumption order.
// The name matches case-insensitively, consistent with barcode resolution.
func (r *GormStockRepository) GetEntriesByOwnerAndName(
	ctx context.Context, ownerID kernel.UUID, name string,
) ([]*stock.Entry, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StockEntryDTO
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&dtos, "owner_id = ? AND LOWER(name) = LOWER(?)", ownerID.Bytes(), name).
		Error
	if err != nil {
		return nil, err
	}

	entries := make([]*stock.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, toErr := entryToDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// AddLedgerEntry appends a financial audit row. There is no update or delete
// counterpart; the ledger is append-only.
func (r *GormStockRepository) AddLedgerEntry(ctx context.Context, aggregate *stock.LedgerEntry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := ledgerFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
