package receiptrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/receipt"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReceiptRepository implements ReceiptRepository using GORM.
type GormReceiptRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReceiptRepository creates a new GORM receipt repository.
func NewGormReceiptRepository(db *gorm.DB, tracker aggregateTracker) *GormReceiptRepository {
	return &GormReceiptRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new receipt and its snapshot lines.
func (r *GormReceiptRepository) Add(ctx context.Context, aggregate *receipt.Receipt) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, lineDTOs := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&lineDTOs).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changes to an existing receipt. The snapshot lines are
// immutable and deliberately never rewritten; only the receipt row changes.
func (r *GormReceiptRepository) Update(ctx context.Context, aggregate *receipt.Receipt) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, _ := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ReceiptDTO{}).
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

// Get retrieves a receipt by ID.
func (r *GormReceiptRepository) Get(ctx context.Context, id kernel.UUID) (*receipt.Receipt, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReceiptDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("receipt", id.String())
		}
		return nil, err
	}

	return r.hydrate(ctx, dto)
}

// GetByCode retrieves a receipt by its confirmation code.
func (r *GormReceiptRepository) GetByCode(ctx context.Context, code string) (*receipt.Receipt, error) {
	var dto ReceiptDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("receipt", code)
		}
		return nil, err
	}

	return r.hydrate(ctx, dto)
}

// GetByOrderID retrieves the receipt for an order.
func (r *GormReceiptRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*receipt.Receipt, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto ReceiptDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("receipt for order", orderID.String())
		}
		return nil, err
	}

	return r.hydrate(ctx, dto)
}

func (r *GormReceiptRepository) hydrate(ctx context.Context, dto ReceiptDTO) (*receipt.Receipt, error) {
	var lineDTOs []ReceiptLineDTO
	if err := r.db.WithContext(ctx).Find(&lineDTOs, "receipt_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, lineDTOs)
}
