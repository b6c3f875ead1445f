package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its lines, assigning the next sequence number
// within the surrounding transaction and feeding it back into the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if aggregate.SequenceNumber() == 0 {
		next, err := r.nextSequenceNumber(ctx)
		if err != nil {
			return err
		}
		if err = aggregate.SetSequenceNumber(next); err != nil {
			return err
		}
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

// Update saves an existing order, replacing its full line set. Lines are
// deleted and recreated rather than merged.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, lineDTOs := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).Delete(&OrderLineDTO{}, "order_id = ?", dto.ID).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&lineDTOs).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its lines by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	lineDTOs, err := r.linesFor(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, lineDTOs)
}

// GetAllUndelivered retrieves orders that are neither delivered nor cancelled,
// newest first.
func (r *GormOrderRepository) GetAllUndelivered(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("sequence_number DESC").
		Find(&dtos, "status NOT IN ?", []int{int(order.StatusDelivered), int(order.StatusCancelled)}).
		Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		lineDTOs, linesErr := r.linesFor(ctx, dto.ID)
		if linesErr != nil {
			return nil, linesErr
		}

		o, toErr := toDomain(dto, lineDTOs)
		if toErr != nil {
			return nil, toErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) linesFor(ctx context.Context, orderID any) ([]OrderLineDTO, error) {
	var lineDTOs []OrderLineDTO
	if err := r.db.WithContext(ctx).Find(&lineDTOs, "order_id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return lineDTOs, nil
}

func (r *GormOrderRepository) nextSequenceNumber(ctx context.Context) (int64, error) {
	var max int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("COALESCE(MAX(sequence_number), 0)").
		Scan(&max).
		Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}
