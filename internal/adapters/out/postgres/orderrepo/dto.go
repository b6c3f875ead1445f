// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations. An order row and its line rows are written
// together; line edits replace the full set.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The line items live in their own table keyed by order id. The total is not
// stored: it is recomputed from lines on rehydration, so it cannot drift.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	SequenceNumber      int64     `gorm:"uniqueIndex"`
	BuyerID             uuid.UUID `gorm:"type:uuid;index"`
	DepotID             uuid.UUID `gorm:"type:uuid;index"`
	DeliveryMode        int
	Address             string
	Status              int `gorm:"index"`
	Priority            int
	Notes               string
	EstimatedDeliveryAt *time.Time
	DeliveredAt         *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one order line row. Name and unit price are
// snapshots taken at order time.
type OrderLineDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID  `gorm:"type:uuid;index"`
	ProductID      *uuid.UUID `gorm:"type:uuid"`
	Name           string
	Quantity       int
	UnitPriceCents int64
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate to its database representation,
// returning the order row and its line rows.
func fromDomain(o *order.Order) (OrderDTO, []OrderLineDTO) {
	dto := OrderDTO{
		ID:                  o.ID().Bytes(),
		SequenceNumber:      o.SequenceNumber(),
		BuyerID:             o.BuyerID().Bytes(),
		DepotID:             o.DepotID().Bytes(),
		DeliveryMode:        int(o.DeliveryMode()),
		Address:             o.Address(),
		Status:              int(o.Status()),
		Priority:            o.Priority(),
		Notes:               o.Notes(),
		EstimatedDeliveryAt: o.EstimatedDeliveryAt(),
		DeliveredAt:         o.DeliveredAt(),
	}

	lines := o.Lines()
	lineDTOs := make([]OrderLineDTO, 0, len(lines))
	for _, line := range lines {
		var productID *uuid.UUID
		if id := line.ProductID(); id != nil {
			raw := id.Bytes()
			productID = &raw
		}

		lineDTOs = append(lineDTOs, OrderLineDTO{
			ID:             line.ID().Bytes(),
			OrderID:        o.ID().Bytes(),
			ProductID:      productID,
			Name:           line.Name(),
			Quantity:       line.Quantity(),
			UnitPriceCents: line.UnitPrice().Cents(),
		})
	}

	return dto, lineDTOs
}

// toDomain converts database rows to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO, lineDTOs []OrderLineDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}
	depotID, err := kernel.UUIDFromBytes(dto.DepotID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(lineDTOs))
	for _, lineDTO := range lineDTOs {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		dto.SequenceNumber,
		buyerID,
		depotID,
		order.DeliveryMode(dto.DeliveryMode),
		dto.Address,
		order.Status(dto.Status),
		dto.Priority,
		dto.Notes,
		dto.EstimatedDeliveryAt,
		dto.DeliveredAt,
		lines,
	)
}

func lineToDomain(dto OrderLineDTO) (order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Line{}, err
	}

	var productID *kernel.UUID
	if dto.ProductID != nil {
		pID, pErr := kernel.UUIDFromBytes((*dto.ProductID)[:])
		if pErr != nil {
			return order.Line{}, pErr
		}
		productID = &pID
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPriceCents)
	if err != nil {
		return order.Line{}, err
	}

	return order.NewLine(id, productID, dto.Name, dto.Quantity, unitPrice)
}
