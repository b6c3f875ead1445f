// Package receiptrepo provides data transfer objects and mapping functions
// for delivery-receipt persistence. The unique indexes on code and order id
// are what make receipt creation idempotent and confirmation serializable
// under concurrent attempts.
package receiptrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/receipt"

	"github.com/google/uuid"
)

// ReceiptDTO represents the database structure for persisting receipts.
// The line snapshot lives in its own table keyed by receipt id and is never
// updated after creation.
type ReceiptDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code        string    `gorm:"uniqueIndex"`
	OrderID     uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	BuyerID     uuid.UUID `gorm:"type:uuid;index"`
	DepotID     uuid.UUID `gorm:"type:uuid;index"`
	Confirmed   bool
	ConfirmedAt *time.Time
	CreatedAt   time.Time
}

// TableName specifies the database table name for receipt entities.
func (ReceiptDTO) TableName() string {
	return "receipts"
}

// ReceiptLineDTO represents one immutable snapshot line row.
type ReceiptLineDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ReceiptID      uuid.UUID  `gorm:"type:uuid;index"`
	ProductID      *uuid.UUID `gorm:"type:uuid"`
	Name           string
	Quantity       int
	UnitPriceCents int64
	Barcode        string
	Category       string
	ImageURL       string
}

// TableName specifies the database table name for receipt line entities.
func (ReceiptLineDTO) TableName() string {
	return "receipt_lines"
}

// fromDomain converts a receipt aggregate to its database representation,
// returning the receipt row and its snapshot line rows.
func fromDomain(r *receipt.Receipt) (ReceiptDTO, []ReceiptLineDTO) {
	dto := ReceiptDTO{
		ID:          r.ID().Bytes(),
		Code:        r.Code(),
		OrderID:     r.OrderID().Bytes(),
		BuyerID:     r.BuyerID().Bytes(),
		DepotID:     r.DepotID().Bytes(),
		Confirmed:   r.IsConfirmed(),
		ConfirmedAt: r.ConfirmedAt(),
		CreatedAt:   r.CreatedAt(),
	}

	lines := r.Lines()
	lineDTOs := make([]ReceiptLineDTO, 0, len(lines))
	for _, line := range lines {
		var productID *uuid.UUID
		if id := line.ProductID(); id != nil {
			raw := id.Bytes()
			productID = &raw
		}

		lineDTOs = append(lineDTOs, ReceiptLineDTO{
			ID:             line.ID().Bytes(),
			ReceiptID:      r.ID().Bytes(),
			ProductID:      productID,
			Name:           line.Name(),
			Quantity:       line.Quantity(),
			UnitPriceCents: line.UnitPrice().Cents(),
			Barcode:        line.Barcode(),
			Category:       line.Category(),
			ImageURL:       line.ImageURL(),
		})
	}

	return dto, lineDTOs
}

// toDomain converts database rows to a receipt aggregate using RestoreReceipt.
func toDomain(dto ReceiptDTO, lineDTOs []ReceiptLineDTO) (*receipt.Receipt, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
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

	lines := make([]receipt.SnapshotLine, 0, len(lineDTOs))
	for _, lineDTO := range lineDTOs {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return receipt.RestoreReceipt(
		id,
		dto.Code,
		orderID,
		buyerID,
		depotID,
		lines,
		dto.Confirmed,
		dto.ConfirmedAt,
		dto.CreatedAt,
	)
}

func lineToDomain(dto ReceiptLineDTO) (receipt.SnapshotLine, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return receipt.SnapshotLine{}, err
	}

	var productID *kernel.UUID
	if dto.ProductID != nil {
		pID, pErr := kernel.UUIDFromBytes((*dto.ProductID)[:])
		if pErr != nil {
			return receipt.SnapshotLine{}, pErr
		}
		productID = &pID
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPriceCents)
	if err != nil {
		return receipt.SnapshotLine{}, err
	}

	return receipt.NewSnapshotLine(
		id, productID, dto.Name, dto.Quantity, unitPrice,
		dto.Barcode, dto.Category, dto.ImageURL,
	)
}
