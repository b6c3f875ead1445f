// Package stockrepo provides data transfer objects and mapping functions for
// personal stock batches and the append-only financial ledger.
package stockrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"

	"github.com/google/uuid"
)

// StockEntryDTO represents one stock batch row. Batches are looked up by
// (owner, name); the composite index serves the FIFO walk.
type StockEntryDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID         uuid.UUID `gorm:"type:uuid;index:idx_stock_owner_name"`
	Name            string    `gorm:"index:idx_stock_owner_name"`
	Quantity        int
	UnitPriceCents  *int64
	Barcode         string
	Category        string
	ImageURL        string
	SourceReceiptID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time
}

// TableName specifies the database table name for stock batch entities.
func (StockEntryDTO) TableName() string {
	return "personal_stock_entries"
}

// LedgerEntryDTO represents one row of the financial audit trail.
// Rows are inserted and read, never updated or deleted.
type LedgerEntryDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID        uuid.UUID `gorm:"type:uuid;index"`
	Kind           int
	Description    string
	AmountCents    int64
	Category       string
	RelatedOrderID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time  `gorm:"index"`
}

// TableName specifies the database table name for ledger entities.
func (LedgerEntryDTO) TableName() string {
	return "ledger_entries"
}

func entryFromDomain(e *stock.Entry) StockEntryDTO {
	var unitPrice *int64
	if p := e.UnitPrice(); p != nil {
		cents := p.Cents()
		unitPrice = &cents
	}

	var sourceReceiptID *uuid.UUID
	if id := e.SourceReceiptID(); id != nil {
		raw := id.Bytes()
		sourceReceiptID = &raw
	}

	return StockEntryDTO{
		ID:              e.ID().Bytes(),
		OwnerID:         e.OwnerID().Bytes(),
		Name:            e.Name(),
		Quantity:        e.Quantity(),
		UnitPriceCents:  unitPrice,
		Barcode:         e.Barcode(),
		Category:        e.Category(),
		ImageURL:        e.ImageURL(),
		SourceReceiptID: sourceReceiptID,
		CreatedAt:       e.CreatedAt(),
	}
}

func entryToDomain(dto StockEntryDTO) (*stock.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	var unitPrice *kernel.Money
	if dto.UnitPriceCents != nil {
		price, priceErr := kernel.NewMoney(*dto.UnitPriceCents)
		if priceErr != nil {
			return nil, priceErr
		}
		unitPrice = &price
	}

	var sourceReceiptID *kernel.UUID
	if dto.SourceReceiptID != nil {
		rID, rErr := kernel.UUIDFromBytes((*dto.SourceReceiptID)[:])
		if rErr != nil {
			return nil, rErr
		}
		sourceReceiptID = &rID
	}

	return stock.RestoreEntry(
		id, ownerID, dto.Name, dto.Quantity, unitPrice,
		dto.Barcode, dto.Category, dto.ImageURL,
		sourceReceiptID, dto.CreatedAt,
	)
}

func ledgerFromDomain(e *stock.LedgerEntry) LedgerEntryDTO {
	var relatedOrderID *uuid.UUID
	if id := e.RelatedOrderID(); id != nil {
		raw := id.Bytes()
		relatedOrderID = &raw
	}

	return LedgerEntryDTO{
		ID:             e.ID().Bytes(),
		OwnerID:        e.OwnerID().Bytes(),
		Kind:           int(e.Kind()),
		Description:    e.Description(),
		AmountCents:    e.Amount().Cents(),
		Category:       e.Category(),
		RelatedOrderID: relatedOrderID,
		CreatedAt:      e.CreatedAt(),
	}
}
