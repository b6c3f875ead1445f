package stock

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrEntryIsNotConstructed is returned when an Entry instance was not
	// created through the NewEntry factory method.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")
)

// Entry is one batch in a party's personal stock ledger. Entries are keyed by
// owner and product name; several entries may share a name when goods arrived
// in different batches at different prices. Quantity never goes below zero,
// and an entry consumed down to zero is removed rather than kept empty.
type Entry struct {
	id              kernel.UUID
	ownerID         kernel.UUID
	name            string
	quantity        int
	unitPrice       *kernel.Money
	barcode         string
	category        string
	imageURL        string
	sourceReceiptID *kernel.UUID
	createdAt       time.Time

	isConstructed bool
}

// NewEntry creates a stock batch for an owner. Price and the catalog metadata
// are optional carry-overs from the crediting receipt line.
func NewEntry(
	id kernel.UUID,
	ownerID kernel.UUID,
	name string,
	quantity int,
	unitPrice *kernel.Money,
	barcode string,
	category string,
	imageURL string,
	sourceReceiptID *kernel.UUID,
	createdAt time.Time,
) (*Entry, error) {
	if err := errors.Join(id.Validate(), ownerID.Validate()); err != nil {
		return nil, err
	}
	if sourceReceiptID != nil {
		if err := sourceReceiptID.Validate(); err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidError("entry quantity must be positive")
	}

	return &Entry{
		id:              id,
		ownerID:         ownerID,
		name:            name,
		quantity:        quantity,
		unitPrice:       unitPrice,
		barcode:         barcode,
		category:        category,
		imageURL:        imageURL,
		sourceReceiptID: sourceReceiptID,
		createdAt:       createdAt.UTC(),
		isConstructed:   true,
	}, nil
}

// RestoreEntry rehydrates a stock batch from persistence.
func RestoreEntry(
	id kernel.UUID,
	ownerID kernel.UUID,
	name string,
	quantity int,
	unitPrice *kernel.Money,
	barcode string,
	category string,
	imageURL string,
	sourceReceiptID *kernel.UUID,
	createdAt time.Time,
) (*Entry, error) {
	return NewEntry(id, ownerID, name, quantity, unitPrice, barcode, category, imageURL, sourceReceiptID, createdAt)
}

// Validate ensures the Entry was constructed through NewEntry.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry identifier.
func (e *Entry) ID() kernel.UUID { return e.id }

// OwnerID returns the party owning the batch.
func (e *Entry) OwnerID() kernel.UUID { return e.ownerID }

// Name returns the product name the batch is grouped under.
func (e *Entry) Name() string { return e.name }

// Quantity returns the remaining quantity in the batch.
func (e *Entry) Quantity() int { return e.quantity }

// UnitPrice returns the per-unit price carried over from the source, if known.
func (e *Entry) UnitPrice() *kernel.Money { return e.unitPrice }

// Barcode returns the carried-over barcode metadata.
func (e *Entry) Barcode() string { return e.barcode }

// Category returns the carried-over category metadata.
func (e *Entry) Category() string { return e.category }

// ImageURL returns the carried-over image metadata.
func (e *Entry) ImageURL() string { return e.imageURL }

// SourceReceiptID returns the receipt that credited the batch, if any.
func (e *Entry) SourceReceiptID() *kernel.UUID { return e.sourceReceiptID }

// CreatedAt returns the batch creation time. FIFO depletion consumes batches
// in ascending order of this timestamp.
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

// Credit adds quantity to the batch.
func (e *Entry) Credit(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("credit quantity must be positive")
	}
	e.quantity += quantity
	return nil
}

// Consume removes quantity from the batch. Fails without mutating when the
// batch holds less than requested.
func (e *Entry) Consume(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("consume quantity must be positive")
	}
	if quantity > e.quantity {
		return errs.NewInsufficientStockError(e.name, quantity, e.quantity)
	}
	e.quantity -= quantity
	return nil
}

// IsExhausted reports whether the batch is empty and should be removed.
func (e *Entry) IsExhausted() bool {
	return e.quantity == 0
}
