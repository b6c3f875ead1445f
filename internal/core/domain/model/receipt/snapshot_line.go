package receipt

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrSnapshotLineIsNotConstructed is returned when a SnapshotLine was not
	// created through the NewSnapshotLine factory method.
	ErrSnapshotLineIsNotConstructed = errors.New(
		"SnapshotLine must be created via NewSnapshotLine constructor",
	)
)

// SnapshotLine is an immutable copy of one order line taken at receipt
// creation, enriched with the product's barcode, category, and image as they
// resolved at that instant. Later catalog edits never change what a
// confirmation credits.
type SnapshotLine struct {
	id        kernel.UUID
	productID *kernel.UUID
	name      string
	quantity  int
	unitPrice kernel.Money
	barcode   string
	category  string
	imageURL  string

	isConstructed bool
}

// NewSnapshotLine creates a validated snapshot line.
func NewSnapshotLine(
	id kernel.UUID,
	productID *kernel.UUID,
	name string,
	quantity int,
	unitPrice kernel.Money,
	barcode string,
	category string,
	imageURL string,
) (SnapshotLine, error) {
	if err := id.Validate(); err != nil {
		return SnapshotLine{}, err
	}
	if productID != nil {
		if err := productID.Validate(); err != nil {
			return SnapshotLine{}, err
		}
	}
	if strings.TrimSpace(name) == "" {
		return SnapshotLine{}, errs.NewValueIsRequiredError("snapshot line name")
	}
	if quantity <= 0 {
		return SnapshotLine{}, errs.NewValueIsInvalidError("snapshot line quantity must be positive")
	}

	return SnapshotLine{
		id:            id,
		productID:     productID,
		name:          name,
		quantity:      quantity,
		unitPrice:     unitPrice,
		barcode:       barcode,
		category:      category,
		imageURL:      imageURL,
		isConstructed: true,
	}, nil
}

// Validate ensures the line was constructed through NewSnapshotLine.
func (l SnapshotLine) Validate() error {
	if !l.isConstructed {
		return ErrSnapshotLineIsNotConstructed
	}
	return nil
}

// ID returns the snapshot line identifier.
func (l SnapshotLine) ID() kernel.UUID { return l.id }

// ProductID returns the catalog product the line resolved to, if any.
func (l SnapshotLine) ProductID() *kernel.UUID { return l.productID }

// Name returns the product name snapshot. Stock credited on confirmation is
// grouped by this name.
func (l SnapshotLine) Name() string { return l.name }

// Quantity returns the quantity to credit.
func (l SnapshotLine) Quantity() int { return l.quantity }

// UnitPrice returns the price snapshot.
func (l SnapshotLine) UnitPrice() kernel.Money { return l.unitPrice }

// Barcode returns the barcode resolved at snapshot time.
func (l SnapshotLine) Barcode() string { return l.barcode }

// Category returns the category resolved at snapshot time.
func (l SnapshotLine) Category() string { return l.category }

// ImageURL returns the image resolved at snapshot time.
func (l SnapshotLine) ImageURL() string { return l.imageURL }

// Subtotal returns quantity × unit price.
func (l SnapshotLine) Subtotal() kernel.Money {
	subtotal, _ := l.unitPrice.MultiplyQuantity(l.quantity)
	return subtotal
}
