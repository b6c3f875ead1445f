package order

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrLineIsNotConstructed is returned when a Line instance was not
	// created through the NewLine factory method.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")
)

// Line is an order line item: a snapshot of the product name and unit price
// at order time, independent of later catalog edits. The product reference is
// optional so ad-hoc (off-catalog) lines can be ordered too.
type Line struct {
	id        kernel.UUID
	productID *kernel.UUID
	name      string
	quantity  int
	unitPrice kernel.Money

	isConstructed bool
}

// NewLine creates a validated order line.
func NewLine(
	id kernel.UUID,
	productID *kernel.UUID,
	name string,
	quantity int,
	unitPrice kernel.Money,
) (Line, error) {
	if err := id.Validate(); err != nil {
		return Line{}, err
	}
	if productID != nil {
		if err := productID.Validate(); err != nil {
			return Line{}, err
		}
	}
	if strings.TrimSpace(name) == "" {
		return Line{}, errs.NewValueIsRequiredError("line name")
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidError("line quantity must be positive")
	}

	return Line{
		id:            id,
		productID:     productID,
		name:          name,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// Validate ensures the Line was constructed through NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line identifier.
func (l Line) ID() kernel.UUID { return l.id }

// ProductID returns the referenced catalog product, if any.
func (l Line) ProductID() *kernel.UUID { return l.productID }

// Name returns the name snapshot taken at order time.
func (l Line) Name() string { return l.name }

// Quantity returns the ordered quantity.
func (l Line) Quantity() int { return l.quantity }

// UnitPrice returns the price snapshot taken at order time.
func (l Line) UnitPrice() kernel.Money { return l.unitPrice }

// Subtotal returns quantity × unit price.
func (l Line) Subtotal() kernel.Money {
	subtotal, _ := l.unitPrice.MultiplyQuantity(l.quantity)
	return subtotal
}
