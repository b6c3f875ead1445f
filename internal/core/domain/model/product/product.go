package product

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct factory method.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is a per-depot catalog ledger entry. It owns a quantity on hand
// and a primary barcode, and is the unit the linkage and consolidation
// operations work over.
//
// Product maintains these invariants:
//   - quantity on hand never goes below zero
//   - barcode and name are never empty
//   - a deactivated product keeps its data for historical lookups
type Product struct {
	id             kernel.UUID
	depotID        kernel.UUID
	barcode        string
	name           string
	unitPrice      kernel.Money
	unitCost       *kernel.Money
	category       string
	imageURL       string
	quantityOnHand int
	active         bool

	isConstructed bool
}

// NewProduct creates a catalog entry with zero stock, active.
// The unit cost is optional; when absent, restocks produce no purchase
// ledger entry because no amount can be computed.
func NewProduct(
	id kernel.UUID,
	depotID kernel.UUID,
	barcode string,
	name string,
	unitPrice kernel.Money,
	unitCost *kernel.Money,
	category string,
	imageURL string,
) (*Product, error) {
	p := &Product{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setDepotID(depotID),
		p.setBarcode(barcode),
		p.setName(name),
	); err != nil {
		return nil, err
	}

	p.unitPrice = unitPrice
	p.unitCost = unitCost
	p.category = category
	p.imageURL = imageURL
	return p, nil
}

// RestoreProduct rehydrates a product from persistence.
func RestoreProduct(
	id kernel.UUID,
	depotID kernel.UUID,
	barcode string,
	name string,
	unitPrice kernel.Money,
	unitCost *kernel.Money,
	category string,
	imageURL string,
	quantityOnHand int,
	active bool,
) (*Product, error) {
	p, err := NewProduct(id, depotID, barcode, name, unitPrice, unitCost, category, imageURL)
	if err != nil {
		return nil, err
	}
	if quantityOnHand < 0 {
		return nil, errs.NewValueIsInvalidError("quantityOnHand")
	}

	p.quantityOnHand = quantityOnHand
	p.active = active
	return p, nil
}

// Validate ensures the Product was constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID { return p.id }

// DepotID returns the owning depot's identifier.
func (p *Product) DepotID() kernel.UUID { return p.depotID }

// Barcode returns the primary barcode.
func (p *Product) Barcode() string { return p.barcode }

// Name returns the product name.
func (p *Product) Name() string { return p.name }

// UnitPrice returns the selling price per unit.
func (p *Product) UnitPrice() kernel.Money { return p.unitPrice }

// UnitCost returns the purchase cost per unit, if known.
func (p *Product) UnitCost() *kernel.Money { return p.unitCost }

// Category returns the optional catalog category.
func (p *Product) Category() string { return p.category }

// ImageURL returns the optional product image.
func (p *Product) ImageURL() string { return p.imageURL }

// QuantityOnHand returns the current stock level.
func (p *Product) QuantityOnHand() int { return p.quantityOnHand }

// IsActive reports whether the product is live in the catalog.
func (p *Product) IsActive() bool { return p.active }

// HasBarcode reports whether code matches the primary barcode,
// case-insensitively.
func (p *Product) HasBarcode(code string) bool {
	return strings.EqualFold(p.barcode, code)
}

// Restock credits quantity onto the product.
func (p *Product) Restock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("restock quantity must be positive")
	}
	p.quantityOnHand += quantity
	return nil
}

// Decrement removes quantity from stock. Fails without mutating when the
// result would be negative; the quantity-on-hand invariant holds after
// every operation.
func (p *Product) Decrement(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("decrement quantity must be positive")
	}
	if quantity > p.quantityOnHand {
		return errs.NewInsufficientStockError(p.name, quantity, p.quantityOnHand)
	}
	p.quantityOnHand -= quantity
	return nil
}

// SetQuantityOnHand overwrites the stock level. Used by stock merges, which
// recompute the total from linked products.
func (p *Product) SetQuantityOnHand(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("quantityOnHand")
	}
	p.quantityOnHand = quantity
	return nil
}

// Deactivate soft-deletes the product.
func (p *Product) Deactivate() {
	p.active = false
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setDepotID(depotID kernel.UUID) error {
	if err := depotID.Validate(); err != nil {
		return err
	}
	p.depotID = depotID
	return nil
}

func (p *Product) setBarcode(barcode string) error {
	if strings.TrimSpace(barcode) == "" {
		return errs.NewValueIsRequiredError("barcode")
	}
	p.barcode = barcode
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}
