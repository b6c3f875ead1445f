package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreditStockCommandIsNotConstructed = errors.New(
	"CreditStockCommand must be created via NewCreditStockCommand constructor",
)

// CreditStockCommand represents a manual credit onto an owner's personal
// stock, merging by product name like receipt confirmation does.
type CreditStockCommand struct { //nolint:recvcheck //using for validation
	ownerID   kernel.UUID
	name      string
	quantity  int
	unitPrice *kernel.Money
	barcode   string
	category  string
	imageURL  string

	guard guard.ConstructorGuard
}

// NewCreditStockCommand creates a command to credit personal stock. The owner
// is the authenticated caller; price and metadata are optional.
func NewCreditStockCommand(
	ownerID kernel.UUID,
	name string,
	quantity int,
	unitPrice *kernel.Money,
	barcode string,
	category string,
	imageURL string,
) (CreditStockCommand, error) {
	cmd := CreditStockCommand{
		unitPrice: unitPrice,
		barcode:   barcode,
		category:  category,
		imageURL:  imageURL,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setName(name),
		cmd.setQuantity(quantity),
	); err != nil {
		return CreditStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreditStockCommand) Validate() error {
	return c.guard.Validate(ErrCreditStockCommandIsNotConstructed)
}

// OwnerID returns the stock owner.
func (c CreditStockCommand) OwnerID() kernel.UUID { return c.ownerID }

// Name returns the product name to credit under.
func (c CreditStockCommand) Name() string { return c.name }

// Quantity returns the quantity to credit.
func (c CreditStockCommand) Quantity() int { return c.quantity }

// UnitPrice returns the optional per-unit price.
func (c CreditStockCommand) UnitPrice() *kernel.Money { return c.unitPrice }

// Barcode returns the optional barcode metadata.
func (c CreditStockCommand) Barcode() string { return c.barcode }

// Category returns the optional category metadata.
func (c CreditStockCommand) Category() string { return c.category }

// ImageURL returns the optional image metadata.
func (c CreditStockCommand) ImageURL() string { return c.imageURL }

func (c *CreditStockCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

func (c *CreditStockCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreditStockCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}
