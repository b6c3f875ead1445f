package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrBarcodeIsRequired = errors.New("barcode is required")
	ErrNameIsRequired    = errors.New("name is required")
)

// CreateProductCommand represents a request to register a catalog product
// for a depot. The product starts active with zero stock.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.Caller
	productID kernel.UUID
	depotID   kernel.UUID
	barcode   string
	name      string
	unitPrice kernel.Money
	unitCost  *kernel.Money
	category  string
	imageURL  string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a new catalog product.
func NewCreateProductCommand(
	caller kernel.Caller,
	productID kernel.UUID,
	depotID kernel.UUID,
	barcode string,
	name string,
	unitPrice kernel.Money,
	unitCost *kernel.Money,
	category string,
	imageURL string,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		unitPrice: unitPrice,
		unitCost:  unitCost,
		category:  category,
		imageURL:  imageURL,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setProductID(productID),
		cmd.setDepotID(depotID),
		cmd.setBarcode(barcode),
		cmd.setName(name),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Caller returns the party requesting the creation.
func (c CreateProductCommand) Caller() kernel.Caller { return c.caller }

// ProductID returns the identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID { return c.productID }

// DepotID returns the owning depot.
func (c CreateProductCommand) DepotID() kernel.UUID { return c.depotID }

// Barcode returns the primary barcode.
func (c CreateProductCommand) Barcode() string { return c.barcode }

// Name returns the product name.
func (c CreateProductCommand) Name() string { return c.name }

// UnitPrice returns the selling price per unit.
func (c CreateProductCommand) UnitPrice() kernel.Money { return c.unitPrice }

// UnitCost returns the purchase cost per unit, if known.
func (c CreateProductCommand) UnitCost() *kernel.Money { return c.unitCost }

// Category returns the optional catalog category.
func (c CreateProductCommand) Category() string { return c.category }

// ImageURL returns the optional product image.
func (c CreateProductCommand) ImageURL() string { return c.imageURL }

func (c *CreateProductCommand) setCaller(caller kernel.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setDepotID(depotID kernel.UUID) error {
	if err := depotID.Validate(); err != nil {
		return err
	}
	c.depotID = depotID
	return nil
}

func (c *CreateProductCommand) setBarcode(barcode string) error {
	if barcode == "" {
		return ErrBarcodeIsRequired
	}
	c.barcode = barcode
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
