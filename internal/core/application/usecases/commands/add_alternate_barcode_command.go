package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAddAlternateBarcodeCommandIsNotConstructed = errors.New(
		"AddAlternateBarcodeCommand must be created via NewAddAlternateBarcodeCommand constructor",
	)
	ErrCodeIsRequired          = errors.New("code is required")
	ErrCreditQuantityIsInvalid = errors.New("credit quantity must be greater than 0")
)

// AddAlternateBarcodeCommand represents a request to map an extra scanned
// code onto a canonical product, optionally crediting quantity onto it in the
// same step.
type AddAlternateBarcodeCommand struct { //nolint:recvcheck //using for validation
	caller         kernel.Caller
	productID      kernel.UUID
	code           string
	creditQuantity int

	guard guard.ConstructorGuard
}

// NewAddAlternateBarcodeCommand creates a command to register an alias.
// A zero creditQuantity means no stock credit.
func NewAddAlternateBarcodeCommand(
	caller kernel.Caller,
	productID kernel.UUID,
	code string,
	creditQuantity int,
) (AddAlternateBarcodeCommand, error) {
	cmd := AddAlternateBarcodeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setProductID(productID),
		cmd.setCode(code),
		cmd.setCreditQuantity(creditQuantity),
	); err != nil {
		return AddAlternateBarcodeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddAlternateBarcodeCommand) Validate() error {
	return c.guard.Validate(ErrAddAlternateBarcodeCommandIsNotConstructed)
}

// Caller returns the party registering the alias.
func (c AddAlternateBarcodeCommand) Caller() kernel.Caller { return c.caller }

// ProductID returns the canonical product.
func (c AddAlternateBarcodeCommand) ProductID() kernel.UUID { return c.productID }

// Code returns the alias code.
func (c AddAlternateBarcodeCommand) Code() string { return c.code }

// CreditQuantity returns the optional quantity to credit, zero for none.
func (c AddAlternateBarcodeCommand) CreditQuantity() int { return c.creditQuantity }

func (c *AddAlternateBarcodeCommand) setCaller(caller kernel.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *AddAlternateBarcodeCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *AddAlternateBarcodeCommand) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}
	c.code = code
	return nil
}

func (c *AddAlternateBarcodeCommand) setCreditQuantity(creditQuantity int) error {
	if creditQuantity < 0 {
		return ErrCreditQuantityIsInvalid
	}
	c.creditQuantity = creditQuantity
	return nil
}
