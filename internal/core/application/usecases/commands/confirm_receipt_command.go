package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrConfirmReceiptCommandIsNotConstructed = errors.New(
		"ConfirmReceiptCommand must be created via NewConfirmReceiptCommand constructor",
	)
	ErrReceiptCodeIsRequired = errors.New("receipt code is required")
)

// ConfirmReceiptCommand represents a request to confirm a delivery receipt by
// its code. Confirmation succeeds at most once per receipt.
type ConfirmReceiptCommand struct { //nolint:recvcheck //using for validation
	caller kernel.Caller
	code   string

	guard guard.ConstructorGuard
}

// NewConfirmReceiptCommand creates a command to confirm a receipt.
func NewConfirmReceiptCommand(caller kernel.Caller, code string) (ConfirmReceiptCommand, error) {
	cmd := ConfirmReceiptCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setCode(code),
	); err != nil {
		return ConfirmReceiptCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmReceiptCommand) Validate() error {
	return c.guard.Validate(ErrConfirmReceiptCommandIsNotConstructed)
}

// Caller returns the confirming party.
func (c ConfirmReceiptCommand) Caller() kernel.Caller { return c.caller }

// Code returns the receipt code.
func (c ConfirmReceiptCommand) Code() string { return c.code }

func (c *ConfirmReceiptCommand) setCaller(caller kernel.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *ConfirmReceiptCommand) setCode(code string) error {
	if code == "" {
		return ErrReceiptCodeIsRequired
	}
	c.code = code
	return nil
}
