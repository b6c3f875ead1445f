package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRemoveAlternateBarcodeCommandIsNotConstructed = errors.New(
	"RemoveAlternateBarcodeCommand must be created via NewRemoveAlternateBarcodeCommand constructor",
)

// RemoveAlternateBarcodeCommand represents a request to retire an alias.
// The mapping is soft-deactivated, never destroyed.
type RemoveAlternateBarcodeCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.Caller
	aliasID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveAlternateBarcodeCommand creates a command to retire an alias.
func NewRemoveAlternateBarcodeCommand(caller kernel.Caller, aliasID kernel.UUID) (RemoveAlternateBarcodeCommand, error) {
	cmd := RemoveAlternateBarcodeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setAliasID(aliasID),
	); err != nil {
		return RemoveAlternateBarcodeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveAlternateBarcodeCommand) Validate() error {
	return c.guard.Validate(ErrRemoveAlternateBarcodeCommandIsNotConstructed)
}

// Caller returns the party retiring the alias.
func (c RemoveAlternateBarcodeCommand) Caller() kernel.Caller { return c.caller }

// AliasID returns the alias to retire.
func (c RemoveAlternateBarcodeCommand) AliasID() kernel.UUID { return c.aliasID }

func (c *RemoveAlternateBarcodeCommand) setCaller(caller kernel.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *RemoveAlternateBarcodeCommand) setAliasID(aliasID kernel.UUID) error {
	if err := aliasID.Validate(); err != nil {
		return err
	}
	c.aliasID = aliasID
	return nil
}
