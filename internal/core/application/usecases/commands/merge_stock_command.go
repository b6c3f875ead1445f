package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMergeStockCommandIsNotConstructed = errors.New(
	"MergeStockCommand must be created via NewMergeStockCommand constructor",
)

// MergeStockCommand represents a request to consolidate linked stock onto one
// product. With absorbAll the absorbed neighbours and their linkages are
// deactivated; otherwise the neighbours stay active with zero quantity.
type MergeStockCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.Caller
	productID kernel.UUID
	absorbAll bool

	guard guard.ConstructorGuard
}

// NewMergeStockCommand creates a command to merge linked stock.
func NewMergeStockCommand(caller kernel.Caller, productID kernel.UUID, absorbAll bool) (MergeStockCommand, error) {
	cmd := MergeStockCommand{
		absorbAll: absorbAll,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setProductID(productID),
	); err != nil {
		return MergeStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MergeStockCommand) Validate() error {
	return c.guard.Validate(ErrMergeStockCommandIsNotConstructed)
}

// Caller returns the party requesting the merge.
func (c MergeStockCommand) Caller() kernel.Caller { return c.caller }

// ProductID returns the consolidation target.
func (c MergeStockCommand) ProductID() kernel.UUID { return c.productID }

// AbsorbAll reports whether absorbed neighbours should be deactivated.
func (c MergeStockCommand) AbsorbAll() bool { return c.absorbAll }

func (c *MergeStockCommand) setCaller(caller kernel.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *MergeStockCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}
