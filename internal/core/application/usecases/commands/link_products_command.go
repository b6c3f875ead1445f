package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrLinkProductsCommandIsNotConstructed = errors.New(
		"LinkProductsCommand must be created via NewLinkProductsCommand constructor",
	)
	ErrProductRefIsRequired = errors.New("product reference is required")
)

// LinkProductsCommand represents a request to declare two catalog entries the
// same physical good. Each side is referenced by exact barcode or by product
// id; resolution happens inside the handler's transaction.
//
// Example:
//
//	cmd, err := NewLinkProductsCommand(caller, depotID, "4006381333931", productB.ID().String())
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type LinkProductsCommand struct { //nolint:recvcheck //using for validation
	caller  kernel.Caller
	depotID kernel.UUID
	refA    string
	refB    string

	guard guard.ConstructorGuard
}

// NewLinkProductsCommand creates a command to link two products.
func NewLinkProductsCommand(caller kernel.Caller, depotID kernel.UUID, refA, refB string) (LinkProductsCommand, error) {
	cmd := LinkProductsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setDepotID(depotID),
		cmd.setRefs(refA, refB),
	); err != nil {
		return LinkProductsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LinkProductsCommand) Validate() error {
	return c.guard.Validate(ErrLinkProductsCommandIsNotConstructed)
}

// Caller returns the party requesting the linkage.
func (c LinkProductsCommand) Caller() kernel.Caller { return c.caller }

// DepotID returns the depot whose catalog is being linked.
func (c LinkProductsCommand) DepotID() kernel.UUID { return c.depotID }

// RefA returns the first product reference (barcode or id).
func (c LinkProductsCommand) RefA() string { return c.refA }

// RefB returns the second product reference (barcode or id).
func (c LinkProductsCommand) RefB() string { return c.refB }

func (c *LinkProductsCommand) setCaller(caller kernel.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *LinkProductsCommand) setDepotID(depotID kernel.UUID) error {
	if err := depotID.Validate(); err != nil {
		return err
	}
	c.depotID = depotID
	return nil
}

func (c *LinkProductsCommand) setRefs(refA, refB string) error {
	if refA == "" || refB == "" {
		return ErrProductRefIsRequired
	}
	c.refA = refA
	c.refB = refB
	return nil
}
