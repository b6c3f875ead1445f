package product

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrLinkageIsNotConstructed is returned when a Linkage instance was not
	// created through the NewLinkage factory method.
	ErrLinkageIsNotConstructed = errors.New("Linkage must be created via NewLinkage constructor")
)

// Linkage is a symmetric edge between two catalog entries believed to be the
// same physical good. The pair is unordered: a linkage between A and B is the
// same relation as one between B and A.
//
// Invariants:
//   - no self-link (productA != productB)
//   - at most one active edge per unordered pair, enforced at the store
//     level and rechecked by the linking operation
//
// The relation is deliberately not transitively closed; consolidation walks
// direct edges only.
type Linkage struct {
	id       kernel.UUID
	productA kernel.UUID
	productB kernel.UUID
	depotID  kernel.UUID
	active   bool

	isConstructed bool
}

// NewLinkage creates an active edge between two distinct products.
func NewLinkage(id, depotID, productA, productB kernel.UUID) (*Linkage, error) {
	if err := errors.Join(
		id.Validate(),
		depotID.Validate(),
		productA.Validate(),
		productB.Validate(),
	); err != nil {
		return nil, err
	}

	if productA.IsEqual(productB) {
		return nil, errs.NewConflictError(
			fmt.Sprintf("product %s cannot be linked to itself", productA),
		)
	}

	return &Linkage{
		id:            id,
		productA:      productA,
		productB:      productB,
		depotID:       depotID,
		active:        true,
		isConstructed: true,
	}, nil
}

// RestoreLinkage rehydrates a linkage from persistence.
func RestoreLinkage(id, depotID, productA, productB kernel.UUID, active bool) (*Linkage, error) {
	l, err := NewLinkage(id, depotID, productA, productB)
	if err != nil {
		return nil, err
	}
	l.active = active
	return l, nil
}

// Validate ensures the Linkage was constructed through NewLinkage.
func (l *Linkage) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLinkageIsNotConstructed
	}
	return nil
}

// ID returns the linkage's unique identifier.
func (l *Linkage) ID() kernel.UUID { return l.id }

// ProductA returns one side of the edge.
func (l *Linkage) ProductA() kernel.UUID { return l.productA }

// ProductB returns the other side of the edge.
func (l *Linkage) ProductB() kernel.UUID { return l.productB }

// DepotID returns the depot owning both sides.
func (l *Linkage) DepotID() kernel.UUID { return l.depotID }

// IsActive reports whether the edge is live.
func (l *Linkage) IsActive() bool { return l.active }

// Connects reports whether the edge joins the given unordered pair.
func (l *Linkage) Connects(a, b kernel.UUID) bool {
	return (l.productA.IsEqual(a) && l.productB.IsEqual(b)) ||
		(l.productA.IsEqual(b) && l.productB.IsEqual(a))
}

// OtherSide returns the product on the opposite side of the edge from the
// given product, and whether the given product participates at all.
func (l *Linkage) OtherSide(productID kernel.UUID) (kernel.UUID, bool) {
	switch {
	case l.productA.IsEqual(productID):
		return l.productB, true
	case l.productB.IsEqual(productID):
		return l.productA, true
	default:
		return kernel.UUID{}, false
	}
}

// Deactivate retires the edge. Used by destructive merges.
func (l *Linkage) Deactivate() {
	l.active = false
}
