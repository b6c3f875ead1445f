package product

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrAlternateBarcodeIsNotConstructed is returned when an AlternateBarcode
	// was not created through the NewAlternateBarcode factory method.
	ErrAlternateBarcodeIsNotConstructed = errors.New(
		"AlternateBarcode must be created via NewAlternateBarcode constructor",
	)
)

// AlternateBarcode maps an extra scanned code onto a canonical product within
// a depot. Barcode resolution consults aliases only after the primary barcode
// lookup misses.
type AlternateBarcode struct {
	id        kernel.UUID
	productID kernel.UUID
	depotID   kernel.UUID
	code      string
	active    bool

	isConstructed bool
}

// NewAlternateBarcode creates an active alias for the given product.
func NewAlternateBarcode(id, productID, depotID kernel.UUID, code string) (*AlternateBarcode, error) {
	if err := errors.Join(
		id.Validate(),
		productID.Validate(),
		depotID.Validate(),
	); err != nil {
		return nil, err
	}

	if strings.TrimSpace(code) == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	return &AlternateBarcode{
		id:            id,
		productID:     productID,
		depotID:       depotID,
		code:          code,
		active:        true,
		isConstructed: true,
	}, nil
}

// RestoreAlternateBarcode rehydrates an alias from persistence.
func RestoreAlternateBarcode(id, productID, depotID kernel.UUID, code string, active bool) (*AlternateBarcode, error) {
	a, err := NewAlternateBarcode(id, productID, depotID, code)
	if err != nil {
		return nil, err
	}
	a.active = active
	return a, nil
}

// Validate ensures the alias was constructed through NewAlternateBarcode.
func (a *AlternateBarcode) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAlternateBarcodeIsNotConstructed
	}
	return nil
}

// ID returns the alias identifier.
func (a *AlternateBarcode) ID() kernel.UUID { return a.id }

// ProductID returns the canonical product the alias resolves to.
func (a *AlternateBarcode) ProductID() kernel.UUID { return a.productID }

// DepotID returns the depot the alias is scoped to.
func (a *AlternateBarcode) DepotID() kernel.UUID { return a.depotID }

// Code returns the aliased code.
func (a *AlternateBarcode) Code() string { return a.code }

// IsActive reports whether the alias is live.
func (a *AlternateBarcode) IsActive() bool { return a.active }

// Matches reports whether code matches the alias, case-insensitively.
func (a *AlternateBarcode) Matches(code string) bool {
	return strings.EqualFold(a.code, code)
}

// Deactivate retires the alias.
func (a *AlternateBarcode) Deactivate() {
	a.active = false
}
