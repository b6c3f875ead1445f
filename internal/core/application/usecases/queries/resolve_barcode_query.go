package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrResolveBarcodeQueryIsNotConstructed = errors.New(
	"ResolveBarcodeQuery must be created via NewResolveBarcodeQuery constructor",
)

// ResolveBarcodeQuery looks up a scanned code within one depot. The primary
// barcode of an active product wins; active alternate barcodes are tried only
// when no primary match exists.
//
// Example:
//
//	query, err := NewResolveBarcodeQuery(depotID, "4006381333931")
//	if err != nil {
//	    return err
//	}
//
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    fmt.Println("unknown code")
//	}
type ResolveBarcodeQuery struct { //nolint:recvcheck //using for validation
	depotID kernel.UUID
	code    string

	guard guard.ConstructorGuard
}

// NewResolveBarcodeQuery creates a query to resolve a scanned code.
func NewResolveBarcodeQuery(depotID kernel.UUID, code string) (ResolveBarcodeQuery, error) {
	query := ResolveBarcodeQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setDepotID(depotID),
		query.setCode(code),
	); err != nil {
		return ResolveBarcodeQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ResolveBarcodeQuery) Validate() error {
	return q.guard.Validate(ErrResolveBarcodeQueryIsNotConstructed)
}

// DepotID returns the depot whose catalog is searched.
func (q ResolveBarcodeQuery) DepotID() kernel.UUID { return q.depotID }

// Code returns the scanned code.
func (q ResolveBarcodeQuery) Code() string { return q.code }

func (q *ResolveBarcodeQuery) setDepotID(depotID kernel.UUID) error {
	if err := depotID.Validate(); err != nil {
		return err
	}
	q.depotID = depotID
	return nil
}

func (q *ResolveBarcodeQuery) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	q.code = code
	return nil
}

// ResolveBarcodeQueryResponse describes the product a code resolved to.
// ViaAlternate is true when the match came through an alternate barcode
// rather than the product's own code.
type ResolveBarcodeQueryResponse struct {
	ProductID      kernel.UUID
	Barcode        string
	Name           string
	UnitPriceCents int64
	Category       string
	ImageURL       string
	QuantityOnHand int
	ViaAlternate   bool
}
