package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResolveBarcodeQueryHandler resolves scanned codes against the catalog of a
// single depot. Matching is case-insensitive on both primary and alternate
// codes; inactive products and inactive aliases never match.
type ResolveBarcodeQueryHandler struct {
	db *gorm.DB
}

// NewResolveBarcodeQueryHandler creates a handler for barcode resolution.
func NewResolveBarcodeQueryHandler(db *gorm.DB) ResolveBarcodeQueryHandler {
	return ResolveBarcodeQueryHandler{db: db}
}

// Handle resolves the code. The product's own barcode is checked first; only
// a clean miss falls through to the alternate-barcode table. Returns an
// object-not-found error when neither table has an active match.
func (h ResolveBarcodeQueryHandler) Handle(
	ctx context.Context,
	query ResolveBarcodeQuery,
) (ResolveBarcodeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ResolveBarcodeQueryResponse{}, err
	}

	resp, err := h.resolvePrimary(ctx, query)
	if err == nil {
		return resp, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return ResolveBarcodeQueryResponse{}, err
	}

	resp, err = h.resolveAlternate(ctx, query)
	if err == nil {
		return resp, nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ResolveBarcodeQueryResponse{}, errs.NewObjectNotFoundError("barcode", query.Code())
	}
	return ResolveBarcodeQueryResponse{}, err
}

func (h ResolveBarcodeQueryHandler) resolvePrimary(
	ctx context.Context,
	query ResolveBarcodeQuery,
) (ResolveBarcodeQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			barcode,
			name,
			unit_price_cents,
			category,
			image_url,
			quantity_on_hand
		FROM products
		WHERE depot_id = ?
		  AND active = ?
		  AND LOWER(barcode) = LOWER(?)
	`, query.DepotID().Bytes(), true, query.Code()).Row()

	return scanProductRow(row, false)
}

func (h ResolveBarcodeQueryHandler) resolveAlternate(
	ctx context.Context,
	query ResolveBarcodeQuery,
) (ResolveBarcodeQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.barcode,
			p.name,
			p.unit_price_cents,
			p.category,
			p.image_url,
			p.quantity_on_hand
		FROM alternate_barcodes a
		JOIN products p ON p.id = a.product_id
		WHERE a.depot_id = ?
		  AND a.active = ?
		  AND p.active = ?
		  AND LOWER(a.code) = LOWER(?)
	`, query.DepotID().Bytes(), true, true, query.Code()).Row()

	return scanProductRow(row, true)
}

func scanProductRow(row *sql.Row, viaAlternate bool) (ResolveBarcodeQueryResponse, error) {
	var (
		id   uuid.UUID
		resp ResolveBarcodeQueryResponse
	)

	err := row.Scan(
		&id,
		&resp.Barcode,
		&resp.Name,
		&resp.UnitPriceCents,
		&resp.Category,
		&resp.ImageURL,
		&resp.QuantityOnHand,
	)
	if err != nil {
		return ResolveBarcodeQueryResponse{}, err
	}

	productID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ResolveBarcodeQueryResponse{}, err
	}
	resp.ProductID = productID
	resp.ViaAlternate = viaAlternate

	return resp, nil
}
