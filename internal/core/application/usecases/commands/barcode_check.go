package commands

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// barcodeIsFree checks that a code is claimed by no active product barcode and
// no active alias within the depot. A taken code is a ConflictError; only a
// clean miss on both lookups passes.
func barcodeIsFree(ctx context.Context, repo ports.CatalogRepository, depotID kernel.UUID, code string) error {
	owner, err := repo.GetActiveProductByBarcode(ctx, depotID, code)
	if err == nil {
		return errs.NewConflictError(fmt.Sprintf(
			"barcode %q already belongs to product %s", code, owner.ID()))
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	alias, err := repo.GetActiveAlternateBarcodeByCode(ctx, depotID, code)
	if err == nil {
		return errs.NewConflictError(fmt.Sprintf(
			"barcode %q is already an alias for product %s", code, alias.ProductID()))
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	return nil
}
