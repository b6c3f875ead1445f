package commands

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// LinkProductsCommandHandler handles the business logic for product linking.
// Both sides resolve inside one transaction; the unordered-pair uniqueness
// check and the insert happen under the same transaction too.
type LinkProductsCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewLinkProductsCommandHandler creates a handler for linking operations.
func NewLinkProductsCommandHandler(uowFactory CatalogUoWFactory) LinkProductsCommandHandler {
	return LinkProductsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the linking command.
func (h *LinkProductsCommandHandler) Handle(ctx context.Context, cmd LinkProductsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if !cmd.Caller().Role().HasCapability(kernel.CapabilityManageCatalog) {
		return errs.NewAuthorizationError("caller cannot manage the catalog")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogRepo := uow.CatalogRepository()
	productA, err := resolveProductRef(ctx, catalogRepo, cmd.DepotID(), cmd.RefA())
	if err != nil {
		return err
	}
	productB, err := resolveProductRef(ctx, catalogRepo, cmd.DepotID(), cmd.RefB())
	if err != nil {
		return err
	}

	if productA.ID().IsEqual(productB.ID()) {
		return errs.NewConflictError(fmt.Sprintf(
			"product %s cannot be linked to itself", productA.ID()))
	}

	_, err = catalogRepo.GetActiveLinkageBetween(ctx, productA.ID(), productB.ID())
	if err == nil {
		return errs.NewConflictError(fmt.Sprintf(
			"products %s and %s are already linked", productA.ID(), productB.ID()))
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	linkage, err := product.NewLinkage(kernel.NewUUID(), cmd.DepotID(), productA.ID(), productB.ID())
	if err != nil {
		return err
	}

	if err = catalogRepo.AddLinkage(ctx, linkage); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// resolveProductRef resolves a product reference by exact barcode first, then
// by id. The product must belong to the depot and be active.
func resolveProductRef(
	ctx context.Context,
	repo ports.CatalogRepository,
	depotID kernel.UUID,
	ref string,
) (*product.Product, error) {
	byBarcode, err := repo.GetActiveProductByBarcode(ctx, depotID, ref)
	if err == nil {
		return byBarcode, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	id, err := kernel.UUIDFromString(ref)
	if err != nil {
		return nil, errs.NewObjectNotFoundError("product", ref)
	}

	byID, err := repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if !byID.IsActive() || !byID.DepotID().IsEqual(depotID) {
		return nil, errs.NewObjectNotFoundError("product", ref)
	}

	return byID, nil
}
