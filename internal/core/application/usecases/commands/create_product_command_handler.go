package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"
)

// CreateProductCommandHandler handles the business logic for catalog product
// registration.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product registration.
func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command. The caller must hold the
// manage-catalog capability, and the barcode must not collide with any
// active product or alias in the depot.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
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
	if err := barcodeIsFree(ctx, catalogRepo, cmd.DepotID(), cmd.Barcode()); err != nil {
		return err
	}

	newProduct, err := product.NewProduct(
		cmd.ProductID(),
		cmd.DepotID(),
		cmd.Barcode(),
		cmd.Name(),
		cmd.UnitPrice(),
		cmd.UnitCost(),
		cmd.Category(),
		cmd.ImageURL(),
	)
	if err != nil {
		return err
	}

	if err = catalogRepo.AddProduct(ctx, newProduct); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
