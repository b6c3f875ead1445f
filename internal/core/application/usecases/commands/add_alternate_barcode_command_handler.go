package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"
)

// AddAlternateBarcodeCommandHandler handles the business logic for alias
// registration. The collision check, the alias insert, and the optional stock
// credit share one transaction, so a collision credits nothing.
type AddAlternateBarcodeCommandHandler struct {
	uowFactory CatalogStockUoWFactory
}

// NewAddAlternateBarcodeCommandHandler creates a handler for alias registration.
func NewAddAlternateBarcodeCommandHandler(uowFactory CatalogStockUoWFactory) AddAlternateBarcodeCommandHandler {
	return AddAlternateBarcodeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the alias registration command.
func (h *AddAlternateBarcodeCommandHandler) Handle(ctx context.Context, cmd AddAlternateBarcodeCommand) error {
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
	canonical, err := catalogRepo.GetProduct(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if !canonical.IsActive() {
		return errs.NewConflictError(fmt.Sprintf(
			"product %s is inactive and cannot take an alias", canonical.ID()))
	}

	if err = barcodeIsFree(ctx, catalogRepo, canonical.DepotID(), cmd.Code()); err != nil {
		return err
	}

	alias, err := product.NewAlternateBarcode(
		kernel.NewUUID(), canonical.ID(), canonical.DepotID(), cmd.Code())
	if err != nil {
		return err
	}
	if err = catalogRepo.AddAlternateBarcode(ctx, alias); err != nil {
		return err
	}

	if cmd.CreditQuantity() > 0 {
		if err = canonical.Restock(cmd.CreditQuantity()); err != nil {
			return err
		}
		if err = catalogRepo.UpdateProduct(ctx, canonical); err != nil {
			return err
		}
		if err = recordPurchase(ctx, uow, canonical.DepotID(), canonical.UnitCost(), cmd.CreditQuantity(),
			fmt.Sprintf("alias credit of %s", canonical.Name())); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
