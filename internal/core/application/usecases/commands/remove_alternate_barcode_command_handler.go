package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// RemoveAlternateBarcodeCommandHandler handles the business logic for alias
// retirement.
type RemoveAlternateBarcodeCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewRemoveAlternateBarcodeCommandHandler creates a handler for alias retirement.
func NewRemoveAlternateBarcodeCommandHandler(uowFactory CatalogUoWFactory) RemoveAlternateBarcodeCommandHandler {
	return RemoveAlternateBarcodeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the alias retirement command.
func (h *RemoveAlternateBarcodeCommandHandler) Handle(ctx context.Context, cmd RemoveAlternateBarcodeCommand) error {
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
	alias, err := catalogRepo.GetAlternateBarcode(ctx, cmd.AliasID())
	if err != nil {
		return err
	}

	alias.Deactivate()
	if err = catalogRepo.UpdateAlternateBarcode(ctx, alias); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
