package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// RemoveProductCommandHandler handles the business logic for product
// deactivation.
type RemoveProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewRemoveProductCommandHandler creates a handler for product deactivation.
func NewRemoveProductCommandHandler(uowFactory CatalogUoWFactory) RemoveProductCommandHandler {
	return RemoveProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
func (h *RemoveProductCommandHandler) Handle(ctx context.Context, cmd RemoveProductCommand) error {
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
	target, err := catalogRepo.GetProduct(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	target.Deactivate()
	if err = catalogRepo.UpdateProduct(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
