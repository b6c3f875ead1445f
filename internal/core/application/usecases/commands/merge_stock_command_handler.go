package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// MergeStockCommandHandler handles the business logic for stock consolidation.
// Loads the target and its direct active neighbours, runs the merge, and
// persists every touched aggregate in one transaction.
type MergeStockCommandHandler struct {
	uowFactory   CatalogUoWFactory
	consolidator services.StockConsolidator
}

// NewMergeStockCommandHandler creates a handler for merge operations.
func NewMergeStockCommandHandler(uowFactory CatalogUoWFactory) MergeStockCommandHandler {
	return MergeStockCommandHandler{
		uowFactory:   uowFactory,
		consolidator: services.NewStockConsolidator(),
	}
}

// Handle processes the merge command.
func (h *MergeStockCommandHandler) Handle(ctx context.Context, cmd MergeStockCommand) error {
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

	linkages, err := catalogRepo.GetActiveLinkagesFor(ctx, target.ID())
	if err != nil {
		return err
	}

	neighbours := make([]*product.Product, 0, len(linkages))
	for _, linkage := range linkages {
		neighbourID, ok := linkage.OtherSide(target.ID())
		if !ok {
			continue
		}

		neighbour, getErr := catalogRepo.GetProduct(ctx, neighbourID)
		if getErr != nil {
			return getErr
		}
		neighbours = append(neighbours, neighbour)
	}

	if err = h.consolidator.Merge(target, neighbours, linkages, cmd.AbsorbAll()); err != nil {
		return err
	}

	if err = catalogRepo.UpdateProduct(ctx, target); err != nil {
		return err
	}
	for _, neighbour := range neighbours {
		if err = catalogRepo.UpdateProduct(ctx, neighbour); err != nil {
			return err
		}
	}
	if cmd.AbsorbAll() {
		for _, linkage := range linkages {
			if err = catalogRepo.UpdateLinkage(ctx, linkage); err != nil {
				return err
			}
		}
	}

	return uow.Commit(ctx)
}
