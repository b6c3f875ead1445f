package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/receipt"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CreateReceiptCommandHandler handles the business logic for receipt issuing.
// The line snapshot resolves each product's barcode, category, and image at
// this instant; later catalog edits never change what a confirmation credits.
type CreateReceiptCommandHandler struct {
	uowFactory ReceiptUoWFactory
}

// NewCreateReceiptCommandHandler creates a handler for receipt issuing.
func NewCreateReceiptCommandHandler(uowFactory ReceiptUoWFactory) CreateReceiptCommandHandler {
	return CreateReceiptCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the receipt command and returns the receipt, existing or
// new. Retrying after an ambiguous failure is safe.
func (h *CreateReceiptCommandHandler) Handle(ctx context.Context, cmd CreateReceiptCommand) (*receipt.Receipt, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	receiptRepo := uow.ReceiptRepository()
	existing, err := receiptRepo.GetByOrderID(ctx, cmd.OrderID())
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	target, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if target.Status() != order.StatusReady && target.Status() != order.StatusShipped {
		return nil, errs.NewConflictError(fmt.Sprintf(
			"receipt requires a ready or shipped order, order %s is %s", target.ID(), target.Status()))
	}

	now := time.Now()
	lines, err := h.snapshotLines(ctx, uow.CatalogRepository(), target)
	if err != nil {
		return nil, err
	}

	newReceipt, err := receipt.NewReceipt(
		kernel.NewUUID(),
		receipt.GenerateCode(now),
		target.ID(),
		target.BuyerID(),
		target.DepotID(),
		lines,
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = receiptRepo.Add(ctx, newReceipt); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newReceipt, nil
}

// snapshotLines copies the order's lines, resolving each referenced product's
// catalog metadata as of now. Off-catalog lines snapshot with empty metadata.
func (h *CreateReceiptCommandHandler) snapshotLines(
	ctx context.Context,
	catalogRepo ports.CatalogRepository,
	target *order.Order,
) ([]receipt.SnapshotLine, error) {
	orderLines := target.Lines()
	lines := make([]receipt.SnapshotLine, 0, len(orderLines))

	for _, line := range orderLines {
		var barcode, category, imageURL string
		if productID := line.ProductID(); productID != nil {
			p, err := catalogRepo.GetProduct(ctx, *productID)
			if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
				return nil, err
			}
			if err == nil {
				barcode = p.Barcode()
				category = p.Category()
				imageURL = p.ImageURL()
			}
		}

		snapshot, err := receipt.NewSnapshotLine(
			kernel.NewUUID(),
			line.ProductID(),
			line.Name(),
			line.Quantity(),
			line.UnitPrice(),
			barcode,
			category,
			imageURL,
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, snapshot)
	}

	return lines, nil
}
