package services

import (
	"sort"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/pkg/errs"
)

// StockDepletion is a domain service that plans an oldest-first (FIFO)
// depletion across the stock batches of one (owner, name) group.
//
// Depletion is all-or-nothing: when the batches hold less than requested, the
// plan fails with an InsufficientStockError and no batch is touched.
type StockDepletion struct{}

// NewStockDepletion creates a new StockDepletion instance.
func NewStockDepletion() StockDepletion {
	return StockDepletion{}
}

// DepletionPlan is the outcome of a planned FIFO walk. Exhausted batches are
// to be deleted, the updated batch (if any) to be persisted with its reduced
// quantity, and Amount is the sale value of the depleted quantity.
type DepletionPlan struct {
	// Exhausted lists batches consumed down to zero, oldest first.
	Exhausted []*stock.Entry

	// Updated is the partially consumed batch, nil when the walk ended
	// exactly on a batch boundary.
	Updated *stock.Entry

	// Amount is unit price × depleted quantity. Zero when no price is known.
	Amount kernel.Money
}

// Plan walks the given batches oldest-first and consumes the requested
// quantity. The unit price for the sale amount is the override when given,
// otherwise the oldest batch's price, otherwise zero.
//
// The entries are mutated in memory (consumed); persisting deletions and
// updates in one transaction is the caller's job.
func (d StockDepletion) Plan(
	entries []*stock.Entry,
	quantity int,
	unitPriceOverride *kernel.Money,
) (DepletionPlan, error) {
	if quantity <= 0 {
		return DepletionPlan{}, errs.NewValueIsInvalidError("depletion quantity must be positive")
	}

	available := 0
	name := ""
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return DepletionPlan{}, err
		}
		available += entry.Quantity()
		name = entry.Name()
	}

	if available < quantity {
		return DepletionPlan{}, errs.NewInsufficientStockError(name, quantity, available)
	}

	ordered := make([]*stock.Entry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt().Before(ordered[j].CreatedAt())
	})

	plan := DepletionPlan{}

	unitPrice := kernel.Money{}
	if unitPriceOverride != nil {
		unitPrice = *unitPriceOverride
	} else if len(ordered) > 0 && ordered[0].UnitPrice() != nil {
		unitPrice = *ordered[0].UnitPrice()
	}

	remaining := quantity
	for _, entry := range ordered {
		if remaining == 0 {
			break
		}

		consume := entry.Quantity()
		if consume > remaining {
			consume = remaining
		}
		if err := entry.Consume(consume); err != nil {
			return DepletionPlan{}, err
		}
		remaining -= consume

		if entry.IsExhausted() {
			plan.Exhausted = append(plan.Exhausted, entry)
		} else {
			plan.Updated = entry
		}
	}

	amount, err := unitPrice.MultiplyQuantity(quantity)
	if err != nil {
		return DepletionPlan{}, err
	}
	plan.Amount = amount

	return plan, nil
}
