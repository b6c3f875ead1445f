package services

import (
	"fulfillment/internal/core/domain/model/product"
)

// StockConsolidator is a domain service for the quantity arithmetic over
// product linkages: reading a consolidated quantity and merging stock onto a
// single catalog row.
//
// Consolidation is strictly one hop: only neighbours connected to the target
// by a direct active linkage participate. Linking A↔B and B↔C does not make
// C's stock visible from A unless A↔C is also linked directly. The relation
// is an explicit edge list, never a transitive closure.
type StockConsolidator struct{}

// NewStockConsolidator creates a new StockConsolidator instance.
func NewStockConsolidator() StockConsolidator {
	return StockConsolidator{}
}

// ConsolidatedQuantity returns the target's own stock plus the stock of its
// direct active neighbours. Inactive neighbours contribute nothing.
func (c StockConsolidator) ConsolidatedQuantity(
	target *product.Product,
	neighbours []*product.Product,
) (int, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	total := target.QuantityOnHand()
	for _, neighbour := range neighbours {
		if err := neighbour.Validate(); err != nil {
			return 0, err
		}
		if !neighbour.IsActive() {
			continue
		}
		total += neighbour.QuantityOnHand()
	}

	return total, nil
}

// Merge sums the stock of the target and its direct active neighbours onto
// the target and zeroes the absorbed neighbours. With absorbAll the merge is
// destructive: the absorbed products and the linkages that connected them are
// deactivated, making the merge one-way.
//
// The caller persists every touched aggregate in one transaction; Merge only
// mutates in memory.
func (c StockConsolidator) Merge(
	target *product.Product,
	neighbours []*product.Product,
	linkages []*product.Linkage,
	absorbAll bool,
) error {
	total, err := c.ConsolidatedQuantity(target, neighbours)
	if err != nil {
		return err
	}

	if err = target.SetQuantityOnHand(total); err != nil {
		return err
	}

	for _, neighbour := range neighbours {
		if !neighbour.IsActive() {
			continue
		}
		if err = neighbour.SetQuantityOnHand(0); err != nil {
			return err
		}
		if absorbAll {
			neighbour.Deactivate()
		}
	}

	if absorbAll {
		for _, linkage := range linkages {
			if err = linkage.Validate(); err != nil {
				return err
			}
			linkage.Deactivate()
		}
	}

	return nil
}
