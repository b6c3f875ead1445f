// Package order implements the order workbook aggregate: an order and its
// line-item snapshots, a computed total, and a finite lifecycle driven by
// the Status state machine.
//
// Line items snapshot product name and price at order time; later catalog
// edits never change an existing order. Editing the lines of a pending order
// replaces the whole set atomically and recomputes the total, so the
// total-equals-sum-of-lines invariant holds after every operation.
package order
