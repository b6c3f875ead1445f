// Package product contains the catalog ledger aggregates: the depot-owned
// Product with its quantity on hand, the Linkage edge marking two catalog
// rows as the same physical good, and the AlternateBarcode alias table.
//
// Linkages form an explicit edge list, not a transitively closed graph:
// consolidation reads one hop of direct active edges only. Products are
// soft-deleted (active=false) rather than destroyed, so historical order
// lines keep resolving.
package product
