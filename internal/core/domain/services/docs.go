// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the fulfillment system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - StockConsolidator: one-hop quantity consolidation and merging over product linkages
//   - StockDepletion: oldest-first (FIFO) depletion planning across personal stock batches
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
