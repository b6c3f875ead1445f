// Package stock implements the personal stock ledger: per-owner quantity
// batches credited by delivery-receipt confirmation and depleted oldest-first
// on resale, plus the append-only financial LedgerEntry rows those movements
// produce.
package stock
