// Package receipt implements the delivery receipt aggregate: a code-identified,
// single-use confirmation artifact tied to one order, carrying an immutable
// snapshot of the order's lines. Confirmation is the exactly-once core of the
// subsystem; everything the confirmation credits is read from the snapshot,
// never from the live catalog.
package receipt
