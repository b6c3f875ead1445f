package stock

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrLedgerEntryIsNotConstructed is returned when a LedgerEntry was not
	// created through the NewLedgerEntry factory method.
	ErrLedgerEntryIsNotConstructed = errors.New(
		"LedgerEntry must be created via NewLedgerEntry constructor",
	)
)

// LedgerKind distinguishes money flowing to the owner from money flowing away.
type LedgerKind int

const (
	// LedgerKindUnknown represents an invalid or undefined kind.
	LedgerKindUnknown LedgerKind = iota

	// LedgerKindCredit is money received by the owner (a sale).
	LedgerKindCredit

	// LedgerKindDebit is money spent by the owner (a purchase).
	LedgerKindDebit
)

func getLedgerKindStrings() map[LedgerKind]string {
	return map[LedgerKind]string{
		LedgerKindUnknown: "unknown",
		LedgerKindCredit:  "credit",
		LedgerKindDebit:   "debit",
	}
}

// LedgerKindFromString parses a ledger kind name.
func LedgerKindFromString(s string) (LedgerKind, error) {
	for kind, name := range getLedgerKindStrings() {
		if kind != LedgerKindUnknown && name == s {
			return kind, nil
		}
	}
	return LedgerKindUnknown, errs.NewValueIsInvalidErrorWithCause(
		"kind", fmt.Errorf("%q is not a valid ledger kind", s))
}

// String returns the lowercase kind name.
func (k LedgerKind) String() string {
	if s, ok := getLedgerKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// Validate checks the kind is credit or debit.
func (k LedgerKind) Validate() error {
	if k != LedgerKindCredit && k != LedgerKindDebit {
		return errs.NewValueIsInvalidErrorWithCause(
			"kind", fmt.Errorf("%d is not a valid ledger kind", k))
	}
	return nil
}

// LedgerEntry is one row of the append-only financial audit trail. Entries
// are written as side effects of purchases and sales and are never updated
// or deleted.
type LedgerEntry struct {
	id             kernel.UUID
	ownerID        kernel.UUID
	kind           LedgerKind
	description    string
	amount         kernel.Money
	category       string
	relatedOrderID *kernel.UUID
	createdAt      time.Time

	isConstructed bool
}

// NewLedgerEntry creates an audit row. The amount must be positive; zero-value
// movements are not recorded.
func NewLedgerEntry(
	id kernel.UUID,
	ownerID kernel.UUID,
	kind LedgerKind,
	description string,
	amount kernel.Money,
	category string,
	relatedOrderID *kernel.UUID,
	createdAt time.Time,
) (*LedgerEntry, error) {
	if err := errors.Join(id.Validate(), ownerID.Validate(), kind.Validate()); err != nil {
		return nil, err
	}
	if relatedOrderID != nil {
		if err := relatedOrderID.Validate(); err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(description) == "" {
		return nil, errs.NewValueIsRequiredError("description")
	}
	if amount.IsZero() {
		return nil, errs.NewValueIsInvalidError("ledger amount must be positive")
	}

	return &LedgerEntry{
		id:             id,
		ownerID:        ownerID,
		kind:           kind,
		description:    description,
		amount:         amount,
		category:       category,
		relatedOrderID: relatedOrderID,
		createdAt:      createdAt.UTC(),
		isConstructed:  true,
	}, nil
}

// RestoreLedgerEntry rehydrates an audit row from persistence.
func RestoreLedgerEntry(
	id kernel.UUID,
	ownerID kernel.UUID,
	kind LedgerKind,
	description string,
	amount kernel.Money,
	category string,
	relatedOrderID *kernel.UUID,
	createdAt time.Time,
) (*LedgerEntry, error) {
	return NewLedgerEntry(id, ownerID, kind, description, amount, category, relatedOrderID, createdAt)
}

// Validate ensures the entry was constructed through NewLedgerEntry.
func (e *LedgerEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrLedgerEntryIsNotConstructed
	}
	return nil
}

// ID returns the row identifier.
func (e *LedgerEntry) ID() kernel.UUID { return e.id }

// OwnerID returns the party whose ledger this row belongs to.
func (e *LedgerEntry) OwnerID() kernel.UUID { return e.ownerID }

// Kind returns credit or debit.
func (e *LedgerEntry) Kind() LedgerKind { return e.kind }

// Description returns the human-readable event description.
func (e *LedgerEntry) Description() string { return e.description }

// Amount returns the moved amount.
func (e *LedgerEntry) Amount() kernel.Money { return e.amount }

// Category returns the event category, e.g. "sale" or "purchase".
func (e *LedgerEntry) Category() string { return e.category }

// RelatedOrderID returns the order the movement relates to, if any.
func (e *LedgerEntry) RelatedOrderID() *kernel.UUID { return e.relatedOrderID }

// CreatedAt returns the append timestamp.
func (e *LedgerEntry) CreatedAt() time.Time { return e.createdAt }
