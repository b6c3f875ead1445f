package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrListLedgerEntriesQueryIsNotConstructed = errors.New(
	"ListLedgerEntriesQuery must be created via NewListLedgerEntriesQuery constructor",
)

// ListLedgerEntriesQuery retrieves one party's financial history, newest
// first. The ledger is append-only, so the history never shrinks.
type ListLedgerEntriesQuery struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListLedgerEntriesQuery creates a query for a party's ledger history.
func NewListLedgerEntriesQuery(ownerID kernel.UUID) (ListLedgerEntriesQuery, error) {
	query := ListLedgerEntriesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOwnerID(ownerID); err != nil {
		return ListLedgerEntriesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListLedgerEntriesQuery) Validate() error {
	return q.guard.Validate(ErrListLedgerEntriesQueryIsNotConstructed)
}

// OwnerID returns the party whose ledger is listed.
func (q ListLedgerEntriesQuery) OwnerID() kernel.UUID { return q.ownerID }

func (q *ListLedgerEntriesQuery) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	q.ownerID = ownerID
	return nil
}

// ListLedgerEntriesQueryResponse is one ledger row. Kind is "credit" for
// money received and "debit" for money spent.
type ListLedgerEntriesQueryResponse struct {
	ID             kernel.UUID
	Kind           string
	Description    string
	AmountCents    int64
	Category       string
	RelatedOrderID *kernel.UUID
	CreatedAt      time.Time
}
