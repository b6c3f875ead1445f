package receipt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrReceiptIsNotConstructed is returned when a Receipt instance was not
	// created through the NewReceipt factory method.
	ErrReceiptIsNotConstructed = errors.New("Receipt must be created via NewReceipt constructor")
)

// Receipt is the single-use delivery confirmation artifact for one order.
// It carries an immutable snapshot of the order's lines and a globally unique
// code; confirming it by code is the only entry point that credits the
// buyer's personal stock ledger, and it can succeed exactly once.
//
// The confirmed flag is the exactly-once guard: a second confirmation attempt
// observes confirmed==true and is rejected before any crediting happens.
type Receipt struct {
	id          kernel.UUID
	code        string
	orderID     kernel.UUID
	buyerID     kernel.UUID
	depotID     kernel.UUID
	lines       []SnapshotLine
	total       kernel.Money
	confirmed   bool
	confirmedAt *time.Time
	createdAt   time.Time

	isConstructed bool
}

// GenerateCode builds a receipt code from the creation time plus a random
// suffix. Collisions are treated as negligible; the store's uniqueness
// constraint on the code column is the real guarantee.
func GenerateCode(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("RCP-%s-%s", now.UTC().Format("20060102150405"), suffix)
}

// NewReceipt creates an unconfirmed receipt with the given snapshot lines.
// The total is computed from the snapshot, mirroring the order total at
// creation time.
func NewReceipt(
	id kernel.UUID,
	code string,
	orderID kernel.UUID,
	buyerID kernel.UUID,
	depotID kernel.UUID,
	lines []SnapshotLine,
	createdAt time.Time,
) (*Receipt, error) {
	r := &Receipt{
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setCode(code),
		r.setOrderID(orderID),
		r.setBuyerID(buyerID),
		r.setDepotID(depotID),
		r.setLines(lines),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReceipt rehydrates a receipt from persistence.
func RestoreReceipt(
	id kernel.UUID,
	code string,
	orderID kernel.UUID,
	buyerID kernel.UUID,
	depotID kernel.UUID,
	lines []SnapshotLine,
	confirmed bool,
	confirmedAt *time.Time,
	createdAt time.Time,
) (*Receipt, error) {
	r, err := NewReceipt(id, code, orderID, buyerID, depotID, lines, createdAt)
	if err != nil {
		return nil, err
	}

	r.confirmed = confirmed
	r.confirmedAt = confirmedAt
	return r, nil
}

// Validate ensures the Receipt was constructed through NewReceipt.
func (r *Receipt) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReceiptIsNotConstructed
	}
	return nil
}

// ID returns the receipt's unique identifier.
func (r *Receipt) ID() kernel.UUID { return r.id }

// Code returns the globally unique confirmation code.
func (r *Receipt) Code() string { return r.code }

// OrderID returns the order the receipt confirms.
func (r *Receipt) OrderID() kernel.UUID { return r.orderID }

// BuyerID returns the receiving party whose stock ledger gets credited.
func (r *Receipt) BuyerID() kernel.UUID { return r.buyerID }

// DepotID returns the fulfilling depot.
func (r *Receipt) DepotID() kernel.UUID { return r.depotID }

// Lines returns a copy of the immutable line snapshot.
func (r *Receipt) Lines() []SnapshotLine {
	lines := make([]SnapshotLine, len(r.lines))
	copy(lines, r.lines)
	return lines
}

// Total returns the snapshot total.
func (r *Receipt) Total() kernel.Money { return r.total }

// IsConfirmed reports whether the receipt has been used.
func (r *Receipt) IsConfirmed() bool { return r.confirmed }

// ConfirmedAt returns the confirmation timestamp, if confirmed.
func (r *Receipt) ConfirmedAt() *time.Time { return r.confirmedAt }

// CreatedAt returns the creation timestamp.
func (r *Receipt) CreatedAt() time.Time { return r.createdAt }

// Confirm marks the receipt used by the given caller at the given moment.
//
// A receipt confirms at most once: a confirmed receipt yields a
// ConflictError. The confirmer must be the buyer the receipt belongs to, or
// hold the confirm-any-receipt capability.
func (r *Receipt) Confirm(confirmer kernel.Caller, now time.Time) error {
	if err := confirmer.Validate(); err != nil {
		return err
	}

	if r.confirmed {
		return errs.NewConflictError(fmt.Sprintf("receipt %s is already confirmed", r.code))
	}

	if !confirmer.ID().IsEqual(r.buyerID) &&
		!confirmer.Role().HasCapability(kernel.CapabilityConfirmAnyReceipt) {
		return errs.NewAuthorizationError("receipt can only be confirmed by its buyer")
	}

	utc := now.UTC()
	r.confirmed = true
	r.confirmedAt = &utc
	return nil
}

func (r *Receipt) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Receipt) setCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("code")
	}
	r.code = code
	return nil
}

func (r *Receipt) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Receipt) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	r.buyerID = buyerID
	return nil
}

func (r *Receipt) setDepotID(depotID kernel.UUID) error {
	if err := depotID.Validate(); err != nil {
		return err
	}
	r.depotID = depotID
	return nil
}

func (r *Receipt) setLines(lines []SnapshotLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("receipt lines")
	}

	total := kernel.Money{}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		total = total.Add(line.Subtotal())
	}

	r.lines = make([]SnapshotLine, len(lines))
	copy(r.lines, lines)
	r.total = total
	return nil
}
