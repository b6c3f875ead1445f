package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Money is a value object holding a monetary amount in minor currency units
// (cents). Keeping amounts integral sidesteps floating-point drift in the
// quantity × price arithmetic the order and ledger invariants depend on.
//
// The zero value is a valid amount of zero. Negative amounts are rejected by
// NewMoney; arithmetic that could produce a negative result returns an error
// instead of silently underflowing.
type Money struct {
	cents int64
}

// NewMoney creates a Money value from minor units.
// Returns an error for negative amounts.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money amount",
			fmt.Errorf("%d is negative", cents),
		)
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return m.cents
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// MultiplyQuantity returns the amount multiplied by a line quantity.
func (m Money) MultiplyQuantity(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is negative", quantity),
		)
	}
	return Money{cents: m.cents * int64(quantity)}, nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount as a decimal with two fractional digits.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
