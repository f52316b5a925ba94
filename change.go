package resto

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
)

// ErrInsufficientPayment is returned when the payment does not cover the price.
// It is distinct from a zero [Change], which means the payment is exact.
var ErrInsufficientPayment = errors.New("insufficient payment")

// Change represents the change owed, expressed in both currencies.
// Either BGN is the [Peg] conversion of EUR, or, when price and payment
// share a currency, the amount in that currency is exact and the other one
// is converted from it.
type Change struct {
	EUR Amount
	BGN Amount
}

// noChange is returned alongside errors.
var noChange = Change{
	EUR: newAmountUnsafe(EUR, decimal.Decimal{}.Pad(EUR.Scale())),
	BGN: newAmountUnsafe(BGN, decimal.Decimal{}.Pad(BGN.Scale())),
}

// IsZero returns true if the payment exactly covers the price.
func (c Change) IsZero() bool {
	return c.EUR.IsZero() && c.BGN.IsZero()
}

// In returns the change in the given currency.
func (c Change) In(curr Currency) Amount {
	if curr == BGN {
		return c.BGN
	}
	return c.EUR
}

// Float64 returns both amounts as floats.
func (c Change) Float64() (eur, bgn float64) {
	eur, _ = c.EUR.Float64()
	bgn, _ = c.BGN.Float64()
	return eur, bgn
}

// String method implements the [fmt.Stringer] interface.
func (c Change) String() string {
	return c.EUR.String() + " / " + c.BGN.String()
}

// Settle returns the change owed when price is paid with paid.
//
// When both amounts share a currency, the difference is computed directly
// in that currency, so 100 BGN - 10 BGN is exactly 90 BGN, and the other
// currency is converted from the rounded difference.
// Otherwise both amounts are converted to EUR first.
//
// Settle returns [ErrInsufficientPayment] if paid is less than price.
func Settle(price, paid Amount) (Change, error) {
	if price.SameCurr(paid) {
		c, err := settleIn(price.Curr(), price.Decimal(), paid.Decimal())
		if err != nil {
			return noChange, fmt.Errorf("settling [%v] with [%v]: %w", price, paid, err)
		}
		return c, nil
	}
	p, err := price.Conv(EUR)
	if err != nil {
		return noChange, fmt.Errorf("settling [%v] with [%v]: %w", price, paid, err)
	}
	q, err := paid.Conv(EUR)
	if err != nil {
		return noChange, fmt.Errorf("settling [%v] with [%v]: %w", price, paid, err)
	}
	c, err := settleIn(EUR, p.Decimal(), q.Decimal())
	if err != nil {
		return noChange, fmt.Errorf("settling [%v] with [%v]: %w", price, paid, err)
	}
	return c, nil
}

// SettleEUR returns the change owed for a price and a payment that have
// already been normalized to EUR.
// The difference is rounded to the cent and the BGN amount is converted
// from the rounded EUR amount.
//
// SettleEUR returns [ErrInsufficientPayment] if paid is less than price.
func SettleEUR(price, paid decimal.Decimal) (Change, error) {
	c, err := settleIn(EUR, price, paid)
	if err != nil {
		return noChange, fmt.Errorf("settling [%v] with [%v]: %w", price, paid, err)
	}
	return c, nil
}

// settleIn subtracts price from paid in the given currency.
// The sign is checked before rounding, so a shortfall of a fraction of
// a cent is still insufficient.
func settleIn(curr Currency, price, paid decimal.Decimal) (Change, error) {
	d, err := paid.Sub(price)
	if err != nil {
		return noChange, err
	}
	if d.IsNeg() {
		return noChange, ErrInsufficientPayment
	}
	d, err = roundHalfUp(d, curr.Scale())
	if err != nil {
		return noChange, err
	}
	a := newAmountUnsafe(curr, d)
	b, err := Peg.Conv(a)
	if err != nil {
		return noChange, err
	}
	if curr == BGN {
		return Change{EUR: b, BGN: a}, nil
	}
	return Change{EUR: a, BGN: b}, nil
}
