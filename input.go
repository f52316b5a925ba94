package resto

import (
	"github.com/govalues/decimal"
)

// Outcome describes what a till should show for a pair of inputs.
type Outcome uint8

const (
	Awaiting     Outcome = iota // price or payment missing
	Insufficient                // payment does not cover the price
	Exact                       // payment equals the price
	ChangeDue                   // change must be returned
)

var outcomeNames = [...]string{
	Awaiting:     "awaiting_input",
	Insufficient: "insufficient_payment",
	Exact:        "exact_payment",
	ChangeDue:    "change_due",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Input holds the raw values entered at the till.
// Input is a value type; methods return modified copies.
type Input struct {
	Price     string
	PriceCurr Currency
	Paid      string
	PaidCurr  Currency
}

// NewInput returns an empty input with prices in EUR and payments in BGN,
// the most common situation during the transition.
func NewInput() Input {
	return Input{PriceCurr: EUR, PaidCurr: BGN}
}

// TogglePriceCurr switches the price currency between EUR and BGN.
func (in Input) TogglePriceCurr() Input {
	in.PriceCurr = in.PriceCurr.Other()
	return in
}

// TogglePaidCurr switches the payment currency between EUR and BGN.
func (in Input) TogglePaidCurr() Input {
	in.PaidCurr = in.PaidCurr.Other()
	return in
}

// Reset returns the initial input.
func (in Input) Reset() Input {
	return NewInput()
}

// Derived holds the values computed from an [Input].
type Derived struct {
	Price      Amount // parsed price, in the price currency
	Paid       Amount // parsed payment, in the payment currency
	PriceEUR   Amount
	PaidEUR    Amount
	Change     Change
	Sufficient bool // payment covers the price
	Valid      bool // both price and payment are positive
}

// Derive parses the input and computes the change.
// The result depends only on the input; invalid numbers count as zero.
// Change is zero in both currencies unless the input is valid and the
// payment covers the price.
func (in Input) Derive() Derived {
	r := Derived{Change: noChange}
	price, priceOK := lenientAmount(in.PriceCurr, in.Price)
	paid, paidOK := lenientAmount(in.PaidCurr, in.Paid)
	r.Price, r.Paid = price, paid
	r.Valid = priceOK && paidOK
	r.PriceEUR, _ = price.Conv(EUR)
	r.PaidEUR, _ = paid.Conv(EUR)
	if !r.Valid {
		return r
	}
	c, err := Settle(price, paid)
	if err != nil {
		// Insufficient, or too large to settle.
		return r
	}
	r.Change, r.Sufficient = c, true
	return r
}

// Outcome classifies the derived values.
func (d Derived) Outcome() Outcome {
	switch {
	case !d.Valid:
		return Awaiting
	case !d.Sufficient:
		return Insufficient
	case d.Change.EUR.IsZero():
		return Exact
	default:
		return ChangeDue
	}
}

// lenientAmount parses input the way [ParseAmount] does and reports
// whether the raw value was positive.
func lenientAmount(curr Currency, input string) (Amount, bool) {
	d, err := parseDecimal(input)
	if err != nil || !d.IsPos() {
		return newAmountUnsafe(curr, decimal.Decimal{}.Pad(curr.Scale())), false
	}
	a, err := NewAmount(curr, d)
	if err != nil {
		return newAmountUnsafe(curr, decimal.Decimal{}.Pad(curr.Scale())), false
	}
	return a, true
}
