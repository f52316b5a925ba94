package resto

import (
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

// ParseAmount converts user input to a float, treating anything that is
// not a non-negative number as zero.
// Leading and trailing whitespace is ignored and a single ',' is accepted
// as the decimal separator.
// Unlike [ParseInput], the value is not rounded to the cent.
//
//	ParseAmount("10,50") // 10.5
//	ParseAmount("-10")   // 0
//	ParseAmount("abc")   // 0
func ParseAmount(input string) float64 {
	d, err := parseDecimal(input)
	if err != nil || d.IsNeg() {
		return 0
	}
	return toFloat(d)
}

// BGNToEUR converts an amount in BGN to EUR at the [Peg] rate,
// rounded half away from zero to the cent.
// NaN, infinities, and out-of-range values yield 0.
func BGNToEUR(bgn float64) float64 {
	d, err := decimalFromFloat64(bgn)
	if err != nil {
		return 0
	}
	e, err := Peg.quo(d)
	if err != nil {
		return 0
	}
	return toFloat(e)
}

// EURToBGN converts an amount in EUR to BGN at the [Peg] rate,
// rounded half away from zero to the cent.
// NaN, infinities, and out-of-range values yield 0.
func EURToBGN(eur float64) float64 {
	d, err := decimalFromFloat64(eur)
	if err != nil {
		return 0
	}
	e, err := Peg.mul(d)
	if err != nil {
		return 0
	}
	return toFloat(e)
}

// ToEUR converts an amount given in currency curr to EUR.
// Amounts already in EUR are only rounded to the cent.
func ToEUR(amount float64, curr Currency) float64 {
	if curr == EUR {
		return roundFloat(amount)
	}
	return BGNToEUR(amount)
}

// ToBGN converts an amount given in currency curr to BGN.
// Amounts already in BGN are only rounded to the cent.
func ToBGN(amount float64, curr Currency) float64 {
	if curr == BGN {
		return roundFloat(amount)
	}
	return EURToBGN(amount)
}

// CalculateChange returns the change owed for a price and a payment
// already expressed in EUR.
// If the payment is insufficient, ok is false.
// A zero change with ok set to true means the payment is exact.
// NaN and infinities are treated as zero.
// Finite values too large to be held to the cent also give ok = false.
func CalculateChange(priceEUR, paidEUR float64) (c Change, ok bool) {
	price, ok := floatOperand(priceEUR)
	if !ok {
		return noChange, false
	}
	paid, ok := floatOperand(paidEUR)
	if !ok {
		return noChange, false
	}
	c, err := SettleEUR(price, paid)
	if err != nil {
		return noChange, false
	}
	return c, true
}

// CalculateChangeWithCurrencies returns the change owed for a price and
// a payment given in their original currencies.
// It should be preferred over [CalculateChange] since it avoids
// conversions when both amounts share a currency.
// See [Settle] for the calculation rules.
// If the payment is insufficient, ok is false.
// Finite values too large to be held to the cent also give ok = false.
func CalculateChangeWithCurrencies(price float64, priceCurr Currency, paid float64, paidCurr Currency) (c Change, ok bool) {
	p, ok := floatOperand(price)
	if !ok {
		return noChange, false
	}
	q, ok := floatOperand(paid)
	if !ok {
		return noChange, false
	}
	var err error
	if priceCurr == paidCurr {
		c, err = settleIn(priceCurr, p, q)
	} else {
		if p, err = toEURCents(p, priceCurr); err != nil {
			return noChange, false
		}
		if q, err = toEURCents(q, paidCurr); err != nil {
			return noChange, false
		}
		c, err = settleIn(EUR, p, q)
	}
	if err != nil {
		return noChange, false
	}
	return c, true
}

// FormatAmount renders an amount with two digits after the decimal point,
// rounding half away from zero.
// NaN and infinities are rendered as "0.00".
func FormatAmount(amount float64) string {
	return FormatAmountScale(amount, 2)
}

// FormatAmountScale renders an amount with the given number of digits after
// the decimal point, rounding half away from zero.
// The scale is clamped to the range [0, 19].
// NaN and infinities are rendered as zero with the given scale.
// Values with too many digits for a decimal are formatted from the float.
func FormatAmountScale(amount float64, scale int) string {
	scale = max(0, min(scale, decimal.MaxScale))
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return decimal.Decimal{}.Pad(scale).String()
	}
	d, err := decimalFromFloat64(amount)
	if err != nil {
		return strconv.FormatFloat(amount, 'f', scale, 64)
	}
	e, err := roundHalfUp(d, scale)
	if err != nil {
		return strconv.FormatFloat(amount, 'f', scale, 64)
	}
	return e.String()
}

// floatOperand converts a float to a decimal, treating NaN and infinities
// as zero. It reports false for finite values out of the decimal range.
func floatOperand(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, true
	}
	d, err := decimalFromFloat64(f)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// toEURCents converts d from curr to EUR, rounded to the cent.
func toEURCents(d decimal.Decimal, curr Currency) (decimal.Decimal, error) {
	if curr == EUR {
		return roundHalfUp(d, EUR.Scale())
	}
	return Peg.quo(d)
}

func roundFloat(f float64) float64 {
	d, err := decimalFromFloat64(f)
	if err != nil {
		return 0
	}
	e, err := roundHalfUp(d, 2)
	if err != nil {
		return 0
	}
	return toFloat(e)
}

func toFloat(d decimal.Decimal) float64 {
	f, ok := d.Float64()
	if !ok {
		return 0
	}
	return f
}
