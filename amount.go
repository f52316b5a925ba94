package resto

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

var (
	errAmountOverflow   = errors.New("amount overflow")
	errNegativeAmount   = errors.New("negative amount")
	errEmptyInput       = errors.New("empty input")
	errCurrencyMismatch = errors.New("currency mismatch")
)

// Amount type represents a non-negative monetary amount in EUR or BGN.
// Its zero value corresponds to "EUR 0".
// The value of an amount always has exactly two digits after the decimal point.
// Amount is designed to be safe for concurrent use by multiple goroutines.
type Amount struct {
	curr  Currency        // EUR or BGN
	value decimal.Decimal // monetary value, scale 2
}

// newAmountUnsafe creates a new amount without rounding or sign checks.
// Use it only if you are absolutely sure that the value is already in cents.
func newAmountUnsafe(c Currency, d decimal.Decimal) Amount {
	return Amount{curr: c, value: d}
}

// NewAmount returns an amount of the given currency, rounded half away from
// zero to the cent.
//
// NewAmount returns an error if:
//   - the currency is not [EUR] or [BGN];
//   - the value is negative;
//   - the integer part of the value has more than 17 digits.
func NewAmount(curr Currency, value decimal.Decimal) (Amount, error) {
	if !curr.valid() {
		return Amount{}, errInvalidCurrency
	}
	if value.IsNeg() {
		return Amount{}, fmt.Errorf("%w: %v", errNegativeAmount, value)
	}
	d, err := roundHalfUp(value, curr.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("rounding %v: %w", value, err)
	}
	return newAmountUnsafe(curr, d), nil
}

// MustNewAmount is like [NewAmount] but panics if the amount cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNewAmount(curr Currency, value decimal.Decimal) Amount {
	a, err := NewAmount(curr, value)
	if err != nil {
		panic(fmt.Sprintf("NewAmount(%v, %v) failed: %v", curr, value, err))
	}
	return a
}

// NewAmountFromFloat64 converts a float to an amount rounded to the cent.
// The float is first converted to its shortest decimal representation,
// so NewAmountFromFloat64(EUR, 0.1) is exactly "EUR 0.10".
// See also method [Amount.Float64].
//
// NewAmountFromFloat64 returns an error if the float is a special value
// (NaN or Inf), is negative, or is out of range.
func NewAmountFromFloat64(curr Currency, amount float64) (Amount, error) {
	d, err := decimalFromFloat64(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("converting float: %w", err)
	}
	return NewAmount(curr, d)
}

// ParseInput converts user input to an amount rounded to the cent.
// Leading and trailing whitespace is ignored and a single ',' is accepted
// as the decimal separator, so both "10.50" and " 10,50 " are valid.
// See also function [ParseAmount], the lenient counterpart.
//
// ParseInput returns an error if the input is empty, is not a number,
// or is negative.
func ParseInput(curr Currency, input string) (Amount, error) {
	d, err := parseDecimal(input)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	a, err := NewAmount(curr, d)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return a, nil
}

// MustParseInput is like [ParseInput] but panics if the input cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseInput(curr Currency, input string) Amount {
	a, err := ParseInput(curr, input)
	if err != nil {
		panic(fmt.Sprintf("ParseInput(%v, %q) failed: %v", curr, input, err))
	}
	return a
}

// parseDecimal normalizes the decimal separator and parses the input.
// Only the first ',' is replaced; "1,000,50" is rejected.
func parseDecimal(input string) (decimal.Decimal, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return decimal.Decimal{}, errEmptyInput
	}
	s = strings.Replace(s, ",", ".", 1)
	return decimal.Parse(s)
}

func decimalFromFloat64(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, fmt.Errorf("special value %v", f)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	return decimal.Parse(s)
}

// roundHalfUp rounds d to the given number of digits after the decimal point
// using rounding half away from zero.
// The result always has exactly that many digits after the decimal point.
func roundHalfUp(d decimal.Decimal, scale int) (decimal.Decimal, error) {
	if d.Scale() <= scale {
		e := d.Pad(scale)
		if e.Scale() < scale {
			return decimal.Decimal{}, errAmountOverflow
		}
		return e, nil
	}
	half, err := decimal.New(5, scale+1)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d.IsNeg() {
		half = half.Neg()
	}
	e, err := d.Add(half)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return e.Trunc(scale).Pad(scale), nil
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Decimal returns the decimal representation of the amount.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Float64 returns the nearest binary floating-point number.
// See also constructor [NewAmountFromFloat64].
//
// This conversion may lose data, as float64 has a smaller precision
// than the decimal type.
func (a Amount) Float64() (f float64, ok bool) {
	return a.Decimal().Float64()
}

// MinorUnits returns the amount in cents or stotinki.
// If the result cannot be represented as an int64, then false is returned.
func (a Amount) MinorUnits() (units int64, ok bool) {
	u := a.Decimal().Pad(a.Curr().Scale()).Coef()
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// IsZero returns:
//
//	true  if a == 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.Decimal().IsZero()
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Amount) IsPos() bool {
	return a.Decimal().IsPos()
}

// SameCurr returns true if amounts are denominated in the same currency.
func (a Amount) SameCurr(b Amount) bool {
	return a.Curr() == b.Curr()
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Cmp returns an error if amounts are denominated in different currencies.
func (a Amount) Cmp(b Amount) (int, error) {
	if !a.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, errCurrencyMismatch)
	}
	return a.Decimal().Cmp(b.Decimal()), nil
}

// Conv returns the amount expressed in the given currency at the [Peg] rate.
// Converting to the currency of the amount returns the amount unchanged.
func (a Amount) Conv(curr Currency) (Amount, error) {
	if a.Curr() == curr {
		return a, nil
	}
	return Peg.Conv(a)
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the amount, such as "BGN 90.00".
// See also method [Amount.Display].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.Curr().Code() + " " + a.Decimal().String()
}

// Display returns the amount followed by the currency symbol,
// such as "90.00 лв" or "46.02 €".
func (a Amount) Display() string {
	return a.Decimal().String() + " " + a.Curr().Symbol()
}
