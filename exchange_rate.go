package resto

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
)

// Peg is the irrevocable conversion rate fixed by the Council of the European
// Union for Bulgaria's adoption of the Euro: 1 EUR = 1.95583 BGN.
var Peg = MustParseExchRate("EUR", "BGN", "1.95583")

var errSameCurrency = errors.New("base and quote currencies must differ")

// ExchangeRate represents an exchange rate between the two currencies.
// The zero value is not usable; construct rates with [NewExchRate] or
// [ParseExchRate], or use [Peg].
// This type is designed to be safe for concurrent use by multiple goroutines.
type ExchangeRate struct {
	base  Currency        // currency being exchanged
	quote Currency        // currency being obtained in exchange for the base currency
	value decimal.Decimal // how many units of quote currency are needed to exchange for 1 unit of the base currency
}

// NewExchRate returns a new exchange rate between the base and quote currencies.
//
// NewExchRate returns an error if the rate is not positive or if the
// currencies are the same.
func NewExchRate(base, quote Currency, rate decimal.Decimal) (ExchangeRate, error) {
	if !base.valid() || !quote.valid() {
		return ExchangeRate{}, errInvalidCurrency
	}
	if base == quote {
		return ExchangeRate{}, errSameCurrency
	}
	if !rate.IsPos() {
		return ExchangeRate{}, fmt.Errorf("exchange rate must be positive")
	}
	return ExchangeRate{base: base, quote: quote, value: rate}, nil
}

// ParseExchRate converts currency and decimal strings to an exchange rate.
// See also methods [ParseCurr] and [decimal.Parse].
func ParseExchRate(base, quote, rate string) (ExchangeRate, error) {
	b, err := ParseCurr(base)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("base currency parsing: %w", err)
	}
	q, err := ParseCurr(quote)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("quote currency parsing: %w", err)
	}
	d, err := decimal.Parse(rate)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("rate parsing: %w", err)
	}
	r, err := NewExchRate(b, q, d)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("rate construction: %w", err)
	}
	return r, nil
}

// MustParseExchRate is like [ParseExchRate] but panics if any of the strings cannot be parsed.
// It simplifies safe initialization of global variables holding exchange rates.
func MustParseExchRate(base, quote, rate string) ExchangeRate {
	r, err := ParseExchRate(base, quote, rate)
	if err != nil {
		panic(fmt.Sprintf("ParseExchRate(%q, %q, %q) failed: %v", base, quote, rate, err))
	}
	return r
}

// Base returns the currency being exchanged.
func (r ExchangeRate) Base() Currency {
	return r.base
}

// Quote returns the currency being obtained in exchange for the base currency.
func (r ExchangeRate) Quote() Currency {
	return r.quote
}

// Decimal returns the decimal representation of the exchange rate.
func (r ExchangeRate) Decimal() decimal.Decimal {
	return r.value
}

// CanConv returns true if [ExchangeRate.Conv] can be used to convert the given amount.
func (r ExchangeRate) CanConv(b Amount) bool {
	return (b.Curr() == r.Base() || b.Curr() == r.Quote()) &&
		r.Base() != r.Quote() &&
		r.value.IsPos()
}

// Conv converts the amount to the other currency of the rate.
// Amounts in the base currency are multiplied by the rate, amounts in the
// quote currency are divided by it.
// The result is rounded half away from zero to the cent, after the full
// precision product or quotient has been computed.
//
// Conv returns an error if the rate cannot convert the amount or
// if the result overflows.
func (r ExchangeRate) Conv(b Amount) (Amount, error) {
	if !r.CanConv(b) {
		return Amount{}, fmt.Errorf("%v.Conv(%v): %w", r, b, errCurrencyMismatch)
	}
	if b.Curr() == r.Base() {
		d, err := r.mul(b.Decimal())
		if err != nil {
			return Amount{}, fmt.Errorf("converting %v: %w", b, err)
		}
		return newAmountUnsafe(r.Quote(), d), nil
	}
	d, err := r.quo(b.Decimal())
	if err != nil {
		return Amount{}, fmt.Errorf("converting %v: %w", b, err)
	}
	return newAmountUnsafe(r.Base(), d), nil
}

// mul converts a base currency value to the quote currency.
// Unlike Conv, it does not require the value to be non-negative.
func (r ExchangeRate) mul(d decimal.Decimal) (decimal.Decimal, error) {
	e, err := d.Mul(r.value)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return roundHalfUp(e, r.Quote().Scale())
}

// quo converts a quote currency value to the base currency.
func (r ExchangeRate) quo(d decimal.Decimal) (decimal.Decimal, error) {
	e, err := d.Quo(r.value)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return roundHalfUp(e, r.Base().Scale())
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the exchange rate, such as "EUR/BGN 1.95583".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r ExchangeRate) String() string {
	return r.Base().Code() + "/" + r.Quote().Code() + " " + r.value.String()
}
