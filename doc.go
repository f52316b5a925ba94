/*
Package resto computes the change owed at a till during Bulgaria's transition
to the Euro, when prices and payments may be given in either Euro (EUR) or
Bulgarian Lev (BGN).
It leverages the [decimal] package for decimal floating-point arithmetic and
combines it with a [Currency] enumeration restricted to the two currencies
of the transition.

# Features

  - Immutable values, safe for concurrent use by multiple goroutines
  - Conversion at the irrevocable rate 1 EUR = 1.95583 BGN
  - Rounding half away from zero to the cent
  - Exact change when price and payment share a currency
  - Lenient parsing of user input with either '.' or ',' as separator

# Representation

An [Amount] consists of a [Currency] and a decimal.Decimal value that is
always held at exactly two digits after the decimal point.
Amounts are never negative.
The fixed conversion rate is available as [Peg], an [ExchangeRate] whose
base currency is EUR and whose quote currency is BGN.

# Rounding

Every observable value is rounded to the cent using rounding half away from
zero, so 10.125 becomes 10.13.
Intermediate results keep the full 19-digit precision of the [decimal]
package, and are rounded once at the end of each conversion.

# Float API

Presentation layers working with float64 values can use [ParseAmount],
[BGNToEUR], [EURToBGN], [ToEUR], [ToBGN], [CalculateChange],
[CalculateChangeWithCurrencies], and [FormatAmount].
These functions are total: NaN, infinities, and unparsable input are
treated as zero, and insufficient payment is reported through a boolean
rather than an error.
Floats only exist at this boundary; they are converted to decimals using
their shortest decimal representation before any arithmetic happens.

# Errors

The decimal API ([NewAmount], [ParseInput], [Settle], [ExchangeRate.Conv])
returns errors for invalid input and for arithmetic overflow.
Insufficient payment is reported as [ErrInsufficientPayment].
*/
package resto
