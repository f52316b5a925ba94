package resto

import (
	"errors"
	"fmt"
)

// Currency type represents one of the two currencies in circulation during
// Bulgaria's adoption of the Euro.
// The zero value is [EUR].
//
// Currency is implemented as an integer index into in-memory arrays that
// store properties such as code and symbol, which makes it safe for
// concurrent use by multiple goroutines.
//
// When persisting a currency value, use the alphabetic code returned by
// the [Currency.Code] method rather than the integer index.
type Currency uint8

const (
	EUR Currency = iota // Euro
	BGN                 // Bulgarian Lev
)

var (
	codeLookup   = [...]string{EUR: "EUR", BGN: "BGN"}
	numLookup    = [...]string{EUR: "978", BGN: "975"}
	symbolLookup = [...]string{EUR: "€", BGN: "лв"}
	nameLookup   = [...]string{EUR: "Евро", BGN: "Лева"}
	currLookup   = map[string]Currency{
		"EUR": EUR, "eur": EUR, "978": EUR,
		"BGN": BGN, "bgn": BGN, "975": BGN,
	}
)

var errInvalidCurrency = errors.New("invalid currency")

// ParseCurr converts a string to currency.
// The input string must be in one of the following formats:
//
//	EUR
//	eur
//	978
//
// ParseCurr returns an error if the string does not represent EUR or BGN.
func ParseCurr(curr string) (Currency, error) {
	c, ok := currLookup[curr]
	if !ok {
		return EUR, fmt.Errorf("%w: %q", errInvalidCurrency, curr)
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

func (c Currency) valid() bool {
	return int(c) < len(codeLookup)
}

// String method implements the [fmt.Stringer] interface and returns
// the 3-letter code of the currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// Code returns the [3-letter code] assigned to the currency by the ISO 4217 standard.
// For values outside the enumeration the method returns "???".
//
// [3-letter code]: https://en.wikipedia.org/wiki/ISO_4217#National_currencies
func (c Currency) Code() string {
	if !c.valid() {
		return "???"
	}
	return codeLookup[c]
}

// Num returns the [3-digit code] assigned to the currency by the ISO 4217 standard.
//
// [3-digit code]: https://en.wikipedia.org/wiki/ISO_4217#Numeric_codes
func (c Currency) Num() string {
	if !c.valid() {
		return ""
	}
	return numLookup[c]
}

// Symbol returns the sign shown next to amounts, "€" or "лв".
func (c Currency) Symbol() string {
	if !c.valid() {
		return ""
	}
	return symbolLookup[c]
}

// Name returns the Bulgarian name of the currency.
func (c Currency) Name() string {
	if !c.valid() {
		return ""
	}
	return nameLookup[c]
}

// Scale returns the number of digits after the decimal point required for
// representing the minor unit of the currency.
// Both the euro cent and the stotinka are hundredths, so the scale is always 2.
func (c Currency) Scale() int {
	return 2
}

// Other returns the opposite currency of the pair.
func (c Currency) Other() Currency {
	if c == EUR {
		return BGN
	}
	return EUR
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", EUR, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText always returns a 3-letter code.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("marshaling %T(%d): %w", EUR, uint8(c), errInvalidCurrency)
	}
	return []byte(c.Code()), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return c.UnmarshalText(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	code, err := c.MarshalText()
	if err != nil {
		return nil, err
	}
	text := make([]byte, 0, len(code)+2)
	text = append(text, '"')
	text = append(text, code...)
	text = append(text, '"')
	return text, nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | BGN     | Currency        |
//	| %q         | "BGN"   | Quoted currency |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	curr := c.Code()
	if verb == 'q' || verb == 'Q' {
		curr = `"` + curr + `"`
	}

	// Padding
	if w, ok := state.Width(); ok && w > len(curr) {
		pad := make([]byte, w-len(curr))
		for i := range pad {
			pad[i] = ' '
		}
		if state.Flag('-') {
			curr += string(pad)
		} else {
			curr = string(pad) + curr
		}
	}

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		state.Write([]byte(curr))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(resto.Currency="))
		state.Write([]byte(curr))
		state.Write([]byte(")"))
	}
}
