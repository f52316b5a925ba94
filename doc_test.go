package resto_test

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
	"github.com/govalues/resto"
)

// In this example, a customer pays an 8 euro bill with a 20 leva note
// and receives the change in euro, with the leva equivalent for reference.
func Example_mixedPayment() {
	price := resto.MustParseInput(resto.EUR, "8")
	paid := resto.MustParseInput(resto.BGN, "20")

	change, err := resto.Settle(price, paid)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Price  = %v\n", price)
	fmt.Printf("Paid   = %v\n", paid)
	fmt.Printf("Change = %v\n", change.EUR.Display())
	fmt.Printf("       = %v\n", change.BGN.Display())
	// Output:
	// Price  = EUR 8.00
	// Paid   = BGN 20.00
	// Change = 2.23 €
	//        = 4.36 лв
}

// In this example, both the price and the payment are in leva, so the
// change in leva is exact and no conversion round trip distorts it.
func Example_sameCurrency() {
	price := resto.MustParseInput(resto.BGN, "10")
	paid := resto.MustParseInput(resto.BGN, "100")

	change, err := resto.Settle(price, paid)
	if err != nil {
		panic(err)
	}
	fmt.Println(change)
	// Output: EUR 46.02 / BGN 90.00
}

// In this example, a till derives what to show from the raw fields.
func Example_till() {
	in := resto.NewInput()
	in.Price = "10"
	in.Paid = "5"
	fmt.Println(in.Derive().Outcome())

	in.Paid = "19,56"
	fmt.Println(in.Derive().Outcome())

	in.Paid = "50"
	d := in.Derive()
	fmt.Println(d.Outcome(), d.Change.EUR.Display())
	// Output:
	// insufficient_payment
	// exact_payment
	// change_due 15.56 €
}

func ExampleSettle() {
	price := resto.MustParseInput(resto.EUR, "10")
	paid := resto.MustParseInput(resto.BGN, "5")

	_, err := resto.Settle(price, paid)
	fmt.Println(errors.Is(err, resto.ErrInsufficientPayment))
	// Output: true
}

func ExampleSettleEUR() {
	change, err := resto.SettleEUR(decimal.MustParse("0.1"), decimal.MustParse("0.4"))
	if err != nil {
		panic(err)
	}
	fmt.Println(change)
	// Output: EUR 0.30 / BGN 0.59
}

func ExampleParseInput() {
	fmt.Println(resto.ParseInput(resto.BGN, " 10,50 "))
	fmt.Println(resto.ParseInput(resto.BGN, "-10"))
	// Output:
	// BGN 10.50 <nil>
	// EUR 0 parsing amount: negative amount: -10
}

func ExampleParseAmount() {
	fmt.Println(resto.ParseAmount("10,50"))
	fmt.Println(resto.ParseAmount("abc"))
	fmt.Println(resto.ParseAmount("-10"))
	// Output:
	// 10.5
	// 0
	// 0
}

func ExampleBGNToEUR() {
	fmt.Println(resto.BGNToEUR(1.95583))
	fmt.Println(resto.BGNToEUR(100))
	// Output:
	// 1
	// 51.13
}

func ExampleEURToBGN() {
	fmt.Println(resto.EURToBGN(1))
	fmt.Println(resto.EURToBGN(100))
	// Output:
	// 1.96
	// 195.58
}

func ExampleCalculateChangeWithCurrencies() {
	change, ok := resto.CalculateChangeWithCurrencies(10, resto.BGN, 100, resto.BGN)
	fmt.Println(change.Float64())
	fmt.Println(ok)
	// Output:
	// 46.02 90
	// true
}

func ExampleCalculateChange() {
	_, ok := resto.CalculateChange(10, 9.99)
	fmt.Println(ok)
	change, ok := resto.CalculateChange(10, 10)
	fmt.Println(change.IsZero(), ok)
	// Output:
	// false
	// true true
}

func ExampleFormatAmount() {
	fmt.Println(resto.FormatAmount(10.5))
	fmt.Println(resto.FormatAmountScale(10.12345, 3))
	// Output:
	// 10.50
	// 10.123
}

func ExampleExchangeRate_Conv() {
	a := resto.MustParseInput(resto.EUR, "90")
	b, err := resto.Peg.Conv(a)
	if err != nil {
		panic(err)
	}
	fmt.Println(resto.Peg)
	fmt.Println(b)
	// Output:
	// EUR/BGN 1.95583
	// BGN 176.02
}

func ExampleCurrency_Other() {
	fmt.Println(resto.EUR.Other(), resto.BGN.Other())
	// Output: BGN EUR
}

func ExampleCurrency_Symbol() {
	fmt.Println(resto.EUR.Symbol(), resto.BGN.Symbol())
	// Output: € лв
}
