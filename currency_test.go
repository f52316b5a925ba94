package resto

import (
	"encoding/json"
	"fmt"
	"testing"
)

func TestCurrency_ZeroValue(t *testing.T) {
	var got Currency
	if got != EUR {
		t.Errorf("Currency(0) = %v, want %v", got, EUR)
	}
}

func TestCurrency_Parse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			code string
			want Currency
		}{
			{"978", EUR},
			{"eur", EUR},
			{"EUR", EUR},
			{"975", BGN},
			{"bgn", BGN},
			{"BGN", BGN},
		}
		for _, tt := range tests {
			got, err := ParseCurr(tt.code)
			if err != nil {
				t.Errorf("ParseCurr(%q) failed: %v", tt.code, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseCurr(%q) = %v, want %v", tt.code, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"", "000", "USD", "Eur", "лв", "€", "XXX", " EUR",
		}
		for _, tt := range tests {
			_, err := ParseCurr(tt)
			if err == nil {
				t.Errorf("ParseCurr(%q) did not fail", tt)
			}
		}
	})
}

func TestMustParseCurr(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseCurr(\"USD\") did not panic")
			}
		}()
		MustParseCurr("USD")
	})
}

func TestCurrency_Properties(t *testing.T) {
	tests := []struct {
		curr                    Currency
		code, num, symbol, name string
		scale                   int
		other                   Currency
	}{
		{EUR, "EUR", "978", "€", "Евро", 2, BGN},
		{BGN, "BGN", "975", "лв", "Лева", 2, EUR},
	}
	for _, tt := range tests {
		if got := tt.curr.Code(); got != tt.code {
			t.Errorf("%v.Code() = %q, want %q", tt.curr, got, tt.code)
		}
		if got := tt.curr.Num(); got != tt.num {
			t.Errorf("%v.Num() = %q, want %q", tt.curr, got, tt.num)
		}
		if got := tt.curr.Symbol(); got != tt.symbol {
			t.Errorf("%v.Symbol() = %q, want %q", tt.curr, got, tt.symbol)
		}
		if got := tt.curr.Name(); got != tt.name {
			t.Errorf("%v.Name() = %q, want %q", tt.curr, got, tt.name)
		}
		if got := tt.curr.Scale(); got != tt.scale {
			t.Errorf("%v.Scale() = %v, want %v", tt.curr, got, tt.scale)
		}
		if got := tt.curr.Other(); got != tt.other {
			t.Errorf("%v.Other() = %v, want %v", tt.curr, got, tt.other)
		}
	}
}

func TestCurrency_Invalid(t *testing.T) {
	c := Currency(7)
	if got := c.Code(); got != "???" {
		t.Errorf("Currency(7).Code() = %q, want %q", got, "???")
	}
	if _, err := c.MarshalText(); err == nil {
		t.Errorf("Currency(7).MarshalText() did not fail")
	}
}

func TestCurrency_Format(t *testing.T) {
	tests := []struct {
		curr   Currency
		format string
		want   string
	}{
		{EUR, "%v", "EUR"},
		{BGN, "%s", "BGN"},
		{BGN, "%c", "BGN"},
		{BGN, "%q", "\"BGN\""},
		{EUR, "%5v", "  EUR"},
		{EUR, "%-5v", "EUR  "},
		{BGN, "%d", "%!d(resto.Currency=BGN)"},
	}
	for _, tt := range tests {
		got := fmt.Sprintf(tt.format, tt.curr)
		if got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_JSON(t *testing.T) {
	type payload struct {
		Curr Currency `json:"curr"`
	}

	t.Run("marshal", func(t *testing.T) {
		got, err := json.Marshal(payload{Curr: BGN})
		if err != nil {
			t.Fatalf("json.Marshal failed: %v", err)
		}
		want := `{"curr":"BGN"}`
		if string(got) != want {
			t.Errorf("json.Marshal = %s, want %s", got, want)
		}
	})

	t.Run("unmarshal", func(t *testing.T) {
		var got payload
		if err := json.Unmarshal([]byte(`{"curr":"bgn"}`), &got); err != nil {
			t.Fatalf("json.Unmarshal failed: %v", err)
		}
		if got.Curr != BGN {
			t.Errorf("json.Unmarshal = %v, want %v", got.Curr, BGN)
		}
	})

	t.Run("error", func(t *testing.T) {
		var got payload
		if err := json.Unmarshal([]byte(`{"curr":"USD"}`), &got); err == nil {
			t.Errorf("json.Unmarshal did not fail")
		}
	})
}

func TestCurrency_Text(t *testing.T) {
	var c Currency
	if err := c.UnmarshalText([]byte("975")); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if c != BGN {
		t.Errorf("UnmarshalText(\"975\") = %v, want %v", c, BGN)
	}
	got, err := c.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if string(got) != "BGN" {
		t.Errorf("MarshalText() = %q, want %q", got, "BGN")
	}
}
