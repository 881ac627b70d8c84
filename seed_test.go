package till

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"
)

func TestSeed_ZeroValue(t *testing.T) {
	got := Seed(0)
	if got != XXX {
		t.Errorf("Seed(0) = %v, want %v", got, XXX)
	}
	if names := got.Names(); len(names) != 0 {
		t.Errorf("%v.Names() = %v, want []", got, names)
	}
}

func TestParseSeed(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			code string
			want Seed
		}{
			{"xxx", XXX},
			{"XXX", XXX},
			{"usd", USD},
			{"USD", USD},
			{"eur", EUR},
			{"JPY", JPY},
			{"gbp", GBP},
			{"CAD", CAD},
		}
		for _, tt := range tests {
			got, err := ParseSeed(tt.code)
			if err != nil {
				t.Errorf("ParseSeed(%q) failed: %v", tt.code, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseSeed(%q) = %v, want %v", tt.code, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"", "840", "Usd", "BTC", "$",
		}
		for _, tt := range tests {
			_, err := ParseSeed(tt)
			if err == nil {
				t.Errorf("ParseSeed(%q) did not fail", tt)
			}
		}
	})
}

func TestMustParseSeed(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseSeed(\"UUU\") did not panic")
			}
		}()
		MustParseSeed("UUU")
	})
}

func TestSeed_Code(t *testing.T) {
	tests := []struct {
		s         Seed
		code, cur string
	}{
		{XXX, "XXX", "No currency"},
		{USD, "USD", "US Dollar"},
		{EUR, "EUR", "Euro"},
		{JPY, "JPY", "Yen"},
	}
	for _, tt := range tests {
		if got := tt.s.Code(); got != tt.code {
			t.Errorf("%v.Code() = %v, want %v", tt.s, got, tt.code)
		}
		if got := tt.s.String(); got != tt.code {
			t.Errorf("%v.String() = %v, want %v", tt.s, got, tt.code)
		}
		if got := tt.s.Curr(); got != tt.cur {
			t.Errorf("%v.Curr() = %v, want %v", tt.s, got, tt.cur)
		}
	}
}

func TestSeed_Names(t *testing.T) {
	got := USD.Names()
	want := []string{
		"20 dollar bill", "10 dollar bill", "5 dollar bill", "2 dollar bill", "1 dollar bill",
		"half dollar", "quarter", "dime", "nickel", "penny",
	}
	if !slices.Equal(got, want) {
		t.Errorf("USD.Names() = %v, want %v", got, want)
	}
}

func TestSeed_Ledger(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		for _, s := range []Seed{XXX, CAD, EUR, GBP, JPY, USD} {
			l, err := s.Ledger(2)
			if err != nil {
				t.Errorf("%v.Ledger(2) failed: %v", s, err)
				continue
			}
			if !slices.Equal(l.Names(), s.Names()) {
				t.Errorf("%v.Ledger(2).Names() = %v, want %v", s, l.Names(), s.Names())
			}

			// Sets are listed largest worth first
			sorted := l.Clone()
			sorted.Sort()
			if !slices.Equal(sorted.Names(), l.Names()) {
				t.Errorf("%v.Ledger(2) is not sorted: %v", s, l)
			}
		}
	})

	t.Run("balance", func(t *testing.T) {
		l, err := USD.Ledger(1)
		if err != nil {
			t.Fatalf("USD.Ledger(1) failed: %v", err)
		}
		got, err := l.Balance()
		if err != nil {
			t.Fatalf("Balance() failed: %v", err)
		}
		if got.String() != "38.91" {
			t.Errorf("USD.Ledger(1).Balance() = %v, want 38.91", got)
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := USD.Ledger(-1)
		if !errors.Is(err, ErrRange) {
			t.Errorf("USD.Ledger(-1) failed with %v, want %v", err, ErrRange)
		}
	})
}

func TestSeed_JSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		got, err := json.Marshal(EUR)
		if err != nil {
			t.Fatalf("json.Marshal(EUR) failed: %v", err)
		}
		if string(got) != `"EUR"` {
			t.Errorf("json.Marshal(EUR) = %s, want \"EUR\"", got)
		}
	})

	t.Run("unmarshal", func(t *testing.T) {
		tests := []struct {
			data string
			want Seed
		}{
			{`"usd"`, USD},
			{`"GBP"`, GBP},
			{`null`, JPY},
		}
		for _, tt := range tests {
			got := JPY
			if err := json.Unmarshal([]byte(tt.data), &got); err != nil {
				t.Errorf("json.Unmarshal(%s) failed: %v", tt.data, err)
				continue
			}
			if got != tt.want {
				t.Errorf("json.Unmarshal(%s) = %v, want %v", tt.data, got, tt.want)
			}
		}
		var s Seed
		if err := json.Unmarshal([]byte(`"BTC"`), &s); err == nil {
			t.Errorf("json.Unmarshal(\"BTC\") did not fail")
		}
	})

	t.Run("text", func(t *testing.T) {
		var s Seed
		if err := s.UnmarshalText([]byte("cad")); err != nil {
			t.Fatalf("UnmarshalText(\"cad\") failed: %v", err)
		}
		got, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText() failed: %v", err)
		}
		if string(got) != "CAD" {
			t.Errorf("MarshalText() = %s, want CAD", got)
		}
	})
}
