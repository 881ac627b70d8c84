package till

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
)

//go:generate go run scripts/seed/codegen.go

// Seed type represents a standard set of denominations issued for a currency,
// such as the bills and coins of the US Dollar.
// The zero value is [XXX], which is the empty set.
//
// Seed is implemented as an integer index into in-memory arrays that store
// the currency code, the currency name, and the units of each set.
// This design ensures safe concurrency for multiple goroutines accessing
// the same Seed value.
//
// When persisting a seed, use the code returned by the [Seed.Code] method,
// rather than the integer index, as the mapping between index and a set
// may change in future versions.
type Seed uint8

type seedUnit struct {
	name  string
	worth decimal.Decimal
}

var errInvalidSeed = errors.New("invalid denomination set")

// ParseSeed converts a currency code to the set of denominations issued for it.
// The input string must be in one of the following formats:
//
//	USD
//	usd
//
// ParseSeed returns an error if there is no set for the code.
func ParseSeed(code string) (Seed, error) {
	s, ok := seedLookup[code]
	if !ok {
		return XXX, fmt.Errorf("%w %q", errInvalidSeed, code)
	}
	return s, nil
}

// MustParseSeed is like [ParseSeed] but panics if the code cannot be parsed.
// It simplifies safe initialization of global variables holding seeds.
func MustParseSeed(code string) Seed {
	s, err := ParseSeed(code)
	if err != nil {
		panic(fmt.Sprintf("ParseSeed(%q) failed: %v", code, err))
	}
	return s
}

// Code returns the 3-letter currency code of the set.
// This method always returns a valid code.
func (s Seed) Code() string {
	return codeLookup[s]
}

// Curr returns the name of the currency, for example "US Dollar".
func (s Seed) Curr() string {
	return currLookup[s]
}

// String method implements the [fmt.Stringer] interface and returns
// the currency code of the set.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (s Seed) String() string {
	return s.Code()
}

// Names returns the names of the units in the set, largest worth first.
func (s Seed) Names() []string {
	units := unitLookup[s]
	names := make([]string, len(units))
	for i, u := range units {
		names[i] = u.name
	}
	return names
}

// Ledger returns a new ledger holding every unit of the set with the given
// quantity on hand, largest worth first.
//
// Ledger returns an error wrapping [ErrRange] if the quantity is negative
// or greater than [MaxQuantity].
func (s Seed) Ledger(qty int64) (*Ledger, error) {
	units := unitLookup[s]
	l := &Ledger{units: make([]Denomination, 0, len(units))}
	for _, u := range units {
		d, err := NewDenom(u.name, u.worth, qty)
		if err != nil {
			return nil, fmt.Errorf("seeding %v: %w", s, err)
		}
		l.units = append(l.units, d)
	}
	return l, nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseSeed].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (s *Seed) UnmarshalText(text []byte) error {
	var err error
	*s, err = ParseSeed(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns a 3-letter code.
// See also method [Seed.Code].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (s Seed) MarshalText() ([]byte, error) {
	return []byte(s.Code()), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseSeed].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (s *Seed) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return s.UnmarshalText(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted 3-letter code.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (s Seed) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 5)
	text = append(text, '"')
	text = append(text, s.Code()...)
	text = append(text, '"')
	return text, nil
}
