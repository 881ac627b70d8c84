package till

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/govalues/decimal"
)

// MaxQuantity is the largest number of units a denomination can hold.
// It equals 2^53 - 1, the largest integer that a float64 represents exactly,
// so quantities survive a round trip through JSON clients.
const MaxQuantity = 1<<53 - 1

// Denomination represents one kind of currency unit, such as a quarter or
// a 20 dollar bill, together with the number of units on hand.
// Its zero value is not a valid denomination; use [NewDenom] or [ParseDenom].
//
// The worth of a denomination is always positive and its quantity is always
// within [0, MaxQuantity].
// Setters validate their argument before writing, so a failed call leaves
// the denomination unchanged.
//
// Denomination is not safe for concurrent mutation.
type Denomination struct {
	name  string          // unit identifier, unique within a ledger
	worth decimal.Decimal // value of one unit
	qty   int64           // units on hand
}

// Unit is implemented by any value that exposes the three fields of
// a denomination.
// [Denomination] implements it.
type Unit interface {
	Name() string
	Worth() decimal.Decimal
	Quantity() int64
}

func checkName(name string) error {
	if !utf8.ValidString(name) {
		return fmt.Errorf("%w: name %q is not valid UTF-8 text", ErrType, name)
	}
	return nil
}

func checkWorth(worth decimal.Decimal) error {
	if !worth.IsPos() {
		return fmt.Errorf("%w: worth %v must be positive", ErrRange, worth)
	}
	return nil
}

func checkQuantity(qty int64) error {
	if qty < 0 || qty > MaxQuantity {
		return fmt.Errorf("%w: quantity %v must be within [0, %v]", ErrRange, qty, MaxQuantity)
	}
	return nil
}

// NewDenom returns a denomination with the given name, worth of one unit,
// and quantity on hand.
//
// NewDenom returns an error if:
//   - the name is not valid UTF-8 text ([ErrType]);
//   - the worth is not positive ([ErrRange]);
//   - the quantity is negative or greater than [MaxQuantity] ([ErrRange]).
func NewDenom(name string, worth decimal.Decimal, qty int64) (Denomination, error) {
	if err := checkName(name); err != nil {
		return Denomination{}, err
	}
	if err := checkWorth(worth); err != nil {
		return Denomination{}, err
	}
	if err := checkQuantity(qty); err != nil {
		return Denomination{}, err
	}
	return Denomination{name: name, worth: worth, qty: qty}, nil
}

// MustNewDenom is like [NewDenom] but panics if the denomination cannot be constructed.
// It simplifies safe initialization of global variables holding denominations.
func MustNewDenom(name string, worth decimal.Decimal, qty int64) Denomination {
	d, err := NewDenom(name, worth, qty)
	if err != nil {
		panic(fmt.Sprintf("NewDenom(%q, %v, %v) failed: %v", name, worth, qty, err))
	}
	return d
}

// ParseDenom is like [NewDenom] but takes the worth as a decimal string.
// See also constructor [decimal.Parse].
//
// ParseDenom returns an error wrapping [ErrType] if the worth is not
// a decimal string.
func ParseDenom(name, worth string, qty int64) (Denomination, error) {
	w, err := decimal.Parse(worth)
	if err != nil {
		return Denomination{}, fmt.Errorf("%w: parsing worth: %w", ErrType, err)
	}
	return NewDenom(name, w, qty)
}

// MustParseDenom is like [ParseDenom] but panics if the denomination cannot be constructed.
func MustParseDenom(name, worth string, qty int64) Denomination {
	d, err := ParseDenom(name, worth, qty)
	if err != nil {
		panic(fmt.Sprintf("ParseDenom(%q, %q, %v) failed: %v", name, worth, qty, err))
	}
	return d
}

// Name returns the name of the denomination.
func (d Denomination) Name() string {
	return d.name
}

// Worth returns the value of one unit.
func (d Denomination) Worth() decimal.Decimal {
	return d.worth
}

// Quantity returns the number of units on hand.
func (d Denomination) Quantity() int64 {
	return d.qty
}

// IsEmpty returns true if there are no units on hand.
func (d Denomination) IsEmpty() bool {
	return d.qty == 0
}

// Value returns the exact value of all units on hand, that is worth × quantity.
// The result keeps the scale of the worth.
//
// Value returns an error if the integer part of the result has more than
// [decimal.MaxPrec] - [Denomination.Worth].Scale() digits.
func (d Denomination) Value() (decimal.Decimal, error) {
	v, err := mulQty(d.worth, d.qty)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("computing [%v * %v]: %w", d.worth, d.qty, err)
	}
	return v, nil
}

// mulQty returns worth × qty without rounding.
func mulQty(worth decimal.Decimal, qty int64) (decimal.Decimal, error) {
	q, err := decimal.New(qty, 0)
	if err != nil {
		return decimal.Decimal{}, err
	}
	v, err := worth.MulExact(q, worth.Scale())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %w", ErrRange, errValueOverflow)
	}
	return v, nil
}

// SetName replaces the name of the denomination.
// The name is left unchanged if the new one is not valid UTF-8 text.
func (d *Denomination) SetName(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	d.name = name
	return nil
}

// SetWorth replaces the worth of one unit.
// The worth is left unchanged if the new one is not positive.
func (d *Denomination) SetWorth(worth decimal.Decimal) error {
	if err := checkWorth(worth); err != nil {
		return err
	}
	d.worth = worth
	return nil
}

// SetQuantity replaces the number of units on hand.
// The quantity is left unchanged if the new one is negative or greater
// than [MaxQuantity].
func (d *Denomination) SetQuantity(qty int64) error {
	if err := checkQuantity(qty); err != nil {
		return err
	}
	d.qty = qty
	return nil
}

// Deposit adds n units to the quantity on hand.
//
// Deposit returns an error wrapping [ErrRange] if n is negative or the
// resulting quantity would exceed [MaxQuantity].
func (d *Denomination) Deposit(n int64) error {
	if n < 0 {
		return fmt.Errorf("depositing %v units of %q: %w: count must not be negative", n, d.name, ErrRange)
	}
	if n > MaxQuantity-d.qty {
		return fmt.Errorf("depositing %v units of %q: %w: quantity would exceed %v", n, d.name, ErrRange, int64(MaxQuantity))
	}
	d.qty += n
	return nil
}

// Withdraw removes n units from the quantity on hand.
//
// Withdraw returns an error wrapping [ErrRange] if n is negative or greater
// than the quantity on hand.
func (d *Denomination) Withdraw(n int64) error {
	if n < 0 {
		return fmt.Errorf("withdrawing %v units of %q: %w: count must not be negative", n, d.name, ErrRange)
	}
	if n > d.qty {
		return fmt.Errorf("withdrawing %v units of %q: %w: only %v on hand", n, d.name, ErrRange, d.qty)
	}
	d.qty -= n
	return nil
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the denomination, for example "quarter 0.25 x 4".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Denomination) String() string {
	return fmt.Sprintf("%s %v x %d", d.name, d.worth, d.qty)
}

type denomJSON struct {
	Name     string `json:"name"`
	Worth    string `json:"worth"`
	Quantity int64  `json:"quantity"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// The worth is written as a string to keep it exact, for example
// {"name":"quarter","worth":"0.25","quantity":4}.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (d Denomination) MarshalJSON() ([]byte, error) {
	return json.Marshal(denomJSON{Name: d.name, Worth: d.worth.String(), Quantity: d.qty})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// It accepts the same object shapes as [NewLedgerFromRecords] does for
// a single record. Null leaves the denomination unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (d *Denomination) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	v, err := decodeJSON(data)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Denomination{}, err)
	}
	u, err := denomFromAny(v)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Denomination{}, err)
	}
	*d = u
	return nil
}
