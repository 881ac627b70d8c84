package till

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/govalues/decimal"
)

// Ledger represents an ordered collection of denominations, such as the
// contents of a till drawer or the units handed out as change.
// Its zero value is an empty ledger ready to use.
//
// Names act as keys: lookups and modifications match by name, and a ledger
// never holds two denominations with the same name.
// The order of denominations reflects insertion order until [Ledger.Sort]
// is called.
//
// Ledger is not safe for concurrent use.
// Callers sharing a ledger between goroutines must serialize access,
// for example by giving each till its own ledger.
type Ledger struct {
	units []Denomination
}

// NewLedger returns a ledger holding a validated copy of the given units,
// in the same order.
// Any value implementing [Unit] is accepted; it is converted with [NewDenom]
// and the original value is not retained.
// See also constructor [NewLedgerFromRecords] for loosely typed input.
//
// NewLedger returns an error if a unit is a nil pointer ([ErrType]), fails
// validation, or shares a name with another unit ([ErrDuplicateName]).
func NewLedger[U Unit](units []U) (*Ledger, error) {
	l := &Ledger{units: make([]Denomination, 0, len(units))}
	for i, u := range units {
		d, err := denomFromUnit(u)
		if err != nil {
			return nil, fmt.Errorf("converting element %v: %w", i, err)
		}
		if l.index(d.Name()) >= 0 {
			return nil, fmt.Errorf("converting element %v: %w", i, duplicateError(d.Name()))
		}
		l.units = append(l.units, d)
	}
	return l, nil
}

// MustNewLedger is like [NewLedger] but panics if the ledger cannot be constructed.
// It simplifies safe initialization of global variables holding ledgers.
func MustNewLedger[U Unit](units []U) *Ledger {
	l, err := NewLedger(units)
	if err != nil {
		panic(fmt.Sprintf("NewLedger(%v) failed: %v", units, err))
	}
	return l
}

func duplicateError(name string) error {
	return fmt.Errorf("%w: %w %q", ErrRange, ErrDuplicateName, name)
}

// index returns the position of the first denomination with the given name,
// or -1 if there is none.
func (l *Ledger) index(name string) int {
	return slices.IndexFunc(l.units, func(d Denomination) bool {
		return d.name == name
	})
}

// Len returns the number of denominations in the ledger.
func (l *Ledger) Len() int {
	return len(l.units)
}

// Units returns a copy of the denominations in ledger order.
// Changing the returned values does not affect the ledger.
func (l *Ledger) Units() []Denomination {
	return slices.Clone(l.units)
}

// Clone returns a deep copy of the ledger.
func (l *Ledger) Clone() *Ledger {
	return &Ledger{units: slices.Clone(l.units)}
}

// Names returns the names of the denominations in ledger order.
func (l *Ledger) Names() []string {
	names := make([]string, len(l.units))
	for i, d := range l.units {
		names[i] = d.name
	}
	return names
}

// Balance returns the exact sum of worth × quantity over all denominations.
// No rounding is applied; the scale of the result is the largest scale among
// the worths.
// The balance of an empty ledger is 0.
//
// Balance returns an error if the integer part of the result has more than
// [decimal.MaxPrec] digits minus the scale of the result.
func (l *Ledger) Balance() (decimal.Decimal, error) {
	b, err := l.balance()
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("computing balance: %w", err)
	}
	return b, nil
}

func (l *Ledger) balance() (decimal.Decimal, error) {
	var b decimal.Decimal
	for _, d := range l.units {
		v, err := mulQty(d.worth, d.qty)
		if err != nil {
			return decimal.Decimal{}, err
		}
		b, err = b.AddExact(v, max(b.Scale(), v.Scale()))
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("%w: %w", ErrRange, errValueOverflow)
		}
	}
	return b, nil
}

// Find returns the first denomination with the given name.
// If there is no such denomination, false is returned.
// The result is a copy; use [Ledger.ModifyOrAdd] to change the ledger.
func (l *Ledger) Find(name string) (Denomination, bool) {
	i := l.index(name)
	if i < 0 {
		return Denomination{}, false
	}
	return l.units[i], true
}

// compareDenoms orders denominations by worth, largest first,
// and then by name in ascending order.
func compareDenoms(a, b Denomination) int {
	if c := b.worth.Cmp(a.worth); c != 0 {
		return c
	}
	return strings.Compare(a.name, b.name)
}

// Sort reorders the ledger in place by worth in descending order.
// Denominations with equal worth are ordered by name in ascending order.
// Sorting is deterministic, so calling Sort again does not change the order.
func (l *Ledger) Sort() {
	slices.SortStableFunc(l.units, compareDenoms)
}

// AddOrReplace validates a new denomination and puts it into the ledger.
// If a denomination with the same name exists, it is replaced at the same
// position; otherwise the new one is appended.
// The arguments are validated as in [NewDenom] even when nothing is replaced,
// and the ledger is left unchanged if validation fails.
func (l *Ledger) AddOrReplace(name string, worth decimal.Decimal, qty int64) error {
	d, err := NewDenom(name, worth, qty)
	if err != nil {
		return fmt.Errorf("adding %q: %w", name, err)
	}
	if i := l.index(name); i >= 0 {
		l.units[i] = d
		return nil
	}
	l.units = append(l.units, d)
	return nil
}

// Remove deletes every denomination with the given name.
// Removing a name that is not in the ledger does nothing.
func (l *Ledger) Remove(name string) {
	l.units = slices.DeleteFunc(l.units, func(d Denomination) bool {
		return d.name == name
	})
}

// ModifyOrAdd overwrites the name, worth, and quantity of the first
// denomination named name.
// If there is no such denomination, ModifyOrAdd behaves like
// [Ledger.AddOrReplace] with the new values.
//
// ModifyOrAdd returns an error and leaves the ledger unchanged if the new
// values fail validation, or if the new name already belongs to another
// denomination ([ErrDuplicateName]).
func (l *Ledger) ModifyOrAdd(name, newName string, newWorth decimal.Decimal, newQty int64) error {
	i := l.index(name)
	if i < 0 {
		return l.AddOrReplace(newName, newWorth, newQty)
	}
	d, err := NewDenom(newName, newWorth, newQty)
	if err != nil {
		return fmt.Errorf("modifying %q: %w", name, err)
	}
	if j := l.index(newName); j >= 0 && j != i {
		return fmt.Errorf("modifying %q: %w", name, duplicateError(newName))
	}
	l.units[i] = d
	return nil
}

// Deposit adds n units to the denomination with the given name,
// for example when a customer's payment replenishes the drawer.
//
// Deposit returns an error wrapping [ErrRange] if there is no such
// denomination or the quantity would leave its valid range.
func (l *Ledger) Deposit(name string, n int64) error {
	i := l.index(name)
	if i < 0 {
		return fmt.Errorf("depositing into %q: %w: no such denomination", name, ErrRange)
	}
	return l.units[i].Deposit(n)
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the ledger, for example
// "[quarter 0.25 x 1, penny 0.01 x 3]".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (l *Ledger) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, d := range l.units {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(d.String())
	}
	b.WriteByte(']')
	return b.String()
}

// MarshalJSON implements the [json.Marshaler] interface.
// The ledger is written as an array of denominations in ledger order.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (l *Ledger) MarshalJSON() ([]byte, error) {
	units := l.units
	if units == nil {
		units = []Denomination{}
	}
	return json.Marshal(units)
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The input must be an array of objects accepted by [NewLedgerFromRecords].
// The ledger is left unchanged if the input is null or invalid.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (l *Ledger) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	v, err := decodeJSON(data)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Ledger{}, err)
	}
	m, err := NewLedgerFromRecords(v)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Ledger{}, err)
	}
	l.units = m.units
	return nil
}
