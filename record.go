package till

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/govalues/decimal"
)

// Record is a loosely typed denomination, as produced by decoding JSON or
// YAML into generic values.
// The recognized keys are "name", "worth", and "quantity" (or its short
// form "qty").
type Record = map[string]any

// decodeJSON decodes data into generic values, keeping numbers as
// [json.Number] so that no precision is lost.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// NewLedgerFromRecords returns a ledger built from a loosely typed list.
// It is the boundary where untyped input, for example a decoded JSON array,
// is normalized into validated denominations; the original values are not
// retained.
//
// The argument must be one of []Denomination, []Unit, []Record, or []any.
// Elements of []any must be a [Unit] or a [Record].
// In a record:
//   - "name" must be a string;
//   - "worth" must be a [decimal.Decimal], a decimal string, a [json.Number],
//     or an integer; floats are rejected because they are not exact;
//   - "quantity" must be an integer, a [json.Number], or a float64 without
//     a fractional part.
//
// NewLedgerFromRecords returns an error wrapping [ErrType] if the argument is
// not a list or an element lacks a usable field, and an error wrapping
// [ErrRange] if a field is out of range or two elements share a name.
func NewLedgerFromRecords(v any) (*Ledger, error) {
	var units []Denomination
	switch v := v.(type) {
	case []Denomination:
		return NewLedger(v)
	case []Unit:
		return NewLedger(v)
	case []Record:
		units = make([]Denomination, 0, len(v))
		for i, r := range v {
			d, err := denomFromRecord(r)
			if err != nil {
				return nil, fmt.Errorf("converting element %v: %w", i, err)
			}
			units = append(units, d)
		}
	case []any:
		units = make([]Denomination, 0, len(v))
		for i, e := range v {
			d, err := denomFromAny(e)
			if err != nil {
				return nil, fmt.Errorf("converting element %v: %w", i, err)
			}
			units = append(units, d)
		}
	default:
		return nil, fmt.Errorf("%w: %T is not a list of denominations", ErrType, v)
	}
	return NewLedger(units)
}

// denomFromAny converts a single loosely typed element to a denomination.
func denomFromAny(v any) (Denomination, error) {
	switch v := v.(type) {
	case Unit:
		return denomFromUnit(v)
	case Record:
		return denomFromRecord(v)
	default:
		return Denomination{}, fmt.Errorf("%w: %T is not a denomination", ErrType, v)
	}
}

// denomFromUnit converts a unit to a denomination.
// A nil unit, including a typed nil pointer, has no fields to read.
func denomFromUnit(u Unit) (Denomination, error) {
	if u == nil {
		return Denomination{}, fmt.Errorf("%w: unit is nil", ErrType)
	}
	switch v := reflect.ValueOf(u); v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return Denomination{}, fmt.Errorf("%w: %T is nil", ErrType, u)
		}
	}
	return NewDenom(u.Name(), u.Worth(), u.Quantity())
}

func denomFromRecord(r Record) (Denomination, error) {
	// Name
	n, ok := r["name"]
	if !ok {
		return Denomination{}, fmt.Errorf("%w: missing name", ErrType)
	}
	name, ok := n.(string)
	if !ok {
		return Denomination{}, fmt.Errorf("%w: name %v is %T, not a string", ErrType, n, n)
	}
	// Worth
	w, ok := r["worth"]
	if !ok {
		return Denomination{}, fmt.Errorf("%w: %q: missing worth", ErrType, name)
	}
	worth, err := worthFromAny(w)
	if err != nil {
		return Denomination{}, fmt.Errorf("%q: %w", name, err)
	}
	// Quantity
	q, ok := r["quantity"]
	if !ok {
		q, ok = r["qty"]
	}
	if !ok {
		return Denomination{}, fmt.Errorf("%w: %q: missing quantity", ErrType, name)
	}
	qty, err := qtyFromAny(q)
	if err != nil {
		return Denomination{}, fmt.Errorf("%q: %w", name, err)
	}
	// Denomination
	d, err := NewDenom(name, worth, qty)
	if err != nil {
		return Denomination{}, fmt.Errorf("%q: %w", name, err)
	}
	return d, nil
}

func worthFromAny(v any) (decimal.Decimal, error) {
	var s string
	switch v := v.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		s = v
	case json.Number:
		s = v.String()
	case int:
		return newWorthFromInt(int64(v))
	case int32:
		return newWorthFromInt(int64(v))
	case int64:
		return newWorthFromInt(v)
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: worth %v is %T, not an exact decimal", ErrType, v, v)
	}
	d, err := decimal.Parse(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: parsing worth: %w", ErrType, err)
	}
	return d, nil
}

func newWorthFromInt(i int64) (decimal.Decimal, error) {
	d, err := decimal.New(i, 0)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: converting worth: %w", ErrRange, err)
	}
	return d, nil
}

func qtyFromAny(v any) (int64, error) {
	switch v := v.(type) {
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return qtyFromUint64(uint64(v))
	case uint32:
		return int64(v), nil
	case uint64:
		return qtyFromUint64(v)
	case float64:
		return qtyFromFloat64(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: quantity %v: %w", ErrRange, v, err)
		}
		return qtyFromFloat64(f)
	default:
		return 0, fmt.Errorf("%w: quantity %v is %T, not a number", ErrType, v, v)
	}
}

func qtyFromUint64(u uint64) (int64, error) {
	if u > MaxQuantity {
		return 0, fmt.Errorf("%w: quantity %v must not exceed %v", ErrRange, u, int64(MaxQuantity))
	}
	return int64(u), nil
}

func qtyFromFloat64(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: quantity %v is not an integer", ErrRange, f)
	}
	if f < 0 || f > MaxQuantity {
		return 0, fmt.Errorf("%w: quantity %v must be within [0, %v]", ErrRange, f, int64(MaxQuantity))
	}
	return int64(f), nil
}
