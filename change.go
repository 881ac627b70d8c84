package till

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Change represents the result of [Ledger.MakeChange]: the units handed out
// and the part of the owed amount that could not be covered by them.
type Change struct {
	dispensed *Ledger
	remainder decimal.Decimal
}

// Dispensed returns a ledger holding only the denominations that were handed
// out, with their dispensed quantities, largest worth first.
func (c Change) Dispensed() *Ledger {
	if c.dispensed == nil {
		return &Ledger{}
	}
	return c.dispensed
}

// Remainder returns the part of the owed amount that was not covered.
// It is 0 when the change is exact.
func (c Change) Remainder() decimal.Decimal {
	return c.remainder
}

// IsExact returns true if the owed amount was covered completely.
func (c Change) IsExact() bool {
	return c.remainder.IsZero()
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the change, for example
// "[quarter 0.25 x 1] + 0.01".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Change) String() string {
	return fmt.Sprintf("%v + %v", c.Dispensed(), c.remainder)
}

// MakeChange decomposes the owed amount into the denominations of the ledger
// and takes the dispensed units out of stock.
//
// The ledger is first sorted with [Ledger.Sort].
// Then, for each denomination in that order, the largest number of whole
// units that fits into the amount still owed, capped by the quantity on
// hand, is dispensed.
// The amount not covered after a single pass is returned as the remainder.
//
// This greedy decomposition is exact for canonical denomination sets, such
// as standard coin and bill systems.
// For arbitrary sets it neither minimizes the number of units nor guarantees
// exact change when exact change is possible: with worths 4, 3, and 1 and
// an amount of 6 it dispenses 4 + 1 + 1 instead of 3 + 3, and with worths
// 4 and 3, one unit of 4, two units of 3 and an amount of 6 it leaves
// a remainder of 2.
//
// MakeChange returns an error wrapping [ErrRange] if the owed amount is
// negative or an intermediate value overflows.
// The ledger is left unchanged, including its order, if an error is returned.
func (l *Ledger) MakeChange(owed decimal.Decimal) (Change, error) {
	c, err := l.makeChange(owed)
	if err != nil {
		return Change{}, fmt.Errorf("making change for %v: %w", owed, err)
	}
	return c, nil
}

func (l *Ledger) makeChange(owed decimal.Decimal) (Change, error) {
	if owed.IsNeg() {
		return Change{}, fmt.Errorf("%w: amount must not be negative", ErrRange)
	}

	// Work on a copy so that a failure does not leave the ledger half-updated
	drawer := l.Clone()
	drawer.Sort()

	rem := owed
	out := &Ledger{}
	for i := range drawer.units {
		d := &drawer.units[i]
		if rem.IsZero() {
			break
		}
		if d.IsEmpty() || rem.Cmp(d.worth) < 0 {
			continue
		}

		// Whole units that fit into the remaining amount. If the whole stock
		// fits it is taken as is; otherwise the quotient is below the stock.
		n := d.qty
		if stock, err := mulQty(d.worth, d.qty); err != nil || stock.Cmp(rem) > 0 {
			q, _, err := rem.QuoRem(d.worth)
			if err != nil {
				return Change{}, fmt.Errorf("%w: %w", ErrRange, errValueOverflow)
			}
			if whole, _, ok := q.Int64(0); ok && whole < n {
				n = whole
			}
		}
		if n <= 0 {
			continue
		}

		// Amount covered by these units
		v, err := mulQty(d.worth, n)
		if err != nil {
			return Change{}, err
		}
		rem, err = rem.SubExact(v, max(rem.Scale(), v.Scale()))
		if err != nil {
			return Change{}, fmt.Errorf("%w: %w", ErrRange, errValueOverflow)
		}

		if err := out.merge(d.name, d.worth, n); err != nil {
			return Change{}, err
		}
		if err := d.Withdraw(n); err != nil {
			return Change{}, err
		}
	}

	l.units = drawer.units
	return Change{dispensed: out, remainder: rem}, nil
}

// merge adds n units to the denomination with the given name,
// creating it if needed.
func (l *Ledger) merge(name string, worth decimal.Decimal, n int64) error {
	if i := l.index(name); i >= 0 {
		return l.units[i].Deposit(n)
	}
	return l.AddOrReplace(name, worth, n)
}
