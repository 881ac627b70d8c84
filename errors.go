package till

import "errors"

var (
	// ErrType is returned when an argument has the wrong shape, for example
	// a record without a name, a worth that is not an exact decimal, or
	// a ledger input that is not a list.
	ErrType = errors.New("type mismatch")

	// ErrRange is returned when an argument has the right shape but violates
	// a numeric invariant, for example a non-positive worth or a negative,
	// fractional, or overflowing quantity.
	ErrRange = errors.New("value out of range")

	// ErrDuplicateName is returned when an operation would leave two
	// denominations with the same name in one ledger.
	// Errors wrapping ErrDuplicateName also match [ErrRange].
	ErrDuplicateName = errors.New("duplicate denomination name")

	errValueOverflow = errors.New("value overflow")
)
