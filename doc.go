/*
Package till implements the currency inventory of a cash drawer and the
computation of change from it.
It leverages the [decimal] package's capabilities for handling decimal
floating-point numbers, so worths and amounts are never subject to binary
floating-point errors.

# Features

  - Denominations whose worth and quantity are validated on every change
  - Ledgers of denominations with lookup, modification, and deterministic ordering
  - Exact balances, without rounding
  - Greedy change making that takes dispensed units out of stock
  - Standard bill and coin sets for several currencies

# Representation

The package consists of two main types: Denomination and Ledger.
A Denomination is a kind of currency unit, such as a quarter, and consists of
a name, the worth of one unit as a decimal.Decimal, and the number of units
on hand.
A Ledger is an ordered list of denominations in which names are unique.

The Seed type represents the standard set of denominations of a currency and
is implemented as an integer index into in-memory arrays, like an ISO 4217
currency code.

# Change Making

[Ledger.MakeChange] sorts the ledger by worth, largest first, and then takes
as many units of each denomination as fit into the amount still owed and
are on hand.
The result holds the dispensed units and the amount that could not be
covered.

The greedy method gives exact change with the fewest units for canonical
denomination sets, such as the US Dollar bills and coins.
For other sets it is neither optimal nor complete: it may use more units than
necessary, or leave a remainder even though the stock could cover the amount.

# Errors

Invalid arguments are reported with errors wrapping one of two sentinels:

  - [ErrType] if an argument has the wrong shape, for example a record
    without a worth or an input that is not a list;
  - [ErrRange] if an argument has the right shape but a wrong value, for
    example a non-positive worth, a negative quantity, or a duplicate name.

Operations validate their arguments before modifying anything, so a failed
call leaves denominations and ledgers unchanged.
Constructors prefixed with Must panic instead of returning an error.

# Concurrency

Denominations and ledgers are not safe for concurrent mutation.
Seeds are immutable and can be shared freely.
*/
package till
