// Package register implements the transaction policy of a cash register
// on top of a [till.Ledger] drawer: sales tax, accepted amounts, and
// handing out change for a payment.
package register

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"github.com/govalues/till"
)

var (
	// ErrOutOfBounds is returned when a price or payment is outside the
	// amounts accepted by the register.
	// Errors wrapping ErrOutOfBounds also match [till.ErrRange].
	ErrOutOfBounds = fmt.Errorf("%w: amount out of bounds", till.ErrRange)

	// ErrInsufficientPayment is returned when a payment is less than the
	// total due.
	ErrInsufficientPayment = errors.New("insufficient payment")
)

// Config holds the policy of a register.
type Config struct {
	TaxRate   decimal.Decimal // sales tax rate, for example 0.0925 for 9.25%
	MinAmount decimal.Decimal // smallest accepted price or payment
	MaxAmount decimal.Decimal // largest accepted price or payment
	Scale     int             // digits after the decimal point in totals
}

// DefaultConfig returns a 9.25% sales tax, amounts from 0.01 to 100, and
// totals with 2 digits after the decimal point.
func DefaultConfig() Config {
	return Config{
		TaxRate:   decimal.MustParse("0.0925"),
		MinAmount: decimal.MustParse("0.01"),
		MaxAmount: decimal.MustNew(100, 0),
		Scale:     2,
	}
}

// Validate returns an error if the tax rate is negative, the minimum amount
// is not positive, the maximum amount is less than the minimum, or the scale
// is outside [0, decimal.MaxScale].
func (c Config) Validate() error {
	var errs []error
	if c.TaxRate.IsNeg() {
		errs = append(errs, fmt.Errorf("tax rate %v must not be negative", c.TaxRate))
	}
	if !c.MinAmount.IsPos() {
		errs = append(errs, fmt.Errorf("minimum amount %v must be positive", c.MinAmount))
	}
	if c.MaxAmount.Cmp(c.MinAmount) < 0 {
		errs = append(errs, fmt.Errorf("maximum amount %v must not be less than minimum amount %v", c.MaxAmount, c.MinAmount))
	}
	if c.Scale < 0 || c.Scale > decimal.MaxScale {
		errs = append(errs, fmt.Errorf("scale %v must be within [0, %v]", c.Scale, decimal.MaxScale))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", till.ErrRange, errors.Join(errs...))
	}
	return nil
}

// Register combines a drawer of denominations with the policy applied to
// each transaction.
//
// Register is not safe for concurrent use.
type Register struct {
	drawer       *till.Ledger
	cfg          Config
	transactions int
	log          *zap.Logger
}

// Option configures a [Register].
type Option func(*Register)

// WithLogger sets the logger used to record transactions.
// By default nothing is logged.
func WithLogger(l *zap.Logger) Option {
	return func(r *Register) {
		if l != nil {
			r.log = l
		}
	}
}

// New returns a register that takes change from the given drawer.
// The drawer is used directly, not copied, so its quantities change as
// change is handed out.
//
// New returns an error if the drawer is nil or the config is invalid.
func New(drawer *till.Ledger, cfg Config, opts ...Option) (*Register, error) {
	if drawer == nil {
		return nil, fmt.Errorf("%w: drawer must not be nil", till.ErrType)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	r := &Register{drawer: drawer, cfg: cfg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Drawer returns the ledger the register takes change from.
func (r *Register) Drawer() *till.Ledger {
	return r.drawer
}

// Config returns the policy of the register.
func (r *Register) Config() Config {
	return r.cfg
}

// Transactions returns the number of completed transactions, that is
// checkouts whose change was covered in full.
func (r *Register) Transactions() int {
	return r.transactions
}

func (r *Register) checkBounds(amount decimal.Decimal) error {
	if amount.Cmp(r.cfg.MinAmount) < 0 || amount.Cmp(r.cfg.MaxAmount) > 0 {
		return fmt.Errorf("%w: %v must be within [%v, %v]", ErrOutOfBounds, amount, r.cfg.MinAmount, r.cfg.MaxAmount)
	}
	return nil
}

// Quote is the amount due for a price.
type Quote struct {
	Price decimal.Decimal // price before tax
	Tax   decimal.Decimal // unrounded sales tax
	Total decimal.Decimal // price plus tax, rounded up to the scale of the register
}

// Quote computes the sales tax and the total due for the given price.
// The tax is kept exact; the total is rounded toward positive infinity.
//
// Quote returns an error wrapping [ErrOutOfBounds] if the price is outside
// the accepted amounts.
func (r *Register) Quote(price decimal.Decimal) (Quote, error) {
	q, err := r.quote(price)
	if err != nil {
		return Quote{}, fmt.Errorf("quoting %v: %w", price, err)
	}
	return q, nil
}

func (r *Register) quote(price decimal.Decimal) (Quote, error) {
	if err := r.checkBounds(price); err != nil {
		return Quote{}, err
	}
	tax, err := price.Mul(r.cfg.TaxRate)
	if err != nil {
		return Quote{}, err
	}
	total, err := price.Add(tax)
	if err != nil {
		return Quote{}, err
	}
	total = total.Ceil(r.cfg.Scale)
	return Quote{Price: price, Tax: tax, Total: total}, nil
}

// Receipt describes a completed checkout.
type Receipt struct {
	Total     decimal.Decimal // amount due
	Paid      decimal.Decimal // amount tendered
	ChangeDue decimal.Decimal // paid minus total
	Change    till.Change     // units handed out and the uncovered remainder
}

// Checkout takes a payment for the given total and hands out change from
// the drawer.
// The transaction counter is incremented only if the change is covered in
// full.
//
// Checkout returns an error and leaves the drawer unchanged if:
//   - the payment is outside the accepted amounts ([ErrOutOfBounds]);
//   - the payment is less than the total ([ErrInsufficientPayment]).
func (r *Register) Checkout(total, paid decimal.Decimal) (Receipt, error) {
	rec, err := r.checkout(total, paid)
	if err != nil {
		r.log.Warn("checkout rejected",
			zap.Stringer("total", total),
			zap.Stringer("paid", paid),
			zap.Error(err),
		)
		return Receipt{}, fmt.Errorf("checking out %v with %v: %w", total, paid, err)
	}
	r.log.Info("checkout",
		zap.Stringer("total", rec.Total),
		zap.Stringer("paid", rec.Paid),
		zap.Stringer("change_due", rec.ChangeDue),
		zap.Stringer("dispensed", rec.Change.Dispensed()),
		zap.Stringer("remainder", rec.Change.Remainder()),
		zap.Int("transactions", r.transactions),
	)
	return rec, nil
}

func (r *Register) checkout(total, paid decimal.Decimal) (Receipt, error) {
	if err := r.checkBounds(paid); err != nil {
		return Receipt{}, err
	}
	if paid.Cmp(total) < 0 {
		return Receipt{}, fmt.Errorf("%w: %v is less than %v", ErrInsufficientPayment, paid, total)
	}
	due, err := paid.Sub(total)
	if err != nil {
		return Receipt{}, err
	}
	change, err := r.drawer.MakeChange(due)
	if err != nil {
		return Receipt{}, err
	}
	if change.IsExact() {
		r.transactions++
	}
	return Receipt{Total: total, Paid: paid, ChangeDue: due, Change: change}, nil
}

// Replenish adds n units of the named denomination to the drawer, for
// example the bills and coins a customer paid with.
func (r *Register) Replenish(name string, n int64) error {
	if err := r.drawer.Deposit(name, n); err != nil {
		return err
	}
	r.log.Debug("replenished", zap.String("denomination", name), zap.Int64("count", n))
	return nil
}
