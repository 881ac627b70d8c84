// Command till runs a cash register over lines of "price paid" read from
// standard input and prints a receipt for each.
//
// Usage:
//
//	till [-config till.yaml] < sales.txt
//
// A line holding only "balance" prints the drawer and its balance.
// A line "replenish <name> <n>" adds n units of the named denomination to
// the drawer, for example the bills a customer paid with.
// Blank lines and lines starting with # are skipped.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
	"github.com/joho/godotenv"

	"github.com/govalues/till/internal/config"
	"github.com/govalues/till/internal/logger"
	"github.com/govalues/till/register"
)

func main() {
	// Load .env file for local development
	_ = godotenv.Load()

	path := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if err := run(*path, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "till:", err)
		os.Exit(1)
	}
}

func run(path string, in io.Reader, out io.Writer) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return err
	}
	defer log.Sync()

	drawer, err := cfg.Drawer()
	if err != nil {
		return fmt.Errorf("seeding drawer: %w", err)
	}
	policy, err := cfg.Register()
	if err != nil {
		return err
	}
	reg, err := register.New(drawer, policy, register.WithLogger(log.Zap()))
	if err != nil {
		return err
	}
	log = log.With("seed", cfg.Seed)
	log.Info("register open", "quantity", cfg.Quantity, "units", drawer.Len())

	sc := bufio.NewScanner(in)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var err error
		switch {
		case line == "balance":
			if err := printDrawer(out, reg); err != nil {
				return err
			}
			log.Debug("drawer listed", "line", n)
			continue
		case strings.HasPrefix(line, "replenish "):
			err = replenish(out, reg, strings.TrimPrefix(line, "replenish "))
		default:
			err = sale(out, reg, line)
		}
		if err != nil {
			log.Warn("line rejected", "line", n, "error", err)
			fmt.Fprintf(out, "line %d: %v\n", n, err)
		}
	}
	if err := sc.Err(); err != nil {
		log.Error("reading sales failed", "error", err)
		return fmt.Errorf("reading sales: %w", err)
	}
	log.Info("register closed", "transactions", reg.Transactions())
	return nil
}

func sale(out io.Writer, reg *register.Register, line string) error {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return fmt.Errorf("want \"price paid\", got %q", line)
	}
	price, err := decimal.Parse(fields[0])
	if err != nil {
		return fmt.Errorf("parsing price: %w", err)
	}
	paid, err := decimal.Parse(fields[1])
	if err != nil {
		return fmt.Errorf("parsing payment: %w", err)
	}
	q, err := reg.Quote(price)
	if err != nil {
		return err
	}
	rec, err := reg.Checkout(q.Total, paid)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "price %v tax %v total %v paid %v change %v\n", q.Price, q.Tax, rec.Total, rec.Paid, rec.ChangeDue)
	for _, d := range rec.Change.Dispensed().Units() {
		fmt.Fprintf(out, "  %v x %d\n", d.Name(), d.Quantity())
	}
	if !rec.Change.IsExact() {
		fmt.Fprintf(out, "  short %v\n", rec.Change.Remainder())
	}
	return nil
}

// replenish parses "<name> <n>"; the name may contain spaces.
func replenish(out io.Writer, reg *register.Register, args string) error {
	i := strings.LastIndexByte(args, ' ')
	if i < 0 {
		return fmt.Errorf("want \"replenish name count\", got %q", args)
	}
	name := strings.TrimSpace(args[:i])
	count, err := strconv.ParseInt(args[i+1:], 10, 64)
	if err != nil {
		return fmt.Errorf("parsing count: %w", err)
	}
	if err := reg.Replenish(name, count); err != nil {
		return err
	}
	d, _ := reg.Drawer().Find(name)
	fmt.Fprintf(out, "replenished %v\n", d)
	return nil
}

func printDrawer(out io.Writer, reg *register.Register) error {
	bal, err := reg.Drawer().Balance()
	if err != nil {
		return err
	}
	for _, d := range reg.Drawer().Units() {
		fmt.Fprintf(out, "  %v\n", d)
	}
	fmt.Fprintf(out, "balance %v after %d transactions\n", bal, reg.Transactions())
	return nil
}
