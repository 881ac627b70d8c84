// Package config loads the settings of the till command from a YAML file
// and the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/govalues/decimal"
	"gopkg.in/yaml.v3"

	"github.com/govalues/till"
	"github.com/govalues/till/register"
)

// Denomination overrides or extends a unit of the seeded drawer.
type Denomination struct {
	Name     string `yaml:"name"`
	Worth    string `yaml:"worth"`
	Quantity int64  `yaml:"quantity"`
}

type Config struct {
	// Drawer
	Seed          string         `yaml:"seed"`
	Quantity      int64          `yaml:"quantity"`
	Denominations []Denomination `yaml:"denominations"`

	// Register policy
	TaxRate   string `yaml:"tax_rate"`
	MinAmount string `yaml:"min_amount"`
	MaxAmount string `yaml:"max_amount"`
	Scale     int    `yaml:"scale"`

	// Logging
	LogMode string `yaml:"log_mode"`
}

// Default returns a US Dollar drawer with 10 of each unit and the default
// register policy.
func Default() *Config {
	reg := register.DefaultConfig()
	return &Config{
		Seed:      till.USD.Code(),
		Quantity:  10,
		TaxRate:   reg.TaxRate.String(),
		MinAmount: reg.MinAmount.String(),
		MaxAmount: reg.MaxAmount.String(),
		Scale:     reg.Scale,
		LogMode:   "dev",
	}
}

// Load reads the YAML file at path over the defaults.
// TILL_CONFIG replaces path and TILL_LOG_MODE replaces the log mode.
// An empty path with TILL_CONFIG unset yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	path = getEnv("TILL_CONFIG", path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := cfg.Parse(data); err != nil {
			return nil, fmt.Errorf("parsing config %q: %w", path, err)
		}
	}
	cfg.LogMode = getEnv("TILL_LOG_MODE", cfg.LogMode)
	return cfg, nil
}

// Parse decodes YAML over the current values. Unknown keys are rejected.
func (c *Config) Parse(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if _, err := till.ParseSeed(c.Seed); err != nil {
		errs = append(errs, fmt.Sprintf("invalid seed %q: %v", c.Seed, err))
	}
	if c.Quantity < 0 || c.Quantity > till.MaxQuantity {
		errs = append(errs, fmt.Sprintf("invalid quantity %d: must be within [0, %d]", c.Quantity, int64(till.MaxQuantity)))
	}

	seen := make(map[string]bool, len(c.Denominations))
	for i, d := range c.Denominations {
		if seen[d.Name] {
			errs = append(errs, fmt.Sprintf("denomination %d: duplicate name %q", i, d.Name))
		}
		seen[d.Name] = true
		if _, err := till.ParseDenom(d.Name, d.Worth, d.Quantity); err != nil {
			errs = append(errs, fmt.Sprintf("denomination %d: %v", i, err))
		}
	}

	if _, err := c.Register(); err != nil {
		errs = append(errs, err.Error())
	}

	switch strings.ToLower(c.LogMode) {
	case "dev", "development", "prod", "production":
	default:
		errs = append(errs, fmt.Sprintf("invalid log mode %q: must be dev or prod", c.LogMode))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// Register returns the register policy.
func (c *Config) Register() (register.Config, error) {
	var rc register.Config
	var err error
	if rc.TaxRate, err = parseAmount("tax rate", c.TaxRate); err != nil {
		return register.Config{}, err
	}
	if rc.MinAmount, err = parseAmount("minimum amount", c.MinAmount); err != nil {
		return register.Config{}, err
	}
	if rc.MaxAmount, err = parseAmount("maximum amount", c.MaxAmount); err != nil {
		return register.Config{}, err
	}
	rc.Scale = c.Scale
	if err := rc.Validate(); err != nil {
		return register.Config{}, err
	}
	return rc, nil
}

// Drawer returns the seeded ledger with the configured denominations
// modified or added by name.
func (c *Config) Drawer() (*till.Ledger, error) {
	seed, err := till.ParseSeed(c.Seed)
	if err != nil {
		return nil, err
	}
	l, err := seed.Ledger(c.Quantity)
	if err != nil {
		return nil, err
	}
	for _, d := range c.Denominations {
		worth, err := parseAmount("worth of "+d.Name, d.Worth)
		if err != nil {
			return nil, err
		}
		if err := l.ModifyOrAdd(d.Name, d.Name, worth, d.Quantity); err != nil {
			return nil, err
		}
	}
	l.Sort()
	return l, nil
}

func parseAmount(what, s string) (decimal.Decimal, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s %q: %w", what, s, err)
	}
	return d, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
