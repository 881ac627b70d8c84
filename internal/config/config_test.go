package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:   "defaults",
			mutate: func(*Config) {},
		},
		{
			name: "valid overrides",
			mutate: func(c *Config) {
				c.Seed = "cad"
				c.Denominations = []Denomination{{Name: "token", Worth: "0.75", Quantity: 3}}
				c.LogMode = "PROD"
			},
		},
		{
			name:        "unknown seed",
			mutate:      func(c *Config) { c.Seed = "ABC" },
			wantErr:     true,
			errorString: `invalid seed "ABC"`,
		},
		{
			name:        "negative quantity",
			mutate:      func(c *Config) { c.Quantity = -1 },
			wantErr:     true,
			errorString: "invalid quantity -1",
		},
		{
			name: "duplicate denomination",
			mutate: func(c *Config) {
				c.Denominations = []Denomination{
					{Name: "token", Worth: "0.75"},
					{Name: "token", Worth: "0.50"},
				}
			},
			wantErr:     true,
			errorString: `denomination 1: duplicate name "token"`,
		},
		{
			name:        "invalid worth",
			mutate:      func(c *Config) { c.Denominations = []Denomination{{Name: "token", Worth: "-1"}} },
			wantErr:     true,
			errorString: "denomination 0:",
		},
		{
			name:        "invalid tax rate",
			mutate:      func(c *Config) { c.TaxRate = "nine percent" },
			wantErr:     true,
			errorString: `invalid tax rate "nine percent"`,
		},
		{
			name: "maximum below minimum",
			mutate: func(c *Config) {
				c.MinAmount = "10"
				c.MaxAmount = "1"
			},
			wantErr:     true,
			errorString: "maximum amount 1 must not be less than minimum amount 10",
		},
		{
			name:        "invalid log mode",
			mutate:      func(c *Config) { c.LogMode = "verbose" },
			wantErr:     true,
			errorString: `invalid log mode "verbose"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Config.Validate() error = nil, wantErr %v", tt.wantErr)
					return
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Config.Validate() error = %v, want error containing %v", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("TILL_CONFIG", "")
		t.Setenv("TILL_LOG_MODE", "")
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Seed != "USD" || cfg.Quantity != 10 || cfg.LogMode != "dev" {
			t.Errorf("Load() = %+v, want defaults", cfg)
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "till.yaml")
		data := `
seed: EUR
quantity: 3
tax_rate: "0.2"
denominations:
  - name: 1 cent coin
    worth: "0.01"
    quantity: 50
`
		if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
			t.Fatal(err)
		}
		t.Setenv("TILL_CONFIG", "")
		t.Setenv("TILL_LOG_MODE", "prod")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q) error = %v", path, err)
		}
		if cfg.Seed != "EUR" || cfg.Quantity != 3 || cfg.TaxRate != "0.2" {
			t.Errorf("Load(%q) = %+v", path, cfg)
		}
		if cfg.MaxAmount != "100" {
			t.Errorf("Load(%q).MaxAmount = %q, want default 100", path, cfg.MaxAmount)
		}
		if cfg.LogMode != "prod" {
			t.Errorf("Load(%q).LogMode = %q, want prod", path, cfg.LogMode)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})

	t.Run("env path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "other.yaml")
		if err := os.WriteFile(path, []byte("seed: JPY\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		t.Setenv("TILL_CONFIG", path)
		cfg, err := Load("ignored.yaml")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Seed != "JPY" {
			t.Errorf("Load().Seed = %q, want JPY", cfg.Seed)
		}
	})

	t.Run("error", func(t *testing.T) {
		t.Setenv("TILL_CONFIG", "")
		if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Load(missing) error = %v, want %v", err, fs.ErrNotExist)
		}
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("sead: USD\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("Load(%q) succeeded with an unknown key", path)
		}
	})
}

func TestConfig_Drawer(t *testing.T) {
	c := Default()
	c.Quantity = 1
	c.Denominations = []Denomination{
		{Name: "penny", Worth: "0.01", Quantity: 100},
		{Name: "token", Worth: "0.75", Quantity: 4},
	}
	l, err := c.Drawer()
	if err != nil {
		t.Fatalf("Drawer() error = %v", err)
	}
	if d, ok := l.Find("penny"); !ok || d.Quantity() != 100 {
		t.Errorf("Find(\"penny\") = %v, %v, want 100 pennies", d, ok)
	}
	names := l.Names()
	if len(names) != 11 || names[5] != "token" {
		t.Errorf("Names() = %v, want token after the 1 dollar bill", names)
	}
	bal, err := l.Balance()
	if err != nil {
		t.Fatalf("Balance() error = %v", err)
	}
	// 38.91 for one of each, plus 99 pennies and 4 tokens
	if bal.String() != "42.90" {
		t.Errorf("Balance() = %v, want 42.90", bal)
	}

	c.Denominations = []Denomination{{Name: "token", Worth: "abc"}}
	if _, err := c.Drawer(); err == nil {
		t.Errorf("Drawer() succeeded with an invalid worth")
	}
}

func TestConfig_Register(t *testing.T) {
	rc, err := Default().Register()
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if rc.TaxRate.String() != "0.0925" || rc.MinAmount.String() != "0.01" || rc.MaxAmount.String() != "100" || rc.Scale != 2 {
		t.Errorf("Register() = %+v, want defaults", rc)
	}
}
