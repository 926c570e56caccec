package config

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/mokiat/gog/opt"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
	if cfg.Fireflies != 100 || cfg.Stars != 1000 {
		t.Fatalf("unexpected defaults: %d fireflies, %d stars", cfg.Fireflies, cfg.Stars)
	}
	if cfg.Seed.Specified {
		t.Fatal("default seed should be unspecified")
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":         func(c *Config) { c.Width = 0 },
		"negative height":    func(c *Config) { c.Height = -1 },
		"negative fireflies": func(c *Config) { c.Fireflies = -1 },
		"too many fireflies": func(c *Config) { c.Fireflies = maxFireflies + 1 },
		"negative stars":     func(c *Config) { c.Stars = -5 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestZeroFirefliesAllowed(t *testing.T) {
	cfg := Default()
	cfg.Fireflies = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("zero fireflies rejected: %v", err)
	}
}

func TestApplyParams(t *testing.T) {
	params := map[string]string{
		"fireflies": "12",
		"stars":     "34",
		"seed":      "99",
		"log":       "debug",
	}
	cfg := Default()
	if err := cfg.ApplyParams(func(key string) string { return params[key] }); err != nil {
		t.Fatal(err)
	}
	if cfg.Fireflies != 12 || cfg.Stars != 34 {
		t.Fatalf("counts not applied: %+v", cfg)
	}
	if !cfg.Seed.Specified || cfg.Seed.Value != 99 {
		t.Fatalf("seed not applied: %+v", cfg.Seed)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Fatalf("log level not applied: %v", cfg.LogLevel)
	}
}

func TestApplyParamsEmptyKeepsDefaults(t *testing.T) {
	cfg := Default()
	if err := cfg.ApplyParams(func(string) string { return "" }); err != nil {
		t.Fatal(err)
	}
	if cfg.Fireflies != DefaultFireflies || cfg.Stars != DefaultStars {
		t.Fatalf("defaults changed: %+v", cfg)
	}
}

func TestApplyParamsInvalid(t *testing.T) {
	for _, params := range []map[string]string{
		{"fireflies": "many"},
		{"seed": "-3"},
		{"log": "loud"},
		{"fireflies": "-1"},
	} {
		cfg := Default()
		err := cfg.ApplyParams(func(key string) string { return params[key] })
		if !errors.Is(err, ErrInvalid) {
			t.Fatalf("params %v: expected ErrInvalid, got %v", params, err)
		}
	}
}

func TestRandomSeeded(t *testing.T) {
	cfg := Default()
	cfg.Seed = opt.V(uint64(7))
	a, b := cfg.Random(), cfg.Random()
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("seeded sources diverged")
		}
	}
}
