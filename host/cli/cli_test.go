package cli

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/nobonobo/firefly-house/host/config"
)

func runCommand(t *testing.T, env Environment, args ...string) (config.Config, string, error) {
	t.Helper()
	var (
		logs bytes.Buffer
		got  config.Config
	)
	env.LogOutput = &logs
	cmd := NewRootCommand(env, func(cfg config.Config, logger *slog.Logger) error {
		got = cfg
		logger.Debug("running")
		return nil
	})
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return got, logs.String(), err
}

func TestDefaults(t *testing.T) {
	cfg, logs, err := runCommand(t, Environment{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Fireflies != 100 || cfg.Stars != 1000 || cfg.Seed.Specified {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if !strings.Contains(logs, "Started") || !strings.Contains(logs, "Stopped") {
		t.Fatalf("missing lifecycle logs:\n%s", logs)
	}
	if strings.Contains(logs, "running") {
		t.Fatal("debug log emitted at info level")
	}
}

func TestFlags(t *testing.T) {
	cfg, logs, err := runCommand(t, Environment{SessionID: func() string { return "abc" }},
		"--fireflies", "7",
		"--stars", "0",
		"--seed", "42",
		"--width", "640",
		"--height", "480",
		"--fullscreen",
		"--log-level", "debug",
	)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Fireflies != 7 || cfg.Stars != 0 || cfg.Width != 640 || cfg.Height != 480 || !cfg.Fullscreen {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if !cfg.Seed.Specified || cfg.Seed.Value != 42 {
		t.Fatalf("seed not applied: %+v", cfg.Seed)
	}
	if !strings.Contains(logs, "session=abc") || !strings.Contains(logs, "running") {
		t.Fatalf("unexpected logs:\n%s", logs)
	}
}

func TestParamsOverrideFlags(t *testing.T) {
	params := map[string]string{"fireflies": "3"}
	cfg, _, err := runCommand(t, Environment{Params: func(key string) string { return params[key] }},
		"--fireflies", "50",
	)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Fireflies != 3 {
		t.Fatalf("fireflies = %d", cfg.Fireflies)
	}
}

func TestInvalidConfig(t *testing.T) {
	_, _, err := runCommand(t, Environment{}, "--fireflies", "-4")
	if !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	_, _, err = runCommand(t, Environment{}, "--log-level", "chatty")
	if !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestRunFailureLogged(t *testing.T) {
	var logs bytes.Buffer
	cmd := NewRootCommand(Environment{LogOutput: &logs}, func(config.Config, *slog.Logger) error {
		return errors.New("no display")
	})
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err == nil || err.Error() != "no display" {
		t.Fatalf("unexpected error %v", err)
	}
	if !strings.Contains(logs.String(), "Crashed") {
		t.Fatalf("crash not logged:\n%s", logs.String())
	}
}
