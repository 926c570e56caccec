// Package cli builds the command line of the game binary.
package cli

import (
	"io"
	"log/slog"

	"github.com/mokiat/gog/opt"
	"github.com/spf13/cobra"

	"github.com/nobonobo/firefly-house/host/config"
)

// RunFunc starts the viewer and blocks until its window closes.
type RunFunc func(cfg config.Config, logger *slog.Logger) error

type Environment struct {
	// Params reads host supplied settings, such as page query values.
	Params    func(key string) string
	SessionID func() string
	LogOutput io.Writer
}

func NewRootCommand(env Environment, run RunFunc) *cobra.Command {
	cfg := config.Default()
	var (
		seed     uint64
		logLevel string
	)

	cmd := &cobra.Command{
		Use:           "game",
		Short:         "Render a house at night surrounded by fireflies",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("seed") {
				cfg.Seed = opt.V(seed)
			}
			level, err := config.ParseLogLevel(logLevel)
			if err != nil {
				return err
			}
			cfg.LogLevel = level
			if env.Params != nil {
				if err := cfg.ApplyParams(env.Params); err != nil {
					return err
				}
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return execute(env, cfg, run)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.Fireflies, "fireflies", cfg.Fireflies, "number of firefly lights")
	flags.IntVar(&cfg.Stars, "stars", cfg.Stars, "number of stars in the sky")
	flags.Uint64Var(&seed, "seed", 0, "seed for firefly placement and motion (random when unset)")
	flags.StringVar(&cfg.AssetsDir, "assets", cfg.AssetsDir, "directory holding house.dat")
	flags.IntVar(&cfg.Width, "width", cfg.Width, "window width in pixels")
	flags.IntVar(&cfg.Height, "height", cfg.Height, "window height in pixels")
	flags.BoolVar(&cfg.Fullscreen, "fullscreen", cfg.Fullscreen, "start in fullscreen")
	flags.BoolVar(&cfg.VSync, "vsync", cfg.VSync, "synchronize frames with the display")
	flags.StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	return cmd
}

func execute(env Environment, cfg config.Config, run RunFunc) error {
	sessionID := "local"
	if env.SessionID != nil {
		sessionID = env.SessionID()
	}
	logger := NewLogger(env.LogOutput, cfg.LogLevel).With(
		slog.String("session", sessionID),
	)
	slog.SetDefault(logger)

	logger.Info("Started",
		slog.Int("fireflies", cfg.Fireflies),
		slog.Int("stars", cfg.Stars),
		slog.Bool("seeded", cfg.Seed.Specified),
	)
	if err := run(cfg, logger); err != nil {
		logger.Error("Crashed",
			slog.String("error", err.Error()),
		)
		return err
	}
	logger.Info("Stopped")
	return nil
}

func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
