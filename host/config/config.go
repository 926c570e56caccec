// Package config holds the startup settings shared by the viewers.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/mokiat/gog/opt"
)

const (
	DefaultFireflies = 100
	DefaultStars     = 1000

	maxFireflies = 4096
	maxStars     = 1 << 20
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool

	// AssetsDir is the chunked storage root of the lacking viewer.
	AssetsDir string
	// TextureDir is the URL prefix the three.js viewer loads textures from.
	TextureDir string

	Fireflies int
	Stars     int
	Seed      opt.T[uint64]

	LogLevel slog.Level
}

func Default() Config {
	return Config{
		Title:      "Firefly House",
		Width:      1280,
		Height:     800,
		VSync:      true,
		AssetsDir:  "./assets",
		TextureDir: "textures",
		Fireflies:  DefaultFireflies,
		Stars:      DefaultStars,
		LogLevel:   slog.LevelInfo,
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.Fireflies < 0 || c.Fireflies > maxFireflies {
		return fmt.Errorf("%w: firefly count %d outside [0, %d]", ErrInvalid, c.Fireflies, maxFireflies)
	}
	if c.Stars < 0 || c.Stars > maxStars {
		return fmt.Errorf("%w: star count %d outside [0, %d]", ErrInvalid, c.Stars, maxStars)
	}
	return nil
}

// Random returns the random source for the scene. A specified seed yields a
// reproducible stream.
func (c Config) Random() *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	if c.Seed.Specified {
		seed = c.Seed.Value
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// ApplyParams overrides settings from string parameters, such as browser
// query values. Empty values are left alone.
func (c *Config) ApplyParams(get func(key string) string) error {
	if v := get("fireflies"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: fireflies %q: %w", ErrInvalid, v, err)
		}
		c.Fireflies = n
	}
	if v := get("stars"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: stars %q: %w", ErrInvalid, v, err)
		}
		c.Stars = n
	}
	if v := get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: seed %q: %w", ErrInvalid, v, err)
		}
		c.Seed = opt.V(seed)
	}
	if v := get("log"); v != "" {
		level, err := ParseLogLevel(v)
		if err != nil {
			return err
		}
		c.LogLevel = level
	}
	return c.Validate()
}

func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log level %q: %w", ErrInvalid, s, err)
	}
	return level, nil
}
