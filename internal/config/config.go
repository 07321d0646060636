// Package config loads settings for the postfix command from a TOML file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// FileName is the name of the configuration file that Find looks for.
const FileName = "postfix.toml"

// Config holds settings for evaluating and printing expressions. Fields are
// set, in increasing order of precedence, by Default, the TOML file, and
// POSTFIX_* environment variables.
type Config struct {
	// Format is the fmt verb for results.
	Format string `toml:"format" env:"POSTFIX_FORMAT"`
	// Lines treats each input line as a separate expression.
	Lines bool `toml:"lines" env:"POSTFIX_LINES"`
	// Echo prints each expression next to its result.
	Echo bool `toml:"echo" env:"POSTFIX_ECHO"`
	// Explain prints the reason for NaN results.
	Explain bool `toml:"explain" env:"POSTFIX_EXPLAIN"`
	// HTML strips markup from inputs and escapes outputs.
	HTML bool `toml:"html" env:"POSTFIX_HTML"`
	// Jobs is the number of expressions evaluated concurrently.
	Jobs int `toml:"jobs" env:"POSTFIX_JOBS"`
	// Color is auto, on, or off.
	Color string `toml:"color" env:"POSTFIX_COLOR"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Format: "%g",
		Jobs:   runtime.GOMAXPROCS(0),
		Color:  "auto",
	}
}

// Find looks for FileName in startDir and its parents. The result is empty if
// there is no such file.
func Find(startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Load reads the configuration file at path, if path is not empty, then
// applies environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
		if u := meta.Undecoded(); len(u) > 0 {
			keys := make([]string, len(u))
			for i, k := range u {
				keys[i] = k.String()
			}
			return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		if path != "" {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be positive, not %d", c.Jobs)
	}
	switch c.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("color must be auto, on, or off, not %q", c.Color)
	}
	if !strings.Contains(c.Format, "%") {
		return fmt.Errorf("format %q has no verb", c.Format)
	}
	return nil
}
