// Package config provides Viper-based configuration loading for the arena.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// PacingConfig holds the presentation delays between game phases.
type PacingConfig struct {
	// Reveal is the pause after each roster card.
	Reveal time.Duration `mapstructure:"reveal"`
	// Intro is the pause after each corner introduction.
	Intro time.Duration `mapstructure:"intro"`
	// Countdown is the pause between countdown ticks.
	Countdown time.Duration `mapstructure:"countdown"`
	// Round is the pause before each combat round.
	Round time.Duration `mapstructure:"round"`
}

// ArenaConfig holds game session settings.
type ArenaConfig struct {
	// Seed makes a run reproducible. Zero selects the crypto source.
	Seed int64 `mapstructure:"seed"`
	// Color enables ANSI colors on the console.
	Color bool `mapstructure:"color"`
	// MaxRounds declares a draw after this many rounds; zero never stops early.
	MaxRounds int          `mapstructure:"max_rounds"`
	Pacing    PacingConfig `mapstructure:"pacing"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Arena   ArenaConfig   `mapstructure:"arena"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateArena(c.Arena); err != nil {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateArena(a ArenaConfig) error {
	var errs []string
	if a.MaxRounds < 0 {
		errs = append(errs, fmt.Sprintf("arena.max_rounds must be >= 0, got %d", a.MaxRounds))
	}
	pacing := map[string]time.Duration{
		"reveal":    a.Pacing.Reveal,
		"intro":     a.Pacing.Intro,
		"countdown": a.Pacing.Countdown,
		"round":     a.Pacing.Round,
	}
	for _, name := range []string{"reveal", "intro", "countdown", "round"} {
		if pacing[name] < 0 {
			errs = append(errs, fmt.Sprintf("arena.pacing.%s must not be negative", name))
		}
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and
// environment variables only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with ARENA_ prefix
	v.SetEnvPrefix("ARENA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")

	v.SetDefault("arena.seed", 0)
	v.SetDefault("arena.color", true)
	v.SetDefault("arena.max_rounds", 1000)
	v.SetDefault("arena.pacing.reveal", "500ms")
	v.SetDefault("arena.pacing.intro", "2s")
	v.SetDefault("arena.pacing.countdown", "1s")
	v.SetDefault("arena.pacing.round", "1s")
}
