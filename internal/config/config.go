// SPDX-License-Identifier: MIT

// Package config loads the algokit CLI settings from the environment.
//
// An optional .env file is read first (variables already set in the process
// environment win), then every ALGOKIT_* variable is processed by envconfig.
// Command-line flags override the resulting values.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/algokit/search"
	"github.com/katalvlaran/algokit/sorting"
)

// Prefix is the environment variable prefix, e.g. ALGOKIT_SEED.
const Prefix = "ALGOKIT"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the CLI settings.
type Config struct {
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"` // debug, info, warn, error
	Seed       int64  `envconfig:"SEED" default:"1"`         // RNG seed for generated data; 0 means the default seed
	Size       int    `envconfig:"SIZE" default:"100"`       // generated sequence length
	MaxValue   int    `envconfig:"MAX_VALUE" default:"1000"` // generated values lie in [1, MaxValue]
	Pivot      string `envconfig:"PIVOT" default:"last"`     // quick sort pivot: last, median3, random
	Duplicates string `envconfig:"DUPLICATES" default:"any"` // binary search policy: any, first, last
	Metrics    bool   `envconfig:"METRICS" default:"false"`  // print Prometheus metrics after each command
}

// Load reads the optional env files and processes the environment.
// Missing env files are ignored; malformed ones are an error.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if f == "" {
			continue
		}
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Size < 0 {
		return fmt.Errorf("%w: SIZE must be non-negative, got %d", ErrInvalidConfig, c.Size)
	}
	if c.MaxValue < 1 {
		return fmt.Errorf("%w: MAX_VALUE must be at least 1, got %d", ErrInvalidConfig, c.MaxValue)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := sorting.ParsePivot(c.Pivot); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := search.ParseDuplicatePolicy(c.Duplicates); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (log.Level, error) {
	return log.ParseLevel(c.LogLevel)
}
