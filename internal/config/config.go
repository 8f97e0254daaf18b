// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config loads the pulsenet command defaults from the environment.
//
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config holds the settings shared by all pulsenet commands. Command line
// flags override these values.
//
type Config struct {
	LogLevel   string `env:"PULSENET_LOG_LEVEL" envDefault:"warn"`
	LogJSON    bool   `env:"PULSENET_LOG_JSON"`
	Format     string `env:"PULSENET_FORMAT" envDefault:"text"`
	MaxSteps   int    `env:"PULSENET_MAX_STEPS" envDefault:"1048576"`
	MaxPresses int    `env:"PULSENET_MAX_PRESSES" envDefault:"1000000"`
	Terminal   string `env:"PULSENET_TERMINAL" envDefault:"rx"`
}

// Load parses the environment into a new Config.
//
func Load() (*Config, error) {
	return LoadFrom(nil)
}

// LoadFrom parses vars instead of the process environment when vars is not
// nil.
//
func LoadFrom(vars map[string]string) (*Config, error) {
	var cfg Config
	opts := env.Options{Environment: vars}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the limits are positive.
//
func (c *Config) Validate() error {
	if c.MaxSteps <= 0 {
		return errors.Errorf("max steps must be > 0, got %d", c.MaxSteps)
	}
	if c.MaxPresses <= 0 {
		return errors.Errorf("max presses must be > 0, got %d", c.MaxPresses)
	}
	if c.Terminal == "" {
		return errors.New("terminal module name cannot be empty")
	}
	return nil
}
