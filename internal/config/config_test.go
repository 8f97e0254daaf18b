// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package config_test

import (
	"testing"

	"github.com/db47h/pulsenet/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_defaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, &config.Config{
		LogLevel:   "warn",
		Format:     "text",
		MaxSteps:   1 << 20,
		MaxPresses: 1000000,
		Terminal:   "rx",
	}, cfg)
}

func TestLoadFrom(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"PULSENET_LOG_LEVEL":   "debug",
		"PULSENET_LOG_JSON":    "true",
		"PULSENET_FORMAT":      "yaml",
		"PULSENET_MAX_STEPS":   "100",
		"PULSENET_MAX_PRESSES": "42",
		"PULSENET_TERMINAL":    "out",
	})
	require.NoError(t, err)
	assert.Equal(t, &config.Config{
		LogLevel:   "debug",
		LogJSON:    true,
		Format:     "yaml",
		MaxSteps:   100,
		MaxPresses: 42,
		Terminal:   "out",
	}, cfg)
}

func TestLoadFrom_invalid(t *testing.T) {
	for _, vars := range []map[string]string{
		{"PULSENET_MAX_STEPS": "zero"},
		{"PULSENET_MAX_STEPS": "0"},
		{"PULSENET_MAX_PRESSES": "-1"},
	} {
		_, err := config.LoadFrom(vars)
		assert.Error(t, err, "%v", vars)
	}
}
