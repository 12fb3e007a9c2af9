// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/internal/config"
)

// clearEnv unsets every ALGOKIT_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LOG_LEVEL", "SEED", "SIZE", "MAX_VALUE", "PIVOT", "DUPLICATES", "METRICS"} {
		key := config.Prefix + "_" + k
		if old, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { _ = os.Setenv(key, old) })
		} else {
			t.Cleanup(func() { _ = os.Unsetenv(key) })
		}
		_ = os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		LogLevel:   "info",
		Seed:       1,
		Size:       100,
		MaxValue:   1000,
		Pivot:      "last",
		Duplicates: "any",
		Metrics:    false,
	}, cfg)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, lvl)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALGOKIT_SEED", "99")
	t.Setenv("ALGOKIT_SIZE", "12")
	t.Setenv("ALGOKIT_PIVOT", "median3")
	t.Setenv("ALGOKIT_METRICS", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 12, cfg.Size)
	assert.Equal(t, "median3", cfg.Pivot)
	assert.True(t, cfg.Metrics)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ALGOKIT_SIZE=7\nALGOKIT_DUPLICATES=first\n"), 0o600))
	// Process environment wins over the file.
	t.Setenv("ALGOKIT_DUPLICATES", "last")

	cfg, err := config.Load(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Size)
	assert.Equal(t, "last", cfg.Duplicates)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"ALGOKIT_SIZE":       "-1",
		"ALGOKIT_MAX_VALUE":  "0",
		"ALGOKIT_PIVOT":      "first",
		"ALGOKIT_DUPLICATES": "middle",
		"ALGOKIT_LOG_LEVEL":  "chatty",
		"ALGOKIT_SEED":       "not-a-number",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			_, err := config.Load()
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}
