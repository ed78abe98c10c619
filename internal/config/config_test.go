package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, DefaultServiceName, cfg.ServiceName)
		assert.Equal(t, ConfigPathCrops, cfg.CropsConfigPath)
		assert.Equal(t, 7, cfg.SimDays)
		assert.Equal(t, 3, cfg.TicksPerDay)
		assert.Equal(t, time.Duration(0), cfg.TickInterval)
		assert.Equal(t, 4, cfg.PotCount)
		assert.Equal(t, uint64(0), cfg.RNGSeed)
		assert.Equal(t, []string{"tomato", "parsnip", "fairy_rose", "blueberry"}, cfg.PlantedCrops)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvLogLevel, "DEBUG")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvEnvironment, "prod")
		t.Setenv(EnvFarmingLevel, "6")
		t.Setenv(EnvRNGSeed, "42")
		t.Setenv(EnvCropsConfigPath, "/tmp/crops.json")
		t.Setenv(EnvSimDays, "28")
		t.Setenv(EnvTicksPerDay, "10")
		t.Setenv(EnvTickInterval, "250ms")
		t.Setenv(EnvPotCount, "12")
		t.Setenv(EnvPlantedCrops, "melon")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel, "Log level is normalised to lower case")
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, 6, cfg.FarmingLevel)
		assert.Equal(t, uint64(42), cfg.RNGSeed)
		assert.Equal(t, "/tmp/crops.json", cfg.CropsConfigPath)
		assert.Equal(t, 28, cfg.SimDays)
		assert.Equal(t, 10, cfg.TicksPerDay)
		assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
		assert.Equal(t, 12, cfg.PotCount)
		assert.Equal(t, []string{"melon"}, cfg.PlantedCrops)
	})

	t.Run("returns error for invalid RNG_SEED", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvRNGSeed, "-3")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), EnvRNGSeed)
	})

	t.Run("falls back to defaults for unparsable numbers", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvSimDays, "a week")
		t.Setenv(EnvTickInterval, "soon")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultSimDays, cfg.SimDays)
		assert.Equal(t, DefaultTickInterval, cfg.TickInterval)
	})

	t.Run("rejects out of range values", func(t *testing.T) {
		testCases := []struct {
			name  string
			key   string
			value string
			field string
		}{
			{"unknown log level", EnvLogLevel, "verbose", "LogLevel"},
			{"unknown log format", EnvLogFormat, "xml", "LogFormat"},
			{"negative farming level", EnvFarmingLevel, "-1", "FarmingLevel"},
			{"zero days", EnvSimDays, "0", "SimDays"},
			{"zero ticks", EnvTicksPerDay, "0", "TicksPerDay"},
			{"negative interval", EnvTickInterval, "-1s", "TickInterval"},
			{"too many pots", EnvPotCount, "65", "PotCount"},
			{"empty service name", EnvServiceName, "", "ServiceName"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv(tc.key, tc.value)

				cfg, err := Load()

				require.Error(t, err)
				assert.Nil(t, cfg)
				assert.Contains(t, err.Error(), "invalid configuration")
				assert.Contains(t, err.Error(), tc.field)
			})
		}
	})
}

// Helper function to clear environment variables
func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		EnvSchemaVersion, EnvLogLevel, EnvLogFormat, EnvEnvironment, EnvServiceName, EnvVersion,
		EnvFarmingLevel, EnvRNGSeed, EnvCropsConfigPath, EnvSimDays, EnvTicksPerDay,
		EnvTickInterval, EnvPotCount, EnvPlantedCrops,
	}

	for _, key := range envVars {
		// Register restore with t.Setenv before unsetting
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
