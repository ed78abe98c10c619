package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the demo host configuration
type Config struct {
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string `validate:"required"`

	// Simulation
	FarmingLevel    int           `validate:"min=0"`
	RNGSeed         uint64        // 0 picks a random seed
	CropsConfigPath string        `validate:"required"`
	SimDays         int           `validate:"min=1"`
	TicksPerDay     int           `validate:"min=1"`
	TickInterval    time.Duration `validate:"min=0"`
	PotCount        int           `validate:"min=1,max=64"`
	PlantedCrops    []string      `validate:"dive,required"`
}

// Load loads the configuration from the environment and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:       strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:     getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:     getEnv(EnvServiceName, DefaultServiceName),
		Version:         getEnv(EnvVersion, DefaultVersion),
		FarmingLevel:    getEnvAsInt(EnvFarmingLevel, DefaultFarmingLevel),
		CropsConfigPath: getEnv(EnvCropsConfigPath, ConfigPathCrops),
		SimDays:         getEnvAsInt(EnvSimDays, DefaultSimDays),
		TicksPerDay:     getEnvAsInt(EnvTicksPerDay, DefaultTicksPerDay),
		TickInterval:    getEnvAsDuration(EnvTickInterval, DefaultTickInterval),
		PotCount:        getEnvAsInt(EnvPotCount, DefaultPotCount),
		PlantedCrops:    getEnvAsList(EnvPlantedCrops, DefaultPlantedCrops),
	}

	if raw, ok := os.LookupEnv(EnvRNGSeed); ok && raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %w", EnvRNGSeed, err)
		}
		cfg.RNGSeed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags and reports every failing field
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s (%s=%s)", fe.Namespace(), fe.Tag(), fe.Param()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an int, falling back to the default on parse errors
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration retrieves an environment variable as a duration, falling back to the default on parse errors
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping blank entries
func getEnvAsList(key, defaultValue string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, defaultValue), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
