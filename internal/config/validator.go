package config

import (
	"fmt"
	"os"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// ValidateEnv checks that the .env schema version, when set, matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion != "" && schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("%s mismatch: expected %s, got %s - your .env file may be outdated",
			EnvSchemaVersion, ExpectedEnvSchemaVersion, schemaVersion)
	}
	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for settings that load fine but are probably not what the user meant
func ValidateEnvWithWarnings(cfg *Config) ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv(EnvSchemaVersion) == "" {
		warnings = append(warnings, fmt.Sprintf("%s is not set - expected %s", EnvSchemaVersion, ExpectedEnvSchemaVersion))
	}

	if cfg == nil {
		return warnings, nil
	}

	if cfg.FarmingLevel > MaxNaturalFarmingLevel {
		warnings = append(warnings, fmt.Sprintf("%s=%d is above the natural maximum of %d - harvest bonuses will be inflated",
			EnvFarmingLevel, cfg.FarmingLevel, MaxNaturalFarmingLevel))
	}

	if len(cfg.PlantedCrops) > cfg.PotCount {
		warnings = append(warnings, fmt.Sprintf("%s lists %d crops but only %d pots are placed - extra crops are ignored",
			EnvPlantedCrops, len(cfg.PlantedCrops), cfg.PotCount))
	}

	return warnings, nil
}
