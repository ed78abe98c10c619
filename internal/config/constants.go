package config

import "time"

// Configuration file paths
const (
	ConfigPathCrops = "configs/crops.json"
)

// Environment variable names
const (
	EnvSchemaVersion   = "ENV_SCHEMA_VERSION"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvEnvironment     = "ENVIRONMENT"
	EnvServiceName     = "SERVICE_NAME"
	EnvVersion         = "VERSION"
	EnvFarmingLevel    = "FARMING_LEVEL"
	EnvRNGSeed         = "RNG_SEED"
	EnvCropsConfigPath = "CROPS_CONFIG_PATH"
	EnvSimDays         = "SIM_DAYS"
	EnvTicksPerDay     = "TICKS_PER_DAY"
	EnvTickInterval    = "TICK_INTERVAL"
	EnvPotCount        = "POT_COUNT"
	EnvPlantedCrops    = "PLANTED_CROPS"
)

// Defaults
const (
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
	DefaultEnvironment  = "dev"
	DefaultServiceName  = "automate-gardenpot"
	DefaultVersion      = "dev"
	DefaultFarmingLevel = 0
	DefaultSimDays      = 7
	DefaultTicksPerDay  = 3
	DefaultTickInterval = time.Duration(0)
	DefaultPotCount     = 4
	DefaultPlantedCrops = "tomato,parsnip,fairy_rose,blueberry"
)

// Warning thresholds
const (
	MaxNaturalFarmingLevel = 10
)
