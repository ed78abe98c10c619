package logger

import (
	"log/slog"
	"strings"
)

// Config describes how the host and its mods log
type Config struct {
	Level       string // debug, info, warn, error
	Format      string // json, text
	ServiceName string
	Version     string
	Environment string // dev, test, prod
	// Location tags every line with the automated location when set
	Location  string
	AddSource bool
}

// NewConfig starts from the preset for environment and overrides level and format when given
func NewConfig(level, format, serviceName, version, environment string) Config {
	cfg := ForEnvironment(environment)
	if level != "" {
		cfg.Level = level
	}
	if format != "" {
		cfg.Format = format
	}
	if serviceName != "" {
		cfg.ServiceName = serviceName
	}
	if version != "" {
		cfg.Version = version
	}
	return cfg
}

// ForEnvironment returns the preset for an environment name; unknown names get DefaultConfig
func ForEnvironment(environment string) Config {
	switch strings.ToLower(environment) {
	case EnvironmentProduction:
		return ProductionConfig()
	case EnvironmentDev:
		return DevelopmentConfig()
	case EnvironmentTest:
		return TestConfig()
	default:
		cfg := DefaultConfig()
		if environment != "" {
			cfg.Environment = environment
		}
		return cfg
	}
}

// ProductionConfig logs JSON at info without source locations
func ProductionConfig() Config {
	return Config{
		Level:       LogLevelInfo,
		Format:      LogFormatJSON,
		ServiceName: DefaultServiceName,
		Version:     ProductionVersion,
		Environment: EnvironmentProduction,
	}
}

// DevelopmentConfig logs text at debug with source locations
func DevelopmentConfig() Config {
	return Config{
		Level:       LogLevelDebug,
		Format:      LogFormatText,
		ServiceName: DefaultServiceName,
		Version:     DefaultVersion,
		Environment: EnvironmentDev,
		AddSource:   true,
	}
}

// TestConfig keeps simulation runs in tests quiet
func TestConfig() Config {
	return Config{
		Level:       LogLevelWarn,
		Format:      LogFormatText,
		ServiceName: DefaultServiceName,
		Version:     DefaultVersion,
		Environment: EnvironmentTest,
	}
}

// DefaultConfig is the fallback when no environment is known
func DefaultConfig() Config {
	return Config{
		Level:       LogLevelInfo,
		Format:      LogFormatText,
		ServiceName: DefaultServiceName,
		Version:     DefaultVersion,
		Environment: EnvironmentDev,
	}
}

// LogLevel parses the level name; "warning" is accepted and anything unknown is info
func (c Config) LogLevel() slog.Level {
	name := strings.ToLower(strings.TrimSpace(c.Level))
	if name == LogLevelWarning {
		return slog.LevelWarn
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// IsJSON reports whether the format is JSON
func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

// BaseAttributes are attached to every line
func (c Config) BaseAttributes() []slog.Attr {
	attrs := []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
	if c.Location != "" {
		attrs = append(attrs, slog.String(AttrKeyLocation, c.Location))
	}
	return attrs
}
