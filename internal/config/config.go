package config

import (
	"os"
	"strconv"
	"strings"

	"strandkin/internal/errors"
)

// Source kinds for the energy parameter provider
const (
	SourceBuiltin = "builtin"
	SourceEnv     = "env"
	SourceYAML    = "yaml"
	SourceJSON    = "json"
)

// Config represents the complete application configuration
type Config struct {
	Energy  EnergyConfig
	Tally   TallyConfig
	Server  ServerConfig
	Logging LoggingConfig
}

// EnergyConfig selects where kinetic parameters come from
type EnergyConfig struct {
	Source       string
	SettingsFile string
	ParameterDir string
}

// TallyConfig holds exposure tally settings
type TallyConfig struct {
	Workers int
}

// ServerConfig holds diagnostics server settings
type ServerConfig struct {
	Port string
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Energy:  *loadEnergyConfig(),
		Tally:   *loadTallyConfig(),
		Server:  *loadServerConfig(),
		Logging: *loadLoggingConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadEnergyConfig() *EnergyConfig {
	return &EnergyConfig{
		Source:       strings.ToLower(getEnvOrDefault("STRANDKIN_SOURCE", SourceBuiltin)),
		SettingsFile: getEnvOrDefault("STRANDKIN_SETTINGS_FILE", ""),
		ParameterDir: getEnvOrDefault("STRANDKIN_PARAM_DIR", ""),
	}
}

func loadTallyConfig() *TallyConfig {
	return &TallyConfig{
		Workers: getEnvIntOrDefault("STRANDKIN_WORKERS", 0),
	}
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port: getEnvOrDefault("PORT", "8080"),
	}
}

func loadLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Level:  getEnvOrDefault("LOG_LEVEL", "info"),
		Format: getEnvOrDefault("LOG_FORMAT", "text"),
	}
}

func validateConfig(config *Config) error {
	switch config.Energy.Source {
	case SourceBuiltin, SourceEnv:
	case SourceYAML, SourceJSON:
		if config.Energy.SettingsFile == "" {
			return errors.ConfigInvalid("STRANDKIN_SETTINGS_FILE is required for " + config.Energy.Source + " settings")
		}
	default:
		return errors.ConfigInvalid("STRANDKIN_SOURCE must be builtin, env, yaml or json")
	}
	if config.Tally.Workers < 0 {
		return errors.ConfigInvalid("STRANDKIN_WORKERS must not be negative")
	}
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT is required")
	}
	if config.Logging.Format != "text" && config.Logging.Format != "json" {
		return errors.ConfigInvalid("LOG_FORMAT must be text or json")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
