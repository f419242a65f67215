/*
Package config - Scheduler Application Configuration

==============================================================================
FILE: internal/config/app_config.go
==============================================================================

DESCRIPTION:
    Central configuration for the scheduler CLI. Loads settings from
    environment variables and an optional .env file, with sensible
    defaults for everything else.

USER PERSPECTIVE:
    - Controls the solver's wall-clock time limit and relative-gap stop

    - Controls log verbosity

DEVELOPER GUIDELINES:
    OK to modify: Add new configuration fields, new env var mappings
    CAUTION: Changing default values (affects solve behavior out of the box)
    DO NOT modify: SolverTimeLimitSeconds' default without updating the CLI docs

CONFIGURATION SOURCES (priority order):
    1. Environment variables
    2. .env file
    3. Default values in DefaultAppConfig()

==============================================================================
*/
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// AppConfig contains all scheduler configuration.
type AppConfig struct {
	Env      string `mapstructure:"ENVIRONMENT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// SolverTimeLimitSeconds bounds the CP-SAT solve wall clock
	// (overridable via SCHEDULER_SOLVER_TIME_LIMIT_SECONDS).
	SolverTimeLimitSeconds int `mapstructure:"SCHEDULER_SOLVER_TIME_LIMIT_SECONDS"`

	// SolverRelativeGap is the early-stop relative gap.
	SolverRelativeGap float64 `mapstructure:"SCHEDULER_SOLVER_RELATIVE_GAP"`
}

// DefaultAppConfig returns configuration with default values.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Env:                    "development",
		LogLevel:               "info",
		SolverTimeLimitSeconds: 300,
		SolverRelativeGap:      0.05,
	}
}

// LoadAppConfig loads configuration from the environment, falling back to
// an optional .env file and then to DefaultAppConfig's values.
func LoadAppConfig() (*AppConfig, error) {
	_ = godotenv.Load()

	config := DefaultAppConfig()

	if env := os.Getenv("ENVIRONMENT"); env != "" {
		config.Env = env
	}
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		config.LogLevel = logLevel
	}
	if limitStr := os.Getenv("SCHEDULER_SOLVER_TIME_LIMIT_SECONDS"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			config.SolverTimeLimitSeconds = limit
		}
	}
	if gapStr := os.Getenv("SCHEDULER_SOLVER_RELATIVE_GAP"); gapStr != "" {
		if gap, err := strconv.ParseFloat(gapStr, 64); err == nil && gap >= 0 {
			config.SolverRelativeGap = gap
		}
	}

	return config, nil
}

// IsProduction returns true if environment is production.
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// IsDevelopment returns true if environment is development.
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}
