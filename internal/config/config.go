// Package config loads the settings of the matdot command from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the environment surface of matdot.
type Config struct {
	LogLevel LogLevel `env:"MATDOT_LOG_LEVEL" envDefault:"info"`
	LogJSON  bool     `env:"MATDOT_LOG_JSON" envDefault:"false"`
}

// ParseEnv loads Config from the process environment.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ParseEnvFrom loads Config from the given variables instead of the process
// environment. Missing keys fall back to their defaults.
func ParseEnvFrom(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
