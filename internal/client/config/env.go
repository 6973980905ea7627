package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const EnvPrefix = "STOREFRONT_"

// parseEnv overlays cfg with STOREFRONT_* variables found in environment.
// Unset variables keep the current value.
func parseEnv(cfg *Config, environment map[string]string) error {
	if environment == nil {
		environment = map[string]string{}
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix, Environment: environment}); err != nil {
		return fmt.Errorf("config: parse environment: %w", err)
	}
	return nil
}
