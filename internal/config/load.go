// Package config loads and validates application configuration from a
// config file and INGATKATA_-prefixed environment variables, the
// environment taking precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment variables, e.g. INGATKATA_SERVER_PORT.
const envPrefix = "INGATKATA"

// Load reads configuration from an optional config file and the
// environment. Pass an empty configFile to rely on defaults and the
// environment alone. Returns a validated Config or an error describing
// what is missing.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("database.driver", "memory")
	// Registered empty so AutomaticEnv can bind them without a config file.
	v.SetDefault("database.path", "")
	v.SetDefault("database.url", "")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.password_hash", "")
	v.SetDefault("auth.token_lifetime_minutes", 60)

	v.SetDefault("srs.fail_delay_seconds", 60)
	v.SetDefault("srs.active_cap", 5)
	v.SetDefault("srs.batch_full", 5)
	v.SetDefault("srs.batch_partial", 2)
	v.SetDefault("srs.high_accuracy", 0.8)
	v.SetDefault("srs.low_accuracy", 0.5)
}
