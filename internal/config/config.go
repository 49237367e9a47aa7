package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config is the process configuration. Values come from PROMPTDECK_*
// environment variables, overriding an optional config.yaml.
type Config struct {
	DatabaseURL       string `mapstructure:"database_url"`
	Port              string `mapstructure:"port"`
	BlueprintsRootDir string `mapstructure:"blueprints_root_dir"`
}

// Load reads the configuration. cfgFile may be empty, in which case
// ./config.yaml is used when present.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("blueprints_root_dir", "blueprints")

	v.SetEnvPrefix("PROMPTDECK")
	v.AutomaticEnv()
	// Unmarshal only sees keys viper knows about; bind the env-only ones.
	for _, key := range []string{"database_url", "port", "blueprints_root_dir"} {
		_ = v.BindEnv(key)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database_url not set (PROMPTDECK_DATABASE_URL)")
	}
	return &cfg, nil
}
