package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/slekup/blue/internal/paths"
)

// Settings are the per-user preferences for the blue CLI itself.
type Settings struct {
	Version   int    `mapstructure:"version"`
	LogFormat string `mapstructure:"log_format"`
	LogFile   string `mapstructure:"log_file"`
}

// Init configures the global Viper instance for user settings.
// Call this once at application startup before Load.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	viper.AddConfigPath(paths.UserConfigDir())

	viper.SetEnvPrefix("BLUE")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("log_format", "text")
	viper.SetDefault("log_file", "")
}

// Load reads the user settings.
// If path is non-empty that exact file must exist; otherwise a missing
// file falls back to the defaults registered by Init.
func Load(path string) (*Settings, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if path != "" {
				return nil, fmt.Errorf("settings file not found at %s: %w", path, err)
			}
		} else {
			return nil, fmt.Errorf("reading settings file: %w", err)
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshaling settings: %w", err)
	}

	return &s, nil
}
