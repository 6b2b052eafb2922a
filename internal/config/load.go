// Package config loads bikeshare settings from config.yaml, .env and
// BIKESHARE_* environment variables through viper.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable viper reads.
const EnvPrefix = "BIKESHARE"

// Keys used in config files, flags and the environment.
const (
	KeyDataDir     = "data_dir"
	KeyPageSize    = "page_size"
	KeyVerbose     = "verbose"
	KeyLogFile     = "log_file"
	KeyMetricsAddr = "metrics_addr"
	KeyNoColor     = "no_color"

	KeyChicago     = "cities.chicago"
	KeyNewYorkCity = "cities.new_york_city"
	KeyWashington  = "cities.washington"
)

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault(KeyDataDir, ".")
	viper.SetDefault(KeyPageSize, 5)
	viper.SetDefault(KeyVerbose, false)
	viper.SetDefault(KeyLogFile, "")
	viper.SetDefault(KeyMetricsAddr, "")
	viper.SetDefault(KeyNoColor, false)

	viper.SetDefault(KeyChicago, "chicago.csv")
	viper.SetDefault(KeyNewYorkCity, "new_york_city.csv")
	viper.SetDefault(KeyWashington, "washington.csv")
}

// Load initializes the configuration from file and environment variables.
// A missing config file is not an error; an unreadable one is.
func Load(cfgFile string) error {
	// explicit .env loading; a missing file is fine
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	slog.Debug("Using config file", "path", viper.ConfigFileUsed())
	return nil
}
