package config

import (
	"path/filepath"

	"bikeshare/internal/trips"

	"github.com/spf13/viper"
)

// Settings is a snapshot of the loaded configuration.
type Settings struct {
	DataDir     string
	PageSize    int
	Verbose     bool
	LogFile     string
	MetricsAddr string
	NoColor     bool
	CityFiles   map[trips.City]string
}

// Current reads the settings viper holds right now.
func Current() Settings {
	return Settings{
		DataDir:     viper.GetString(KeyDataDir),
		PageSize:    viper.GetInt(KeyPageSize),
		Verbose:     viper.GetBool(KeyVerbose),
		LogFile:     viper.GetString(KeyLogFile),
		MetricsAddr: viper.GetString(KeyMetricsAddr),
		NoColor:     viper.GetBool(KeyNoColor),
		CityFiles: map[trips.City]string{
			trips.Chicago:     viper.GetString(KeyChicago),
			trips.NewYorkCity: viper.GetString(KeyNewYorkCity),
			trips.Washington:  viper.GetString(KeyWashington),
		},
	}
}

// Sources resolves the city files against DataDir. Absolute paths are kept.
func (s Settings) Sources() trips.Sources {
	paths := make(map[trips.City]string, len(s.CityFiles))
	for city, file := range s.CityFiles {
		if file == "" || filepath.IsAbs(file) {
			paths[city] = file
			continue
		}
		paths[city] = filepath.Join(s.DataDir, file)
	}
	return trips.NewSources(paths)
}
