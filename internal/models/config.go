package models

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	Seed         int64    `mapstructure:"seed"`
	Orders       int      `mapstructure:"orders"`
	CatalogFile  string   `mapstructure:"catalog-file"`
	MaxPrice     float64  `mapstructure:"max-price"`
	SortBy       string   `mapstructure:"sort-by"`
	Categories   []string `mapstructure:"categories"`
	OutputFolder string   `mapstructure:"output-folder"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			// Allows --categories "classic,specialty" alongside JSON arrays.
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}

// LoadCatalog reads the JSON catalog seed file.
func LoadCatalog(filePath string) ([]*MenuItem, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog file: %w", err)
	}

	var items []*MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("error parsing catalog file %s: %w", filePath, err)
	}
	return items, nil
}
