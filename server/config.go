package main

/**
 * gosinglish - A Singlish to Sinhala transliteration library
 * Copyright Singlish Project, 2022
 * Licensed under AGPL-3.0-only
 */

import (
	"errors"
	"os"

	"gopkg.in/yaml.v2"
)

// ErrListenMissing means the config file has no listen address
var ErrListenMissing = errors.New("listening address missing")

// Config is the daemon's YAML config file
type Config struct {
	Listen         string   `yaml:"listen"`
	AllowedOrigins []string `yaml:"allowed-origins"`
	SchemeFile     string   `yaml:"scheme-file"`
	Debug          bool     `yaml:"debug"`
}

// LoadConfig reads and validates a config file. An empty scheme-file
// means the built-in Sinhala scheme; empty allowed-origins means any.
func LoadConfig(filename string) (config *Config, err error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, ErrListenMissing
	}

	if config.Listen == "" {
		return nil, ErrListenMissing
	}

	if len(config.AllowedOrigins) == 0 {
		config.AllowedOrigins = []string{"*"}
	}

	return config, nil
}
