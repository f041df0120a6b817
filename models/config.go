// Package models defines data structures shared across the pipeline:
// configuration, lifelog entries, and fetch windows.
package models

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrAPIKeyMissing is returned before any fetch when no API key is set.
var ErrAPIKeyMissing = errors.New("LIMITLESS_API_KEY is not set")

const (
	DefaultEndpoint  = "https://api.limitless.ai/v1/lifelogs"
	DefaultOutputDir = "journal"
	DefaultDocSuffix = "Daily Log"
	DefaultTimezone  = "UTC"
)

// Config holds runtime configuration for the journal pipeline.
// Values come from the yaml config file with environment overrides;
// the API key comes from the environment only.
type Config struct {
	Endpoint  string `yaml:"endpoint"`
	Timezone  string `yaml:"timezone"`
	OutputDir string `yaml:"output_dir"`
	DocSuffix string `yaml:"doc_suffix"`
	StateDB   string `yaml:"state_db"`

	APIKey string `yaml:"-"`
}

// LoadConfig reads the yaml config at path (a missing file is fine), loads
// .env if present, and applies environment overrides.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Endpoint:  DefaultEndpoint,
		Timezone:  DefaultTimezone,
		OutputDir: DefaultOutputDir,
		DocSuffix: DefaultDocSuffix,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if v := os.Getenv("LIFELOG_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("LIFELOG_TIMEZONE"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("LIFELOG_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("LIFELOG_STATE_DB"); v != "" {
		cfg.StateDB = v
	}
	cfg.APIKey = os.Getenv("LIMITLESS_API_KEY")

	return cfg, nil
}

// Validate checks that the config is usable before any fetch begins.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrAPIKeyMissing
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return nil
}

// Location resolves the configured time zone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
