// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"pricecalc/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Pricing contains pricing configuration
	Pricing PricingConfig `json:"pricing"`

	// Probe contains connectivity probe configuration
	Probe ProbeConfig `json:"probe"`

	// AWS contains AWS-specific configuration
	AWS AWSConfig `json:"aws"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// DefaultRegion is the region assumed when a request omits one
	DefaultRegion string `json:"default_region"`

	// HoursPerMonth is the usage assumption for monthly projections
	HoursPerMonth float64 `json:"hours_per_month"`

	// MaxResults caps live pricing API result pages
	MaxResults int32 `json:"max_results"`
}

// ProbeConfig contains connectivity probe settings
type ProbeConfig struct {
	// EndpointURL is the remote pricing endpoint used for reachability checks
	EndpointURL string `json:"endpoint_url"`

	// TimeoutSeconds bounds each probe attempt
	TimeoutSeconds int `json:"timeout_seconds"`

	// MaxRetries is the number of retries after the first attempt
	MaxRetries int `json:"max_retries"`

	// RetryDelaySeconds is the fixed delay between attempts
	RetryDelaySeconds int `json:"retry_delay_seconds"`
}

// AWSConfig contains AWS-specific settings
type AWSConfig struct {
	// Profile is the shared-config profile for billing lookups
	Profile string `json:"profile,omitempty"`

	// PricingRegion is the pricing API region (the API lives in us-east-1)
	PricingRegion string `json:"pricing_region"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Pricing: PricingConfig{
			DefaultRegion: "us-east-1",
			HoursPerMonth: 730,
			MaxResults:    100,
		},
		Probe: ProbeConfig{
			EndpointURL:       "https://pricing.us-east-1.amazonaws.com/",
			TimeoutSeconds:    5,
			MaxRetries:        2,
			RetryDelaySeconds: 1,
		},
		AWS: AWSConfig{
			PricingRegion: "us-east-1",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
