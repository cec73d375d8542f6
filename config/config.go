// Package config loads the cfr configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the file.
const (
	EnvConfig      = "CFR_CONFIG" // path of the file, read by the command line only
	EnvDisclosures = "CFR_DISCLOSURES"
	EnvEODHDAPIKey = "EODHD_API_KEY"
)

// Config is the cfr configuration.
type Config struct {
	// Disclosures is the path to the disclosure records file.
	Disclosures string `yaml:"disclosures" default:"disclosures.csv" validate:"required"`
	// Year selects the disclosures whose transaction date starts with it.
	Year string `yaml:"year" default:"2022" validate:"required,numeric"`
	// Provider is the price provider.
	Provider string `yaml:"provider" default:"yahoo" validate:"oneof=yahoo eodhd"`
	// Summary is the company summarizer.
	Summary string `yaml:"summary" default:"wikipedia" validate:"oneof=wikipedia gemini none"`
	// LookbackDays is the length of price history fetched before today.
	LookbackDays int `yaml:"lookback_days" default:"730" validate:"gt=0"`
	// ReferenceHour is the UTC hour a provider stamps trading days at.
	ReferenceHour int `yaml:"reference_hour" default:"4" validate:"gte=0,lte=22"`

	EODHDAPIKey string `yaml:"eodhd_api_key" validate:"required_if=Provider eodhd"`

	Cache struct {
		// Dir is where HTTP responses are cached, the OS temp dir if empty.
		Dir string `yaml:"dir"`
		// RatePerSecond limits outbound requests.
		RatePerSecond float64 `yaml:"rate_per_second" default:"2" validate:"gt=0"`
	} `yaml:"cache"`

	LogLevel string `yaml:"log_level" default:"info" validate:"oneof=debug info warn error"`
}

// Default returns the configuration used without a file.
func Default() *Config {
	var c Config
	if err := defaults.Set(&c); err != nil {
		// struct tags are constants
		panic(err)
	}
	return &c
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. An empty path loads the defaults only.
//
// The result is not validated: callers apply their own overrides first, then
// call Validate.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	if v := os.Getenv(EnvDisclosures); v != "" {
		c.Disclosures = v
	}
	if v := os.Getenv(EnvEODHDAPIKey); v != "" && c.EODHDAPIKey == "" {
		c.EODHDAPIKey = v
	}
	return c, nil
}

var validate = validator.New()

// Validate checks every field, reporting all invalid ones at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return err
	}
	msgs := make([]string, 0, len(fields))
	for _, fe := range fields {
		msgs = append(msgs, message(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func message(fe validator.FieldError) string {
	field := fe.Namespace()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_if":
		return fmt.Sprintf("%s is required when %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte", "lte":
		return fmt.Sprintf("%s is out of range (%s %s)", field, fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}
