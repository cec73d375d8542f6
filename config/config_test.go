package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfr.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	if c.Disclosures != "disclosures.csv" || c.Year != "2022" || c.Provider != "yahoo" || c.Summary != "wikipedia" {
		t.Errorf("Default() = %+v", c)
	}
	if c.LookbackDays != 730 || c.ReferenceHour != 4 || c.Cache.RatePerSecond != 2 {
		t.Errorf("Default() numbers = %d, %d, %v", c.LookbackDays, c.ReferenceHour, c.Cache.RatePerSecond)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvDisclosures, "")
	t.Setenv(EnvEODHDAPIKey, "")
	path := writeConfig(t, `
year: "2023"
provider: eodhd
eodhd_api_key: secret
reference_hour: 0
cache:
  dir: /tmp/cfr
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Year != "2023" || c.Provider != "eodhd" || c.EODHDAPIKey != "secret" || c.Cache.Dir != "/tmp/cfr" {
		t.Errorf("Load() = %+v", c)
	}
	// an explicit zero is kept
	if c.ReferenceHour != 0 {
		t.Errorf("Load() reference hour = %d, want 0", c.ReferenceHour)
	}
	// absent keys keep their defaults
	if c.Disclosures != "disclosures.csv" || c.Cache.RatePerSecond != 2 {
		t.Errorf("Load() defaults lost: %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv(EnvDisclosures, "house.csv")
	t.Setenv(EnvEODHDAPIKey, "from-env")
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Disclosures != "house.csv" || c.EODHDAPIKey != "from-env" {
		t.Errorf("Load() = %+v", c)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing) succeeded")
	}
	if _, err := Load(writeConfig(t, "year: [")); err == nil {
		t.Error("Load(invalid yaml) succeeded")
	}
}

func TestValidate(t *testing.T) {
	t.Setenv(EnvEODHDAPIKey, "")
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"provider", func(c *Config) { c.Provider = "bloomberg" }, "Config.Provider must be one of: yahoo, eodhd"},
		{"api key", func(c *Config) { c.Provider = "eodhd" }, "Config.EODHDAPIKey is required"},
		{"year", func(c *Config) { c.Year = "" }, "Config.Year is required"},
		{"lookback", func(c *Config) { c.LookbackDays = -1 }, "Config.LookbackDays must be greater than 0"},
		{"hour", func(c *Config) { c.ReferenceHour = 23 }, "Config.ReferenceHour is out of range"},
		{"rate", func(c *Config) { c.Cache.RatePerSecond = 0 }, "Config.Cache.RatePerSecond must be greater than 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want %q", err, tt.want)
			}
		})
	}
}
