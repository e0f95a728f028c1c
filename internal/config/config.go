// ABOUTME: Calculator configuration: profile, macro sliders, weekly plan.
// ABOUTME: JSON file at the XDG config path with env variable overrides.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"

	"github.com/harperreed/macros/internal/models"
)

// Default slider values used when the config carries none.
const (
	DefaultProteinPerKg = 2.2
	DefaultFatPerKg     = 1.0
	DefaultCarbsPerKg   = 3.3
)

// Sliders are the per-kg macro allocation settings.
type Sliders struct {
	ProteinPerKg float64 `json:"protein_per_kg,omitempty"`
	FatPerKg     float64 `json:"fat_per_kg,omitempty"`
	CarbsPerKg   float64 `json:"carbs_per_kg,omitempty"`
}

// Config stores everything the calculator keeps between invocations.
type Config struct {
	Profile *models.Profile    `json:"profile,omitempty"`
	Sliders Sliders            `json:"sliders,omitempty"`
	Plan    *models.WeeklyPlan `json:"plan,omitempty"`
}

// Env holds environment variable overrides.
type Env struct {
	// ConfigPath overrides the config file location.
	ConfigPath string `env:"MACROS_CONFIG"`
	// NoColor disables colored terminal output.
	NoColor bool `env:"MACROS_NO_COLOR"`
}

// ParseEnv reads the environment overrides.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse environment: %w", err)
	}
	return e, nil
}

// GetProteinPerKg returns the configured protein slider, defaulting to 2.2.
func (c *Config) GetProteinPerKg() float64 {
	if c.Sliders.ProteinPerKg == 0 {
		return DefaultProteinPerKg
	}
	return c.Sliders.ProteinPerKg
}

// GetFatPerKg returns the configured fat slider, defaulting to 1.0.
func (c *Config) GetFatPerKg() float64 {
	if c.Sliders.FatPerKg == 0 {
		return DefaultFatPerKg
	}
	return c.Sliders.FatPerKg
}

// GetCarbsPerKg returns the configured carb slider, defaulting to 3.3.
func (c *Config) GetCarbsPerKg() float64 {
	if c.Sliders.CarbsPerKg == 0 {
		return DefaultCarbsPerKg
	}
	return c.Sliders.CarbsPerKg
}

// GetPlan returns the stored weekly plan, creating the default when unset.
func (c *Config) GetPlan() *models.WeeklyPlan {
	if c.Plan == nil {
		c.Plan = models.NewWeeklyPlan()
	}
	return c.Plan
}

// RequireProfile returns the stored profile or an error telling the user
// how to set one.
func (c *Config) RequireProfile() (*models.Profile, error) {
	if c.Profile == nil {
		return nil, fmt.Errorf("no profile set (run: macros profile set --height 182 --weight 85 --age 39 --sex female --activity moderate)")
	}
	return c.Profile, nil
}

// GetConfigPath returns the config file path, honoring MACROS_CONFIG.
func GetConfigPath() string {
	if e, err := ParseEnv(); err == nil && e.ConfigPath != "" {
		return e.ConfigPath
	}
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "macros", "config.json")
}

// Load reads config from disk. A missing file yields an empty config.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
