// ABOUTME: Tests for calculator configuration management.
// ABOUTME: Covers load, save, slider defaults, and env overrides.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/macros/internal/models"
)

func TestSliderDefaults(t *testing.T) {
	cfg := &Config{}

	if got := cfg.GetProteinPerKg(); got != DefaultProteinPerKg {
		t.Errorf("GetProteinPerKg() = %v, want %v", got, DefaultProteinPerKg)
	}
	if got := cfg.GetFatPerKg(); got != DefaultFatPerKg {
		t.Errorf("GetFatPerKg() = %v, want %v", got, DefaultFatPerKg)
	}
	if got := cfg.GetCarbsPerKg(); got != DefaultCarbsPerKg {
		t.Errorf("GetCarbsPerKg() = %v, want %v", got, DefaultCarbsPerKg)
	}
}

func TestSlidersExplicit(t *testing.T) {
	cfg := &Config{Sliders: Sliders{ProteinPerKg: 2.5, FatPerKg: 0.9, CarbsPerKg: 4.4}}

	if got := cfg.GetProteinPerKg(); got != 2.5 {
		t.Errorf("GetProteinPerKg() = %v, want 2.5", got)
	}
	if got := cfg.GetFatPerKg(); got != 0.9 {
		t.Errorf("GetFatPerKg() = %v, want 0.9", got)
	}
	if got := cfg.GetCarbsPerKg(); got != 4.4 {
		t.Errorf("GetCarbsPerKg() = %v, want 4.4", got)
	}
}

func TestGetPlanCreatesDefault(t *testing.T) {
	cfg := &Config{}

	plan := cfg.GetPlan()
	if plan == nil {
		t.Fatal("GetPlan() returned nil")
	}
	if len(plan.Days) != 7 {
		t.Errorf("expected 7 days, got %d", len(plan.Days))
	}
	// Same instance on repeat calls so mutations stick
	if cfg.GetPlan() != plan {
		t.Error("GetPlan() should return the stored plan")
	}
}

func TestRequireProfileUnset(t *testing.T) {
	cfg := &Config{}
	if _, err := cfg.RequireProfile(); err == nil {
		t.Error("RequireProfile() with no profile expected error, got nil")
	}
}

func TestGetConfigPathXDG(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("MACROS_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	want := filepath.Join(tmpDir, "macros", "config.json")
	if got := GetConfigPath(); got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestGetConfigPathEnvOverride(t *testing.T) {
	t.Setenv("MACROS_CONFIG", "/tmp/custom-macros.json")

	if got := GetConfigPath(); got != "/tmp/custom-macros.json" {
		t.Errorf("GetConfigPath() = %q, want env override", got)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	t.Setenv("MACROS_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
	if cfg.Profile != nil {
		t.Error("expected nil Profile on fresh config")
	}
	if cfg.Plan != nil {
		t.Error("expected nil Plan on fresh config")
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("MACROS_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{
		Profile: &models.Profile{
			HeightCm: 182,
			WeightKg: 85.3,
			AgeYears: 39,
			Sex:      models.SexFemale,
			Activity: models.ActivityModerate,
		},
		Sliders: Sliders{ProteinPerKg: 2.5},
	}
	plan := cfg.GetPlan()
	if err := plan.SetDay(1, models.DayHard); err != nil {
		t.Fatalf("SetDay failed: %v", err)
	}

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if loaded.Profile == nil {
		t.Fatal("loaded config has nil Profile")
	}
	if loaded.Profile.WeightKg != 85.3 {
		t.Errorf("WeightKg = %v, want 85.3", loaded.Profile.WeightKg)
	}
	if loaded.Profile.Sex != models.SexFemale {
		t.Errorf("Sex = %s, want female", loaded.Profile.Sex)
	}
	if loaded.GetProteinPerKg() != 2.5 {
		t.Errorf("GetProteinPerKg() = %v, want 2.5", loaded.GetProteinPerKg())
	}
	if loaded.Plan == nil {
		t.Fatal("loaded config has nil Plan")
	}
	if loaded.Plan.Days[1].Activity != models.DayHard {
		t.Errorf("Days[1].Activity = %s, want hard", loaded.Plan.Days[1].Activity)
	}
}

func TestSaveFilePermissions(t *testing.T) {
	t.Setenv("MACROS_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	info, err := os.Stat(GetConfigPath())
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config file permissions = %o, want 0600", perm)
	}
}

func TestParseEnvNoColor(t *testing.T) {
	t.Setenv("MACROS_NO_COLOR", "true")

	e, err := ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv() failed: %v", err)
	}
	if !e.NoColor {
		t.Error("NoColor = false, want true")
	}
}
