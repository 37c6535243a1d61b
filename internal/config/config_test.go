package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default configuration rejected: %v", err)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "log_level = \"debug\"\n\n[curve]\nbins = 500\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level: expected debug, got %q", cfg.LogLevel)
	}
	if cfg.Curve.Bins != 500 {
		t.Errorf("bins: expected 500, got %d", cfg.Curve.Bins)
	}
	if cfg.Curve.VolumePeakRatio != 10.0 {
		t.Errorf("peak ratio default not applied, got %g", cfg.Curve.VolumePeakRatio)
	}
	if cfg.Filter.MedianSize != 3 {
		t.Errorf("median size default not applied, got %d", cfg.Filter.MedianSize)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[curve]\nbins = 0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected validation error for zero bins")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
