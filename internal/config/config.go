package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Curve holds the material ratio curve construction settings.
type Curve struct {
	Bins              int     `toml:"bins"`
	VolumePeakRatio   float64 `toml:"volume_peak_ratio"`
	VolumeValleyRatio float64 `toml:"volume_valley_ratio"`
}

// Filter holds the default spatial filtering settings.
type Filter struct {
	LowpassCutoff  float64 `toml:"lowpass_cutoff"`
	HighpassCutoff float64 `toml:"highpass_cutoff"`
	MedianSize     int     `toml:"median_size"`
	Border         string  `toml:"border"`
}

// Autocorrelation holds the spatial parameter settings.
type Autocorrelation struct {
	DecayThreshold float64 `toml:"decay_threshold"`
}

// Config collects every tunable setting of an analysis run.
type Config struct {
	LogLevel        string          `toml:"log_level"`
	Curve           Curve           `toml:"curve"`
	Filter          Filter          `toml:"filter"`
	Autocorrelation Autocorrelation `toml:"autocorrelation"`
}

// Default returns the standard analysis configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Curve: Curve{
			Bins:              10000,
			VolumePeakRatio:   10.0,
			VolumeValleyRatio: 80.0,
		},
		Filter: Filter{
			LowpassCutoff:  10.0,
			HighpassCutoff: 100.0,
			MedianSize:     3,
			Border:         "reflect",
		},
		Autocorrelation: Autocorrelation{
			DecayThreshold: 0.2,
		},
	}
}

// Load reads a TOML configuration file, applying defaults for any
// setting the file omits.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the analyzers cannot accept.
func (c Config) Validate() error {
	if c.Curve.Bins < 1 {
		return fmt.Errorf("curve.bins must be positive, got %d", c.Curve.Bins)
	}
	if c.Curve.VolumePeakRatio < 0 || c.Curve.VolumePeakRatio > 100 {
		return fmt.Errorf("curve.volume_peak_ratio must be in [0, 100], got %g", c.Curve.VolumePeakRatio)
	}
	if c.Curve.VolumeValleyRatio < 0 || c.Curve.VolumeValleyRatio > 100 {
		return fmt.Errorf("curve.volume_valley_ratio must be in [0, 100], got %g", c.Curve.VolumeValleyRatio)
	}
	if c.Filter.LowpassCutoff <= 0 {
		return fmt.Errorf("filter.lowpass_cutoff must be positive, got %g", c.Filter.LowpassCutoff)
	}
	if c.Filter.HighpassCutoff <= 0 {
		return fmt.Errorf("filter.highpass_cutoff must be positive, got %g", c.Filter.HighpassCutoff)
	}
	if c.Filter.MedianSize != 3 && c.Filter.MedianSize != 5 {
		return fmt.Errorf("filter.median_size must be 3 or 5, got %d", c.Filter.MedianSize)
	}
	if c.Autocorrelation.DecayThreshold <= 0 || c.Autocorrelation.DecayThreshold >= 1 {
		return fmt.Errorf("autocorrelation.decay_threshold must be in (0, 1), got %g", c.Autocorrelation.DecayThreshold)
	}
	return nil
}
