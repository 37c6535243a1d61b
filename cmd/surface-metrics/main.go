package main

import (
	"flag"
	"fmt"
	"os"

	"surface-metrics/abbott"
	"surface-metrics/acf"
	"surface-metrics/filter"
	"surface-metrics/internal/config"
	"surface-metrics/internal/logger"
	"surface-metrics/profile"
	"surface-metrics/surface"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a TOML configuration file")
		logLevel   = flag.String("log-level", "", "override the configured log level")
		size       = flag.Int("size", 200, "side length of the generated surface in samples")
		periods    = flag.Float64("periods", 3, "number of sinusoid periods across the surface")
		noise      = flag.Float64("noise", 0.05, "gaussian noise amplitude added to the surface")
		seed       = flag.Int64("seed", 1, "noise generator seed")
		step       = flag.Float64("step", 1.0, "lateral sampling step in micrometers")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "surface-metrics: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	log := logger.NewConsole(logger.ParseLevel(cfg.LogLevel))

	if err := run(cfg, log, *size, *periods, *noise, *seed, *step); err != nil {
		log.Error("main", err, "analysis failed", nil)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *logger.Logger, size int, periods, noise float64, seed int64, step float64) error {
	surf := surface.Sinusoidal(size, periods, step, step)
	if noise > 0 {
		surf = surface.AddNoise(surf, noise, seed)
	}

	log.Info("surface", "generated test surface", map[string]interface{}{
		"rows": surf.Rows(),
		"cols": surf.Cols(),
		"Sa":   surf.Sa(),
		"Sq":   surf.Sq(),
		"Ssk":  surf.Ssk(),
		"Sku":  surf.Sku(),
		"Sz":   surf.Sz(),
	})

	if err := reportCurve(cfg, log, surf); err != nil {
		return err
	}
	if err := reportFiltered(cfg, log, surf); err != nil {
		return err
	}
	if err := reportSpatial(cfg, log, surf); err != nil {
		return err
	}
	return reportProfile(log, surf)
}

func reportCurve(cfg config.Config, log *logger.Logger, surf *surface.Surface) error {
	curve, err := abbott.NewCurveWithBins(surf, cfg.Curve.Bins)
	if err != nil {
		return fmt.Errorf("building material ratio curve: %w", err)
	}

	log.Info("abbott", "functional parameters", map[string]interface{}{
		"Sk":   curve.Sk(),
		"Spk":  curve.Spk(),
		"Svk":  curve.Svk(),
		"Smr1": curve.Smr1(),
		"Smr2": curve.Smr2(),
	})
	log.Info("abbott", "functional volume parameters", map[string]interface{}{
		"Vmp": curve.Vmp(cfg.Curve.VolumePeakRatio),
		"Vmc": curve.Vmc(cfg.Curve.VolumePeakRatio, cfg.Curve.VolumeValleyRatio),
		"Vvv": curve.Vvv(cfg.Curve.VolumeValleyRatio),
		"Vvc": curve.Vvc(cfg.Curve.VolumePeakRatio, cfg.Curve.VolumeValleyRatio),
	})
	return nil
}

func reportFiltered(cfg config.Config, log *logger.Logger, surf *surface.Surface) error {
	lowpass, err := filter.NewGaussian(cfg.Filter.LowpassCutoff, filter.Lowpass, filter.Border(cfg.Filter.Border))
	if err != nil {
		return fmt.Errorf("configuring lowpass filter: %w", err)
	}
	waviness, err := lowpass.Apply(surf)
	if err != nil {
		return fmt.Errorf("lowpass filtering: %w", err)
	}

	highpass, err := filter.NewGaussian(cfg.Filter.LowpassCutoff, filter.Highpass, filter.Border(cfg.Filter.Border))
	if err != nil {
		return fmt.Errorf("configuring highpass filter: %w", err)
	}
	roughness, err := highpass.Apply(surf)
	if err != nil {
		return fmt.Errorf("highpass filtering: %w", err)
	}

	log.Info("filter", "gaussian decomposition", map[string]interface{}{
		"cutoff":       cfg.Filter.LowpassCutoff,
		"waviness_Sq":  waviness.Sq(),
		"roughness_Sq": roughness.Sq(),
	})

	median, err := filter.NewMedian(cfg.Filter.MedianSize)
	if err != nil {
		return fmt.Errorf("configuring median filter: %w", err)
	}
	leveled, err := filter.NewChain(median, lowpass).Apply(surf)
	if err != nil {
		return fmt.Errorf("leveling chain: %w", err)
	}
	log.Debug("filter", "median and lowpass leveling", map[string]interface{}{
		"median_size": cfg.Filter.MedianSize,
		"Sq":          leveled.Sq(),
	})
	return nil
}

func reportSpatial(cfg config.Config, log *logger.Logger, surf *surface.Surface) error {
	analysis, err := acf.New(surf)
	if err != nil {
		return fmt.Errorf("autocorrelation: %w", err)
	}

	log.Info("acf", "spatial parameters", map[string]interface{}{
		"threshold": cfg.Autocorrelation.DecayThreshold,
		"Sal":       analysis.Sal(cfg.Autocorrelation.DecayThreshold),
		"Str":       analysis.Str(cfg.Autocorrelation.DecayThreshold),
	})
	return nil
}

func reportProfile(log *logger.Logger, surf *surface.Surface) error {
	p, err := profile.New(surf.Row(surf.Rows()/2), surf.StepX())
	if err != nil {
		return fmt.Errorf("building profile: %w", err)
	}

	fields := make(map[string]interface{})
	for k, v := range p.ToMap() {
		fields[k] = v
	}
	log.Info("profile", "center row parameters", fields)
	return nil
}
