// Package profile analyzes 1D surface profiles and computes the ISO 4287
// roughness parameters Ra, Rq, Rp, Rv, Rz, Rsk, Rku, RSm and Rdq, plus the
// dominant spatial period and material-ratio percentiles.
package profile

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Profile is a 1D sequence of height measurements with a fixed lateral
// step between samples.
type Profile struct {
	data []float64
	step float64
}

// New creates a profile from height data with the given step between
// samples, in the same lateral unit as the heights (conventionally µm).
func New(heights []float64, step float64) (*Profile, error) {
	if len(heights) < 2 {
		return nil, fmt.Errorf("profile requires at least 2 samples, got %d", len(heights))
	}
	if step <= 0 {
		return nil, fmt.Errorf("profile step must be positive, got %g", step)
	}

	data := make([]float64, len(heights))
	copy(data, heights)
	return &Profile{data: data, step: step}, nil
}

// NewSmoothed creates a profile with Savitzky-Golay smoothing applied to
// the height data. An even window is widened by one sample; a window larger
// than the profile is shrunk to fit.
func NewSmoothed(heights []float64, step float64, window, poly int) (*Profile, error) {
	p, err := New(heights, step)
	if err != nil {
		return nil, err
	}

	if window%2 == 0 {
		window++
	}
	if window > len(p.data) {
		window = len(p.data)
		if window%2 == 0 {
			window--
		}
	}

	smoothed, err := savgol(p.data, window, poly)
	if err != nil {
		return nil, fmt.Errorf("smoothing failed: %w", err)
	}
	p.data = smoothed
	return p, nil
}

// Data returns the profile heights. Callers must not modify the returned
// slice.
func (p *Profile) Data() []float64 { return p.data }

// Step returns the lateral distance between samples.
func (p *Profile) Step() float64 { return p.step }

// Length returns the lateral length of the profile.
func (p *Profile) Length() float64 {
	return float64(len(p.data)-1) * p.step
}

// Ra returns the arithmetic mean deviation from the mean line.
func (p *Profile) Ra() float64 {
	mean := stat.Mean(p.data, nil)
	sum := 0.0
	for _, v := range p.data {
		sum += math.Abs(v - mean)
	}
	return sum / float64(len(p.data))
}

// Rq returns the root mean square deviation from the mean line.
func (p *Profile) Rq() float64 {
	mean := stat.Mean(p.data, nil)
	return math.Sqrt(stat.MomentAbout(2, p.data, mean, nil))
}

// Rp returns the maximum peak height above the mean line.
func (p *Profile) Rp() float64 {
	mean := stat.Mean(p.data, nil)
	max := math.Inf(-1)
	for _, v := range p.data {
		if v-mean > max {
			max = v - mean
		}
	}
	return max
}

// Rv returns the maximum valley depth below the mean line.
func (p *Profile) Rv() float64 {
	mean := stat.Mean(p.data, nil)
	min := math.Inf(1)
	for _, v := range p.data {
		if v-mean < min {
			min = v - mean
		}
	}
	return math.Abs(min)
}

// Rz returns the height range Rp + Rv.
func (p *Profile) Rz() float64 {
	return p.Rp() + p.Rv()
}

// Rsk returns the skewness of the height distribution. A zero-variance
// profile reports 0.
func (p *Profile) Rsk() float64 {
	mean := stat.Mean(p.data, nil)
	m2 := stat.MomentAbout(2, p.data, mean, nil)
	if m2 < 1e-20 {
		return 0
	}
	return stat.MomentAbout(3, p.data, mean, nil) / math.Pow(m2, 1.5)
}

// Rku returns the kurtosis of the height distribution (Pearson convention,
// 3 for a Gaussian). A zero-variance profile reports 0.
func (p *Profile) Rku() float64 {
	mean := stat.Mean(p.data, nil)
	m2 := stat.MomentAbout(2, p.data, mean, nil)
	if m2 < 1e-20 {
		return 0
	}
	return stat.MomentAbout(4, p.data, mean, nil) / (m2 * m2)
}

// Rdq returns the root mean square slope of the profile.
func (p *Profile) Rdq() float64 {
	sum := 0.0
	for i := 1; i < len(p.data); i++ {
		slope := (p.data[i] - p.data[i-1]) / p.step
		sum += slope * slope
	}
	return math.Sqrt(sum / float64(len(p.data)-1))
}

// RSm returns the mean lateral spacing between profile peaks. Fewer than
// two detected peaks report 0.
func (p *Profile) RSm() float64 {
	abs := make([]float64, len(p.data))
	maxAbs := 0.0
	for i, v := range p.data {
		abs[i] = math.Abs(v)
		if abs[i] > maxAbs {
			maxAbs = abs[i]
		}
	}

	peaks := findPeaks(abs, 1, 0.05*maxAbs)
	if len(peaks) < 2 {
		return 0
	}

	total := 0.0
	for i := 1; i < len(peaks); i++ {
		total += float64(peaks[i]-peaks[i-1]) * p.step
	}
	return total / float64(len(peaks)-1)
}

// MaterialRatio returns the profile heights at the low and high material
// percentiles (defaults 10 and 80).
func (p *Profile) MaterialRatio(low, high float64) (float64, float64) {
	sorted := make([]float64, len(p.data))
	copy(sorted, p.data)
	sort.Float64s(sorted)

	return stat.Quantile(low/100, stat.LinInterp, sorted, nil),
		stat.Quantile(high/100, stat.LinInterp, sorted, nil)
}

// ToMap collects every profile parameter into a map keyed by its standard
// name. The period entry is NaN when no dominant period exists.
func (p *Profile) ToMap() map[string]float64 {
	period, err := p.Period()
	if err != nil {
		period = math.NaN()
	}
	mrLow, mrHigh := p.MaterialRatio(10, 80)

	return map[string]float64{
		"Ra":               p.Ra(),
		"Rq":               p.Rq(),
		"Rp":               p.Rp(),
		"Rv":               p.Rv(),
		"Rz":               p.Rz(),
		"Rsk":              p.Rsk(),
		"Rku":              p.Rku(),
		"RSm":              p.RSm(),
		"Rdq":              p.Rdq(),
		"Period":           period,
		"MaterialRatio_10": mrLow,
		"MaterialRatio_80": mrHigh,
	}
}
