// Package abbott computes the Abbott-Firestone material-ratio curve of a
// height map and derives the ISO 25178-2 functional parameters Sk, Spk, Svk,
// Smr1, Smr2 and the volume parameters Vmp, Vmc, Vvv, Vvc.
package abbott

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/floats"

	"surface-metrics/mathutil"
	"surface-metrics/surface"
)

// EquivalenceLineWidth is the fixed material-ratio width in percent of the
// equivalence-line window defined by ISO 25178-2.
const EquivalenceLineWidth = 40.0

// DefaultBins is the default histogram resolution of the material-ratio
// curve.
const DefaultBins = 10000

// Default material-ratio thresholds of the volume parameters per
// ISO 25178-2: Vmp and Vvc integrate from 10%, Vvv and Vmc from 80%.
const (
	DefaultVolumePeakRatio   = 10.0
	DefaultVolumeValleyRatio = 80.0
)

// Curve is the Abbott-Firestone material-ratio curve of a height map.
// It is immutable after construction; every derived parameter is computed
// at most once per instance and cached under a lock, so a fully constructed
// Curve is safe for concurrent use.
type Curve struct {
	nbins         int
	heights       []float64 // descending, length nbins+1
	materialRatio []float64 // non-decreasing, length nbins+1, starts at 100

	slope     float64
	intercept float64
	yUpper    float64
	yLower    float64

	mu    sync.Mutex
	cache map[string]float64
}

// NewCurve builds the material-ratio curve of a surface using the default
// histogram resolution.
func NewCurve(s *surface.Surface) (*Curve, error) {
	return NewCurveWithBins(s, DefaultBins)
}

// NewCurveWithBins builds the material-ratio curve of a surface with an
// explicit histogram bin count. nbins must be at least 1; higher values
// increase accuracy at the cost of computation time.
func NewCurveWithBins(s *surface.Surface, nbins int) (*Curve, error) {
	if s == nil {
		return nil, fmt.Errorf("surface is nil")
	}
	if nbins < 1 {
		return nil, fmt.Errorf("invalid bin count %d, must be >= 1", nbins)
	}

	c := &Curve{
		nbins: nbins,
		cache: make(map[string]float64),
	}
	if err := c.buildCurve(s.Data()); err != nil {
		return nil, err
	}
	c.fitEquivalenceLine()

	return c, nil
}

// buildCurve computes the descending height levels and the cumulative
// material ratio from the height histogram.
func (c *Curve) buildCurve(data []float64) error {
	counts, edges, err := mathutil.Histogram(data, c.nbins)
	if err != nil {
		return fmt.Errorf("material-ratio histogram failed: %w", err)
	}

	// Reverse counts and edges so index 0 is the highest level, then
	// accumulate the ratio of material at or above each level.
	revCounts := make([]float64, len(counts))
	for i, n := range counts {
		revCounts[len(counts)-1-i] = float64(n)
	}
	heights := make([]float64, len(edges))
	for i, e := range edges {
		heights[len(edges)-1-i] = e
	}

	total := floats.Sum(revCounts)
	cumulative := make([]float64, len(revCounts))
	floats.CumSum(cumulative, revCounts)

	ratio := make([]float64, len(heights))
	ratio[0] = 100
	for i, sum := range cumulative {
		ratio[i+1] = sum / total * 100
	}

	c.heights = heights
	c.materialRatio = ratio
	return nil
}

// Bins returns the histogram resolution the curve was built with.
func (c *Curve) Bins() int { return c.nbins }

// Heights returns the curve's height levels, descending from the maximum to
// the minimum height. Callers must not modify the returned slice.
func (c *Curve) Heights() []float64 { return c.heights }

// MaterialRatio returns the cumulative material ratio in percent, aligned
// index-for-index with Heights. The first element is always the 100%
// closure point; from index 1 on the ratio is non-decreasing as the height
// descends. Callers must not modify the returned slice.
func (c *Curve) MaterialRatio() []float64 { return c.materialRatio }

// Slope returns the slope of the equivalence line in height per percent.
func (c *Curve) Slope() float64 { return c.slope }

// Intercept returns the equivalence-line height at 0% material ratio.
func (c *Curve) Intercept() float64 { return c.intercept }

// YUpper returns the equivalence-line height at 0% material ratio.
func (c *Curve) YUpper() float64 { return c.yUpper }

// YLower returns the equivalence-line height at 100% material ratio.
func (c *Curve) YLower() float64 { return c.yLower }

// memoized returns the cached value for key, computing it with fn on first
// use. The lock is not held during fn so parameters may depend on each other;
// concurrent first use can duplicate a computation, but every computation is
// a pure function of the curve, so racing writers always store the same
// value and concurrent use stays safe.
func (c *Curve) memoized(key string, fn func() float64) float64 {
	c.mu.Lock()
	v, ok := c.cache[key]
	c.mu.Unlock()
	if ok {
		return v
	}

	v = fn()

	c.mu.Lock()
	c.cache[key] = v
	c.mu.Unlock()
	return v
}
