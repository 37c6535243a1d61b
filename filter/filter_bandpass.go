package filter

import (
	"fmt"
	"math"

	"gocv.io/x/gocv"

	"surface-metrics/internal/matconv"
	"surface-metrics/surface"
)

// Bandpass keeps spatial wavelengths between a lower and an upper cutoff by
// masking the surface's Fourier spectrum.
type Bandpass struct {
	lowCutoff  float64
	highCutoff float64
}

// NewBandpass constructs a bandpass filter. Both cutoffs are wavelengths in
// the surface's lateral units; wavelengths in [lowCutoff, highCutoff] pass.
func NewBandpass(lowCutoff, highCutoff float64) (*Bandpass, error) {
	if lowCutoff <= 0 || highCutoff <= 0 {
		return nil, fmt.Errorf("cutoff wavelengths must be positive, got (%g, %g)", lowCutoff, highCutoff)
	}
	if lowCutoff >= highCutoff {
		return nil, fmt.Errorf("low cutoff %g must be below high cutoff %g", lowCutoff, highCutoff)
	}
	return &Bandpass{lowCutoff: lowCutoff, highCutoff: highCutoff}, nil
}

// Apply transforms the surface into the frequency domain, zeroes every
// component outside the passband and transforms back.
func (b *Bandpass) Apply(s *surface.Surface) (*surface.Surface, error) {
	src, err := matconv.ToMat(s)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	freq := gocv.NewMat()
	defer freq.Close()
	if err := gocv.DFT(src, &freq, gocv.DftComplexOutput); err != nil {
		return nil, fmt.Errorf("forward transform failed: %w", err)
	}

	planes := gocv.Split(freq)
	defer func() {
		for _, p := range planes {
			p.Close()
		}
	}()
	if len(planes) != 2 {
		return nil, fmt.Errorf("expected complex spectrum with 2 planes, got %d", len(planes))
	}

	rows := s.Rows()
	cols := s.Cols()
	fMin := 1 / b.highCutoff
	fMax := 1 / b.lowCutoff

	for row := 0; row < rows; row++ {
		fy := frequency(row, rows) / s.StepY()
		for col := 0; col < cols; col++ {
			fx := frequency(col, cols) / s.StepX()
			f := math.Hypot(fx, fy)
			if f < fMin || f > fMax {
				planes[0].SetDoubleAt(row, col, 0)
				planes[1].SetDoubleAt(row, col, 0)
			}
		}
	}

	masked := gocv.NewMat()
	defer masked.Close()
	gocv.Merge(planes, &masked)

	dst := gocv.NewMat()
	defer dst.Close()
	if err := gocv.IDFT(masked, &dst, int(gocv.DftScale|gocv.DftRealOutput), 0); err != nil {
		return nil, fmt.Errorf("inverse transform failed: %w", err)
	}

	data, err := matconv.MatData(dst)
	if err != nil {
		return nil, err
	}
	return s.WithData(data)
}

// frequency returns the unshifted DFT sample frequency of index i in cycles
// per sample, negative in the upper half of the spectrum.
func frequency(i, n int) float64 {
	if i <= n/2 {
		return float64(i) / float64(n)
	}
	return float64(i-n) / float64(n)
}
