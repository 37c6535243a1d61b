package filter

import (
	"fmt"
	"image"
	"math"

	"gocv.io/x/gocv"

	"surface-metrics/internal/matconv"
	"surface-metrics/surface"
)

// Kind selects the passband of a Gaussian filter.
type Kind string

const (
	// Lowpass keeps wavelengths above the cutoff.
	Lowpass Kind = "lowpass"
	// Highpass keeps wavelengths below the cutoff by subtracting the
	// lowpass-filtered data from the original.
	Highpass Kind = "highpass"
)

// Gaussian is a Gaussian topography filter with a cutoff wavelength in the
// surface's lateral units.
type Gaussian struct {
	cutoff float64
	kind   Kind
	border Border
}

// NewGaussian constructs a Gaussian filter. The cutoff is the wavelength at
// which the amplitude transmission drops to 50%.
func NewGaussian(cutoff float64, kind Kind, border Border) (*Gaussian, error) {
	if cutoff <= 0 {
		return nil, fmt.Errorf("cutoff wavelength must be positive, got %g", cutoff)
	}
	if kind != Lowpass && kind != Highpass {
		return nil, fmt.Errorf("%q is not a valid filter kind", string(kind))
	}
	if _, err := border.borderType(); err != nil {
		return nil, err
	}

	return &Gaussian{cutoff: cutoff, kind: kind, border: border}, nil
}

// Sigma converts a cutoff wavelength into the standard deviation of the
// Gaussian kernel whose amplitude transmission at that wavelength is 50%.
func Sigma(cutoff float64) float64 {
	return cutoff / math.Pi * math.Sqrt(math.Ln2/2)
}

// Apply runs the filter and returns the filtered surface.
func (g *Gaussian) Apply(s *surface.Surface) (*surface.Surface, error) {
	border, err := g.border.borderType()
	if err != nil {
		return nil, err
	}

	src, err := matconv.ToMat(s)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	// Cutoff in samples differs per axis when the sampling is anisotropic.
	sigmaX := Sigma(g.cutoff / s.StepX())
	sigmaY := Sigma(g.cutoff / s.StepY())

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.GaussianBlur(src, &dst, image.Point{}, sigmaX, sigmaY, border)

	low, err := matconv.MatData(dst)
	if err != nil {
		return nil, err
	}

	if g.kind == Highpass {
		orig := s.Data()
		for i := range low {
			low[i] = orig[i] - low[i]
		}
	}

	return s.WithData(low)
}
