// Package acf computes the 2D autocorrelation function of a height map and
// derives the autocorrelation length Sal and the texture aspect ratio Str
// (ISO 25178-2).
package acf

import (
	"fmt"
	"sync"

	"gocv.io/x/gocv"

	"surface-metrics/internal/matconv"
	"surface-metrics/surface"
)

// DefaultThreshold is the fraction of the central autocorrelation value at
// which the decay lengths are measured.
const DefaultThreshold = 0.2

// Analysis holds the autocorrelation function of a surface, shifted so the
// zero-lag peak sits in the center. Decay lengths are memoized per
// threshold; a fully constructed Analysis is safe for concurrent use.
type Analysis struct {
	src       *surface.Surface
	data      []float64 // fftshifted ACF, row-major
	rows      int
	cols      int
	centerRow int
	centerCol int

	mu    sync.Mutex
	cache map[float64][2]float64
}

// New computes the autocorrelation function of a surface. The surface is
// mean-centered before the transform so the zero-lag value equals the
// height variance.
func New(s *surface.Surface) (*Analysis, error) {
	if s == nil {
		return nil, fmt.Errorf("surface is nil")
	}

	centered := s.Center()
	acfData, err := autocorrelate(centered)
	if err != nil {
		return nil, fmt.Errorf("autocorrelation failed: %w", err)
	}

	return &Analysis{
		src:       centered,
		data:      fftshift(acfData, s.Rows(), s.Cols()),
		rows:      s.Rows(),
		cols:      s.Cols(),
		centerRow: s.Rows() / 2,
		centerCol: s.Cols() / 2,
		cache:     make(map[float64][2]float64),
	}, nil
}

// autocorrelate computes the unshifted ACF as the inverse transform of the
// power spectrum, normalized by the sample count.
func autocorrelate(s *surface.Surface) ([]float64, error) {
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

	// Power spectrum |F|^2 = F times its conjugate, which is purely real.
	power := gocv.NewMat()
	defer power.Close()
	imSq := gocv.NewMat()
	defer imSq.Close()
	gocv.Multiply(planes[0], planes[0], &power)
	gocv.Multiply(planes[1], planes[1], &imSq)
	gocv.Add(power, imSq, &power)

	zeros := gocv.NewMatWithSize(power.Rows(), power.Cols(), gocv.MatTypeCV64F)
	defer zeros.Close()
	complexPower := gocv.NewMat()
	defer complexPower.Close()
	gocv.Merge([]gocv.Mat{power, zeros}, &complexPower)

	acfMat := gocv.NewMat()
	defer acfMat.Close()
	if err := gocv.IDFT(complexPower, &acfMat, int(gocv.DftScale|gocv.DftRealOutput), 0); err != nil {
		return nil, fmt.Errorf("inverse transform failed: %w", err)
	}

	data, err := matconv.MatData(acfMat)
	if err != nil {
		return nil, err
	}

	size := float64(len(data))
	for i := range data {
		data[i] /= size
	}
	return data, nil
}

// fftshift swaps the quadrants of a row-major 2D array so the zero-lag
// element moves to (rows/2, cols/2).
func fftshift(data []float64, rows, cols int) []float64 {
	out := make([]float64, len(data))
	for r := 0; r < rows; r++ {
		nr := (r + rows/2) % rows
		for c := 0; c < cols; c++ {
			nc := (c + cols/2) % cols
			out[nr*cols+nc] = data[r*cols+c]
		}
	}
	return out
}

// Data returns the shifted autocorrelation values, row-major. Callers must
// not modify the returned slice.
func (a *Analysis) Data() []float64 { return a.data }

// At returns the autocorrelation value at the given row and column.
func (a *Analysis) At(row, col int) float64 {
	return a.data[row*a.cols+col]
}
