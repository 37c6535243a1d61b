package profile

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// savgol applies a Savitzky-Golay smoothing filter: each sample is
// replaced by the value of a least-squares polynomial fit over the
// surrounding window. Edges are handled by mirror padding.
func savgol(data []float64, window, poly int) ([]float64, error) {
	if window < 3 || window%2 == 0 {
		return nil, fmt.Errorf("window must be odd and >= 3, got %d", window)
	}
	if poly < 1 || poly >= window {
		return nil, fmt.Errorf("polynomial order %d invalid for window %d", poly, window)
	}

	kernel, err := savgolKernel(window, poly)
	if err != nil {
		return nil, err
	}

	half := window / 2
	n := len(data)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < window; j++ {
			sum += kernel[j] * data[mirrorIndex(i+j-half, n)]
		}
		out[i] = sum
	}
	return out, nil
}

// savgolKernel computes the convolution coefficients of the smoothing
// (0th-derivative) Savitzky-Golay filter as the first row of the
// polynomial design matrix's pseudoinverse.
func savgolKernel(window, poly int) ([]float64, error) {
	half := window / 2

	a := mat.NewDense(window, poly+1, nil)
	for i := 0; i < window; i++ {
		x := float64(i - half)
		v := 1.0
		for j := 0; j <= poly; j++ {
			a.Set(i, j, v)
			v *= x
		}
	}

	var ata mat.Dense
	ata.Mul(a.T(), a)
	var inv mat.Dense
	if err := inv.Inverse(&ata); err != nil {
		return nil, fmt.Errorf("design matrix is singular: %w", err)
	}
	var proj mat.Dense
	proj.Mul(&inv, a.T())

	kernel := make([]float64, window)
	for i := range kernel {
		kernel[i] = proj.At(0, i)
	}
	return kernel, nil
}

// mirrorIndex reflects an out-of-range index back into [0, n) without
// repeating the edge sample.
func mirrorIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		}
		if i >= n {
			i = 2*(n-1) - i
		}
	}
	return i
}
