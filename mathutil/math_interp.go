package mathutil

import (
	"fmt"
	"sort"
)

// Interpolator evaluates a piecewise-linear function through a set of
// monotone (x, y) knots.
type Interpolator struct {
	xs []float64
	ys []float64
}

// NewInterpolator builds a piecewise-linear interpolant over monotone knot
// positions. The xs may be non-decreasing or non-increasing (a descending
// axis is reversed internally) and may contain repeated values (plateaus).
// Queries outside the knot range clamp to the boundary value.
func NewInterpolator(xs, ys []float64) (*Interpolator, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("knot length mismatch: %d x values vs %d y values", len(xs), len(ys))
	}
	if len(xs) < 1 {
		return nil, fmt.Errorf("interpolator requires at least one knot")
	}

	if xs[0] > xs[len(xs)-1] {
		xs = reversed(xs)
		ys = reversed(ys)
	} else {
		xs = append([]float64(nil), xs...)
		ys = append([]float64(nil), ys...)
	}

	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			return nil, fmt.Errorf("knot positions are not monotone at index %d", i)
		}
	}

	return &Interpolator{xs: xs, ys: ys}, nil
}

// At evaluates the interpolant at x.
func (ip *Interpolator) At(x float64) float64 {
	n := len(ip.xs)
	if x <= ip.xs[0] {
		return ip.ys[0]
	}
	if x >= ip.xs[n-1] {
		return ip.ys[n-1]
	}

	// Index of the last knot with position <= x.
	i := sort.SearchFloat64s(ip.xs, x)
	if i < n && ip.xs[i] == x {
		for i+1 < n && ip.xs[i+1] == x {
			i++
		}
		return ip.ys[i]
	}
	i--

	x0, x1 := ip.xs[i], ip.xs[i+1]
	if x1 == x0 {
		return ip.ys[i]
	}
	t := (x - x0) / (x1 - x0)
	return ip.ys[i] + t*(ip.ys[i+1]-ip.ys[i])
}

func reversed(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[len(v)-1-i] = x
	}
	return out
}
