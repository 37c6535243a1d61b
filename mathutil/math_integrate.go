package mathutil

import "gonum.org/v1/gonum/floats"

// Trapezoid integrates y over x with the composite trapezoid rule. The pairs
// are taken in the order given, without resorting, so a descending x axis
// yields a negative area. Fewer than two points integrate to zero.
func Trapezoid(y, x []float64) float64 {
	if len(y) != len(x) || len(x) < 2 {
		return 0
	}
	area := 0.0
	for i := 1; i < len(x); i++ {
		area += (x[i] - x[i-1]) * (y[i] + y[i-1]) / 2
	}
	return area
}

// ArgClosest returns the index of the element of values nearest to target.
// Ties resolve to the first occurrence. An empty slice returns -1.
func ArgClosest(target float64, values []float64) int {
	best := -1
	bestDist := 0.0
	for i, v := range values {
		d := v - target
		if d < 0 {
			d = -d
		}
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	out := make([]float64, n)
	floats.Span(out, lo, hi)
	return out
}
