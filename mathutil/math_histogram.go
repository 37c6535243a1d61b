package mathutil

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Histogram bins data into nbins equal-width bins spanning [min, max] of the
// input. It returns the per-bin counts (length nbins) and the bin edges
// (length nbins+1). A value equal to the upper edge of the range is counted
// in the last bin, so every input value is counted exactly once.
func Histogram(data []float64, nbins int) ([]int, []float64, error) {
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("histogram input is empty")
	}
	if nbins < 1 {
		return nil, nil, fmt.Errorf("histogram bin count must be >= 1, got %d", nbins)
	}

	lo := floats.Min(data)
	hi := floats.Max(data)

	counts := make([]int, nbins)
	edges := make([]float64, nbins+1)

	if lo == hi {
		// Zero-variance input: all edges collapse onto the single value and
		// the whole population sits in the topmost bin, so the cumulative
		// material ratio is 100% at every level.
		for i := range edges {
			edges[i] = lo
		}
		counts[nbins-1] = len(data)
		return counts, edges, nil
	}

	floats.Span(edges, lo, hi)

	width := (hi - lo) / float64(nbins)
	for _, v := range data {
		bin := int((v - lo) / width)
		if bin >= nbins {
			bin = nbins - 1
		}
		counts[bin]++
	}

	return counts, edges, nil
}
