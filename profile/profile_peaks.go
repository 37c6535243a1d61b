package profile

import (
	"math"
	"sort"
)

// findPeaks returns the indices of local maxima with at least the given
// prominence, keeping only the highest peak within any minDistance window.
// Indices are returned in ascending order.
func findPeaks(data []float64, minDistance int, minProminence float64) []int {
	var candidates []int
	for i := 1; i < len(data)-1; i++ {
		if data[i] > data[i-1] && data[i] > data[i+1] {
			if prominence(data, i) >= minProminence {
				candidates = append(candidates, i)
			}
		}
	}

	if minDistance <= 1 || len(candidates) < 2 {
		return candidates
	}

	// Greedy selection from the highest peak down, discarding any peak
	// closer than minDistance to an already kept one.
	order := make([]int, len(candidates))
	copy(order, candidates)
	sort.Slice(order, func(a, b int) bool {
		return data[order[a]] > data[order[b]]
	})

	kept := make(map[int]bool)
	for _, i := range order {
		ok := true
		for j := range kept {
			if abs(i-j) < minDistance {
				ok = false
				break
			}
		}
		if ok {
			kept[i] = true
		}
	}

	out := make([]int, 0, len(kept))
	for i := range kept {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// prominence measures how far a peak rises above its surrounding terrain:
// the peak height minus the higher of the two minima separating it from
// higher ground (or the profile ends).
func prominence(data []float64, peak int) float64 {
	h := data[peak]

	leftMin := h
	for i := peak - 1; i >= 0; i-- {
		if data[i] > h {
			break
		}
		if data[i] < leftMin {
			leftMin = data[i]
		}
	}

	rightMin := h
	for i := peak + 1; i < len(data); i++ {
		if data[i] > h {
			break
		}
		if data[i] < rightMin {
			rightMin = data[i]
		}
	}

	return h - math.Max(leftMin, rightMin)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// maxProminencePeak returns the peak index with the largest prominence,
// or -1 when no peaks exist.
func maxProminencePeak(data []float64, peaks []int) int {
	best := -1
	bestProm := 0.0
	for _, i := range peaks {
		p := prominence(data, i)
		if best < 0 || p > bestProm {
			best = i
			bestProm = p
		}
	}
	return best
}
