package abbott

import (
	"math"

	"surface-metrics/mathutil"
)

// fitEquivalenceLine finds the secant of the material-ratio curve spanning a
// fixed 40% window whose slope is maximal. Heights decrease with increasing
// ratio, so slopes are typically negative and the maximum selects the
// flattest descent; ties resolve to the first candidate by the strict
// comparison. The line is stored as slope/intercept in (ratio%, height)
// space together with its heights at 0% and 100%.
func (c *Curve) fitEquivalenceLine() {
	// The curve's first point is the (100%, max height) closure sentinel;
	// the monotone ascending ratio axis starts at index 1. The search and
	// the interpolant both work on that sub-curve, otherwise the stop
	// condition would fire at the sentinel and no window would ever fit.
	heightAtRatio, err := mathutil.NewInterpolator(c.materialRatio[1:], c.heights[1:])
	if err != nil {
		c.setLine(0, 0)
		return
	}

	maxSlope := math.Inf(-1)
	start := 0
	found := false

	for i := 1; i < len(c.materialRatio); i++ {
		mr := c.materialRatio[i]
		if mr > 100-EquivalenceLineWidth {
			break
		}
		shifted := mr + EquivalenceLineWidth
		if shifted > 100 {
			continue
		}
		slope := (heightAtRatio.At(shifted) - c.heights[i]) / EquivalenceLineWidth
		if slope > maxSlope {
			maxSlope = slope
			start = i
			found = true
		}
	}

	if !found {
		// Pathological curve with no valid 40%-wide window. Fall back to a
		// horizontal line through the first point rather than letting the
		// -Inf sentinel escape into the derived parameters.
		c.setLine(0, 0)
		return
	}

	c.setLine(maxSlope, start)
}

func (c *Curve) setLine(slope float64, i int) {
	c.slope = slope
	c.intercept = c.heights[i] - slope*c.materialRatio[i]
	c.yUpper = c.intercept
	c.yLower = slope*100 + c.intercept
}
