package abbott

import (
	"fmt"
	"math"

	"surface-metrics/mathutil"
)

// Sk returns the core roughness depth, the height difference of the
// equivalence line between 0% and 100% material ratio. Zero for a flat
// surface.
func (c *Curve) Sk() float64 {
	return c.memoized("Sk", func() float64 {
		return c.yUpper - c.yLower
	})
}

// Smr returns the material ratio in percent at height level h, interpolated
// on the monotone part of the curve (the closure sentinel at index 0 is
// excluded). Queries outside the observed height range clamp to the
// boundary ratio.
func (c *Curve) Smr(h float64) float64 {
	ratioAtHeight, err := mathutil.NewInterpolator(c.heights[1:], c.materialRatio[1:])
	if err != nil {
		return math.NaN()
	}
	return ratioAtHeight.At(h)
}

// Smc returns the height at material ratio mr percent, the inverse of Smr.
// Queries outside the observed ratio range clamp to the boundary height.
func (c *Curve) Smc(mr float64) float64 {
	heightAtRatio, err := mathutil.NewInterpolator(c.materialRatio[1:], c.heights[1:])
	if err != nil {
		return math.NaN()
	}
	return heightAtRatio.At(mr)
}

// Smr1 returns the material ratio bounding the core zone against the peaks.
func (c *Curve) Smr1() float64 {
	return c.memoized("Smr1", func() float64 {
		return c.Smr(c.yUpper)
	})
}

// Smr2 returns the material ratio bounding the core zone against the
// valleys.
func (c *Curve) Smr2() float64 {
	return c.memoized("Smr2", func() float64 {
		return c.Smr(c.yLower)
	})
}

// Spk returns the reduced peak height, twice the peak material area above
// the core zone divided by Smr1. NaN when Smr1 is zero.
func (c *Curve) Spk() float64 {
	return c.memoized("Spk", func() float64 {
		smr1 := c.Smr1()
		if smr1 == 0 {
			return math.NaN()
		}
		idx := mathutil.ArgClosest(c.yUpper, c.heights)
		area := mathutil.Trapezoid(c.materialRatio[:idx], c.heights[:idx])
		return 2 * math.Abs(area) / smr1
	})
}

// Svk returns the reduced valley depth, twice the void area below the core
// zone divided by 100-Smr2. NaN when Smr2 is 100.
func (c *Curve) Svk() float64 {
	return c.memoized("Svk", func() float64 {
		smr2 := c.Smr2()
		if smr2 == 100 {
			return math.NaN()
		}
		idx := mathutil.ArgClosest(c.yLower, c.heights)
		void := make([]float64, len(c.materialRatio)-idx)
		for i, mr := range c.materialRatio[idx:] {
			void[i] = 100 - mr
		}
		area := mathutil.Trapezoid(void, c.heights[idx:])
		return 2 * math.Abs(area) / (100 - smr2)
	})
}

// materialAreaAbove integrates the material ratio over heights above the
// curve point nearest to level.
func (c *Curve) materialAreaAbove(level float64) float64 {
	idx := mathutil.ArgClosest(level, c.heights)
	return math.Abs(mathutil.Trapezoid(c.materialRatio[:idx], c.heights[:idx]))
}

// voidAreaBelow integrates the void ratio (100 - material ratio) over
// heights below the curve point nearest to level.
func (c *Curve) voidAreaBelow(level float64) float64 {
	idx := mathutil.ArgClosest(level, c.heights)
	void := make([]float64, len(c.materialRatio)-idx)
	for i, mr := range c.materialRatio[idx:] {
		void[i] = 100 - mr
	}
	return math.Abs(mathutil.Trapezoid(void, c.heights[idx:]))
}

// Vmp returns the peak material volume above the height at material ratio
// p percent (default 10 by ISO 25178-2).
func (c *Curve) Vmp(p float64) float64 {
	return c.memoized(fmt.Sprintf("Vmp(%g)", p), func() float64 {
		return c.materialAreaAbove(c.Smc(p)) / 100
	})
}

// Vmc returns the core material volume between the heights at material
// ratios p and q percent (defaults 10 and 80 by ISO 25178-2).
func (c *Curve) Vmc(p, q float64) float64 {
	return c.memoized(fmt.Sprintf("Vmc(%g,%g)", p, q), func() float64 {
		return c.materialAreaAbove(c.Smc(q))/100 - c.Vmp(p)
	})
}

// Vvv returns the valley void volume below the height at material ratio
// q percent (default 80 by ISO 25178-2).
func (c *Curve) Vvv(q float64) float64 {
	return c.memoized(fmt.Sprintf("Vvv(%g)", q), func() float64 {
		return c.voidAreaBelow(c.Smc(q)) / 100
	})
}

// Vvc returns the core void volume between the heights at material ratios
// p and q percent (defaults 10 and 80 by ISO 25178-2).
func (c *Curve) Vvc(p, q float64) float64 {
	return c.memoized(fmt.Sprintf("Vvc(%g,%g)", p, q), func() float64 {
		return c.voidAreaBelow(c.Smc(p))/100 - c.Vvv(q)
	})
}
