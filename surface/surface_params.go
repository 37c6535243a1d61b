package surface

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean returns the mean height.
func (s *Surface) Mean() float64 {
	return stat.Mean(s.data, nil)
}

// Min returns the minimum height.
func (s *Surface) Min() float64 {
	return floats.Min(s.data)
}

// Max returns the maximum height.
func (s *Surface) Max() float64 {
	return floats.Max(s.data)
}

// Sa returns the arithmetic mean deviation of the surface (ISO 25178-2).
func (s *Surface) Sa() float64 {
	mean := s.Mean()
	sum := 0.0
	for _, v := range s.data {
		sum += math.Abs(v - mean)
	}
	return sum / float64(len(s.data))
}

// Sq returns the root mean square deviation of the surface.
func (s *Surface) Sq() float64 {
	mean := s.Mean()
	return math.Sqrt(stat.MomentAbout(2, s.data, mean, nil))
}

// Ssk returns the skewness of the height distribution, normalized by Sq³.
// A zero-variance surface reports 0.
func (s *Surface) Ssk() float64 {
	mean := s.Mean()
	m2 := stat.MomentAbout(2, s.data, mean, nil)
	if m2 < 1e-20 {
		return 0
	}
	return stat.MomentAbout(3, s.data, mean, nil) / math.Pow(m2, 1.5)
}

// Sku returns the kurtosis of the height distribution, normalized by Sq⁴.
// A zero-variance surface reports 0.
func (s *Surface) Sku() float64 {
	mean := s.Mean()
	m2 := stat.MomentAbout(2, s.data, mean, nil)
	if m2 < 1e-20 {
		return 0
	}
	return stat.MomentAbout(4, s.data, mean, nil) / (m2 * m2)
}

// Sp returns the maximum peak height above the mean plane.
func (s *Surface) Sp() float64 {
	return s.Max() - s.Mean()
}

// Sv returns the maximum valley depth below the mean plane.
func (s *Surface) Sv() float64 {
	return math.Abs(s.Min() - s.Mean())
}

// Sz returns the maximum height of the surface, Sp + Sv.
func (s *Surface) Sz() float64 {
	return s.Sp() + s.Sv()
}
