package surface

import (
	"math"
	"math/rand"
)

// Sinusoidal generates a size×size surface sampled from sin(x)+cos(y) over
// nPeriods full periods per axis. Deterministic; used by tests and the demo
// command as a well-behaved reference topography.
func Sinusoidal(size int, nPeriods float64, stepX, stepY float64) *Surface {
	data := make([]float64, size*size)
	for row := 0; row < size; row++ {
		y := 2 * math.Pi * nPeriods * float64(row) / float64(size)
		for col := 0; col < size; col++ {
			x := 2 * math.Pi * nPeriods * float64(col) / float64(size)
			data[row*size+col] = math.Sin(x) + math.Cos(y)
		}
	}
	s, _ := New(data, size, size, stepX, stepY)
	return s
}

// AddNoise returns a copy of the surface with seeded Gaussian noise of the
// given amplitude added to every sample. A fixed seed keeps test inputs
// reproducible.
func AddNoise(s *Surface, amplitude float64, seed int64) *Surface {
	rng := rand.New(rand.NewSource(seed))
	out := s.Clone()
	data := out.data
	for i := range data {
		data[i] += amplitude * rng.NormFloat64()
	}
	return out
}

// Flat generates a constant-height surface, the degenerate input every
// analyzer must tolerate.
func Flat(size int, height, stepX, stepY float64) *Surface {
	data := make([]float64, size*size)
	for i := range data {
		data[i] = height
	}
	s, _ := New(data, size, size, stepX, stepY)
	return s
}
