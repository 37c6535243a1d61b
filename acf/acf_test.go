package acf

import (
	"math"
	"testing"

	"surface-metrics/surface"
)

func TestZeroLagEqualsVariance(t *testing.T) {
	s := surface.AddNoise(surface.Sinusoidal(64, 2, 1, 1), 0.1, 3)
	a, err := New(s)
	if err != nil {
		t.Fatalf("analysis failed: %v", err)
	}

	variance := s.Sq() * s.Sq()
	zeroLag := a.At(32, 32)
	if math.Abs(zeroLag-variance) > 1e-6*math.Max(1, variance) {
		t.Errorf("zero-lag ACF %g does not match variance %g", zeroLag, variance)
	}

	// The zero-lag value is the global maximum.
	for _, v := range a.Data() {
		if v > zeroLag+1e-9 {
			t.Fatalf("found ACF value %g above the zero-lag peak %g", v, zeroLag)
		}
	}
}

func TestFlatSurfaceHasNoDecay(t *testing.T) {
	a, err := New(surface.Flat(32, 1.5, 1, 1))
	if err != nil {
		t.Fatalf("analysis failed: %v", err)
	}

	if got := a.Sal(DefaultThreshold); got != 0 {
		t.Errorf("Sal of a flat surface: expected 0, got %g", got)
	}
	if got := a.Str(DefaultThreshold); got != 0 {
		t.Errorf("Str of a flat surface: expected 0, got %g", got)
	}
}

func TestIsotropicTexture(t *testing.T) {
	// sin(x)+cos(y) decays identically along both axes.
	a, err := New(surface.Sinusoidal(64, 4, 1, 1))
	if err != nil {
		t.Fatalf("analysis failed: %v", err)
	}

	sal := a.Sal(DefaultThreshold)
	str := a.Str(DefaultThreshold)

	if sal <= 0 {
		t.Fatalf("expected positive Sal, got %g", sal)
	}
	if sal > 32 {
		t.Errorf("Sal %g exceeds half the surface extent", sal)
	}
	if str <= 0 || str > 1 {
		t.Fatalf("Str %g outside (0,1]", str)
	}
	if str < 0.5 {
		t.Errorf("expected near-isotropic Str, got %g", str)
	}
}

func TestAnisotropicTexture(t *testing.T) {
	// A ridge pattern varying only along x: long correlation along y,
	// short along x, so Str drops well below 1.
	size := 64
	data := make([]float64, size*size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			data[r*size+c] = math.Sin(2 * math.Pi * 4 * float64(c) / float64(size))
		}
	}
	s, err := surface.New(data, size, size, 1, 1)
	if err != nil {
		t.Fatalf("surface creation failed: %v", err)
	}

	a, err := New(s)
	if err != nil {
		t.Fatalf("analysis failed: %v", err)
	}

	str := a.Str(DefaultThreshold)
	iso := 0.6
	if str >= iso {
		t.Errorf("expected anisotropic Str below %g, got %g", iso, str)
	}
	if sal := a.Sal(DefaultThreshold); sal <= 0 {
		t.Errorf("expected positive Sal, got %g", sal)
	}
}

func TestDecayLengthsMemoized(t *testing.T) {
	a, err := New(surface.AddNoise(surface.Sinusoidal(32, 2, 1, 1), 0.05, 9))
	if err != nil {
		t.Fatalf("analysis failed: %v", err)
	}

	first := a.Sal(DefaultThreshold)
	for i := 0; i < 4; i++ {
		if got := a.Sal(DefaultThreshold); got != first {
			t.Fatalf("memoized Sal changed: %g vs %g", got, first)
		}
	}
}
