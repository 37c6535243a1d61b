package surface

import (
	"math"
	"testing"
)

func TestNewValidation(t *testing.T) {
	if _, err := New([]float64{1, 2, 3}, 2, 2, 1, 1); err == nil {
		t.Error("expected error for data length mismatch")
	}
	if _, err := New([]float64{1, 2, 3, 4}, 2, 2, 0, 1); err == nil {
		t.Error("expected error for non-positive step")
	}
	if _, err := New(nil, 0, 0, 1, 1); err == nil {
		t.Error("expected error for empty dimensions")
	}
}

func TestAmplitudeParameters(t *testing.T) {
	// Heights -1, 1 alternating: mean 0, Sa 1, Sq 1, Ssk 0.
	data := []float64{-1, 1, -1, 1, -1, 1, -1, 1}
	s, err := New(data, 2, 4, 1, 1)
	if err != nil {
		t.Fatalf("surface creation failed: %v", err)
	}

	if got := s.Mean(); math.Abs(got) > 1e-12 {
		t.Errorf("Mean: expected 0, got %g", got)
	}
	if got := s.Sa(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Sa: expected 1, got %g", got)
	}
	if got := s.Sq(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Sq: expected 1, got %g", got)
	}
	if got := s.Ssk(); math.Abs(got) > 1e-12 {
		t.Errorf("Ssk: expected 0, got %g", got)
	}
	if got := s.Sku(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Sku: expected 1 for a two-level surface, got %g", got)
	}
	if got := s.Sz(); math.Abs(got-2) > 1e-12 {
		t.Errorf("Sz: expected 2, got %g", got)
	}
}

func TestFlatSurfaceParameters(t *testing.T) {
	s := Flat(8, 3.5, 1, 1)
	if got := s.Sq(); got != 0 {
		t.Errorf("Sq of a flat surface: expected 0, got %g", got)
	}
	if got := s.Ssk(); got != 0 {
		t.Errorf("Ssk of a flat surface: expected 0, got %g", got)
	}
	if got := s.Sku(); got != 0 {
		t.Errorf("Sku of a flat surface: expected 0, got %g", got)
	}
}

func TestCenterSubtractsMean(t *testing.T) {
	s, _ := New([]float64{1, 2, 3, 4}, 2, 2, 1, 1)
	centered := s.Center()

	if got := centered.Mean(); math.Abs(got) > 1e-12 {
		t.Errorf("centered mean: expected 0, got %g", got)
	}
	// The original surface is untouched.
	if got := s.Mean(); math.Abs(got-2.5) > 1e-12 {
		t.Errorf("original mean changed: got %g", got)
	}
}

func TestSinusoidalGeometry(t *testing.T) {
	s := Sinusoidal(100, 3, 0.5, 0.5)
	if s.Rows() != 100 || s.Cols() != 100 {
		t.Fatalf("expected 100x100 surface, got %dx%d", s.Cols(), s.Rows())
	}
	if s.Max() > 2.0+1e-9 || s.Min() < -2.0-1e-9 {
		t.Errorf("sin+cos heights out of [-2,2]: [%g,%g]", s.Min(), s.Max())
	}
}

func TestAddNoiseDeterminism(t *testing.T) {
	base := Sinusoidal(32, 2, 1, 1)
	a := AddNoise(base, 0.1, 42)
	b := AddNoise(base, 0.1, 42)
	for i := range a.Data() {
		if a.Data()[i] != b.Data()[i] {
			t.Fatalf("same seed produced different noise at index %d", i)
		}
	}
}

func TestRowCopy(t *testing.T) {
	s, _ := New([]float64{1, 2, 3, 4, 5, 6}, 2, 3, 1, 1)
	row := s.Row(1)
	if len(row) != 3 || row[0] != 4 || row[2] != 6 {
		t.Fatalf("unexpected row contents: %v", row)
	}
	row[0] = 99
	if s.At(1, 0) != 4 {
		t.Error("modifying the returned row mutated the surface")
	}
}
