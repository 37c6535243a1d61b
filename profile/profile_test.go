package profile

import (
	"math"
	"testing"
)

func sineProfile(n int, periods float64) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * periods * float64(i) / float64(n))
	}
	return data
}

func TestNewValidation(t *testing.T) {
	if _, err := New([]float64{1}, 1); err == nil {
		t.Error("expected error for too few samples")
	}
	if _, err := New([]float64{1, 2}, 0); err == nil {
		t.Error("expected error for non-positive step")
	}
}

func TestAmplitudeParameters(t *testing.T) {
	p, err := New([]float64{-1, 1, -1, 1, -1, 1}, 0.5)
	if err != nil {
		t.Fatalf("profile creation failed: %v", err)
	}

	if got := p.Ra(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Ra: expected 1, got %g", got)
	}
	if got := p.Rq(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Rq: expected 1, got %g", got)
	}
	if got := p.Rp(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Rp: expected 1, got %g", got)
	}
	if got := p.Rv(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Rv: expected 1, got %g", got)
	}
	if got := p.Rz(); math.Abs(got-2) > 1e-12 {
		t.Errorf("Rz: expected 2, got %g", got)
	}
	if got := p.Rsk(); math.Abs(got) > 1e-12 {
		t.Errorf("Rsk: expected 0 for symmetric data, got %g", got)
	}
	// Slope alternates ±4 per step of 0.5.
	if got := p.Rdq(); math.Abs(got-4) > 1e-12 {
		t.Errorf("Rdq: expected 4, got %g", got)
	}
}

func TestZeroVarianceGuards(t *testing.T) {
	p, err := New([]float64{2, 2, 2, 2}, 1)
	if err != nil {
		t.Fatalf("profile creation failed: %v", err)
	}
	if got := p.Rsk(); got != 0 {
		t.Errorf("Rsk of a flat profile: expected 0, got %g", got)
	}
	if got := p.Rku(); got != 0 {
		t.Errorf("Rku of a flat profile: expected 0, got %g", got)
	}
	if _, err := p.Period(); err == nil {
		t.Error("expected period estimation to fail on a flat profile")
	}
}

func TestPeriodOfSine(t *testing.T) {
	// 4 periods over 64 samples at step 0.5: wavelength 8.
	p, err := New(sineProfile(64, 4), 0.5)
	if err != nil {
		t.Fatalf("profile creation failed: %v", err)
	}

	period, err := p.Period()
	if err != nil {
		t.Fatalf("period estimation failed: %v", err)
	}
	if math.Abs(period-8) > 0.5 {
		t.Errorf("expected period 8, got %g", period)
	}
}

func TestPeriodOfSinglePeriodSine(t *testing.T) {
	// One full period across the profile puts all energy in the first
	// frequency bin, which must still be detectable as a spectral peak.
	p, err := New(sineProfile(64, 1), 1)
	if err != nil {
		t.Fatalf("profile creation failed: %v", err)
	}

	period, err := p.Period()
	if err != nil {
		t.Fatalf("period estimation failed: %v", err)
	}
	if math.Abs(period-64) > 1 {
		t.Errorf("expected period 64, got %g", period)
	}
}

func TestRSmOfSine(t *testing.T) {
	p, err := New(sineProfile(200, 5), 1)
	if err != nil {
		t.Fatalf("profile creation failed: %v", err)
	}

	// |sin| peaks twice per period: spacing 20 samples.
	rsm := p.RSm()
	if math.Abs(rsm-20) > 2 {
		t.Errorf("expected mean peak spacing near 20, got %g", rsm)
	}
}

func TestMaterialRatioPercentiles(t *testing.T) {
	data := make([]float64, 101)
	for i := range data {
		data[i] = float64(i)
	}
	p, err := New(data, 1)
	if err != nil {
		t.Fatalf("profile creation failed: %v", err)
	}

	low, high := p.MaterialRatio(10, 80)
	if math.Abs(low-10) > 1 {
		t.Errorf("10th percentile: expected near 10, got %g", low)
	}
	if math.Abs(high-80) > 1 {
		t.Errorf("80th percentile: expected near 80, got %g", high)
	}
	if low >= high {
		t.Errorf("low percentile %g not below high %g", low, high)
	}
}

func TestSmoothingReducesNoise(t *testing.T) {
	base := sineProfile(200, 2)
	noisy := make([]float64, len(base))
	for i, v := range base {
		// Deterministic high-frequency disturbance.
		noisy[i] = v + 0.2*math.Sin(2*math.Pi*40*float64(i)/200)
	}

	rough, err := New(noisy, 1)
	if err != nil {
		t.Fatalf("profile creation failed: %v", err)
	}
	smooth, err := NewSmoothed(noisy, 1, 9, 3)
	if err != nil {
		t.Fatalf("smoothed profile creation failed: %v", err)
	}

	if smooth.Rdq() >= rough.Rdq() {
		t.Errorf("smoothing did not reduce slope roughness: %g >= %g", smooth.Rdq(), rough.Rdq())
	}
}

func TestSmoothedWindowAdjustment(t *testing.T) {
	// Even window widens to odd; oversized window shrinks to the profile.
	if _, err := NewSmoothed(sineProfile(50, 2), 1, 8, 3); err != nil {
		t.Errorf("even window should be adjusted, got error: %v", err)
	}
	if _, err := NewSmoothed(sineProfile(10, 1), 1, 99, 3); err != nil {
		t.Errorf("oversized window should be adjusted, got error: %v", err)
	}
}

func TestSavgolPreservesPolynomial(t *testing.T) {
	// A cubic is reproduced exactly by a cubic Savitzky-Golay fit away
	// from edge effects, and mirror padding keeps edges close.
	data := make([]float64, 50)
	for i := range data {
		x := float64(i) / 10
		data[i] = 0.5*x*x*x - x*x + 3
	}

	smoothed, err := savgol(data, 9, 3)
	if err != nil {
		t.Fatalf("savgol failed: %v", err)
	}
	for i := 5; i < 45; i++ {
		if math.Abs(smoothed[i]-data[i]) > 1e-9 {
			t.Fatalf("cubic not preserved at index %d: %g vs %g", i, smoothed[i], data[i])
		}
	}
}

func TestFindPeaks(t *testing.T) {
	data := []float64{0, 1, 0, 0.05, 0, 2, 0, 1.5, 0}
	peaks := findPeaks(data, 1, 0.1)

	want := []int{1, 5, 7}
	if len(peaks) != len(want) {
		t.Fatalf("expected peaks %v, got %v", want, peaks)
	}
	for i := range want {
		if peaks[i] != want[i] {
			t.Fatalf("expected peaks %v, got %v", want, peaks)
		}
	}

	// Distance filtering keeps the highest peak of a crowded window.
	spaced := findPeaks(data, 4, 0.1)
	for _, i := range spaced {
		if i == 7 {
			t.Fatalf("peak 7 within 4 samples of higher peak 5 should be dropped, got %v", spaced)
		}
	}
}

func TestToMapContainsAllParameters(t *testing.T) {
	p, err := New(sineProfile(64, 4), 1)
	if err != nil {
		t.Fatalf("profile creation failed: %v", err)
	}

	m := p.ToMap()
	for _, key := range []string{"Ra", "Rq", "Rp", "Rv", "Rz", "Rsk", "Rku", "RSm", "Rdq", "Period", "MaterialRatio_10", "MaterialRatio_80"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing parameter %q", key)
		}
	}
}
