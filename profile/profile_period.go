package profile

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Period estimates the dominant spatial period of the profile from the
// most prominent peak of its Fourier magnitude spectrum. It returns an
// error when the spectrum has no significant peak, such as for a flat or
// aperiodic profile.
func (p *Profile) Period() (float64, error) {
	n := len(p.data)

	src := gocv.NewMatWithSize(1, n, gocv.MatTypeCV64F)
	defer src.Close()
	for i, v := range p.data {
		src.SetDoubleAt(0, i, v)
	}

	freq := gocv.NewMat()
	defer freq.Close()
	if err := gocv.DFT(src, &freq, gocv.DftComplexOutput); err != nil {
		return 0, fmt.Errorf("forward transform failed: %w", err)
	}

	planes := gocv.Split(freq)
	defer func() {
		for _, p := range planes {
			p.Close()
		}
	}()
	if len(planes) != 2 {
		return 0, fmt.Errorf("expected complex spectrum with 2 planes, got %d", len(planes))
	}

	// Magnitudes of the positive-frequency half, indexed by frequency bin.
	// The DC slot stays zero so a component in the first bin still forms
	// an interior peak, such as exactly one period across the profile.
	half := n / 2
	if half < 2 {
		return 0, fmt.Errorf("profile too short for period estimation")
	}
	mags := make([]float64, half+1)
	maxMag := 0.0
	for k := 1; k <= half; k++ {
		re := planes[0].GetDoubleAt(0, k)
		im := planes[1].GetDoubleAt(0, k)
		mags[k] = re*re + im*im
		if mags[k] > maxMag {
			maxMag = mags[k]
		}
	}

	if maxMag <= 0 {
		return 0, fmt.Errorf("no spectral content for period estimation")
	}

	peaks := findPeaks(mags, 10, 0.1*maxMag)
	dominant := maxProminencePeak(mags, peaks)
	if dominant < 1 {
		return 0, fmt.Errorf("no significant spectral peak found")
	}

	frequency := float64(dominant) / (float64(n) * p.step)
	return 1 / frequency, nil
}
