package acf

import (
	"image"
	"math"

	"gocv.io/x/gocv"

	"surface-metrics/mathutil"
)

// Sal returns the autocorrelation length: the shortest lateral distance at
// which the autocorrelation decays to the threshold fraction s of its
// central value.
func (a *Analysis) Sal(s float64) float64 {
	sal, _ := a.decayLengths(s)
	return sal
}

// Str returns the texture aspect ratio, the shortest decay length divided
// by the longest. Values near 1 indicate isotropic texture; 0 is reported
// when no decay boundary exists.
func (a *Analysis) Str(s float64) float64 {
	sal, sll := a.decayLengths(s)
	if sll == 0 {
		return 0
	}
	return sal / sll
}

// decayLengths returns the (shortest, longest) decay lengths for a
// threshold fraction, computing them once per threshold.
func (a *Analysis) decayLengths(s float64) (float64, float64) {
	a.mu.Lock()
	v, ok := a.cache[s]
	a.mu.Unlock()
	if ok {
		return v[0], v[1]
	}

	sal, sll := a.computeDecayLengths(s)

	a.mu.Lock()
	a.cache[s] = [2]float64{sal, sll}
	a.mu.Unlock()
	return sal, sll
}

// computeDecayLengths thresholds the ACF at the fraction s of its maximum,
// isolates the connected region containing the central peak, and measures
// the nearest and farthest boundary pixels of that region in physical
// units.
func (a *Analysis) computeDecayLengths(s float64) (float64, float64) {
	maxVal := a.data[0]
	for _, v := range a.data {
		if v > maxVal {
			maxVal = v
		}
	}
	threshold := s * maxVal

	mask := gocv.NewMatWithSize(a.rows, a.cols, gocv.MatTypeCV8UC1)
	defer mask.Close()
	for r := 0; r < a.rows; r++ {
		for c := 0; c < a.cols; c++ {
			if a.data[r*a.cols+c] > threshold {
				mask.SetUCharAt(r, c, 255)
			}
		}
	}

	labels := gocv.NewMat()
	defer labels.Close()
	gocv.ConnectedComponents(mask, &labels)
	centerLabel := labels.GetIntAt(a.centerRow, a.centerCol)

	region := gocv.NewMatWithSize(a.rows, a.cols, gocv.MatTypeCV8UC1)
	defer region.Close()
	for r := 0; r < a.rows; r++ {
		for c := 0; c < a.cols; c++ {
			if labels.GetIntAt(r, c) == centerLabel {
				region.SetUCharAt(r, c, 255)
			}
		}
	}

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(3, 3))
	defer kernel.Close()
	dilated := gocv.NewMat()
	defer dilated.Close()
	gocv.Dilate(region, &dilated, kernel)

	edge := gocv.NewMat()
	defer edge.Close()
	gocv.BitwiseXor(dilated, region, &edge)

	minDist := math.Inf(1)
	maxDist := math.Inf(-1)
	var minRow, minCol, maxRow, maxCol int
	found := false

	stepX := a.src.StepX()
	stepY := a.src.StepY()
	for r := 0; r < a.rows; r++ {
		for c := 0; c < a.cols; c++ {
			if edge.GetUCharAt(r, c) == 0 {
				continue
			}
			d := math.Hypot(float64(r-a.centerRow)*stepY, float64(c-a.centerCol)*stepX)
			if d < minDist {
				minDist = d
				minRow, minCol = r, c
			}
			if d > maxDist {
				maxDist = d
				maxRow, maxCol = r, c
			}
			found = true
		}
	}

	if !found {
		return 0, 0
	}

	return a.refineDecayLength(minRow, minCol, threshold),
		a.refineDecayLength(maxRow, maxCol, threshold)
}

// refineDecayLength samples the ACF along the ray from the center to the
// given boundary pixel and returns the distance at which the sampled value
// comes closest to the threshold.
func (a *Analysis) refineDecayLength(row, col int, threshold float64) float64 {
	const nPoints = 1000

	length := math.Hypot(
		float64(row-a.centerRow)*a.src.StepY(),
		float64(col-a.centerCol)*a.src.StepX(),
	)

	values := make([]float64, nPoints)
	for i := 0; i < nPoints; i++ {
		t := float64(i) / float64(nPoints-1)
		r := float64(a.centerRow) + t*float64(row-a.centerRow)
		c := float64(a.centerCol) + t*float64(col-a.centerCol)
		values[i] = a.bilinear(r, c)
	}

	lengths := mathutil.Linspace(0, length, nPoints)
	closest := mathutil.ArgClosest(threshold, values)
	if closest < 0 {
		return length
	}
	return lengths[closest]
}

// bilinear samples the shifted ACF at a fractional position.
func (a *Analysis) bilinear(row, col float64) float64 {
	r0 := int(math.Floor(row))
	c0 := int(math.Floor(col))
	r1 := r0 + 1
	c1 := c0 + 1

	clampR := func(r int) int {
		if r < 0 {
			return 0
		}
		if r >= a.rows {
			return a.rows - 1
		}
		return r
	}
	clampC := func(c int) int {
		if c < 0 {
			return 0
		}
		if c >= a.cols {
			return a.cols - 1
		}
		return c
	}

	fr := row - float64(r0)
	fc := col - float64(c0)

	v00 := a.data[clampR(r0)*a.cols+clampC(c0)]
	v01 := a.data[clampR(r0)*a.cols+clampC(c1)]
	v10 := a.data[clampR(r1)*a.cols+clampC(c0)]
	v11 := a.data[clampR(r1)*a.cols+clampC(c1)]

	return v00*(1-fr)*(1-fc) + v01*(1-fr)*fc + v10*fr*(1-fc) + v11*fr*fc
}
