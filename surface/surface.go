// Package surface provides the height-map type consumed by every analyzer in
// this module: a rectangular grid of measured heights with a lateral sampling
// step in micrometers per axis.
package surface

import "fmt"

// Surface is a measured height map. Heights are stored row-major in
// arbitrary units (conventionally µm); StepX and StepY give the lateral
// distance between neighboring samples. Analyzers treat a Surface as
// immutable input.
type Surface struct {
	data  []float64
	rows  int
	cols  int
	stepX float64
	stepY float64
}

// New creates a Surface from row-major height data.
func New(data []float64, rows, cols int, stepX, stepY float64) (*Surface, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("invalid surface dimensions: %dx%d", cols, rows)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("data length %d does not match dimensions %dx%d", len(data), cols, rows)
	}
	if stepX <= 0 || stepY <= 0 {
		return nil, fmt.Errorf("sampling steps must be positive, got (%g, %g)", stepX, stepY)
	}

	return &Surface{
		data:  data,
		rows:  rows,
		cols:  cols,
		stepX: stepX,
		stepY: stepY,
	}, nil
}

// Rows returns the number of samples along the y axis.
func (s *Surface) Rows() int { return s.rows }

// Cols returns the number of samples along the x axis.
func (s *Surface) Cols() int { return s.cols }

// StepX returns the sampling step along the x axis.
func (s *Surface) StepX() float64 { return s.stepX }

// StepY returns the sampling step along the y axis.
func (s *Surface) StepY() float64 { return s.stepY }

// At returns the height at the given row and column.
func (s *Surface) At(row, col int) float64 {
	return s.data[row*s.cols+col]
}

// Data returns the underlying row-major height data. Callers must not
// modify the returned slice.
func (s *Surface) Data() []float64 {
	return s.data
}

// Row returns a copy of a single row of heights, usable as a 1D profile.
func (s *Surface) Row(row int) []float64 {
	out := make([]float64, s.cols)
	copy(out, s.data[row*s.cols:(row+1)*s.cols])
	return out
}

// Clone returns a deep copy of the surface.
func (s *Surface) Clone() *Surface {
	data := make([]float64, len(s.data))
	copy(data, s.data)
	return &Surface{data: data, rows: s.rows, cols: s.cols, stepX: s.stepX, stepY: s.stepY}
}

// WithData returns a new Surface with the same geometry but replaced height
// data. Filters use it to produce their output without touching the input.
func (s *Surface) WithData(data []float64) (*Surface, error) {
	return New(data, s.rows, s.cols, s.stepX, s.stepY)
}

// Center returns a copy of the surface with the mean height subtracted.
func (s *Surface) Center() *Surface {
	mean := s.Mean()
	out := s.Clone()
	for i := range out.data {
		out.data[i] -= mean
	}
	return out
}

func (s *Surface) String() string {
	return fmt.Sprintf("Surface(%dx%d, step %gx%g µm)", s.cols, s.rows, s.stepX, s.stepY)
}
