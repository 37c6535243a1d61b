package filter

import (
	"fmt"

	"gocv.io/x/gocv"

	"surface-metrics/internal/matconv"
	"surface-metrics/surface"
)

// Median is a median topography filter, mainly useful for removing
// measurement spikes.
type Median struct {
	size int
}

// NewMedian constructs a median filter with a square window. OpenCV only
// runs the median on floating-point data for window sizes 3 and 5.
func NewMedian(size int) (*Median, error) {
	if size != 3 && size != 5 {
		return nil, fmt.Errorf("median window size must be 3 or 5, got %d", size)
	}
	return &Median{size: size}, nil
}

// Apply runs the filter and returns the filtered surface. The computation
// runs in single precision, the only floating-point path the OpenCV median
// supports.
func (m *Median) Apply(s *surface.Surface) (*surface.Surface, error) {
	src, err := matconv.ToMat32(s)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.MedianBlur(src, &dst, m.size)

	data, err := matconv.MatData(dst)
	if err != nil {
		return nil, err
	}
	return s.WithData(data)
}
