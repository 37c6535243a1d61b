// Package filter provides Gaussian, median and bandpass filters for
// topography height maps. Filters are constructed with their parameters and
// applied to a Surface, producing a new Surface and leaving the input
// untouched.
package filter

import (
	"fmt"

	"gocv.io/x/gocv"

	"surface-metrics/surface"
)

// Filter is a topography filter. Apply never modifies the input surface.
type Filter interface {
	Apply(s *surface.Surface) (*surface.Surface, error)
}

// Border selects how a filter treats samples beyond the edge of the height
// map.
type Border string

const (
	// BorderReflect mirrors the data including the edge sample (dcba|abcd).
	BorderReflect Border = "reflect"
	// BorderMirror mirrors the data about the edge sample (dcb|abcd).
	BorderMirror Border = "mirror"
	// BorderNearest repeats the edge sample.
	BorderNearest Border = "nearest"
	// BorderConstant pads with zeros.
	BorderConstant Border = "constant"
)

// borderType maps a Border onto the OpenCV border constant. An empty Border
// defaults to reflection.
func (b Border) borderType() (gocv.BorderType, error) {
	switch b {
	case "", BorderReflect:
		return gocv.BorderReflect, nil
	case BorderMirror:
		return gocv.BorderReflect101, nil
	case BorderNearest:
		return gocv.BorderReplicate, nil
	case BorderConstant:
		return gocv.BorderConstant, nil
	default:
		return 0, fmt.Errorf("%q is not a valid border mode", string(b))
	}
}
