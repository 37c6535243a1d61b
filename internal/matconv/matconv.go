// Package matconv converts between Surface height maps and gocv Mats.
// Heights travel as CV_64F by default; the CV_32F path exists for OpenCV
// operations that do not accept double-precision input.
package matconv

import (
	"fmt"

	"gocv.io/x/gocv"

	"surface-metrics/surface"
)

// ToMat copies a surface into a newly allocated CV_64F Mat. The caller owns
// the Mat and must Close it.
func ToMat(s *surface.Surface) (gocv.Mat, error) {
	if s == nil {
		return gocv.Mat{}, fmt.Errorf("surface is nil")
	}

	mat := gocv.NewMatWithSize(s.Rows(), s.Cols(), gocv.MatTypeCV64F)
	for row := 0; row < s.Rows(); row++ {
		for col := 0; col < s.Cols(); col++ {
			mat.SetDoubleAt(row, col, s.At(row, col))
		}
	}
	return mat, nil
}

// ToMat32 copies a surface into a newly allocated CV_32F Mat for operations
// that reject CV_64F input. The caller owns the Mat and must Close it.
func ToMat32(s *surface.Surface) (gocv.Mat, error) {
	if s == nil {
		return gocv.Mat{}, fmt.Errorf("surface is nil")
	}

	mat := gocv.NewMatWithSize(s.Rows(), s.Cols(), gocv.MatTypeCV32F)
	for row := 0; row < s.Rows(); row++ {
		for col := 0; col < s.Cols(); col++ {
			mat.SetFloatAt(row, col, float32(s.At(row, col)))
		}
	}
	return mat, nil
}

// ToSurface reads a single-channel Mat back into a Surface with the
// geometry of the template surface.
func ToSurface(mat gocv.Mat, template *surface.Surface) (*surface.Surface, error) {
	if mat.Empty() {
		return nil, fmt.Errorf("mat is empty")
	}
	if mat.Channels() != 1 {
		return nil, fmt.Errorf("expected single-channel mat, got %d channels", mat.Channels())
	}
	if mat.Rows() != template.Rows() || mat.Cols() != template.Cols() {
		return nil, fmt.Errorf("mat size %dx%d does not match surface %dx%d",
			mat.Cols(), mat.Rows(), template.Cols(), template.Rows())
	}

	data, err := MatData(mat)
	if err != nil {
		return nil, err
	}
	return template.WithData(data)
}

// MatData reads a single-channel CV_64F or CV_32F Mat into a row-major
// float64 slice.
func MatData(mat gocv.Mat) ([]float64, error) {
	if mat.Empty() {
		return nil, fmt.Errorf("mat is empty")
	}
	if mat.Channels() != 1 {
		return nil, fmt.Errorf("expected single-channel mat, got %d channels", mat.Channels())
	}

	rows := mat.Rows()
	cols := mat.Cols()
	data := make([]float64, rows*cols)

	switch mat.Type() {
	case gocv.MatTypeCV64F:
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				data[row*cols+col] = mat.GetDoubleAt(row, col)
			}
		}
	case gocv.MatTypeCV32F:
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				data[row*cols+col] = float64(mat.GetFloatAt(row, col))
			}
		}
	default:
		return nil, fmt.Errorf("unsupported mat type %d", mat.Type())
	}

	return data, nil
}
