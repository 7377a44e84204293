package fornjot

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidShape is returned by Validate for malformed shape trees.
var ErrInvalidShape = errors.New("invalid shape")

// Validate walks the shape tree and reports the first node with a missing
// child or a non-positive or non-finite dimension.
func Validate(s Shape) error {
	return validate(s, "")
}

func validate(s Shape, path string) error {
	switch s := s.(type) {
	case nil:
		if path == "" {
			path = "shape"
		}
		return fmt.Errorf("%w: %s: missing", ErrInvalidShape, path)
	case Circle:
		return checkDim(join(path, "circle"), "radius", s.Radius)
	case Square:
		return checkDim(join(path, "square"), "size", s.Size)
	case Sweep:
		path = join(path, "sweep")
		if err := checkDim(path, "length", s.Length); err != nil {
			return err
		}
		return validate(s.Shape, join(path, "shape"))
	case Union:
		path = join(path, "union")
		if err := validate(s.A, join(path, "a")); err != nil {
			return err
		}
		return validate(s.B, join(path, "b"))
	default:
		return fmt.Errorf("%w: %s: unknown shape %T", ErrInvalidShape, path, s)
	}
}

func checkDim(path, name string, v float64) error {
	if v > 0 && !math.IsInf(v, 1) {
		return nil
	}
	return fmt.Errorf("%w: %s: %s must be positive and finite, got %g", ErrInvalidShape, path, name, v)
}

func join(path, elem string) string {
	if path == "" {
		return elem
	}
	return path + "." + elem
}
