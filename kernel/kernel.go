// Package kernel is the error-returning interface to package must. It
// validates the shape tree and tolerance up front and converts any panic
// raised while evaluating a shape into a *ShapeError.
package kernel

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"runtime/debug"

	"github.com/Bandsberg/fornjot"
	"github.com/Bandsberg/fornjot/kernel/must"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrInvalidTolerance is returned for tolerances that are not positive and finite.
var ErrInvalidTolerance = errors.New("invalid tolerance")

// ShapeError holds a panic recovered while evaluating a shape.
type ShapeError struct {
	Value any
	Stack string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v", e.Value)
}

// Unwrap returns the panic value if it is an error, so errors.Is matches
// sentinels such as must.ErrNotImplemented.
func (e *ShapeError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Result is a single evaluation of a shape tree.
type Result struct {
	Triangles []must.Triangle
	Bounds    r3.Box
}

// Evaluate triangulates s and computes its bounding volume.
func Evaluate(s fornjot.Shape, tolerance float64) (res Result, err error) {
	if err := checkInput(s, tolerance); err != nil {
		return Result{}, err
	}
	defer recoverShapeError(&err)
	res.Triangles = must.Triangles(s, tolerance)
	res.Bounds = must.BoundingVolume(s)
	return res, nil
}

// Triangles returns triangles approximating the boundary of s within tolerance.
func Triangles(s fornjot.Shape, tolerance float64) (tris []must.Triangle, err error) {
	if err := checkInput(s, tolerance); err != nil {
		return nil, err
	}
	defer recoverShapeError(&err)
	return must.Triangles(s, tolerance), nil
}

// Faces returns the lazy triangle sequence of s after validating the input.
func Faces(s fornjot.Shape, tolerance float64) (iter.Seq[must.Triangle], error) {
	if err := checkInput(s, tolerance); err != nil {
		return nil, err
	}
	return must.Faces(s, tolerance), nil
}

// BoundingVolume returns the axis-aligned bounding box of s.
func BoundingVolume(s fornjot.Shape) (bb r3.Box, err error) {
	if err := fornjot.Validate(s); err != nil {
		return r3.Box{}, err
	}
	defer recoverShapeError(&err)
	return must.BoundingVolume(s), nil
}

// Vertices returns the boundary vertices of s. For a Union the error
// matches must.ErrNotImplemented.
func Vertices(s fornjot.Shape, tolerance float64) (v []r3.Vec, err error) {
	if err := checkInput(s, tolerance); err != nil {
		return nil, err
	}
	defer recoverShapeError(&err)
	return must.Vertices(s, tolerance), nil
}

// Edges returns the boundary edges of s. For a Union the error matches
// must.ErrNotImplemented.
func Edges(s fornjot.Shape, tolerance float64) (e []must.Edge, err error) {
	if err := checkInput(s, tolerance); err != nil {
		return nil, err
	}
	defer recoverShapeError(&err)
	return must.Edges(s, tolerance), nil
}

// CheckTolerance reports whether tolerance can be passed to the kernel.
func CheckTolerance(tolerance float64) error {
	if tolerance > 0 && !math.IsInf(tolerance, 1) {
		return nil
	}
	return fmt.Errorf("%w: must be positive and finite, got %g", ErrInvalidTolerance, tolerance)
}

func checkInput(s fornjot.Shape, tolerance float64) error {
	if err := CheckTolerance(tolerance); err != nil {
		return err
	}
	return fornjot.Validate(s)
}

func recoverShapeError(err *error) {
	if a := recover(); a != nil {
		*err = &ShapeError{
			Value: a,
			Stack: string(debug.Stack()),
		}
	}
}
