// Package must converts shape trees into triangles, bounding volumes and
// boundary topology. Functions panic when called with an invalid
// tolerance, a malformed shape or a capability a shape does not support.
// Package kernel wraps the same operations with error returns.
package must

import (
	"fmt"
	"iter"

	"github.com/Bandsberg/fornjot"
	"github.com/Bandsberg/fornjot/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Edge is a straight boundary edge between two vertices.
type Edge [2]r3.Vec

// Triangles returns triangles approximating the boundary of s. No point of
// the mesh deviates more than tolerance from the true boundary.
// Circles needing more than MaxCircleSides sides panic with ErrTooManySides.
func Triangles(s fornjot.Shape, tolerance float64) []Triangle {
	checkTolerance(tolerance)
	return appendTriangles(nil, s, tolerance)
}

// AppendTriangles is like Triangles but appends to dst.
func AppendTriangles(dst []Triangle, s fornjot.Shape, tolerance float64) []Triangle {
	checkTolerance(tolerance)
	return appendTriangles(dst, s, tolerance)
}

func appendTriangles(dst []Triangle, s fornjot.Shape, tolerance float64) []Triangle {
	switch s := s.(type) {
	case fornjot.Circle:
		return appendCircle(dst, s, tolerance)
	case fornjot.Square:
		return appendSquare(dst, s)
	case fornjot.Sweep:
		return appendSweep(dst, s, tolerance)
	case fornjot.Union:
		return appendUnion(dst, s, tolerance)
	}
	panic(badShape(s))
}

// Faces returns the triangles of Triangles as a lazy sequence in the same
// order. Every range over the sequence recomputes the triangles from s.
func Faces(s fornjot.Shape, tolerance float64) iter.Seq[Triangle] {
	checkTolerance(tolerance)
	return func(yield func(Triangle) bool) {
		faces(s, tolerance, yield)
	}
}

func faces(s fornjot.Shape, tolerance float64, yield func(Triangle) bool) bool {
	switch s := s.(type) {
	case fornjot.Sweep:
		return sweepFaces(s, tolerance, yield)
	case fornjot.Union:
		return unionFaces(s, tolerance, yield)
	}
	for _, t := range appendTriangles(nil, s, tolerance) {
		if !yield(t) {
			return false
		}
	}
	return true
}

// BoundingVolume returns the axis-aligned bounding box of s.
func BoundingVolume(s fornjot.Shape) r3.Box {
	return r3.Box(bounds(s))
}

func bounds(s fornjot.Shape) d3.Box {
	switch s := s.(type) {
	case fornjot.Circle:
		return circleBounds(s)
	case fornjot.Square:
		return squareBounds(s)
	case fornjot.Sweep:
		return sweepBounds(s)
	case fornjot.Union:
		return unionBounds(s)
	}
	panic(badShape(s))
}

// Vertices returns the boundary vertices of s. For planar shapes these are
// ordered along the boundary counter-clockwise; a sweep lists its bottom
// ring followed by its top ring. Unions panic with ErrNotImplemented.
func Vertices(s fornjot.Shape, tolerance float64) []r3.Vec {
	checkTolerance(tolerance)
	switch s := s.(type) {
	case fornjot.Shape2d:
		return vertices2d(s, tolerance)
	case fornjot.Sweep:
		return sweepVertices(s, tolerance)
	case fornjot.Union:
		notImplemented("union vertices")
	}
	panic(badShape(s))
}

// Edges returns the boundary edges of s. Unions panic with ErrNotImplemented.
func Edges(s fornjot.Shape, tolerance float64) []Edge {
	checkTolerance(tolerance)
	switch s := s.(type) {
	case fornjot.Shape2d:
		v := vertices2d(s, tolerance)
		return appendRing(make([]Edge, 0, len(v)), v)
	case fornjot.Sweep:
		return sweepEdges(s, tolerance)
	case fornjot.Union:
		notImplemented("union edges")
	}
	panic(badShape(s))
}

func vertices2d(s fornjot.Shape2d, tolerance float64) []r3.Vec {
	switch s := s.(type) {
	case fornjot.Circle:
		return circleVertices(s, tolerance)
	case fornjot.Square:
		return squareVertices(s)
	}
	panic(badShape(s))
}

// appendRing appends the closed cycle of edges through ring.
func appendRing(dst []Edge, ring []r3.Vec) []Edge {
	for i := range ring {
		dst = append(dst, Edge{ring[i], ring[(i+1)%len(ring)]})
	}
	return dst
}

func badShape(s fornjot.Shape) string {
	if s == nil {
		return "nil shape"
	}
	return fmt.Sprintf("unknown shape variant %T", s)
}
