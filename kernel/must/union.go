package must

import (
	"github.com/Bandsberg/fornjot"
	"github.com/Bandsberg/fornjot/internal/d3"
)

// Union meshing does not create a true boolean union: no faces are
// eliminated, merged or split. The triangles of both operands are simply
// concatenated, which is only a valid boundary when A and B do not
// overlap. Overlapping operands leave interior, non-manifold geometry in
// the mesh. This is a documented precondition and is not detected.

func unionFaces(u fornjot.Union, tolerance float64, yield func(Triangle) bool) bool {
	return faces(u.A, tolerance, yield) && faces(u.B, tolerance, yield)
}

func appendUnion(dst []Triangle, u fornjot.Union, tolerance float64) []Triangle {
	dst = appendTriangles(dst, u.A, tolerance)
	return appendTriangles(dst, u.B, tolerance)
}

// unionBounds merges the operand boxes component-wise.
func unionBounds(u fornjot.Union) d3.Box {
	return bounds(u.A).Extend(bounds(u.B))
}
