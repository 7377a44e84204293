package must

import (
	"github.com/Bandsberg/fornjot"
	"github.com/Bandsberg/fornjot/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// VertexPairs returns, for every boundary vertex of base in winding order,
// the pair [bottom, top] where top is bottom lifted by length along +Z.
func VertexPairs(base fornjot.Shape2d, length, tolerance float64) [][2]r3.Vec {
	checkDim("sweep length", length)
	checkTolerance(tolerance)
	bottom := vertices2d(base, tolerance)
	up := r3.Vec{Z: length}
	pairs := make([][2]r3.Vec, len(bottom))
	for i, v := range bottom {
		pairs[i] = [2]r3.Vec{v, r3.Add(v, up)}
	}
	return pairs
}

// sideQuads calls fn with the corners of each side wall quad. Consecutive
// vertex pairs [v0,v3] and [v1,v2] form the quad [v0,v1,v2,v3]; the pair
// list is closed by repeating its first pair so the quad between the last
// and first boundary vertex is not lost.
func sideQuads(pairs [][2]r3.Vec, fn func(v0, v1, v2, v3 r3.Vec) bool) bool {
	pairs = append(pairs, pairs[0])
	for i := 0; i+1 < len(pairs); i++ {
		v0, v3 := pairs[i][0], pairs[i][1]
		v1, v2 := pairs[i+1][0], pairs[i+1][1]
		if !fn(v0, v1, v2, v3) {
			return false
		}
	}
	return true
}

// sweepFaces produces bottom, top and side triangles in that order. The
// bottom is the base with inverted winding so its normal points down, the
// top is the base moved up by the sweep length.
func sweepFaces(s fornjot.Sweep, tolerance float64, yield func(Triangle) bool) bool {
	checkDim("sweep length", s.Length)
	base := appendTriangles(nil, s.Shape, tolerance)
	for _, t := range base {
		if !yield(t.Invert()) {
			return false
		}
	}
	up := r3.Vec{Z: s.Length}
	for _, t := range base {
		if !yield(t.Translate(up)) {
			return false
		}
	}
	pairs := VertexPairs(s.Shape, s.Length, tolerance)
	return sideQuads(pairs, func(v0, v1, v2, v3 r3.Vec) bool {
		return yield(Triangle{v0, v1, v2}) && yield(Triangle{v0, v2, v3})
	})
}

func appendSweep(dst []Triangle, s fornjot.Sweep, tolerance float64) []Triangle {
	sweepFaces(s, tolerance, func(t Triangle) bool {
		dst = append(dst, t)
		return true
	})
	return dst
}

// sweepVertices returns the bottom ring followed by the top ring.
func sweepVertices(s fornjot.Sweep, tolerance float64) []r3.Vec {
	pairs := VertexPairs(s.Shape, s.Length, tolerance)
	vertices := make([]r3.Vec, 2*len(pairs))
	for i, p := range pairs {
		vertices[i] = p[0]
		vertices[len(pairs)+i] = p[1]
	}
	return vertices
}

// sweepEdges returns the bottom ring, the top ring and the vertical edges.
func sweepEdges(s fornjot.Sweep, tolerance float64) []Edge {
	pairs := VertexPairs(s.Shape, s.Length, tolerance)
	bottom := make([]r3.Vec, len(pairs))
	top := make([]r3.Vec, len(pairs))
	for i, p := range pairs {
		bottom[i], top[i] = p[0], p[1]
	}
	edges := make([]Edge, 0, 3*len(pairs))
	edges = appendRing(edges, bottom)
	edges = appendRing(edges, top)
	for _, p := range pairs {
		edges = append(edges, Edge(p))
	}
	return edges
}

func sweepBounds(s fornjot.Sweep) d3.Box {
	checkDim("sweep length", s.Length)
	bb := bounds(s.Shape)
	return bb.Include(r3.Add(bb.Max, r3.Vec{Z: s.Length}))
}
