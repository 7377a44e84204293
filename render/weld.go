package render

import (
	"github.com/Bandsberg/fornjot/internal/d3"
	"github.com/Bandsberg/fornjot/kernel/must"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is an indexed triangle mesh. Faces index into Vertices and keep the
// winding of the triangles they were welded from.
type Mesh struct {
	Vertices []r3.Vec
	Faces    [][3]int
}

// Weld merges triangle vertices closer than tol into shared mesh vertices.
// The first occurrence of a vertex is the one kept.
func Weld(model []must.Triangle, tol float64) *Mesh {
	m := &Mesh{Faces: make([][3]int, 0, len(model))}
	var tree kdtree.Tree
	tol2 := tol * tol
	index := func(p r3.Vec) int {
		if tree.Root != nil {
			got, dist := tree.Nearest(kdVertex{pos: p})
			if dist <= tol2 {
				return got.(kdVertex).idx
			}
		}
		i := len(m.Vertices)
		m.Vertices = append(m.Vertices, p)
		tree.Insert(kdVertex{pos: p, idx: i}, false)
		return i
	}
	for _, t := range model {
		m.Faces = append(m.Faces, [3]int{index(t[0]), index(t[1]), index(t[2])})
	}
	return m
}

// OpenEdges returns the number of undirected edges not shared by exactly
// two faces. It is zero for a closed manifold mesh.
func (m *Mesh) OpenEdges() int {
	count := make(map[[2]int]int)
	m.foreachEdge(func(a, b int) {
		if a > b {
			a, b = b, a
		}
		count[[2]int{a, b}]++
	})
	open := 0
	for _, c := range count {
		if c != 2 {
			open++
		}
	}
	return open
}

// InconsistentEdges returns the number of directed edges used by more than
// one face. Neighboring faces with consistent winding traverse their shared
// edge in opposite directions, so the result is zero for a consistently
// oriented mesh.
func (m *Mesh) InconsistentEdges() int {
	count := make(map[[2]int]int)
	m.foreachEdge(func(a, b int) {
		count[[2]int{a, b}]++
	})
	bad := 0
	for _, c := range count {
		if c > 1 {
			bad++
		}
	}
	return bad
}

// Volume returns the signed volume enclosed by the mesh. It is positive when
// face normals point outward.
func (m *Mesh) Volume() float64 {
	var v float64
	for _, f := range m.Faces {
		a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
		v += r3.Dot(a, r3.Cross(b, c))
	}
	return v / 6
}

// Bounds returns the bounding box of the mesh vertices. It panics if the
// mesh has no vertices.
func (m *Mesh) Bounds() r3.Box {
	return r3.Box(d3.BoxOf(m.Vertices...))
}

func (m *Mesh) foreachEdge(fn func(a, b int)) {
	for _, f := range m.Faces {
		fn(f[0], f[1])
		fn(f[1], f[2])
		fn(f[2], f[0])
	}
}

var _ kdtree.Comparable = kdVertex{}

// kdVertex is a mesh vertex stored in a kd-tree for nearest neighbor lookups.
type kdVertex struct {
	pos r3.Vec
	idx int
}

// Compare returns the signed distance of a from the plane passing through
// b and perpendicular to the dimension d.
func (a kdVertex) Compare(b kdtree.Comparable, d kdtree.Dim) float64 {
	q := b.(kdVertex)
	switch d {
	case 0:
		return a.pos.X - q.pos.X
	case 1:
		return a.pos.Y - q.pos.Y
	case 2:
		return a.pos.Z - q.pos.Z
	}
	panic("unreachable")
}

// Dims returns the number of dimensions described in the Comparable.
func (a kdVertex) Dims() int { return 3 }

// Distance returns the squared Euclidean distance between the receiver and
// the parameter.
func (a kdVertex) Distance(b kdtree.Comparable) float64 {
	return r3.Norm2(r3.Sub(a.pos, b.(kdVertex).pos))
}
