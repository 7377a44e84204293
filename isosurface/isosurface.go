// Package isosurface samples scalar fields over a uniform grid. It is the
// extension point for implicit primitives: a surface extractor walks the
// cubes returned by SurfaceCubes and reads corner values from Sample.
package isosurface

import (
	"iter"

	"github.com/Bandsberg/fornjot/isosurface/grid"
	"github.com/soypat/glgl/math/ms3"
)

// Field is a scalar field. The isosurface is where the field is zero,
// negative values are inside.
type Field interface {
	Evaluate(p ms3.Vec) float32
}

// FieldFunc adapts a function to the Field interface.
type FieldFunc func(p ms3.Vec) float32

// Evaluate calls f(p).
func (f FieldFunc) Evaluate(p ms3.Vec) float32 { return f(p) }

// Sample evaluates f at every vertex of the grid, in grid vertex order.
func Sample(d grid.Descriptor, f Field) iter.Seq2[grid.Vertex, float32] {
	vertices := d.Vertices()
	return func(yield func(grid.Vertex, float32) bool) {
		for v := range vertices {
			if !yield(v, f.Evaluate(v.Position)) {
				return
			}
		}
	}
}

// SurfaceCubes returns the cubes whose corners straddle the isosurface,
// i.e. at least one corner is inside and one is outside.
func SurfaceCubes(d grid.Descriptor, f Field) iter.Seq[grid.Cube] {
	cubes := d.Cubes()
	return func(yield func(grid.Cube) bool) {
		dc := newDistanceCache(d, f)
		for cube := range cubes {
			dc.advance(cube.MinIndex.X())
			var inside, outside bool
			for _, corner := range cube.Corners() {
				if dc.evaluate(corner) < 0 {
					inside = true
				} else {
					outside = true
				}
			}
			if inside && outside && !yield(cube) {
				return
			}
		}
	}
}

// distanceCache memoizes field values per grid vertex. Cubes are visited
// x-major so only the planes x and x+1 are ever needed; older planes are
// dropped as the walk advances.
type distanceCache struct {
	min        ms3.Vec
	resolution float32
	f          Field
	planes     map[int]map[grid.Index]float32
}

func newDistanceCache(d grid.Descriptor, f Field) *distanceCache {
	return &distanceCache{
		min:        d.AABB.Min,
		resolution: d.Resolution,
		f:          f,
		planes:     make(map[int]map[grid.Index]float32),
	}
}

func (dc *distanceCache) advance(x int) {
	delete(dc.planes, x-1)
}

func (dc *distanceCache) evaluate(i grid.Index) float32 {
	plane, ok := dc.planes[i.X()]
	if !ok {
		plane = make(map[grid.Index]float32)
		dc.planes[i.X()] = plane
	}
	if v, ok := plane[i]; ok {
		return v
	}
	v := dc.f.Evaluate(i.Position(dc.min, dc.resolution))
	plane[i] = v
	return v
}
