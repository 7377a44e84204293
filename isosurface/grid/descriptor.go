// Package grid lays out the uniform sampling grid used for isosurface
// extraction. A grid is fully described by a bounding box and a
// resolution; cells, cubes and vertices are produced lazily.
package grid

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// ErrInvalidDescriptor is returned by Descriptor.Validate.
var ErrInvalidDescriptor = errors.New("invalid grid descriptor")

// Descriptor describes a uniform grid for isosurface extraction.
//
// The grid extends beyond AABB so that the centers of the outermost cells
// lie outside of, or on, the boundary of AABB.
type Descriptor struct {
	// AABB is the axis-aligned bounding box of the isosurface.
	AABB ms3.Box
	// Resolution is the distance between neighboring grid vertices.
	Resolution float32
}

// Cell is a grid cell identified by its minimum corner.
type Cell struct {
	MinIndex    Index
	MinPosition ms3.Vec
}

// Cube is a grid cell that also carries its side length.
type Cube struct {
	MinIndex    Index
	MinPosition ms3.Vec
	Resolution  float32
}

// Vertex is a grid vertex.
type Vertex struct {
	Index    Index
	Position ms3.Vec
}

// NewDescriptor returns a validated grid descriptor.
func NewDescriptor(aabb ms3.Box, resolution float32) (Descriptor, error) {
	d := Descriptor{AABB: aabb, Resolution: resolution}
	if err := d.Validate(); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}

// Validate checks the resolution is positive and finite, that the box
// is finite with Min <= Max on every axis, and that no axis needs more
// than math.MaxInt32 cells.
func (d Descriptor) Validate() error {
	if !(d.Resolution > 0) || math32.IsInf(d.Resolution, 1) {
		return fmt.Errorf("%w: resolution must be positive and finite, got %g", ErrInvalidDescriptor, d.Resolution)
	}
	if !finite(d.AABB.Min) || !finite(d.AABB.Max) {
		return fmt.Errorf("%w: non-finite bounding box %v", ErrInvalidDescriptor, d.AABB)
	}
	if d.AABB.Min.X > d.AABB.Max.X || d.AABB.Min.Y > d.AABB.Max.Y || d.AABB.Min.Z > d.AABB.Max.Z {
		return fmt.Errorf("%w: bounding box min %v exceeds max %v", ErrInvalidDescriptor, d.AABB.Min, d.AABB.Max)
	}
	min, max := d.AABB.Min, d.AABB.Max
	for _, extent := range [3]float32{max.X - min.X, max.Y - min.Y, max.Z - min.Z} {
		steps := math32.Ceil(extent / d.Resolution)
		if math32.IsInf(steps, 0) || steps > maxSteps {
			return fmt.Errorf("%w: extent %g at resolution %g needs too many cells", ErrInvalidDescriptor, extent, d.Resolution)
		}
	}
	return nil
}

// maxSteps bounds the cells per axis so index arithmetic cannot overflow.
const maxSteps = math.MaxInt32

// CellCount returns the number of cells along each axis.
func (d Descriptor) CellCount() [3]int {
	d.mustValidate()
	min, max := d.AABB.Min, d.AABB.Max
	return [3]int{
		cellIndices(min.X, max.X, d.Resolution),
		cellIndices(min.Y, max.Y, d.Resolution),
		cellIndices(min.Z, max.Z, d.Resolution),
	}
}

// VertexCount returns the number of vertices along each axis, which is
// one more than the number of cells.
func (d Descriptor) VertexCount() [3]int {
	d.mustValidate()
	min, max := d.AABB.Min, d.AABB.Max
	return [3]int{
		vertexIndices(min.X, max.X, d.Resolution),
		vertexIndices(min.Y, max.Y, d.Resolution),
		vertexIndices(min.Z, max.Z, d.Resolution),
	}
}

// Cells returns the grid cells ordered by x, then y, then z index.
// It panics if the descriptor is invalid.
func (d Descriptor) Cells() iter.Seq[Cell] {
	indices := cartesian(d.CellCount())
	min, res := d.AABB.Min, d.Resolution
	return func(yield func(Cell) bool) {
		for index := range indices {
			if !yield(Cell{MinIndex: index, MinPosition: index.Position(min, res)}) {
				return
			}
		}
	}
}

// Cubes is like Cells but each element carries the grid resolution.
func (d Descriptor) Cubes() iter.Seq[Cube] {
	indices := cartesian(d.CellCount())
	min, res := d.AABB.Min, d.Resolution
	return func(yield func(Cube) bool) {
		for index := range indices {
			cube := Cube{MinIndex: index, MinPosition: index.Position(min, res), Resolution: res}
			if !yield(cube) {
				return
			}
		}
	}
}

// Vertices returns the grid vertices ordered by x, then y, then z index.
// It panics if the descriptor is invalid.
func (d Descriptor) Vertices() iter.Seq[Vertex] {
	indices := cartesian(d.VertexCount())
	min, res := d.AABB.Min, d.Resolution
	return func(yield func(Vertex) bool) {
		for index := range indices {
			if !yield(Vertex{Index: index, Position: index.Position(min, res)}) {
				return
			}
		}
	}
}

// cornerOffsets follow the vertex order of a marching cubes cube.
var cornerOffsets = [8][3]int{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

// Corners returns the indices of the eight vertices of the cube.
func (c Cube) Corners() [8]Index {
	var corners [8]Index
	for i, offset := range cornerOffsets {
		corners[i] = c.MinIndex.Add(offset)
	}
	return corners
}

// Center returns the position of the cube center.
func (c Cube) Center() ms3.Vec {
	return halfStep(c.MinPosition, c.Resolution)
}

// Center returns the position of the cell center for a grid of the given resolution.
func (c Cell) Center(resolution float32) ms3.Vec {
	return halfStep(c.MinPosition, resolution)
}

// halfStep moves p by half a resolution along every axis.
func halfStep(p ms3.Vec, resolution float32) ms3.Vec {
	h := resolution / 2
	return ms3.Add(p, ms3.Vec{X: h, Y: h, Z: h})
}

func (d Descriptor) mustValidate() {
	if err := d.Validate(); err != nil {
		panic(err)
	}
}

// cartesian yields every index of a box of n[0]×n[1]×n[2] lattice points in
// lexicographic order.
func cartesian(n [3]int) iter.Seq[Index] {
	return func(yield func(Index) bool) {
		for x := 0; x < n[0]; x++ {
			for y := 0; y < n[1]; y++ {
				for z := 0; z < n[2]; z++ {
					if !yield(Index{x, y, z}) {
						return
					}
				}
			}
		}
	}
}

// cellIndices returns the upper bound of the cell index range [0, n).
// The extra cell makes the grid overshoot the box on the upper side.
func cellIndices(min, max, resolution float32) int {
	return int(math32.Ceil((max-min)/resolution)) + 1
}

// vertexIndices is cellIndices plus one: N cells need N+1 vertices.
func vertexIndices(min, max, resolution float32) int {
	return int(math32.Ceil((max-min)/resolution)) + 2
}

func finite(v ms3.Vec) bool {
	return !math32.IsNaN(v.X) && !math32.IsInf(v.X, 0) &&
		!math32.IsNaN(v.Y) && !math32.IsInf(v.Y, 0) &&
		!math32.IsNaN(v.Z) && !math32.IsInf(v.Z, 0)
}
