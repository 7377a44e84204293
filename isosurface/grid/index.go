package grid

import (
	"fmt"

	"github.com/soypat/glgl/math/ms3"
)

// Index addresses a vertex of the isosurface extraction grid. Components
// are never negative.
type Index [3]int

// X returns the x component of the index.
func (i Index) X() int { return i[0] }

// Y returns the y component of the index.
func (i Index) Y() int { return i[1] }

// Z returns the z component of the index.
func (i Index) Z() int { return i[2] }

// Add returns the index offset by a signed step, typically to address a
// neighboring lattice point. It panics if any resulting component would be
// negative.
func (i Index) Add(offset [3]int) Index {
	var out Index
	for k := range i {
		c := i[k] + offset[k]
		if c < 0 {
			panic(fmt.Sprintf("grid index %v offset by %v has negative component", i, offset))
		}
		out[k] = c
	}
	return out
}

// Position converts the index into a position in the grid, given the grid
// minimum point and resolution. Index 0 lies half a resolution below min.
func (i Index) Position(min ms3.Vec, resolution float32) ms3.Vec {
	return ms3.Vec{
		X: indexToCoordinate(i[0], min.X, resolution),
		Y: indexToCoordinate(i[1], min.Y, resolution),
		Z: indexToCoordinate(i[2], min.Z, resolution),
	}
}

func indexToCoordinate(index int, min, resolution float32) float32 {
	return float32(index)*resolution + min - resolution/2
}
