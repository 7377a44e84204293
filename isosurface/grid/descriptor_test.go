package grid

import (
	"errors"
	"slices"
	"testing"

	"github.com/chewxy/math32"
	"github.com/google/go-cmp/cmp"
	"github.com/soypat/glgl/math/ms3"
)

func TestCells(t *testing.T) {
	d := Descriptor{
		AABB:       ms3.Box{Min: ms3.Vec{Z: 0.5}, Max: ms3.Vec{X: 0.5, Y: 1, Z: 1.5}},
		Resolution: 1,
	}
	var want []Cell
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				want = append(want, Cell{
					MinIndex:    Index{x, y, z},
					MinPosition: ms3.Vec{X: float32(x) - 0.5, Y: float32(y) - 0.5, Z: float32(z)},
				})
			}
		}
	}
	got := slices.Collect(d.Cells())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cells mismatch (-want +got):\n%s", diff)
	}
	// Sequences restart from the beginning on every range.
	if again := slices.Collect(d.Cells()); !cmp.Equal(got, again) {
		t.Error("second enumeration differs")
	}
	if d.CellCount() != [3]int{2, 2, 2} || d.VertexCount() != [3]int{3, 3, 3} {
		t.Errorf("got counts %v %v", d.CellCount(), d.VertexCount())
	}
}

func TestVerticesAndCubes(t *testing.T) {
	d, err := NewDescriptor(ms3.Box{Min: ms3.Vec{X: -1, Y: -1, Z: -1}, Max: ms3.Vec{X: 1, Y: 0.5, Z: 2}}, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	cells, verts := d.CellCount(), d.VertexCount()
	for k := range cells {
		if verts[k] != cells[k]+1 {
			t.Fatalf("axis %d: %d vertices for %d cells", k, verts[k], cells[k])
		}
	}
	nv := 0
	vertexSet := make(map[Index]bool)
	for v := range d.Vertices() {
		nv++
		vertexSet[v.Index] = true
		if v.Position != v.Index.Position(d.AABB.Min, d.Resolution) {
			t.Fatalf("vertex %v position mismatch", v.Index)
		}
	}
	if nv != verts[0]*verts[1]*verts[2] {
		t.Errorf("got %d vertices, want %d", nv, verts[0]*verts[1]*verts[2])
	}
	nc := 0
	for c := range d.Cubes() {
		nc++
		if c.Resolution != d.Resolution {
			t.Fatal("cube resolution mismatch")
		}
		for _, corner := range c.Corners() {
			if !vertexSet[corner] {
				t.Fatalf("cube %v corner %v is not a grid vertex", c.MinIndex, corner)
			}
		}
	}
	if nc != cells[0]*cells[1]*cells[2] {
		t.Errorf("got %d cubes, want %d", nc, cells[0]*cells[1]*cells[2])
	}
}

func TestOuterCellsCoverBox(t *testing.T) {
	for _, res := range []float32{0.1, 0.3, 0.7, 2} {
		d, err := NewDescriptor(ms3.Box{Min: ms3.Vec{X: -0.2, Y: 0, Z: 1}, Max: ms3.Vec{X: 1.3, Y: 0.9, Z: 1.1}}, res)
		if err != nil {
			t.Fatal(err)
		}
		lo := ms3.Vec{X: math32.Inf(1), Y: math32.Inf(1), Z: math32.Inf(1)}
		hi := ms3.Vec{X: math32.Inf(-1), Y: math32.Inf(-1), Z: math32.Inf(-1)}
		for c := range d.Cells() {
			center := c.Center(d.Resolution)
			lo = ms3.Vec{X: math32.Min(lo.X, center.X), Y: math32.Min(lo.Y, center.Y), Z: math32.Min(lo.Z, center.Z)}
			hi = ms3.MaxElem(hi, center)
		}
		const eps = 1e-5
		if lo.X > d.AABB.Min.X+eps || lo.Y > d.AABB.Min.Y+eps || lo.Z > d.AABB.Min.Z+eps {
			t.Errorf("resolution %g: lowest centers %v inside box min %v", res, lo, d.AABB.Min)
		}
		if hi.X < d.AABB.Max.X-eps || hi.Y < d.AABB.Max.Y-eps || hi.Z < d.AABB.Max.Z-eps {
			t.Errorf("resolution %g: highest centers %v inside box max %v", res, hi, d.AABB.Max)
		}
	}
}

func TestEarlyStop(t *testing.T) {
	d := Descriptor{AABB: ms3.Box{Max: ms3.Vec{X: 10, Y: 10, Z: 10}}, Resolution: 0.01}
	n := 0
	for range d.Vertices() {
		n++
		if n == 5 {
			break
		}
	}
	if n != 5 {
		t.Errorf("got %d", n)
	}
}

func TestInvalidDescriptor(t *testing.T) {
	box := ms3.Box{Max: ms3.Vec{X: 1, Y: 1, Z: 1}}
	for _, d := range []Descriptor{
		{AABB: box, Resolution: 0},
		{AABB: box, Resolution: -1},
		{AABB: box, Resolution: math32.NaN()},
		{AABB: box, Resolution: math32.Inf(1)},
		{AABB: ms3.Box{Min: ms3.Vec{X: 2}, Max: box.Max}, Resolution: 1},
		{AABB: ms3.Box{Max: ms3.Vec{X: math32.Inf(1)}}, Resolution: 1},
		// Too many cells for the index range.
		{AABB: box, Resolution: 1e-30},
		// Finite corners whose float32 extent overflows.
		{AABB: ms3.Box{Min: ms3.Vec{X: -3e38}, Max: ms3.Vec{X: 3e38, Y: 1, Z: 1}}, Resolution: 1},
	} {
		if _, err := NewDescriptor(d.AABB, d.Resolution); !errors.Is(err, ErrInvalidDescriptor) {
			t.Errorf("%+v: got %v, want ErrInvalidDescriptor", d, err)
		}
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%+v: Cells did not panic", d)
				}
			}()
			d.Cells()
		}()
	}
}

func TestIndex(t *testing.T) {
	i := Index{1, 2, 3}
	if got := i.Add([3]int{-1, 0, 2}); got != (Index{0, 2, 5}) {
		t.Errorf("got %v", got)
	}
	if i.X() != 1 || i.Y() != 2 || i.Z() != 3 {
		t.Error("component accessors")
	}
	defer func() {
		if recover() == nil {
			t.Error("negative index did not panic")
		}
	}()
	i.Add([3]int{0, -3, 0})
}

func TestCubeCenter(t *testing.T) {
	c := Cube{MinPosition: ms3.Vec{X: 1, Y: 2, Z: 3}, Resolution: 2}
	if got := c.Center(); got != (ms3.Vec{X: 2, Y: 3, Z: 4}) {
		t.Errorf("got %v", got)
	}
	cell := Cell{MinPosition: ms3.Vec{X: -0.5, Y: 0, Z: 1.5}}
	if got := cell.Center(1); got != (ms3.Vec{X: 0, Y: 0.5, Z: 2}) {
		t.Errorf("cell center: got %v", got)
	}
}
