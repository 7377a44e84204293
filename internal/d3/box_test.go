package d3

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestBox(t *testing.T) {
	b := BoxOf(r3.Vec{X: 1, Y: -2, Z: 3}, r3.Vec{X: -1, Y: 2, Z: 0}, r3.Vec{Z: 5})
	want := Box{Min: r3.Vec{X: -1, Y: -2}, Max: r3.Vec{X: 1, Y: 2, Z: 5}}
	if b != want {
		t.Fatalf("got %v, want %v", b, want)
	}
	if !b.Contains(r3.Vec{X: 1, Y: 2, Z: 5}) {
		t.Error("corner not contained")
	}
	if b.Contains(r3.Vec{X: 1.5}) {
		t.Error("outside point contained")
	}
	got := b.Include(r3.Vec{X: 3}).Extend(Box{Min: r3.Vec{Z: -1}, Max: r3.Vec{Z: 1}})
	want = Box{Min: r3.Vec{X: -1, Y: -2, Z: -1}, Max: r3.Vec{X: 3, Y: 2, Z: 5}}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !EqualWithin(Elem(1), r3.Vec{X: 1, Y: 1 + 1e-12, Z: 1}, 1e-9) {
		t.Error("EqualWithin too strict")
	}
}
