package d3

import "gonum.org/v1/gonum/spatial/r3"

// Box is an axis-aligned bounding box. Min is component-wise less than
// or equal to Max for any box built by this package.
type Box r3.Box

// BoxOf returns the smallest box containing all argument points.
// It panics if no points are given.
func BoxOf(points ...r3.Vec) Box {
	if len(points) == 0 {
		panic("no points to bound")
	}
	s := Set(points)
	return Box{Min: s.Min(), Max: s.Max()}
}

// Extend returns a box enclosing two 3d boxes.
func (a Box) Extend(b Box) Box {
	return Box{
		Min: MinElem(a.Min, b.Min),
		Max: MaxElem(a.Max, b.Max),
	}
}

// Include enlarges a 3d box to include a point.
func (a Box) Include(v r3.Vec) Box {
	return Box{
		Min: MinElem(a.Min, v),
		Max: MaxElem(a.Max, v),
	}
}

// Contains checks if the 3d box contains the given vector (considering bounds as inside).
func (a Box) Contains(v r3.Vec) bool {
	return a.Min.X <= v.X && a.Min.Y <= v.Y && a.Min.Z <= v.Z &&
		v.X <= a.Max.X && v.Y <= a.Max.Y && v.Z <= a.Max.Z
}
