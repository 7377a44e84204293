package must

import (
	"github.com/Bandsberg/fornjot/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle is one mesh facet. The right-hand rule over v0→v1→v2 gives the
// outward normal. No validation is done that the three points form an
// actual triangle.
type Triangle [3]r3.Vec

// Invert reverses the winding, and with it the normal direction.
func (t Triangle) Invert() Triangle {
	return Triangle{t[0], t[2], t[1]}
}

// Translate moves all three vertices by v.
func (t Triangle) Translate(v r3.Vec) Triangle {
	return Triangle{r3.Add(t[0], v), r3.Add(t[1], v), r3.Add(t[2], v)}
}

// Normal returns the non-normalized face normal (v1-v0)×(v2-v0).
// Its length is twice the triangle area.
func (t Triangle) Normal() r3.Vec {
	return r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0]))
}

// Degenerate returns true if any two vertices are within tol of each other.
func (t Triangle) Degenerate(tol float64) bool {
	return d3.EqualWithin(t[0], t[1], tol) ||
		d3.EqualWithin(t[1], t[2], tol) ||
		d3.EqualWithin(t[2], t[0], tol)
}

// Bounds returns the bounding box of the triangle.
func (t Triangle) Bounds() r3.Box {
	return r3.Box(d3.BoxOf(t[:]...))
}
