package must

import (
	"fmt"
	"math"

	"github.com/Bandsberg/fornjot"
	"github.com/Bandsberg/fornjot/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// CircleSides returns the side count of the regular polygon approximating
// a circle of the given radius. The circle is the polygon's circumcircle, so
// the largest deviation between polygon and circle is the gap between
// circumcircle and incircle, r - r·cos(π/n). The smallest n >= 3 for which
// that gap is within tolerance is returned.
//
// It panics with an error wrapping ErrTooManySides if more than
// MaxCircleSides sides would be needed, which happens when tolerance is
// many orders of magnitude below radius.
func CircleSides(radius, tolerance float64) int {
	checkDim("radius", radius)
	checkTolerance(tolerance)
	for n := 3; n <= MaxCircleSides; n++ {
		incircle := radius * math.Cos(math.Pi/float64(n))
		if radius-incircle <= tolerance {
			return n
		}
	}
	panic(fmt.Errorf("%w: radius %g at tolerance %g", ErrTooManySides, radius, tolerance))
}

// circleVertices returns the polygon vertices counter-clockwise starting on +X.
func circleVertices(c fornjot.Circle, tolerance float64) []r3.Vec {
	n := CircleSides(c.Radius, tolerance)
	vertices := make([]r3.Vec, n)
	for i := range vertices {
		angle := 2 * math.Pi / float64(n) * float64(i)
		sin, cos := math.Sincos(angle)
		vertices[i] = r3.Vec{X: cos * c.Radius, Y: sin * c.Radius}
	}
	return vertices
}

// appendCircle fans the polygon out of its first vertex. Regular polygons
// are convex so the fan covers the polygon exactly once with n-2 triangles.
func appendCircle(dst []Triangle, c fornjot.Circle, tolerance float64) []Triangle {
	v := circleVertices(c, tolerance)
	for i := 1; i < len(v)-1; i++ {
		dst = append(dst, Triangle{v[0], v[i], v[i+1]})
	}
	return dst
}

func circleBounds(c fornjot.Circle) d3.Box {
	checkDim("radius", c.Radius)
	r := c.Radius
	return d3.Box{Min: r3.Vec{X: -r, Y: -r}, Max: r3.Vec{X: r, Y: r}}
}
