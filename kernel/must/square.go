package must

import (
	"github.com/Bandsberg/fornjot"
	"github.com/Bandsberg/fornjot/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// squareVertices returns the corners counter-clockwise seen from +Z.
func squareVertices(s fornjot.Square) []r3.Vec {
	checkDim("size", s.Size)
	l := s.Size
	return []r3.Vec{
		{X: 0, Y: 0},
		{X: l, Y: 0},
		{X: l, Y: l},
		{X: 0, Y: l},
	}
}

// appendSquare splits the square along its v0-v2 diagonal. The square is
// exact so no tolerance is involved.
func appendSquare(dst []Triangle, s fornjot.Square) []Triangle {
	v := squareVertices(s)
	return append(dst,
		Triangle{v[0], v[1], v[2]},
		Triangle{v[0], v[2], v[3]},
	)
}

func squareBounds(s fornjot.Square) d3.Box {
	checkDim("size", s.Size)
	return d3.Box{Max: r3.Vec{X: s.Size, Y: s.Size}}
}
