// Package fornjot describes solids as an immutable tree of parametric
// shapes. Shapes carry no geometry of their own; the kernel packages turn
// a shape tree and a tolerance into triangles and bounding volumes.
package fornjot

// Shape is a node of a shape tree. The set of variants is closed:
// Circle, Square, Sweep and Union.
type Shape interface {
	shape()
}

// Shape2d is a planar shape lying on the XY plane at z = 0.
type Shape2d interface {
	Shape
	shape2d()
}

// Shape3d is a solid.
type Shape3d interface {
	Shape
	shape3d()
}

// Circle is a disc of the given radius centered at the origin.
type Circle struct {
	Radius float64
}

// Square is a square with its minimum corner at the origin.
type Square struct {
	Size float64
}

// Sweep extrudes a planar shape along +Z by Length.
type Sweep struct {
	Shape  Shape2d
	Length float64
}

// Union joins two solids. See the kernel documentation for the limits of
// how the union is meshed.
type Union struct {
	A, B Shape3d
}

func (Circle) shape()   {}
func (Circle) shape2d() {}
func (Square) shape()   {}
func (Square) shape2d() {}
func (Sweep) shape()    {}
func (Sweep) shape3d()  {}
func (Union) shape()    {}
func (Union) shape3d()  {}
