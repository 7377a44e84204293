// Package preview rasterizes kernel triangles into a shaded PNG snapshot.
package preview

import (
	"errors"
	"image"

	"github.com/Bandsberg/fornjot/internal/d3"
	"github.com/Bandsberg/fornjot/kernel/must"
	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
)

// View configures the camera and output size of a preview.
type View struct {
	// what position (point) to look at
	LookAt r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye located at (point)
	Eye    r3.Vec
	Near   float64
	Far    float64
	Width  int
	Height int
	// Supersampling factor used for antialiasing.
	Scale int
}

// DefaultView is an isometric view of the model fitted in a bi-unit cube.
var DefaultView = View{
	Up:     r3.Vec{Z: 1},
	Eye:    d3.Elem(2.4),
	Near:   1,
	Far:    10,
	Width:  768,
	Height: 432,
	Scale:  2,
}

const (
	fovy       = 30 // vertical field of view in degrees
	background = "#FFF8E3"
	foreground = "#468966"
)

// Image renders the triangles as seen from view.
func Image(model []must.Triangle, view View) (image.Image, error) {
	if len(model) == 0 {
		return nil, errors.New("empty triangle slice")
	}
	if view.Width <= 0 || view.Height <= 0 {
		return nil, errors.New("preview size must be positive")
	}
	scale := max(view.Scale, 1)
	tris := make([]*fauxgl.Triangle, len(model))
	for i, t := range model {
		tris[i] = fauxgl.NewTriangleForPoints(vec(t[0]), vec(t[1]), vec(t[2]))
	}
	mesh := fauxgl.NewTriangleMesh(tris)
	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()

	var (
		eye    = vec(view.Eye)
		center = vec(view.LookAt)
		up     = vec(view.Up)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
	)
	context := fauxgl.NewContext(view.Width*scale, view.Height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor(background))
	aspect := float64(view.Width) / float64(view.Height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = fauxgl.HexColor(foreground)
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	img := context.Image()
	return resize.Resize(uint(view.Width), uint(view.Height), img, resize.Bilinear), nil
}

// SavePNG renders the triangles and writes the image to path.
func SavePNG(path string, model []must.Triangle, view View) error {
	img, err := Image(model, view)
	if err != nil {
		return err
	}
	return fauxgl.SavePNG(path, img)
}

func vec(v r3.Vec) fauxgl.Vector {
	return fauxgl.V(v.X, v.Y, v.Z)
}
