// Package render hands kernel triangles to rendering collaborators. It
// streams triangles through the Renderer interface and welds triangle
// soups into indexed meshes.
package render

import (
	"io"
	"iter"

	"github.com/Bandsberg/fornjot"
	"github.com/Bandsberg/fornjot/kernel"
	"github.com/Bandsberg/fornjot/kernel/must"
)

// Renderer is a pull-style source of triangles. ReadTriangles returns
// io.EOF once no triangles remain; it may return triangles and io.EOF in
// the same call.
type Renderer interface {
	ReadTriangles(dst []must.Triangle) (int, error)
}

// RenderAll reads the full contents of a Renderer and returns the slice read.
// It does not return error on io.EOF, like the io.ReadAll implementation.
func RenderAll(r Renderer) ([]must.Triangle, error) {
	var err error
	var nt int
	result := make([]must.Triangle, 0, 1<<12)
	buf := make([]must.Triangle, 1024)
	for err == nil {
		nt, err = r.ReadTriangles(buf)
		result = append(result, buf[:nt]...)
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}

// ShapeRenderer triangulates a shape on demand as triangles are read.
// It is not safe for concurrent use.
type ShapeRenderer struct {
	next func() (must.Triangle, bool)
	stop func()
}

var _ Renderer = (*ShapeRenderer)(nil)

// NewShapeRenderer returns a Renderer over the triangles of s.
func NewShapeRenderer(s fornjot.Shape, tolerance float64) (*ShapeRenderer, error) {
	seq, err := kernel.Faces(s, tolerance)
	if err != nil {
		return nil, err
	}
	return newSeqRenderer(seq), nil
}

func newSeqRenderer(seq iter.Seq[must.Triangle]) *ShapeRenderer {
	next, stop := iter.Pull(seq)
	return &ShapeRenderer{next: next, stop: stop}
}

// ReadTriangles writes triangles rendered from the shape into dst.
func (sr *ShapeRenderer) ReadTriangles(dst []must.Triangle) (n int, err error) {
	if len(dst) == 0 {
		panic("cannot write to empty triangle slice")
	}
	for n < len(dst) {
		t, ok := sr.next()
		if !ok {
			sr.stop()
			return n, io.EOF
		}
		dst[n] = t
		n++
	}
	return n, nil
}

// Close releases the underlying triangle sequence. Reading after Close
// returns io.EOF.
func (sr *ShapeRenderer) Close() error {
	sr.stop()
	return nil
}
