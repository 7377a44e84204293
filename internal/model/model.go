// Package model decodes shape trees from TOML model files.
//
// A model file holds a default tolerance and a root shape table:
//
//	tolerance = 0.01
//
//	[shape]
//	kind = "sweep"
//	length = 2.0
//
//	[shape.shape]
//	kind = "circle"
//	radius = 1.0
package model

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/Bandsberg/fornjot"
	"github.com/pelletier/go-toml/v2"
)

// ErrBadModel is returned for model files that do not describe a valid shape tree.
var ErrBadModel = errors.New("bad model")

// File is the decoded contents of a model file.
type File struct {
	Name      string  `toml:"name"`
	Tolerance float64 `toml:"tolerance"`
	Shape     *Node   `toml:"shape"`
}

// Node is one table of the shape tree. Which fields apply depends on Kind.
type Node struct {
	Kind   string  `toml:"kind"`
	Radius float64 `toml:"radius"`
	Size   float64 `toml:"size"`
	Length float64 `toml:"length"`
	// Shape is the swept planar shape.
	Shape *Node `toml:"shape"`
	// A and B are the union operands.
	A *Node `toml:"a"`
	B *Node `toml:"b"`
}

// Load reads and decodes the model file at path.
func Load(path string) (File, error) {
	fp, err := os.Open(path)
	if err != nil {
		return File{}, err
	}
	defer fp.Close()
	f, err := Decode(fp)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Decode decodes a model file from r. Unknown keys are rejected; keys that
// do not apply to a node's kind are rejected by File.Build.
func Decode(r io.Reader) (File, error) {
	var f File
	err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&f)
	if err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrBadModel, err)
	}
	if f.Shape == nil {
		return File{}, fmt.Errorf("%w: missing [shape] table", ErrBadModel)
	}
	return f, nil
}

// Build converts the file's shape tree into a validated fornjot.Shape.
func (f File) Build() (fornjot.Shape, error) {
	s, err := f.Shape.build("shape")
	if err != nil {
		return nil, err
	}
	if err := fornjot.Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (n *Node) build(path string) (fornjot.Shape, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: %s: missing table", ErrBadModel, path)
	}
	if err := n.checkKeys(path); err != nil {
		return nil, err
	}
	switch n.Kind {
	case "circle":
		return fornjot.Circle{Radius: n.Radius}, nil
	case "square":
		return fornjot.Square{Size: n.Size}, nil
	case "sweep":
		base, err := n.Shape.build(path + ".shape")
		if err != nil {
			return nil, err
		}
		s2, ok := base.(fornjot.Shape2d)
		if !ok {
			return nil, fmt.Errorf("%w: %s.shape: sweep needs a planar shape, got %q", ErrBadModel, path, n.Shape.Kind)
		}
		return fornjot.Sweep{Shape: s2, Length: n.Length}, nil
	case "union":
		a, err := n.A.solid(path + ".a")
		if err != nil {
			return nil, err
		}
		b, err := n.B.solid(path + ".b")
		if err != nil {
			return nil, err
		}
		return fornjot.Union{A: a, B: b}, nil
	case "":
		return nil, fmt.Errorf("%w: %s: missing kind", ErrBadModel, path)
	}
	return nil, fmt.Errorf("%w: %s: unknown kind %q", ErrBadModel, path, n.Kind)
}

// kindKeys lists the keys besides kind that each shape kind accepts.
var kindKeys = map[string][]string{
	"circle": {"radius"},
	"square": {"size"},
	"sweep":  {"length", "shape"},
	"union":  {"a", "b"},
}

// checkKeys rejects keys set on n that do not apply to its kind.
func (n *Node) checkKeys(path string) error {
	allowed, ok := kindKeys[n.Kind]
	if !ok {
		return nil // reported by build
	}
	set := map[string]bool{
		"radius": n.Radius != 0,
		"size":   n.Size != 0,
		"length": n.Length != 0,
		"shape":  n.Shape != nil,
		"a":      n.A != nil,
		"b":      n.B != nil,
	}
	for _, key := range []string{"radius", "size", "length", "shape", "a", "b"} {
		if set[key] && !slices.Contains(allowed, key) {
			return fmt.Errorf("%w: %s: key %q does not apply to %s", ErrBadModel, path, key, n.Kind)
		}
	}
	return nil
}

func (n *Node) solid(path string) (fornjot.Shape3d, error) {
	s, err := n.build(path)
	if err != nil {
		return nil, err
	}
	s3, ok := s.(fornjot.Shape3d)
	if !ok {
		return nil, fmt.Errorf("%w: %s: union needs solid operands, got %q", ErrBadModel, path, n.Kind)
	}
	return s3, nil
}
