package fornjot

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	cyl := Sweep{Shape: Circle{Radius: 1}, Length: 2}
	for _, test := range []struct {
		shape Shape
		path  string // empty for a valid shape
	}{
		{shape: Circle{Radius: 1}},
		{shape: Square{Size: 0.5}},
		{shape: cyl},
		{shape: Union{A: cyl, B: Sweep{Shape: Square{Size: 1}, Length: 1}}},
		{shape: nil, path: "shape: missing"},
		{shape: Circle{}, path: "circle: radius"},
		{shape: Circle{Radius: math.NaN()}, path: "circle: radius"},
		{shape: Square{Size: math.Inf(1)}, path: "square: size"},
		{shape: Sweep{Shape: Square{Size: 1}, Length: -1}, path: "sweep: length"},
		{shape: Sweep{Length: 1}, path: "sweep.shape: missing"},
		{shape: Union{A: cyl}, path: "union.b: missing"},
		{shape: Union{A: cyl, B: Sweep{Shape: Circle{Radius: -2}, Length: 1}}, path: "union.b.sweep.shape.circle: radius"},
	} {
		err := Validate(test.shape)
		if test.path == "" {
			if err != nil {
				t.Errorf("%#v: unexpected error %v", test.shape, err)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidShape) {
			t.Errorf("%#v: got %v, want ErrInvalidShape", test.shape, err)
			continue
		}
		if !strings.Contains(err.Error(), test.path) {
			t.Errorf("%#v: error %q does not mention %q", test.shape, err, test.path)
		}
	}
}
