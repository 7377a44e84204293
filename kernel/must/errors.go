package must

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotImplemented is the panic value (wrapped) for capabilities a shape
// variant does not support yet, such as the edges of a Union.
var ErrNotImplemented = errors.New("not implemented")

// MaxCircleSides is the largest side count CircleSides returns.
const MaxCircleSides = 1 << 20

// ErrTooManySides is the panic value (wrapped) when a circle would need
// more than MaxCircleSides sides to meet the tolerance.
var ErrTooManySides = errors.New("too many circle sides")

func notImplemented(what string) {
	panic(fmt.Errorf("%s: %w", what, ErrNotImplemented))
}

// checkTolerance guards every entry point taking a tolerance. The circle
// side search never terminates for tolerance <= 0.
func checkTolerance(tolerance float64) {
	if !(tolerance > 0) || math.IsInf(tolerance, 1) {
		panic(fmt.Sprintf("tolerance must be positive and finite, got %g", tolerance))
	}
}

func checkDim(name string, v float64) {
	if !(v > 0) || math.IsInf(v, 1) {
		panic(fmt.Sprintf("%s must be positive and finite, got %g", name, v))
	}
}
