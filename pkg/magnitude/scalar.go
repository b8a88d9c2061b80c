package magnitude

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
)

// Scalar is a single float64 magnitude. Its operations never fail.
type Scalar float64

var (
	_ Magnitude[Scalar] = Scalar(0)
	_ Ordered[Scalar]   = Scalar(0)
)

func (s Scalar) Float64() float64 { return float64(s) }

func (s Scalar) Add(o Scalar) (Scalar, error) { return s + o, nil }
func (s Scalar) Sub(o Scalar) (Scalar, error) { return s - o, nil }
func (s Scalar) Mul(o Scalar) (Scalar, error) { return s * o, nil }
func (s Scalar) Div(o Scalar) (Scalar, error) { return s / o, nil }

func (s Scalar) Affine(scale, offset float64) Scalar {
	return Scalar(float64(s)*scale + offset)
}

func (s Scalar) Unscale(scale, offset float64) Scalar {
	return Scalar((float64(s) - offset) / scale)
}

func (s Scalar) Pow(p float64) Scalar {
	return Scalar(math.Pow(float64(s), p))
}

func (s Scalar) Neg() Scalar { return -s }

func (s Scalar) Len() int { return 1 }

func (s Scalar) Equal(o Scalar) (bool, error) { return s == o, nil }

func (s Scalar) ApproxEqual(o Scalar, tol float64) (bool, error) {
	return scalar.EqualWithinAbsOrRel(float64(s), float64(o), tol, tol), nil
}

// Cmp returns -1, 0 or +1. NaN compares below every other value.
func (s Scalar) Cmp(o Scalar) int {
	switch {
	case s < o:
		return -1
	case s > o:
		return 1
	case s == o:
		return 0
	case math.IsNaN(float64(s)) && math.IsNaN(float64(o)):
		return 0
	case math.IsNaN(float64(s)):
		return -1
	default:
		return 1
	}
}

// Format renders with %g semantics; a negative precision is the shortest
// representation that round-trips.
func (s Scalar) Format(precision int) string {
	return strconv.FormatFloat(float64(s), 'g', precision, 64)
}
