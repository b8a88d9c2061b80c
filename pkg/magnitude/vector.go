package magnitude

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/arthur-debert/physq/pkg/errors"
)

// Vector is an array magnitude. Binary operations work element-wise on
// equal lengths; a length-1 operand broadcasts against the other side.
// Vectors are never modified in place.
type Vector []float64

var _ Magnitude[Vector] = Vector(nil)

// NewVector copies values into a new Vector.
func NewVector(values ...float64) Vector {
	return Vector(append([]float64(nil), values...))
}

// Values returns a copy of the elements.
func (v Vector) Values() []float64 {
	return append([]float64(nil), v...)
}

func (v Vector) Len() int { return len(v) }

func (v Vector) Add(o Vector) (Vector, error) {
	a, b, err := broadcast("add", v, o)
	if err != nil {
		return nil, err
	}
	return floats.AddTo(make(Vector, len(a)), a, b), nil
}

func (v Vector) Sub(o Vector) (Vector, error) {
	a, b, err := broadcast("subtract", v, o)
	if err != nil {
		return nil, err
	}
	return floats.SubTo(make(Vector, len(a)), a, b), nil
}

func (v Vector) Mul(o Vector) (Vector, error) {
	a, b, err := broadcast("multiply", v, o)
	if err != nil {
		return nil, err
	}
	return floats.MulTo(make(Vector, len(a)), a, b), nil
}

func (v Vector) Div(o Vector) (Vector, error) {
	a, b, err := broadcast("divide", v, o)
	if err != nil {
		return nil, err
	}
	return floats.DivTo(make(Vector, len(a)), a, b), nil
}

func (v Vector) Affine(scale, offset float64) Vector {
	out := v.Values()
	floats.Scale(scale, out)
	floats.AddConst(offset, out)
	return out
}

func (v Vector) Unscale(scale, offset float64) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = (x - offset) / scale
	}
	return out
}

func (v Vector) Pow(p float64) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = math.Pow(x, p)
	}
	return out
}

func (v Vector) Neg() Vector {
	return v.Affine(-1, 0)
}

func (v Vector) Equal(o Vector) (bool, error) {
	if len(v) != len(o) {
		return false, shapeMismatch("compare", len(v), len(o))
	}
	return floats.Equal(v, o), nil
}

func (v Vector) ApproxEqual(o Vector, tol float64) (bool, error) {
	if len(v) != len(o) {
		return false, shapeMismatch("compare", len(v), len(o))
	}
	return floats.EqualFunc(v, o, func(a, b float64) bool {
		return scalar.EqualWithinAbsOrRel(a, b, tol, tol)
	}), nil
}

// Norm returns the Euclidean norm.
func (v Vector) Norm() float64 {
	if len(v) == 0 {
		return 0
	}
	return floats.Norm(v, 2)
}

func (v Vector) Format(precision int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = Scalar(x).Format(precision)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// broadcast expands a length-1 operand to the other operand's length.
func broadcast(op string, a, b Vector) (Vector, Vector, error) {
	switch {
	case len(a) == len(b):
		return a, b, nil
	case len(a) == 1:
		return fill(a[0], len(b)), b, nil
	case len(b) == 1:
		return a, fill(b[0], len(a)), nil
	default:
		return nil, nil, shapeMismatch(op, len(a), len(b))
	}
}

func fill(x float64, n int) Vector {
	out := make(Vector, n)
	for i := range out {
		out[i] = x
	}
	return out
}

func shapeMismatch(op string, left, right int) error {
	return errors.Newf(errors.ErrShapeMismatch, "cannot %s vectors of length %d and %d", op, left, right).
		WithDetail("left", left).
		WithDetail("right", right)
}
