package quantity

import (
	"github.com/arthur-debert/physq/pkg/dimension"
	"github.com/arthur-debert/physq/pkg/errors"
	"github.com/arthur-debert/physq/pkg/magnitude"
	"github.com/arthur-debert/physq/pkg/unitexpr"
	"github.com/arthur-debert/physq/pkg/units"
)

// Quantity is a magnitude in SI base units tagged with its dimension. The
// display unit only affects String; arithmetic and comparisons always work
// on base values.
type Quantity[M magnitude.Magnitude[M]] struct {
	system *System
	dim    dimension.Dimension
	base   M
	unit   string
}

// New builds a quantity from a value expressed in unit.
func New[M magnitude.Magnitude[M]](s *System, value M, unit string) (Quantity[M], error) {
	expr, err := s.parser.Parse(unit)
	if err != nil {
		return Quantity[M]{}, err
	}
	return Quantity[M]{
		system: s,
		dim:    expr.Dimension,
		base:   value.Affine(expr.Scale, expr.Offset),
		unit:   expr.Text,
	}, nil
}

// Wrap re-attaches a dimension to a raw base-unit magnitude, typically one
// that came back from a routine that was handed Raw().
func Wrap[M magnitude.Magnitude[M]](s *System, raw M, dim dimension.Dimension) Quantity[M] {
	return Quantity[M]{system: s, dim: dim, base: raw}
}

// Raw returns the magnitude in SI base units, dropping the dimension.
func (q Quantity[M]) Raw() M { return q.base }

func (q Quantity[M]) Dimension() dimension.Dimension { return q.dim }

func (q Quantity[M]) System() *System { return q.system }

// Unit returns the display unit, or the canonical base-unit expression
// when the quantity has none.
func (q Quantity[M]) Unit() string {
	if q.unit != "" {
		return q.unit
	}
	return units.BaseExpression(q.dim)
}

// In returns the magnitude expressed in unit: (base - offset) / scale.
func (q Quantity[M]) In(unit string) (M, error) {
	expr, err := q.expression("convert to "+unit, unit)
	if err != nil {
		var zero M
		return zero, err
	}
	return fromBase(q.base, expr), nil
}

// Convert returns the same quantity with unit as its display unit.
func (q Quantity[M]) Convert(unit string) (Quantity[M], error) {
	expr, err := q.expression("convert to "+unit, unit)
	if err != nil {
		return Quantity[M]{}, err
	}
	q.unit = expr.Text
	return q, nil
}

// Add returns q + o, keeping q's display unit. Dimensions must match.
func (q Quantity[M]) Add(o Quantity[M]) (Quantity[M], error) {
	if q.dim != o.dim {
		return Quantity[M]{}, mismatch("add", q.dim, o.dim)
	}
	sum, err := q.base.Add(o.base)
	if err != nil {
		return Quantity[M]{}, err
	}
	return q.with(q.dim, sum, q.unit), nil
}

// Sub returns q - o, keeping q's display unit. Dimensions must match.
func (q Quantity[M]) Sub(o Quantity[M]) (Quantity[M], error) {
	if q.dim != o.dim {
		return Quantity[M]{}, mismatch("subtract", q.dim, o.dim)
	}
	diff, err := q.base.Sub(o.base)
	if err != nil {
		return Quantity[M]{}, err
	}
	return q.with(q.dim, diff, q.unit), nil
}

// Mul is always defined; the result dimension is the product. The result
// is displayed in base units.
func (q Quantity[M]) Mul(o Quantity[M]) (Quantity[M], error) {
	prod, err := q.base.Mul(o.base)
	if err != nil {
		return Quantity[M]{}, err
	}
	dim, err := q.dim.TryMul(o.dim)
	if err != nil {
		return Quantity[M]{}, err
	}
	return q.with(dim, prod, ""), nil
}

// Div is always defined; the result dimension is the quotient.
func (q Quantity[M]) Div(o Quantity[M]) (Quantity[M], error) {
	quot, err := q.base.Div(o.base)
	if err != nil {
		return Quantity[M]{}, err
	}
	dim, err := q.dim.TryDiv(o.dim)
	if err != nil {
		return Quantity[M]{}, err
	}
	return q.with(dim, quot, ""), nil
}

// Pow raises the quantity to a rational power. Like dimension.Pow it
// panics when a resulting exponent is out of range.
func (q Quantity[M]) Pow(e dimension.Exponent) Quantity[M] {
	if e == dimension.Int(1) {
		return q
	}
	return q.with(q.dim.Pow(e), q.base.Pow(e.Float64()), "")
}

func (q Quantity[M]) PowInt(n int) Quantity[M] {
	return q.Pow(dimension.Int(n))
}

// Root returns the n-th root. n must be positive.
func (q Quantity[M]) Root(n int) (Quantity[M], error) {
	dim, err := q.dim.Root(n)
	if err != nil {
		return Quantity[M]{}, err
	}
	return q.with(dim, q.base.Pow(1/float64(n)), ""), nil
}

// Scale multiplies by a dimensionless factor, keeping the display unit.
func (q Quantity[M]) Scale(f float64) Quantity[M] {
	return q.with(q.dim, q.base.Affine(f, 0), q.unit)
}

func (q Quantity[M]) Neg() Quantity[M] {
	return q.with(q.dim, q.base.Neg(), q.unit)
}

// Cmp orders two quantities of the same dimension. Magnitudes without a
// total order (vectors) fail with NOT_COMPARABLE.
func (q Quantity[M]) Cmp(o Quantity[M]) (int, error) {
	if q.dim != o.dim {
		return 0, mismatch("compare", q.dim, o.dim)
	}
	ordered, ok := any(q.base).(magnitude.Ordered[M])
	if !ok {
		return 0, errors.Newf(errors.ErrNotComparable, "%T magnitudes have no order", q.base)
	}
	return ordered.Cmp(o.base), nil
}

func (q Quantity[M]) Less(o Quantity[M]) (bool, error) {
	c, err := q.Cmp(o)
	return c < 0, err
}

// Equal compares base values exactly. Quantities of different dimensions
// are not comparable at all and produce DIMENSION_MISMATCH.
func (q Quantity[M]) Equal(o Quantity[M]) (bool, error) {
	if q.dim != o.dim {
		return false, mismatch("compare", q.dim, o.dim)
	}
	return q.base.Equal(o.base)
}

// ApproxEqual compares base values within tol, used as both absolute and
// relative tolerance.
func (q Quantity[M]) ApproxEqual(o Quantity[M], tol float64) (bool, error) {
	if q.dim != o.dim {
		return false, mismatch("compare", q.dim, o.dim)
	}
	return q.base.ApproxEqual(o.base, tol)
}

// String renders the value in its display unit, e.g. "3 m^2/s", or in
// canonical base units ("6 kg*m^2/s^2") when it has none.
func (q Quantity[M]) String() string {
	return q.Format(-1)
}

// Format is String with a fixed number of significant digits; a negative
// precision uses the shortest exact representation.
func (q Quantity[M]) Format(precision int) string {
	unit := q.Unit()
	value := q.base
	if q.unit != "" && q.system != nil {
		if expr, err := q.system.parser.Parse(q.unit); err == nil {
			value = fromBase(q.base, expr)
		}
	}

	text := value.Format(precision)
	if unit == "" || unit == "1" {
		return text
	}
	return text + " " + unit
}

func (q Quantity[M]) with(dim dimension.Dimension, base M, unit string) Quantity[M] {
	return Quantity[M]{system: q.system, dim: dim, base: base, unit: unit}
}

// expression parses unit and checks it against q's dimension.
func (q Quantity[M]) expression(operation, unit string) (unitexpr.Expression, error) {
	system := q.system
	if system == nil {
		system = Default()
	}
	expr, err := system.parser.Parse(unit)
	if err != nil {
		return unitexpr.Expression{}, err
	}
	if expr.Dimension != q.dim {
		return unitexpr.Expression{}, mismatch(operation, expr.Dimension, q.dim)
	}
	return expr, nil
}

func fromBase[M magnitude.Magnitude[M]](base M, expr unitexpr.Expression) M {
	return base.Unscale(expr.Scale, expr.Offset)
}

func mismatch(operation string, expected, actual dimension.Dimension) error {
	return errors.DimensionMismatch(operation, expected.String(), actual.String())
}
