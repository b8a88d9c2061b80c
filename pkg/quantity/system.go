// Package quantity implements physical quantities: a magnitude stored in
// SI base units together with its dimension. Arithmetic checks dimensions
// and conversion to any compatible unit expression is a method call.
//
//	q, _ := quantity.Default().Parse("3m^2/s")
//	v, _ := q.In("km^2/s") // 3e-6
//
// Quantities are immutable values. Array payloads use magnitude.Vector;
// at a boundary where the unit bookkeeping cannot follow (a numeric
// routine that only understands floats), strip with Raw and re-attach
// with Wrap.
package quantity

import (
	"sync"

	"github.com/arthur-debert/physq/pkg/dimension"
	"github.com/arthur-debert/physq/pkg/magnitude"
	"github.com/arthur-debert/physq/pkg/unitexpr"
	"github.com/arthur-debert/physq/pkg/units"
)

// System is the context quantities are built in: it owns the parser, and
// through it the unit registry, used to interpret every unit string.
type System struct {
	parser *unitexpr.Parser
}

// NewSystem returns a system over the given parser.
func NewSystem(parser *unitexpr.Parser) *System {
	return &System{parser: parser}
}

// NewSystemForRegistry is a shortcut for NewSystem(unitexpr.NewParser(reg, opts...)).
func NewSystemForRegistry(reg *units.Registry, opts ...unitexpr.Option) *System {
	return NewSystem(unitexpr.NewParser(reg, opts...))
}

var (
	defaultOnce   sync.Once
	defaultSystem *System
)

// Default returns the system over unitexpr.Default().
func Default() *System {
	defaultOnce.Do(func() {
		defaultSystem = NewSystem(unitexpr.Default())
	})
	return defaultSystem
}

func (s *System) Parser() *unitexpr.Parser {
	return s.parser
}

func (s *System) Registry() *units.Registry {
	return s.parser.Registry()
}

// Parse reads a quantity literal such as "3m^2/s" or "1.5e-3 kg*m/s^2".
// The literal's unit becomes the display unit.
func (s *System) Parse(literal string) (Quantity[magnitude.Scalar], error) {
	value, expr, err := s.parser.ParseLiteral(literal)
	if err != nil {
		return Quantity[magnitude.Scalar]{}, err
	}
	return Quantity[magnitude.Scalar]{
		system: s,
		dim:    expr.Dimension,
		base:   magnitude.Scalar(expr.ToBase(value)),
		unit:   expr.Text,
	}, nil
}

// ParseAs is Parse with a dimension check: a literal whose dimension is not
// dim fails with DIMENSION_MISMATCH.
func (s *System) ParseAs(dim dimension.Dimension, literal string) (Quantity[magnitude.Scalar], error) {
	q, err := s.Parse(literal)
	if err != nil {
		return Quantity[magnitude.Scalar]{}, err
	}
	if q.dim != dim {
		return Quantity[magnitude.Scalar]{}, mismatch("parse "+literal, dim, q.dim)
	}
	return q, nil
}

// MustParse is like Parse but panics on error. Intended for constants and tests.
func (s *System) MustParse(literal string) Quantity[magnitude.Scalar] {
	q, err := s.Parse(literal)
	if err != nil {
		panic(err)
	}
	return q
}

// Scalar builds a scalar quantity from a value expressed in unit.
func (s *System) Scalar(value float64, unit string) (Quantity[magnitude.Scalar], error) {
	return New(s, magnitude.Scalar(value), unit)
}

// Vector builds an array quantity from values expressed in unit.
func (s *System) Vector(values []float64, unit string) (Quantity[magnitude.Vector], error) {
	return New(s, magnitude.NewVector(values...), unit)
}
