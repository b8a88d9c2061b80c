// Package unitexpr parses textual unit expressions such as "km^2/s" or
// "kg*m/s^2" into a dimension and a scale factor against SI base units.
//
// Grammar:
//
//	expression := ε | term { op term }
//	op         := "*" | "·" | "/" | whitespace
//	term       := factor [ "^" exponent ]
//	factor     := symbol | "1"
//	exponent   := [+-] digits | "(" [+-] digits [ "/" digits ] ")"
//
// Whitespace between two terms is an implicit "*". A "/" applies to the
// term that follows it only, so "m/s*kg" is m*kg/s.
package unitexpr

import (
	"github.com/arthur-debert/physq/pkg/dimension"
	"github.com/arthur-debert/physq/pkg/units"
)

// Factor is one resolved term of an expression.
type Factor struct {
	Symbol   string
	Match    units.Match
	Exponent dimension.Exponent
}

// Expression is a parsed unit expression. A value v written in this unit
// is v*Scale + Offset in base units. Offset is non-zero only for a lone
// affine unit such as "degC"; inside compound expressions an affine unit
// contributes its scale only.
type Expression struct {
	Text      string
	Dimension dimension.Dimension
	Scale     float64
	Offset    float64
	Factors   []Factor
}

// IsAffine reports whether converting through this expression applies an offset.
func (e Expression) IsAffine() bool {
	return e.Offset != 0
}

// ToBase converts a value in this unit to base units.
func (e Expression) ToBase(v float64) float64 {
	return v*e.Scale + e.Offset
}

// FromBase converts a base-unit value to this unit.
func (e Expression) FromBase(v float64) float64 {
	return (v - e.Offset) / e.Scale
}

// IsDimensionless reports whether the expression has no dimension, like "" or "m/km".
func (e Expression) IsDimensionless() bool {
	return e.Dimension.IsDimensionless()
}

func (e Expression) String() string {
	if e.Text == "" {
		return "1"
	}
	return e.Text
}
