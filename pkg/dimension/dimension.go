package dimension

import (
	"strings"

	"github.com/arthur-debert/physq/pkg/errors"
)

// Base identifies one of the SI base dimensions.
type Base int

const (
	Length Base = iota
	Mass
	Time
	Current
	Temperature
	Amount
	LuminousIntensity
)

// NumBases is the number of base dimensions tracked by a Dimension.
const NumBases = 7

var baseSymbols = [NumBases]string{"L", "M", "T", "I", "Θ", "N", "J"}

var baseNames = [NumBases]string{
	"length",
	"mass",
	"time",
	"current",
	"temperature",
	"amount",
	"luminous intensity",
}

// Bases returns every base dimension in canonical order.
func Bases() []Base {
	bases := make([]Base, NumBases)
	for i := range bases {
		bases[i] = Base(i)
	}
	return bases
}

// Symbol returns the single-letter symbol used in dimension strings.
func (b Base) Symbol() string { return baseSymbols[b] }

func (b Base) String() string { return baseNames[b] }

// Pow returns the term b^n.
func (b Base) Pow(n int) Term { return Term{Base: b, Exponent: Int(n)} }

// PowFrac returns the term b^(num/den).
func (b Base) PowFrac(num, den int64) Term { return Term{Base: b, Exponent: Frac(num, den)} }

// Dimension returns the dimension consisting of b alone.
func (b Base) Dimension() Dimension { return Of(b.Pow(1)) }

// BaseBySymbol resolves a base symbol. "Theta" is accepted for Θ.
func BaseBySymbol(symbol string) (Base, bool) {
	if symbol == "Theta" {
		return Temperature, true
	}
	for i, s := range baseSymbols {
		if s == symbol {
			return Base(i), true
		}
	}
	return 0, false
}

// Term is one base dimension raised to an exponent.
type Term struct {
	Base     Base
	Exponent Exponent
}

// Dimension is an immutable exponent vector over the base dimensions.
type Dimension struct {
	exps [NumBases]Exponent
}

// Dimensionless is the zero vector.
var Dimensionless = Dimension{}

// Of builds a dimension from named exponents. Repeated bases accumulate.
func Of(terms ...Term) Dimension {
	var d Dimension
	for _, t := range terms {
		d.exps[t.Base] = d.exps[t.Base].Add(t.Exponent)
	}
	return d
}

// Exponent returns the exponent of base b.
func (d Dimension) Exponent(b Base) Exponent { return d.exps[b] }

// Terms returns the non-zero terms in canonical base order.
func (d Dimension) Terms() []Term {
	var terms []Term
	for i, e := range d.exps {
		if !e.IsZero() {
			terms = append(terms, Term{Base: Base(i), Exponent: e})
		}
	}
	return terms
}

// Mul adds exponents. It panics if an exponent leaves the range of
// Exponent; TryMul reports that as an error instead.
func (d Dimension) Mul(o Dimension) Dimension {
	return mustDimension(d.TryMul(o))
}

// Div subtracts exponents.
func (d Dimension) Div(o Dimension) Dimension {
	return mustDimension(d.TryDiv(o))
}

// Pow scales every exponent by e.
func (d Dimension) Pow(e Exponent) Dimension {
	return mustDimension(d.TryPow(e))
}

func (d Dimension) TryMul(o Dimension) (Dimension, error) {
	return d.combine(o, Exponent.TryAdd)
}

func (d Dimension) TryDiv(o Dimension) (Dimension, error) {
	return d.combine(o, Exponent.TrySub)
}

func (d Dimension) TryPow(e Exponent) (Dimension, error) {
	var r Dimension
	for i := range r.exps {
		exp, err := d.exps[i].TryMul(e)
		if err != nil {
			return Dimension{}, err
		}
		r.exps[i] = exp
	}
	return r, nil
}

func (d Dimension) combine(o Dimension, op func(Exponent, Exponent) (Exponent, error)) (Dimension, error) {
	var r Dimension
	for i := range r.exps {
		exp, err := op(d.exps[i], o.exps[i])
		if err != nil {
			return Dimension{}, err
		}
		r.exps[i] = exp
	}
	return r, nil
}

func mustDimension(d Dimension, err error) Dimension {
	if err != nil {
		panic(err)
	}
	return d
}

func (d Dimension) PowInt(n int) Dimension {
	return d.Pow(Int(n))
}

// Root returns the n-th root, d^(1/n).
func (d Dimension) Root(n int) (Dimension, error) {
	if n <= 0 || int64(n) > MaxExponentPart {
		return Dimension{}, errors.Newf(errors.ErrInvalidInput, "root index must be between 1 and %d, got %d", MaxExponentPart, n)
	}
	return d.TryPow(Frac(1, int64(n)))
}

func (d Dimension) Inverse() Dimension {
	return d.PowInt(-1)
}

func (d Dimension) Equal(o Dimension) bool {
	return d == o
}

func (d Dimension) IsDimensionless() bool {
	return d == Dimensionless
}

// IsBase reports whether d is a single base dimension with exponent 1.
func (d Dimension) IsBase() bool {
	terms := d.Terms()
	return len(terms) == 1 && terms[0].Exponent == Int(1)
}

// String renders the canonical form, e.g. "L^2 T^-1" or "L^(1/2)".
// The dimensionless dimension renders as "1".
func (d Dimension) String() string {
	terms := d.Terms()
	if len(terms) == 0 {
		return "1"
	}

	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = formatTerm(t.Base.Symbol(), t.Exponent)
	}
	return strings.Join(parts, " ")
}

func formatTerm(symbol string, e Exponent) string {
	switch {
	case e == Int(1):
		return symbol
	case e.IsInt():
		return symbol + "^" + e.String()
	default:
		return symbol + "^(" + e.String() + ")"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Dimension) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (d *Dimension) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
