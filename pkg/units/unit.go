package units

import (
	"math"
	"strings"
	"unicode"

	"github.com/arthur-debert/physq/pkg/dimension"
	"github.com/arthur-debert/physq/pkg/errors"
)

// Unit is one registry entry. Scale is the size of one unit in the SI base
// unit of its dimension; Offset is the affine shift in base units, so a
// value v in this unit is v*Scale + Offset in base units.
type Unit struct {
	Symbol     string              `json:"symbol" yaml:"symbol"`
	Name       string              `json:"name,omitempty" yaml:"name,omitempty"`
	Aliases    []string            `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Dimension  dimension.Dimension `json:"dimension" yaml:"dimension"`
	Scale      float64             `json:"scale" yaml:"scale"`
	Offset     float64             `json:"offset,omitempty" yaml:"offset,omitempty"`
	Prefixable bool                `json:"prefixable" yaml:"prefixable"`
}

// IsAffine reports whether the unit carries an offset (degC, degF).
func (u Unit) IsAffine() bool {
	return u.Offset != 0
}

// Names returns the symbol followed by the aliases.
func (u Unit) Names() []string {
	return append([]string{u.Symbol}, u.Aliases...)
}

// ToBase converts a value expressed in u to base units.
func (u Unit) ToBase(v float64) float64 {
	return v*u.Scale + u.Offset
}

// FromBase converts a base-unit value to u.
func (u Unit) FromBase(v float64) float64 {
	return (v - u.Offset) / u.Scale
}

// Validate checks the invariants every registered unit must hold.
func (u Unit) Validate() error {
	if u.Symbol == "" {
		return errors.New(errors.ErrUnitDefinition, "unit symbol cannot be empty")
	}
	if !isFinite(u.Scale) || u.Scale <= 0 {
		return errors.Newf(errors.ErrUnitDefinition, "unit %q: scale must be a positive finite number, got %g", u.Symbol, u.Scale).
			WithDetail("symbol", u.Symbol)
	}
	if !isFinite(u.Offset) {
		return errors.Newf(errors.ErrUnitDefinition, "unit %q: offset must be finite", u.Symbol).
			WithDetail("symbol", u.Symbol)
	}
	if u.IsAffine() && u.Prefixable {
		return errors.Newf(errors.ErrUnitDefinition, "unit %q: affine units cannot take prefixes", u.Symbol).
			WithDetail("symbol", u.Symbol)
	}
	for _, alias := range u.Aliases {
		if alias == "" {
			return errors.Newf(errors.ErrUnitDefinition, "unit %q: empty alias", u.Symbol).
				WithDetail("symbol", u.Symbol)
		}
	}
	for _, name := range u.Names() {
		if !IsSymbol(name) {
			return errors.Newf(errors.ErrUnitDefinition, "unit %q: name %q can only contain letters, '°' and '_'", u.Symbol, name).
				WithDetail("symbol", u.Symbol).
				WithDetail("name", name)
		}
	}
	return nil
}

// IsSymbolRune reports whether r may appear in a unit or prefix symbol.
// Unit expressions lex a symbol as the longest run of such runes, so "°C",
// "Ω", "µm" and "kWh" are single symbols.
func IsSymbolRune(r rune) bool {
	return unicode.IsLetter(r) || r == '°' || r == '_'
}

// IsSymbol reports whether name is a non-empty run of symbol runes, which
// is what a unit expression can refer to.
func IsSymbol(name string) bool {
	return name != "" && strings.IndexFunc(name, func(r rune) bool { return !IsSymbolRune(r) }) < 0
}

// sameDefinition ignores names and only compares what conversions depend on.
func (u Unit) sameDefinition(o Unit) bool {
	return u.Dimension == o.Dimension &&
		closeEnough(u.Scale, o.Scale) &&
		closeEnough(u.Offset, o.Offset) &&
		u.Prefixable == o.Prefixable
}

// Prefix is a multiplicative prefix such as "k" (1e3) or "µ" (1e-6).
type Prefix struct {
	Symbol string  `json:"symbol" yaml:"symbol"`
	Name   string  `json:"name" yaml:"name"`
	Factor float64 `json:"factor" yaml:"factor"`
}

// Match is the result of resolving a symbol against a registry.
type Match struct {
	// Symbol is the text that was looked up, e.g. "km".
	Symbol string
	Unit   Unit
	// Prefix is the zero Prefix when the symbol matched exactly.
	Prefix Prefix
	Scale  float64
	Offset float64
}

// HasPrefix reports whether the match was made by stripping a prefix.
func (m Match) HasPrefix() bool {
	return m.Prefix.Symbol != ""
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func closeEnough(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-12*math.Max(math.Abs(a), math.Abs(b))
}
