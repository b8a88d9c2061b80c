package units

import (
	"strings"

	"github.com/arthur-debert/physq/pkg/dimension"
)

// baseOrder puts mass first so energy renders as the familiar kg*m^2/s^2.
var baseOrder = []struct {
	base   dimension.Base
	symbol string
}{
	{dimension.Mass, "kg"},
	{dimension.Length, "m"},
	{dimension.Time, "s"},
	{dimension.Current, "A"},
	{dimension.Temperature, "K"},
	{dimension.Amount, "mol"},
	{dimension.LuminousIntensity, "cd"},
}

// BaseSymbol returns the SI base unit symbol for b.
func BaseSymbol(b dimension.Base) string {
	for _, entry := range baseOrder {
		if entry.base == b {
			return entry.symbol
		}
	}
	return ""
}

// BaseExpression renders dim in SI base units, e.g. "kg*m^2/s^2" or
// "m^(1/2)". Every denominator term gets its own "/", so the result parses
// back to the same dimension with scale 1. Dimensionless renders as "1".
func BaseExpression(dim dimension.Dimension) string {
	var num, den []string
	for _, entry := range baseOrder {
		e := dim.Exponent(entry.base)
		switch {
		case e.IsZero():
		case e.Num() > 0:
			num = append(num, powTerm(entry.symbol, e))
		default:
			den = append(den, powTerm(entry.symbol, e.Neg()))
		}
	}

	if len(num) == 0 && len(den) == 0 {
		return "1"
	}

	var b strings.Builder
	if len(num) == 0 {
		b.WriteString("1")
	} else {
		b.WriteString(strings.Join(num, "*"))
	}
	for _, term := range den {
		b.WriteString("/")
		b.WriteString(term)
	}
	return b.String()
}

func powTerm(symbol string, e dimension.Exponent) string {
	switch {
	case e == dimension.Int(1):
		return symbol
	case e.IsInt():
		return symbol + "^" + e.String()
	default:
		return symbol + "^(" + e.String() + ")"
	}
}
