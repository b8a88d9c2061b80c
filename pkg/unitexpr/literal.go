package unitexpr

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/arthur-debert/physq/pkg/errors"
)

var numberPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// SplitLiteral separates a quantity literal such as "3m^2/s" or
// "1.5e-3 kg*m/s^2" into its number and its unit expression text.
func SplitLiteral(literal string) (float64, string, error) {
	text := strings.TrimSpace(literal)
	loc := numberPattern.FindStringIndex(text)
	if loc == nil {
		return 0, "", errors.Newf(errors.ErrInvalidInput, "quantity %q must start with a number", literal).
			WithDetail("literal", literal)
	}

	value, err := strconv.ParseFloat(text[:loc[1]], 64)
	if err != nil {
		return 0, "", errors.Wrapf(err, errors.ErrInvalidInput, "quantity %q has an invalid number", literal).
			WithDetail("literal", literal)
	}
	return value, strings.TrimSpace(text[loc[1]:]), nil
}

// ParseLiteral splits literal and parses its unit expression.
func (p *Parser) ParseLiteral(literal string) (float64, Expression, error) {
	value, unitText, err := SplitLiteral(literal)
	if err != nil {
		return 0, Expression{}, err
	}

	expr, err := p.Parse(unitText)
	if err != nil {
		return 0, Expression{}, err
	}
	return value, expr, nil
}
