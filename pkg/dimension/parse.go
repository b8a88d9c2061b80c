package dimension

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arthur-debert/physq/pkg/errors"
)

// Parse reads a dimension string. It accepts the canonical String form
// ("L^2 T^-1", "L^(1/2)"), explicit products ("M*L^2*T^-2"), and the
// compact fraction form where everything after a single "/" belongs to the
// denominator ("LT/M^3I", "1/T"). "Θ" may be written "Theta".
func Parse(s string) (Dimension, error) {
	text := strings.TrimSpace(s)
	if text == "" || text == "1" {
		return Dimensionless, nil
	}

	slashes := topLevelSlashes(text)
	if len(slashes) > 1 {
		return Dimension{}, invalidDimension(s, "more than one '/'")
	}
	numerator, denominator, hasDenominator := text, "", false
	if len(slashes) == 1 {
		numerator, denominator, hasDenominator = text[:slashes[0]], text[slashes[0]+1:], true
	}

	num, err := parseProduct(s, numerator)
	if err != nil {
		return Dimension{}, err
	}
	if !hasDenominator {
		return num, nil
	}

	den, err := parseProduct(s, denominator)
	if err != nil {
		return Dimension{}, err
	}
	d, err := num.TryDiv(den)
	if err != nil {
		return Dimension{}, invalidDimension(s, "exponent out of range")
	}
	return d, nil
}

// MustParse is like Parse but panics on error. Intended for tables and tests.
func MustParse(s string) Dimension {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func parseProduct(original, text string) (Dimension, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Dimension{}, invalidDimension(original, "missing term")
	}
	if text == "1" {
		return Dimensionless, nil
	}

	var d Dimension
	pos := 0
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if unicode.IsSpace(r) || r == '*' || r == '·' {
			pos += size
			continue
		}

		base, width, ok := scanBase(text[pos:])
		if !ok {
			return Dimension{}, invalidDimension(original, "unexpected "+quoteRune(r))
		}
		pos += width

		exp := Int(1)
		if pos < len(text) && text[pos] == '^' {
			pos++
			expText, width := scanExponent(text[pos:])
			if width == 0 {
				return Dimension{}, invalidDimension(original, "missing exponent")
			}
			parsed, err := ParseExponent(expText)
			if err != nil {
				return Dimension{}, invalidDimension(original, "bad exponent "+expText)
			}
			exp = parsed
			pos += width
		}
		sum, err := d.exps[base].TryAdd(exp)
		if err != nil {
			return Dimension{}, invalidDimension(original, "exponent out of range")
		}
		d.exps[base] = sum
	}
	return d, nil
}

// topLevelSlashes returns the byte offsets of '/' outside parentheses, so
// rational exponents such as "^(1/2)" are not mistaken for a fraction bar.
func topLevelSlashes(text string) []int {
	var offsets []int
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '/':
			if depth == 0 {
				offsets = append(offsets, i)
			}
		}
	}
	return offsets
}

func scanBase(text string) (Base, int, bool) {
	if strings.HasPrefix(text, "Theta") {
		return Temperature, len("Theta"), true
	}
	r, size := utf8.DecodeRuneInString(text)
	base, ok := BaseBySymbol(string(r))
	return base, size, ok
}

// scanExponent returns the exponent text at the start of text and its width.
func scanExponent(text string) (string, int) {
	if strings.HasPrefix(text, "(") {
		end := strings.IndexByte(text, ')')
		if end < 0 {
			return "", 0
		}
		return text[:end+1], end + 1
	}

	i := 0
	if i < len(text) && (text[i] == '-' || text[i] == '+') {
		i++
	}
	start := i
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	if i == start {
		return "", 0
	}
	return text[:i], i
}

func invalidDimension(s, reason string) error {
	return errors.Newf(errors.ErrInvalidInput, "invalid dimension %q: %s", s, reason).
		WithDetail("dimension", s)
}

func quoteRune(r rune) string {
	return "'" + string(r) + "'"
}
