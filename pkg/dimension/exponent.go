package dimension

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arthur-debert/physq/pkg/errors"
)

// MaxExponentPart bounds the numerator and denominator of every Exponent.
// With both parts inside 32 bits, sums and products are exact in int64
// before reduction.
const MaxExponentPart = math.MaxInt32

// Exponent is a reduced rational number. The zero value is 0.
type Exponent struct {
	num int64
	den int64 // 0 only when num is 0
}

// Int returns the integer exponent n.
func Int(n int) Exponent {
	return Frac(int64(n), 1)
}

// Frac returns num/den reduced to lowest terms. It panics when den is zero
// or either reduced part exceeds MaxExponentPart.
func Frac(num, den int64) Exponent {
	if den == 0 {
		panic("dimension: zero denominator in exponent")
	}
	e, err := reduce(num, den)
	if err != nil {
		panic(err)
	}
	return e
}

func reduce(num, den int64) (Exponent, error) {
	if num == math.MinInt64 || den == math.MinInt64 {
		return Exponent{}, outOfRange(num, den)
	}
	if num == 0 {
		return Exponent{}, nil
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	num, den = num/g, den/g
	if abs(num) > MaxExponentPart || den > MaxExponentPart {
		return Exponent{}, outOfRange(num, den)
	}
	return Exponent{num: num, den: den}, nil
}

func outOfRange(num, den int64) error {
	return errors.Newf(errors.ErrInvalidInput, "exponent %d/%d is out of range", num, den).
		WithDetail("numerator", num).
		WithDetail("denominator", den)
}

// Num returns the numerator.
func (e Exponent) Num() int64 { return e.num }

// Den returns the denominator, always positive.
func (e Exponent) Den() int64 {
	if e.den == 0 {
		return 1
	}
	return e.den
}

func (e Exponent) IsZero() bool { return e.num == 0 }

// IsInt reports whether the exponent has no fractional part.
func (e Exponent) IsInt() bool { return e.Den() == 1 }

// TryAdd returns e+o, or INVALID_INPUT when the result leaves the
// representable range.
func (e Exponent) TryAdd(o Exponent) (Exponent, error) {
	return reduce(e.num*o.Den()+o.num*e.Den(), e.Den()*o.Den())
}

func (e Exponent) TrySub(o Exponent) (Exponent, error) {
	return e.TryAdd(o.Neg())
}

// TryMul returns e*o, or INVALID_INPUT when the result leaves the
// representable range.
func (e Exponent) TryMul(o Exponent) (Exponent, error) {
	return reduce(e.num*o.num, e.Den()*o.Den())
}

// Add is TryAdd for callers that know the result fits. It panics otherwise.
func (e Exponent) Add(o Exponent) Exponent {
	return mustExponent(e.TryAdd(o))
}

func (e Exponent) Sub(o Exponent) Exponent {
	return mustExponent(e.TrySub(o))
}

func (e Exponent) Mul(o Exponent) Exponent {
	return mustExponent(e.TryMul(o))
}

func mustExponent(e Exponent, err error) Exponent {
	if err != nil {
		panic(err)
	}
	return e
}

func (e Exponent) Neg() Exponent {
	return Exponent{num: -e.num, den: e.den}
}

func (e Exponent) Float64() float64 {
	return float64(e.num) / float64(e.Den())
}

// String renders integers as "2" or "-1" and fractions as "1/2".
func (e Exponent) String() string {
	if e.IsInt() {
		return strconv.FormatInt(e.num, 10)
	}
	return fmt.Sprintf("%d/%d", e.num, e.den)
}

// ParseExponent accepts "2", "-1", "+3", "1/2", "-3/4" and the same forms
// wrapped in parentheses.
func ParseExponent(s string) (Exponent, error) {
	text := strings.TrimSpace(s)
	if strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")") {
		text = strings.TrimSpace(text[1 : len(text)-1])
	}

	numText, denText, isFrac := strings.Cut(text, "/")
	num, err := strconv.ParseInt(strings.TrimSpace(numText), 10, 64)
	if err != nil {
		return Exponent{}, errors.Newf(errors.ErrInvalidInput, "invalid exponent %q", s)
	}
	den := int64(1)
	if isFrac {
		den, err = strconv.ParseInt(strings.TrimSpace(denText), 10, 64)
		if err != nil || den <= 0 {
			return Exponent{}, errors.Newf(errors.ErrInvalidInput, "invalid exponent %q", s)
		}
	}
	if num < -MaxExponentPart || num > MaxExponentPart || den > MaxExponentPart {
		return Exponent{}, errors.Newf(errors.ErrInvalidInput, "exponent %q is out of range", s).
			WithDetail("exponent", s)
	}
	return reduce(num, den)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
