package unitexpr

import (
	"math"
	"strings"
	"sync"

	"github.com/arthur-debert/physq/pkg/dimension"
	"github.com/arthur-debert/physq/pkg/errors"
	"github.com/arthur-debert/physq/pkg/logging"
	"github.com/arthur-debert/physq/pkg/units"
)

// Parser turns unit expressions into Expressions using one registry.
// It is safe for concurrent use.
type Parser struct {
	reg      *units.Registry
	useCache bool

	mu       sync.RWMutex
	cache    map[string]Expression
	cacheGen uint64
}

// Option configures a Parser.
type Option func(*Parser)

// WithoutCache disables memoization of parsed expressions.
func WithoutCache() Option {
	return func(p *Parser) {
		p.useCache = false
	}
}

// WithCache sets whether parsed expressions are memoized. On by default.
func WithCache(enabled bool) Option {
	return func(p *Parser) {
		p.useCache = enabled
	}
}

// NewParser returns a parser that resolves symbols against reg.
func NewParser(reg *units.Registry, opts ...Option) *Parser {
	p := &Parser{
		reg:      reg,
		useCache: true,
		cache:    make(map[string]Expression),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var (
	defaultOnce   sync.Once
	defaultParser *Parser
)

// Default returns a cached parser over units.Default().
func Default() *Parser {
	defaultOnce.Do(func() {
		defaultParser = NewParser(units.Default())
	})
	return defaultParser
}

// Registry returns the registry the parser resolves symbols against.
func (p *Parser) Registry() *units.Registry {
	return p.reg
}

// Parse parses text. The empty expression is dimensionless with scale 1.
// Malformed input fails with UNIT_SYNTAX, unresolvable symbols with
// UNKNOWN_UNIT.
func (p *Parser) Parse(text string) (Expression, error) {
	if !p.useCache {
		return p.parse(text)
	}

	gen := p.reg.Generation()
	p.mu.RLock()
	expr, ok := p.cache[text]
	fresh := p.cacheGen == gen
	p.mu.RUnlock()
	if ok && fresh {
		return expr, nil
	}

	expr, err := p.parse(text)
	if err != nil {
		return Expression{}, err
	}

	p.mu.Lock()
	if p.cacheGen != gen {
		// The registry grew; earlier results may now resolve differently.
		p.cache = make(map[string]Expression)
		p.cacheGen = gen
	}
	p.cache[text] = expr
	p.mu.Unlock()

	log := logging.GetLogger("unitexpr")
	log.Trace().
		Str("expression", text).
		Str("dimension", expr.Dimension.String()).
		Float64("scale", expr.Scale).
		Msg("Parsed unit expression")
	return expr, nil
}

// MustParse is like Parse but panics on error.
func (p *Parser) MustParse(text string) Expression {
	expr, err := p.Parse(text)
	if err != nil {
		panic(err)
	}
	return expr
}

func (p *Parser) parse(text string) (Expression, error) {
	expr := Expression{
		Text:      strings.TrimSpace(text),
		Dimension: dimension.Dimensionless,
		Scale:     1,
	}

	lx := &lexer{src: text}
	sign := dimension.Int(1)
	expectTerm := true
	sawOperator := false

	for {
		tok, err := lx.next()
		if err != nil {
			return Expression{}, err
		}

		switch tok.kind {
		case tokEOF:
			if sawOperator && expectTerm {
				return Expression{}, syntaxError(text, tok.pos, "expression ends with an operator")
			}
			expr.Offset = affineOffset(expr.Factors)
			return expr, nil

		case tokMul, tokDiv:
			if expectTerm {
				if len(expr.Factors) == 0 {
					return Expression{}, syntaxError(text, tok.pos, "expression starts with "+tok.kind.String())
				}
				return Expression{}, syntaxError(text, tok.pos, "repeated operator "+tok.kind.String())
			}
			sign = dimension.Int(1)
			if tok.kind == tokDiv {
				sign = dimension.Int(-1)
			}
			expectTerm = true
			sawOperator = true

		case tokSymbol, tokNumber:
			if !expectTerm && !tok.spaceBefore {
				return Expression{}, syntaxError(text, tok.pos, "missing operator before "+quote(tok.text))
			}

			factor, err := p.factor(text, tok)
			if err != nil {
				return Expression{}, err
			}

			exp, err := p.optionalExponent(text, lx)
			if err != nil {
				return Expression{}, err
			}
			factor.Exponent = exp.Mul(sign)

			expr.Factors = append(expr.Factors, factor)
			dim, err := factor.Match.Unit.Dimension.TryPow(factor.Exponent)
			if err == nil {
				dim, err = expr.Dimension.TryMul(dim)
			}
			if err != nil {
				return Expression{}, syntaxError(text, tok.pos, "exponent of "+quote(tok.text)+" is out of range")
			}
			expr.Dimension = dim
			expr.Scale *= math.Pow(factor.Match.Scale, factor.Exponent.Float64())

			sign = dimension.Int(1)
			expectTerm = false

		case tokCaret:
			return Expression{}, syntaxError(text, tok.pos, "'^' must follow a unit")

		default:
			return Expression{}, syntaxError(text, tok.pos, "unexpected "+tok.kind.String())
		}
	}
}

func (p *Parser) factor(text string, tok token) (Factor, error) {
	if tok.kind == tokNumber {
		if tok.text != "1" {
			return Factor{}, syntaxError(text, tok.pos, "numeric factor "+quote(tok.text)+" (only 1 is allowed)")
		}
		return Factor{
			Symbol: "1",
			Match:  units.Match{Symbol: "1", Unit: units.Unit{Symbol: "1", Scale: 1}, Scale: 1},
		}, nil
	}

	match, err := p.reg.Lookup(tok.text)
	if err != nil {
		return Factor{}, errors.Newf(errors.ErrUnknownUnit, "unknown unit %q in %q", tok.text, text).
			WithDetail("symbol", tok.text).
			WithDetail("expression", text)
	}
	return Factor{Symbol: tok.text, Match: match}, nil
}

// optionalExponent consumes "^ exponent" when the next token is a caret.
func (p *Parser) optionalExponent(text string, lx *lexer) (dimension.Exponent, error) {
	save := *lx
	tok, err := lx.next()
	if err != nil || tok.kind != tokCaret {
		*lx = save
		return dimension.Int(1), nil
	}

	tok, err = lx.next()
	if err != nil {
		return dimension.Exponent{}, err
	}
	if tok.kind != tokExponent {
		return dimension.Exponent{}, syntaxError(text, tok.pos, "missing exponent after '^'")
	}

	exp, err := dimension.ParseExponent(tok.text)
	if err != nil {
		return dimension.Exponent{}, syntaxError(text, tok.pos, "malformed exponent "+quote(tok.text))
	}
	return exp, nil
}

// affineOffset returns the offset of a lone affine unit with exponent 1.
// Any other shape treats affine units as intervals.
func affineOffset(factors []Factor) float64 {
	if len(factors) != 1 {
		return 0
	}
	f := factors[0]
	if f.Exponent != dimension.Int(1) || f.Match.HasPrefix() {
		return 0
	}
	return f.Match.Offset
}

func syntaxError(text string, pos int, reason string) error {
	return errors.Newf(errors.ErrUnitSyntax, "invalid unit expression %q at offset %d: %s", text, pos, reason).
		WithDetail("expression", text).
		WithDetail("position", pos)
}
