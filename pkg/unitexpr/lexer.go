package unitexpr

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arthur-debert/physq/pkg/units"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokSymbol
	tokNumber
	tokMul
	tokDiv
	tokCaret
	tokExponent
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of expression"
	case tokSymbol:
		return "unit symbol"
	case tokNumber:
		return "number"
	case tokMul:
		return "'*'"
	case tokDiv:
		return "'/'"
	case tokCaret:
		return "'^'"
	default:
		return "exponent"
	}
}

type token struct {
	kind tokenKind
	text string
	pos  int
	// spaceBefore is set when whitespace separates this token from the previous one.
	spaceBefore bool
}

// lexer produces tokens on demand. After a caret it reads an exponent
// instead of a symbol or number.
type lexer struct {
	src        string
	pos        int
	afterCaret bool
}

func (l *lexer) next() (token, error) {
	start := l.pos
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		l.pos += size
	}
	spaced := l.pos > start

	if l.pos >= len(l.src) {
		return token{kind: tokEOF, pos: l.pos, spaceBefore: spaced}, nil
	}

	if l.afterCaret {
		l.afterCaret = false
		return l.exponent(spaced)
	}

	pos := l.pos
	r, size := utf8.DecodeRuneInString(l.src[pos:])
	switch {
	case r == '*' || r == '·':
		l.pos += size
		return token{kind: tokMul, text: string(r), pos: pos, spaceBefore: spaced}, nil
	case r == '/':
		l.pos += size
		return token{kind: tokDiv, text: "/", pos: pos, spaceBefore: spaced}, nil
	case r == '^':
		l.pos += size
		l.afterCaret = true
		return token{kind: tokCaret, text: "^", pos: pos, spaceBefore: spaced}, nil
	case r >= '0' && r <= '9':
		end := pos
		for end < len(l.src) && l.src[end] >= '0' && l.src[end] <= '9' {
			end++
		}
		l.pos = end
		return token{kind: tokNumber, text: l.src[pos:end], pos: pos, spaceBefore: spaced}, nil
	case units.IsSymbolRune(r):
		end := pos
		for end < len(l.src) {
			r, size := utf8.DecodeRuneInString(l.src[end:])
			if !units.IsSymbolRune(r) {
				break
			}
			end += size
		}
		l.pos = end
		return token{kind: tokSymbol, text: l.src[pos:end], pos: pos, spaceBefore: spaced}, nil
	default:
		return token{}, syntaxError(l.src, pos, "unexpected character "+quote(string(r)))
	}
}

func (l *lexer) exponent(spaced bool) (token, error) {
	pos := l.pos
	rest := l.src[pos:]

	if strings.HasPrefix(rest, "(") {
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			return token{}, syntaxError(l.src, pos, "unclosed '(' in exponent")
		}
		l.pos += end + 1
		return token{kind: tokExponent, text: rest[:end+1], pos: pos, spaceBefore: spaced}, nil
	}

	i := 0
	if i < len(rest) && (rest[i] == '+' || rest[i] == '-') {
		i++
	}
	digits := i
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	if i == digits {
		return token{}, syntaxError(l.src, pos, "missing exponent after '^'")
	}
	l.pos += i
	return token{kind: tokExponent, text: rest[:i], pos: pos, spaceBefore: spaced}, nil
}

func quote(s string) string {
	return "'" + s + "'"
}
