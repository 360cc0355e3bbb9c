package scicalc

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Expression = Term { ( '+' | '-' ) Term }
// Term       = Factor { ( '*' | '/' | '%' ) Factor }
// Factor     = ( '+' Factor | '-' Factor | Base ) [ '^' Factor ]
// Base       = '(' Expression ')' | number | name '(' Expression ')'
// number     = digits [ '.' [ digits ] ] | '.' digits
// name       = lower { lower | digit }

// eof is the current rune once the parser has passed the end of its input.
const eof rune = -1

// parser evaluates an expression directly from its text. It reads one rune of
// lookahead and never moves backward.
type parser struct {
	src  []rune
	pos  int
	ch   rune
	mode AngleMode
}

func newParser(src string, mode AngleMode) *parser {
	p := &parser{src: []rune(src), pos: -1, mode: mode}
	p.next()
	return p
}

// next advances to the next rune.
func (p *parser) next() {
	p.pos++
	if p.pos < len(p.src) {
		p.ch = p.src[p.pos]
	} else {
		p.ch = eof
	}
}

// col is the 1-based position of the current rune.
func (p *parser) col() int {
	return p.pos + 1
}

// eat skips whitespace, then consumes the current rune if it is r.
func (p *parser) eat(r rune) bool {
	for p.ch != eof && unicode.IsSpace(p.ch) {
		p.next()
	}
	if p.ch == r {
		p.next()
		return true
	}
	return false
}

func (p *parser) unexpected() error {
	return &Error{Kind: UnexpectedCharacter, Col: p.col(), Char: p.ch}
}

func (p *parser) parseExpression() (float64, error) {
	x, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case p.eat('+'):
			y, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			x += y
		case p.eat('-'):
			y, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			x -= y
		default:
			return x, nil
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	x, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case p.eat('*'):
			y, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			x *= y
		case p.eat('/'):
			col := p.col() - 1
			y, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			if y == 0 {
				return 0, &Error{Kind: DivisionByZero, Col: col, X: x}
			}
			x /= y
		case p.eat('%'):
			col := p.col() - 1
			y, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			if y == 0 {
				return 0, &Error{Kind: ModuloByZero, Col: col, X: x}
			}
			x = math.Mod(x, y)
		default:
			return x, nil
		}
	}
}

func (p *parser) parseFactor() (float64, error) {
	// Unary operators bind tighter than the operators of Term and Expression
	// but looser than '^', so -2^2 is -(2^2).
	if p.eat('+') {
		return p.parseFactor()
	}
	if p.eat('-') {
		x, err := p.parseFactor()
		return -x, err
	}
	var x float64
	switch {
	case p.eat('('):
		var err error
		x, err = p.parseExpression()
		if err != nil {
			return 0, err
		}
		if !p.eat(')') {
			return 0, &Error{Kind: UnterminatedParenthesis, Col: p.col(), Char: p.ch}
		}
	case '0' <= p.ch && p.ch <= '9', p.ch == '.':
		var err error
		x, err = p.parseNumber()
		if err != nil {
			return 0, err
		}
	case 'a' <= p.ch && p.ch <= 'z':
		var err error
		x, err = p.parseCall()
		if err != nil {
			return 0, err
		}
	default:
		return 0, p.unexpected()
	}
	if p.eat('^') {
		// The exponent is a whole Factor, which makes '^' right-associative.
		y, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		x = math.Pow(x, y)
	}
	return x, nil
}

// parseNumber scans digits with at most one decimal point.
func (p *parser) parseNumber() (float64, error) {
	start, col := p.pos, p.col()
	dot := false
	for '0' <= p.ch && p.ch <= '9' || p.ch == '.' && !dot {
		if p.ch == '.' {
			dot = true
		}
		p.next()
	}
	x, err := strconv.ParseFloat(string(p.src[start:p.pos]), 64)
	switch {
	case err == nil:
		return x, nil
	case errors.Is(err, strconv.ErrRange):
		// Literals too large for a float64 are infinite. Whether that makes
		// the result non-finite is decided once evaluation finishes.
		return x, nil
	default:
		// A lone decimal point.
		return 0, &Error{Kind: UnexpectedCharacter, Col: col, Char: p.src[start]}
	}
}

// parseCall scans a function name and its parenthesized argument and applies
// the function.
func (p *parser) parseCall() (float64, error) {
	start, col := p.pos, p.col()
	for 'a' <= p.ch && p.ch <= 'z' || '0' <= p.ch && p.ch <= '9' {
		p.next()
	}
	name := string(p.src[start:p.pos])
	f, ok := LookupFunc(name)
	if !ok {
		return 0, &Error{Kind: UnknownFunction, Col: col, Func: name}
	}
	if !p.eat('(') {
		return 0, &Error{Kind: MissingArgumentParenthesis, Col: p.col(), Char: p.ch, Func: name}
	}
	x, err := p.parseExpression()
	if err != nil {
		return 0, err
	}
	if !p.eat(')') {
		return 0, &Error{Kind: UnterminatedParenthesis, Col: p.col(), Char: p.ch, Func: name}
	}
	r, err := f.Apply(x, p.mode)
	if err != nil {
		var e *Error
		if errors.As(err, &e) && e.Col == 0 {
			e.Col = col
		}
		return 0, err
	}
	return r, nil
}

// parse evaluates the entire input.
func (p *parser) parse() (float64, error) {
	x, err := p.parseExpression()
	if err != nil {
		return 0, err
	}
	if p.ch != eof {
		return 0, p.unexpected()
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, &Error{Kind: NonFinite, X: x}
	}
	return x, nil
}

// EvalString normalizes and evaluates an expression. Errors resulting from the
// expression are always of type *Error, with positions in the normalized text.
func EvalString(src string, mode AngleMode) (float64, error) {
	return newParser(Normalize(src), mode).parse()
}

// Eval reads an expression up to the end of src, then evaluates it as by
// EvalString.
func Eval(src io.RuneScanner, mode AngleMode) (float64, error) {
	var b strings.Builder
	for {
		r, _, err := src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, err
		}
		b.WriteRune(r)
	}
	return EvalString(b.String(), mode)
}
