// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Parse reads the text form produced by Shape.String.
//
// Grammar (whitespace is ignored between tokens):
//
//	expr = term { ("*" | "/") term }      left-associative
//	term = ident | "1" | "(" expr ")"
//	ident = (letter | "_" | "°") { letter | digit | "_" | "°" }
//
// So "m/s*s" parses as (m/s)*s and "m/(s*s)" keeps the grouping.
//
// Errors:
//   - ErrSyntax wrapped with the byte offset of the offending token.
func Parse(text string) (Shape, error) {
	p := &parser{src: text}
	s, err := p.expr()
	if err != nil {
		return Shape{}, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return Shape{}, p.errorf("unexpected %q", p.peek())
	}

	return s, nil
}

// MustParse is like Parse but panics on error. Intended for fixtures,
// examples and package-level declarations.
func MustParse(text string) Shape {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return s
}

type parser struct {
	src string
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		r, w := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += w
	}
}

// peek returns the next rune without consuming it, or utf8.RuneError at
// end of input.
func (p *parser) peek() rune {
	if p.pos >= len(p.src) {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(p.src[p.pos:])

	return r
}

func (p *parser) expr() (Shape, error) {
	left, err := p.term()
	if err != nil {
		return Shape{}, err
	}
	for {
		p.skipSpace()
		op := p.peek()
		if op != '*' && op != '/' {
			return left, nil
		}
		p.pos++
		right, err := p.term()
		if err != nil {
			return Shape{}, err
		}
		if op == '*' {
			left = Product(left, right)
		} else {
			left = Quotient(left, right)
		}
	}
}

func (p *parser) term() (Shape, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return Shape{}, p.errorf("unexpected end of input")
	}
	r := p.peek()
	switch {
	case r == '(':
		p.pos++
		inner, err := p.expr()
		if err != nil {
			return Shape{}, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return Shape{}, p.errorf("missing ')'")
		}
		p.pos++

		return inner, nil
	case r == '1':
		p.pos++
		if p.pos < len(p.src) && isIdentRune(p.peek()) {
			return Shape{}, p.errorf("identifier cannot start with a digit")
		}

		return Scalar(), nil
	case isIdentStart(r):
		start := p.pos
		for p.pos < len(p.src) {
			c, w := utf8.DecodeRuneInString(p.src[p.pos:])
			if !isIdentRune(c) {
				break
			}
			p.pos += w
		}

		return Atomic(p.src[start:p.pos]), nil
	default:
		return Shape{}, p.errorf("unexpected %q", r)
	}
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '°'
}

func isIdentRune(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}
