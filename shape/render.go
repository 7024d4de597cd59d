// SPDX-License-Identifier: MIT

package shape

import "strings"

// scalarText is the String form of the dimensionless shape.
const scalarText = "1"

// Render returns the display form of s, the unit suffix printed after a
// number:
//   - Scalar renders as "".
//   - Atomic renders as its name.
//   - Product concatenates its operands ("ms" for m·s).
//   - Quotient joins its operands with "/" ("m/s").
//
// The display form is lossy ("m/ss" is both (m/s)·s and m/(s·s)) and is
// never parsed; use String for a round-trippable form.
func Render(s Shape) string {
	var b strings.Builder
	render(&b, s)

	return b.String()
}

// Render is the method form of the package-level Render.
func (s Shape) Render() string { return Render(s) }

func render(b *strings.Builder, s Shape) {
	switch s.kind {
	case KindAtomic:
		b.WriteString(s.name)
	case KindProduct:
		render(b, *s.left)
		render(b, *s.right)
	case KindQuotient:
		render(b, *s.left)
		b.WriteByte('/')
		render(b, *s.right)
	}
}

// String returns the unambiguous text form of s. Compound operands are
// parenthesized, Scalar prints as "1", and Parse(s.String()) equals s.
//
//	Product(Quotient(m, s), s)  →  (m/s)*s
//	Quotient(m, Product(s, s))  →  m/(s*s)
func (s Shape) String() string {
	var b strings.Builder
	writeText(&b, s)

	return b.String()
}

func writeText(b *strings.Builder, s Shape) {
	switch s.kind {
	case KindScalar:
		b.WriteString(scalarText)
	case KindAtomic:
		b.WriteString(s.name)
	case KindProduct:
		writeOperand(b, *s.left)
		b.WriteByte('*')
		writeOperand(b, *s.right)
	case KindQuotient:
		writeOperand(b, *s.left)
		b.WriteByte('/')
		writeOperand(b, *s.right)
	}
}

func writeOperand(b *strings.Builder, s Shape) {
	if !s.IsCompound() {
		writeText(b, s)
		return
	}
	b.WriteByte('(')
	writeText(b, s)
	b.WriteByte(')')
}
