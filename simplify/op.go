// SPDX-License-Identifier: MIT

package simplify

import "strings"

// OpKind names a single shape-rewrite step.
type OpKind int

const (
	// Commutative swaps the operands of a Product: a·b → b·a.
	Commutative OpKind = iota + 1
	// Associative regroups a left-nested Product: (a·b)·c → a·(b·c).
	Associative
	// Reduction cancels equal factors: a/a → Scalar, and (x/y)·y → x.
	Reduction
	// ReductionLeft keeps the left factor of a numerator: (x·y)/y → x.
	ReductionLeft
	// ReductionRight keeps the right factor of a numerator: (x·y)/x → y.
	ReductionRight
	// Scalar drops a dimensionless right operand: a/Scalar → a, a·Scalar → a.
	Scalar
	// InnerLeft applies Op.Sub to the left operand (or numerator).
	InnerLeft
	// InnerRight applies Op.Sub to the right operand (or denominator).
	InnerRight
)

var opNames = [...]string{
	Commutative:    "commutative",
	Associative:    "associative",
	Reduction:      "reduction",
	ReductionLeft:  "reduction_left",
	ReductionRight: "reduction_right",
	Scalar:         "scalar",
	InnerLeft:      "inner_left",
	InnerRight:     "inner_right",
}

// String returns the snake_case operation name.
func (k OpKind) String() string {
	if k <= 0 || int(k) >= len(opNames) {
		return "unknown"
	}

	return opNames[k]
}

// Op is one step of a Script. Sub is only meaningful for InnerLeft and
// InnerRight, where it holds the script applied to that operand.
type Op struct {
	Kind OpKind
	Sub  Script
}

// String renders the op, with nested scripts in parentheses:
// "inner_left(commutative, reduction)".
func (o Op) String() string {
	if o.Kind != InnerLeft && o.Kind != InnerRight {
		return o.Kind.String()
	}
	var b strings.Builder
	b.WriteString(o.Kind.String())
	b.WriteByte('(')
	o.Sub.write(&b)
	b.WriteByte(')')

	return b.String()
}

// Script is an ordered sequence of rewrite steps.
type Script []Op

// String renders the script as "[op, op, ...]".
func (sc Script) String() string {
	var b strings.Builder
	b.WriteByte('[')
	sc.write(&b)
	b.WriteByte(']')

	return b.String()
}

func (sc Script) write(b *strings.Builder) {
	for i, o := range sc {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(o.String())
	}
}

// Len returns the number of steps, counting nested steps recursively.
func (sc Script) Len() int {
	n := 0
	for _, o := range sc {
		n++
		n += o.Sub.Len()
	}

	return n
}

// step builds a plain op.
func step(k OpKind) Op { return Op{Kind: k} }

// inner wraps sub into an InnerLeft/InnerRight op.
func inner(k OpKind, sub Script) Op { return Op{Kind: k, Sub: sub} }
