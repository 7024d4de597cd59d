// SPDX-License-Identifier: MIT

package simplify

import (
	"fmt"

	"github.com/katalvlaran/unitshape/shape"
)

// Apply executes script against s and returns the rewritten shape.
//
// Each step is a pure relabelling; no numeric work happens here. For any
// shape x, Apply(x, Simplify(x).Script) returns Simplify(x).Canonical.
//
// Errors:
//   - ErrOpMismatch if a step does not match the shape it is applied to.
//   - ErrUnknownOp  if a step carries an undefined OpKind.
func Apply(s shape.Shape, script Script) (shape.Shape, error) {
	cur := s
	for _, o := range script {
		next, err := o.Apply(cur)
		if err != nil {
			return shape.Shape{}, err
		}
		cur = next
	}

	return cur, nil
}

// Apply executes a single step against s.
func (o Op) Apply(s shape.Shape) (shape.Shape, error) {
	switch o.Kind {
	case Commutative:
		if l, r, ok := s.AsProduct(); ok {
			return shape.Product(r, l), nil
		}

	case Associative:
		if l, c, ok := s.AsProduct(); ok {
			if a, b, ok := l.AsProduct(); ok {
				return shape.Product(a, shape.Product(b, c)), nil
			}
		}

	case Reduction:
		if n, d, ok := s.AsQuotient(); ok && n.Equal(d) {
			return shape.Scalar(), nil
		}
		if l, r, ok := s.AsProduct(); ok {
			if x, y, ok := l.AsQuotient(); ok && y.Equal(r) {
				return x, nil
			}
		}

	case ReductionLeft:
		if n, d, ok := s.AsQuotient(); ok {
			if x, y, ok := n.AsProduct(); ok && y.Equal(d) {
				return x, nil
			}
		}

	case ReductionRight:
		if n, d, ok := s.AsQuotient(); ok {
			if x, y, ok := n.AsProduct(); ok && x.Equal(d) {
				return y, nil
			}
		}

	case Scalar:
		if n, d, ok := s.AsQuotient(); ok && d.IsScalar() {
			return n, nil
		}
		if l, r, ok := s.AsProduct(); ok && r.IsScalar() {
			return l, nil
		}

	case InnerLeft, InnerRight:
		if s.IsCompound() {
			return o.applyInner(s)
		}

	default:
		return shape.Shape{}, fmt.Errorf("op %d: %w", int(o.Kind), ErrUnknownOp)
	}

	return shape.Shape{}, mismatchf(o, s)
}

// applyInner runs o.Sub on one operand of a compound shape and rebuilds it
// with the same kind.
func (o Op) applyInner(s shape.Shape) (shape.Shape, error) {
	l, r := s.Left(), s.Right()
	var err error
	if o.Kind == InnerLeft {
		l, err = Apply(l, o.Sub)
	} else {
		r, err = Apply(r, o.Sub)
	}
	if err != nil {
		return shape.Shape{}, fmt.Errorf("%s: %w", o.Kind, err)
	}
	if s.Kind() == shape.KindProduct {
		return shape.Product(l, r), nil
	}

	return shape.Quotient(l, r), nil
}
