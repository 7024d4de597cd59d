// SPDX-License-Identifier: MIT

package simplify

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/unitshape/shape"
)

// Result is the outcome of Simplify.
type Result struct {
	// Canonical is the rule-stable shape: no rewrite rule matches it or any
	// of its subtrees.
	Canonical shape.Shape

	// Script rewrites the input shape into Canonical when executed with
	// Apply. It is empty when the input is already canonical.
	Script Script
}

// Rule names used in debug traces.
const (
	ruleQuotientEqual       = "quotient/equal"
	ruleQuotientScalar      = "quotient/scalar"
	ruleQuotientCancelRight = "quotient/cancel-right"
	ruleQuotientCancelLeft  = "quotient/cancel-left"
	ruleQuotientInner       = "quotient/inner"
	ruleProductScalarRight  = "product/scalar-right"
	ruleProductScalarLeft   = "product/scalar-left"
	ruleProductCancelLeft   = "product/cancel-left"
	ruleProductCancelRight  = "product/cancel-right"
	ruleProductAssociate    = "product/associate"
	ruleProductSwapAssoc    = "product/commute-associate"
	ruleProductCommute      = "product/commute"
)

// Simplify computes the canonical shape of s and the script that rewrites
// s into it.
//
// Quotient(a, b) rules, first match wins:
//  1. a == b                         → Scalar              [reduction]
//  2. b == Scalar                    → simplify(a)         [scalar]
//  3. a == Product(x, y), y == b     → simplify(x)         [reduction_left]
//  4. a == Product(x, y), x == b     → simplify(y)         [reduction_right]
//  5. otherwise simplify a and b independently ([inner_left], [inner_right]);
//     if either side changed, the new quotient is checked again.
//
// Product(l, r) simplifies both operands first, then inspects (L, R):
//  1. R == Scalar                            → L     [scalar]
//  2. L == Scalar                            → R     [commutative, scalar]
//  3. L == Quotient(x, y), y == R            → x     [reduction]
//  4. R == Quotient(x, y), y == L            → x     [commutative, reduction]
//  5. L == Product(a, b), R == Quotient(c, d), b == d
//     → a·(b·R), re-simplified                       [associative]
//  6. L == Product(a, b), R == Quotient(c, d), a == d
//     → b·(a·R), re-simplified                       [inner_left(commutative), associative]
//  7. L == Quotient(a, b), R == Product(c, d), b ∈ {c, d}
//     → R·L, re-simplified                           [commutative]
//  8. otherwise L·R is stable.
//
// Complexity: every rule either removes nodes or regroups a product so that
// the next rule removes nodes, so the number of rewrites is O(Size(s)) and
// each rewrite costs O(Size(s)) for equality checks and re-simplification.
//
// Simplify is total and pure; it never fails.
func Simplify(s shape.Shape, opts ...Option) Result {
	o := gatherOptions(opts...)

	return simplifyWith(o, s)
}

// Canonical returns Simplify(s).Canonical.
func Canonical(s shape.Shape) shape.Shape {
	return Simplify(s).Canonical
}

// Equivalent reports whether the rules can prove a and b equal: their
// canonical shapes match, or a/b simplifies to Scalar. Shapes that differ
// only by an ordering the rules never touch (m·s vs s·m) are not proven
// equivalent.
func Equivalent(a, b shape.Shape) bool {
	if Canonical(a).Equal(Canonical(b)) {
		return true
	}

	return Canonical(shape.Quotient(a, b)).IsScalar()
}

func simplifyWith(o options, s shape.Shape) Result {
	rw := rewriter{log: o.logger}
	canonical, script := rw.simplify(s)

	return Result{Canonical: canonical, Script: script}
}

// rewriter carries per-call state. It holds no mutable data, so a value can
// be reused, but Simplify builds a fresh one per call.
type rewriter struct {
	log *zap.Logger
}

func (rw rewriter) simplify(s shape.Shape) (shape.Shape, Script) {
	switch s.Kind() {
	case shape.KindQuotient:
		return rw.quotient(s)
	case shape.KindProduct:
		return rw.product(s)
	default:
		return s, nil
	}
}

func (rw rewriter) quotient(s shape.Shape) (shape.Shape, Script) {
	a, b, _ := s.AsQuotient()

	if a.Equal(b) {
		rw.trace(ruleQuotientEqual, s, shape.Scalar())
		return shape.Scalar(), Script{step(Reduction)}
	}
	if b.IsScalar() {
		return rw.continueWith(ruleQuotientScalar, s, a, nil, step(Scalar))
	}
	if x, y, ok := a.AsProduct(); ok {
		if y.Equal(b) {
			return rw.continueWith(ruleQuotientCancelRight, s, x, nil, step(ReductionLeft))
		}
		if x.Equal(b) {
			return rw.continueWith(ruleQuotientCancelLeft, s, y, nil, step(ReductionRight))
		}
	}

	na, sa := rw.simplify(a)
	nb, sb := rw.simplify(b)
	prefix := innerScripts(sa, sb)
	if len(prefix) == 0 {
		return s, nil
	}

	return rw.continueWith(ruleQuotientInner, s, shape.Quotient(na, nb), prefix)
}

func (rw rewriter) product(s shape.Shape) (shape.Shape, Script) {
	left, right, _ := s.AsProduct()
	l, sl := rw.simplify(left)
	r, sr := rw.simplify(right)
	prefix := innerScripts(sl, sr)
	cur := shape.Product(l, r)

	switch {
	case r.IsScalar():
		return rw.continueWith(ruleProductScalarRight, cur, l, prefix, step(Scalar))
	case l.IsScalar():
		return rw.continueWith(ruleProductScalarLeft, cur, r, prefix, step(Commutative), step(Scalar))
	}

	if x, y, ok := l.AsQuotient(); ok && y.Equal(r) {
		return rw.continueWith(ruleProductCancelLeft, cur, x, prefix, step(Reduction))
	}
	if x, y, ok := r.AsQuotient(); ok && y.Equal(l) {
		return rw.continueWith(ruleProductCancelRight, cur, x, prefix, step(Commutative), step(Reduction))
	}

	if a, b, ok := l.AsProduct(); ok {
		if _, d, ok := r.AsQuotient(); ok {
			if b.Equal(d) {
				next := shape.Product(a, shape.Product(b, r))
				return rw.continueWith(ruleProductAssociate, cur, next, prefix, step(Associative))
			}
			if a.Equal(d) {
				next := shape.Product(b, shape.Product(a, r))
				return rw.continueWith(ruleProductSwapAssoc, cur, next, prefix,
					inner(InnerLeft, Script{step(Commutative)}), step(Associative))
			}
		}
	}

	if _, b, ok := l.AsQuotient(); ok {
		if c, d, ok := r.AsProduct(); ok && (b.Equal(c) || b.Equal(d)) {
			return rw.continueWith(ruleProductCommute, cur, shape.Product(r, l), prefix, step(Commutative))
		}
	}

	return cur, prefix
}

// continueWith emits prefix followed by ops, then keeps simplifying next.
func (rw rewriter) continueWith(rule string, from, next shape.Shape, prefix Script, ops ...Op) (shape.Shape, Script) {
	canonical, rest := rw.simplify(next)
	rw.trace(rule, from, canonical)

	out := make(Script, 0, len(prefix)+len(ops)+len(rest))
	out = append(out, prefix...)
	out = append(out, ops...)

	return canonical, append(out, rest...)
}

func (rw rewriter) trace(rule string, from, to shape.Shape) {
	if ce := rw.log.Check(zap.DebugLevel, "rewrite"); ce != nil {
		ce.Write(
			zap.String("rule", rule),
			zap.Stringer("from", from),
			zap.Stringer("to", to),
		)
	}
}

// innerScripts wraps non-empty operand scripts as inner_left/inner_right.
func innerScripts(left, right Script) Script {
	var out Script
	if len(left) > 0 {
		out = append(out, inner(InnerLeft, left))
	}
	if len(right) > 0 {
		out = append(out, inner(InnerRight, right))
	}

	return out
}
