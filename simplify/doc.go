// SPDX-License-Identifier: MIT

// Package simplify is the term-rewriting engine over unit shapes.
//
// 🚀 What does it do?
//
//	Multiplying or dividing two measurements produces a compound shape
//	such as (m/s)*s. Simplify proves that shape equal to a smaller one (m)
//	and returns the exact sequence of rewrite steps, the Script, that
//	turns the input into the canonical form.
//
//	  res := simplify.Simplify(shape.MustParse("(m/s)*s"))
//	  res.Canonical  // m
//	  res.Script     // [reduction]
//
// ✨ Operations:
//
//	commutative        a·b       → b·a
//	associative        (a·b)·c   → a·(b·c)
//	reduction          a/a       → 1,   (x/y)·y → x
//	reduction_left     (x·y)/y   → x
//	reduction_right    (x·y)/x   → y
//	scalar             a/1 → a,  a·1 → a
//	inner_left(sub)    apply sub to the left operand
//	inner_right(sub)   apply sub to the right operand
//
//	Every operation only relabels a shape. The number attached to a value
//	was already computed when the compound value was built, so executing a
//	script (Apply here, unit.Value.Execute for values) never touches it.
//
// ⚙️ Guarantees:
//   - Total: Simplify never fails and always terminates.
//   - Idempotent: Simplify(Simplify(s).Canonical) returns the same shape
//     with an empty script.
//   - Executable: Apply(s, Simplify(s).Script) == Simplify(s).Canonical.
//   - Sound: rewrites preserve the net exponent of every atomic unit.
//
// The canonical shape is rule-stable, not globally minimal: a pattern no
// rule covers (for example (a·b)/(b·a)) is left alone.
//
// Options:
//   - WithLogger(l)      trace each fired rule at debug level.
//   - WithConcurrency(n) bound Batch parallelism.
package simplify
