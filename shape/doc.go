// SPDX-License-Identifier: MIT

// Package shape is the term model for unit "shapes": the static description
// of how a measurement's unit is composed.
//
// 🚀 What is a shape?
//
//	A shape is a small binary expression tree with four node kinds:
//	  • Scalar          : the dimensionless identity (renders as "")
//	  • Atomic(name)    : a primitive unit such as "m" or "s"
//	  • Product(l, r)   : ordered pair, l·r
//	  • Quotient(n, d)  : ordered pair, n/d
//
//	Trees are strictly binary; there are no n-ary nodes. Equality is
//	structural and order-sensitive, so Product(m, s) and Product(s, m)
//	are different shapes even though they describe the same unit. The
//	simplify package owns the algebra that relates them.
//
// ✨ Key properties:
//   - Immutable values: a Shape can be copied, compared and shared across
//     goroutines without locking.
//   - The zero Shape is Scalar.
//   - Only the constructors in this package build trees, so a malformed
//     tree (nil operand, unnamed atom) cannot be observed.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/unitshape/shape"
//
//	m, s := shape.Atomic("m"), shape.Atomic("s")
//	speed := shape.Quotient(m, s)           // m/s
//	dist := shape.Product(speed, s)         // (m/s)*s
//
//	fmt.Println(dist)                       // (m/s)*s
//	fmt.Println(shape.Render(dist))         // m/ss
//	back, _ := shape.Parse("(m/s)*s")
//	fmt.Println(back.Equal(dist))           // true
//
// Two textual forms exist. Render is the display form used next to a
// number ("10m", "9.81m/ss"); it is lossy and never parsed. String is the
// unambiguous form accepted by Parse.
package shape
