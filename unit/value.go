// SPDX-License-Identifier: MIT

package unit

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/unitshape/shape"
	"github.com/katalvlaran/unitshape/simplify"
)

// Number is the set of numeric payload types a Value can carry.
type Number interface {
	constraints.Integer | constraints.Float
}

// Value is a number tagged with a unit shape. Values are immutable and are
// passed by copy.
type Value[V Number] struct {
	value V
	shape shape.Shape
}

// New returns v measured in the atomic unit name.
// Panics if name is empty (see shape.Atomic).
func New[V Number](v V, name string) Value[V] {
	return Value[V]{value: v, shape: shape.Atomic(name)}
}

// Dimensionless returns v with the Scalar shape.
func Dimensionless[V Number](v V) Value[V] {
	return Value[V]{value: v}
}

// Of returns v tagged with an arbitrary shape.
func Of[V Number](v V, s shape.Shape) Value[V] {
	return Value[V]{value: v, shape: s}
}

// Value returns the numeric payload.
func (x Value[V]) Value() V { return x.value }

// Shape returns the unit shape.
func (x Value[V]) Shape() shape.Shape { return x.shape }

// Name returns the unit name when the shape is atomic, "" otherwise.
func (x Value[V]) Name() string { return x.shape.Name() }

// Equal reports equal payloads and structurally equal shapes.
func (x Value[V]) Equal(y Value[V]) bool {
	return x.value == y.value && x.shape.Equal(y.shape)
}

// Add returns x+y. Both operands must have structurally equal shapes;
// convertible units are combined through convert.Add instead.
func (x Value[V]) Add(y Value[V]) (Value[V], error) {
	if !x.shape.Equal(y.shape) {
		return Value[V]{}, fmt.Errorf("add %s and %s: %w", x.shape, y.shape, ErrShapeMismatch)
	}

	return Value[V]{value: x.value + y.value, shape: x.shape}, nil
}

// Sub returns x-y under the same shape rule as Add.
func (x Value[V]) Sub(y Value[V]) (Value[V], error) {
	if !x.shape.Equal(y.shape) {
		return Value[V]{}, fmt.Errorf("sub %s and %s: %w", x.shape, y.shape, ErrShapeMismatch)
	}

	return Value[V]{value: x.value - y.value, shape: x.shape}, nil
}

// Mul returns x·y with shape Product(x, y).
func (x Value[V]) Mul(y Value[V]) Value[V] {
	return Value[V]{value: x.value * y.value, shape: shape.Product(x.shape, y.shape)}
}

// Div returns x/y with shape Quotient(x, y). Integer division by zero
// panics as it does for the bare type.
func (x Value[V]) Div(y Value[V]) Value[V] {
	return Value[V]{value: x.value / y.value, shape: shape.Quotient(x.shape, y.shape)}
}

// String renders the payload followed by the display form of the shape:
// "10m", "3m/s", "2.5".
func (x Value[V]) String() string {
	return fmt.Sprintf("%v%s", x.value, shape.Render(x.shape))
}

// Execute re-tags x with the shape produced by running script against its
// shape. The payload is returned bit-identical: every operation only
// relabels an already computed number.
func (x Value[V]) Execute(script simplify.Script) (Value[V], error) {
	s, err := simplify.Apply(x.shape, script)
	if err != nil {
		return Value[V]{}, fmt.Errorf("%w: %w", ErrScriptMismatch, err)
	}

	return Value[V]{value: x.value, shape: s}, nil
}

// Simplify returns x under its canonical shape together with the script
// that got it there.
func (x Value[V]) Simplify(opts ...simplify.Option) (Value[V], simplify.Script) {
	res := simplify.Simplify(x.shape, opts...)

	return Value[V]{value: x.value, shape: res.Canonical}, res.Script
}

// RequestShape simplifies x and returns it under target when target is the
// canonical shape. Any other target is unreachable by the rules and yields
// ErrUnreachableShape.
func (x Value[V]) RequestShape(target shape.Shape, opts ...simplify.Option) (Value[V], error) {
	res := simplify.Simplify(x.shape, opts...)
	if !res.Canonical.Equal(target) {
		return Value[V]{}, fmt.Errorf("%s simplifies to %s, not %s: %w",
			x.shape, res.Canonical, target, ErrUnreachableShape)
	}

	return x.Execute(res.Script)
}

// MustRequestShape is RequestShape for callers that treat an unreachable
// target as a programming error. It panics with the RequestShape error.
func (x Value[V]) MustRequestShape(target shape.Shape, opts ...simplify.Option) Value[V] {
	out, err := x.RequestShape(target, opts...)
	if err != nil {
		panic(err)
	}

	return out
}
