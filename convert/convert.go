// SPDX-License-Identifier: MIT

package convert

import (
	"fmt"

	"github.com/katalvlaran/unitshape/shape"
	"github.com/katalvlaran/unitshape/unit"
)

// To converts v into the target shape using only direct declarations of t.
//
// Atomic shapes convert through the declared rate (equal names need none).
// Compound shapes convert factor by factor when both trees have the same
// structure: product factors multiply, quotient denominators divide.
// km/h → m/s therefore needs km→m and h→s declared.
//
// Errors: ErrNoConversion when a factor pair is undeclared or the two trees
// differ in structure.
func To[V unit.Number](t *Table, v unit.Value[V], target shape.Shape) (unit.Value[V], error) {
	f, err := t.between(v.Shape(), target, identity, 1)
	if err != nil {
		return unit.Value[V]{}, fmt.Errorf("%s to %s: %w", v.Shape(), target, err)
	}

	return unit.Of(apply(v.Value(), f), target), nil
}

// ToUnit converts v into the atomic unit name.
func ToUnit[V unit.Number](t *Table, v unit.Value[V], name string) (unit.Value[V], error) {
	if name == "" {
		return unit.Value[V]{}, ErrEmptyUnit
	}

	return To(t, v, shape.Atomic(name))
}

// Add converts b into a's shape when needed and returns a+b in a's shape.
func Add[V unit.Number](t *Table, a, b unit.Value[V]) (unit.Value[V], error) {
	b, err := align(t, a, b)
	if err != nil {
		return unit.Value[V]{}, err
	}

	return a.Add(b)
}

// Sub converts b into a's shape when needed and returns a-b in a's shape.
func Sub[V unit.Number](t *Table, a, b unit.Value[V]) (unit.Value[V], error) {
	b, err := align(t, a, b)
	if err != nil {
		return unit.Value[V]{}, err
	}

	return a.Sub(b)
}

func align[V unit.Number](t *Table, a, b unit.Value[V]) (unit.Value[V], error) {
	if a.Shape().Equal(b.Shape()) {
		return b, nil
	}

	return To(t, b, a.Shape())
}

// between accumulates the factor taking src to dst, raised to sign.
func (t *Table) between(src, dst shape.Shape, acc factor, sign int) (factor, error) {
	if src.Kind() != dst.Kind() {
		return factor{}, fmt.Errorf("%s vs %s: %w", src.Kind(), dst.Kind(), ErrNoConversion)
	}
	switch src.Kind() {
	case shape.KindScalar:
		return acc, nil
	case shape.KindAtomic:
		if src.Name() == dst.Name() {
			return acc, nil
		}
		r, ok := t.Rate(src.Name(), dst.Name())
		if !ok {
			return factor{}, fmt.Errorf("%s->%s: %w", src.Name(), dst.Name(), ErrNoConversion)
		}

		return acc.times(r.factor(), sign), nil
	}

	// Product and Quotient: the right operand of a quotient divides.
	rightSign := sign
	if src.Kind() == shape.KindQuotient {
		rightSign = -sign
	}
	acc, err := t.between(src.Left(), dst.Left(), acc, sign)
	if err != nil {
		return factor{}, err
	}

	return t.between(src.Right(), dst.Right(), acc, rightSign)
}
