// SPDX-License-Identifier: MIT

package angle

import (
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/unitshape/unit"
)

// Angle is a floating-point angle in a given Unit. The zero Angle has no
// unit; build angles with New, Degrees or Radians.
type Angle[V constraints.Float] struct {
	value V
	unit  Unit
}

// New returns v in unit u. The value is kept as given; call Normalize to
// bring it into range.
func New[V constraints.Float](v V, u Unit) Angle[V] {
	return Angle[V]{value: v, unit: u}
}

// Degrees returns v degrees.
func Degrees[V constraints.Float](v V) Angle[V] { return New(v, Degree) }

// Radians returns v radians.
func Radians[V constraints.Float](v V) Angle[V] { return New(v, Radian) }

// Value returns the raw number.
func (a Angle[V]) Value() V { return a.value }

// Unit returns the angular unit.
func (a Angle[V]) Unit() Unit { return a.unit }

// Equal reports equal units and equal values.
func (a Angle[V]) Equal(b Angle[V]) bool {
	return a.unit == b.unit && a.value == b.value
}

func (a Angle[V]) String() string {
	return fmt.Sprintf("%v%s", a.value, a.unit.name)
}

// Normalize maps a into [-M, M), M being the unit modulus.
//
// The value is reduced modulo 2M, pulled back by 2M when its magnitude
// still exceeds M, and a result within one machine epsilon of +M (epsilon
// of V, not of float64) snaps to -M so that every class of equivalent
// angles has a single representative.
//
//	Degrees(540.0).Normalize()  // -180deg
//	Degrees(-400.0).Normalize() // -40deg
//
// The zero Angle has no unit and no modulus; it is returned unchanged.
func (a Angle[V]) Normalize() Angle[V] {
	if a.unit.modulus == 0 {
		return a
	}
	m := V(a.unit.modulus)
	turn := 2 * m

	r := V(math.Mod(float64(a.value), float64(turn)))
	switch {
	case r > m:
		r -= turn
	case r < -m:
		r += turn
	}
	if d := r - m; d <= epsilon[V]() && d >= -epsilon[V]() {
		r = -m
	}

	return Angle[V]{value: r, unit: a.unit}
}

// Convert rescales a into unit to by the ratio of the two moduli. The
// zero Angle and the zero Unit carry no modulus, so the value is kept as is.
func (a Angle[V]) Convert(to Unit) Angle[V] {
	if a.unit == to {
		return a
	}
	if a.unit.modulus == 0 || to.modulus == 0 {
		return Angle[V]{value: a.value, unit: to}
	}

	return Angle[V]{value: V(float64(a.value) * to.modulus / a.unit.modulus), unit: to}
}

// Add returns the normalized sum. b is converted into a's unit first.
func (a Angle[V]) Add(b Angle[V]) Angle[V] {
	return Angle[V]{value: a.value + b.Convert(a.unit).value, unit: a.unit}.Normalize()
}

// Sub returns the normalized difference. b is converted into a's unit first.
func (a Angle[V]) Sub(b Angle[V]) Angle[V] {
	return Angle[V]{value: a.value - b.Convert(a.unit).value, unit: a.unit}.Normalize()
}

// Quantity returns a as a shaped value with the unit name as atomic shape,
// so it can take part in unit arithmetic (deg/s and so on). It panics for
// the zero Angle, which has no unit name.
func (a Angle[V]) Quantity() unit.Value[V] {
	return unit.New(a.value, a.unit.name)
}

// FromQuantity reads an angle back from a shaped value whose atomic unit is
// u.
func FromQuantity[V constraints.Float](q unit.Value[V], u Unit) (Angle[V], error) {
	if q.Name() != u.name {
		return Angle[V]{}, fmt.Errorf("%s is not %s: %w", q.Shape(), u.name, ErrUnitMismatch)
	}

	return Angle[V]{value: q.Value(), unit: u}, nil
}

// epsilon returns the machine epsilon of V.
func epsilon[V constraints.Float]() V {
	var zero V
	if unsafe.Sizeof(zero) == 4 {
		return V(math.Nextafter32(1, 2) - 1)
	}

	return V(math.Nextafter(1, 2) - 1)
}
