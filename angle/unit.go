// SPDX-License-Identifier: MIT

package angle

import (
	"fmt"
	"math"
)

// Unit is an angular unit: a name and its modulus M, half a turn.
// Normalized angles lie in [-M, M).
type Unit struct {
	name    string
	modulus float64
}

// Built-in units.
var (
	Degree = Unit{name: "deg", modulus: 180}
	Radian = Unit{name: "rad", modulus: math.Pi}
)

// NewUnit declares an angular unit whose half turn is modulus.
//
// Errors: ErrInvalidUnit for an empty name, ErrInvalidModulus for a
// modulus that is zero, negative, NaN or infinite.
func NewUnit(name string, modulus float64) (Unit, error) {
	if name == "" {
		return Unit{}, ErrInvalidUnit
	}
	if !(modulus > 0) || math.IsInf(modulus, 1) {
		return Unit{}, fmt.Errorf("%s modulus %v: %w", name, modulus, ErrInvalidModulus)
	}

	return Unit{name: name, modulus: modulus}, nil
}

// Name returns the unit name, also used as the atomic shape name.
func (u Unit) Name() string { return u.name }

// Modulus returns M.
func (u Unit) Modulus() float64 { return u.modulus }

func (u Unit) String() string { return u.name }
