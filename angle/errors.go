// SPDX-License-Identifier: MIT

package angle

import "errors"

var (
	// ErrInvalidModulus indicates a unit modulus that is not finite and
	// strictly positive.
	ErrInvalidModulus = errors.New("angle: modulus must be finite and > 0")

	// ErrInvalidUnit indicates a unit with an empty name.
	ErrInvalidUnit = errors.New("angle: unit name must be non-empty")

	// ErrUnitMismatch indicates a quantity whose unit is not the requested
	// angle unit.
	ErrUnitMismatch = errors.New("angle: unit mismatch")
)
