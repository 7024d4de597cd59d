// SPDX-License-Identifier: MIT

package convert

import "errors"

var (
	// ErrInvalidRate indicates a real rate of zero, NaN or infinity.
	ErrInvalidRate = errors.New("convert: invalid conversion rate")

	// ErrEmptyUnit indicates a declaration with an empty unit name.
	ErrEmptyUnit = errors.New("convert: empty unit name")

	// ErrDuplicateDeclaration indicates two declarations for the same
	// ordered (from, to) pair.
	ErrDuplicateDeclaration = errors.New("convert: duplicate declaration")

	// ErrNoConversion indicates that no direct declaration connects the
	// source and target units, or that the two shapes differ in structure.
	// Paths are never inferred transitively.
	ErrNoConversion = errors.New("convert: no conversion declared")

	// ErrBadConfig indicates a malformed conversion table file.
	ErrBadConfig = errors.New("convert: bad table config")
)

// Panic message for MustRealRate (programmer error).
const panicInvalidRate = "convert: MustRealRate: rate must be finite and non-zero"
