// SPDX-License-Identifier: MIT

package unit

import "errors"

var (
	// ErrShapeMismatch indicates Add or Sub on values whose shapes are not
	// structurally equal.
	ErrShapeMismatch = errors.New("unit: shape mismatch")

	// ErrScriptMismatch indicates a script that does not fit the value's
	// shape. The underlying simplify error is wrapped alongside it.
	ErrScriptMismatch = errors.New("unit: script does not match value shape")

	// ErrUnreachableShape indicates a RequestShape target that differs from
	// the canonical shape of the value.
	ErrUnreachableShape = errors.New("unit: requested shape is unreachable")
)
