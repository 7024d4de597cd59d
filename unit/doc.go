// SPDX-License-Identifier: MIT

// Package unit implements the value algebra over shaped numbers.
//
// A Value pairs a numeric payload (any integer or float type) with a
// shape.Shape. Multiplying or dividing values always succeeds and builds a
// compound shape; adding or subtracting requires equal shapes.
//
//	d := unit.New(10.0, "m")
//	t := unit.New(2.0, "s")
//	v := d.Div(t)                                   // 5m/s
//	back := v.Mul(t)                                // 10m/ss, shape (m/s)*s
//	dist, _ := back.RequestShape(shape.Atomic("m")) // 10m
//
// Simplification never touches the payload. The number was computed when the
// compound value was built; Execute and RequestShape only swap the shape for
// a smaller equivalent one.
//
// Errors:
//   - ErrShapeMismatch    Add/Sub of different shapes.
//   - ErrScriptMismatch   Execute with a script that does not fit.
//   - ErrUnreachableShape RequestShape with a non-canonical target.
package unit
