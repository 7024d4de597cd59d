// SPDX-License-Identifier: MIT

package simplify

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/unitshape/shape"
)

var (
	// ErrOpMismatch indicates that a script step was applied to a shape it
	// cannot rewrite (e.g. Commutative on a Quotient). The Simplifier never
	// produces such scripts; hand-written or stale scripts can.
	ErrOpMismatch = errors.New("simplify: operation does not match shape")

	// ErrUnknownOp indicates an OpKind outside the defined set.
	ErrUnknownOp = errors.New("simplify: unknown operation")
)

// Panic messages for option constructors (programmer error).
const (
	panicNilLogger        = "simplify: WithLogger: logger must be non-nil"
	panicConcurrencyBound = "simplify: WithConcurrency: n must be >= 1"
)

// mismatchf attaches the op and the shape it failed on to ErrOpMismatch.
func mismatchf(o Op, s shape.Shape) error {
	return fmt.Errorf("%s on %s: %w", o.Kind, s, ErrOpMismatch)
}
