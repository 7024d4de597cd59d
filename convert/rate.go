// SPDX-License-Identifier: MIT

package convert

import (
	"fmt"
	"math"
	"strconv"
)

// Rate is a fixed multiplicative relation from a source unit to a target
// unit. The two implementations are ExponentRate and RealRate.
type Rate interface {
	// Factor returns the multiplier taking a source number to the target.
	Factor() float64
	// Inverse returns the rate of the opposite direction.
	Inverse() Rate
	// String renders the rate as "exponent(3)" or "rate(3600)".
	String() string

	factor() factor
}

// ExponentRate is a power of ten: target = source × 10^e.
// A positive exponent means the target unit is e decades smaller
// (km → m is ExponentRate(3)).
type ExponentRate int8

// Factor returns 10^e.
func (e ExponentRate) Factor() float64 { return math.Pow10(int(e)) }

// Exponent rates are limited to [MinExponent, MaxExponent] so that every
// declared rate has a representable inverse.
const (
	MinExponent = -127
	MaxExponent = 127
)

// Inverse returns ExponentRate(-e).
func (e ExponentRate) Inverse() Rate { return -e }

func (e ExponentRate) String() string { return fmt.Sprintf("exponent(%d)", int8(e)) }

func (e ExponentRate) factor() factor { return factor{exp: int(e), mul: 1} }

// RealRate is an arbitrary multiplier: target = source × r.
// Build it with NewRealRate so that zero and NaN are rejected up front.
type RealRate float64

// NewRealRate validates r. Zero, NaN and ±Inf yield ErrInvalidRate.
func NewRealRate(r float64) (RealRate, error) {
	if r == 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, fmt.Errorf("rate %v: %w", r, ErrInvalidRate)
	}

	return RealRate(r), nil
}

// MustRealRate is NewRealRate for table literals; it panics on an invalid r.
func MustRealRate(r float64) RealRate {
	rr, err := NewRealRate(r)
	if err != nil {
		panic(panicInvalidRate)
	}

	return rr
}

// Factor returns r.
func (r RealRate) Factor() float64 { return float64(r) }

// Inverse returns 1/r.
func (r RealRate) Inverse() Rate { return 1 / r }

func (r RealRate) String() string {
	return "rate(" + strconv.FormatFloat(float64(r), 'g', -1, 64) + ")"
}

func (r RealRate) factor() factor { return factor{mul: float64(r)} }

// validRate reports whether r can take part in a table.
func validRate(r Rate) error {
	switch v := r.(type) {
	case ExponentRate:
		if v < MinExponent {
			return fmt.Errorf("%s has no inverse: %w", v, ErrInvalidRate)
		}
		return nil
	case RealRate:
		_, err := NewRealRate(float64(v))
		return err
	case nil:
		return fmt.Errorf("nil rate: %w", ErrInvalidRate)
	default:
		return fmt.Errorf("rate %s: %w", r, ErrInvalidRate)
	}
}
