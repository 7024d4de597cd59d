// SPDX-License-Identifier: MIT

package convert

import (
	"math"

	"github.com/katalvlaran/unitshape/unit"
)

// factor accumulates the conversion of a compound shape as a power of ten
// and a residual real multiplier, so exponent-only paths stay exact.
type factor struct {
	exp int
	mul float64
}

var identity = factor{mul: 1}

// times combines f with g raised to sign (+1 multiply, -1 divide).
func (f factor) times(g factor, sign int) factor {
	out := factor{exp: f.exp + sign*g.exp, mul: f.mul}
	if sign > 0 {
		out.mul *= g.mul
	} else {
		out.mul /= g.mul
	}

	return out
}

// apply scales v by f.
//
// Integer payloads with a pure power-of-ten factor use integer arithmetic
// (division truncates toward zero). When 10^|exp| does not fit in V, a
// division yields 0 and a multiplication falls back to float64 like every
// other case; integer results are rounded to nearest and overflow as the
// host conversion does.
func apply[V unit.Number](v V, f factor) V {
	if f.mul == 1 && isInteger[V]() {
		p, ok := pow10[V](abs(f.exp))
		switch {
		case ok && f.exp >= 0:
			return v * p
		case ok:
			return v / p
		case f.exp < 0:
			return 0
		}
	}

	x := float64(v)
	if f.exp >= 0 {
		x *= math.Pow10(f.exp)
	} else {
		x /= math.Pow10(-f.exp)
	}
	x *= f.mul
	if isInteger[V]() {
		return V(math.Round(x))
	}

	return V(x)
}

// pow10 returns 10^n in V. ok is false when the power overflows V.
func pow10[V unit.Number](n int) (p V, ok bool) {
	p = 1
	for range n {
		next := p * 10
		if next/10 != p {
			return 0, false
		}
		p = next
	}

	return p, true
}

// isInteger reports whether V truncates on division.
func isInteger[V unit.Number]() bool {
	var one V = 1

	return one/2 == 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
