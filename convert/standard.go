// SPDX-License-Identifier: MIT

package convert

import "math"

// Standard unit names used by the built-in table.
const (
	Kilometer  = "km"
	Meter      = "m"
	Centimeter = "cm"
	Millimeter = "mm"
	Hour       = "h"
	Minute     = "min"
	Second     = "s"
	Kilogram   = "kg"
	Gram       = "g"
	Degree     = "deg"
	Radian     = "rad"
)

var standard = MustTable(concat(
	Both(Kilometer, Meter, ExponentRate(3)),
	Both(Meter, Centimeter, ExponentRate(2)),
	Both(Meter, Millimeter, ExponentRate(3)),
	Both(Centimeter, Millimeter, ExponentRate(1)),
	Both(Hour, Second, MustRealRate(3600)),
	Both(Hour, Minute, MustRealRate(60)),
	Both(Minute, Second, MustRealRate(60)),
	Both(Kilogram, Gram, ExponentRate(3)),
	Both(Degree, Radian, MustRealRate(math.Pi/180)),
)...)

// Standard returns the built-in table: lengths km, m, cm and mm; times h,
// min and s; masses kg and g; angles deg and rad. Every pair is declared in
// both directions. The table is shared and immutable.
//
// Length and mass pairs are exponent rates and round-trip exactly. Time and
// angle pairs are real rates whose inverses (1/3600, 1/60, 180/π) are not
// representable, so s→h→s and similar round trips are only approximate.
func Standard() *Table { return standard }

func concat(groups ...[]Declaration) []Declaration {
	var out []Declaration
	for _, g := range groups {
		out = append(out, g...)
	}

	return out
}
