// SPDX-License-Identifier: MIT

// Package convert applies fixed multiplicative rates between units.
//
// A Table holds direct, ordered declarations: "1 km is 10^3 m" or
// "1 h is 3600 s". There is no transitive inference. If km→m and m→mm are
// declared, km→mm is still unavailable until it is declared too.
//
// Two rate encodings exist:
//
//	ExponentRate(e)  target = source × 10^e   (km→m is ExponentRate(3))
//	RealRate(r)      target = source × r      (h→s is RealRate(3600))
//
// Exponent rates keep powers of ten exact, and integer payloads convert
// with integer arithmetic along exponent-only paths. Real rates are
// validated when declared: zero, NaN and infinities never reach a value.
//
// Compound shapes convert factor by factor when source and target share
// their tree layout, so km/h converts to m/s with km→m and h→s declared.
//
// Tables can be declared in Go or loaded from YAML:
//
//	conversions:
//	  km:
//	    m: {exponent: 3}
//	  h:
//	    s: {rate: 3600}
//
// Tables are immutable; share them freely between goroutines.
package convert
