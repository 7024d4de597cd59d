// SPDX-License-Identifier: MIT

// Package unitshape attaches units to numbers and proves compound units
// equal to simpler ones: the dimensional bookkeeping layer that sits
// between a sensor driver and the code that consumes its readings.
//
// 🚀 What is unitshape?
//
//	A small set of packages, leaf first:
//		• shape: the unit term model: Scalar, Atomic, Product, Quotient
//		• simplify: the rewriting engine: canonical shape + replayable script
//		• unit: shaped values: Mul, Div, Add, Sub, RequestShape
//		• convert: fixed-rate conversion tables (Go literals or YAML)
//		• angle: angle normalization into [-M, M)
//
// ✨ Why shapes and scripts?
//
//   - Multiplying 10m/2s by 2s gives the number 10 at once; only the unit
//     (m/s)*s needs work. Simplify relabels it to m and tells you how.
//   - Scripts are data: they can be logged, compared and replayed with
//     simplify.Apply or unit.Value.Execute.
//   - Payloads are never touched by simplification, so results are
//     bit-identical to the arithmetic that produced them.
//
// ⚙️ Tooling:
//
//	cmd/unitshape : CLI: simplify, convert, normalize, table
//	examples/     : IMU, servo and odometry demos
package unitshape
