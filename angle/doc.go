// SPDX-License-Identifier: MIT

// Package angle normalizes angles into a half-open range around zero.
//
// Every Unit has a modulus M, half a full turn: 180 for Degree, π for
// Radian. Normalize maps any angle into [-M, M), so headings from a servo
// or an IMU compare and subtract without wrap-around surprises:
//
//	angle.Degrees(540.0).Normalize()  // -180deg
//	angle.Degrees(360.0).Normalize()  // 0deg
//	angle.Degrees(-400.0).Normalize() // -40deg
//
// +M itself is folded onto -M, so each equivalence class of angles has a
// single representative.
//
// Angles bridge to the value algebra through Quantity and FromQuantity,
// using the unit name ("deg", "rad") as the atomic shape.
package angle
