// SPDX-License-Identifier: MIT

package unit_test

import (
	"fmt"

	"github.com/katalvlaran/unitshape/shape"
	"github.com/katalvlaran/unitshape/unit"
)

// ExampleValue_RequestShape integrates velocity over time back to distance.
func ExampleValue_RequestShape() {
	dist := unit.New(10.0, "m")
	dt := unit.New(2.0, "s")

	v := dist.Div(dt)
	fmt.Println(v)

	travelled := v.Mul(dt)
	fmt.Println(travelled)

	m, err := travelled.RequestShape(shape.Atomic("m"))
	fmt.Println(m, err)
	// Output:
	// 5m/s
	// 10m/ss
	// 10m <nil>
}
