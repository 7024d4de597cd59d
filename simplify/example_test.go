// SPDX-License-Identifier: MIT

package simplify_test

import (
	"fmt"

	"github.com/katalvlaran/unitshape/shape"
	"github.com/katalvlaran/unitshape/simplify"
)

// ExampleSimplify cancels time out of velocity·time.
func ExampleSimplify() {
	in := shape.MustParse("s*(m/s)")
	res := simplify.Simplify(in)
	fmt.Println(res.Canonical, res.Script)

	back, _ := simplify.Apply(in, res.Script)
	fmt.Println(back.Equal(res.Canonical))
	// Output:
	// m [commutative, reduction]
	// true
}

// ExampleEquivalent compares shapes the rules can prove equal.
func ExampleEquivalent() {
	fmt.Println(simplify.Equivalent(shape.MustParse("(kg*m)/kg"), shape.Atomic("m")))
	fmt.Println(simplify.Equivalent(shape.Atomic("m"), shape.Atomic("s")))
	// Output:
	// true
	// false
}
