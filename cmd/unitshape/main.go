// SPDX-License-Identifier: MIT

// Command unitshape is a developer tool over the unitshape library: it
// simplifies unit shapes, converts values through a conversion table and
// normalizes angles.
//
//	unitshape simplify "(m/s)*s" "s*(m/s)"
//	unitshape convert 36 km/h m/s
//	unitshape normalize 540 --unit deg
//	unitshape table --table units.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
