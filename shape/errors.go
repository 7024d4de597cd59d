// SPDX-License-Identifier: MIT

package shape

import "errors"

// ErrSyntax indicates that Parse could not read the input as a shape
// expression. Returned errors wrap it with the offending position.
var ErrSyntax = errors.New("shape: syntax error")

// panicEmptyAtomic is raised by Atomic on an empty name (programmer error).
const panicEmptyAtomic = "shape: Atomic: name must be non-empty"
