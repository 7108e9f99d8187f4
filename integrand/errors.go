// SPDX-License-Identifier: MIT

package integrand

import "errors"

// ErrDimensionMismatch indicates a parameter vector whose length differs from
// the declared number of integration variables.
var ErrDimensionMismatch = errors.New("integrand: dimension mismatch")
