// SPDX-License-Identifier: MIT

package integrand

import "github.com/katalvlaran/qmc/errslot"

// DefaultName is the display name given to integrands that were not named.
const DefaultName = "INTEGRAND"

// Value is the set of numeric types an integrand may return.
type Value interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64 | ~complex64 | ~complex128
}

// Func evaluates an integrand at x. Implementations must be pure in x and may
// only write to slot; they are called concurrently.
type Func[T Value, A any] func(x A, slot *errslot.Slot) T

// ParamFunc is Func with an additional parameter vector, indexed by
// integration variable.
type ParamFunc[T Value, A any, P any] func(x A, params []P, slot *errslot.Slot) T
