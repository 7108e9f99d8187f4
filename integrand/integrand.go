// SPDX-License-Identifier: MIT

package integrand

import "github.com/katalvlaran/qmc/errslot"

// Integrand is an evaluation closure over a fixed number of integration
// variables with an attached error slot. Use New or Zero to construct one;
// the zero value is not usable.
type Integrand[T Value, A any] struct {
	dimension int
	fn        Func[T, A]
	slot      *errslot.Slot
	name      string
}

// New wraps fn as an integrand over dimension variables with a fresh slot.
// Panics on a negative dimension or a nil fn (programmer error).
// Complexity: O(1).
func New[T Value, A any](dimension int, fn Func[T, A]) *Integrand[T, A] {
	if dimension < 0 {
		panic("integrand: New: negative dimension")
	}
	if fn == nil {
		panic("integrand: New(nil)")
	}

	return &Integrand[T, A]{dimension: dimension, fn: fn, slot: errslot.New(), name: DefaultName}
}

// Zero returns the zero integrand: dimension 0, constant zero, fresh slot.
// It is the identity of Add.
func Zero[T Value, A any]() *Integrand[T, A] {
	return New[T, A](0, func(A, *errslot.Slot) T {
		var zero T
		return zero
	})
}

// Call evaluates the integrand at x using its own slot. It never checks the
// slot; see Check.
func (ic *Integrand[T, A]) Call(x A) T {
	return ic.fn(x, ic.slot)
}

// Func returns the raw evaluation closure.
func (ic *Integrand[T, A]) Func() Func[T, A] { return ic.fn }

// Dimension returns the number of integration variables.
func (ic *Integrand[T, A]) Dimension() int { return ic.dimension }

// Slot returns the shared error slot.
func (ic *Integrand[T, A]) Slot() *errslot.Slot { return ic.slot }

// Name returns the display name.
func (ic *Integrand[T, A]) Name() string { return ic.name }

// WithName returns a copy carrying name. The copy shares the slot.
func (ic *Integrand[T, A]) WithName(name string) *Integrand[T, A] {
	c := *ic
	c.name = name

	return &c
}

// Clone returns a copy sharing closure and slot.
func (ic *Integrand[T, A]) Clone() *Integrand[T, A] {
	c := *ic
	return &c
}

// Check returns the latched evaluation error, if any.
func (ic *Integrand[T, A]) Check() error { return ic.slot.Check() }

// Reset clears the slot for reuse in another integration run.
func (ic *Integrand[T, A]) Reset() { ic.slot.Reset() }
