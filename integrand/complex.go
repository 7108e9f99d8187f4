// SPDX-License-Identifier: MIT

package integrand

import "github.com/katalvlaran/qmc/errslot"

// Map returns an integrand evaluating f(ic(x)). It keeps the dimension, the
// name and the slot of ic.
func Map[T, U Value, A any](ic *Integrand[T, A], f func(T) U) *Integrand[U, A] {
	if f == nil {
		panic("integrand: Map(nil)")
	}
	fn := ic.fn

	return &Integrand[U, A]{
		dimension: ic.dimension,
		fn:        func(x A, s *errslot.Slot) U { return f(fn(x, s)) },
		slot:      ic.slot,
		name:      ic.name,
	}
}

// Real returns the real part of a complex128 integrand.
func Real[A any](ic *Integrand[complex128, A]) *Integrand[float64, A] {
	return Map(ic, func(v complex128) float64 { return real(v) })
}

// Imag returns the imaginary part of a complex128 integrand.
func Imag[A any](ic *Integrand[complex128, A]) *Integrand[float64, A] {
	return Map(ic, func(v complex128) float64 { return imag(v) })
}

// Real64 returns the real part of a complex64 integrand.
func Real64[A any](ic *Integrand[complex64, A]) *Integrand[float32, A] {
	return Map(ic, func(v complex64) float32 { return real(v) })
}

// Imag64 returns the imaginary part of a complex64 integrand.
func Imag64[A any](ic *Integrand[complex64, A]) *Integrand[float32, A] {
	return Map(ic, func(v complex64) float32 { return imag(v) })
}
