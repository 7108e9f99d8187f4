// SPDX-License-Identifier: MIT

package integrand

import "github.com/katalvlaran/qmc/errslot"

// composeP combines the values of a and b, each bound to its first parameter
// set. Parameter sets are not merged: the result has none and is marked
// composite. It shares a's slot.
func composeP[T Value, A any, P any](op operation, a, b *Parameterized[T, A, P]) *Parameterized[T, A, P] {
	fa, pa := a.fnp, a.first()
	fb, pb := b.fnp, b.first()
	bound := binary[T, A](op,
		func(x A, s *errslot.Slot) T { return fa(x, pa, s) },
		func(x A, s *errslot.Slot) T { return fb(x, pb, s) },
	)

	return &Parameterized[T, A, P]{
		dimension: max(a.dimension, b.dimension),
		fnp:       func(x A, _ []P, s *errslot.Slot) T { return bound(x, s) },
		slot:      a.slot,
		name:      DefaultName,
		pending:   a.pending || b.pending,
		composite: true,
	}
}

// AddP returns a+b over evaluated values.
func AddP[T Value, A any, P any](a, b *Parameterized[T, A, P]) *Parameterized[T, A, P] {
	return composeP(opAdd, a, b)
}

// SubP returns a-b over evaluated values.
func SubP[T Value, A any, P any](a, b *Parameterized[T, A, P]) *Parameterized[T, A, P] {
	return composeP(opSub, a, b)
}

// MulP returns a*b over evaluated values.
func MulP[T Value, A any, P any](a, b *Parameterized[T, A, P]) *Parameterized[T, A, P] {
	return composeP(opMul, a, b)
}

// DivP returns a/b over evaluated values.
func DivP[T Value, A any, P any](a, b *Parameterized[T, A, P]) *Parameterized[T, A, P] {
	return composeP(opDiv, a, b)
}

// PlusP returns +a.
func PlusP[T Value, A any, P any](a *Parameterized[T, A, P]) *Parameterized[T, A, P] {
	return a.Clone()
}

// NegP returns -a. Unlike the binary operators it keeps a's parameter sets.
func NegP[T Value, A any, P any](a *Parameterized[T, A, P]) *Parameterized[T, A, P] {
	fa := a.fnp
	c := *a
	c.fnp = func(x A, params []P, s *errslot.Slot) T { return -fa(x, params, s) }

	return &c
}

// AddAssign sets p = p + o.
func (p *Parameterized[T, A, P]) AddAssign(o *Parameterized[T, A, P]) { *p = *AddP(p, o) }

// SubAssign sets p = p - o.
func (p *Parameterized[T, A, P]) SubAssign(o *Parameterized[T, A, P]) { *p = *SubP(p, o) }

// MulAssign sets p = p * o.
func (p *Parameterized[T, A, P]) MulAssign(o *Parameterized[T, A, P]) { *p = *MulP(p, o) }

// DivAssign sets p = p / o.
func (p *Parameterized[T, A, P]) DivAssign(o *Parameterized[T, A, P]) { *p = *DivP(p, o) }

// RealP returns the real part of a complex128 parameterized integrand,
// keeping slot and parameter sets.
func RealP[A any, P any](p *Parameterized[complex128, A, P]) *Parameterized[float64, A, P] {
	fnp := p.fnp
	out := Convert[float64](p)
	out.SetFunc(func(x A, params []P, s *errslot.Slot) float64 { return real(fnp(x, params, s)) })
	out.pending = p.pending

	return out
}

// ImagP returns the imaginary part of a complex128 parameterized integrand.
func ImagP[A any, P any](p *Parameterized[complex128, A, P]) *Parameterized[float64, A, P] {
	fnp := p.fnp
	out := Convert[float64](p)
	out.SetFunc(func(x A, params []P, s *errslot.Slot) float64 { return imag(fnp(x, params, s)) })
	out.pending = p.pending

	return out
}
