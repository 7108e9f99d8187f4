// SPDX-License-Identifier: MIT

package integrand

import "github.com/katalvlaran/qmc/errslot"

// operation selects the arithmetic applied by compose.
type operation int

const (
	opAdd operation = iota
	opSub
	opMul
	opDiv
)

// binary returns a closure combining fa and fb with op. Both operands see the
// slot the composite is evaluated with.
func binary[T Value, A any](op operation, fa, fb Func[T, A]) Func[T, A] {
	switch op {
	case opAdd:
		return func(x A, s *errslot.Slot) T { return fa(x, s) + fb(x, s) }
	case opSub:
		return func(x A, s *errslot.Slot) T { return fa(x, s) - fb(x, s) }
	case opMul:
		return func(x A, s *errslot.Slot) T { return fa(x, s) * fb(x, s) }
	default:
		return func(x A, s *errslot.Slot) T { return fa(x, s) / fb(x, s) }
	}
}

// compose builds the composite of a and b. The result reuses a's slot; a fresh
// slot here would hide errors reported by sub-expressions.
func compose[T Value, A any](op operation, a, b *Integrand[T, A]) *Integrand[T, A] {
	return &Integrand[T, A]{
		dimension: max(a.dimension, b.dimension),
		fn:        binary(op, a.fn, b.fn),
		slot:      a.slot,
		name:      DefaultName,
	}
}

// Add returns a+b.
func Add[T Value, A any](a, b *Integrand[T, A]) *Integrand[T, A] { return compose(opAdd, a, b) }

// Sub returns a-b.
func Sub[T Value, A any](a, b *Integrand[T, A]) *Integrand[T, A] { return compose(opSub, a, b) }

// Mul returns a*b.
func Mul[T Value, A any](a, b *Integrand[T, A]) *Integrand[T, A] { return compose(opMul, a, b) }

// Div returns a/b. Division by a zero value follows the semantics of T:
// Inf or NaN for floating and complex types, a run-time panic for integers.
func Div[T Value, A any](a, b *Integrand[T, A]) *Integrand[T, A] { return compose(opDiv, a, b) }

// Plus returns +a, a copy sharing the slot.
func Plus[T Value, A any](a *Integrand[T, A]) *Integrand[T, A] { return a.Clone() }

// Neg returns -a sharing a's slot.
func Neg[T Value, A any](a *Integrand[T, A]) *Integrand[T, A] {
	fa := a.fn
	return &Integrand[T, A]{
		dimension: a.dimension,
		fn:        func(x A, s *errslot.Slot) T { return -fa(x, s) },
		slot:      a.slot,
		name:      a.name,
	}
}

// AddAssign sets ic = ic + o.
func (ic *Integrand[T, A]) AddAssign(o *Integrand[T, A]) { *ic = *Add(ic, o) }

// SubAssign sets ic = ic - o.
func (ic *Integrand[T, A]) SubAssign(o *Integrand[T, A]) { *ic = *Sub(ic, o) }

// MulAssign sets ic = ic * o.
func (ic *Integrand[T, A]) MulAssign(o *Integrand[T, A]) { *ic = *Mul(ic, o) }

// DivAssign sets ic = ic / o.
func (ic *Integrand[T, A]) DivAssign(o *Integrand[T, A]) { *ic = *Div(ic, o) }

// Sum folds ics with Add, left to right. The result shares the slot of the
// first integrand. An empty list yields Zero.
// Complexity: O(len(ics)) closures; each evaluation calls every operand once.
func Sum[T Value, A any](ics ...*Integrand[T, A]) *Integrand[T, A] {
	if len(ics) == 0 {
		return Zero[T, A]()
	}
	acc := ics[0]
	for _, ic := range ics[1:] {
		acc = Add(acc, ic)
	}

	return acc
}
