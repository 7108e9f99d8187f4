// SPDX-License-Identifier: MIT

package integrand

import (
	"fmt"

	"github.com/katalvlaran/qmc/errslot"
)

// Parameterized is an integrand whose evaluation also receives one of several
// parameter vectors. As a plain integrand it is bound to the first set;
// integrators reach the other sets through CallSet.
//
// Invariant: len(sets[k]) == dimension for every k.
type Parameterized[T Value, A any, P any] struct {
	dimension int
	fnp       ParamFunc[T, A, P]
	sets      [][]P
	extra     [][]P // opaque per-set data, never passed to fnp
	slot      *errslot.Slot
	name      string
	pending   bool // converting copy awaiting SetFunc
	composite bool // built by arithmetic; parameter structure dropped
}

// NewParameterized validates and copies sets, then wraps fnp with a fresh slot.
// Returns ErrDimensionMismatch if a set length differs from dimension.
// Panics on a negative dimension or a nil fnp.
// Complexity: O(Σ len(sets[k])).
func NewParameterized[T Value, A any, P any](dimension int, fnp ParamFunc[T, A, P], sets [][]P) (*Parameterized[T, A, P], error) {
	if dimension < 0 {
		panic("integrand: NewParameterized: negative dimension")
	}
	if fnp == nil {
		panic("integrand: NewParameterized(nil)")
	}
	for k, set := range sets {
		if len(set) != dimension {
			return nil, fmt.Errorf("NewParameterized: parameter set %d has length %d, want %d: %w",
				k, len(set), dimension, ErrDimensionMismatch)
		}
	}

	return &Parameterized[T, A, P]{
		dimension: dimension,
		fnp:       fnp,
		sets:      copySets(sets),
		slot:      errslot.New(),
		name:      DefaultName,
	}, nil
}

// FromIntegrand adapts a plain integrand. Parameters are ignored and the
// result has no parameter sets and a fresh slot.
func FromIntegrand[T Value, A any, P any](ic *Integrand[T, A]) *Parameterized[T, A, P] {
	fn := ic.fn
	return &Parameterized[T, A, P]{
		dimension: ic.dimension,
		fnp:       func(x A, _ []P, s *errslot.Slot) T { return fn(x, s) },
		slot:      errslot.New(),
		name:      ic.name,
	}
}

// Convert returns a converting copy with value type U. Slot, parameter sets,
// extra parameter sets, dimension and name are kept, but the evaluation
// function is a zero placeholder: the copy is pending until SetFunc installs
// a real function. Integrators refuse pending integrands.
func Convert[U, T Value, A any, P any](p *Parameterized[T, A, P]) *Parameterized[U, A, P] {
	return &Parameterized[U, A, P]{
		dimension: p.dimension,
		fnp: func(A, []P, *errslot.Slot) U {
			var zero U
			return zero
		},
		sets:      p.sets,
		extra:     p.extra,
		slot:      p.slot,
		name:      p.name,
		pending:   true,
		composite: p.composite,
	}
}

// SetFunc installs the evaluation function, completing a converting copy.
// Panics on nil.
func (p *Parameterized[T, A, P]) SetFunc(fnp ParamFunc[T, A, P]) {
	if fnp == nil {
		panic("integrand: SetFunc(nil)")
	}
	p.fnp = fnp
	p.pending = false
}

// Ready reports whether p has a real evaluation function.
func (p *Parameterized[T, A, P]) Ready() bool { return !p.pending }

// Composite reports whether p was produced by arithmetic and therefore
// exposes no meaningful parameter sets.
func (p *Parameterized[T, A, P]) Composite() bool { return p.composite }

// first returns the set p is bound to as a plain integrand, or nil.
func (p *Parameterized[T, A, P]) first() []P {
	if len(p.sets) == 0 {
		return nil
	}

	return p.sets[0]
}

// Call evaluates p at x with the first parameter set.
func (p *Parameterized[T, A, P]) Call(x A) T {
	return p.fnp(x, p.first(), p.slot)
}

// CallSet evaluates p at x with parameter set k. With no sets, k == 0 passes
// nil parameters. Panics if k is out of range.
func (p *Parameterized[T, A, P]) CallSet(k int, x A) T {
	if k == 0 {
		return p.Call(x)
	}

	return p.fnp(x, p.sets[k], p.slot)
}

// NumParameterSets returns the number of parameter sets.
func (p *Parameterized[T, A, P]) NumParameterSets() int { return len(p.sets) }

// ParameterSets returns a deep copy of the parameter sets.
func (p *Parameterized[T, A, P]) ParameterSets() [][]P { return copySets(p.sets) }

// SetExtraParameterSets stores a deep copy of extra. Extra sets travel with
// p through Clone, Convert, NegP, RealP and ImagP but are never passed to the
// evaluation function; callers use them to label or post-process per-set
// results. Binary arithmetic and FromIntegrand produce none.
func (p *Parameterized[T, A, P]) SetExtraParameterSets(extra [][]P) { p.extra = copySets(extra) }

// ExtraParameterSets returns a deep copy of the extra parameter sets.
func (p *Parameterized[T, A, P]) ExtraParameterSets() [][]P { return copySets(p.extra) }

// Dimension returns the number of integration variables.
func (p *Parameterized[T, A, P]) Dimension() int { return p.dimension }

// Slot returns the shared error slot.
func (p *Parameterized[T, A, P]) Slot() *errslot.Slot { return p.slot }

// Name returns the display name.
func (p *Parameterized[T, A, P]) Name() string { return p.name }

// Clone returns a copy sharing slot, function and parameter sets.
func (p *Parameterized[T, A, P]) Clone() *Parameterized[T, A, P] {
	c := *p
	return &c
}

// Check returns the latched evaluation error, if any.
func (p *Parameterized[T, A, P]) Check() error { return p.slot.Check() }

// Reset clears the slot.
func (p *Parameterized[T, A, P]) Reset() { p.slot.Reset() }

// AsIntegrand returns a plain integrand bound to the first parameter set and
// sharing p's slot.
func (p *Parameterized[T, A, P]) AsIntegrand() *Integrand[T, A] {
	fnp, params := p.fnp, p.first()
	return &Integrand[T, A]{
		dimension: p.dimension,
		fn:        func(x A, s *errslot.Slot) T { return fnp(x, params, s) },
		slot:      p.slot,
		name:      p.name,
	}
}

// copySets deep-copies parameter vectors so callers cannot alias them.
func copySets[P any](sets [][]P) [][]P {
	if sets == nil {
		return nil
	}
	out := make([][]P, len(sets))
	for k := range sets {
		out[k] = append([]P(nil), sets[k]...)
	}

	return out
}
