// SPDX-License-Identifier: MIT

package transform

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qmc/registry"
)

// ErrUnsupportedKind is returned by New for a spec whose kind has no periodizer.
var ErrUnsupportedKind = errors.New("transform: unsupported transform kind")

// Periodizer rewrites points of the unit hypercube.
type Periodizer interface {
	// Spec returns the resolved transform the periodizer implements.
	Spec() registry.TransformSpec
	// Map returns phi(t) and phi'(t) for one coordinate.
	Map(t float64) (u, weight float64)
	// Apply maps every coordinate of x in place and returns the product of
	// the per-coordinate weights.
	Apply(x []float64) float64
}

// New returns the periodizer for spec.
func New(spec registry.TransformSpec) (Periodizer, error) {
	switch spec.Kind {
	case registry.TransformNone:
		return identity{}, nil
	case registry.TransformBaker:
		return baker{}, nil
	case registry.TransformKorobov:
		if !inRange(spec.Degree1) || !inRange(spec.Degree2) {
			return nil, fmt.Errorf("transform: korobov degrees (%d, %d): %w", spec.Degree1, spec.Degree2, registry.ErrUnknownTransform)
		}
		return newKorobov(spec.Degree1, spec.Degree2), nil
	case registry.TransformSidi:
		if !inRange(spec.Degree1) {
			return nil, fmt.Errorf("transform: sidi degree %d: %w", spec.Degree1, registry.ErrUnknownTransform)
		}
		return newSidi(spec.Degree1), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedKind, spec.Kind)
	}
}

// MustNew is New that panics on error.
func MustNew(spec registry.TransformSpec) Periodizer {
	p, err := New(spec)
	if err != nil {
		panic(err)
	}

	return p
}

func inRange(r int) bool { return r >= 1 && r <= registry.MaxDegree }

// apply is the shared coordinate loop behind every Apply.
func apply(m func(float64) (float64, float64), x []float64) float64 {
	w := 1.0
	for j, t := range x {
		u, wj := m(t)
		x[j] = u
		w *= wj
	}

	return w
}

// clamp keeps round-off from pushing a mapped point out of [0, 1].
func clamp(u float64) float64 {
	if u < 0 {
		return 0
	}
	if u > 1 {
		return 1
	}

	return u
}

type identity struct{}

func (identity) Spec() registry.TransformSpec { return registry.TransformSpec{Kind: registry.TransformNone} }

func (identity) Map(t float64) (float64, float64) { return t, 1 }

func (identity) Apply([]float64) float64 { return 1 }

type baker struct{}

func (baker) Spec() registry.TransformSpec { return registry.TransformSpec{Kind: registry.TransformBaker} }

func (baker) Map(t float64) (float64, float64) {
	u := 2 * t
	if u > 1 {
		u = 2 - u
	}

	return clamp(u), 1
}

func (b baker) Apply(x []float64) float64 { return apply(b.Map, x) }
