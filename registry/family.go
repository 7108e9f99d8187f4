// SPDX-License-Identifier: MIT

package registry

import (
	"fmt"
	"slices"
)

// Family is the fixed set of transforms and fit functions available to the
// dispatcher. It is immutable after NewFamily returns and safe to share.
type Family struct {
	transforms map[TransformID]struct{}
	fits       map[FitFunctionID]struct{}
}

// FamilyOption customizes NewFamily.
type FamilyOption func(*familyConfig)

type familyConfig struct {
	transforms []TransformID // nil means all
	fits       []FitFunctionID
}

// WithTransforms restricts the family to ids. Panics on an id that does not
// resolve; DefaultTransform is stored as the transform it resolves to.
func WithTransforms(ids ...TransformID) FamilyOption {
	for _, id := range ids {
		if _, err := ResolveTransform(id); err != nil {
			panic(fmt.Sprintf("registry: WithTransforms: %v", err))
		}
	}
	list := append([]TransformID{}, ids...) // non-nil even when empty

	return func(c *familyConfig) { c.transforms = list }
}

// WithFitFunctions restricts the family to ids. Panics on an unknown id.
func WithFitFunctions(ids ...FitFunctionID) FamilyOption {
	for _, id := range ids {
		if _, err := ResolveFitFunction(id); err != nil {
			panic(fmt.Sprintf("registry: WithFitFunctions: %v", err))
		}
	}
	list := append([]FitFunctionID{}, ids...)

	return func(c *familyConfig) { c.fits = list }
}

// NewFamily builds a family. Without options every transform and fit function
// is included.
// Complexity: O(T+F).
func NewFamily(opts ...FamilyOption) *Family {
	var cfg familyConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.transforms == nil {
		cfg.transforms = AllTransforms()
	}
	if cfg.fits == nil {
		cfg.fits = AllFitFunctions()
	}

	f := &Family{
		transforms: make(map[TransformID]struct{}, len(cfg.transforms)),
		fits:       make(map[FitFunctionID]struct{}, len(cfg.fits)),
	}
	for _, id := range cfg.transforms {
		spec, _ := ResolveTransform(id) // validated by the option
		f.transforms[spec.ID()] = struct{}{}
	}
	for _, id := range cfg.fits {
		f.fits[id] = struct{}{}
	}

	return f
}

// DefaultFamily returns a family with every transform and fit function.
func DefaultFamily() *Family { return NewFamily() }

// SupportsTransform reports whether id resolves to a transform in the family.
func (f *Family) SupportsTransform(id TransformID) bool {
	spec, err := ResolveTransform(id)
	if err != nil {
		return false
	}
	_, ok := f.transforms[spec.ID()]

	return ok
}

// SupportsFitFunction reports whether id is in the family.
func (f *Family) SupportsFitFunction(id FitFunctionID) bool {
	_, ok := f.fits[id]
	return ok
}

// Transforms returns the family's transform ids in ascending order.
func (f *Family) Transforms() []TransformID {
	out := make([]TransformID, 0, len(f.transforms))
	for id := range f.transforms {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// FitFunctions returns the family's fit-function ids in ascending order.
func (f *Family) FitFunctions() []FitFunctionID {
	out := make([]FitFunctionID, 0, len(f.fits))
	for id := range f.fits {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}
