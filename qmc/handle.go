// SPDX-License-Identifier: MIT

package qmc

import (
	"context"

	"github.com/google/uuid"
	"github.com/katalvlaran/qmc/errslot"
	"github.com/katalvlaran/qmc/registry"
)

// Integrand is what an integrator evaluates. Call may be invoked from many
// goroutines at once and must not retain x.
type Integrand[T Number] interface {
	Dimension() int
	Call(x []float64) T
	Slot() *errslot.Slot
}

// ParameterizedIntegrand is an Integrand carrying parameter sets; each set is
// integrated separately.
type ParameterizedIntegrand[T Number] interface {
	Integrand[T]
	NumParameterSets() int
	CallSet(k int, x []float64) T
}

// readier is implemented by integrands that can be pending.
type readier interface{ Ready() bool }

// Result is the outcome of one integration.
type Result[T Number] struct {
	// Integral is the estimate.
	Integral T
	// Error is the standard error of Integral, per component for complex T.
	Error T
	// N is the size of the last lattice and M its number of shifts.
	N, M uint64
	// Evaluations counts integrand calls.
	Evaluations uint64
	// Converged is false when MaxEval stopped the run before the tolerance
	// was met.
	Converged bool
	// RunID identifies the run in logs and traces.
	RunID uuid.UUID
}

// Handle is the uniform interface through which dispatched integrators are
// used, whatever transform, fit function and target they were built for.
type Handle[T Number] interface {
	Integrate(ctx context.Context, f Integrand[T]) (Result[T], error)
	IntegrateSets(ctx context.Context, f ParameterizedIntegrand[T]) ([]Result[T], error)
	Settings() Settings
	Transform() registry.TransformSpec
	FitFunction() registry.FitKind
	Target() registry.TargetKind
	Threads() int
}
