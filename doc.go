// Package qmc is the runtime core of a quasi-Monte Carlo integration
// library: composable integrands with lock-free error reporting, and a
// dispatcher that turns a runtime configuration into a ready-to-run
// lattice-rule integrator.
//
// 🚀 What is in the box?
//
//	• Error slots: a write-once latch that parallel evaluations report
//	  sign-check failures into, checked by the caller after each batch
//	• Integrands: Add/Sub/Mul/Div/Neg, Real/Imag and Sum over typed
//	  integrand containers that share one error slot per expression
//	• Parameterized integrands: per-set parameters, converting copies
//	• Registry: transform, fit-function, generating-vector and target ids
//	• Periodizing transforms: baker, korobov<a>x<b>, sidi<r>
//	• Integrators: randomly shifted rank-1 lattice rules on one goroutine,
//	  a worker pool or device lanes
//	• Dispatcher: validated Config → qmc.Handle, YAML and QMC_* env loading
//
// ✨ Why this shape?
//
//   - Evaluation never throws: failures are latched and surfaced after the batch
//   - One handle type whatever transform, fit function and target were chosen
//   - Closed configuration space: unknown ids fail at dispatch, not mid-run
//
// Subpackages, leaves first:
//
//	errslot/   — write-once error latch on a shared page
//	integrand/ — Integrand and Parameterized containers + arithmetic
//	registry/  — ids, resolved specs, the enabled Family
//	transform/ — periodizers
//	qmc/       — Settings, Integrator, executors, metrics
//	dispatch/  — Config, LoadConfig, Dispatch
//	cmd/qmcdispatch — CLI: integrate a demo integrand, plot convergence
//
// Quick example:
//
//	f := integrand.New(2, func(x []float64, s *errslot.Slot) float64 { return x[0] * x[1] })
//	h, _ := dispatch.Dispatch[float64](dispatch.Config{Target: registry.MultiThread})
//	res, err := h.Integrate(ctx, f) // res.Integral ≈ 0.25
//
//	go get github.com/katalvlaran/qmc
package qmc
