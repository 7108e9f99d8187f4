// SPDX-License-Identifier: MIT

// Package dispatch turns a runtime configuration record into a ready-to-run
// integrator.
//
// The set of integrators is closed: every (transform × degree × fit function
// × execution target) tuple that can be served is fixed when the
// registry.Family is built. Dispatch validates a Config against that family,
// routes on target, then transform kind, then degree, then fit function, and
// returns the resulting integrator through the uniform qmc.Handle so callers
// never branch on the configuration again.
//
// Every numeric tuning field of Config uses 0 for "keep the built-in
// default". Ids use 0 for their default member as well; negative and positive
// ids partition the named families (see package registry).
//
// Configuration errors are reported synchronously:
//
//	ErrInvalidConfig           a field fails its range check
//	ErrUnsupportedTransform    the transform id is unknown or not in the family
//	ErrUnsupportedFitFunction  the fit-function id is unknown or not in the family
//	ErrDeviceSet               a device target with an empty or oversized device set
//
// LoadConfig reads a Config from YAML and QMC_* environment variables.
package dispatch
