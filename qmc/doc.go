// SPDX-License-Identifier: MIT

// Package qmc provides the integrator objects returned by the dispatcher.
//
// An Integrator estimates ∫_[0,1]^d f(x) dx with a randomly shifted rank-1
// lattice rule. The points of one lattice of size n are
//
//	x_i = frac(i·z/n + Δ_k),  i = 0..n-1,  k = 0..m-1,
//
// with a Korobov-type generating vector z_j = g^j mod n and m independent
// random shifts Δ_k. The mean over the shifts is the estimate; the standard
// error of that mean is the error estimate. The lattice size is doubled (to
// the next prime) until every component of the error meets
// max(EpsAbs, EpsRel·|I|) or MaxEval would be exceeded.
//
// Each point is first passed through the configured periodizing transform
// (see package transform) so that smooth non-periodic integrands reach the
// fast convergence rate of lattice rules.
//
// Evaluation runs on one of three executors selected by the target:
//
//	single-thread  the calling goroutine
//	multi-thread   an errgroup pool limited to Settings.CPUThreads
//	*-device       one lane per device id through an Accelerator
//
// Results do not depend on the executor: work is split into fixed packages
// whose partial sums are reduced in a fixed order.
//
// After every lattice the integrand's error slot is checked. A latched
// sign-check error aborts the run and is returned wrapped; evaluation itself
// never stops early because of it.
package qmc
