// SPDX-License-Identifier: MIT

// Package transform implements the periodizing changes of variables applied to
// an integrand before lattice quadrature.
//
// A periodizer maps each coordinate t of the unit hypercube through a
// monotone (or, for the baker's transform, piecewise linear) map phi and
// multiplies the integrand by the product of the per-coordinate weights
// phi'(t), so that
//
//	∫ f(u) du = ∫ f(phi(t)) Π phi'(t_j) dt
//
// while the transformed integrand becomes smooth and periodic at the
// boundary of the cube.
//
// Families:
//
//	none         phi(t) = t
//	baker        phi(t) = 1 - |2t - 1|, weight 1
//	korobov r0xr1 weight t^r0 (1-t)^r1 / B(r0+1, r1+1)
//	sidi r       weight sin^r(pi t) scaled to unit mass
//
// Periodizers are stateless after construction and safe for concurrent use.
package transform
