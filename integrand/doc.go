// SPDX-License-Identifier: MIT

// Package integrand defines Integrand, a composable container around a numeric
// evaluation function, and Parameterized, its variant carrying external
// parameter vectors.
//
// An Integrand owns three things: the number of integration variables, an
// evaluation closure, and an errslot.Slot shared by every copy of the same
// logical integrand. Integrands are combined with Add, Sub, Mul and Div (and
// Neg / Plus), producing expression trees assembled once, single-threaded,
// before any parallel evaluation starts.
//
// Error propagation:
//
//	Evaluation never returns an error. The closure receives the slot of the
//	integrand being called and reports sign-check failures into it. Composition
//	reuses the left operand's slot and hands the evaluating slot down to both
//	operand closures, so a failure anywhere in the tree lands in the one slot
//	the caller checks afterwards.
//
// Dimension rule:
//
//	The dimension of a composite is the larger operand dimension. Operands with
//	fewer variables simply ignore trailing arguments.
//
// Errors:
//
//	ErrDimensionMismatch - a parameter vector length differs from the dimension.
package integrand
