// SPDX-License-Identifier: MIT

// Package errslot provides Slot, a write-once error latch that numeric
// evaluations use to report failures they cannot return.
//
// An integrand may be evaluated from many goroutines at once, or from
// accelerator lanes that have no way to unwind a call stack. Instead of
// returning an error, the evaluation reports into a Slot shared by the whole
// integrand expression; the caller polls the Slot with Check after a batch of
// evaluations has completed.
//
// Contract:
//   - Report is lock free: a single compare-and-swap on the latch decides the
//     winner; every later Report is a silent no-op (first error wins).
//   - Check never blocks and never clears the latch.
//   - Reset returns the latch to empty; resetting an error that was never
//     checked discards it.
//
// The record backing a Slot is placed on an anonymous shared mapping on unix
// systems so it is addressable from every context that maps that chunk.
// Records are packed many to a chunk and recycled when their Slot is
// collected, so the number of live slots is bounded by memory, not by the
// kernel's per-process mapping limit. On other platforms it is an ordinary
// heap record.
//
// Errors:
//
//	ErrSignCheck           - any latched sign-check failure.
//	ErrContourDeformation  - the contour deformation polynomial check failed.
//	ErrPositivePolynomial  - the positive polynomial check failed.
package errslot
