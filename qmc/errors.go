// SPDX-License-Identifier: MIT

package qmc

import "errors"

var (
	// ErrIncomplete is returned for an integrand whose evaluation function
	// has not been installed yet (a pending converted copy).
	ErrIncomplete = errors.New("qmc: integrand is incomplete")

	// ErrUnhandledError is returned when the integrand's error slot already
	// holds an error at the start of a run. Reset the slot first.
	ErrUnhandledError = errors.New("qmc: integrand carries an unhandled error")

	// ErrDimensionTooLarge is returned when the integrand has more
	// dimensions than the generating-vector table covers.
	ErrDimensionTooLarge = errors.New("qmc: dimension exceeds generating vectors")

	// ErrInvalidSettings is returned by New for out-of-range settings.
	ErrInvalidSettings = errors.New("qmc: invalid settings")
)
