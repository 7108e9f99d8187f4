// SPDX-License-Identifier: MIT

package dispatch

import "errors"

var (
	// ErrInvalidConfig indicates a Config field outside its allowed range.
	ErrInvalidConfig = errors.New("dispatch: invalid configuration")

	// ErrUnsupportedTransform indicates a transform id that is unknown or was
	// not enabled when the integrator family was built.
	ErrUnsupportedTransform = errors.New("dispatch: unsupported transform")

	// ErrUnsupportedFitFunction indicates a fit-function id that is unknown
	// or was not enabled when the integrator family was built.
	ErrUnsupportedFitFunction = errors.New("dispatch: unsupported fit function")

	// ErrDeviceSet indicates a device target whose device set is empty, or
	// holds more than one device for the single-device target.
	ErrDeviceSet = errors.New("dispatch: invalid device set")
)
