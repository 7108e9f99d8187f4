// SPDX-License-Identifier: MIT

package registry

import "errors"

var (
	// ErrUnknownTransform indicates a transform id or name outside the enumeration.
	ErrUnknownTransform = errors.New("registry: unknown transform")

	// ErrUnknownFitFunction indicates a fit-function id or name outside the enumeration.
	ErrUnknownFitFunction = errors.New("registry: unknown fit function")

	// ErrUnknownGeneratingVectors indicates a generating-vector table id or name
	// outside the enumeration.
	ErrUnknownGeneratingVectors = errors.New("registry: unknown generating vectors")

	// ErrUnknownTarget indicates an execution target outside the enumeration.
	ErrUnknownTarget = errors.New("registry: unknown execution target")
)
