// SPDX-License-Identifier: MIT

package errslot

import (
	"errors"
	"fmt"
)

var (
	// ErrSignCheck matches every latched sign-check error.
	ErrSignCheck = errors.New("errslot: sign check error")

	// ErrContourDeformation matches a failed sign check of the contour
	// deformation polynomial (its imaginary part must stay non-positive).
	ErrContourDeformation = errors.New("errslot: contour deformation polynomial sign check failed")

	// ErrPositivePolynomial matches a failed sign check of a polynomial that
	// must stay positive on the integration domain.
	ErrPositivePolynomial = errors.New("errslot: positive polynomial sign check failed")
)

// SignCheckError is returned by Slot.Check when an evaluation latched a
// failure. Context is the diagnostic id passed to Report.
type SignCheckError struct {
	Kind    Kind
	Context int64
}

// Error renders the failed quantity and its diagnostic id.
func (e *SignCheckError) Error() string {
	return fmt.Sprintf("errslot: sign check error: %q, signCheckId=%d", e.Kind.String(), e.Context)
}

// Unwrap exposes ErrSignCheck and the kind-specific sentinel to errors.Is.
func (e *SignCheckError) Unwrap() []error {
	switch e.Kind {
	case KindContourDeformation:
		return []error{ErrSignCheck, ErrContourDeformation}
	case KindPositivePolynomial:
		return []error{ErrSignCheck, ErrPositivePolynomial}
	default:
		return []error{ErrSignCheck}
	}
}
