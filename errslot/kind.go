// SPDX-License-Identifier: MIT

package errslot

// Kind enumerates the quantities whose sign is checked during evaluation.
type Kind int32

const (
	// KindNone means no error; reporting it is a no-op.
	KindNone Kind = iota
	// KindContourDeformation flags the contour deformation polynomial.
	KindContourDeformation
	// KindPositivePolynomial flags a polynomial required to be positive.
	KindPositivePolynomial
)

// String returns the human-readable name of the checked quantity.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindContourDeformation:
		return "contour deformation polynomial"
	case KindPositivePolynomial:
		return "positive polynomial"
	default:
		return "unknown"
	}
}
