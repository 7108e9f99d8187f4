// SPDX-License-Identifier: MIT
package errslot_test

import (
	"fmt"

	"github.com/katalvlaran/qmc/errslot"
)

// ExampleSlot shows the report / check / reset cycle.
func ExampleSlot() {
	s := errslot.New()

	// An evaluation detects a bad sign and reports instead of returning.
	s.Report(errslot.KindContourDeformation, 42)
	s.Report(errslot.KindPositivePolynomial, 7) // ignored: first error wins

	fmt.Println(s.Check())
	s.Reset()
	fmt.Println(s.Check())
	// Output:
	// errslot: sign check error: "contour deformation polynomial", signCheckId=42
	// <nil>
}
