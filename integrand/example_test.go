// SPDX-License-Identifier: MIT
package integrand_test

import (
	"fmt"

	"github.com/katalvlaran/qmc/errslot"
	"github.com/katalvlaran/qmc/integrand"
)

// ExampleAdd builds a small expression tree and polls its slot afterwards.
func ExampleAdd() {
	three := integrand.New(2, func([]float64, *errslot.Slot) float64 { return 3 })
	four := integrand.New(2, func(x []float64, s *errslot.Slot) float64 {
		if x[1] < 0 {
			s.Report(errslot.KindPositivePolynomial, 7)
		}
		return 4
	})

	sum := integrand.Add(three, four)
	prod := integrand.Mul(three, four)
	fmt.Println(sum.Dimension(), sum.Call([]float64{0.1, 0.2}), prod.Call([]float64{0.1, 0.2}))

	sum.Call([]float64{0.1, -1})
	fmt.Println(sum.Check())
	// Output:
	// 2 7 12
	// errslot: sign check error: "positive polynomial", signCheckId=7
}
