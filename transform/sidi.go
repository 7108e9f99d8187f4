// SPDX-License-Identifier: MIT

package transform

import (
	"math"

	"github.com/katalvlaran/qmc/registry"
)

// sidi is the trigonometric periodizer phi(t) = I_r(pi t) / I_r(pi) with
// I_r(v) = ∫_0^v sin^r(s) ds, so phi'(t) = pi sin^r(pi t) / I_r(pi).
type sidi struct {
	r    int
	full float64 // I_r(pi)
}

func newSidi(r int) sidi { return sidi{r: r, full: sinPowIntegral(r, math.Pi)} }

func (s sidi) Spec() registry.TransformSpec {
	return registry.TransformSpec{Kind: registry.TransformSidi, Degree1: s.r}
}

func (s sidi) Map(t float64) (float64, float64) {
	v := math.Pi * t
	w := math.Pi * math.Pow(math.Sin(v), float64(s.r)) / s.full

	return clamp(sinPowIntegral(s.r, v) / s.full), w
}

func (s sidi) Apply(x []float64) float64 { return apply(s.Map, x) }

// sinPowIntegral evaluates I_r(v) = ∫_0^v sin^r(s) ds through the reduction
//
//	I_r(v) = -sin^{r-1}(v) cos(v) / r + (r-1)/r I_{r-2}(v)
//
// starting from I_0(v) = v and I_1(v) = 1 - cos(v).
func sinPowIntegral(r int, v float64) float64 {
	sin, cos := math.Sincos(v)

	var acc float64
	start := r % 2
	if start == 0 {
		acc = v
	} else {
		acc = 1 - cos
	}
	for k := start + 2; k <= r; k += 2 {
		acc = -math.Pow(sin, float64(k-1))*cos/float64(k) + float64(k-1)/float64(k)*acc
	}

	return acc
}
