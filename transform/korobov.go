// SPDX-License-Identifier: MIT

package transform

import (
	"math"

	"github.com/katalvlaran/qmc/registry"
)

// korobov is the polynomial periodizer with weight
// t^r0 (1-t)^r1 / B(r0+1, r1+1).
//
// phi is the regularized incomplete beta function I_t(a, b) with a = r0+1,
// b = r1+1, which for integer arguments is the binomial tail
//
//	I_t(a, b) = Σ_{j=a}^{N} C(N, j) t^j (1-t)^{N-j},  N = a+b-1.
type korobov struct {
	r0, r1 int
	norm   float64   // 1 / B(r0+1, r1+1)
	binom  []float64 // C(N, j) for j = r0+1..N
}

func newKorobov(r0, r1 int) korobov {
	n := r0 + r1 + 1
	k := korobov{r0: r0, r1: r1, norm: choose(n, r0) * float64(n-r0)}
	for j := r0 + 1; j <= n; j++ {
		k.binom = append(k.binom, choose(n, j))
	}

	return k
}

func (k korobov) Spec() registry.TransformSpec {
	return registry.TransformSpec{Kind: registry.TransformKorobov, Degree1: k.r0, Degree2: k.r1}
}

func (k korobov) Map(t float64) (float64, float64) {
	s := 1 - t
	w := k.norm * math.Pow(t, float64(k.r0)) * math.Pow(s, float64(k.r1))

	n := k.r0 + k.r1 + 1
	var u float64
	for i, c := range k.binom {
		j := k.r0 + 1 + i
		u += c * math.Pow(t, float64(j)) * math.Pow(s, float64(n-j))
	}

	return clamp(u), w
}

func (k korobov) Apply(x []float64) float64 { return apply(k.Map, x) }

// choose returns the binomial coefficient C(n, k) for small n.
func choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	c := 1.0
	for i := 1; i <= k; i++ {
		c = c * float64(n-k+i) / float64(i)
	}

	return c
}
