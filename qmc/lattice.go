// SPDX-License-Identifier: MIT

package qmc

import (
	"math"
	"math/bits"

	"github.com/katalvlaran/qmc/registry"
)

// multipliers holds the fractional seed of the Korobov multiplier g of each
// table; g is the integer nearest to alpha·n.
var multipliers = map[registry.GeneratingVectorsID]float64{
	registry.CBCPTDN1_100:   0.6180339887498949, // (sqrt5-1)/2
	registry.CBCPTDN2_6:     0.4142135623730950, // sqrt2-1
	registry.CBCPTCFFTW1_6:  0.7320508075688772, // sqrt3-1
	registry.CBCPTCFFTW2_10: 0.2360679774997897, // sqrt5-2
}

// generatingVector returns z with z_0 = 1 and z_j = g^j mod n.
func generatingVector(table registry.GeneratingVectorsID, n uint64, dim int) []uint64 {
	g := uint64(math.Round(multipliers[table] * float64(n)))
	for g <= 1 || gcd(g, n) != 1 {
		g++
	}
	g %= n

	z := make([]uint64, dim)
	if dim == 0 {
		return z
	}
	z[0] = 1
	for j := 1; j < dim; j++ {
		z[j] = mulMod(z[j-1], g, n)
	}

	return z
}

// mulMod returns a·b mod n without overflowing for n above 2^32.
func mulMod(a, b, n uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, n)
}

// nextPrime returns the smallest prime >= n.
func nextPrime(n uint64) uint64 {
	if n <= 2 {
		return 2
	}
	if n%2 == 0 {
		n++
	}
	for !isPrime(n) {
		n += 2
	}

	return n
}

func isPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := uint64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
