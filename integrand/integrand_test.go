// SPDX-License-Identifier: MIT
package integrand_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/qmc/errslot"
	"github.com/katalvlaran/qmc/integrand"
	"github.com/stretchr/testify/require"
)

// shift returns an int integrand x -> x+k over dim variables.
func shift(dim, k int) *integrand.Integrand[int, int] {
	return integrand.New(dim, func(x int, _ *errslot.Slot) int { return x + k })
}

// constant returns a float64 integrand over dim variables returning v.
func constant(dim int, v float64) *integrand.Integrand[float64, []float64] {
	return integrand.New(dim, func([]float64, *errslot.Slot) float64 { return v })
}

func TestAccessors(t *testing.T) {
	ic := shift(3, 2)
	require.Equal(t, 3, ic.Dimension())
	require.Equal(t, 12, ic.Call(10))
	require.Equal(t, integrand.DefaultName, ic.Name())
	require.NotNil(t, ic.Slot())

	named := ic.WithName("sector_1")
	require.Equal(t, "sector_1", named.Name())
	require.Same(t, ic.Slot(), named.Slot())
}

func TestNewPanicsOnProgrammerError(t *testing.T) {
	require.Panics(t, func() { integrand.New[int, int](-1, func(int, *errslot.Slot) int { return 0 }) })
	require.Panics(t, func() { integrand.New[int, int](1, nil) })
}

func TestZero(t *testing.T) {
	ic := integrand.Zero[int, int]()
	require.Equal(t, 0, ic.Dimension())
	for i := 0; i < 10; i++ {
		require.Equal(t, 0, ic.Call(i))
	}
}

func TestFreshSlotPerConstructor(t *testing.T) {
	a, b := shift(1, 1), shift(1, 1)
	require.NotSame(t, a.Slot(), b.Slot())
	require.Same(t, a.Slot(), a.Clone().Slot())
}

func TestBinaryOperators(t *testing.T) {
	cases := []struct {
		name string
		op   func(a, b *integrand.Integrand[int, int]) *integrand.Integrand[int, int]
		want func(x int) int
	}{
		{"add", integrand.Add[int, int], func(x int) int { return (x + 2) + (x + 5) }},
		{"sub", integrand.Sub[int, int], func(x int) int { return (x + 2) - (x + 5) }},
		{"mul", integrand.Mul[int, int], func(x int) int { return (x + 2) * (x + 5) }},
		{"div", integrand.Div[int, int], func(x int) int { return (x + 2) / (x + 5) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := shift(3, 2), shift(4, 5)
			c := tc.op(a, b)
			require.Equal(t, 4, c.Dimension())
			for _, x := range []int{1, 10, 100} {
				require.Equal(t, tc.want(x), c.Call(x))
			}
			require.Same(t, a.Slot(), c.Slot())
		})
	}

	// b / a mirrors the integer-division expectations of the container tests.
	d := integrand.Div(shift(4, 5), shift(3, 2))
	require.Equal(t, 2, d.Call(1))
	require.Equal(t, 1, d.Call(10))
}

func TestCompoundAssignment(t *testing.T) {
	cases := []struct {
		name   string
		assign func(a, b *integrand.Integrand[int, int])
		want   int
	}{
		{"+=", func(a, b *integrand.Integrand[int, int]) { a.AddAssign(b) }, 12 + 15},
		{"-=", func(a, b *integrand.Integrand[int, int]) { a.SubAssign(b) }, 12 - 15},
		{"*=", func(a, b *integrand.Integrand[int, int]) { a.MulAssign(b) }, 12 * 15},
		{"/=", func(a, b *integrand.Integrand[int, int]) { b.DivAssign(a); *a = *b }, 15 / 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := shift(3, 2), shift(4, 5)
			tc.assign(a, b)
			require.Equal(t, 4, a.Dimension())
			require.Equal(t, tc.want, a.Call(10))
		})
	}
}

func TestSelfAssignment(t *testing.T) {
	a := shift(2, 1)
	a.AddAssign(a)
	require.Equal(t, 22, a.Call(10))
}

func TestUnaryOperators(t *testing.T) {
	sq := integrand.New(1, func(d float64, _ *errslot.Slot) float64 { return d * d })

	plus := integrand.Plus(sq)
	require.Equal(t, 1, plus.Dimension())
	require.InDelta(t, 9, plus.Call(3), 1e-12)
	require.InDelta(t, 16, plus.Call(4), 1e-12)

	neg := integrand.Neg(sq)
	require.Equal(t, 1, neg.Dimension())
	require.InDelta(t, -9, neg.Call(3), 1e-12)
	require.InDelta(t, -16, neg.Call(4), 1e-12)
	require.Same(t, sq.Slot(), neg.Slot())
}

func TestConstantScenario(t *testing.T) {
	a, b := constant(2, 3.0), constant(2, 4.0)
	for _, x := range [][]float64{{0, 0}, {0.25, 0.75}, {1, 1}} {
		require.Equal(t, 7.0, integrand.Add(a, b).Call(x))
		require.Equal(t, 12.0, integrand.Mul(a, b).Call(x))
	}
}

func TestDimensionIsMax(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {0, 3}, {5, 2}, {4, 4}} {
		c := integrand.Sub(constant(dims[0], 1), constant(dims[1], 1))
		require.Equal(t, max(dims[0], dims[1]), c.Dimension())
	}
}

func TestDivisionByZeroFollowsFloatSemantics(t *testing.T) {
	one, zero := constant(1, 1), constant(1, 0)
	require.True(t, math.IsInf(integrand.Div(one, zero).Call([]float64{0.5}), 1))
	require.True(t, math.IsNaN(integrand.Div(zero, zero).Call([]float64{0.5})))
}

func TestSum(t *testing.T) {
	ics := []*integrand.Integrand[int, int]{shift(3, 2), shift(4, 5), shift(5, 7)}
	s := integrand.Sum(ics...)
	require.Equal(t, 5, s.Dimension())
	require.Equal(t, 10+2+10+5+10+7, s.Call(10))
	require.Same(t, ics[0].Slot(), s.Slot())

	empty := integrand.Sum[int, int]()
	require.Equal(t, 0, empty.Dimension())
	require.Equal(t, 0, empty.Call(3))

	// Folding from the zero integrand gives the same values.
	acc := integrand.Zero[int, int]()
	for _, ic := range ics {
		acc = integrand.Add(acc, ic)
	}
	require.Equal(t, s.Call(10), acc.Call(10))
}

func TestComplexToReal(t *testing.T) {
	ic := integrand.New(1, func(i int, _ *errslot.Slot) complex128 {
		return complex(float64(i+2), float64(i-1))
	})

	re := integrand.Real(ic)
	require.InDelta(t, 7.0, re.Call(5), 1e-12)
	require.InDelta(t, -2.0, re.Call(-4), 1e-12)
	require.Same(t, ic.Slot(), re.Slot())

	im := integrand.Imag(ic)
	require.InDelta(t, 4.0, im.Call(5), 1e-12)
	require.InDelta(t, -5.0, im.Call(-4), 1e-12)

	ic64 := integrand.New(1, func(i int, _ *errslot.Slot) complex64 { return complex64(complex(float32(i), 1)) })
	require.Equal(t, float32(3), integrand.Real64(ic64).Call(3))
	require.Equal(t, float32(1), integrand.Imag64(ic64).Call(3))

	abs := integrand.Map(ic, func(v complex128) float64 { return cmplx.Abs(v) })
	require.InDelta(t, 5.0, abs.Call(2), 1e-12)
}

// TestErrorPropagatesThroughTree verifies a report deep in a composite lands
// in the slot checked at the root.
func TestErrorPropagatesThroughTree(t *testing.T) {
	healthy := constant(2, 1)
	failing := integrand.New(2, func(x []float64, s *errslot.Slot) float64 {
		if x[0] > 0.5 {
			s.Report(errslot.KindContourDeformation, 42)
		}
		return 2
	})

	tree := integrand.Mul(integrand.Add(healthy, constant(1, 3)), integrand.Neg(failing))
	require.NoError(t, tree.Check())

	require.Equal(t, -8.0, tree.Call([]float64{0.1, 0.1}))
	require.NoError(t, tree.Check())

	require.Equal(t, -8.0, tree.Call([]float64{0.9, 0.1}))
	err := tree.Check()
	require.ErrorIs(t, err, errslot.ErrContourDeformation)
	require.Contains(t, err.Error(), "signCheckId=42")

	// The tree shares the left-most operand's slot.
	require.Error(t, healthy.Check())

	tree.Reset()
	require.NoError(t, tree.Check())
}
