// SPDX-License-Identifier: MIT

package qmc

import (
	"context"
	"math/big"
	"runtime"
	"testing"

	"github.com/katalvlaran/qmc/errslot"
	"github.com/katalvlaran/qmc/registry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

type linear struct{ slot *errslot.Slot }

func (linear) Dimension() int           { return 2 }
func (linear) Call(x []float64) float64 { return x[0] + x[1] }
func (l linear) Slot() *errslot.Slot    { return l.slot }

func TestNextPrime(t *testing.T) {
	cases := map[uint64]uint64{0: 2, 2: 2, 3: 3, 14: 17, 100: 101, 1021: 1021, 2042: 2053}
	for in, want := range cases {
		require.Equal(t, want, nextPrime(in), "nextPrime(%d)", in)
	}
}

func TestGeneratingVector(t *testing.T) {
	for table := range multipliers {
		z := generatingVector(table, 1021, 10)
		require.Len(t, z, 10)
		require.Equal(t, uint64(1), z[0])
		for _, zj := range z {
			require.Less(t, zj, uint64(1021))
			require.Equal(t, uint64(1), gcd(zj, 1021))
		}
	}
	require.Empty(t, generatingVector(registry.CBCPTDN1_100, 101, 0))
}

func TestGeneratingVectorLargeLattice(t *testing.T) {
	n := nextPrime(20_000_000_000)
	require.Greater(t, n, uint64(1)<<32)
	z := generatingVector(registry.CBCPTDN1_100, n, 4)

	bn := new(big.Int).SetUint64(n)
	g := new(big.Int).SetUint64(z[1])
	want := big.NewInt(1)
	for j := 1; j < len(z); j++ {
		want.Mul(want, g).Mod(want, bn)
		require.Equal(t, want.Uint64(), z[j], "z[%d]", j)
	}

	i := n - 1
	prod := new(big.Int).Mul(new(big.Int).SetUint64(i), new(big.Int).SetUint64(z[3]))
	require.Equal(t, prod.Mod(prod, bn).Uint64(), mulMod(i, z[3], n))
}

func TestHostLanesFromSettings(t *testing.T) {
	s := DefaultSettings()
	s.CUDABlocks, s.CUDAThreadsPerBlock = 1, 1
	require.Equal(t, 1, hostLanes(s))

	s.CUDABlocks, s.CUDAThreadsPerBlock = DefaultCUDABlocks, DefaultCUDAThreadsPerBlock
	require.Equal(t, runtime.NumCPU(), hostLanes(s))

	s.CUDABlocks, s.CUDAThreadsPerBlock = 1, 1
	s.Devices = []int{0}
	q, err := New[float64](registry.TransformSpec{Kind: registry.TransformNone}, registry.FitNone, registry.SingleDevice, WithSettings(s))
	require.NoError(t, err)
	acc, ok := q.exec.(deviceExecutor).acc.(HostAccelerator)
	require.True(t, ok)
	require.Equal(t, 1, acc.Lanes)
}

func TestNumberConversions(t *testing.T) {
	type named complex64
	require.Equal(t, complex(1.5, 0), toComplex(float32(1.5)))
	require.Equal(t, complex(1, 2), toComplex(named(complex(1, 2))))
	require.Equal(t, named(complex(3, 4)), fromComplex[named](complex(3, 4)))
	require.Equal(t, 3.0, fromComplex[float64](complex(3, 4)))
}

func TestMetricsCount(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	s := DefaultSettings()
	s.MinN, s.MinM = 101, 4
	q, err := New[float64](registry.TransformSpec{Kind: registry.TransformNone}, registry.FitNone, registry.SingleThread,
		WithSettings(s), WithMetrics(m))
	require.NoError(t, err)

	res, err := q.Integrate(context.Background(), linear{slot: errslot.New()})
	require.NoError(t, err)
	require.Equal(t, float64(res.Evaluations), testutil.ToFloat64(m.evaluations.WithLabelValues("single-thread")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("single-thread", outcomeConverged)))

	bad := linear{slot: errslot.New()}
	bad.slot.Report(errslot.KindContourDeformation, 3)
	_, err = q.Integrate(context.Background(), bad)
	require.ErrorIs(t, err, ErrUnhandledError)
	require.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("single-thread", outcomeRejected)))

	m.ObserveDispatch(q.Transform(), q.FitFunction(), q.Target())
	require.Equal(t, 1.0, testutil.ToFloat64(m.dispatches.WithLabelValues("none", "none", "single-thread")))

	var nilMetrics *Metrics
	require.NotPanics(t, func() { nilMetrics.ObserveDispatch(q.Transform(), q.FitFunction(), q.Target()) })
}

func TestSignCheckCounted(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	s := DefaultSettings()
	s.MinN, s.MinM = 101, 4
	q, err := New[float64](registry.TransformSpec{Kind: registry.TransformBaker}, registry.FitNone, registry.MultiThread,
		WithSettings(s), WithMetrics(m))
	require.NoError(t, err)

	slot := errslot.New()
	f := reporting{slot: slot}
	_, err = q.Integrate(context.Background(), f)
	require.ErrorIs(t, err, errslot.ErrContourDeformation)
	require.Equal(t, 1.0, testutil.ToFloat64(m.signChecks.WithLabelValues(errslot.KindContourDeformation.String())))
}

type reporting struct{ slot *errslot.Slot }

func (reporting) Dimension() int { return 1 }
func (r reporting) Call(x []float64) float64 {
	if x[0] > 0.5 {
		r.slot.Report(errslot.KindContourDeformation, 11)
	}
	return x[0]
}
func (r reporting) Slot() *errslot.Slot { return r.slot }
