// SPDX-License-Identifier: MIT

//go:build unix

package errslot_test

import (
	"runtime"
	"sync"
	"testing"

	"github.com/katalvlaran/qmc/errslot"
	"github.com/stretchr/testify/require"
)

// TestSlotLivesOnSharedMapping verifies unix builds map the record.
func TestSlotLivesOnSharedMapping(t *testing.T) {
	s := errslot.New()
	require.True(t, s.Shared())

	// Dropping many slots must let cleanups unmap their pages.
	for i := 0; i < 1000; i++ {
		tmp := errslot.New()
		tmp.Report(errslot.KindPositivePolynomial, int64(i))
	}
	runtime.GC()

	s.Report(errslot.KindContourDeformation, 3)
	require.Error(t, s.Check())
}

// TestManyLiveSlotsStayShared keeps more slots alive than the kernel allows
// mappings per process and checks every record is distinct and shared.
func TestManyLiveSlotsStayShared(t *testing.T) {
	const live = 70_000
	slots := make([]*errslot.Slot, live)
	for i := range slots {
		slots[i] = errslot.New()
		require.True(t, slots[i].Shared(), "slot %d", i)
	}
	for i, s := range slots {
		if i%2 == 0 {
			s.Report(errslot.KindPositivePolynomial, int64(i))
		}
	}
	for i, s := range slots {
		kind, context, ok := s.Snapshot()
		if i%2 == 0 {
			require.True(t, ok, "slot %d", i)
			require.Equal(t, errslot.KindPositivePolynomial, kind)
			require.Equal(t, int64(i), context)
			continue
		}
		require.False(t, ok, "slot %d", i)
	}

	// The runtime must still be able to grow the heap.
	buf := make([]byte, 8<<20)
	buf[len(buf)-1] = 1
	require.Equal(t, byte(1), buf[len(buf)-1])
	runtime.KeepAlive(slots)
}

// TestTemporarySlotsUnderGC churns short-lived slots from several goroutines
// while collections recycle their records.
func TestTemporarySlotsUnderGC(t *testing.T) {
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 20_000; i++ {
				s := errslot.New()
				s.Report(errslot.KindContourDeformation, int64(i))
				_, context, ok := s.Snapshot()
				if !ok || context != int64(i) {
					t.Errorf("slot lost its report: ok=%v context=%d want %d", ok, context, i)
					return
				}
				if i%5000 == 0 {
					runtime.GC()
				}
			}
		}()
	}
	wg.Wait()

	// A fresh slot is always empty, whatever record it reuses.
	runtime.GC()
	require.False(t, errslot.New().Filled())
}
