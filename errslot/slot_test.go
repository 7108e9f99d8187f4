// SPDX-License-Identifier: MIT
package errslot_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/katalvlaran/qmc/errslot"
	"github.com/stretchr/testify/require"
)

// TestNewSlotIsEmpty verifies a fresh slot checks clean.
func TestNewSlotIsEmpty(t *testing.T) {
	s := errslot.New()
	require.NoError(t, s.Check())
	require.False(t, s.Filled())

	kind, ctx, ok := s.Snapshot()
	require.False(t, ok)
	require.Equal(t, errslot.KindNone, kind)
	require.Zero(t, ctx)
}

// TestReportThenCheck covers both checked quantities and their sentinels.
func TestReportThenCheck(t *testing.T) {
	cases := []struct {
		name     string
		kind     errslot.Kind
		sentinel error
		other    error
		message  string
	}{
		{"contour", errslot.KindContourDeformation, errslot.ErrContourDeformation, errslot.ErrPositivePolynomial, `"contour deformation polynomial", signCheckId=42`},
		{"positive", errslot.KindPositivePolynomial, errslot.ErrPositivePolynomial, errslot.ErrContourDeformation, `"positive polynomial", signCheckId=42`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := errslot.New()
			s.Report(tc.kind, 42)

			err := s.Check()
			require.Error(t, err)
			require.ErrorIs(t, err, errslot.ErrSignCheck)
			require.ErrorIs(t, err, tc.sentinel)
			require.NotErrorIs(t, err, tc.other)
			require.Contains(t, err.Error(), tc.message)

			var sce *errslot.SignCheckError
			require.True(t, errors.As(err, &sce))
			require.Equal(t, tc.kind, sce.Kind)
			require.Equal(t, int64(42), sce.Context)

			// Check does not consume the error.
			require.Error(t, s.Check())
		})
	}
}

// TestReportIsWriteOnce verifies the first report wins.
func TestReportIsWriteOnce(t *testing.T) {
	s := errslot.New()
	s.Report(errslot.KindContourDeformation, 1)
	s.Report(errslot.KindPositivePolynomial, 2)

	kind, ctx, ok := s.Snapshot()
	require.True(t, ok)
	require.Equal(t, errslot.KindContourDeformation, kind)
	require.Equal(t, int64(1), ctx)
}

// TestReportNoneIsIgnored verifies KindNone never latches.
func TestReportNoneIsIgnored(t *testing.T) {
	s := errslot.New()
	s.Report(errslot.KindNone, 9)
	require.NoError(t, s.Check())

	s.Report(errslot.KindPositivePolynomial, 10)
	_, ctx, ok := s.Snapshot()
	require.True(t, ok)
	require.Equal(t, int64(10), ctx)
}

// TestResetClears verifies Reset followed by Check always succeeds.
func TestResetClears(t *testing.T) {
	s := errslot.New()
	s.Reset()
	require.NoError(t, s.Check())

	s.Report(errslot.KindPositivePolynomial, 7)
	require.Error(t, s.Check())
	s.Reset()
	require.NoError(t, s.Check())

	// The slot latches again after a reset.
	s.Report(errslot.KindContourDeformation, 8)
	_, ctx, ok := s.Snapshot()
	require.True(t, ok)
	require.Equal(t, int64(8), ctx)
}

// TestConcurrentReportsLatchExactlyOne races N reporters with distinct ids.
func TestConcurrentReportsLatchExactlyOne(t *testing.T) {
	const n = 256
	s := errslot.New()

	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
	)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(id int64) {
			defer wg.Done()
			<-start
			s.Report(errslot.KindContourDeformation, id)
		}(int64(i))
	}
	close(start)
	wg.Wait()

	var sce *errslot.SignCheckError
	require.ErrorAs(t, s.Check(), &sce)
	require.GreaterOrEqual(t, sce.Context, int64(0))
	require.Less(t, sce.Context, int64(n))

	// The winner is stable across repeated checks.
	for i := 0; i < 10; i++ {
		var again *errslot.SignCheckError
		require.ErrorAs(t, s.Check(), &again)
		require.Equal(t, sce.Context, again.Context)
	}
}

// TestOrderedReportsKeepFirst forces the first reporter to win via a barrier.
func TestOrderedReportsKeepFirst(t *testing.T) {
	s := errslot.New()
	first := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.Report(errslot.KindContourDeformation, 42)
		close(first)
	}()
	go func() {
		defer wg.Done()
		<-first
		s.Report(errslot.KindPositivePolynomial, 7)
	}()
	wg.Wait()

	var sce *errslot.SignCheckError
	require.ErrorAs(t, s.Check(), &sce)
	require.Equal(t, int64(42), sce.Context)
	require.Equal(t, errslot.KindContourDeformation, sce.Kind)
}

// TestKindString pins the names used in error messages.
func TestKindString(t *testing.T) {
	require.Equal(t, "none", errslot.KindNone.String())
	require.Equal(t, "contour deformation polynomial", errslot.KindContourDeformation.String())
	require.Equal(t, "positive polynomial", errslot.KindPositivePolynomial.String())
	require.Equal(t, "unknown", errslot.Kind(99).String())
}
