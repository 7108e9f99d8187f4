// SPDX-License-Identifier: MIT
package registry_test

import (
	"testing"

	"github.com/katalvlaran/qmc/registry"
	"github.com/stretchr/testify/require"
)

func TestTransformIDLayout(t *testing.T) {
	require.Equal(t, registry.TransformID(1), registry.KorobovID(1, 1))
	require.Equal(t, registry.TransformID(15), registry.KorobovID(3, 3))
	require.Equal(t, registry.TransformID(14), registry.KorobovID(3, 2))
	require.Equal(t, registry.TransformID(36), registry.KorobovID(6, 6))
	require.Equal(t, registry.TransformID(-11), registry.SidiID(1))
	require.Equal(t, registry.TransformID(-16), registry.SidiID(6))

	require.Panics(t, func() { registry.KorobovID(0, 1) })
	require.Panics(t, func() { registry.KorobovID(1, 7) })
	require.Panics(t, func() { registry.SidiID(7) })
}

func TestResolveTransformRoundTrip(t *testing.T) {
	for _, id := range registry.AllTransforms() {
		spec, err := registry.ResolveTransform(id)
		require.NoError(t, err, "id %d", id)
		require.Equal(t, id, spec.ID())

		parsed, err := registry.ParseTransform(spec.String())
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	}
	require.Len(t, registry.AllTransforms(), 2+36+6)
}

func TestResolveTransformSpecs(t *testing.T) {
	cases := []struct {
		id   registry.TransformID
		want registry.TransformSpec
		name string
	}{
		{registry.DefaultTransform, registry.TransformSpec{Kind: registry.TransformKorobov, Degree1: 3, Degree2: 3}, "korobov3x3"},
		{registry.NoTransform, registry.TransformSpec{Kind: registry.TransformNone}, "none"},
		{registry.Baker, registry.TransformSpec{Kind: registry.TransformBaker}, "baker"},
		{registry.KorobovID(3, 2), registry.TransformSpec{Kind: registry.TransformKorobov, Degree1: 3, Degree2: 2}, "korobov3x2"},
		{registry.KorobovID(6, 1), registry.TransformSpec{Kind: registry.TransformKorobov, Degree1: 6, Degree2: 1}, "korobov6x1"},
		{registry.SidiID(4), registry.TransformSpec{Kind: registry.TransformSidi, Degree1: 4}, "sidi4"},
	}
	for _, tc := range cases {
		got, err := registry.ResolveTransform(tc.id)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
		require.Equal(t, tc.name, got.String())
	}
}

func TestResolveTransformUnknown(t *testing.T) {
	for _, id := range []registry.TransformID{37, 100, -3, -10, -17, -99} {
		_, err := registry.ResolveTransform(id)
		require.ErrorIs(t, err, registry.ErrUnknownTransform)
	}
}

func TestParseTransform(t *testing.T) {
	cases := map[string]registry.TransformID{
		"":           registry.DefaultTransform,
		"default":    registry.DefaultTransform,
		"none":       registry.NoTransform,
		"Baker":      registry.Baker,
		"korobov3":   registry.KorobovID(3, 3),
		"korobov4x1": registry.KorobovID(4, 1),
		" sidi2 ":    registry.SidiID(2),
	}
	for name, want := range cases {
		got, err := registry.ParseTransform(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}
	for _, bad := range []string{"korobov7", "korobov0x1", "sidi", "sidi9", "tent", "korobovx"} {
		_, err := registry.ParseTransform(bad)
		require.ErrorIs(t, err, registry.ErrUnknownTransform, bad)
	}
}

func TestFitFunctions(t *testing.T) {
	kind, err := registry.ResolveFitFunction(registry.DefaultFitFunction)
	require.NoError(t, err)
	require.Equal(t, registry.FitNone, kind)

	kind, err = registry.ResolveFitFunction(registry.PolySingular)
	require.NoError(t, err)
	require.Equal(t, registry.FitPolySingular, kind)
	require.Equal(t, "polysingular", kind.String())

	_, err = registry.ResolveFitFunction(5)
	require.ErrorIs(t, err, registry.ErrUnknownFitFunction)

	id, err := registry.ParseFitFunction("PolySingular")
	require.NoError(t, err)
	require.Equal(t, registry.PolySingular, id)
	_, err = registry.ParseFitFunction("spline")
	require.ErrorIs(t, err, registry.ErrUnknownFitFunction)
}

func TestGeneratingVectors(t *testing.T) {
	for _, id := range []registry.GeneratingVectorsID{registry.CBCPTDN1_100, registry.CBCPTDN2_6, registry.CBCPTCFFTW1_6, registry.CBCPTCFFTW2_10} {
		got, err := registry.ResolveGeneratingVectors(id)
		require.NoError(t, err)
		require.Equal(t, id, got)
		require.Positive(t, id.MaxDimension())

		parsed, err := registry.ParseGeneratingVectors(id.String())
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	}
	require.Equal(t, 100, registry.CBCPTDN1_100.MaxDimension())
	require.Equal(t, "default", registry.DefaultGeneratingVectors.String())

	_, err := registry.ResolveGeneratingVectors(9)
	require.ErrorIs(t, err, registry.ErrUnknownGeneratingVectors)
	_, err = registry.ParseGeneratingVectors("sobol")
	require.ErrorIs(t, err, registry.ErrUnknownGeneratingVectors)
}

func TestTargets(t *testing.T) {
	for _, k := range []registry.TargetKind{registry.SingleThread, registry.MultiThread, registry.SingleDevice, registry.MultiDevice} {
		got, err := registry.ParseTarget(k.String())
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
	require.False(t, registry.MultiThread.UsesDevices())
	require.True(t, registry.SingleDevice.UsesDevices())
	require.True(t, registry.MultiDevice.UsesDevices())
	require.False(t, registry.TargetKind(9).Valid())
	require.Equal(t, "unknown", registry.TargetKind(-1).String())

	_, err := registry.ParseTarget("gpu-farm")
	require.ErrorIs(t, err, registry.ErrUnknownTarget)
}

func TestFamily(t *testing.T) {
	all := registry.DefaultFamily()
	for _, id := range registry.AllTransforms() {
		require.True(t, all.SupportsTransform(id))
	}
	require.True(t, all.SupportsTransform(registry.DefaultTransform))
	require.False(t, all.SupportsTransform(99))
	require.Len(t, all.FitFunctions(), 3)

	narrow := registry.NewFamily(
		registry.WithTransforms(registry.Baker, registry.KorobovID(3, 2)),
		registry.WithFitFunctions(registry.DefaultFitFunction, registry.NoFit),
	)
	require.Equal(t, []registry.TransformID{registry.Baker, registry.KorobovID(3, 2)}, narrow.Transforms())
	require.True(t, narrow.SupportsTransform(registry.KorobovID(3, 2)))
	require.False(t, narrow.SupportsTransform(registry.KorobovID(3, 3)))
	// The default resolves to korobov3x3, which this family lacks.
	require.False(t, narrow.SupportsTransform(registry.DefaultTransform))
	require.False(t, narrow.SupportsFitFunction(registry.PolySingular))

	empty := registry.NewFamily(registry.WithTransforms())
	require.Empty(t, empty.Transforms())

	require.Panics(t, func() { registry.WithTransforms(77) })
	require.Panics(t, func() { registry.WithFitFunctions(3) })
}

func TestUnmarshalText(t *testing.T) {
	var tr registry.TransformID
	require.NoError(t, tr.UnmarshalText([]byte("korobov3x2")))
	require.Equal(t, registry.KorobovID(3, 2), tr)
	require.NoError(t, tr.UnmarshalText([]byte("99")))
	require.Equal(t, registry.TransformID(99), tr)
	require.ErrorIs(t, tr.UnmarshalText([]byte("tent")), registry.ErrUnknownTransform)

	var fit registry.FitFunctionID
	require.NoError(t, fit.UnmarshalText([]byte("polysingular")))
	require.Equal(t, registry.PolySingular, fit)
	require.NoError(t, fit.UnmarshalText([]byte("-1")))
	require.Equal(t, registry.NoFit, fit)

	var gv registry.GeneratingVectorsID
	require.NoError(t, gv.UnmarshalText([]byte("cbcpt_cfftw2_10")))
	require.Equal(t, registry.CBCPTCFFTW2_10, gv)

	var target registry.TargetKind
	require.NoError(t, target.UnmarshalText([]byte("multi-device")))
	require.Equal(t, registry.MultiDevice, target)
	require.NoError(t, target.UnmarshalText([]byte("1")))
	require.Equal(t, registry.MultiThread, target)
	require.ErrorIs(t, target.UnmarshalText([]byte("cluster")), registry.ErrUnknownTarget)
}
