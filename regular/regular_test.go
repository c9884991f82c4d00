package regular_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/hfrcnes/bulldozer/disturbance"
	"github.com/hfrcnes/bulldozer/raster"
	"github.com/hfrcnes/bulldozer/regular"
)

const nd = float32(-32768)

// TestBuildMask_Validation verifies argument sentinels.
func TestBuildMask_Validation(t *testing.T) {
	_, err := regular.BuildMask(nil, regular.DefaultOptions())
	require.ErrorIs(t, err, regular.ErrNilRaster)

	r, _ := raster.From2D([][]float32{{1}})
	opts := regular.DefaultOptions()
	opts.SlopeThreshold = float32(math.NaN())
	_, err = regular.BuildMask(r, opts)
	require.ErrorIs(t, err, regular.ErrInvalidThreshold)
}

// TestBuildMask_FlatIsRegular verifies gentle terrain is fully regular.
func TestBuildMask_FlatIsRegular(t *testing.T) {
	r, _ := raster.From2D([][]float32{
		{10.0, 10.4, 10.8},
		{10.2, 10.6, 11.0},
	})
	m, err := regular.BuildMask(r, regular.DefaultOptions().WithNoData(nd))
	require.NoError(t, err)
	require.Equal(t, len(r.Data), m.CountNonzero())
}

// TestBuildMask_CliffEdgesIrregular verifies pixels on either side of a
// sharp step lose their regular flag.
func TestBuildMask_CliffEdgesIrregular(t *testing.T) {
	r, _ := raster.From2D([][]float32{
		{10, 10, 50, 50},
		{10, 10, 50, 50},
	})
	m, err := regular.BuildMask(r, regular.DefaultOptions().WithNoData(nd))
	require.NoError(t, err)
	want := [][]bool{
		{true, false, false, true},
		{true, false, false, true},
	}
	if diff := cmp.Diff(want, m.Bool2D()); diff != "" {
		t.Errorf("mask mismatch (-want +got):\n%s", diff)
	}
}

// TestBuildMask_NoDataExcluded verifies sentinel pixels are neither regular
// nor do they break their neighbors' regularity.
func TestBuildMask_NoDataExcluded(t *testing.T) {
	r, _ := raster.From2D([][]float32{
		{10, nd, 10},
	})
	m, err := regular.BuildMask(r, regular.DefaultOptions().WithNoData(nd))
	require.NoError(t, err)
	require.True(t, m.Get(0, 0))
	require.False(t, m.Get(0, 1))
	require.True(t, m.Get(0, 2))
}

// TestBuildMask_ComplementOfDisturbanceOnValidPixels verifies the Conn4
// relationship: on valid pixels, regular is exactly not-disturbed.
func TestBuildMask_ComplementOfDisturbanceOnValidPixels(t *testing.T) {
	const h, w = 61, 53
	rng := rand.New(rand.NewSource(11))
	r, err := raster.New(h, w)
	require.NoError(t, err)
	for i := range r.Data {
		if rng.Float64() < 0.1 {
			r.Data[i] = nd
		} else {
			r.Data[i] = rng.Float32() * 8
		}
	}

	reg, err := regular.BuildMask(r, regular.DefaultOptions().WithNoData(nd))
	require.NoError(t, err)
	dist, err := disturbance.BuildMask(r, disturbance.DefaultOptions().WithNoData(nd))
	require.NoError(t, err)

	for i, v := range r.Data {
		if v == nd {
			require.Zerof(t, reg.Data[i], "no-data pixel %d marked regular", i)
			require.Zerof(t, dist.Data[i], "no-data pixel %d marked disturbed", i)
			continue
		}
		require.NotEqualf(t, reg.Data[i], dist.Data[i],
			"valid pixel %d: regular=%d disturbed=%d", i, reg.Data[i], dist.Data[i])
	}
}

// TestBuildMask_ParallelMatchesSerial verifies strip execution.
func TestBuildMask_ParallelMatchesSerial(t *testing.T) {
	const h, w = 89, 144
	rng := rand.New(rand.NewSource(3))
	r, err := raster.New(h, w)
	require.NoError(t, err)
	for i := range r.Data {
		r.Data[i] = rng.Float32() * 6
	}

	serial := regular.DefaultOptions().WithNoData(nd)
	parallel := serial
	parallel.Workers = 6

	ms, err := regular.BuildMask(r, serial)
	require.NoError(t, err)
	mp, err := regular.BuildMask(r, parallel)
	require.NoError(t, err)
	require.Equal(t, ms.Data, mp.Data)
}
