package regular

import (
	"context"
	"errors"
	"math"

	"github.com/hfrcnes/bulldozer/raster"
	"github.com/hfrcnes/bulldozer/strips"
)

var (
	// ErrNilRaster indicates a nil input raster.
	ErrNilRaster = errors.New("regular: raster must not be nil")
	// ErrInvalidThreshold indicates a non-positive or non-finite slope threshold.
	ErrInvalidThreshold = errors.New("regular: slope threshold must be positive and finite")
)

// Options configures BuildMask.
type Options struct {
	// SlopeThreshold is the largest height step a regular pixel may show to
	// any orthogonal valid neighbor.
	SlopeThreshold float32
	// NoData is the sentinel marking invalid samples; honored only when
	// HasNoData is true.
	NoData float32
	// HasNoData states whether NoData carries a caller-chosen sentinel.
	HasNoData bool
	// Workers bounds strip parallelism; values below 2 run serially.
	Workers int
}

// DefaultOptions returns Options with SlopeThreshold 2.0, no sentinel set,
// and serial execution.
func DefaultOptions() Options {
	return Options{SlopeThreshold: 2.0, Workers: 1}
}

// WithNoData returns a copy of o with the sentinel set explicitly.
func (o Options) WithNoData(v float32) Options {
	o.NoData = v
	o.HasNoData = true
	return o
}

// BuildMask builds the regular-areas mask of r: a pixel is regular when it is
// valid and every step to an orthogonal, in-bounds, valid neighbor is at most
// opts.SlopeThreshold. A valid pixel with no valid neighbor is regular. The
// input raster is never mutated; an empty raster yields an empty mask.
//
// With Workers ≥ 2 the rows run strip-parallel with a one-row margin,
// bit-identical to the serial run.
// Complexity: O(H×W) time.
func BuildMask(r *raster.Raster, opts Options) (*raster.Mask, error) {
	if r == nil {
		return nil, ErrNilRaster
	}
	t := float64(opts.SlopeThreshold)
	if !(t > 0) || math.IsInf(t, 1) {
		return nil, ErrInvalidThreshold
	}
	mask, err := raster.NewMask(r.Height, r.Width)
	if err != nil {
		return nil, err
	}
	if r.Height == 0 || r.Width == 0 {
		return mask, nil
	}

	data, noData := raster.ResolveSamples(r, opts.NoData, opts.HasNoData)

	if opts.Workers >= 2 {
		_ = strips.Run(context.Background(), r.Height, opts.Workers, 1,
			func(_ context.Context, s strips.Strip) error {
				markRegular(data, mask.Data, r.Height, r.Width, s.Start, s.End, noData, opts.SlopeThreshold)
				return nil
			})
	} else {
		markRegular(data, mask.Data, r.Height, r.Width, 0, r.Height, noData, opts.SlopeThreshold)
	}
	return mask, nil
}

var orthogonal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// markRegular evaluates rows [r0, r1).
func markRegular(data []float32, mask []uint8, height, width, r0, r1 int, noData, threshold float32) {
	for row := r0; row < r1; row++ {
		for col := 0; col < width; col++ {
			idx := row*width + col
			v := data[idx]
			if v == noData {
				continue
			}
			regular := true
			for _, d := range orthogonal {
				nr, nc := row+d[0], col+d[1]
				if nr < 0 || nr >= height || nc < 0 || nc >= width {
					continue
				}
				n := data[nr*width+nc]
				if n == noData {
					continue
				}
				diff := v - n
				if diff < 0 {
					diff = -diff
				}
				if diff > threshold {
					regular = false
					break
				}
			}
			if regular {
				mask[idx] = 1
			}
		}
	}
}
