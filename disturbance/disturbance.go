package disturbance

import (
	"context"
	"math"

	"github.com/hfrcnes/bulldozer/raster"
	"github.com/hfrcnes/bulldozer/strips"
)

// BuildMask builds the disturbed-areas mask of r: a valid pixel is disturbed
// when |step| to any evaluated valid neighbor exceeds opts.SlopeThreshold.
// The input raster is never mutated. An empty raster yields an empty mask.
//
// With Workers ≥ 2 the rows are processed strip-parallel with a one-row
// stable margin, bit-identical to the serial run since each pixel's result
// depends only on its immediate neighborhood.
// Complexity: O(H×W×d) time, d = 4 or 8.
func BuildMask(r *raster.Raster, opts Options) (*raster.Mask, error) {
	if r == nil {
		return nil, ErrNilRaster
	}
	t := float64(opts.SlopeThreshold)
	if !(t > 0) || math.IsInf(t, 1) {
		return nil, ErrInvalidThreshold
	}
	if opts.Connexity != Conn4 && opts.Connexity != Conn8 {
		return nil, ErrUnknownConnexity
	}
	mask, err := raster.NewMask(r.Height, r.Width)
	if err != nil {
		return nil, err
	}
	if r.Height == 0 || r.Width == 0 {
		return mask, nil
	}

	data, noData := raster.ResolveSamples(r, opts.NoData, opts.HasNoData)
	offs := opts.Connexity.offsets()

	if opts.Workers >= 2 {
		// A worker writes only its owned rows; the margin rows are read-only.
		_ = strips.Run(context.Background(), r.Height, opts.Workers, 1,
			func(_ context.Context, s strips.Strip) error {
				markDisturbed(data, mask.Data, r.Height, r.Width, s.Start, s.End, noData, opts.SlopeThreshold, offs)
				return nil
			})
	} else {
		markDisturbed(data, mask.Data, r.Height, r.Width, 0, r.Height, noData, opts.SlopeThreshold, offs)
	}
	return mask, nil
}

// markDisturbed evaluates rows [r0, r1).
func markDisturbed(data []float32, mask []uint8, height, width, r0, r1 int, noData, threshold float32, offs [][2]int) {
	for row := r0; row < r1; row++ {
		for col := 0; col < width; col++ {
			idx := row*width + col
			v := data[idx]
			if v == noData {
				continue
			}
			for _, d := range offs {
				nr, nc := row+d[0], col+d[1]
				if nr < 0 || nr >= height || nc < 0 || nc >= width {
					continue
				}
				n := data[nr*width+nc]
				if n == noData {
					continue
				}
				if abs32(v-n) > threshold {
					mask[idx] = 1
					break
				}
			}
		}
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
