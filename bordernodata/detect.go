package bordernodata

import (
	"context"

	"github.com/hfrcnes/bulldozer/raster"
	"github.com/hfrcnes/bulldozer/strips"
)

// Detect builds the border no-data mask of r. The input raster is never
// mutated; when the sentinel is unset or NaN, NaN folding happens on a
// private copy. An empty raster yields an empty mask and no error.
//
// With Workers ≥ 2 and MethodScan, the row pass and then the column pass run
// strip-parallel; each line is scanned by exactly one goroutine per pass, so
// the shared mask needs no locking. Results are identical to the serial run.
// Complexity: O(H×W) time.
func Detect(r *raster.Raster, opts Options) (*raster.Mask, error) {
	if r == nil {
		return nil, ErrNilRaster
	}
	if opts.Method != MethodScan && opts.Method != MethodFloodFill {
		return nil, ErrUnknownMethod
	}
	mask, err := raster.NewMask(r.Height, r.Width)
	if err != nil {
		return nil, err
	}
	if r.Height == 0 || r.Width == 0 {
		return mask, nil
	}

	data, noData := raster.ResolveSamples(r, opts.NoData, opts.HasNoData)

	switch {
	case opts.Method == MethodFloodFill:
		floodFill(data, mask.Data, r.Height, r.Width, noData)
	case opts.Workers >= 2:
		detectParallel(data, mask.Data, r.Height, r.Width, noData, opts.Workers)
	default:
		BuildMask(data, mask.Data, r.Height, r.Width, noData)
	}
	return mask, nil
}

// InnerMask derives the isolated interior no-data mask: pixels equal to
// noData that the border mask did not reach. border must have r's shape.
// Complexity: O(H×W).
func InnerMask(r *raster.Raster, border *raster.Mask, noData float32) (*raster.Mask, error) {
	if r == nil || border == nil {
		return nil, ErrNilRaster
	}
	if !r.SameShape(border) {
		return nil, ErrShapeMismatch
	}
	inner, err := raster.NewMask(r.Height, r.Width)
	if err != nil {
		return nil, err
	}
	for i, v := range r.Data {
		if v == noData && border.Data[i] == 0 {
			inner.Data[i] = 1
		}
	}
	return inner, nil
}

// ResolveNoData returns the effective sentinel Detect would use for the
// given options: the caller's sentinel when set and comparable, otherwise
// raster.DefaultNoData. Exposed so pipeline callers can report it.
func ResolveNoData(opts Options) float32 {
	return raster.EffectiveNoData(opts.NoData, opts.HasNoData)
}

// detectParallel runs the row pass then the column pass, each strip-parallel.
// The passes are sequential with each other because both write the same mask;
// within a pass every scan line belongs to exactly one strip.
func detectParallel(data []float32, mask []uint8, height, width int, noData float32, workers int) {
	ctx := context.Background()
	// Workers never return errors and the context is never cancelled.
	_ = strips.Run(ctx, height, workers, 0, func(_ context.Context, s strips.Strip) error {
		scanRows(data, mask, width, s.Start, s.End, noData)
		return nil
	})
	_ = strips.Run(ctx, width, workers, 0, func(_ context.Context, s strips.Strip) error {
		scanCols(data, mask, height, width, s.Start, s.End, noData)
		return nil
	})
}
