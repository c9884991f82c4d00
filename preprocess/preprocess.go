package preprocess

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hfrcnes/bulldozer/bordernodata"
	"github.com/hfrcnes/bulldozer/disturbance"
	"github.com/hfrcnes/bulldozer/raster"
)

// Run executes the full preprocessing chain on dsm and returns every
// artifact. The input raster is never mutated. An empty DSM yields empty
// artifacts and no error. Cancellation is checked between stages.
// Complexity: O(H×W) per stage.
func Run(ctx context.Context, dsm *raster.Raster, opts Options) (*Result, error) {
	if dsm == nil {
		return nil, ErrNilRaster
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(discardHandler{})
	}
	if opts.SlopeThreshold == 0 {
		opts.SlopeThreshold = disturbance.DefaultOptions().SlopeThreshold
	}

	log.Debug("preprocess: starting", "height", dsm.Height, "width", dsm.Width)

	// Stage 1-2: private copy, sentinel resolution, NaN folding.
	work := dsm.Clone()
	noData := raster.EffectiveNoData(opts.NoData, opts.HasNoData)
	if folded := raster.SanitizeNaN(work, noData); folded > 0 {
		log.Info("preprocess: folded NaN samples into sentinel", "count", folded, "nodata", noData)
	}

	// Stage 3: dynamic no-data encodings (e.g. MicMac DSMs).
	if opts.MinValidHeight != nil {
		minValid := *opts.MinValidHeight
		clamped := 0
		for i, v := range work.Data {
			if v < minValid {
				work.Data[i] = noData
				clamped++
			}
		}
		log.Info("preprocess: clamped sub-minimum samples", "min_valid_height", minValid, "count", clamped)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 4: border and interior no-data masks.
	log.Debug("preprocess: building border no-data mask")
	bOpts := bordernodata.DefaultOptions().WithNoData(noData)
	bOpts.Workers = opts.Workers
	border, err := bordernodata.Detect(work, bOpts)
	if err != nil {
		return nil, fmt.Errorf("preprocess: border no-data stage: %w", err)
	}
	inner, err := bordernodata.InnerMask(work, border, noData)
	if err != nil {
		return nil, fmt.Errorf("preprocess: inner no-data stage: %w", err)
	}
	log.Info("preprocess: no-data masks built",
		"border_pixels", border.CountNonzero(), "inner_pixels", inner.CountNonzero())
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 5: disturbed areas.
	log.Debug("preprocess: building disturbance mask")
	dOpts := disturbance.DefaultOptions().WithNoData(noData)
	dOpts.SlopeThreshold = opts.SlopeThreshold
	dOpts.Connexity = opts.Connexity
	dOpts.Workers = opts.Workers
	disturbed, err := disturbance.BuildMask(work, dOpts)
	if err != nil {
		return nil, fmt.Errorf("preprocess: disturbance stage: %w", err)
	}
	log.Info("preprocess: disturbance mask built", "disturbed_pixels", disturbed.CountNonzero())
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	// Disturbed samples are untrustworthy: downstream interpolates them.
	for i, v := range disturbed.Data {
		if v != 0 {
			work.Data[i] = noData
		}
	}

	// Stage 6: merged quality mask.
	quality, err := MergeQuality(border, inner, disturbed)
	if err != nil {
		return nil, fmt.Errorf("preprocess: quality merge: %w", err)
	}

	log.Debug("preprocess: done")
	return &Result{
		Preprocessed: work,
		Border:       border,
		Inner:        inner,
		Disturbed:    disturbed,
		Quality:      quality,
		NoData:       noData,
	}, nil
}

// MergeQuality folds the three binary masks into one code mask. Overlapping
// flags resolve by priority: border > inner > disturbed.
// Complexity: O(H×W).
func MergeQuality(border, inner, disturbed *raster.Mask) (*raster.Mask, error) {
	if border == nil || inner == nil || disturbed == nil {
		return nil, ErrNilRaster
	}
	if border.Height != inner.Height || border.Width != inner.Width ||
		border.Height != disturbed.Height || border.Width != disturbed.Width {
		return nil, raster.ErrShapeMismatch
	}
	quality, err := raster.NewMask(border.Height, border.Width)
	if err != nil {
		return nil, err
	}
	// Ascending priority: later writes win.
	for i, v := range disturbed.Data {
		if v != 0 {
			quality.Data[i] = QualityDisturbed
		}
	}
	for i, v := range inner.Data {
		if v != 0 {
			quality.Data[i] = QualityInnerNodata
		}
	}
	for i, v := range border.Data {
		if v != 0 {
			quality.Data[i] = QualityBorderNodata
		}
	}
	return quality, nil
}
