package preprocess

import (
	"errors"
	"log/slog"

	"github.com/hfrcnes/bulldozer/disturbance"
	"github.com/hfrcnes/bulldozer/raster"
)

// ErrNilRaster indicates Run received a nil DSM.
var ErrNilRaster = errors.New("preprocess: dsm must not be nil")

// Quality mask codes. Priority when flags overlap: border > inner > disturbed.
const (
	// QualityValid marks a trusted sample.
	QualityValid uint8 = 0
	// QualityInnerNodata marks an interior no-data dropout.
	QualityInnerNodata uint8 = 1
	// QualityDisturbed marks a disturbed sample (water, correlation failure).
	QualityDisturbed uint8 = 2
	// QualityBorderNodata marks acquisition-footprint border padding.
	QualityBorderNodata uint8 = 3
)

// Options configures Run.
type Options struct {
	// NoData is the DSM sentinel; honored only when HasNoData is true.
	// Unset (or NaN) selects raster.DefaultNoData with NaN folding.
	NoData float32
	// HasNoData states whether NoData carries a caller-chosen sentinel.
	HasNoData bool
	// MinValidHeight, when non-nil, clamps every sample strictly below it to
	// the sentinel before detection. Covers DSMs whose producers encode
	// no-data as arbitrarily low heights.
	MinValidHeight *float32
	// SlopeThreshold bounds the undisturbed height step. Zero selects the
	// disturbance default.
	SlopeThreshold float32
	// Connexity picks the disturbance neighborhood.
	Connexity disturbance.Connexity
	// Workers bounds strip parallelism across all stages.
	Workers int
	// Logger receives stage progress; nil disables logging.
	Logger *slog.Logger
}

// DefaultOptions returns Options with no sentinel set, no height clamp,
// the disturbance slope default, Conn4, and serial execution.
func DefaultOptions() Options {
	return Options{
		SlopeThreshold: disturbance.DefaultOptions().SlopeThreshold,
		Connexity:      disturbance.Conn4,
		Workers:        1,
	}
}

// WithNoData returns a copy of o with the sentinel set explicitly.
func (o Options) WithNoData(v float32) Options {
	o.NoData = v
	o.HasNoData = true
	return o
}

// Result carries every artifact of a pipeline run.
type Result struct {
	// Preprocessed is the cloned DSM with NaN samples folded, sub-minimum
	// samples clamped, and disturbed samples rewritten to NoData.
	Preprocessed *raster.Raster
	// Border flags acquisition-footprint padding.
	Border *raster.Mask
	// Inner flags interior no-data dropouts.
	Inner *raster.Mask
	// Disturbed flags disturbed areas.
	Disturbed *raster.Mask
	// Quality is the merged per-pixel code mask (Quality* constants).
	Quality *raster.Mask
	// NoData is the effective sentinel the pipeline compared against and
	// wrote into Preprocessed.
	NoData float32
}
