package disturbance

import "errors"

var (
	// ErrNilRaster indicates a nil input raster.
	ErrNilRaster = errors.New("disturbance: raster must not be nil")
	// ErrInvalidThreshold indicates a non-positive or non-finite slope threshold.
	ErrInvalidThreshold = errors.New("disturbance: slope threshold must be positive and finite")
	// ErrUnknownConnexity indicates an undefined connexity value.
	ErrUnknownConnexity = errors.New("disturbance: unknown connexity")
)

// Connexity selects the neighborhood evaluated around each pixel.
type Connexity int

const (
	// Conn4 evaluates the horizontal and vertical neighbors.
	Conn4 Connexity = iota
	// Conn8 additionally evaluates the diagonal neighbors.
	Conn8
)

// offsets returns the (dRow, dCol) neighbor offsets for the connexity.
func (c Connexity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	}
	return [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
}

// Options configures BuildMask.
type Options struct {
	// SlopeThreshold is the largest height step still considered undisturbed.
	SlopeThreshold float32
	// Connexity picks the evaluated neighborhood.
	Connexity Connexity
	// NoData is the sentinel marking invalid samples; honored only when
	// HasNoData is true, same semantics as bordernodata.Options.
	NoData float32
	// HasNoData states whether NoData carries a caller-chosen sentinel.
	HasNoData bool
	// Workers bounds strip parallelism; values below 2 run serially.
	Workers int
}

// DefaultOptions returns Options with SlopeThreshold 2.0, Conn4, no sentinel
// set, and serial execution.
func DefaultOptions() Options {
	return Options{SlopeThreshold: 2.0, Connexity: Conn4, Workers: 1}
}

// WithNoData returns a copy of o with the sentinel set explicitly.
func (o Options) WithNoData(v float32) Options {
	o.NoData = v
	o.HasNoData = true
	return o
}
