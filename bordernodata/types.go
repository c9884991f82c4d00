package bordernodata

// Method selects the detection algorithm.
type Method int

const (
	// MethodScan marks, per row and per column, the leading and trailing runs
	// of no-data samples and ORs the four directions. Fast, exact for convex
	// footprints.
	MethodScan Method = iota
	// MethodFloodFill runs a multi-source BFS from every border no-data
	// pixel under 4-connectivity. Exact for any border-connected region.
	MethodFloodFill
)

// Options configures Detect.
//
// NoData is honored only when HasNoData is true; this keeps a legitimate 0.0
// sentinel distinguishable from an absent one. When HasNoData is false, or
// NoData is NaN, NaN samples are folded into raster.DefaultNoData on a
// private copy and that constant becomes the effective sentinel.
type Options struct {
	// NoData is the sentinel marking invalid samples.
	NoData float32
	// HasNoData states whether NoData carries a caller-chosen sentinel.
	HasNoData bool
	// Method selects scan (default) or flood fill.
	Method Method
	// Workers bounds the strip parallelism of the scan method; values below 2
	// run serially. The flood fill always runs serially.
	Workers int
}

// DefaultOptions returns Options with no sentinel set (NaN folding applies),
// MethodScan, and serial execution.
func DefaultOptions() Options {
	return Options{Method: MethodScan, Workers: 1}
}

// WithNoData returns a copy of o with the sentinel set explicitly.
func (o Options) WithNoData(v float32) Options {
	o.NoData = v
	o.HasNoData = true
	return o
}
