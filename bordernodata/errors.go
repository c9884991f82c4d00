package bordernodata

import "errors"

var (
	// ErrNilRaster indicates a nil input raster.
	ErrNilRaster = errors.New("bordernodata: raster must not be nil")
	// ErrShapeMismatch indicates raster and mask dimensions disagree.
	ErrShapeMismatch = errors.New("bordernodata: raster and mask shapes differ")
	// ErrUnknownMethod indicates an undefined detection method.
	ErrUnknownMethod = errors.New("bordernodata: unknown detection method")
)
