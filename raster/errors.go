package raster

import "errors"

var (
	// ErrNonRectangular indicates rows of differing lengths in a 2D input.
	ErrNonRectangular = errors.New("raster: all rows must have the same length")
	// ErrShapeMismatch indicates two containers with disagreeing dimensions.
	ErrShapeMismatch = errors.New("raster: shape mismatch")
	// ErrNegativeDims indicates a negative height or width.
	ErrNegativeDims = errors.New("raster: dimensions must be non-negative")
)
