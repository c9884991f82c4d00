// Package raster defines the contiguous in-memory containers shared by all
// DSM preprocessing algorithms: a row-major float32 Raster and a matching
// uint8 Mask.
//
// What:
//
//   - Raster wraps a flat []float32 of Height×Width samples in row-major
//     order; detection kernels operate on the flat buffer directly.
//   - Mask is the positional companion: one byte (0/1) per sample.
//   - From2D / FromDense marshal high-level containers ([][]float32,
//     gonum *mat.Dense) into the flat layout; Bool2D / ToDense marshal back.
//   - SanitizeNaN rewrites NaN samples to a sentinel before detection.
//
// Why:
//
//   - The mask algorithms are pure flat-buffer kernels with no validation of
//     their own; this package is the capability boundary where shapes are
//     checked and managed containers are converted, once, at the edge.
//
// Conventions:
//
//   - Index(row, col) = row*Width + col; Coordinate inverts it.
//   - An empty raster (Height or Width zero) is valid and every algorithm
//     treats it as a no-op.
//
// Errors:
//
//   - ErrNonRectangular: rows of a [][]float32 input differ in length.
//   - ErrShapeMismatch: raster and mask dimensions disagree.
//   - ErrNegativeDims: a constructor received a negative dimension.
package raster
