package bordernodata

// BuildMask fills mask with the border no-data flags of a flat row-major
// raster. It is the native-style kernel of this package: pure, total,
// allocation-free, and unvalidated — the caller guarantees both buffers are
// contiguous with length ≥ height×width and that mask starts zeroed.
//
// Four directional scans run over the buffers: west→east and east→west along
// every row, north→south and south→north along every column. Each scan marks
// the samples equal to noData it meets before the first differing sample; a
// pixel's final flag is the OR of the four. Non-positive dimensions are a
// no-op.
//
// BuildMask never reads mask and never writes raster, so it is safe to call
// concurrently on independent buffer pairs.
// Complexity: O(height×width) time, O(1) memory.
func BuildMask(raster []float32, mask []uint8, height, width int, noData float32) {
	if height <= 0 || width <= 0 {
		return
	}
	scanRows(raster, mask, width, 0, height, noData)
	scanCols(raster, mask, height, width, 0, width, noData)
}

// markRun marks the leading run of noData samples on one scan line. The line
// starts at flat index start, advances by stride, and holds n samples; the
// run stops at the first sample differing from noData.
func markRun(raster []float32, mask []uint8, start, stride, n int, noData float32) {
	idx := start
	for i := 0; i < n; i++ {
		if raster[idx] != noData {
			return
		}
		mask[idx] = 1
		idx += stride
	}
}

// scanRows applies the west→east and east→west scans to rows [r0, r1).
func scanRows(raster []float32, mask []uint8, width, r0, r1 int, noData float32) {
	for r := r0; r < r1; r++ {
		base := r * width
		markRun(raster, mask, base, 1, width, noData)
		markRun(raster, mask, base+width-1, -1, width, noData)
	}
}

// scanCols applies the north→south and south→north scans to columns [c0, c1).
func scanCols(raster []float32, mask []uint8, height, width, c0, c1 int, noData float32) {
	for c := c0; c < c1; c++ {
		markRun(raster, mask, c, width, height, noData)
		markRun(raster, mask, c+(height-1)*width, -width, height, noData)
	}
}
