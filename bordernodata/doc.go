// Package bordernodata detects no-data regions connected to a raster's
// border, separating acquisition-footprint padding from isolated interior
// dropouts.
//
// What:
//
//   - BuildMask is the low-level kernel: a pure, allocation-free function
//     over flat row-major buffers. For every row it marks the leading and
//     trailing run of no-data samples; likewise for every column; a pixel is
//     border no-data when any of the four directional scans reaches it.
//   - Detect is the high-level entry point: validates the raster, allocates
//     the mask, resolves the no-data sentinel (folding NaN samples into
//     -32768 when the sentinel is unset or NaN), and optionally runs the
//     row and column passes strip-parallel.
//   - MethodFloodFill replaces the directional scans with a multi-source BFS
//     seeded from every border no-data pixel, capturing concave border
//     regions the scans cannot reach.
//   - InnerMask derives the complementary mask: no-data pixels that are NOT
//     border-connected.
//
// Why two methods:
//
//   - The four-direction scan is O(H×W) with a tiny constant and handles the
//     common case, a roughly convex sensor footprint, exactly. It cannot
//     reach a border region whose every row and column run is blocked by a
//     valid sample, so it under-marks some concave footprints.
//   - The flood fill is exact for any 4-connected border region at the cost
//     of a visited queue. Choosing the scan is a deliberate
//     precision/performance trade-off, not an oversight.
//
// Sentinel semantics:
//
//   - Samples are compared to the sentinel by strict equality, no tolerance.
//   - Options carries HasNoData so that a legitimate 0.0 sentinel is
//     distinguishable from "no sentinel given". Unset (or NaN) sentinels
//     select DefaultNoData (-32768) after NaN samples are folded into it on
//     a private copy; the input raster is never mutated.
//
// Complexity:
//
//   - BuildMask:  O(H×W) time, O(1) extra memory.
//   - FloodFill:  O(H×W) time, O(H×W) memory for the queue.
//
// Errors:
//
//   - ErrNilRaster: Detect or InnerMask received a nil raster.
//   - ErrShapeMismatch: InnerMask received a mask of different shape.
//   - ErrUnknownMethod: Options.Method is not a defined Method.
package bordernodata
