// Package strips runs a worker function over contiguous strips of raster
// rows (or any other line range) in parallel.
//
// What:
//
//   - Run splits [0, total) into one contiguous strip per worker, extends
//     each strip by a stable margin of context lines on both sides, and
//     executes the worker function for every strip concurrently.
//   - Strips' owned ranges are disjoint and cover [0, total) exactly once,
//     so workers may write into a shared output buffer without locking as
//     long as each writes only its owned range.
//
// Why:
//
//   - The mask detectors are line-independent: no row's result depends on
//     another row's (margin 0), or depends only on a bounded neighborhood
//     (margin 1 for slope masks). That makes strip decomposition the natural
//     parallel unit for large DSMs.
//
// Errors and cancellation:
//
//   - The first worker error cancels the remaining strips and is returned.
//   - Context cancellation is honored between and inside strips via the
//     derived group context handed to each worker.
//
// Complexity: O(total) work split across min(workers, total) goroutines.
package strips
