// Package bulldozer provides in-memory raster-mask algorithms for DSM
// (Digital Surface Model) preprocessing — the detection passes that run
// before DTM extraction in a photogrammetric pipeline.
//
// What lives here:
//
//	raster/       — contiguous row-major float32 rasters, uint8 masks,
//	                NaN sanitization, gonum mat.Dense adapters
//	bordernodata/ — border no-data detection: four-direction edge scan
//	                (fast) or multi-source flood fill (exact)
//	disturbance/  — disturbed-areas mask (slope steps above a threshold)
//	regular/      — regular-areas mask (slope steps within a threshold)
//	strips/       — strip-parallel executor over raster rows
//	preprocess/   — the full pipeline: sanitize, detect, merge a quality mask
//
// Why:
//
//   - Satellite DSMs carry two distinct kinds of no-data: footprint padding
//     touching the raster border (skewed acquisitions) and isolated interior
//     dropouts. Downstream filling and DTM extraction must treat them
//     differently, so the split happens here.
//   - Everything is pure, allocation-disciplined computation over
//     caller-owned buffers: no file formats, no tiling, no georeferencing.
//
// All packages follow the same conventions: options structs with
// DefaultXxxOptions constructors, package-prefixed sentinel errors, and
// explicit Complexity notes on the algorithm entry points.
package bulldozer
