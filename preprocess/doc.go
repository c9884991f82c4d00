// Package preprocess orchestrates the DSM preprocessing chain that runs
// before DTM extraction: sanitize the input, split no-data into border and
// interior, flag disturbed areas, and merge everything into one quality mask.
//
// Pipeline stages, in order:
//
//  1. Clone the input DSM — the caller's raster is never mutated.
//  2. Resolve the no-data sentinel (explicit, or -32768 with NaN folding).
//  3. Clamp samples below MinValidHeight to the sentinel (DSMs with dynamic
//     no-data encodings).
//  4. Border no-data mask, then the interior no-data mask it implies.
//  5. Disturbed-areas mask; disturbed samples are rewritten to the sentinel
//     in the preprocessed DSM handed downstream.
//  6. Quality mask merge. Codes, lowest priority first: QualityDisturbed,
//     QualityInnerNodata, QualityBorderNodata — a pixel carrying several
//     flags keeps the highest-priority code.
//
// Logging goes through an optional *slog.Logger on Options; nil keeps the
// pipeline silent. Stage boundaries log at Debug, stage summaries at Info.
//
// Errors:
//
//   - ErrNilRaster: Run received a nil DSM.
//   - Context cancellation between stages returns ctx.Err().
//   - Stage errors are wrapped with the stage name.
package preprocess
