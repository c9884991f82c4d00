// Package regular extracts the regular areas of a DSM: valid pixels whose
// height steps to every orthogonal valid neighbor stay within a slope
// threshold. The regular mask feeds the DTM extraction stage, which anchors
// its drape cloth to regular ground first.
//
// The notion is the counterpart of package disturbance: disturbance flags a
// pixel when any evaluated step is too large, regular requires every
// evaluated step to be small. The two masks are not exact complements —
// no-data pixels belong to neither.
//
// Complexity: O(H×W) time, O(H×W) memory for the mask.
//
// Errors:
//
//   - ErrNilRaster: BuildMask received a nil raster.
//   - ErrInvalidThreshold: SlopeThreshold is not a positive finite number.
package regular
