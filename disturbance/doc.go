// Package disturbance flags DSM areas whose height varies too sharply to be
// trusted — mostly water surfaces and correlation failures (occlusions)
// introduced during DSM generation.
//
// What:
//
//   - BuildMask marks every valid pixel whose absolute height step to at
//     least one evaluated valid neighbor exceeds SlopeThreshold.
//   - Conn4 evaluates horizontal and vertical neighbors; Conn8 adds the
//     diagonals.
//   - No-data pixels are never disturbed and never contribute steps.
//
// Why:
//
//   - DTM extraction interpolates through disturbed pixels rather than
//     trusting them; the preprocess pipeline rewrites them to the no-data
//     sentinel before handing the DSM downstream.
//
// Complexity: O(H×W×d) time, d = 4 or 8; O(H×W) memory for the mask.
//
// Errors:
//
//   - ErrNilRaster: BuildMask received a nil raster.
//   - ErrInvalidThreshold: SlopeThreshold is not a positive finite number.
//   - ErrUnknownConnexity: Connexity is neither Conn4 nor Conn8.
package disturbance
