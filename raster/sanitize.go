package raster

import "math"

// SanitizeNaN rewrites every NaN sample of r to sentinel, in place, and
// returns the number of samples rewritten. Detection kernels compare against
// a single sentinel by strict equality, so NaN samples must be folded into
// the sentinel before detection runs.
// Complexity: O(H×W).
func SanitizeNaN(r *Raster, sentinel float32) int {
	n := 0
	for i, v := range r.Data {
		if math.IsNaN(float64(v)) {
			r.Data[i] = sentinel
			n++
		}
	}
	return n
}

// EffectiveNoData resolves the sentinel an algorithm should compare against:
// the caller's value when has is true and the value is comparable, otherwise
// DefaultNoData. A NaN sentinel counts as absent since NaN never compares
// equal to anything.
func EffectiveNoData(noData float32, has bool) float32 {
	if has && !math.IsNaN(float64(noData)) {
		return noData
	}
	return DefaultNoData
}

// ResolveSamples returns the sample buffer and sentinel a detection kernel
// should use for r. When the sentinel substitution applies and r contains NaN
// samples, the fold happens on a private copy; r itself is never mutated.
func ResolveSamples(r *Raster, noData float32, has bool) ([]float32, float32) {
	eff := EffectiveNoData(noData, has)
	if has && eff == noData {
		return r.Data, eff
	}
	if !HasNaN(r) {
		return r.Data, eff
	}
	cp := r.Clone()
	SanitizeNaN(cp, eff)
	return cp.Data, eff
}

// HasNaN reports whether any sample of r is NaN.
// Complexity: O(H×W), early exit on first hit.
func HasNaN(r *Raster) bool {
	for _, v := range r.Data {
		if math.IsNaN(float64(v)) {
			return true
		}
	}
	return false
}
