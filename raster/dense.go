package raster

import "gonum.org/v1/gonum/mat"

// FromDense marshals a gonum *mat.Dense into a Raster, narrowing each sample
// to float32. This is the adapter for callers whose pipeline already lives in
// gonum; the detection kernels themselves never touch mat.
// Complexity: O(H×W).
func FromDense(d *mat.Dense) *Raster {
	h, w := d.Dims()
	r := &Raster{Height: h, Width: w, Data: make([]float32, h*w)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.Data[y*w+x] = float32(d.At(y, x))
		}
	}
	return r
}

// ToDense marshals the raster back into a freshly allocated *mat.Dense.
// An empty raster returns nil, since mat.NewDense rejects zero dimensions.
// Complexity: O(H×W).
func (r *Raster) ToDense() *mat.Dense {
	if r.Height == 0 || r.Width == 0 {
		return nil
	}
	d := mat.NewDense(r.Height, r.Width, nil)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			d.Set(y, x, float64(r.Data[y*r.Width+x]))
		}
	}
	return d
}
