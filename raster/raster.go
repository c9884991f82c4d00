package raster

// DefaultNoData is the sentinel substituted for NaN samples when the caller
// does not supply an explicit no-data value. It matches the constant used
// across the whole preprocessing chain.
const DefaultNoData float32 = -32768

// Raster is a Height×Width grid of float32 samples stored contiguously in
// row-major order. Data has length Height*Width with no gaps, so native-style
// kernels can walk it with flat indices and strides.
//
// The zero value is an empty raster. Algorithms in sibling packages never
// mutate a Raster they receive; SanitizeNaN and the preprocess pipeline
// mutate only rasters they own.
type Raster struct {
	Height, Width int
	Data          []float32
}

// New allocates a zero-filled raster of the given dimensions.
// Returns ErrNegativeDims if either dimension is negative.
// Complexity: O(H×W).
func New(height, width int) (*Raster, error) {
	if height < 0 || width < 0 {
		return nil, ErrNegativeDims
	}
	return &Raster{
		Height: height,
		Width:  width,
		Data:   make([]float32, height*width),
	}, nil
}

// From2D builds a Raster from a rectangular [][]float32, deep-copying the
// samples into the flat layout. An empty outer slice yields an empty raster.
// Returns ErrNonRectangular if any row length differs from the first.
// Complexity: O(H×W).
func From2D(rows [][]float32) (*Raster, error) {
	h := len(rows)
	if h == 0 {
		return &Raster{}, nil
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	r := &Raster{Height: h, Width: w, Data: make([]float32, h*w)}
	for y, row := range rows {
		copy(r.Data[y*w:(y+1)*w], row)
	}
	return r, nil
}

// Index maps (row, col) to the flat row-major index: row*Width + col.
// Complexity: O(1).
func (r *Raster) Index(row, col int) int {
	return row*r.Width + col
}

// Coordinate converts a flat row-major index back to (row, col).
// Complexity: O(1).
func (r *Raster) Coordinate(idx int) (row, col int) {
	return idx / r.Width, idx % r.Width
}

// InBounds reports whether (row, col) lies within the raster.
// Complexity: O(1).
func (r *Raster) InBounds(row, col int) bool {
	return row >= 0 && row < r.Height && col >= 0 && col < r.Width
}

// At returns the sample at (row, col). Panics on out-of-range access, like a
// slice index.
func (r *Raster) At(row, col int) float32 {
	return r.Data[row*r.Width+col]
}

// Set stores v at (row, col).
func (r *Raster) Set(row, col int, v float32) {
	r.Data[row*r.Width+col] = v
}

// Clone returns a deep copy of the raster.
// Complexity: O(H×W).
func (r *Raster) Clone() *Raster {
	cp := &Raster{Height: r.Height, Width: r.Width, Data: make([]float32, len(r.Data))}
	copy(cp.Data, r.Data)
	return cp
}

// Transpose returns a new Width×Height raster with rows and columns swapped.
// Useful when a caller wants to reuse a row-only kernel along columns.
// Complexity: O(H×W).
func (r *Raster) Transpose() *Raster {
	t := &Raster{Height: r.Width, Width: r.Height, Data: make([]float32, len(r.Data))}
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			t.Data[x*t.Width+y] = r.Data[y*r.Width+x]
		}
	}
	return t
}

// SameShape reports whether r and m have identical dimensions.
func (r *Raster) SameShape(m *Mask) bool {
	return r.Height == m.Height && r.Width == m.Width
}
