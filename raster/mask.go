package raster

// Mask is a Height×Width grid of uint8 cells stored contiguously in
// row-major order, positionally matching a Raster of the same shape. Masks
// are always allocated zeroed. Detection kernels use it as a binary mask and
// only ever set entries to 1; mask consumers may instead store small
// per-pixel codes (the quality mask does).
type Mask struct {
	Height, Width int
	Data          []uint8
}

// NewMask allocates a zero-filled mask of the given dimensions.
// Returns ErrNegativeDims if either dimension is negative.
// Complexity: O(H×W).
func NewMask(height, width int) (*Mask, error) {
	if height < 0 || width < 0 {
		return nil, ErrNegativeDims
	}
	return &Mask{
		Height: height,
		Width:  width,
		Data:   make([]uint8, height*width),
	}, nil
}

// MaskFrom2D builds a Mask from a rectangular [][]bool.
// Returns ErrNonRectangular if any row length differs from the first.
// Complexity: O(H×W).
func MaskFrom2D(rows [][]bool) (*Mask, error) {
	h := len(rows)
	if h == 0 {
		return &Mask{}, nil
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	m := &Mask{Height: h, Width: w, Data: make([]uint8, h*w)}
	for y, row := range rows {
		for x, set := range row {
			if set {
				m.Data[y*w+x] = 1
			}
		}
	}
	return m, nil
}

// Bool2D reshapes the flat mask back into a [][]bool grid, the form
// high-level callers consume.
// Complexity: O(H×W).
func (m *Mask) Bool2D() [][]bool {
	out := make([][]bool, m.Height)
	for y := 0; y < m.Height; y++ {
		row := make([]bool, m.Width)
		for x := 0; x < m.Width; x++ {
			row[x] = m.Data[y*m.Width+x] != 0
		}
		out[y] = row
	}
	return out
}

// Get reports whether the flag at (row, col) is set.
func (m *Mask) Get(row, col int) bool {
	return m.Data[row*m.Width+col] != 0
}

// Set raises the flag at (row, col).
func (m *Mask) Set(row, col int) {
	m.Data[row*m.Width+col] = 1
}

// CountNonzero returns the number of set flags.
// Complexity: O(H×W).
func (m *Mask) CountNonzero() int {
	n := 0
	for _, v := range m.Data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the mask.
// Complexity: O(H×W).
func (m *Mask) Clone() *Mask {
	cp := &Mask{Height: m.Height, Width: m.Width, Data: make([]uint8, len(m.Data))}
	copy(cp.Data, m.Data)
	return cp
}

// Or sets every flag of m that is set in other.
// Returns ErrShapeMismatch if dimensions differ.
// Complexity: O(H×W).
func (m *Mask) Or(other *Mask) error {
	if m.Height != other.Height || m.Width != other.Width {
		return ErrShapeMismatch
	}
	for i, v := range other.Data {
		if v != 0 {
			m.Data[i] = 1
		}
	}
	return nil
}

// AndNot clears every flag of m that is set in other.
// Returns ErrShapeMismatch if dimensions differ.
// Complexity: O(H×W).
func (m *Mask) AndNot(other *Mask) error {
	if m.Height != other.Height || m.Width != other.Width {
		return ErrShapeMismatch
	}
	for i, v := range other.Data {
		if v != 0 {
			m.Data[i] = 0
		}
	}
	return nil
}
