package bordernodata_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hfrcnes/bulldozer/bordernodata"
	"github.com/hfrcnes/bulldozer/raster"
)

// nd is the sentinel used throughout the kernel tests.
const nd = float32(-32768)

// buildFlat runs the kernel on a 2D grid and returns the mask as [][]bool.
func buildFlat(t *testing.T, grid [][]float32) [][]bool {
	t.Helper()
	r, err := raster.From2D(grid)
	if err != nil {
		t.Fatalf("From2D error: %v", err)
	}
	m, err := raster.NewMask(r.Height, r.Width)
	if err != nil {
		t.Fatalf("NewMask error: %v", err)
	}
	bordernodata.BuildMask(r.Data, m.Data, r.Height, r.Width, nd)
	return m.Bool2D()
}

//----------------------------------------------------------------------------//
// BuildMask Kernel Tests
//----------------------------------------------------------------------------//

// TestBuildMask_NoSentinelPresent verifies an all-valid raster stays all-false.
func TestBuildMask_NoSentinelPresent(t *testing.T) {
	got := buildFlat(t, [][]float32{
		{1, 2, 3},
		{4, 5, 6},
	})
	for y, row := range got {
		for x, set := range row {
			if set {
				t.Errorf("pixel (%d,%d) marked in a raster with no no-data", y, x)
			}
		}
	}
}

// TestBuildMask_AllNoData verifies a fully no-data raster is fully marked.
func TestBuildMask_AllNoData(t *testing.T) {
	got := buildFlat(t, [][]float32{
		{nd, nd},
		{nd, nd},
		{nd, nd},
	})
	for y, row := range got {
		for x, set := range row {
			if !set {
				t.Errorf("pixel (%d,%d) unmarked in an all-no-data raster", y, x)
			}
		}
	}
}

// TestBuildMask_ThreeByThree pins the reference scenario: every no-data pixel
// is border-connected along its row or column except none; the two valid
// pixels stay unmarked.
func TestBuildMask_ThreeByThree(t *testing.T) {
	got := buildFlat(t, [][]float32{
		{nd, nd, nd},
		{nd, 5, nd},
		{nd, nd, 5},
	})
	want := [][]bool{
		{true, true, true},
		{true, false, true},
		{true, true, false},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mask mismatch (-want +got):\n%s", diff)
	}
}

// TestBuildMask_IsolatedInteriorPixel verifies a lone interior dropout is
// never flagged: its row and column runs are blocked by valid samples.
func TestBuildMask_IsolatedInteriorPixel(t *testing.T) {
	got := buildFlat(t, [][]float32{
		{1, 1, 1},
		{1, nd, 1},
		{1, 1, 1},
	})
	for y, row := range got {
		for x, set := range row {
			if set {
				t.Errorf("pixel (%d,%d) marked; interior dropout must stay false", y, x)
			}
		}
	}
}

// TestBuildMask_BorderBand verifies a uniform band of width k is marked
// exactly: every pixel within Chebyshev distance k-1 of an edge, nothing else.
func TestBuildMask_BorderBand(t *testing.T) {
	const h, w, k = 9, 11, 2
	grid := make([][]float32, h)
	for y := range grid {
		grid[y] = make([]float32, w)
		for x := range grid[y] {
			if y < k || y >= h-k || x < k || x >= w-k {
				grid[y][x] = nd
			} else {
				grid[y][x] = 100
			}
		}
	}
	got := buildFlat(t, grid)
	for y, row := range got {
		for x, set := range row {
			inBand := y < k || y >= h-k || x < k || x >= w-k
			if set != inBand {
				t.Errorf("pixel (%d,%d) = %v; want %v", y, x, set, inBand)
			}
		}
	}
}

// TestBuildMask_EmptyDims verifies non-positive dimensions write nothing.
func TestBuildMask_EmptyDims(t *testing.T) {
	mask := []uint8{7, 7, 7}
	bordernodata.BuildMask(nil, mask, 0, 5, nd)
	bordernodata.BuildMask(nil, mask, 5, 0, nd)
	for i, v := range mask {
		if v != 7 {
			t.Errorf("mask[%d] touched on empty input: %d", i, v)
		}
	}
}

// TestBuildMask_Idempotent verifies two runs into fresh masks agree.
func TestBuildMask_Idempotent(t *testing.T) {
	grid := [][]float32{
		{nd, nd, 3, nd},
		{nd, 7, 8, nd},
		{nd, nd, nd, nd},
	}
	first := buildFlat(t, grid)
	second := buildFlat(t, grid)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("runs disagree (-first +second):\n%s", diff)
	}
}

// TestBuildMask_TrailingRunOnly verifies the east→west and south→north scans
// mark runs the forward scans cannot see.
func TestBuildMask_TrailingRunOnly(t *testing.T) {
	got := buildFlat(t, [][]float32{
		{1, 1, nd, nd},
		{1, 1, 1, nd},
		{1, 1, 1, 1},
	})
	want := [][]bool{
		{false, false, true, true},
		{false, false, false, true},
		{false, false, false, false},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mask mismatch (-want +got):\n%s", diff)
	}
}
