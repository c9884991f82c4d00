package raster_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hfrcnes/bulldozer/raster"
)

// TestMaskFrom2D_Bool2D verifies the reshape round-trip.
func TestMaskFrom2D_Bool2D(t *testing.T) {
	grid := [][]bool{
		{true, false, true},
		{false, false, true},
	}
	m, err := raster.MaskFrom2D(grid)
	if err != nil {
		t.Fatalf("MaskFrom2D error: %v", err)
	}
	if m.CountNonzero() != 3 {
		t.Errorf("CountNonzero = %d; want 3", m.CountNonzero())
	}
	if diff := cmp.Diff(grid, m.Bool2D()); diff != "" {
		t.Errorf("Bool2D round-trip mismatch (-want +got):\n%s", diff)
	}
}

// TestMaskOr_AndNot verifies combination semantics and shape checks.
func TestMaskOr_AndNot(t *testing.T) {
	a, _ := raster.MaskFrom2D([][]bool{{true, false}, {false, false}})
	b, _ := raster.MaskFrom2D([][]bool{{true, true}, {false, false}})

	if err := a.Or(b); err != nil {
		t.Fatalf("Or error: %v", err)
	}
	if !a.Get(0, 1) || a.CountNonzero() != 2 {
		t.Errorf("Or result wrong: %v", a.Bool2D())
	}

	if err := a.AndNot(b); err != nil {
		t.Fatalf("AndNot error: %v", err)
	}
	if a.CountNonzero() != 0 {
		t.Errorf("AndNot result wrong: %v", a.Bool2D())
	}

	narrow, _ := raster.NewMask(2, 1)
	if err := a.Or(narrow); !errors.Is(err, raster.ErrShapeMismatch) {
		t.Errorf("Or shape error = %v; want ErrShapeMismatch", err)
	}
	if err := a.AndNot(narrow); !errors.Is(err, raster.ErrShapeMismatch) {
		t.Errorf("AndNot shape error = %v; want ErrShapeMismatch", err)
	}
}
