package contour

import (
	"errors"
	"math"
	"testing"
)

// peakGrid builds a w x h grid with a radial peak in the center.
func peakGrid(w, h int, height float64) []float64 {
	cx, cy := float64(w-1)/2, float64(h-1)/2
	values := make([]float64, w*h)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			d := math.Hypot(float64(c)-cx, float64(r)-cy)
			v := height - d
			if v < 0 {
				v = 0
			}
			values[r*w+c] = v
		}
	}
	return values
}

func TestLinesGridSizeError(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		n    int
	}{
		{name: "zero width", w: 0, h: 5, n: 0},
		{name: "zero height", w: 5, h: 0, n: 0},
		{name: "short buffer", w: 5, h: 5, n: 24},
		{name: "long buffer", w: 5, h: 5, n: 26},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Lines(tt.w, tt.h, make([]float64, tt.n), []float64{1})
			var gridErr *ErrGridSize
			if !errors.As(err, &gridErr) {
				t.Fatalf("expected ErrGridSize, got %v", err)
			}
		})
	}
}

func TestLinesPeak(t *testing.T) {
	w, h := 11, 11
	values := peakGrid(w, h, 5)

	byLevel, err := Lines(w, h, values, []float64{2.5})
	if err != nil {
		t.Fatal(err)
	}
	if len(byLevel) != 1 {
		t.Fatalf("expected 1 level, got %d", len(byLevel))
	}
	if len(byLevel[0]) == 0 {
		t.Fatal("expected at least one contour line at level 2.5")
	}
	for _, ls := range byLevel[0] {
		if len(ls) < 2 {
			t.Fatalf("degenerate line with %d points", len(ls))
		}
		for _, p := range ls {
			if p[0] < 0 || p[0] > float64(w) || p[1] < 0 || p[1] > float64(h) {
				t.Fatalf("point %v outside grid space", p)
			}
		}
	}
}

func TestLinesLevelOutOfRange(t *testing.T) {
	w, h := 11, 11
	values := peakGrid(w, h, 5)

	byLevel, err := Lines(w, h, values, []float64{100})
	if err != nil {
		t.Fatal(err)
	}
	if len(byLevel[0]) != 0 {
		t.Fatalf("expected no contours above the grid maximum, got %d", len(byLevel[0]))
	}
}

func TestLinesConstantGrid(t *testing.T) {
	values := make([]float64, 25)
	byLevel, err := Lines(5, 5, values, []float64{0.5})
	if err != nil {
		t.Fatal(err)
	}
	if len(byLevel[0]) != 0 {
		t.Fatalf("constant grid should contour to nothing, got %d lines", len(byLevel[0]))
	}
}
