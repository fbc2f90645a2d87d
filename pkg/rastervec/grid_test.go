package rastervec

import (
	"errors"
	"image"
	"image/color"
	"math"
	"strings"
	"testing"
)

const sampleASC = `ncols 4
nrows 3
xllcorner 100.0
yllcorner 40.0
cellsize 0.5
NODATA_value -9999
1 2 3 4
5 -9999 7 8
9 10 11 12
`

func TestReadEsriASCII(t *testing.T) {
	g, err := ReadEsriASCII(strings.NewReader(sampleASC))
	if err != nil {
		t.Fatal(err)
	}

	w, h := g.Dims()
	if w != 4 || h != 3 {
		t.Fatalf("expected 4x3, got %dx%d", w, h)
	}
	if got := g.Z(0, 0); got != 1 {
		t.Fatalf("top-left must be the first data value, got %f", got)
	}
	if got := g.Z(3, 2); got != 12 {
		t.Fatalf("bottom-right must be the last data value, got %f", got)
	}
	if !math.IsNaN(g.Z(1, 1)) {
		t.Fatalf("nodata cell must read as NaN, got %f", g.Z(1, 1))
	}

	// Top-left pixel center: xll + cellsize/2, top = yll + nrows*cellsize - cellsize/2.
	x, y := g.Transform().Apply(0.5, 0.5)
	if math.Abs(x-100.25) > 1e-9 || math.Abs(y-41.25) > 1e-9 {
		t.Fatalf("unexpected top-left center (%f, %f)", x, y)
	}
}

func TestReadEsriASCIICellCenter(t *testing.T) {
	asc := `ncols 2
nrows 2
xllcenter 10.5
yllcenter 20.5
cellsize 1.0
1 2
3 4
`
	g, err := ReadEsriASCII(strings.NewReader(asc))
	if err != nil {
		t.Fatal(err)
	}
	// xllcenter means the lower-left cell center is at 10.5: corner at 10.
	x, _ := g.Transform().Apply(0, 0)
	if math.Abs(x-10) > 1e-9 {
		t.Fatalf("expected origin x 10, got %f", x)
	}
}

func TestReadEsriASCIIErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "empty", src: ""},
		{name: "missing dims", src: "cellsize 1\n1 2 3\n"},
		{name: "missing corner", src: "ncols 2\nnrows 1\ncellsize 1\n1 2\n"},
		{name: "truncated data", src: "ncols 3\nnrows 3\nxllcorner 0\nyllcorner 0\ncellsize 1\n1 2 3 4\n"},
		{name: "junk data", src: "ncols 2\nnrows 1\nxllcorner 0\nyllcorner 0\ncellsize 1\n1 frog\n"},
		{name: "bad header value", src: "ncols two\nnrows 1\nxllcorner 0\nyllcorner 0\ncellsize 1\n1 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadEsriASCII(strings.NewReader(tt.src))
			var ascErr *ErrASCIIGrid
			if !errors.As(err, &ascErr) {
				t.Fatalf("expected ErrASCIIGrid, got %v", err)
			}
		})
	}
}

func TestGeoTransformInvert(t *testing.T) {
	gt := GeoTransform{100, 0.5, 0, 41.5, 0, -0.5}
	inv, err := gt.Invert()
	if err != nil {
		t.Fatal(err)
	}
	// Round trip a pixel coordinate.
	x, y := gt.Apply(3.5, 1.5)
	col, row := inv.Apply(x, y)
	if math.Abs(col-3.5) > 1e-9 || math.Abs(row-1.5) > 1e-9 {
		t.Fatalf("round trip gave (%f, %f)", col, row)
	}
}

func TestGeoTransformInvertSingular(t *testing.T) {
	gt := GeoTransform{0, 0, 0, 0, 0, 0}
	if _, err := gt.Invert(); !errors.Is(err, ErrSingularTransform) {
		t.Fatalf("expected ErrSingularTransform, got %v", err)
	}
}

func TestNewGridValidation(t *testing.T) {
	if _, err := NewGrid(0, 10); err == nil {
		t.Fatal("expected an error for zero width")
	}
	if _, err := NewGrid(10, -1); err == nil {
		t.Fatal("expected an error for negative height")
	}
}

func TestGridMinMax(t *testing.T) {
	g, err := NewGrid(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	g.SetZ(0, 0, 3)
	g.SetZ(1, 0, -1)
	g.SetZ(0, 1, math.NaN())
	g.SetZ(1, 1, 7)

	min, max, ok := g.MinMax()
	if !ok || min != -1 || max != 7 {
		t.Fatalf("expected [-1, 7], got [%f, %f] ok=%v", min, max, ok)
	}
}

func TestGridMinMaxAllNaN(t *testing.T) {
	g, _ := NewGrid(2, 2)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			g.SetZ(c, r, math.NaN())
		}
	}
	if _, _, ok := g.MinMax(); ok {
		t.Fatal("all-NaN grid must report no range")
	}
}

func TestGridFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	g, err := GridFromImage(img)
	if err != nil {
		t.Fatal(err)
	}
	if g.Z(0, 0) > 1 {
		t.Fatalf("black pixel luma should be ~0, got %f", g.Z(0, 0))
	}
	if g.Z(1, 0) < 254 {
		t.Fatalf("white pixel luma should be ~255, got %f", g.Z(1, 0))
	}
}

func TestMaskFromGrid(t *testing.T) {
	g, _ := NewGrid(3, 1)
	g.SetZ(0, 0, 1)
	g.SetZ(1, 0, 10)
	g.SetZ(2, 0, math.NaN())

	m, err := MaskFromGrid(g, 5)
	if err != nil {
		t.Fatal(err)
	}
	if m.At(0, 0) || !m.At(1, 0) || m.At(2, 0) {
		t.Fatalf("unexpected mask %v %v %v", m.At(0, 0), m.At(1, 0), m.At(2, 0))
	}
	if m.At(-1, 0) || m.At(99, 99) {
		t.Fatal("out-of-range pixels must be unset")
	}
}

func TestEmptyImageRejected(t *testing.T) {
	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))

	var dimErr *ErrGridDimensions
	if _, err := GridFromImage(empty); !errors.As(err, &dimErr) {
		t.Fatalf("expected ErrGridDimensions from an empty image, got %v", err)
	}
	if _, err := MaskFromImage(empty, 128); !errors.As(err, &dimErr) {
		t.Fatalf("expected ErrGridDimensions from an empty image, got %v", err)
	}
}
