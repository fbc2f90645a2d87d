package rastervec

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// ErrGridDimensions indicates a grid with non-positive dimensions.
type ErrGridDimensions struct {
	W, H int
}

func (e *ErrGridDimensions) Error() string {
	return fmt.Sprintf("rastervec: invalid grid dimensions %dx%d", e.W, e.H)
}

// ErrASCIIGrid indicates a malformed ESRI ASCII grid file.
type ErrASCIIGrid struct {
	Field  string
	Reason string
}

func (e *ErrASCIIGrid) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("rastervec: bad ascii grid: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("rastervec: bad ascii grid: %s", e.Reason)
}

// Grid is a rectangular field of float64 samples with georeferencing.
//
// Data is row-major with row 0 at the top, matching image and ESRI ASCII
// conventions. Cells carrying no data hold NaN; every operation in this
// package treats NaN as missing.
type Grid struct {
	w, h      int
	data      []float64
	transform GeoTransform
}

// NewGrid creates a zero-filled grid with the identity geotransform.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, &ErrGridDimensions{W: w, H: h}
	}
	return &Grid{
		w:         w,
		h:         h,
		data:      make([]float64, w*h),
		transform: IdentityTransform(),
	}, nil
}

// Dims returns the grid's column and row counts.
func (g *Grid) Dims() (w, h int) { return g.w, g.h }

// Z returns the sample at column c, row r. NaN marks missing data.
// Out-of-range indices return NaN.
func (g *Grid) Z(c, r int) float64 {
	if c < 0 || c >= g.w || r < 0 || r >= g.h {
		return math.NaN()
	}
	return g.data[r*g.w+c]
}

// SetZ stores a sample at column c, row r. Out-of-range indices are ignored.
func (g *Grid) SetZ(c, r int, v float64) {
	if c < 0 || c >= g.w || r < 0 || r >= g.h {
		return
	}
	g.data[r*g.w+c] = v
}

// Transform returns the grid's pixel-to-world geotransform.
func (g *Grid) Transform() GeoTransform { return g.transform }

// SetTransform replaces the grid's geotransform.
func (g *Grid) SetTransform(t GeoTransform) { g.transform = t }

// MinMax scans the grid for its value range, skipping NaN cells. ok is false
// when the grid holds no valid samples.
func (g *Grid) MinMax() (min, max float64, ok bool) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range g.data {
		if math.IsNaN(v) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return min, max, true
}

// Bound returns the grid's world-space extent, the transformed outer corners
// of the pixel rectangle.
func (g *Grid) Bound() orb.Bound {
	corners := [4][2]float64{
		{0, 0}, {float64(g.w), 0}, {0, float64(g.h)}, {float64(g.w), float64(g.h)},
	}
	x, y := g.transform.Apply(corners[0][0], corners[0][1])
	b := orb.Bound{Min: orb.Point{x, y}, Max: orb.Point{x, y}}
	for _, c := range corners[1:] {
		x, y = g.transform.Apply(c[0], c[1])
		b = b.Extend(orb.Point{x, y})
	}
	return b
}

// values returns a copy of the sample buffer for handing to the contouring
// library.
func (g *Grid) values() []float64 {
	out := make([]float64, len(g.data))
	copy(out, g.data)
	return out
}

// world maps a fractional pixel coordinate to world space through the grid's
// transform, offset to pixel centers.
func (g *Grid) world(px, py float64) orb.Point {
	x, y := g.transform.Apply(px+0.5, py+0.5)
	return orb.Point{x, y}
}

// ReadEsriASCII parses an ESRI ASCII grid (.asc).
//
// Both cell-corner (xllcorner/yllcorner) and cell-center (xllcenter/
// yllcenter) registration are accepted; the geotransform is derived from the
// header with a north-up negative row height. Cells equal to nodata_value
// come back as NaN.
func ReadEsriASCII(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}

	header := map[string]float64{}
	var pending string
	for {
		tok, ok := next()
		if !ok {
			return nil, &ErrASCIIGrid{Reason: "unexpected end of header"}
		}
		if _, err := strconv.ParseFloat(tok, 64); err == nil {
			pending = tok
			break
		}
		key := strings.ToLower(tok)
		val, ok := next()
		if !ok {
			return nil, &ErrASCIIGrid{Field: key, Reason: "missing value"}
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, &ErrASCIIGrid{Field: key, Reason: "not a number: " + val}
		}
		header[key] = f
	}

	ncols, ok1 := header["ncols"]
	nrows, ok2 := header["nrows"]
	cell, ok3 := header["cellsize"]
	if !ok1 || !ok2 || !ok3 {
		return nil, &ErrASCIIGrid{Reason: "header must declare ncols, nrows and cellsize"}
	}
	w, h := int(ncols), int(nrows)
	if w <= 0 || h <= 0 || cell <= 0 {
		return nil, &ErrASCIIGrid{Reason: "non-positive dimensions or cellsize"}
	}

	xll, xOK := header["xllcorner"]
	if xc, ok := header["xllcenter"]; ok {
		xll, xOK = xc-cell/2, true
	}
	yll, yOK := header["yllcorner"]
	if yc, ok := header["yllcenter"]; ok {
		yll, yOK = yc-cell/2, true
	}
	if !xOK || !yOK {
		return nil, &ErrASCIIGrid{Reason: "header must declare the lower-left corner or center"}
	}

	nodata, hasNodata := header["nodata_value"]

	g, err := NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	g.transform = GeoTransform{xll, cell, 0, yll + float64(h)*cell, 0, -cell}

	read := func(tok string, i int) error {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return &ErrASCIIGrid{Reason: "not a number in data section: " + tok}
		}
		if hasNodata && v == nodata {
			v = math.NaN()
		}
		g.data[i] = v
		return nil
	}

	if err := read(pending, 0); err != nil {
		return nil, err
	}
	for i := 1; i < w*h; i++ {
		tok, ok := next()
		if !ok {
			return nil, &ErrASCIIGrid{Reason: fmt.Sprintf("data section ended after %d of %d values", i, w*h)}
		}
		if err := read(tok, i); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// GridFromImage builds a luminance grid (0-255) from an image, with the
// identity geotransform. Use SetTransform to georeference it. An image with
// empty bounds is an error.
func GridFromImage(img image.Image) (*Grid, error) {
	b := img.Bounds()
	g, err := NewGrid(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, gr, bl, _ := img.At(x, y).RGBA()
			// Rec. 601 luma on 16-bit channels, scaled to 0-255.
			g.data[i] = (0.299*float64(r) + 0.587*float64(gr) + 0.114*float64(bl)) / 257
			i++
		}
	}
	return g, nil
}
