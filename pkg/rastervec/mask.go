package rastervec

import (
	"image"
	"math"
)

// Mask is a binary raster used as skeletonization input. It carries the same
// geotransform as the grid or image it came from.
type Mask struct {
	w, h      int
	bits      [][]bool
	transform GeoTransform
}

// NewMask creates an empty mask with the identity geotransform.
func NewMask(w, h int) (*Mask, error) {
	if w <= 0 || h <= 0 {
		return nil, &ErrGridDimensions{W: w, H: h}
	}
	bits := make([][]bool, h)
	for y := range bits {
		bits[y] = make([]bool, w)
	}
	return &Mask{w: w, h: h, bits: bits, transform: IdentityTransform()}, nil
}

// Dims returns the mask's column and row counts.
func (m *Mask) Dims() (w, h int) { return m.w, m.h }

// At reports whether pixel (x, y) is set. Out-of-range pixels are unset.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.bits[y][x]
}

// Set assigns pixel (x, y). Out-of-range pixels are ignored.
func (m *Mask) Set(x, y int, v bool) {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return
	}
	m.bits[y][x] = v
}

// Transform returns the mask's pixel-to-world geotransform.
func (m *Mask) Transform() GeoTransform { return m.transform }

// SetTransform replaces the mask's geotransform.
func (m *Mask) SetTransform(t GeoTransform) { m.transform = t }

// MaskFromGrid thresholds a grid: cells with values >= threshold are set.
// NaN cells are never set. The grid's geotransform carries over. A grid with
// no cells is an error.
func MaskFromGrid(g *Grid, threshold float64) (*Mask, error) {
	m, err := NewMask(g.w, g.h)
	if err != nil {
		return nil, err
	}
	m.transform = g.transform
	for r := 0; r < g.h; r++ {
		for c := 0; c < g.w; c++ {
			v := g.data[r*g.w+c]
			m.bits[r][c] = !math.IsNaN(v) && v >= threshold
		}
	}
	return m, nil
}

// MaskFromImage thresholds an image's luminance: pixels with luma >= cutoff
// (0-255) are set. For dark-on-light line art, threshold the inverse by
// building a grid with GridFromImage and masking below the cutoff instead.
func MaskFromImage(img image.Image, cutoff float64) (*Mask, error) {
	g, err := GridFromImage(img)
	if err != nil {
		return nil, err
	}
	return MaskFromGrid(g, cutoff)
}

// world maps a mask pixel to the world-space center of that pixel.
func (m *Mask) world(x, y int) [2]float64 {
	wx, wy := m.transform.Apply(float64(x)+0.5, float64(y)+0.5)
	return [2]float64{wx, wy}
}
