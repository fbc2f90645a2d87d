// Package contour extracts iso-lines and iso-bands from gridded values.
//
// The marching-squares work is delegated to github.com/fogleman/contourmap;
// this package only shapes its output into orb geometries. All coordinates
// returned here are in grid space (column/row); georeferencing happens in the
// public API layer.
package contour

import (
	"fmt"

	"github.com/fogleman/contourmap"
	"github.com/paulmach/orb"
)

// ErrGridSize indicates the value buffer does not match the declared dimensions.
type ErrGridSize struct {
	W, H, N int
}

func (e *ErrGridSize) Error() string {
	return fmt.Sprintf("contour: grid is %dx%d but %d values were given", e.W, e.H, e.N)
}

// ErrBreaks indicates an unusable break sequence for band extraction.
type ErrBreaks struct {
	Reason string
}

func (e *ErrBreaks) Error() string {
	return fmt.Sprintf("contour: invalid breaks: %s", e.Reason)
}

// Lines extracts iso-lines for each level from a row-major value grid.
//
// The result is indexed by level. Levels that cross no cell edge produce an
// empty slice, not an error. NaN cells are excluded by the contouring
// library; no geometry is produced over or around missing data.
func Lines(w, h int, values []float64, levels []float64) ([][]orb.LineString, error) {
	if err := checkGrid(w, h, values); err != nil {
		return nil, err
	}

	m := contourmap.FromFloat64s(w, h, values)

	out := make([][]orb.LineString, len(levels))
	for i, z := range levels {
		for _, c := range m.Contours(z) {
			ls := make(orb.LineString, 0, len(c))
			for _, p := range c {
				ls = append(ls, orb.Point{p.X, p.Y})
			}
			if len(ls) >= 2 {
				out[i] = append(out[i], ls)
			}
		}
	}
	return out, nil
}

func checkGrid(w, h int, values []float64) error {
	if w <= 0 || h <= 0 || len(values) != w*h {
		return &ErrGridSize{W: w, H: h, N: len(values)}
	}
	return nil
}
