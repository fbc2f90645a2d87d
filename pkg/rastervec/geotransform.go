package rastervec

import "errors"

// ErrSingularTransform indicates a geotransform with no inverse.
var ErrSingularTransform = errors.New("rastervec: geotransform is singular")

// GeoTransform is a six-parameter affine transform from pixel space to world
// space, in GDAL coefficient order:
//
//	x = T[0] + col*T[1] + row*T[2]
//	y = T[3] + col*T[4] + row*T[5]
//
// T[0], T[3] locate the outer corner of the top-left pixel; T[1], T[5] are the
// pixel width and height (height is negative for north-up rasters).
type GeoTransform [6]float64

// IdentityTransform maps pixel space onto itself: column to x, row to y.
func IdentityTransform() GeoTransform {
	return GeoTransform{0, 1, 0, 0, 0, 1}
}

// Apply maps fractional pixel coordinates to world coordinates. Pass
// col+0.5, row+0.5 for the center of pixel (col, row).
func (t GeoTransform) Apply(col, row float64) (x, y float64) {
	x = t[0] + col*t[1] + row*t[2]
	y = t[3] + col*t[4] + row*t[5]
	return x, y
}

// Invert returns the world-to-pixel transform, or ErrSingularTransform when
// the pixel axes are degenerate.
func (t GeoTransform) Invert() (GeoTransform, error) {
	det := t[1]*t[5] - t[2]*t[4]
	if det == 0 {
		return GeoTransform{}, ErrSingularTransform
	}
	inv := GeoTransform{
		0, t[5] / det, -t[2] / det,
		0, -t[4] / det, t[1] / det,
	}
	inv[0] = -(t[0]*inv[1] + t[3]*inv[2])
	inv[3] = -(t[0]*inv[4] + t[3]*inv[5])
	return inv, nil
}
