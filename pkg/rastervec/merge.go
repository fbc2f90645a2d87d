package rastervec

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/cartovec/rastervec/internal/merge"
)

// MergeLines joins line strings whose endpoints lie within tol of each other
// into maximal paths. Segments are reversed as needed, and merged paths whose
// ends meet within tol come back closed.
//
// Use this to stitch contour fragments or traced arcs back together after
// tiling or masking split them.
func MergeLines(lines []orb.LineString, tol float64) []orb.LineString {
	return merge.Lines(lines, tol)
}

// UnionPolygons dissolves the polygons into their union.
//
// The boolean operation is delegated to the simplefeatures library; this
// package adds nothing on top. An empty input yields an empty MultiPolygon.
func UnionPolygons(polys []orb.Polygon) (orb.MultiPolygon, error) {
	mp, err := merge.Union(polys)
	if err != nil {
		return nil, fmt.Errorf("rastervec: %w", err)
	}
	return mp, nil
}
