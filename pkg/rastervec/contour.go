package rastervec

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/cartovec/rastervec/internal/contour"
)

// ContourLines extracts iso-lines from the grid at the given levels.
//
// Each feature is a LineString (closed loops keep their duplicate end point)
// with attribute "level". Levels outside the grid's value range simply
// produce no features. NaN cells are excluded by the contouring library; no
// geometry is produced over or around missing data.
//
// Example:
//
//	layer, err := rastervec.ContourLines(grid, []float64{0, 100, 200})
func ContourLines(g *Grid, levels []float64) (*Layer, error) {
	byLevel, err := contour.Lines(g.w, g.h, g.values(), levels)
	if err != nil {
		return nil, fmt.Errorf("rastervec: contour lines: %w", err)
	}

	var features []Feature
	id := int64(0)
	for i, lines := range byLevel {
		for _, ls := range lines {
			features = append(features, Feature{
				id:       id,
				class:    ClassContour,
				geometry: gridLineToWorld(g, ls),
				attributes: map[string]interface{}{
					"level": levels[i],
				},
			})
			id++
		}
	}
	return NewLayer(features), nil
}

// ContourBands extracts filled contour polygons between consecutive breaks.
//
// Band i covers grid values in [breaks[i], breaks[i+1]); the last band is
// closed on the right so the maximum value is included. Each feature is a
// Polygon with attributes "lo" and "hi".
func ContourBands(g *Grid, breaks []float64) (*Layer, error) {
	byBand, err := contour.Bands(g.w, g.h, g.values(), breaks)
	if err != nil {
		return nil, fmt.Errorf("rastervec: contour bands: %w", err)
	}

	var features []Feature
	id := int64(0)
	for i, polys := range byBand {
		for _, p := range polys {
			features = append(features, Feature{
				id:       id,
				class:    ClassBand,
				geometry: gridPolygonToWorld(g, p),
				attributes: map[string]interface{}{
					"lo": breaks[i],
					"hi": breaks[i+1],
				},
			})
			id++
		}
	}
	return NewLayer(features), nil
}

// gridLineToWorld maps a grid-space line through the grid's geotransform.
func gridLineToWorld(g *Grid, ls orb.LineString) orb.LineString {
	out := make(orb.LineString, len(ls))
	for i, p := range ls {
		out[i] = g.world(p[0], p[1])
	}
	return out
}

func gridPolygonToWorld(g *Grid, p orb.Polygon) orb.Polygon {
	out := make(orb.Polygon, len(p))
	for i, r := range p {
		ring := make(orb.Ring, len(r))
		for j, pt := range r {
			ring[j] = g.world(pt[0], pt[1])
		}
		out[i] = ring
	}
	return out
}
