package rastervec

import (
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/project"
	"github.com/paulmach/orb/simplify"

	"github.com/cartovec/rastervec/internal/render"
)

// Project returns a new layer with every geometry run through the projection
// function. Projection math itself lives in orb/project.
func (l *Layer) Project(fn orb.Projection) *Layer {
	features := make([]Feature, len(l.features))
	for i, f := range l.features {
		features[i] = f
		features[i].geometry = project.Geometry(orb.Clone(f.geometry), fn)
	}
	return NewLayer(features)
}

// ToMercator projects a geographic (EPSG:4326) layer to Web Mercator
// (EPSG:3857).
func (l *Layer) ToMercator() *Layer {
	return l.Project(project.WGS84.ToMercator)
}

// ToGeographic projects a Web Mercator layer back to geographic coordinates.
func (l *Layer) ToGeographic() *Layer {
	return l.Project(project.Mercator.ToWGS84)
}

// Simplify returns a new layer with geometries simplified by Douglas-Peucker
// at the given tolerance, in the layer's coordinate units.
func (l *Layer) Simplify(tolerance float64) *Layer {
	s := simplify.DouglasPeucker(tolerance)
	features := make([]Feature, len(l.features))
	for i, f := range l.features {
		features[i] = f
		features[i].geometry = s.Simplify(orb.Clone(f.geometry))
	}
	return NewLayer(features)
}

// MarshalGeoJSON encodes the layer as a GeoJSON FeatureCollection. Feature
// attributes become properties, plus a "class" property.
func (l *Layer) MarshalGeoJSON() ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, f := range l.features {
		gf := geojson.NewFeature(f.geometry)
		gf.ID = f.id
		gf.Properties["class"] = f.class
		for k, v := range f.attributes {
			gf.Properties[k] = v
		}
		fc.Append(gf)
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("rastervec: geojson: %w", err)
	}
	return data, nil
}

// WriteSVG renders the layer to SVG at the given pixel size. Polygons fill
// with their "color" attribute when present; lines draw with a black stroke.
func (l *Layer) WriteSVG(w io.Writer, width, height int) error {
	items := make([]render.Item, 0, len(l.features))
	for _, f := range l.features {
		item := render.Item{Geometry: f.geometry}
		switch f.geometry.(type) {
		case orb.Polygon, orb.MultiPolygon, orb.Ring:
			item.Fill = "#cccccc"
			if c, ok := f.attributes["color"].(string); ok {
				item.Fill = c
			}
			item.Stroke = "#333333"
		default:
			item.Stroke = "black"
		}
		items = append(items, item)
	}
	if err := render.SVG(w, width, height, l.bounds, items); err != nil {
		return fmt.Errorf("rastervec: svg: %w", err)
	}
	return nil
}
