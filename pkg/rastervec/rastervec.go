package rastervec

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// Feature classes produced by the conversion operations.
const (
	ClassContour    = "contour"    // iso-line from ContourLines
	ClassBand       = "band"       // filled band polygon from ContourBands
	ClassRegion     = "region"     // classified region from ClassifyRegions
	ClassCenterline = "centerline" // traced path from TraceCenterlines
)

// Feature is one vector geometry extracted from a raster, with the attributes
// describing where it came from (contour level, band range, class index...).
//
// All fields are private to maintain encapsulation.
type Feature struct {
	id         int64
	class      string
	geometry   orb.Geometry
	attributes map[string]interface{}
}

// ID returns the feature identifier, unique within its layer.
func (f *Feature) ID() int64 { return f.id }

// Class returns the feature class, one of the Class* constants.
func (f *Feature) Class() string { return f.class }

// Geometry returns the feature's orb geometry.
func (f *Feature) Geometry() orb.Geometry { return f.geometry }

// Attributes returns all feature attributes as a map.
//
// Common attributes:
//   - "level": contour level (ContourLines)
//   - "lo", "hi": band range (ContourBands)
//   - "class", "name", "color": palette class (ClassifyRegions)
//   - "pixels": component size in pixels (ClassifyRegions)
func (f *Feature) Attributes() map[string]interface{} { return f.attributes }

// Attribute returns a specific attribute value by name.
//
// Example:
//
//	if level, ok := feature.Attribute("level"); ok {
//	    fmt.Printf("contour at %v\n", level)
//	}
func (f *Feature) Attribute(name string) (interface{}, bool) {
	val, ok := f.attributes[name]
	return val, ok
}

// Layer is a collection of features extracted from one raster operation.
//
// Access features via Features(), FeaturesInBounds(), or FeatureCount().
// Layers are immutable; Project and Simplify return new layers.
type Layer struct {
	features []Feature
	index    *spatialIndex
	bounds   orb.Bound
}

// NewLayer builds a layer (and its spatial index) from prepared features.
// Most callers get layers from the conversion operations instead.
func NewLayer(features []Feature) *Layer {
	l := &Layer{features: features}
	l.buildSpatialIndex()
	return l
}

// Features returns all features in the layer.
func (l *Layer) Features() []Feature { return l.features }

// FeatureCount returns the number of features in the layer.
func (l *Layer) FeatureCount() int { return len(l.features) }

// Bound returns the world-space extent covering all features.
func (l *Layer) Bound() orb.Bound { return l.bounds }

// FeaturesInBound returns all features whose bounding boxes intersect b.
//
// This is the primary method for viewport rendering; queries go through an
// R-tree, with a linear fallback when no index exists.
func (l *Layer) FeaturesInBound(b orb.Bound) []Feature {
	if l.index == nil || l.index.rtree == nil {
		return l.featuresInBoundLinear(b)
	}

	point := rtreego.Point{b.Min[0], b.Min[1]}
	lengths := []float64{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1]}
	queryRect, err := rtreego.NewRect(point, padLengths(lengths))
	if err != nil {
		return l.featuresInBoundLinear(b)
	}

	spatials := l.index.rtree.SearchIntersect(queryRect)
	result := make([]Feature, 0, len(spatials))
	for _, spatial := range spatials {
		indexed := spatial.(*indexedFeature)
		result = append(result, indexed.feature)
	}
	return result
}

func (l *Layer) featuresInBoundLinear(b orb.Bound) []Feature {
	var result []Feature
	for _, f := range l.features {
		if b.Intersects(f.geometry.Bound()) {
			result = append(result, f)
		}
	}
	return result
}

// spatialIndex provides O(log n) spatial queries using an R-tree.
type spatialIndex struct {
	rtree *rtreego.Rtree
}

// indexedFeature wraps a feature for R-tree storage.
type indexedFeature struct {
	feature Feature
	bounds  orb.Bound
}

// Bounds implements the rtreego.Spatial interface.
func (f *indexedFeature) Bounds() rtreego.Rect {
	point := rtreego.Point{f.bounds.Min[0], f.bounds.Min[1]}
	lengths := []float64{
		f.bounds.Max[0] - f.bounds.Min[0],
		f.bounds.Max[1] - f.bounds.Min[1],
	}
	rect, _ := rtreego.NewRect(point, padLengths(lengths))
	return rect
}

// padLengths enforces the R-tree's non-zero extent requirement for point and
// axis-aligned degenerate geometries.
func padLengths(lengths []float64) []float64 {
	const epsilon = 1e-9
	for i, l := range lengths {
		if l < epsilon {
			lengths[i] = epsilon
		}
	}
	return lengths
}

// buildSpatialIndex creates the R-tree and accumulates the layer bound.
func (l *Layer) buildSpatialIndex() {
	if len(l.features) == 0 {
		return
	}

	rtree := rtreego.NewTree(2, 25, 50)
	var bounds orb.Bound
	for i, f := range l.features {
		fb := f.geometry.Bound()
		rtree.Insert(&indexedFeature{feature: f, bounds: fb})
		if i == 0 {
			bounds = fb
		} else {
			bounds = bounds.Union(fb)
		}
	}

	l.index = &spatialIndex{rtree: rtree}
	l.bounds = bounds
}
