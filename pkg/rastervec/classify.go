package rastervec

import (
	"fmt"
	"image"
	"image/color"

	"github.com/paulmach/orb"

	"github.com/cartovec/rastervec/internal/classify"
)

// PaletteClass is one class in a classification palette.
type PaletteClass struct {
	// Name labels features of this class, e.g. "water".
	Name string
	// Color is the class's representative color; pixels snap to the nearest
	// one.
	Color color.RGBA
}

// Palette is an ordered set of classification classes. Nearest-color ties
// resolve to the lowest index.
type Palette []PaletteClass

// ClassifyRegions converts a color-classified image into region polygons.
//
// Every pixel is snapped to its nearest palette class, connected components
// are labeled per class, and each component's outer boundary becomes a
// Polygon feature with attributes "class" (palette index), "name", "color"
// (hex), and "pixels".
//
// Example:
//
//	palette := rastervec.Palette{
//	    {Name: "water", Color: color.RGBA{A: 255, B: 255}},
//	    {Name: "land", Color: color.RGBA{A: 255, G: 160}},
//	}
//	layer, err := rastervec.ClassifyRegions(img, palette, rastervec.DefaultClassifyOptions())
func ClassifyRegions(img image.Image, palette Palette, opts ClassifyOptions) (*Layer, error) {
	pal := make(color.Palette, len(palette))
	for i, c := range palette {
		pal[i] = c.Color
	}

	classes, err := classify.Quantize(img, pal)
	if err != nil {
		return nil, fmt.Errorf("rastervec: classify: %w", err)
	}

	conn := classify.Conn4
	if opts.Connectivity == Conn8 {
		conn = classify.Conn8
	}
	regions, err := classify.Regions(classes, conn, opts.MinPixels)
	if err != nil {
		return nil, fmt.Errorf("rastervec: classify: %w", err)
	}

	t := opts.Transform
	if t == (GeoTransform{}) {
		t = IdentityTransform()
	}

	features := make([]Feature, 0, len(regions))
	for i, reg := range regions {
		ring := make(orb.Ring, len(reg.Boundary))
		for j, p := range reg.Boundary {
			x, y := t.Apply(p[0]+0.5, p[1]+0.5)
			ring[j] = orb.Point{x, y}
		}
		c := palette[reg.Class]
		features = append(features, Feature{
			id:       int64(i),
			class:    ClassRegion,
			geometry: orb.Polygon{ring},
			attributes: map[string]interface{}{
				"class":  reg.Class,
				"name":   c.Name,
				"color":  fmt.Sprintf("#%02x%02x%02x", c.Color.R, c.Color.G, c.Color.B),
				"pixels": reg.Pixels,
			},
		})
	}
	return NewLayer(features), nil
}
