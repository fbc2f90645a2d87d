// Package render writes vector features as SVG documents via ajstarks/svgo.
package render

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/paulmach/orb"
)

// Item is one geometry with its drawing style.
type Item struct {
	Geometry    orb.Geometry
	Stroke      string
	StrokeWidth float64
	Fill        string
}

// ErrEmptyBound indicates the drawing extent has no area.
type ErrEmptyBound struct{}

func (e *ErrEmptyBound) Error() string {
	return "render: drawing bound has no extent"
}

// transform maps world coordinates onto the canvas, Y flipped so north is up.
type transform struct {
	minX, minY float64
	scale      float64
	height     float64
}

func (t transform) apply(p orb.Point) (float64, float64) {
	return (p[0] - t.minX) * t.scale, t.height - (p[1]-t.minY)*t.scale
}

// SVG renders the items into an SVG canvas of the given pixel size. World
// coordinates are fitted to the canvas preserving aspect ratio.
func SVG(w io.Writer, width, height int, bound orb.Bound, items []Item) error {
	dx := bound.Max[0] - bound.Min[0]
	dy := bound.Max[1] - bound.Min[1]
	if dx <= 0 || dy <= 0 {
		return &ErrEmptyBound{}
	}

	scale := float64(width) / dx
	if s := float64(height) / dy; s < scale {
		scale = s
	}
	t := transform{minX: bound.Min[0], minY: bound.Min[1], scale: scale, height: float64(height)}

	canvas := svg.New(w)
	canvas.Start(width, height)
	for _, item := range items {
		style := itemStyle(item)
		switch g := item.Geometry.(type) {
		case orb.Point:
			x, y := t.apply(g)
			canvas.Circle(int(x), int(y), 2, style)
		case orb.LineString:
			canvas.Path(lineData(g, false, t), style)
		case orb.Ring:
			canvas.Path(lineData(orb.LineString(g), true, t), style)
		case orb.MultiLineString:
			for _, ls := range g {
				canvas.Path(lineData(ls, false, t), style)
			}
		case orb.Polygon:
			canvas.Path(polygonData(g, t), style)
		case orb.MultiPolygon:
			for _, p := range g {
				canvas.Path(polygonData(p, t), style)
			}
		}
	}
	canvas.End()
	return nil
}

// lineData builds an SVG path for a line string, optionally closed.
func lineData(ls orb.LineString, closed bool, t transform) string {
	var b strings.Builder
	for i, p := range ls {
		x, y := t.apply(p)
		if i == 0 {
			fmt.Fprintf(&b, "M%.2f %.2f", x, y)
		} else {
			fmt.Fprintf(&b, " L%.2f %.2f", x, y)
		}
	}
	if closed {
		b.WriteString(" Z")
	}
	return b.String()
}

// polygonData builds one path with a subpath per ring; fill-rule evenodd
// renders holes correctly.
func polygonData(p orb.Polygon, t transform) string {
	parts := make([]string, 0, len(p))
	for _, r := range p {
		parts = append(parts, lineData(orb.LineString(r), true, t))
	}
	return strings.Join(parts, " ")
}

func itemStyle(i Item) string {
	stroke := i.Stroke
	if stroke == "" {
		stroke = "black"
	}
	fill := i.Fill
	if fill == "" {
		fill = "none"
	}
	width := i.StrokeWidth
	if width <= 0 {
		width = 1
	}
	return fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g;fill-rule:evenodd", fill, stroke, width)
}
