// Package classify turns classified images into labeled pixel regions.
//
// Pixel classification snaps colors to a palette with the standard library's
// nearest-color lookup; region labeling runs breadth-first traversal from the
// lvlath graph library over a pixel graph whose edges join same-class
// neighbors. Boundary tracing lives in trace.go.
package classify

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/katalvlaran/lvlath/graph/algorithms"
	"github.com/katalvlaran/lvlath/graph/core"
)

// Connectivity selects which neighbors join pixels into one region.
type Connectivity int

const (
	// Conn4 connects pixels through edges only.
	Conn4 Connectivity = iota
	// Conn8 also connects pixels through corners.
	Conn8
)

// ErrEmptyPalette indicates classification was requested with no classes.
type ErrEmptyPalette struct{}

func (e *ErrEmptyPalette) Error() string {
	return "classify: palette has no classes"
}

// ErrEmptyImage indicates an image with no pixels.
type ErrEmptyImage struct{}

func (e *ErrEmptyImage) Error() string {
	return "classify: image has no pixels"
}

// Quantize maps every pixel of img to the index of its nearest palette color.
//
// The result is row-major: classes[y][x] for y and x relative to the image
// bounds. Nearest-color ties resolve to the lowest palette index, matching
// color.Palette.Index.
func Quantize(img image.Image, palette color.Palette) ([][]int, error) {
	if len(palette) == 0 {
		return nil, &ErrEmptyPalette{}
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, &ErrEmptyImage{}
	}

	classes := make([][]int, b.Dy())
	for y := range classes {
		row := make([]int, b.Dx())
		for x := range row {
			row[x] = palette.Index(img.At(b.Min.X+x, b.Min.Y+y))
		}
		classes[y] = row
	}
	return classes, nil
}

// Region is one connected run of same-class pixels.
type Region struct {
	Class  int
	Pixels int
	// Boundary is the outer boundary in pixel-center coordinates, closed.
	Boundary [][2]float64
}

// Regions labels connected components and traces each component's outer
// boundary. Components smaller than minPixels are dropped.
//
// Pixels become graph vertices; edges join neighbors of the same class, so a
// BFS from any pixel covers exactly its component.
func Regions(classes [][]int, conn Connectivity, minPixels int) ([]Region, error) {
	if len(classes) == 0 || len(classes[0]) == 0 {
		return nil, &ErrEmptyImage{}
	}
	h, w := len(classes), len(classes[0])
	for _, row := range classes {
		if len(row) != w {
			return nil, fmt.Errorf("classify: ragged class grid: row width %d, want %d", len(row), w)
		}
	}

	// Forward neighbors only; AddEdge mirrors for undirected graphs.
	steps := [][2]int{{1, 0}, {0, 1}}
	if conn == Conn8 {
		steps = append(steps, [2]int{1, 1}, [2]int{-1, 1})
	}

	id := func(x, y int) string { return strconv.Itoa(y*w + x) }
	g := core.NewGraph(false, false)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.AddVertex(&core.Vertex{ID: id(x, y)})
			for _, d := range steps {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				if classes[ny][nx] == classes[y][x] {
					g.AddEdge(id(x, y), id(nx, ny), 0)
				}
			}
		}
	}

	visited := make([]bool, w*h)
	var regions []Region
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if visited[y*w+x] {
				continue
			}
			res, err := algorithms.BFS(g, id(x, y), nil)
			if err != nil {
				return nil, fmt.Errorf("classify: labeling component at (%d, %d): %w", x, y, err)
			}

			member := make([]bool, w*h)
			count := 0
			for vid := range res.Visited {
				idx, err := strconv.Atoi(vid)
				if err != nil {
					return nil, fmt.Errorf("classify: unexpected vertex id %q: %w", vid, err)
				}
				visited[idx] = true
				member[idx] = true
				count++
			}
			if count < minPixels {
				continue
			}

			// Row-major scan order makes (x, y) the component's
			// topmost-leftmost pixel, where the boundary trace starts.
			regions = append(regions, Region{
				Class:    classes[y][x],
				Pixels:   count,
				Boundary: traceBoundary(member, w, h, x, y),
			})
		}
	}
	return regions, nil
}
