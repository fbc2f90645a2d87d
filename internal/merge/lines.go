// Package merge combines vector geometries: line strings joined end to end
// and polygons dissolved into their union.
//
// Endpoint lookup goes through a dhconnelly/rtreego R-tree rather than a
// pairwise scan; polygon boolean work is delegated to
// github.com/peterstace/simplefeatures.
package merge

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// endpoint is one end of an input line, stored in the R-tree.
type endpoint struct {
	line  int
	tail  bool // true when this is the line's last point
	point orb.Point
}

// Bounds implements rtreego.Spatial. Endpoints are points, so the rect gets a
// small epsilon extent; the R-tree requires non-zero dimensions.
func (e *endpoint) Bounds() rtreego.Rect {
	const epsilon = 1e-9
	rect, _ := rtreego.NewRect(
		rtreego.Point{e.point[0] - epsilon/2, e.point[1] - epsilon/2},
		[]float64{epsilon, epsilon})
	return rect
}

// Lines joins line strings whose endpoints lie within tol of each other into
// maximal paths. Segments are reversed as needed; a merged path whose ends
// meet within tol is snapped closed. Input order does not affect which points
// end up connected, only the orientation of the output.
func Lines(lines []orb.LineString, tol float64) []orb.LineString {
	if tol <= 0 {
		tol = 1e-9
	}

	tree := rtreego.NewTree(2, 25, 50)
	for i, ls := range lines {
		if len(ls) < 2 {
			continue
		}
		tree.Insert(&endpoint{line: i, tail: false, point: ls[0]})
		tree.Insert(&endpoint{line: i, tail: true, point: ls[len(ls)-1]})
	}

	used := make([]bool, len(lines))
	var out []orb.LineString
	for i, ls := range lines {
		if used[i] || len(ls) < 2 {
			continue
		}
		used[i] = true
		path := append(orb.LineString(nil), ls...)

		path = extendTail(path, lines, used, tree, tol)
		reverse(path)
		path = extendTail(path, lines, used, tree, tol)
		reverse(path)

		if n := len(path); n >= 4 && path[0] != path[n-1] && dist(path[0], path[n-1]) <= tol {
			path = append(path, path[0])
		}
		out = append(out, path)
	}
	return out
}

// extendTail repeatedly appends the nearest unused line whose endpoint falls
// within tol of the path's last point.
func extendTail(path orb.LineString, lines []orb.LineString, used []bool, tree *rtreego.Rtree, tol float64) orb.LineString {
	for {
		tail := path[len(path)-1]
		rect, _ := rtreego.NewRect(
			rtreego.Point{tail[0] - tol, tail[1] - tol},
			[]float64{2 * tol, 2 * tol})

		best := -1
		bestTail := false
		bestDist := math.Inf(1)
		for _, s := range tree.SearchIntersect(rect) {
			e := s.(*endpoint)
			if used[e.line] {
				continue
			}
			if d := dist(tail, e.point); d <= tol && d < bestDist {
				best, bestTail, bestDist = e.line, e.tail, d
			}
		}
		if best < 0 {
			return path
		}

		used[best] = true
		seg := append(orb.LineString(nil), lines[best]...)
		if bestTail {
			reverse(seg)
		}
		if seg[0] == tail {
			seg = seg[1:]
		}
		path = append(path, seg...)
	}
}

func reverse(ls orb.LineString) {
	for i, j := 0, len(ls)-1; i < j; i, j = i+1, j-1 {
		ls[i], ls[j] = ls[j], ls[i]
	}
}

func dist(a, b orb.Point) float64 {
	return math.Hypot(a[0]-b[0], a[1]-b[1])
}
