package contour

import (
	"math"
	"sort"

	"github.com/fogleman/contourmap"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Bands extracts filled contour polygons between consecutive breaks.
//
// Band i covers cells with breaks[i] <= z < breaks[i+1]; the final band is
// closed on the right so the grid maximum lands inside it. Each band is
// contoured as a 0/1 indicator grid padded with a zero border, which
// guarantees closed rings. Holes are assigned to their smallest enclosing
// outer ring.
func Bands(w, h int, values []float64, breaks []float64) ([][]orb.Polygon, error) {
	if err := checkGrid(w, h, values); err != nil {
		return nil, err
	}
	if len(breaks) < 2 {
		return nil, &ErrBreaks{Reason: "need at least two break values"}
	}
	for i := 1; i < len(breaks); i++ {
		if !(breaks[i] > breaks[i-1]) {
			return nil, &ErrBreaks{Reason: "breaks must be strictly increasing"}
		}
	}

	out := make([][]orb.Polygon, len(breaks)-1)
	for i := 0; i < len(breaks)-1; i++ {
		lo, hi := breaks[i], breaks[i+1]
		last := i == len(breaks)-2
		rings := indicatorRings(w, h, values, func(v float64) bool {
			return v >= lo && (v < hi || (last && v == hi))
		})
		out[i] = assemblePolygons(rings)
	}
	return out, nil
}

// indicatorRings contours a boolean indicator of the grid at 0.5 and returns
// the resulting closed rings in unpadded grid coordinates.
func indicatorRings(w, h int, values []float64, in func(float64) bool) []orb.Ring {
	pw, ph := w+2, h+2
	ind := make([]float64, pw*ph)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if in(values[r*w+c]) {
				ind[(r+1)*pw+(c+1)] = 1
			}
		}
	}

	m := contourmap.FromFloat64s(pw, ph, ind)

	var rings []orb.Ring
	for _, c := range m.Contours(0.5) {
		ring := make(orb.Ring, 0, len(c)+1)
		for _, p := range c {
			ring = append(ring, orb.Point{p.X - 1, p.Y - 1})
		}
		if len(ring) < 3 {
			continue
		}
		if !ring.Closed() {
			ring = append(ring, ring[0])
		}
		rings = append(rings, ring)
	}
	return rings
}

// assemblePolygons nests rings into polygons by containment depth: rings at
// even depth are shells, rings at odd depth become holes of their smallest
// enclosing shell.
func assemblePolygons(rings []orb.Ring) []orb.Polygon {
	if len(rings) == 0 {
		return nil
	}

	areas := make([]float64, len(rings))
	for i, r := range rings {
		areas[i] = math.Abs(planar.Area(r))
	}
	order := make([]int, len(rings))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return areas[order[a]] > areas[order[b]] })

	depth := make([]int, len(rings))
	parent := make([]int, len(rings))
	for _, j := range order {
		parent[j] = -1
		for _, i := range order {
			if i == j || areas[i] <= areas[j] {
				continue
			}
			if planar.RingContains(rings[i], rings[j][0]) {
				depth[j]++
				// order is sorted by area, so the last hit is the smallest
				// enclosing ring
				parent[j] = i
			}
		}
	}

	polyOf := make(map[int]int, len(rings))
	var polys []orb.Polygon
	for _, j := range order {
		if depth[j]%2 == 0 {
			polyOf[j] = len(polys)
			polys = append(polys, orb.Polygon{orient(rings[j], orb.CCW)})
		}
	}
	for _, j := range order {
		if depth[j]%2 == 1 && parent[j] >= 0 {
			if pi, ok := polyOf[parent[j]]; ok {
				polys[pi] = append(polys[pi], orient(rings[j], orb.CW))
			}
		}
	}
	return polys
}

// orient returns the ring wound in the requested direction.
func orient(r orb.Ring, o orb.Orientation) orb.Ring {
	if r.Orientation() == o {
		return r
	}
	rev := make(orb.Ring, len(r))
	for i, p := range r {
		rev[len(r)-1-i] = p
	}
	return rev
}
