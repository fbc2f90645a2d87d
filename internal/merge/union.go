package merge

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/peterstace/simplefeatures/geom"
)

// ErrUnexpectedUnion indicates the union produced a geometry type that cannot
// be represented as polygons.
type ErrUnexpectedUnion struct {
	Type string
}

func (e *ErrUnexpectedUnion) Error() string {
	return fmt.Sprintf("merge: union produced unexpected geometry type %s", e.Type)
}

// Union dissolves the polygons into their cascaded union.
//
// The boolean work happens in simplefeatures; this function only converts
// between orb and simplefeatures representations. An empty input yields an
// empty MultiPolygon.
func Union(polys []orb.Polygon) (orb.MultiPolygon, error) {
	if len(polys) == 0 {
		return orb.MultiPolygon{}, nil
	}

	acc := sfPolygon(polys[0]).AsGeometry()
	for _, p := range polys[1:] {
		var err error
		acc, err = geom.Union(acc, sfPolygon(p).AsGeometry())
		if err != nil {
			return nil, fmt.Errorf("merge: union: %w", err)
		}
	}

	switch acc.Type() {
	case geom.TypePolygon:
		return orb.MultiPolygon{orbPolygon(acc.MustAsPolygon())}, nil
	case geom.TypeMultiPolygon:
		mp := acc.MustAsMultiPolygon()
		out := make(orb.MultiPolygon, 0, mp.NumPolygons())
		for i := 0; i < mp.NumPolygons(); i++ {
			out = append(out, orbPolygon(mp.PolygonN(i)))
		}
		return out, nil
	default:
		return nil, &ErrUnexpectedUnion{Type: acc.Type().String()}
	}
}

func sfPolygon(p orb.Polygon) geom.Polygon {
	rings := make([]geom.LineString, 0, len(p))
	for _, r := range p {
		if len(r) > 0 && r[0] != r[len(r)-1] {
			r = append(append(orb.Ring(nil), r...), r[0])
		}
		coords := make([]float64, 0, 2*len(r))
		for _, pt := range r {
			coords = append(coords, pt[0], pt[1])
		}
		rings = append(rings, geom.NewLineString(geom.NewSequence(coords, geom.DimXY)))
	}
	return geom.NewPolygon(rings)
}

func orbPolygon(p geom.Polygon) orb.Polygon {
	out := make(orb.Polygon, 0, 1+p.NumInteriorRings())
	out = append(out, orbRing(p.ExteriorRing()))
	for i := 0; i < p.NumInteriorRings(); i++ {
		out = append(out, orbRing(p.InteriorRingN(i)))
	}
	return out
}

func orbRing(ls geom.LineString) orb.Ring {
	seq := ls.Coordinates()
	ring := make(orb.Ring, 0, seq.Length())
	for i := 0; i < seq.Length(); i++ {
		xy := seq.GetXY(i)
		ring = append(ring, orb.Point{xy.X, xy.Y})
	}
	return ring
}
