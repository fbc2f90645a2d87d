package rastervec

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"

	"github.com/cartovec/rastervec/internal/merge"
	"github.com/cartovec/rastervec/internal/skeleton"
)

// Walk error conditions, surfaced from the skeleton walker.
var (
	// ErrStartOffSkeleton indicates WalkSkeleton's start pixel is unset.
	ErrStartOffSkeleton = skeleton.ErrStartOffSkeleton
	// ErrIsolatedStart indicates the start pixel has no neighbors.
	ErrIsolatedStart = skeleton.ErrIsolatedStart
)

// IsBranchError reports whether err marks a skeleton junction, and returns
// the junction pixel when it does.
func IsBranchError(err error) (x, y int, ok bool) {
	var b *skeleton.ErrBranch
	if errors.As(err, &b) {
		return b.X, b.Y, true
	}
	return 0, 0, false
}

// WalkSkeleton follows a one-pixel-wide skeleton from the given start pixel,
// visiting unvisited 8-connected neighbors until the arc ends, and returns
// the ordered path in world coordinates.
//
// The mask must already be thinned (see TraceCenterlines for the full
// pipeline). The walk validates its input: starting off the skeleton, on an
// isolated pixel, or running into a junction returns an error instead of a
// degenerate path.
func WalkSkeleton(m *Mask, startX, startY int) (orb.LineString, error) {
	path, err := skeleton.Walk(m.bits, startX, startY)
	if err != nil {
		return nil, fmt.Errorf("rastervec: walk: %w", err)
	}
	return pixelPathToWorld(m, path), nil
}

// TraceCenterlines reduces a binary mask to centerline paths.
//
// The mask is thinned to a one-pixel skeleton (unless opts.Thin is false),
// every branch-free arc is walked from its endpoints, and the resulting
// world-space paths become LineString features with attribute "points". With
// opts.MergeTolerance > 0, arcs whose ends meet within the tolerance are
// joined first.
//
// A skeleton with junctions returns a branch error naming the junction pixel;
// use IsBranchError to inspect it.
func TraceCenterlines(m *Mask, opts TraceOptions) (*Layer, error) {
	bits := m.bits
	if opts.Thin {
		bits = skeleton.Thin(bits)
	}

	paths, err := skeleton.Paths(bits)
	if err != nil {
		return nil, fmt.Errorf("rastervec: trace: %w", err)
	}

	var lines []orb.LineString
	for _, p := range paths {
		if len(p) < opts.MinPoints || len(p) < 2 {
			continue
		}
		lines = append(lines, pixelPathToWorld(m, p))
	}
	if opts.MergeTolerance > 0 {
		lines = merge.Lines(lines, opts.MergeTolerance)
	}

	features := make([]Feature, 0, len(lines))
	for i, ls := range lines {
		features = append(features, Feature{
			id:       int64(i),
			class:    ClassCenterline,
			geometry: ls,
			attributes: map[string]interface{}{
				"points": len(ls),
			},
		})
	}
	return NewLayer(features), nil
}

func pixelPathToWorld(m *Mask, path [][2]int) orb.LineString {
	out := make(orb.LineString, len(path))
	for i, p := range path {
		w := m.world(p[0], p[1])
		out[i] = orb.Point{w[0], w[1]}
	}
	return out
}
