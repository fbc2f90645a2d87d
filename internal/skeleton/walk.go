package skeleton

import (
	"errors"
	"fmt"
)

// Sentinel errors for path extraction.
var (
	// ErrStartOffSkeleton indicates the start pixel is not set in the mask.
	ErrStartOffSkeleton = errors.New("skeleton: start pixel is not on the skeleton")
	// ErrIsolatedStart indicates the start pixel has no neighbors to walk to.
	ErrIsolatedStart = errors.New("skeleton: start pixel has no connected neighbors")
)

// ErrBranch indicates the walk hit a junction pixel with more than one way
// forward. The skeleton is not a simple arc at (X, Y).
type ErrBranch struct {
	X, Y int
}

func (e *ErrBranch) Error() string {
	return fmt.Sprintf("skeleton: branch at pixel (%d, %d)", e.X, e.Y)
}

// Walk follows the skeleton from (sx, sy), stepping to an unvisited
// 8-connected neighbor until none remains, and returns the ordered pixel path.
//
// Starting mid-arc walks both directions and stitches the halves together.
// Unlike a naive greedy walk, Walk refuses bad input: an off-skeleton start,
// an isolated start pixel, and junction pixels all return errors instead of a
// degenerate path.
func Walk(mask [][]bool, sx, sy int) ([][2]int, error) {
	h := len(mask)
	if h == 0 {
		return nil, ErrStartOffSkeleton
	}
	w := len(mask[0])
	if sx < 0 || sx >= w || sy < 0 || sy >= h || !mask[sy][sx] {
		return nil, ErrStartOffSkeleton
	}
	if junction(mask, sx, sy) {
		return nil, &ErrBranch{X: sx, Y: sy}
	}

	visited := make([][]bool, h)
	for y := range visited {
		visited[y] = make([]bool, w)
	}
	visited[sy][sx] = true
	start := [2]int{sx, sy}

	cands := candidates(mask, visited, sx, sy)
	if len(cands) == 0 {
		return nil, ErrIsolatedStart
	}

	fwd, err := follow(mask, visited, start, cands[0])
	if err != nil {
		return nil, err
	}
	path := append([][2]int{start}, fwd...)

	// A neighbor still unvisited after the first pass is the other half of
	// the arc: the start was mid-arc. Walk it too and prepend it reversed.
	if rest := candidates(mask, visited, sx, sy); len(rest) > 0 {
		back, err := follow(mask, visited, start, rest[0])
		if err != nil {
			return nil, err
		}
		joined := make([][2]int, 0, len(back)+len(path))
		for i := len(back) - 1; i >= 0; i-- {
			joined = append(joined, back[i])
		}
		path = append(joined, path...)
		if leftover := candidates(mask, visited, sx, sy); len(leftover) > 0 {
			return nil, &ErrBranch{X: sx, Y: sy}
		}
	}
	return path, nil
}

// follow walks one direction from first until the arc ends, marking pixels
// visited. prev is the pixel the walk came from; first must be unvisited.
func follow(mask [][]bool, visited [][]bool, prev, first [2]int) ([][2]int, error) {
	var path [][2]int
	cur := first
	for {
		visited[cur[1]][cur[0]] = true
		path = append(path, cur)

		cands := candidates(mask, visited, cur[0], cur[1])
		if len(cands) == 0 {
			return path, nil
		}
		next := cands[0]
		if len(cands) > 1 {
			if junction(mask, cur[0], cur[1]) {
				return nil, &ErrBranch{X: cur[0], Y: cur[1]}
			}
			// On a simple arc pixel, extra candidates are either diagonal
			// shortcuts of the chosen step or the far side of a loop wrapping
			// around prev. Prefer the candidate that does not touch prev.
			ahead := cands[:0:0]
			for _, c := range cands {
				if !adjacent8(c, prev) {
					ahead = append(ahead, c)
				}
			}
			switch {
			case len(ahead) == 1:
				next = ahead[0]
			case len(ahead) > 1:
				next = ahead[0]
				for _, c := range ahead[1:] {
					if !adjacent8(next, c) {
						return nil, &ErrBranch{X: cur[0], Y: cur[1]}
					}
				}
			default:
				// Every candidate touches prev; keep the orthogonal-first
				// choice and let the next step consume the rest.
			}
		}
		prev, cur = cur, next
	}
}

// junction reports whether the mask pixel has three or more distinct arcs
// meeting at it, measured by the number of 0-to-1 transitions around its
// 8-neighborhood.
func junction(mask [][]bool, x, y int) bool {
	h, w := len(mask), len(mask[0])
	on := func(x, y int) bool {
		return x >= 0 && x < w && y >= 0 && y < h && mask[y][x]
	}
	// Clockwise ring starting north.
	ring := [8][2]int{
		{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
	}
	transitions := 0
	for i := 0; i < 8; i++ {
		a := on(x+ring[i][0], y+ring[i][1])
		b := on(x+ring[(i+1)%8][0], y+ring[(i+1)%8][1])
		if !a && b {
			transitions++
		}
	}
	return transitions >= 3
}

// candidates lists unvisited on-skeleton neighbors, orthogonal ones first.
func candidates(mask [][]bool, visited [][]bool, x, y int) [][2]int {
	h, w := len(mask), len(mask[0])
	var out [][2]int
	for _, d := range neighbors8 {
		nx, ny := x+d[0], y+d[1]
		if nx < 0 || nx >= w || ny < 0 || ny >= h {
			continue
		}
		if mask[ny][nx] && !visited[ny][nx] {
			out = append(out, [2]int{nx, ny})
		}
	}
	return out
}

func adjacent8(a, b [2]int) bool {
	dx, dy := a[0]-b[0], a[1]-b[1]
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= 1 && dy <= 1 && (dx != 0 || dy != 0)
}

// Paths extracts every branch-free arc of the skeleton: one walk per
// endpoint, then one per leftover closed loop. Junctions surface as ErrBranch
// exactly as in Walk.
func Paths(mask [][]bool) ([][][2]int, error) {
	h := len(mask)
	if h == 0 {
		return nil, nil
	}
	w := len(mask[0])

	visited := make([][]bool, h)
	for y := range visited {
		visited[y] = make([]bool, w)
	}

	var paths [][][2]int
	walkFrom := func(sx, sy int) error {
		visited[sy][sx] = true
		start := [2]int{sx, sy}
		cands := candidates(mask, visited, sx, sy)
		if len(cands) == 0 {
			return nil // single stranded pixel, no arc
		}
		fwd, err := follow(mask, visited, start, cands[0])
		if err != nil {
			return err
		}
		paths = append(paths, append([][2]int{start}, fwd...))
		return nil
	}

	for _, e := range Endpoints(mask) {
		if visited[e[1]][e[0]] {
			continue
		}
		if err := walkFrom(e[0], e[1]); err != nil {
			return nil, err
		}
	}

	// Remaining unvisited pixels belong to closed loops.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !mask[y][x] || visited[y][x] {
				continue
			}
			if err := walkFrom(x, y); err != nil {
				return nil, err
			}
			if n := len(paths); n > 0 {
				// Close the loop explicitly when the walk ends next to its
				// start.
				p := paths[n-1]
				if len(p) > 2 && adjacent8(p[0], p[len(p)-1]) {
					paths[n-1] = append(p, p[0])
				}
			}
		}
	}
	return paths, nil
}
