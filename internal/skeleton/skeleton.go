// Package skeleton reduces binary pixel masks to one-pixel-wide centerlines
// and extracts ordered paths from them.
//
// Thinning uses the Zhang-Suen algorithm on bool grids. The corpus has no
// pure-Go skeletonization library (only OpenCV bindings), so this is the one
// routine implemented in-tree; see DESIGN.md.
package skeleton

// Thin returns the Zhang-Suen skeleton of a row-major bool mask.
//
// The input is not modified. Border pixels are treated as background by the
// neighborhood tests, so shapes touching the edge thin toward the interior.
func Thin(src [][]bool) [][]bool {
	h := len(src)
	if h == 0 {
		return nil
	}
	w := len(src[0])

	cur := make([][]bool, h)
	for y := range cur {
		cur[y] = make([]bool, w)
		copy(cur[y], src[y])
	}

	at := func(x, y int) bool {
		return x >= 0 && x < w && y >= 0 && y < h && cur[y][x]
	}

	// P2..P9 clockwise from north, per the original paper's numbering.
	neighborhood := func(x, y int) [8]bool {
		return [8]bool{
			at(x, y-1), at(x+1, y-1), at(x+1, y), at(x+1, y+1),
			at(x, y+1), at(x-1, y+1), at(x-1, y), at(x-1, y-1),
		}
	}

	for {
		changed := false
		for pass := 0; pass < 2; pass++ {
			var kill [][2]int
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					if !cur[y][x] {
						continue
					}
					p := neighborhood(x, y)
					b := 0
					for _, v := range p {
						if v {
							b++
						}
					}
					if b < 2 || b > 6 {
						continue
					}
					a := 0
					for i := 0; i < 8; i++ {
						if !p[i] && p[(i+1)%8] {
							a++
						}
					}
					if a != 1 {
						continue
					}
					if pass == 0 {
						if (p[0] && p[2] && p[4]) || (p[2] && p[4] && p[6]) {
							continue
						}
					} else {
						if (p[0] && p[2] && p[6]) || (p[0] && p[4] && p[6]) {
							continue
						}
					}
					kill = append(kill, [2]int{x, y})
				}
			}
			for _, k := range kill {
				cur[k[1]][k[0]] = false
			}
			if len(kill) > 0 {
				changed = true
			}
		}
		if !changed {
			return cur
		}
	}
}

var neighbors8 = [8][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0}, // orthogonal first
	{1, -1}, {1, 1}, {-1, 1}, {-1, -1},
}

// Endpoints returns skeleton pixels with exactly one 8-connected neighbor,
// in row-major order.
func Endpoints(mask [][]bool) [][2]int {
	h := len(mask)
	if h == 0 {
		return nil
	}
	w := len(mask[0])
	on := func(x, y int) bool {
		return x >= 0 && x < w && y >= 0 && y < h && mask[y][x]
	}

	var ends [][2]int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !mask[y][x] {
				continue
			}
			n := 0
			for _, d := range neighbors8 {
				if on(x+d[0], y+d[1]) {
					n++
				}
			}
			if n == 1 {
				ends = append(ends, [2]int{x, y})
			}
		}
	}
	return ends
}
