package classify

// Clockwise Moore neighborhood, starting north.
var mooreDirs = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// traceBoundary walks the outer boundary of a pixel component with
// Moore-neighbor tracing, starting from its topmost-leftmost pixel (sx, sy).
// Collinear points are dropped and the returned ring is closed. Components too
// small to trace get a half-pixel box around the start pixel.
func traceBoundary(member []bool, w, h, sx, sy int) [][2]float64 {
	inComp := func(x, y int) bool {
		return x >= 0 && x < w && y >= 0 && y < h && member[y*w+x]
	}

	var pts [][2]float64
	add := func(x, y int) {
		p := [2]float64{float64(x), float64(y)}
		n := len(pts)
		if n >= 2 {
			a, b := pts[n-2], pts[n-1]
			cross := (b[0]-a[0])*(p[1]-b[1]) - (b[1]-a[1])*(p[0]-b[0])
			dot := (b[0]-a[0])*(p[0]-b[0]) + (b[1]-a[1])*(p[1]-b[1])
			// Drop b only when p continues straight ahead; reversals along
			// one-pixel-thick arms must keep their turning point.
			if cross == 0 && dot > 0 {
				pts = pts[:n-1]
			}
		}
		pts = append(pts, p)
	}

	// The pixel north of the start is outside the component (row-major scan),
	// so enter from direction north.
	cx, cy := sx, sy
	enter := 0
	add(cx, cy)

	firstMove := -1
	for steps := 0; steps <= 4*(w*h+1); steps++ {
		found := -1
		// Scan clockwise beginning just after the backtrack direction.
		for i := 1; i <= 8; i++ {
			d := (enter + i) % 8
			nx, ny := cx+mooreDirs[d][0], cy+mooreDirs[d][1]
			if inComp(nx, ny) {
				found = d
				break
			}
		}
		if found < 0 {
			break // isolated pixel
		}
		if cx == sx && cy == sy {
			if firstMove < 0 {
				firstMove = found
			} else if found == firstMove {
				break // re-entered start the same way: boundary is complete
			}
		}
		cx += mooreDirs[found][0]
		cy += mooreDirs[found][1]
		add(cx, cy)
		// New backtrack points at the previous pixel.
		enter = (found + 4) % 8
	}

	if len(pts) >= 3 {
		// Drop the duplicated start before closing, then close explicitly.
		if pts[len(pts)-1] == pts[0] {
			pts = pts[:len(pts)-1]
		}
		if len(pts) >= 3 {
			return append(pts, pts[0])
		}
	}

	fx, fy := float64(sx), float64(sy)
	return [][2]float64{
		{fx - 0.5, fy - 0.5}, {fx + 0.5, fy - 0.5},
		{fx + 0.5, fy + 0.5}, {fx - 0.5, fy + 0.5},
		{fx - 0.5, fy - 0.5},
	}
}
