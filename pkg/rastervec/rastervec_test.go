package rastervec

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/paulmach/orb"
)

// peakGrid is flat at 1 with a single 5 in the middle, georeferenced away
// from the origin so world mapping mistakes show up.
func peakGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := NewGrid(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			g.SetZ(c, r, 1)
		}
	}
	g.SetZ(1, 1, 5)
	g.SetTransform(GeoTransform{100, 1, 0, 50, 0, -1})
	return g
}

func TestContourLines(t *testing.T) {
	layer, err := ContourLines(peakGrid(t), []float64{3})
	if err != nil {
		t.Fatal(err)
	}
	if layer.FeatureCount() != 1 {
		t.Fatalf("expected 1 contour, got %d", layer.FeatureCount())
	}

	f := layer.Features()[0]
	if f.Class() != ClassContour {
		t.Fatalf("unexpected class %q", f.Class())
	}
	if level, _ := f.Attribute("level"); level != 3.0 {
		t.Fatalf("expected level 3, got %v", level)
	}

	// Every vertex must land inside the grid's world footprint.
	for _, p := range f.Geometry().(orb.LineString) {
		if p[0] < 100 || p[0] > 103 || p[1] < 47 || p[1] > 50 {
			t.Fatalf("contour point %v outside world extent", p)
		}
	}
}

func TestContourLinesOutOfRange(t *testing.T) {
	layer, err := ContourLines(peakGrid(t), []float64{99})
	if err != nil {
		t.Fatal(err)
	}
	if layer.FeatureCount() != 0 {
		t.Fatalf("a level above the data range must yield no features, got %d", layer.FeatureCount())
	}
}

func TestContourBands(t *testing.T) {
	layer, err := ContourBands(peakGrid(t), []float64{0, 2, 6})
	if err != nil {
		t.Fatal(err)
	}
	if layer.FeatureCount() < 2 {
		t.Fatalf("expected a polygon per band, got %d", layer.FeatureCount())
	}

	seen := map[float64]bool{}
	for _, f := range layer.Features() {
		if f.Class() != ClassBand {
			t.Fatalf("unexpected class %q", f.Class())
		}
		lo, _ := f.Attribute("lo")
		hi, _ := f.Attribute("hi")
		seen[lo.(float64)] = true
		if hi.(float64) <= lo.(float64) {
			t.Fatalf("band range inverted: lo=%v hi=%v", lo, hi)
		}
	}
	if !seen[0] || !seen[2] {
		t.Fatalf("expected bands starting at 0 and 2, got %v", seen)
	}
}

func TestClassifyRegions(t *testing.T) {
	blue := color.RGBA{B: 255, A: 255}
	green := color.RGBA{G: 200, A: 255}

	// Left half water, right half land.
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x < 2 {
				img.Set(x, y, blue)
			} else {
				img.Set(x, y, green)
			}
		}
	}

	palette := Palette{
		{Name: "water", Color: blue},
		{Name: "land", Color: green},
	}
	layer, err := ClassifyRegions(img, palette, DefaultClassifyOptions())
	if err != nil {
		t.Fatal(err)
	}
	if layer.FeatureCount() != 2 {
		t.Fatalf("expected 2 regions, got %d", layer.FeatureCount())
	}

	names := map[string]bool{}
	for _, f := range layer.Features() {
		if f.Class() != ClassRegion {
			t.Fatalf("unexpected class %q", f.Class())
		}
		name, _ := f.Attribute("name")
		names[name.(string)] = true
		if pixels, _ := f.Attribute("pixels"); pixels != 8 {
			t.Fatalf("each half should be 8 pixels, got %v", pixels)
		}
	}
	if !names["water"] || !names["land"] {
		t.Fatalf("expected water and land regions, got %v", names)
	}
}

func TestClassifyRegionsColorAttribute(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			img.Set(x, y, red)
		}
	}

	layer, err := ClassifyRegions(img, Palette{{Name: "fire", Color: red}}, DefaultClassifyOptions())
	if err != nil {
		t.Fatal(err)
	}
	if layer.FeatureCount() != 1 {
		t.Fatalf("expected 1 region, got %d", layer.FeatureCount())
	}
	if c, _ := layer.Features()[0].Attribute("color"); c != "#ff0000" {
		t.Fatalf("expected hex color #ff0000, got %v", c)
	}
}

func lineMask(t *testing.T, rows []string) *Mask {
	t.Helper()
	m, err := NewMask(len(rows[0]), len(rows))
	if err != nil {
		t.Fatal(err)
	}
	for y, row := range rows {
		for x, ch := range row {
			m.Set(x, y, ch == '#')
		}
	}
	return m
}

func TestTraceCenterlines(t *testing.T) {
	m := lineMask(t, []string{
		".......",
		".#####.",
		".......",
	})

	opts := DefaultTraceOptions()
	opts.Thin = false
	layer, err := TraceCenterlines(m, opts)
	if err != nil {
		t.Fatal(err)
	}
	if layer.FeatureCount() != 1 {
		t.Fatalf("expected 1 centerline, got %d", layer.FeatureCount())
	}

	f := layer.Features()[0]
	if f.Class() != ClassCenterline {
		t.Fatalf("unexpected class %q", f.Class())
	}
	if points, _ := f.Attribute("points"); points != 5 {
		t.Fatalf("expected 5 points, got %v", points)
	}
	// Identity transform maps pixel (1,1) to its center (1.5, 1.5).
	ls := f.Geometry().(orb.LineString)
	first := ls[0]
	if math.Abs(first[0]-1.5) > 1e-9 || math.Abs(first[1]-1.5) > 1e-9 {
		t.Fatalf("expected world start (1.5, 1.5), got %v", first)
	}
}

func TestTraceCenterlinesBranch(t *testing.T) {
	m := lineMask(t, []string{
		"..#..",
		"..#..",
		"#####",
	})

	opts := DefaultTraceOptions()
	opts.Thin = false
	_, err := TraceCenterlines(m, opts)
	x, y, ok := IsBranchError(err)
	if !ok {
		t.Fatalf("expected a branch error, got %v", err)
	}
	if x != 2 || y != 2 {
		t.Fatalf("expected junction at (2,2), got (%d,%d)", x, y)
	}
}

func TestTraceCenterlinesThinsBlob(t *testing.T) {
	m := lineMask(t, []string{
		".........",
		".#######.",
		".#######.",
		".#######.",
		".........",
	})

	layer, err := TraceCenterlines(m, DefaultTraceOptions())
	if err != nil {
		t.Fatal(err)
	}
	if layer.FeatureCount() != 1 {
		t.Fatalf("a thick bar should thin to one centerline, got %d", layer.FeatureCount())
	}
}

func TestWalkSkeletonErrors(t *testing.T) {
	m := lineMask(t, []string{
		".....",
		".###.",
		".....",
	})
	if _, err := WalkSkeleton(m, 0, 0); !errors.Is(err, ErrStartOffSkeleton) {
		t.Fatalf("expected ErrStartOffSkeleton, got %v", err)
	}

	iso := lineMask(t, []string{"..#.."})
	if _, err := WalkSkeleton(iso, 2, 0); !errors.Is(err, ErrIsolatedStart) {
		t.Fatalf("expected ErrIsolatedStart, got %v", err)
	}
}

func TestWalkSkeletonElbow(t *testing.T) {
	m := lineMask(t, []string{
		".#",
		".#",
		"##",
	})
	path, err := WalkSkeleton(m, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 4 {
		t.Fatalf("walk next to the corner must cover the whole arc, got %v", path)
	}
}

func TestWalkSkeletonWorld(t *testing.T) {
	m := lineMask(t, []string{
		".....",
		".###.",
		".....",
	})
	m.SetTransform(GeoTransform{10, 2, 0, 20, 0, -2})

	path, err := WalkSkeleton(m, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 3 {
		t.Fatalf("expected 3 points, got %v", path)
	}
	// Pixel (1,1) center maps through {10,2,0,20,0,-2} to (13, 17).
	if math.Abs(path[0][0]-13) > 1e-9 || math.Abs(path[0][1]-17) > 1e-9 {
		t.Fatalf("unexpected world start %v", path[0])
	}
}

func TestMergeLinesFacade(t *testing.T) {
	merged := MergeLines([]orb.LineString{
		{{0, 0}, {1, 0}},
		{{1, 0}, {2, 0}},
	}, 0.01)
	if len(merged) != 1 || len(merged[0]) != 3 {
		t.Fatalf("unexpected merge result %v", merged)
	}
}

func TestUnionPolygonsFacade(t *testing.T) {
	sq := func(x float64) orb.Polygon {
		return orb.Polygon{{{x, 0}, {x + 1, 0}, {x + 1, 1}, {x, 1}, {x, 0}}}
	}
	mp, err := UnionPolygons([]orb.Polygon{sq(0), sq(0.5)})
	if err != nil {
		t.Fatal(err)
	}
	if len(mp) != 1 {
		t.Fatalf("expected 1 dissolved polygon, got %d", len(mp))
	}
}
