package merge

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestLinesJoinsTwoSegments(t *testing.T) {
	lines := []orb.LineString{
		{{0, 0}, {1, 0}, {2, 0}},
		{{2, 0}, {3, 0}, {4, 0}},
	}
	merged := Lines(lines, 0.1)
	if len(merged) != 1 {
		t.Fatalf("expected 1 merged line, got %d", len(merged))
	}
	if len(merged[0]) != 5 {
		t.Fatalf("shared endpoint must not duplicate: got %d points %v", len(merged[0]), merged[0])
	}
	ends := [2]orb.Point{merged[0][0], merged[0][len(merged[0])-1]}
	if !(ends == [2]orb.Point{{0, 0}, {4, 0}} || ends == [2]orb.Point{{4, 0}, {0, 0}}) {
		t.Fatalf("unexpected merged ends %v", ends)
	}
}

func TestLinesReversesSegments(t *testing.T) {
	// Second segment points away from the joint; it must be flipped.
	lines := []orb.LineString{
		{{0, 0}, {1, 0}},
		{{2, 0}, {1, 0}},
	}
	merged := Lines(lines, 0.1)
	if len(merged) != 1 {
		t.Fatalf("expected 1 merged line, got %d", len(merged))
	}
	want := orb.LineString{{0, 0}, {1, 0}, {2, 0}}
	if len(merged[0]) != len(want) {
		t.Fatalf("expected %v, got %v", want, merged[0])
	}
	for i := range want {
		if merged[0][i] != want[i] {
			t.Fatalf("expected %v, got %v", want, merged[0])
		}
	}
}

func TestLinesRespectsTolerance(t *testing.T) {
	lines := []orb.LineString{
		{{0, 0}, {1, 0}},
		{{1.5, 0}, {2, 0}},
	}
	if merged := Lines(lines, 0.1); len(merged) != 2 {
		t.Fatalf("gap beyond tolerance must not merge, got %d lines", len(merged))
	}
	if merged := Lines(lines, 0.6); len(merged) != 1 {
		t.Fatalf("gap within tolerance must merge, got %d lines", len(merged))
	}
}

func TestLinesExtendsHead(t *testing.T) {
	// The seed line sits in the middle; fragments attach on both sides.
	lines := []orb.LineString{
		{{1, 0}, {2, 0}},
		{{2, 0}, {3, 0}},
		{{0, 0}, {1, 0}},
	}
	merged := Lines(lines, 0.1)
	if len(merged) != 1 {
		t.Fatalf("expected 1 merged line, got %d", len(merged))
	}
	if len(merged[0]) != 4 {
		t.Fatalf("expected 4 points, got %v", merged[0])
	}
}

func TestLinesClosesLoops(t *testing.T) {
	lines := []orb.LineString{
		{{0, 0}, {1, 0}, {1, 1}},
		{{1, 1}, {0, 1}, {0, 0.05}},
	}
	merged := Lines(lines, 0.1)
	if len(merged) != 1 {
		t.Fatalf("expected 1 merged line, got %d", len(merged))
	}
	ls := merged[0]
	if ls[0] != ls[len(ls)-1] {
		t.Fatalf("nearly-closed result must be snapped closed: %v", ls)
	}
}

func TestLinesSkipsDegenerate(t *testing.T) {
	lines := []orb.LineString{
		{{5, 5}},
		{{0, 0}, {1, 0}},
	}
	merged := Lines(lines, 0.1)
	if len(merged) != 1 {
		t.Fatalf("single-point inputs must be dropped, got %d lines", len(merged))
	}
}

func TestLinesEmpty(t *testing.T) {
	if merged := Lines(nil, 1); len(merged) != 0 {
		t.Fatalf("expected no output, got %v", merged)
	}
}
