package physics2d

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func circleAt(r, x, y float64, collisionType CollisionType) *Body {
	body := NewCircle(r, 1, collisionType)
	body.MoveTo(x, y, false)
	return body
}

func boxAt(h, w, x, y, angle float64) *Body {
	body := NewBox(h, w, 1, External)
	body.MoveTo(x, y, false)
	body.Rotate(angle, false)
	return body
}

func TestEdgeNormal(t *testing.T) {
	// bottom edge of a counter-clockwise box points down
	n := EdgeNormal(Vector{2, 0})
	if !n.Near(Vector{0, -1}, 1e-12) {
		t.Errorf("EdgeNormal() = %v, want 0,-1", n)
	}
}

func TestProjectToEdge(t *testing.T) {
	p := ProjectToEdge(Vector{0, 0}, Vector{2, 0}, Vector{3, 5})
	if !p.Equal(Vector{2, 0}) {
		t.Errorf("ProjectToEdge() = %v, want the clamped end 2,0", p)
	}
}

func TestCircleToCircle(t *testing.T) {
	a := circleAt(1, 0, 0, External)
	b := circleAt(1, 1.5, 0, External)

	info := CircleToCircle(a, b)
	if !info.IsCollided {
		t.Fatal("Expected circles to collide")
	}
	if math.Abs(info.PenetrationDepth-0.5) > 1e-12 {
		t.Errorf("PenetrationDepth = %v, want 0.5", info.PenetrationDepth)
	}
	if !info.PenetrationPoint.Near(Vector{0.5, 0}, 1e-12) {
		t.Errorf("PenetrationPoint = %v, want 0.5,0", info.PenetrationPoint)
	}
	if !info.ContactPoint.Near(Vector{1, 0}, 1e-12) {
		t.Errorf("ContactPoint = %v, want 1,0", info.ContactPoint)
	}
	if !info.Normal.Near(Vector{1, 0}, 1e-12) {
		t.Errorf("Normal = %v, want 1,0", info.Normal)
	}
}

func TestCircleToCircleSymmetry(t *testing.T) {
	tests := []struct {
		name string
		a, b *Body
	}{
		{"equal radii", circleAt(1, 0, 0, External), circleAt(1, 1.5, 0, External)},
		{"different radii", circleAt(3, -1, 2, External), circleAt(1.5, 2, 3, External)},
		{"diagonal", circleAt(2, 0, 0, External), circleAt(2, 2, 2, External)},
	}

	var d Detector
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab := d.Detect(tt.a, tt.b)
			ba := d.Detect(tt.b, tt.a)
			if !ab.IsCollided || !ba.IsCollided {
				t.Fatalf("Expected both orders to collide:\n%s", spew.Sdump(ab, ba))
			}
			if math.Abs(ab.PenetrationDepth-ba.PenetrationDepth) > 1e-12 {
				t.Errorf("depths differ: %v != %v", ab.PenetrationDepth, ba.PenetrationDepth)
			}
		})
	}
}

func TestCircleToCircleCoincident(t *testing.T) {
	info := CircleToCircle(circleAt(1, 0, 0, External), circleAt(1, 0, 0, External))
	if !info.IsCollided || info.PenetrationDepth != 2 {
		t.Fatalf("unexpected result:\n%s", spew.Sdump(info))
	}
	if !info.Normal.Equal(Vector{0, 1}) {
		t.Errorf("Normal = %v, want the fallback 0,1", info.Normal)
	}
	if info.ContactPoint.Equal(info.PenetrationPoint) {
		t.Error("Expected distinct points so the pair can be separated")
	}
}

func TestInternalContainment(t *testing.T) {
	arena := circleAt(100, 0, 0, Internal)
	ball := circleAt(5, 0, 0, External)
	bodies := []*Body{arena, ball}

	var d Detector
	if got := d.DetectAll(bodies); len(got) != 0 {
		t.Fatalf("Expected no collision at the center:\n%s", spew.Sdump(got))
	}

	ball.MoveTo(90, 0, false)
	if got := d.DetectAll(bodies); len(got) != 0 {
		t.Fatalf("Expected no collision at distance 90:\n%s", spew.Sdump(got))
	}

	ball.MoveTo(96, 0, false)
	got := d.DetectAll(bodies)
	if len(got) != 1 {
		t.Fatalf("Expected one collision at distance 96, got %d", len(got))
	}
	info := got[0]
	if info.Body1 != arena || info.Body2 != ball {
		t.Errorf("Expected the arena to lead the pair")
	}
	if math.Abs(info.PenetrationDepth-1) > 1e-12 {
		t.Errorf("PenetrationDepth = %v, want 1", info.PenetrationDepth)
	}
	if !info.ContactPoint.Near(Vector{100, 0}, 1e-12) {
		t.Errorf("ContactPoint = %v, want 100,0", info.ContactPoint)
	}
}

func TestInternalContainmentReversedOrder(t *testing.T) {
	arena := circleAt(100, 0, 0, Internal)
	ball := circleAt(5, 50, 0, External)

	var d Detector
	if got := d.DetectAll([]*Body{ball, arena}); len(got) != 0 {
		t.Fatalf("Expected no collision inside the arena:\n%s", spew.Sdump(got))
	}

	ball.MoveTo(96, 0, false)
	got := d.DetectAll([]*Body{ball, arena})
	if len(got) != 1 || got[0].Body1 != arena {
		t.Fatalf("Expected the arena result to win:\n%s", spew.Sdump(got))
	}
}

func TestInternalBoxContainment(t *testing.T) {
	arena := NewBox(100, 100, 1e8, Internal)
	box := boxAt(10, 10, 0, 0, 0)

	if info := PolyToPoly(arena, box); info.IsCollided {
		t.Fatalf("Expected no collision inside:\n%s", spew.Sdump(info))
	}

	box.MoveTo(47, 0, false)
	info := PolyToPoly(arena, box)
	if !info.IsCollided {
		t.Fatal("Expected the box to cross the right wall")
	}
	if math.Abs(info.PenetrationDepth-2) > 1e-9 {
		t.Errorf("PenetrationDepth = %v, want 2", info.PenetrationDepth)
	}
	if !info.Normal.Near(Vector{-1, 0}, 1e-12) {
		t.Errorf("Normal = %v, want the inward -1,0", info.Normal)
	}
}

func TestPolyToPolySeparated(t *testing.T) {
	a := boxAt(2, 2, 0, 0, 0)
	b := boxAt(2, 2, 2.5, 0, 0)
	if info := PolyToPoly(a, b); info.IsCollided {
		t.Errorf("Expected separated boxes:\n%s", spew.Sdump(info))
	}
}

func TestPolyToPolyCorner(t *testing.T) {
	a := boxAt(2, 2, 0, 0, 0)
	// diamond whose left corner reaches x = 0.8
	b := boxAt(2, 2, 0.8+math.Sqrt2, 0, math.Pi/4)

	info := PolyToPoly(a, b)
	if !info.IsCollided {
		t.Fatal("Expected the corner to collide")
	}
	if math.Abs(info.PenetrationDepth-0.2) > 1e-9 {
		t.Errorf("PenetrationDepth = %v, want 0.2", info.PenetrationDepth)
	}
	if !info.PenetrationPoint.Near(Vector{0.8, 0}, 1e-9) {
		t.Errorf("PenetrationPoint = %v, want 0.8,0", info.PenetrationPoint)
	}
	if !info.ContactPoint.Near(Vector{1, 0}, 1e-9) {
		t.Errorf("ContactPoint = %v, want 1,0", info.ContactPoint)
	}
	if !info.Normal.Near(Vector{1, 0}, 1e-12) {
		t.Errorf("Normal = %v, want 1,0", info.Normal)
	}
}

func TestCircleToPolyFirstVertex(t *testing.T) {
	circle := circleAt(1, 0, 0, External)
	// corner (-0.5, 0) of the box lies inside the circle
	box := boxAt(2, 2, 0.5+math.Sqrt2, 0, math.Pi/4)

	info := CircleToPoly(circle, box)
	if !info.IsCollided {
		t.Fatal("Expected a collision")
	}
	if math.Abs(info.PenetrationDepth-0.5) > 1e-9 {
		t.Errorf("PenetrationDepth = %v, want 0.5", info.PenetrationDepth)
	}
	if !info.ContactPoint.Near(Vector{1, 0}, 1e-9) {
		t.Errorf("ContactPoint = %v, want 1,0", info.ContactPoint)
	}

	swapped := PolyToCircle(box, circle)
	if !swapped.IsCollided || math.Abs(swapped.PenetrationDepth-info.PenetrationDepth) > 1e-9 {
		t.Fatalf("Expected the same depth with roles swapped:\n%s", spew.Sdump(swapped))
	}
	if !swapped.PenetrationPoint.Near(Vector{1, 0}, 1e-9) || !swapped.ContactPoint.Near(Vector{0.5, 0}, 1e-9) {
		t.Errorf("unexpected points: %v, %v", swapped.PenetrationPoint, swapped.ContactPoint)
	}
}

func TestCircleToPolyMissesFace(t *testing.T) {
	// the circle touches the middle of a long face, no corner is inside it
	circle := circleAt(1, 0, 1.5, External)
	box := boxAt(2, 20, 0, 0, 0)

	if info := CircleToPoly(circle, box); info.IsCollided {
		t.Errorf("vertex proximity should not see a face hit:\n%s", spew.Sdump(info))
	}

	var d Detector
	if got := d.DetectAll([]*Body{circle, box}); len(got) != 1 {
		t.Errorf("polygon mode should see the face hit, got %d collisions", len(got))
	}
	d.MixedPairs = MixedPairsByShape
	if got := d.DetectAll([]*Body{circle, box}); len(got) != 0 {
		t.Errorf("shape mode should not see the face hit, got %d collisions", len(got))
	}
}

func TestDetectDispatch(t *testing.T) {
	circle := circleAt(1, 0, 0, External)
	box := boxAt(2, 2, 0, 0, 0)

	var d Detector
	tests := []struct {
		name string
		a, b *Body
		want CollisionInfo
	}{
		{"circle circle", circle, circle, CircleToCircle(circle, circle)},
		{"circle box", circle, box, CircleToPoly(circle, box)},
		{"box circle", box, circle, PolyToCircle(box, circle)},
		{"box box", box, box, PolyToPoly(box, box)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(tt.a, tt.b); got != tt.want {
				t.Errorf("Detect() = %s, want %s", spew.Sdump(got), spew.Sdump(tt.want))
			}
		})
	}
}

func TestDetectAllBelowEpsilon(t *testing.T) {
	tests := []struct {
		name   string
		bodies []*Body
	}{
		{"circles", []*Body{circleAt(1, 0, 0, External), circleAt(1, 2+2*Epsilon, 0, External)}},
		{"boxes", []*Body{boxAt(2, 2, 0, 0, 0), boxAt(2, 2, 2+2*Epsilon, 0, 0)}},
		{"circles touching", []*Body{circleAt(1, 0, 0, External), circleAt(1, 2-Epsilon/2, 0, External)}},
		{"single body", []*Body{circleAt(1, 0, 0, External)}},
		{"empty", nil},
	}

	var d Detector
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.DetectAll(tt.bodies); len(got) != 0 {
				t.Errorf("Expected no collision:\n%s", spew.Sdump(got))
			}
		})
	}
}

func TestDetectAllOrder(t *testing.T) {
	a := circleAt(1, 0, 0, External)
	b := circleAt(1, 1.5, 0, External)
	c := circleAt(1, 10, 0, External)
	d := circleAt(1, 11, 0, External)

	got := Detector{}.DetectAll([]*Body{a, b, c, d})
	if len(got) != 2 {
		t.Fatalf("got %d collisions, want 2", len(got))
	}
	if got[0].Body1 != b && got[0].Body1 != a {
		t.Errorf("first collision should be the a/b pair")
	}
	if got[1].Body1 != c && got[1].Body1 != d {
		t.Errorf("second collision should be the c/d pair")
	}
}

func TestShapeContainsPoint(t *testing.T) {
	circle := circleAt(2, 1, 1, External)
	box := boxAt(2, 4, 0, 0, math.Pi/2)

	tests := []struct {
		name string
		body *Body
		p    Vector
		want bool
	}{
		{"circle center", circle, Vector{1, 1}, true},
		{"circle outside", circle, Vector{3.5, 1}, false},
		{"box center", box, Vector{0, 0}, true},
		{"box rotated inside", box, Vector{0, 1.5}, true},
		{"box rotated outside", box, Vector{1.5, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShapeContainsPoint(tt.body, tt.p); got != tt.want {
				t.Errorf("ShapeContainsPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}
