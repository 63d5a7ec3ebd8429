package geometry

import "testing"

func TestRectangleContains(t *testing.T) {
	r := Rect(10, 10, 20, 10)
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(10, 10), true},   // top-left inclusive
		{Pt(29.9, 19.9), true},
		{Pt(30, 15), false},  // right edge exclusive
		{Pt(15, 20), false},  // bottom edge exclusive
		{Pt(9.9, 15), false},
		{Pt(15, 9.9), false},
	}
	for _, tc := range tests {
		if got := r.Contains(tc.p); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestRectangleIntersection(t *testing.T) {
	r := Rect(0, 0, 10, 10)

	got, ok := r.Intersection(Rect(5, 5, 10, 10))
	if !ok {
		t.Fatal("expected overlap")
	}
	if got != Rect(5, 5, 5, 5) {
		t.Fatalf("intersection = %+v, want (5,5,5,5)", got)
	}

	if _, ok := r.Intersection(Rect(20, 20, 5, 5)); ok {
		t.Fatal("disjoint rectangles should not intersect")
	}
	// Touching edges produce an empty intersection.
	if _, ok := r.Intersection(Rect(10, 0, 5, 5)); ok {
		t.Fatal("edge-touching rectangles should not intersect")
	}
}

func TestRectangleTranslate(t *testing.T) {
	r := Rect(1, 2, 3, 4).Translate(Vec(10, -2))
	if r != Rect(11, 0, 3, 4) {
		t.Fatalf("translate = %+v, want (11,0,3,4)", r)
	}
}

func TestPointOps(t *testing.T) {
	p := Pt(2, 3).Add(Vec(1, 1)).Mul(2)
	if p != Pt(6, 8) {
		t.Fatalf("point chain = %v, want (6,8)", p)
	}
	v := Pt(6, 8).Sub(Pt(1, 3))
	if v != Vec(5, 5) {
		t.Fatalf("sub = %v, want (5,5)", v)
	}
	if got := Pt(6, 8).Div(2); got != Pt(3, 4) {
		t.Fatalf("div = %v, want (3,4)", got)
	}
}
