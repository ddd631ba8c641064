package geom

import "testing"

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Cross(t *testing.T) {
	x := Vec2{1, 0}
	y := Vec2{0, 1}
	if got := x.Cross(y); got != 1 {
		t.Errorf("Vec2.Cross() = %v, want 1", got)
	}
	if got := y.Cross(x); got != -1 {
		t.Errorf("Vec2.Cross() reversed = %v, want -1", got)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.Length(); got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestVec2Distance(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{6, 8}
	if got := a.Distance(b); got != 10 {
		t.Errorf("Vec2.Distance() = %v, want 10", got)
	}
}

func TestHullFromPoints(t *testing.T) {
	points := []Vec2{{-1, 2}, {3, -4}, {0, 0}}
	h, ok := HullFromPoints(points)
	if !ok {
		t.Fatal("HullFromPoints returned not ok")
	}
	want := Hull{Top: 2, Bottom: -4, Left: -1, Right: 3}
	if h != want {
		t.Errorf("HullFromPoints() = %+v, want %+v", h, want)
	}
	if h.Width() != 4 || h.Height() != 6 {
		t.Errorf("hull dimensions = %v x %v, want 4 x 6", h.Width(), h.Height())
	}
}

func TestHullFromPoints_Empty(t *testing.T) {
	if _, ok := HullFromPoints(nil); ok {
		t.Error("expected not ok for empty point set")
	}
}

func TestHullOverlaps(t *testing.T) {
	a := NewHull(2, 0, 0, 2)
	b := NewHull(3, 1, 1, 3)
	c := NewHull(10, 5, 5, 10)

	if !a.Overlaps(b) {
		t.Error("expected a and b to overlap")
	}
	if a.Overlaps(c) {
		t.Error("expected a and c not to overlap")
	}
}

func TestHullMerged(t *testing.T) {
	a := NewHull(2, 0, 0, 2)
	b := NewHull(5, 3, 3, 5)
	m := a.Merged(b)
	want := Hull{Top: 5, Bottom: 0, Left: 0, Right: 5}
	if m != want {
		t.Errorf("Hull.Merged() = %+v, want %+v", m, want)
	}
}
