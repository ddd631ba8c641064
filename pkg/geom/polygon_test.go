package geom

import (
	"errors"
	"testing"
)

func square(t *testing.T) *ConvexPolygon {
	t.Helper()
	p, err := NewPolygon([]Vec2{{0, 0}, {2, 0}, {2, 2}, {0, 2}})
	if err != nil {
		t.Fatalf("NewPolygon failed: %v", err)
	}
	return p
}

func TestNewPolygon_Valid(t *testing.T) {
	p := square(t)
	if p.VertexCount() != 4 {
		t.Errorf("expected 4 vertices, got %d", p.VertexCount())
	}
	if p.Area() != 4 {
		t.Errorf("expected area 4, got %f", p.Area())
	}
}

func TestNewPolygon_NormalizesWinding(t *testing.T) {
	// Clockwise input gets reversed to counter-clockwise.
	p, err := NewPolygon([]Vec2{{0, 2}, {2, 2}, {2, 0}, {0, 0}})
	if err != nil {
		t.Fatalf("NewPolygon failed: %v", err)
	}
	if p.Area() <= 0 {
		t.Errorf("expected positive area after normalization, got %f", p.Area())
	}
}

func TestNewPolygon_TooFewVertices(t *testing.T) {
	_, err := NewPolygon([]Vec2{{0, 0}, {1, 0}})
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestNewPolygon_Concave(t *testing.T) {
	_, err := NewPolygon([]Vec2{{0, 0}, {4, 0}, {4, 4}, {2, 1}, {0, 4}})
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestNewPolygon_Collinear(t *testing.T) {
	_, err := NewPolygon([]Vec2{{0, 0}, {1, 0}, {2, 0}})
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry for collinear vertices, got %v", err)
	}
}

func TestAddVertex_Valid(t *testing.T) {
	p := square(t)
	if err := p.AddVertex(2, Vec2{3, 1}); err != nil {
		t.Fatalf("AddVertex failed: %v", err)
	}
	if p.VertexCount() != 5 {
		t.Errorf("expected 5 vertices, got %d", p.VertexCount())
	}
}

func TestAddVertex_BreaksConvexity(t *testing.T) {
	p := square(t)
	before := p.Vertices()

	err := p.AddVertex(2, Vec2{1, 1})
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry, got %v", err)
	}

	after := p.Vertices()
	if len(before) != len(after) {
		t.Fatal("polygon changed after rejected mutation")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("vertex %d changed after rejected mutation", i)
		}
	}
}

func TestRemoveVertex(t *testing.T) {
	p := square(t)
	if err := p.RemoveVertex(3); err != nil {
		t.Fatalf("RemoveVertex failed: %v", err)
	}
	if p.VertexCount() != 3 {
		t.Fatalf("expected 3 vertices, got %d", p.VertexCount())
	}

	// Triangles may not lose another vertex.
	err := p.RemoveVertex(0)
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
	if p.VertexCount() != 3 {
		t.Errorf("polygon changed after rejected removal")
	}
}

func TestMoveVertex(t *testing.T) {
	p := square(t)

	if err := p.MoveVertex(2, Vec2{3, 3}); err != nil {
		t.Fatalf("MoveVertex failed: %v", err)
	}
	if got := p.Vertex(2); got != (Vec2{3, 3}) {
		t.Errorf("vertex 2 = %v, want {3 3}", got)
	}

	// Moving a corner into the interior makes the polygon concave.
	before := p.Vertices()
	err := p.MoveVertex(2, Vec2{1, 0.5})
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry, got %v", err)
	}
	for i, v := range p.Vertices() {
		if v != before[i] {
			t.Errorf("vertex %d changed after rejected move", i)
		}
	}

	// A corner flattened onto the line between its neighbors is a 180°
	// interior angle, which stays legal.
	if err := p.MoveVertex(2, Vec2{1, 1}); err != nil {
		t.Errorf("collinear corner rejected: %v", err)
	}
}

func TestMutationSequencePreservesConvexity(t *testing.T) {
	p := square(t)

	ops := []func() error{
		func() error { return p.AddVertex(2, Vec2{3, 1}) },
		func() error { return p.MoveVertex(0, Vec2{-1, 0}) },
		func() error { return p.RemoveVertex(4) },
		func() error { return p.AddVertex(1, Vec2{1, -1}) },
	}
	for i, op := range ops {
		if err := op(); err != nil {
			t.Fatalf("op %d failed: %v", i, err)
		}
		if err := validateConvex(p.vertices); err != nil {
			t.Fatalf("polygon invalid after op %d: %v", i, err)
		}
	}
}

func TestSplit(t *testing.T) {
	p := square(t)

	a, b, err := p.Split(0, 2)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if a.VertexCount() != 3 || b.VertexCount() != 3 {
		t.Errorf("expected two triangles, got %d and %d vertices", a.VertexCount(), b.VertexCount())
	}
	if got := a.Area() + b.Area(); got != p.Area() {
		t.Errorf("split halves area = %f, want %f", got, p.Area())
	}
	if p.VertexCount() != 4 {
		t.Error("original polygon modified by split")
	}
}

func TestSplit_AdjacentVertices(t *testing.T) {
	p := square(t)
	_, _, err := p.Split(0, 1)
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestMerge(t *testing.T) {
	a, err := NewPolygon([]Vec2{{0, 0}, {2, 0}, {2, 2}})
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewPolygon([]Vec2{{2, 2}, {0, 2}, {0, 0}})
	if err != nil {
		t.Fatal(err)
	}

	m, err := a.Merge(b)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if m.VertexCount() != 4 {
		t.Errorf("expected 4 vertices, got %d", m.VertexCount())
	}
	if m.Area() != 4 {
		t.Errorf("expected area 4, got %f", m.Area())
	}
	if a.VertexCount() != 3 || b.VertexCount() != 3 {
		t.Error("merge inputs were modified")
	}
}

func TestMerge_NoSharedEdge(t *testing.T) {
	a := square(t)
	b, err := NewPolygon([]Vec2{{10, 10}, {12, 10}, {12, 12}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Merge(b); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestContainsPoint(t *testing.T) {
	p := square(t)

	tests := []struct {
		point Vec2
		want  bool
	}{
		{Vec2{1, 1}, true},
		{Vec2{0, 0}, true},
		{Vec2{2, 1}, true},
		{Vec2{3, 1}, false},
		{Vec2{-0.1, 1}, false},
	}
	for _, tc := range tests {
		if got := p.ContainsPoint(tc.point); got != tc.want {
			t.Errorf("ContainsPoint(%v) = %v, want %v", tc.point, got, tc.want)
		}
	}
}

func TestTranslated(t *testing.T) {
	p := square(t)
	q := p.Translated(Vec2{10, 10})
	if got := q.Vertex(0); got != (Vec2{10, 10}) {
		t.Errorf("translated vertex 0 = %v, want {10 10}", got)
	}
	if got := p.Vertex(0); got != (Vec2{0, 0}) {
		t.Errorf("original vertex 0 = %v, want {0 0}", got)
	}
}
