package path

import (
	"testing"

	"github.com/cloudcalvin/HillVacuum/pkg/geom"
)

func TestPathOrderPreserved(t *testing.T) {
	p := New(
		Node{Pos: geom.Vec2{X: 0, Y: 0}},
		Node{Pos: geom.Vec2{X: 10, Y: 0}},
		Node{Pos: geom.Vec2{X: 10, Y: 10}},
	)

	if p.Len() != 3 {
		t.Fatalf("expected 3 nodes, got %d", p.Len())
	}
	want := []geom.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	for i, n := range p.Nodes() {
		if n.Pos != want[i] {
			t.Errorf("node %d = %v, want %v", i, n.Pos, want[i])
		}
	}
}

func TestPathInsertRemove(t *testing.T) {
	p := New(Node{Pos: geom.Vec2{X: 0, Y: 0}}, Node{Pos: geom.Vec2{X: 10, Y: 0}})

	if err := p.Insert(1, Node{Pos: geom.Vec2{X: 5, Y: 5}}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if got := p.Node(1).Pos; got != (geom.Vec2{X: 5, Y: 5}) {
		t.Errorf("node 1 = %v, want {5 5}", got)
	}

	if err := p.Remove(0); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if got := p.Node(0).Pos; got != (geom.Vec2{X: 5, Y: 5}) {
		t.Errorf("node 0 after remove = %v, want {5 5}", got)
	}

	if err := p.Remove(10); err == nil {
		t.Error("expected error for out-of-range remove")
	}
}

func TestPathSetMovement(t *testing.T) {
	p := New(Node{Pos: geom.Vec2{X: 0, Y: 0}, Movement: DefaultMovement()})

	m := Movement{MaxSpeed: 120, MinSpeed: 30, AccelPercent: 0.25, DecelPercent: 0.25, StandbyTime: 1.5}
	if err := p.SetMovement(0, m); err != nil {
		t.Fatalf("SetMovement failed: %v", err)
	}
	if p.Node(0).Movement != m {
		t.Errorf("movement = %+v, want %+v", p.Node(0).Movement, m)
	}
}

func TestPathCloneIsIndependent(t *testing.T) {
	p := New(Node{Pos: geom.Vec2{X: 0, Y: 0}}, Node{Pos: geom.Vec2{X: 1, Y: 1}})
	c := p.Clone()

	if !p.Equal(c) {
		t.Fatal("clone differs from original")
	}

	c.Translate(geom.Vec2{X: 100, Y: 0})
	if p.Equal(c) {
		t.Error("translating the clone changed the original")
	}
	if got := p.Node(0).Pos; got != (geom.Vec2{X: 0, Y: 0}) {
		t.Errorf("original node 0 = %v, want {0 0}", got)
	}
}
