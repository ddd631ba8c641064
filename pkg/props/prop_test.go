package props

import (
	"testing"

	"github.com/cloudcalvin/HillVacuum/pkg/brush"
	"github.com/cloudcalvin/HillVacuum/pkg/geom"
	"github.com/cloudcalvin/HillVacuum/pkg/properties"
	"github.com/cloudcalvin/HillVacuum/pkg/thing"
)

type counter uint64

func (c *counter) NextID() uint64 {
	*c++
	return uint64(*c)
}

func emptySchema(t *testing.T) *properties.Schema {
	t.Helper()
	s, err := properties.NewSchema()
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func brushAt(t *testing.T, id uint64, center geom.Vec2) *brush.Brush {
	t.Helper()
	poly, err := geom.NewPolygon([]geom.Vec2{
		{X: center.X - 1, Y: center.Y - 1},
		{X: center.X + 1, Y: center.Y - 1},
		{X: center.X + 1, Y: center.Y + 1},
		{X: center.X - 1, Y: center.Y + 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	return brush.New(id, poly, "bricks", emptySchema(t))
}

func TestCaptureIsDeep(t *testing.T) {
	original := brushAt(t, 1, geom.Vec2{X: 5, Y: 5})
	p := Capture([]*brush.Brush{original}, nil, geom.Vec2{X: 0, Y: 0})

	original.Translate(geom.Vec2{X: 100, Y: 0})

	if got := p.Brushes()[0].Center(); got != (geom.Vec2{X: 5, Y: 5}) {
		t.Errorf("prop member moved with the original: center = %v", got)
	}
}

func TestStamp(t *testing.T) {
	original := brushAt(t, 1, geom.Vec2{X: 5, Y: 5})
	p := Capture([]*brush.Brush{original}, nil, geom.Vec2{X: 0, Y: 0})

	ids := counter(10)
	brushes, things := p.Stamp(geom.Vec2{X: 10, Y: 10}, &ids)

	if len(brushes) != 1 || len(things) != 0 {
		t.Fatalf("stamp yielded %d brushes, %d things", len(brushes), len(things))
	}

	stamped := brushes[0]
	if got := stamped.Center(); got != (geom.Vec2{X: 15, Y: 15}) {
		t.Errorf("stamped center = %v, want {15 15}", got)
	}
	if stamped.ID == original.ID {
		t.Error("stamped brush aliases the original's identity")
	}
	if stamped == p.Brushes()[0] {
		t.Error("stamped brush aliases the stored member")
	}
}

func TestStampTwiceNeverAliases(t *testing.T) {
	p := Capture([]*brush.Brush{brushAt(t, 1, geom.Vec2{X: 0, Y: 0})}, nil, geom.Vec2{X: 0, Y: 0})

	ids := counter(0)
	first, _ := p.Stamp(geom.Vec2{X: 1, Y: 0}, &ids)
	second, _ := p.Stamp(geom.Vec2{X: 2, Y: 0}, &ids)

	if first[0].ID == second[0].ID {
		t.Error("two stamps share an identity")
	}
	if first[0] == second[0] {
		t.Error("two stamps share a brush")
	}
}

func TestStampThingsKeepProperties(t *testing.T) {
	reg, err := properties.NewRegistry(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	inst := thing.NewInstance(1, 7, geom.Vec2{X: 2, Y: 2}, reg.Things())
	inst.SetAngle(45)

	p := Capture(nil, []*thing.Instance{inst}, geom.Vec2{X: 2, Y: 2})

	ids := counter(10)
	_, things := p.Stamp(geom.Vec2{X: 8, Y: 8}, &ids)

	if got := things[0].Pos; got != (geom.Vec2{X: 8, Y: 8}) {
		t.Errorf("stamped thing pos = %v, want {8 8}", got)
	}
	if got := things[0].Angle(); got != 45 {
		t.Errorf("stamped thing angle = %v, want 45", got)
	}
	if things[0].ID == inst.ID {
		t.Error("stamped thing aliases the original's identity")
	}
}

func TestPropEqual(t *testing.T) {
	a := Capture([]*brush.Brush{brushAt(t, 1, geom.Vec2{X: 0, Y: 0})}, nil, geom.Vec2{X: 1, Y: 1})
	b := a.Clone()

	if !a.Equal(b) {
		t.Error("clone compares unequal")
	}

	c := Capture([]*brush.Brush{brushAt(t, 1, geom.Vec2{X: 0, Y: 0})}, nil, geom.Vec2{X: 2, Y: 2})
	if a.Equal(c) {
		t.Error("props with different pivots compare equal")
	}
}
