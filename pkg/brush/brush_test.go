package brush

import (
	"testing"

	"github.com/cloudcalvin/HillVacuum/pkg/anim"
	"github.com/cloudcalvin/HillVacuum/pkg/geom"
	"github.com/cloudcalvin/HillVacuum/pkg/path"
	"github.com/cloudcalvin/HillVacuum/pkg/properties"
)

func testBrush(t *testing.T) *Brush {
	t.Helper()
	poly, err := geom.NewPolygon([]geom.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}})
	if err != nil {
		t.Fatal(err)
	}
	schema, err := properties.NewSchema(
		properties.Definition{Name: "secret", Type: properties.TypeBool, Default: properties.Bool(false)},
	)
	if err != nil {
		t.Fatal(err)
	}
	return New(1, poly, "bricks", schema)
}

func TestNewBrushDefaults(t *testing.T) {
	b := testBrush(t)

	if b.Texture.Name != "bricks" {
		t.Errorf("texture = %q, want bricks", b.Texture.Name)
	}
	if b.Texture.Scale != (geom.Vec2{X: 1, Y: 1}) {
		t.Errorf("scale = %v, want {1 1}", b.Texture.Scale)
	}
	if b.Properties["secret"] != properties.Bool(false) {
		t.Error("schema default not applied")
	}
}

func TestTextureRect_FillTracksPolygon(t *testing.T) {
	b := testBrush(t)

	before := b.TextureRect()
	if before != b.Hull() {
		t.Errorf("fill rect = %+v, want hull %+v", before, b.Hull())
	}

	// The mapping is recomputed from the current bounds after any vertex
	// mutation, never cached.
	if err := b.Polygon().MoveVertex(2, geom.Vec2{X: 8, Y: 8}); err != nil {
		t.Fatal(err)
	}
	after := b.TextureRect()
	if after == before {
		t.Error("fill rect unchanged after vertex mutation")
	}
	if after != b.Hull() {
		t.Errorf("fill rect = %+v, want hull %+v", after, b.Hull())
	}
}

func TestTextureRect_SpriteIgnoresShape(t *testing.T) {
	b := testBrush(t)
	b.Texture.Parallax = ParallaxSprite
	b.Texture.SpriteOffset = geom.Vec2{X: 10, Y: 0}

	rect := b.TextureRect()
	wantCenter := b.Center().Add(geom.Vec2{X: 10, Y: 0})
	if got := rect.Center(); got != wantCenter {
		t.Errorf("sprite rect center = %v, want %v", got, wantCenter)
	}
}

func TestBrushTranslateMovesPath(t *testing.T) {
	b := testBrush(t)
	b.Path = path.New(path.Node{Pos: geom.Vec2{X: 0, Y: 0}}, path.Node{Pos: geom.Vec2{X: 4, Y: 0}})

	b.Translate(geom.Vec2{X: 10, Y: 10})

	if got := b.Polygon().Vertex(0); got != (geom.Vec2{X: 10, Y: 10}) {
		t.Errorf("vertex 0 = %v, want {10 10}", got)
	}
	if got := b.Path.Node(0).Pos; got != (geom.Vec2{X: 10, Y: 10}) {
		t.Errorf("path node 0 = %v, want {10 10}", got)
	}
}

func TestBrushCloneIsDeep(t *testing.T) {
	b := testBrush(t)
	b.Texture.Animation = anim.NewList(anim.Frame{Texture: "bricks1", Duration: 1})
	b.Path = path.New(path.Node{Pos: geom.Vec2{X: 0, Y: 0}})

	c := b.Clone()
	if !b.Equal(c) {
		t.Fatal("clone compares unequal to original")
	}

	c.Translate(geom.Vec2{X: 100, Y: 0})
	c.Properties["secret"] = properties.Bool(true)
	c.Texture.Animation.List().Frames[0].Texture = "other"

	if got := b.Polygon().Vertex(0); got != (geom.Vec2{X: 0, Y: 0}) {
		t.Error("translating the clone moved the original")
	}
	if b.Properties["secret"] != properties.Bool(false) {
		t.Error("mutating the clone's properties changed the original")
	}
	if b.Texture.Animation.List().Frames[0].Texture != "bricks1" {
		t.Error("mutating the clone's animation changed the original")
	}
}
