package formats

import (
	"github.com/cloudcalvin/HillVacuum/pkg/brush"
	"github.com/cloudcalvin/HillVacuum/pkg/geom"
	"github.com/cloudcalvin/HillVacuum/pkg/path"
	"github.com/cloudcalvin/HillVacuum/pkg/thing"
)

// Entity wire layouts. Fixed fields come first in a fixed order, the
// property mapping last, so a reader can reconcile properties before
// materializing the entity.

func (w *writer) appendPath(p *path.Path) {
	if p == nil {
		w.bool(false)
		return
	}
	w.bool(true)
	nodes := p.Nodes()
	w.u32(uint32(len(nodes)))
	for _, n := range nodes {
		w.vec2(n.Pos)
		w.f32(n.Movement.MaxSpeed)
		w.f32(n.Movement.MinSpeed)
		w.f32(n.Movement.AccelPercent)
		w.f32(n.Movement.DecelPercent)
		w.f32(n.Movement.StandbyTime)
	}
}

func (r *reader) path() (*path.Path, error) {
	present, err := r.bool("path flag")
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}

	n, err := r.u32("path node count")
	if err != nil {
		return nil, err
	}
	nodes := make([]path.Node, 0, n)
	for i := uint32(0); i < n; i++ {
		pos, err := r.vec2("path node position")
		if err != nil {
			return nil, err
		}
		var m path.Movement
		for _, field := range []*float32{&m.MaxSpeed, &m.MinSpeed, &m.AccelPercent, &m.DecelPercent, &m.StandbyTime} {
			v, err := r.f32("path node movement")
			if err != nil {
				return nil, err
			}
			*field = v
		}
		nodes = append(nodes, path.Node{Pos: pos, Movement: m})
	}
	return path.New(nodes...), nil
}

func (w *writer) appendBrush(b *brush.Brush) error {
	w.u64(b.ID)

	vs := b.Polygon().Vertices()
	w.u32(uint32(len(vs)))
	for _, v := range vs {
		w.vec2(v)
	}

	if err := w.str(b.Texture.Name); err != nil {
		return err
	}
	w.vec2(b.Texture.Offset)
	w.vec2(b.Texture.Scale)
	w.f32(b.Texture.Rotation)
	w.u8(uint8(b.Texture.Parallax))
	w.vec2(b.Texture.SpriteOffset)
	if err := w.appendAnimation(b.Texture.Animation); err != nil {
		return err
	}

	w.bool(b.Collision)
	w.appendPath(b.Path)
	return w.appendInstance(b.Properties)
}

func (r *reader) brush() (*brush.Brush, error) {
	id, err := r.u64("brush id")
	if err != nil {
		return nil, err
	}

	n, err := r.u32("vertex count")
	if err != nil {
		return nil, err
	}
	vertices := make([]geom.Vec2, 0, n)
	for i := uint32(0); i < n; i++ {
		v, err := r.vec2("vertex")
		if err != nil {
			return nil, err
		}
		vertices = append(vertices, v)
	}
	polygon, err := geom.NewPolygon(vertices)
	if err != nil {
		return nil, r.failf("brush %d: %v", id, err)
	}

	var texture brush.TextureSettings
	if texture.Name, err = r.str("texture name"); err != nil {
		return nil, err
	}
	if texture.Offset, err = r.vec2("texture offset"); err != nil {
		return nil, err
	}
	if texture.Scale, err = r.vec2("texture scale"); err != nil {
		return nil, err
	}
	if texture.Rotation, err = r.f32("texture rotation"); err != nil {
		return nil, err
	}
	mode, err := r.u8("parallax mode")
	if err != nil {
		return nil, err
	}
	if mode > uint8(brush.ParallaxSprite) {
		return nil, r.failf("brush %d: unknown parallax mode %d", id, mode)
	}
	texture.Parallax = brush.Parallax(mode)
	if texture.SpriteOffset, err = r.vec2("sprite offset"); err != nil {
		return nil, err
	}
	if texture.Animation, err = r.animation(); err != nil {
		return nil, err
	}

	collision, err := r.bool("collision flag")
	if err != nil {
		return nil, err
	}
	p, err := r.path()
	if err != nil {
		return nil, err
	}
	props, err := r.instance()
	if err != nil {
		return nil, err
	}

	return brush.FromParts(id, polygon, texture, collision, p, props), nil
}

func (w *writer) appendThing(t *thing.Instance) error {
	w.u64(t.ID)
	w.u16(t.Thing)
	w.vec2(t.Pos)
	w.appendPath(t.Path)
	return w.appendInstance(t.Properties)
}

func (r *reader) thing() (*thing.Instance, error) {
	id, err := r.u64("thing id")
	if err != nil {
		return nil, err
	}
	def, err := r.u16("thing definition id")
	if err != nil {
		return nil, err
	}
	pos, err := r.vec2("thing position")
	if err != nil {
		return nil, err
	}
	p, err := r.path()
	if err != nil {
		return nil, err
	}
	props, err := r.instance()
	if err != nil {
		return nil, err
	}

	return &thing.Instance{ID: id, Thing: def, Pos: pos, Path: p, Properties: props}, nil
}
