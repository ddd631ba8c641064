// Package props implements reusable entity bundles: a pivot-anchored set of
// brushes and things captured once and stamped onto maps as a unit.
package props

import (
	"github.com/cloudcalvin/HillVacuum/pkg/brush"
	"github.com/cloudcalvin/HillVacuum/pkg/geom"
	"github.com/cloudcalvin/HillVacuum/pkg/thing"
)

// IDAllocator hands out fresh entity identities for stamped copies. The
// document implements it.
type IDAllocator interface {
	NextID() uint64
}

// Prop owns deep copies of its member entities and has no back-reference to
// any originating map.
type Prop struct {
	pivot   geom.Vec2
	brushes []*brush.Brush
	things  []*thing.Instance
}

// Capture deep-copies the given entities into a new prop anchored at pivot.
func Capture(brushes []*brush.Brush, things []*thing.Instance, pivot geom.Vec2) *Prop {
	p := &Prop{
		pivot:   pivot,
		brushes: make([]*brush.Brush, 0, len(brushes)),
		things:  make([]*thing.Instance, 0, len(things)),
	}
	for _, b := range brushes {
		p.brushes = append(p.brushes, b.Clone())
	}
	for _, t := range things {
		p.things = append(p.things, t.Clone())
	}
	return p
}

// FromParts assembles a prop from already-built members, taking ownership of
// the slices. Used by the codec.
func FromParts(pivot geom.Vec2, brushes []*brush.Brush, things []*thing.Instance) *Prop {
	return &Prop{pivot: pivot, brushes: brushes, things: things}
}

// Pivot returns the anchor point the bundle is positioned by when stamped.
func (p *Prop) Pivot() geom.Vec2 {
	return p.pivot
}

// BrushCount returns the number of member brushes.
func (p *Prop) BrushCount() int {
	return len(p.brushes)
}

// ThingCount returns the number of member things.
func (p *Prop) ThingCount() int {
	return len(p.things)
}

// Brushes returns the member brushes. Callers must not mutate them; stamping
// is how copies enter a map.
func (p *Prop) Brushes() []*brush.Brush {
	out := make([]*brush.Brush, len(p.brushes))
	copy(out, p.brushes)
	return out
}

// Things returns the member things. Callers must not mutate them.
func (p *Prop) Things() []*thing.Instance {
	out := make([]*thing.Instance, len(p.things))
	copy(out, p.things)
	return out
}

// Stamp instantiates fresh copies of every member translated by
// target - pivot. Each copy gets a new identity from ids, so stamped
// instances never alias the stored originals or each other.
func (p *Prop) Stamp(target geom.Vec2, ids IDAllocator) ([]*brush.Brush, []*thing.Instance) {
	delta := target.Sub(p.pivot)

	brushes := make([]*brush.Brush, 0, len(p.brushes))
	for _, b := range p.brushes {
		c := b.Clone()
		c.ID = ids.NextID()
		c.Translate(delta)
		brushes = append(brushes, c)
	}

	things := make([]*thing.Instance, 0, len(p.things))
	for _, t := range p.things {
		c := t.Clone()
		c.ID = ids.NextID()
		c.Translate(delta)
		things = append(things, c)
	}
	return brushes, things
}

// Clone returns a deep copy of the prop.
func (p *Prop) Clone() *Prop {
	return Capture(p.brushes, p.things, p.pivot)
}

// Equal compares two props member for member.
func (p *Prop) Equal(other *Prop) bool {
	if p.pivot != other.pivot ||
		len(p.brushes) != len(other.brushes) ||
		len(p.things) != len(other.things) {
		return false
	}
	for i, b := range p.brushes {
		if !b.Equal(other.brushes[i]) {
			return false
		}
	}
	for i, t := range p.things {
		if !t.Equal(other.things[i]) {
			return false
		}
	}
	return true
}
