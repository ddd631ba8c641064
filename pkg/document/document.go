// Package document ties the model packages together: it owns the live entity
// sets of one open map, loads and saves the binary formats, and hands out
// entity identities.
//
// The document is single-threaded. Mutations run to completion before
// returning and the hosting application must serialize access.
package document

import (
	"fmt"

	"github.com/cloudcalvin/HillVacuum/pkg/anim"
	"github.com/cloudcalvin/HillVacuum/pkg/brush"
	"github.com/cloudcalvin/HillVacuum/pkg/formats"
	"github.com/cloudcalvin/HillVacuum/pkg/geom"
	"github.com/cloudcalvin/HillVacuum/pkg/properties"
	"github.com/cloudcalvin/HillVacuum/pkg/props"
	"github.com/cloudcalvin/HillVacuum/pkg/thing"
)

// Document is one open map: brushes, things, texture animation defaults and
// captured props, plus the property schemas in effect for this session.
type Document struct {
	brushSchema *properties.Schema
	thingSchema *properties.Schema

	brushes    []*brush.Brush
	things     []*thing.Instance
	animations *anim.Library
	props      []*props.Prop

	nextID uint64
}

// New creates an empty document using the registry's schemas.
func New(reg *properties.Registry) *Document {
	return &Document{
		brushSchema: reg.Brushes(),
		thingSchema: reg.Things(),
		animations:  anim.NewLibrary(),
		nextID:      1,
	}
}

// NextID hands out a fresh entity identity. Implements props.IDAllocator.
func (d *Document) NextID() uint64 {
	id := d.nextID
	d.nextID++
	return id
}

// BrushSchema returns the brush property schema in effect.
func (d *Document) BrushSchema() *properties.Schema { return d.brushSchema }

// ThingSchema returns the thing property schema in effect.
func (d *Document) ThingSchema() *properties.Schema { return d.thingSchema }

// Animations returns the document's texture animation defaults.
func (d *Document) Animations() *anim.Library { return d.animations }

// Brushes returns the live brushes. Callers may mutate individual brushes
// but must not grow or reorder the slice.
func (d *Document) Brushes() []*brush.Brush {
	out := make([]*brush.Brush, len(d.brushes))
	copy(out, d.brushes)
	return out
}

// Things returns the live thing instances.
func (d *Document) Things() []*thing.Instance {
	out := make([]*thing.Instance, len(d.things))
	copy(out, d.things)
	return out
}

// Props returns the captured props.
func (d *Document) Props() []*props.Prop {
	out := make([]*props.Prop, len(d.props))
	copy(out, d.props)
	return out
}

// Brush returns the brush with the given identity, or nil.
func (d *Document) Brush(id uint64) *brush.Brush {
	for _, b := range d.brushes {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// Thing returns the thing instance with the given identity, or nil.
func (d *Document) Thing(id uint64) *thing.Instance {
	for _, t := range d.things {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// NewBrush creates a brush over the polygon with a fresh identity and
// schema-default properties, adds it and returns it.
func (d *Document) NewBrush(polygon *geom.ConvexPolygon, texture string) *brush.Brush {
	b := brush.New(d.NextID(), polygon, texture, d.brushSchema)
	d.brushes = append(d.brushes, b)
	return b
}

// NewThing places a thing instance with a fresh identity and schema-default
// properties. The definition ID is recorded as given; whether it resolves is
// the catalog's business, stale IDs stay put.
func (d *Document) NewThing(def uint16, pos geom.Vec2) *thing.Instance {
	t := thing.NewInstance(d.NextID(), def, pos, d.thingSchema)
	d.things = append(d.things, t)
	return t
}

// RemoveBrush detaches the brush with the given identity. Returns false when
// no such brush exists.
func (d *Document) RemoveBrush(id uint64) bool {
	for i, b := range d.brushes {
		if b.ID == id {
			d.brushes = append(d.brushes[:i], d.brushes[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveThing detaches the thing instance with the given identity.
func (d *Document) RemoveThing(id uint64) bool {
	for i, t := range d.things {
		if t.ID == id {
			d.things = append(d.things[:i], d.things[i+1:]...)
			return true
		}
	}
	return false
}

// CaptureProp deep-copies the entities with the given identities into a new
// prop anchored at pivot and stores it.
func (d *Document) CaptureProp(brushIDs, thingIDs []uint64, pivot geom.Vec2) (*props.Prop, error) {
	var bs []*brush.Brush
	for _, id := range brushIDs {
		b := d.Brush(id)
		if b == nil {
			return nil, fmt.Errorf("capture prop: no brush with id %d", id)
		}
		bs = append(bs, b)
	}
	var ts []*thing.Instance
	for _, id := range thingIDs {
		t := d.Thing(id)
		if t == nil {
			return nil, fmt.Errorf("capture prop: no thing with id %d", id)
		}
		ts = append(ts, t)
	}
	p := props.Capture(bs, ts, pivot)
	d.props = append(d.props, p)
	return p, nil
}

// StampProp instantiates the prop at target and adds the fresh copies to the
// document. Returns the stamped entities.
func (d *Document) StampProp(p *props.Prop, target geom.Vec2) ([]*brush.Brush, []*thing.Instance) {
	bs, ts := p.Stamp(target, d)
	d.brushes = append(d.brushes, bs...)
	d.things = append(d.things, ts...)
	return bs, ts
}

// AddProp stores an already-built prop, for example one loaded from a .prps
// exchange file.
func (d *Document) AddProp(p *props.Prop) {
	d.props = append(d.props, p)
}

// snapshot assembles the current state into a file value for the codec.
func (d *Document) snapshot() *formats.HVFile {
	animations := make([]formats.TextureAnimation, 0, d.animations.Len())
	for _, texture := range d.animations.Textures() {
		animations = append(animations, formats.TextureAnimation{
			Texture:   texture,
			Animation: d.animations.Default(texture),
		})
	}
	return &formats.HVFile{
		BrushSchema: d.brushSchema,
		ThingSchema: d.thingSchema,
		Animations:  animations,
		Brushes:     d.brushes,
		Things:      d.things,
		Props:       d.props,
	}
}

// Save encodes the full document as a .hv stream.
func (d *Document) Save() ([]byte, error) {
	return formats.WriteHV(d.snapshot())
}

// SaveFile writes the full document to disk.
func (d *Document) SaveFile(path string) error {
	return formats.WriteHVFile(path, d.snapshot())
}

// SaveAnimations encodes the texture animation defaults as a .anms exchange
// stream.
func (d *Document) SaveAnimations() ([]byte, error) {
	return formats.WriteANMS(d.snapshot().Animations)
}

// SaveProps encodes the captured props as a .prps exchange stream.
func (d *Document) SaveProps() ([]byte, error) {
	return formats.WritePRPS(d.props)
}
