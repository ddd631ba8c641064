package document

import (
	"os"

	"github.com/cloudcalvin/HillVacuum/pkg/anim"
	"github.com/cloudcalvin/HillVacuum/pkg/formats"
	"github.com/cloudcalvin/HillVacuum/pkg/properties"
)

// Pending is a parsed document whose saved property schemas drift from the
// application's. No entities have been materialized yet; the caller picks a
// resolution and calls Resolve to finish the load.
type Pending struct {
	BrushDrift properties.Drift
	ThingDrift properties.Drift

	file     *formats.HVFile
	registry *properties.Registry
}

// Resolve completes a pending load under the given resolution. It may be
// called more than once; each call materializes an independent document.
func (p *Pending) Resolve(res properties.Resolution) *Document {
	return materialize(cloneFile(p.file), p.registry, res)
}

// cloneFile deep-copies the parsed records so a materialization never shares
// entities with another.
func cloneFile(f *formats.HVFile) *formats.HVFile {
	out := &formats.HVFile{
		BrushSchema: f.BrushSchema,
		ThingSchema: f.ThingSchema,
		Animations:  f.Animations,
	}
	for _, b := range f.Brushes {
		out.Brushes = append(out.Brushes, b.Clone())
	}
	for _, t := range f.Things {
		out.Things = append(out.Things, t.Clone())
	}
	for _, p := range f.Props {
		out.Props = append(out.Props, p.Clone())
	}
	return out
}

// Load parses a .hv stream and materializes a document against the
// registry's schemas. When the saved schemas drift from the registry's it
// returns a Pending instead, leaving the decision to the caller; nothing is
// materialized until Resolve. A previously loaded document is never touched:
// loading always builds a fresh one.
func Load(data []byte, reg *properties.Registry) (*Document, *Pending, error) {
	f, err := formats.ParseHV(data)
	if err != nil {
		return nil, nil, err
	}

	brushDrift := properties.Diff(f.BrushSchema, reg.Brushes())
	thingDrift := properties.Diff(f.ThingSchema, reg.Things())
	if !brushDrift.None() || !thingDrift.None() {
		return nil, &Pending{
			BrushDrift: brushDrift,
			ThingDrift: thingDrift,
			file:       f,
			registry:   reg,
		}, nil
	}
	return materialize(f, reg, properties.AdoptApplication), nil, nil
}

// LoadFile is Load over a file on disk.
func LoadFile(path string, reg *properties.Registry) (*Document, *Pending, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return Load(data, reg)
}

// materialize turns parsed records into a live document, reconciling every
// entity's properties under the chosen resolution. The parsed file is
// consumed; its entities become the document's.
func materialize(f *formats.HVFile, reg *properties.Registry, res properties.Resolution) *Document {
	brushSchema := reg.Brushes()
	thingSchema := reg.Things()
	if res == properties.AdoptMap {
		brushSchema = f.BrushSchema
		thingSchema = f.ThingSchema
	}

	d := &Document{
		brushSchema: brushSchema,
		thingSchema: thingSchema,
		brushes:     f.Brushes,
		things:      f.Things,
		props:       f.Props,
		animations:  anim.NewLibrary(),
		nextID:      1,
	}

	for _, b := range d.brushes {
		b.Properties = properties.Reconcile(b.Properties, f.BrushSchema, reg.Brushes(), res)
		if b.ID >= d.nextID {
			d.nextID = b.ID + 1
		}
	}
	for _, t := range d.things {
		t.Properties = properties.Reconcile(t.Properties, f.ThingSchema, reg.Things(), res)
		if t.ID >= d.nextID {
			d.nextID = t.ID + 1
		}
	}
	for _, p := range d.props {
		for _, b := range p.Brushes() {
			b.Properties = properties.Reconcile(b.Properties, f.BrushSchema, reg.Brushes(), res)
			if b.ID >= d.nextID {
				d.nextID = b.ID + 1
			}
		}
		for _, t := range p.Things() {
			t.Properties = properties.Reconcile(t.Properties, f.ThingSchema, reg.Things(), res)
			if t.ID >= d.nextID {
				d.nextID = t.ID + 1
			}
		}
	}

	defaults := make(map[string]*anim.Animation, len(f.Animations))
	for _, ta := range f.Animations {
		defaults[ta.Texture] = ta.Animation
	}
	d.animations.Reload(defaults)

	return d
}

// ImportAnimations merges texture animation defaults from a .anms exchange
// stream into the document, overwriting defaults for textures it names.
func (d *Document) ImportAnimations(data []byte) error {
	animations, err := formats.ParseANMS(data)
	if err != nil {
		return err
	}
	for _, ta := range animations {
		d.animations.SetDefault(ta.Texture, ta.Animation)
	}
	return nil
}

// ImportProps appends props from a .prps exchange stream.
func (d *Document) ImportProps(data []byte) error {
	ps, err := formats.ParsePRPS(data)
	if err != nil {
		return err
	}
	d.props = append(d.props, ps...)
	return nil
}
