package formats

import (
	"fmt"
	"os"

	"github.com/cloudcalvin/HillVacuum/pkg/brush"
	"github.com/cloudcalvin/HillVacuum/pkg/properties"
	"github.com/cloudcalvin/HillVacuum/pkg/props"
	"github.com/cloudcalvin/HillVacuum/pkg/thing"
)

// HVFile is a parsed .hv document stream: the saved property schemas and the
// raw entity records, before any schema reconciliation. The document layer
// diffs the schemas against the live registry and materializes entities from
// here.
type HVFile struct {
	BrushSchema *properties.Schema
	ThingSchema *properties.Schema
	Animations  []TextureAnimation
	Brushes     []*brush.Brush
	Things      []*thing.Instance
	Props       []*props.Prop
}

// ParseHV parses a full document from raw bytes. On any error no partial
// result is returned.
func ParseHV(data []byte) (*HVFile, error) {
	r, err := checkHeader(data, hvMagic, "hv document")
	if err != nil {
		return nil, err
	}

	r.section = "header"
	brushCount, err := r.count("brush count", 1)
	if err != nil {
		return nil, err
	}
	thingCount, err := r.count("thing count", 1)
	if err != nil {
		return nil, err
	}
	animCount, err := r.count("animation count", 1)
	if err != nil {
		return nil, err
	}
	propCount, err := r.count("prop count", 1)
	if err != nil {
		return nil, err
	}

	f := &HVFile{}

	r.section = "brush schema"
	if f.BrushSchema, err = r.schema(); err != nil {
		return nil, err
	}
	r.section = "thing schema"
	if f.ThingSchema, err = r.schema(); err != nil {
		return nil, err
	}

	for i := 0; i < animCount; i++ {
		r.section = fmt.Sprintf("animations[%d]", i)
		ta, err := r.textureAnimation()
		if err != nil {
			return nil, err
		}
		f.Animations = append(f.Animations, ta)
	}

	for i := 0; i < brushCount; i++ {
		r.section = fmt.Sprintf("brushes[%d]", i)
		b, err := r.brush()
		if err != nil {
			return nil, err
		}
		f.Brushes = append(f.Brushes, b)
	}

	for i := 0; i < thingCount; i++ {
		r.section = fmt.Sprintf("things[%d]", i)
		t, err := r.thing()
		if err != nil {
			return nil, err
		}
		f.Things = append(f.Things, t)
	}

	for i := 0; i < propCount; i++ {
		r.section = fmt.Sprintf("props[%d]", i)
		p, err := r.prop(i)
		if err != nil {
			return nil, err
		}
		f.Props = append(f.Props, p)
	}

	r.section = "trailer"
	if r.remaining() != 0 {
		return nil, r.failf("%d trailing bytes", r.remaining())
	}
	return f, nil
}

// WriteHV encodes a full document.
func WriteHV(f *HVFile) ([]byte, error) {
	w := &writer{}
	w.header(hvMagic)

	w.u64(uint64(len(f.Brushes)))
	w.u64(uint64(len(f.Things)))
	w.u64(uint64(len(f.Animations)))
	w.u64(uint64(len(f.Props)))

	if err := w.appendSchema(f.BrushSchema); err != nil {
		return nil, err
	}
	if err := w.appendSchema(f.ThingSchema); err != nil {
		return nil, err
	}
	for _, ta := range f.Animations {
		if err := w.appendTextureAnimation(ta); err != nil {
			return nil, err
		}
	}
	for _, b := range f.Brushes {
		if err := w.appendBrush(b); err != nil {
			return nil, err
		}
	}
	for _, t := range f.Things {
		if err := w.appendThing(t); err != nil {
			return nil, err
		}
	}
	for _, p := range f.Props {
		if err := w.appendProp(p); err != nil {
			return nil, err
		}
	}
	return w.bytes(), nil
}

// ParseHVFile parses a .hv document from disk.
func ParseHVFile(path string) (*HVFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading hv document: %w", err)
	}
	return ParseHV(data)
}

// WriteHVFile writes a .hv document to disk.
func WriteHVFile(path string, f *HVFile) error {
	data, err := WriteHV(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
