package formats

import (
	"fmt"

	"github.com/cloudcalvin/HillVacuum/pkg/brush"
	"github.com/cloudcalvin/HillVacuum/pkg/props"
	"github.com/cloudcalvin/HillVacuum/pkg/thing"
)

func (w *writer) appendProp(p *props.Prop) error {
	w.vec2(p.Pivot())

	brushes := p.Brushes()
	w.u32(uint32(len(brushes)))
	for _, b := range brushes {
		if err := w.appendBrush(b); err != nil {
			return err
		}
	}

	things := p.Things()
	w.u32(uint32(len(things)))
	for _, t := range things {
		if err := w.appendThing(t); err != nil {
			return err
		}
	}
	return nil
}

func (r *reader) prop(index int) (*props.Prop, error) {
	outer := r.section
	defer func() { r.section = outer }()

	pivot, err := r.vec2("prop pivot")
	if err != nil {
		return nil, err
	}

	bn, err := r.u32("prop brush count")
	if err != nil {
		return nil, err
	}
	brushes := make([]*brush.Brush, 0, bn)
	for i := uint32(0); i < bn; i++ {
		r.section = fmt.Sprintf("%s: prop %d brush %d", outer, index, i)
		b, err := r.brush()
		if err != nil {
			return nil, err
		}
		brushes = append(brushes, b)
	}

	r.section = outer
	tn, err := r.u32("prop thing count")
	if err != nil {
		return nil, err
	}
	things := make([]*thing.Instance, 0, tn)
	for i := uint32(0); i < tn; i++ {
		r.section = fmt.Sprintf("%s: prop %d thing %d", outer, index, i)
		t, err := r.thing()
		if err != nil {
			return nil, err
		}
		things = append(things, t)
	}

	return props.FromParts(pivot, brushes, things), nil
}
