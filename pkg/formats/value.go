package formats

import (
	"sort"

	"github.com/cloudcalvin/HillVacuum/pkg/geom"
	"github.com/cloudcalvin/HillVacuum/pkg/properties"
	"lukechampine.com/uint128"
)

func (w *writer) vec2(v geom.Vec2) {
	w.f32(v.X)
	w.f32(v.Y)
}

func (r *reader) vec2(what string) (geom.Vec2, error) {
	x, err := r.f32(what)
	if err != nil {
		return geom.Vec2{}, err
	}
	y, err := r.f32(what)
	if err != nil {
		return geom.Vec2{}, err
	}
	return geom.Vec2{X: x, Y: y}, nil
}

// appendValue writes a value payload. The type tag is written separately so
// schema defaults and instance entries share this encoding.
func (w *writer) appendValue(v properties.Value) error {
	switch v.Type() {
	case properties.TypeBool:
		w.bool(v.AsBool())
	case properties.TypeU8, properties.TypeI8:
		w.u8(uint8(v.AsU64()))
	case properties.TypeU16, properties.TypeI16:
		w.u16(uint16(v.AsU64()))
	case properties.TypeU32, properties.TypeI32:
		w.u32(uint32(v.AsU64()))
	case properties.TypeU64, properties.TypeI64:
		w.u64(v.AsU64())
	case properties.TypeU128, properties.TypeI128:
		u := v.AsU128()
		w.u64(u.Lo)
		w.u64(u.Hi)
	case properties.TypeF32:
		w.f32(v.AsF32())
	case properties.TypeF64:
		w.f64(v.AsF64())
	case properties.TypeString:
		return w.str(v.AsString())
	}
	return nil
}

// value reads a payload of the given type.
func (r *reader) value(t properties.Type, what string) (properties.Value, error) {
	switch t {
	case properties.TypeBool:
		b, err := r.bool(what)
		if err != nil {
			return properties.Value{}, err
		}
		return properties.Bool(b), nil
	case properties.TypeU8:
		n, err := r.u8(what)
		if err != nil {
			return properties.Value{}, err
		}
		return properties.U8(n), nil
	case properties.TypeU16:
		n, err := r.u16(what)
		if err != nil {
			return properties.Value{}, err
		}
		return properties.U16(n), nil
	case properties.TypeU32:
		n, err := r.u32(what)
		if err != nil {
			return properties.Value{}, err
		}
		return properties.U32(n), nil
	case properties.TypeU64:
		n, err := r.u64(what)
		if err != nil {
			return properties.Value{}, err
		}
		return properties.U64(n), nil
	case properties.TypeU128:
		lo, err := r.u64(what)
		if err != nil {
			return properties.Value{}, err
		}
		hi, err := r.u64(what)
		if err != nil {
			return properties.Value{}, err
		}
		return properties.U128(uint128.New(lo, hi)), nil
	case properties.TypeI8:
		n, err := r.u8(what)
		if err != nil {
			return properties.Value{}, err
		}
		return properties.I8(int8(n)), nil
	case properties.TypeI16:
		n, err := r.u16(what)
		if err != nil {
			return properties.Value{}, err
		}
		return properties.I16(int16(n)), nil
	case properties.TypeI32:
		n, err := r.u32(what)
		if err != nil {
			return properties.Value{}, err
		}
		return properties.I32(int32(n)), nil
	case properties.TypeI64:
		n, err := r.u64(what)
		if err != nil {
			return properties.Value{}, err
		}
		return properties.I64(int64(n)), nil
	case properties.TypeI128:
		lo, err := r.u64(what)
		if err != nil {
			return properties.Value{}, err
		}
		hi, err := r.u64(what)
		if err != nil {
			return properties.Value{}, err
		}
		return properties.I128(int64(hi), lo), nil
	case properties.TypeF32:
		f, err := r.f32(what)
		if err != nil {
			return properties.Value{}, err
		}
		return properties.F32(f), nil
	case properties.TypeF64:
		f, err := r.f64(what)
		if err != nil {
			return properties.Value{}, err
		}
		return properties.F64(f), nil
	case properties.TypeString:
		s, err := r.str(what)
		if err != nil {
			return properties.Value{}, err
		}
		return properties.Text(s), nil
	default:
		return properties.Value{}, r.failf("%s has unknown value type %d", what, uint8(t))
	}
}

// appendSchema writes a property schema: u32 count, then (name, type tag,
// default) per definition in sorted name order.
func (w *writer) appendSchema(s *properties.Schema) error {
	defs := s.Definitions()
	w.u32(uint32(len(defs)))
	for _, d := range defs {
		if err := w.str(d.Name); err != nil {
			return err
		}
		w.u8(uint8(d.Type))
		if err := w.appendValue(d.Default); err != nil {
			return err
		}
	}
	return nil
}

func (r *reader) schema() (*properties.Schema, error) {
	n, err := r.u32("definition count")
	if err != nil {
		return nil, err
	}

	defs := make([]properties.Definition, 0, n)
	for i := uint32(0); i < n; i++ {
		name, err := r.str("definition name")
		if err != nil {
			return nil, err
		}
		tag, err := r.u8("definition type")
		if err != nil {
			return nil, err
		}
		t := properties.Type(tag)
		if !t.Valid() {
			return nil, r.failf("definition %q has unknown type %d", name, tag)
		}
		def, err := r.value(t, "definition default")
		if err != nil {
			return nil, err
		}
		defs = append(defs, properties.Definition{Name: name, Type: t, Default: def})
	}

	s, err := properties.NewSchema(defs...)
	if err != nil {
		return nil, r.failf("%v", err)
	}
	return s, nil
}

// appendInstance writes an entity's property mapping: u32 count, then
// (name, type tag, value) triples in sorted name order so output is stable.
func (w *writer) appendInstance(inst properties.Instance) error {
	names := make([]string, 0, len(inst))
	for name := range inst {
		names = append(names, name)
	}
	sort.Strings(names)

	w.u32(uint32(len(names)))
	for _, name := range names {
		v := inst[name]
		if err := w.str(name); err != nil {
			return err
		}
		w.u8(uint8(v.Type()))
		if err := w.appendValue(v); err != nil {
			return err
		}
	}
	return nil
}

func (r *reader) instance() (properties.Instance, error) {
	n, err := r.u32("property count")
	if err != nil {
		return nil, err
	}

	inst := make(properties.Instance, n)
	for i := uint32(0); i < n; i++ {
		name, err := r.str("property name")
		if err != nil {
			return nil, err
		}
		tag, err := r.u8("property type")
		if err != nil {
			return nil, err
		}
		t := properties.Type(tag)
		if !t.Valid() {
			return nil, r.failf("property %q has unknown type %d", name, tag)
		}
		v, err := r.value(t, "property value")
		if err != nil {
			return nil, err
		}
		if _, ok := inst[name]; ok {
			return nil, r.failf("property %q repeated", name)
		}
		inst[name] = v
	}
	return inst, nil
}
