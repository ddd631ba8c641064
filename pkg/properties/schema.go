package properties

import (
	"errors"
	"fmt"
	"sort"
)

// Schema errors.
var (
	ErrDuplicateProperty = errors.New("duplicate property definition")
	ErrTypeMismatch      = errors.New("property type mismatch")
)

// Definition declares a property: its name, type and default value.
type Definition struct {
	Name    string
	Type    Type
	Default Value
}

// NewDefinition builds a definition, validating that the default matches the
// declared type.
func NewDefinition(name string, t Type, def Value) (Definition, error) {
	if def.Type() != t {
		return Definition{}, fmt.Errorf("%w: default for %q is %s, declared %s",
			ErrTypeMismatch, name, def.Type(), t)
	}
	return Definition{Name: name, Type: t, Default: def}, nil
}

// Schema maps property names to definitions for one entity kind. Names are
// unique within a schema.
type Schema struct {
	defs map[string]Definition
}

// NewSchema builds a schema from definitions. Duplicate names are rejected
// with ErrDuplicateProperty.
func NewSchema(defs ...Definition) (*Schema, error) {
	s := &Schema{defs: make(map[string]Definition, len(defs))}
	for _, d := range defs {
		if d.Default.Type() != d.Type {
			return nil, fmt.Errorf("%w: default for %q is %s, declared %s",
				ErrTypeMismatch, d.Name, d.Default.Type(), d.Type)
		}
		if _, ok := s.defs[d.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateProperty, d.Name)
		}
		s.defs[d.Name] = d
	}
	return s, nil
}

// Len returns the number of definitions.
func (s *Schema) Len() int {
	return len(s.defs)
}

// Get returns the definition for name.
func (s *Schema) Get(name string) (Definition, bool) {
	d, ok := s.defs[name]
	return d, ok
}

// Names returns all property names in sorted order.
func (s *Schema) Names() []string {
	names := make([]string, 0, len(s.defs))
	for name := range s.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns all definitions sorted by name.
func (s *Schema) Definitions() []Definition {
	defs := make([]Definition, 0, len(s.defs))
	for _, name := range s.Names() {
		defs = append(defs, s.defs[name])
	}
	return defs
}

// Equal returns true if both schemas declare the same names with the same
// types. Defaults are not compared.
func (s *Schema) Equal(other *Schema) bool {
	if len(s.defs) != len(other.defs) {
		return false
	}
	for name, d := range s.defs {
		o, ok := other.defs[name]
		if !ok || o.Type != d.Type {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (s *Schema) Clone() *Schema {
	defs := make(map[string]Definition, len(s.defs))
	for name, d := range s.defs {
		defs[name] = d
	}
	return &Schema{defs: defs}
}

// Instance is an entity's stored property values.
type Instance map[string]Value

// NewInstance creates an instance populated with the schema defaults.
func (s *Schema) NewInstance() Instance {
	inst := make(Instance, len(s.defs))
	for name, d := range s.defs {
		inst[name] = d.Default
	}
	return inst
}

// Matches reports whether the instance's name and type set exactly equals
// the schema's.
func (s *Schema) Matches(inst Instance) bool {
	if len(inst) != len(s.defs) {
		return false
	}
	for name, v := range inst {
		d, ok := s.defs[name]
		if !ok || d.Type != v.Type() {
			return false
		}
	}
	return true
}

// Set assigns a value on the instance, enforcing the schema's name set and
// types.
func (s *Schema) Set(inst Instance, name string, v Value) error {
	d, ok := s.defs[name]
	if !ok {
		return fmt.Errorf("unknown property %q", name)
	}
	if d.Type != v.Type() {
		return fmt.Errorf("%w: %q is %s, got %s", ErrTypeMismatch, name, d.Type, v.Type())
	}
	inst[name] = v
	return nil
}

// Clone returns a deep copy of the instance.
func (inst Instance) Clone() Instance {
	out := make(Instance, len(inst))
	for name, v := range inst {
		out[name] = v
	}
	return out
}

// Equal compares two instances field for field.
func (inst Instance) Equal(other Instance) bool {
	if len(inst) != len(other) {
		return false
	}
	for name, v := range inst {
		o, ok := other[name]
		if !ok || o != v {
			return false
		}
	}
	return true
}

// Registry holds the current property schemas for brushes and things,
// assembled at startup from built-ins plus application- and file-declared
// definitions. A name collision across sources is an error.
type Registry struct {
	brushes *Schema
	things  *Schema
}

// Built-in thing properties.
const (
	PropAngle      = "angle"
	PropDrawHeight = "draw height"
)

func builtinThingDefs() []Definition {
	return []Definition{
		{Name: PropAngle, Type: TypeF32, Default: F32(0)},
		{Name: PropDrawHeight, Type: TypeI8, Default: I8(0)},
	}
}

// NewRegistry assembles the schemas from the given application- and
// file-declared definitions on top of the built-ins.
func NewRegistry(brushDefs, thingDefs []Definition) (*Registry, error) {
	brushes, err := NewSchema(brushDefs...)
	if err != nil {
		return nil, fmt.Errorf("brush properties: %w", err)
	}

	all := append(builtinThingDefs(), thingDefs...)
	things, err := NewSchema(all...)
	if err != nil {
		return nil, fmt.Errorf("thing properties: %w", err)
	}

	return &Registry{brushes: brushes, things: things}, nil
}

// Brushes returns the brush schema.
func (r *Registry) Brushes() *Schema { return r.brushes }

// Things returns the thing schema.
func (r *Registry) Things() *Schema { return r.things }
