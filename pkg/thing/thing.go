// Package thing models placeable typed map objects and the catalog of their
// definitions, merged from definition files and native registrations.
package thing

import (
	"github.com/cloudcalvin/HillVacuum/pkg/geom"
	"github.com/cloudcalvin/HillVacuum/pkg/path"
	"github.com/cloudcalvin/HillVacuum/pkg/properties"
)

// MaxID is the highest valid thing definition ID.
const MaxID uint16 = 65534

// Definition describes a thing type: its identity, footprint and preview
// texture.
type Definition struct {
	ID      uint16
	Name    string
	Width   float32
	Height  float32
	Preview string
}

// Instance is a thing placed on the map. It references its definition by ID
// only; if the definition vanishes after a reload the instance keeps the
// stale ID and resolves to unknown until a later reload reintroduces it.
type Instance struct {
	// ID is the placement identity, unique within a document.
	ID uint64
	// Thing is the definition ID.
	Thing uint16
	// Pos is the placement position.
	Pos geom.Vec2
	// Path is the optional scripted movement, owned by this instance.
	Path *path.Path
	// Properties holds the instance's property values, including the
	// built-in angle and draw height.
	Properties properties.Instance
}

// NewInstance places a thing at pos with the schema's default properties.
func NewInstance(id uint64, thing uint16, pos geom.Vec2, schema *properties.Schema) *Instance {
	return &Instance{
		ID:         id,
		Thing:      thing,
		Pos:        pos,
		Properties: schema.NewInstance(),
	}
}

// Angle returns the orientation in degrees.
func (i *Instance) Angle() float32 {
	return i.Properties[properties.PropAngle].AsF32()
}

// SetAngle sets the orientation in degrees.
func (i *Instance) SetAngle(deg float32) {
	i.Properties[properties.PropAngle] = properties.F32(deg)
}

// DrawHeight returns the paint ordering height among overlapping things.
func (i *Instance) DrawHeight() int8 {
	return int8(i.Properties[properties.PropDrawHeight].AsI64())
}

// SetDrawHeight sets the paint ordering height.
func (i *Instance) SetDrawHeight(h int8) {
	i.Properties[properties.PropDrawHeight] = properties.I8(h)
}

// Translate moves the instance and its path by delta.
func (i *Instance) Translate(delta geom.Vec2) {
	i.Pos = i.Pos.Add(delta)
	if i.Path != nil {
		i.Path.Translate(delta)
	}
}

// Clone returns a deep copy with the same identity.
func (i *Instance) Clone() *Instance {
	out := &Instance{
		ID:         i.ID,
		Thing:      i.Thing,
		Pos:        i.Pos,
		Properties: i.Properties.Clone(),
	}
	if i.Path != nil {
		out.Path = i.Path.Clone()
	}
	return out
}

// Equal compares two instances field for field.
func (i *Instance) Equal(other *Instance) bool {
	if i.ID != other.ID || i.Thing != other.Thing || i.Pos != other.Pos {
		return false
	}
	if (i.Path == nil) != (other.Path == nil) {
		return false
	}
	if i.Path != nil && !i.Path.Equal(other.Path) {
		return false
	}
	return i.Properties.Equal(other.Properties)
}
