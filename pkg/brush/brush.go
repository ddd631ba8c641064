// Package brush models convex polygonal map surfaces with their texture
// mapping, collision flag, optional path and custom properties.
package brush

import (
	"github.com/cloudcalvin/HillVacuum/pkg/geom"
	"github.com/cloudcalvin/HillVacuum/pkg/path"
	"github.com/cloudcalvin/HillVacuum/pkg/properties"
)

// Brush is a convex polygonal surface. The polygon invariant is enforced by
// geom.ConvexPolygon: every mutation either commits atomically or fails
// leaving the brush untouched.
type Brush struct {
	// ID is the brush identity, unique within a document.
	ID uint64
	// Texture is the texture mapping descriptor.
	Texture TextureSettings
	// Collision marks the brush as solid.
	Collision bool
	// Path is the optional scripted movement, owned by this brush.
	Path *path.Path
	// Properties holds the brush's custom property values.
	Properties properties.Instance

	polygon *geom.ConvexPolygon
}

// New creates a brush over an existing polygon with the schema's default
// properties.
func New(id uint64, polygon *geom.ConvexPolygon, texture string, schema *properties.Schema) *Brush {
	return &Brush{
		ID:         id,
		Texture:    DefaultTextureSettings(texture),
		Properties: schema.NewInstance(),
		polygon:    polygon,
	}
}

// FromParts assembles a brush from already-built components. Used by the
// codec and by prop stamping.
func FromParts(id uint64, polygon *geom.ConvexPolygon, texture TextureSettings, collision bool, p *path.Path, props properties.Instance) *Brush {
	return &Brush{
		ID:         id,
		Texture:    texture,
		Collision:  collision,
		Path:       p,
		Properties: props,
		polygon:    polygon,
	}
}

// Polygon returns the brush's polygon for inspection and mutation.
func (b *Brush) Polygon() *geom.ConvexPolygon {
	return b.polygon
}

// Hull returns the polygon's current bounds.
func (b *Brush) Hull() geom.Hull {
	return b.polygon.Hull()
}

// Center returns the polygon's centroid.
func (b *Brush) Center() geom.Vec2 {
	return b.polygon.Center()
}

// TextureRect returns the rectangle the texture maps onto. It is re-derived
// from the current polygon bounds on every call, so it can never go stale
// after a vertex mutation. Fill mode covers the polygon's bounds; sprite
// mode keeps the bounds' size but anchors at the centroid plus the sprite
// offset.
func (b *Brush) TextureRect() geom.Hull {
	hull := b.polygon.Hull()
	if b.Texture.Parallax == ParallaxFill {
		return hull
	}
	anchor := b.polygon.Center().Add(b.Texture.SpriteOffset)
	return hull.Translated(anchor.Sub(hull.Center()))
}

// Translate moves the brush and its path by delta. The sprite offset is
// relative and does not move.
func (b *Brush) Translate(delta geom.Vec2) {
	b.polygon.Translate(delta)
	if b.Path != nil {
		b.Path.Translate(delta)
	}
}

// Clone returns a deep copy with the same identity.
func (b *Brush) Clone() *Brush {
	out := &Brush{
		ID:         b.ID,
		Texture:    b.Texture.Clone(),
		Collision:  b.Collision,
		Properties: b.Properties.Clone(),
		polygon:    b.polygon.Clone(),
	}
	if b.Path != nil {
		out.Path = b.Path.Clone()
	}
	return out
}

// Equal compares two brushes field for field.
func (b *Brush) Equal(other *Brush) bool {
	if b.ID != other.ID || b.Collision != other.Collision {
		return false
	}
	if !b.Texture.Equal(other.Texture) {
		return false
	}
	if !b.polygon.Equal(other.polygon) {
		return false
	}
	if (b.Path == nil) != (other.Path == nil) {
		return false
	}
	if b.Path != nil && !b.Path.Equal(other.Path) {
		return false
	}
	return b.Properties.Equal(other.Properties)
}
