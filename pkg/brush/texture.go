package brush

import (
	"fmt"

	"github.com/cloudcalvin/HillVacuum/pkg/anim"
	"github.com/cloudcalvin/HillVacuum/pkg/geom"
)

// Parallax selects how a brush maps its texture.
type Parallax uint8

const (
	// ParallaxFill stretches the texture over the polygon's bounds.
	ParallaxFill Parallax = iota
	// ParallaxSprite anchors the texture at the polygon center plus the
	// sprite offset, independent of the polygon's shape.
	ParallaxSprite
)

// String returns a human-readable mode name.
func (p Parallax) String() string {
	switch p {
	case ParallaxFill:
		return "fill"
	case ParallaxSprite:
		return "sprite"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(p))
	}
}

// TextureSettings is a brush's texture mapping descriptor.
type TextureSettings struct {
	Name     string
	Offset   geom.Vec2
	Scale    geom.Vec2
	Rotation float32 // degrees
	Parallax Parallax
	// SpriteOffset positions the texture in sprite mode. It is independent
	// of the polygon geometry and survives vertex edits unchanged.
	SpriteOffset geom.Vec2
	// Animation overrides the texture's default animation for this brush
	// only. Nil means the library default applies.
	Animation *anim.Animation
}

// DefaultTextureSettings returns the mapping a fresh brush gets.
func DefaultTextureSettings(name string) TextureSettings {
	return TextureSettings{Name: name, Scale: geom.Vec2{X: 1, Y: 1}}
}

// Clone returns a deep copy.
func (t TextureSettings) Clone() TextureSettings {
	out := t
	out.Animation = t.Animation.Clone()
	return out
}

// Equal compares two settings field for field.
func (t TextureSettings) Equal(other TextureSettings) bool {
	if t.Name != other.Name || t.Offset != other.Offset || t.Scale != other.Scale ||
		t.Rotation != other.Rotation || t.Parallax != other.Parallax ||
		t.SpriteOffset != other.SpriteOffset {
		return false
	}
	if (t.Animation == nil) != (other.Animation == nil) {
		return false
	}
	return t.Animation == nil || t.Animation.Equal(other.Animation)
}
