package anim

import "sort"

// Library maps texture names to their default animation. A brush override
// always takes precedence over the default, and replacing a default never
// touches existing overrides.
type Library struct {
	defaults map[string]*Animation
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{defaults: make(map[string]*Animation)}
}

// SetDefault assigns the default animation of a texture. A nil animation
// clears it.
func (l *Library) SetDefault(texture string, a *Animation) {
	if a == nil {
		delete(l.defaults, texture)
		return
	}
	l.defaults[texture] = a
}

// Default returns the texture's default animation, or nil.
func (l *Library) Default(texture string) *Animation {
	return l.defaults[texture]
}

// Resolve returns the animation in effect for a texture: the brush override
// when present, the texture default otherwise.
func (l *Library) Resolve(texture string, override *Animation) *Animation {
	if override != nil {
		return override
	}
	return l.defaults[texture]
}

// Len returns the number of textures with a default animation.
func (l *Library) Len() int {
	return len(l.defaults)
}

// Textures returns the texture names with defaults, sorted.
func (l *Library) Textures() []string {
	names := make([]string, 0, len(l.defaults))
	for name := range l.defaults {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reload replaces the whole default map at once. Readers observe either the
// complete old set or the complete new one, never a mix.
func (l *Library) Reload(defaults map[string]*Animation) {
	next := make(map[string]*Animation, len(defaults))
	for name, a := range defaults {
		next[name] = a
	}
	l.defaults = next
}

// Clone returns a deep copy of the library.
func (l *Library) Clone() *Library {
	out := NewLibrary()
	for name, a := range l.defaults {
		out.defaults[name] = a.Clone()
	}
	return out
}

// Equal compares two libraries texture for texture.
func (l *Library) Equal(other *Library) bool {
	if len(l.defaults) != len(other.defaults) {
		return false
	}
	for name, a := range l.defaults {
		o, ok := other.defaults[name]
		if !ok || !a.Equal(o) {
			return false
		}
	}
	return true
}
