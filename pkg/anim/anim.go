// Package anim models texture animations: timed frame lists and subdivided
// atlases, and the library mapping textures to their default animation.
package anim

import "math"

// Kind tags the animation variant. The values are part of the on-disk
// format; 0 marks the absence of an animation on a brush override.
type Kind uint8

const (
	KindNone Kind = iota
	KindList
	KindAtlas
)

// Frame is one step of a list animation.
type Frame struct {
	Texture  string
	Duration float32 // seconds
}

// List is an ordered sequence of textures with per-frame durations.
type List struct {
	Frames []Frame
}

// Total returns the cycle duration.
func (l *List) Total() float32 {
	var total float32
	for _, f := range l.Frames {
		total += f.Duration
	}
	return total
}

// FrameIndexAt returns the frame whose cumulative duration interval contains
// the elapsed time, wrapping modulo the total duration.
func (l *List) FrameIndexAt(elapsed float32) int {
	total := l.Total()
	if len(l.Frames) == 0 || total <= 0 {
		return 0
	}

	t := float32(math.Mod(float64(elapsed), float64(total)))
	if t < 0 {
		t += total
	}

	var cum float32
	for i, f := range l.Frames {
		cum += f.Duration
		if t < cum {
			return i
		}
	}
	return len(l.Frames) - 1
}

// TextureAt returns the texture shown at the elapsed time.
func (l *List) TextureAt(elapsed float32) string {
	return l.Frames[l.FrameIndexAt(elapsed)].Texture
}

// Timing is the cell timing of an atlas animation: a single uniform duration
// or one duration per cell.
type Timing struct {
	uniform  float32
	perFrame []float32
}

// UniformTiming gives every cell the same duration.
func UniformTiming(d float32) Timing {
	return Timing{uniform: d}
}

// PerFrameTiming gives each cell its own duration.
func PerFrameTiming(durations []float32) Timing {
	ds := make([]float32, len(durations))
	copy(ds, durations)
	return Timing{perFrame: ds}
}

// IsUniform returns true for uniform timing.
func (t Timing) IsUniform() bool {
	return t.perFrame == nil
}

// Uniform returns the shared cell duration of a uniform timing.
func (t Timing) Uniform() float32 {
	return t.uniform
}

// PerFrame returns a copy of the per-cell durations, or nil for uniform
// timing.
func (t Timing) PerFrame() []float32 {
	if t.perFrame == nil {
		return nil
	}
	ds := make([]float32, len(t.perFrame))
	copy(ds, t.perFrame)
	return ds
}

// Equal compares two timings.
func (t Timing) Equal(other Timing) bool {
	if t.IsUniform() != other.IsUniform() {
		return false
	}
	if t.IsUniform() {
		return t.uniform == other.uniform
	}
	if len(t.perFrame) != len(other.perFrame) {
		return false
	}
	for i, d := range t.perFrame {
		if d != other.perFrame[i] {
			return false
		}
	}
	return true
}

// Atlas subdivides a texture into rows x cols equal cells in row-major
// order.
type Atlas struct {
	Texture string
	Rows    uint32
	Cols    uint32
	Timing  Timing
}

// Cells returns the number of cells.
func (a *Atlas) Cells() int {
	return int(a.Rows * a.Cols)
}

// FrameIndexAt returns the cell shown at the elapsed time. Uniform timing
// selects floor(elapsed/duration) mod cells; per-cell timing walks the
// cumulative intervals like a list animation.
func (a *Atlas) FrameIndexAt(elapsed float32) int {
	cells := a.Cells()
	if cells == 0 {
		return 0
	}

	if a.Timing.IsUniform() {
		d := a.Timing.uniform
		if d <= 0 {
			return 0
		}
		if elapsed < 0 {
			elapsed = 0
		}
		return int(math.Floor(float64(elapsed)/float64(d))) % cells
	}

	list := List{Frames: make([]Frame, 0, len(a.Timing.perFrame))}
	for _, d := range a.Timing.perFrame {
		list.Frames = append(list.Frames, Frame{Duration: d})
	}
	return list.FrameIndexAt(elapsed)
}

// Animation is a tagged variant: a frame list or an atlas, never both. It
// attaches either as a texture's default or as an override on a specific
// brush.
type Animation struct {
	kind  Kind
	list  *List
	atlas *Atlas
}

// NewList creates a list animation.
func NewList(frames ...Frame) *Animation {
	fs := make([]Frame, len(frames))
	copy(fs, frames)
	return &Animation{kind: KindList, list: &List{Frames: fs}}
}

// NewAtlas creates an atlas animation.
func NewAtlas(texture string, rows, cols uint32, timing Timing) *Animation {
	return &Animation{kind: KindAtlas, atlas: &Atlas{
		Texture: texture,
		Rows:    rows,
		Cols:    cols,
		Timing:  timing,
	}}
}

// Kind returns the variant tag.
func (a *Animation) Kind() Kind {
	return a.kind
}

// List returns the list payload, or nil for an atlas animation.
func (a *Animation) List() *List {
	return a.list
}

// Atlas returns the atlas payload, or nil for a list animation.
func (a *Animation) Atlas() *Atlas {
	return a.atlas
}

// FrameIndexAt dispatches frame selection to the active variant.
func (a *Animation) FrameIndexAt(elapsed float32) int {
	switch a.kind {
	case KindList:
		return a.list.FrameIndexAt(elapsed)
	case KindAtlas:
		return a.atlas.FrameIndexAt(elapsed)
	default:
		return 0
	}
}

// Clone returns a deep copy.
func (a *Animation) Clone() *Animation {
	if a == nil {
		return nil
	}
	switch a.kind {
	case KindList:
		return NewList(a.list.Frames...)
	case KindAtlas:
		return NewAtlas(a.atlas.Texture, a.atlas.Rows, a.atlas.Cols, a.atlas.Timing)
	default:
		return &Animation{}
	}
}

// Equal compares two animations variant for variant.
func (a *Animation) Equal(other *Animation) bool {
	if a == nil || other == nil {
		return a == other
	}
	if a.kind != other.kind {
		return false
	}
	switch a.kind {
	case KindList:
		if len(a.list.Frames) != len(other.list.Frames) {
			return false
		}
		for i, f := range a.list.Frames {
			if f != other.list.Frames[i] {
				return false
			}
		}
		return true
	case KindAtlas:
		return a.atlas.Texture == other.atlas.Texture &&
			a.atlas.Rows == other.atlas.Rows &&
			a.atlas.Cols == other.atlas.Cols &&
			a.atlas.Timing.Equal(other.atlas.Timing)
	default:
		return true
	}
}
