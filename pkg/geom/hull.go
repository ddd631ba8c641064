package geom

// Hull is an axis-aligned bounding rectangle.
type Hull struct {
	Top    float32
	Bottom float32
	Left   float32
	Right  float32
}

// NewHull builds a hull from explicit bounds. Top must be >= Bottom and
// Right >= Left; callers that cannot guarantee this should use HullFromPoints.
func NewHull(top, bottom, left, right float32) Hull {
	return Hull{Top: top, Bottom: bottom, Left: left, Right: right}
}

// HullFromPoints returns the bounding hull of the given points.
// Returns the zero hull and false if points is empty.
func HullFromPoints(points []Vec2) (Hull, bool) {
	if len(points) == 0 {
		return Hull{}, false
	}

	h := Hull{
		Top:    points[0].Y,
		Bottom: points[0].Y,
		Left:   points[0].X,
		Right:  points[0].X,
	}
	for _, p := range points[1:] {
		if p.Y > h.Top {
			h.Top = p.Y
		}
		if p.Y < h.Bottom {
			h.Bottom = p.Y
		}
		if p.X < h.Left {
			h.Left = p.X
		}
		if p.X > h.Right {
			h.Right = p.X
		}
	}
	return h, true
}

// Width returns the horizontal extent.
func (h Hull) Width() float32 {
	return h.Right - h.Left
}

// Height returns the vertical extent.
func (h Hull) Height() float32 {
	return h.Top - h.Bottom
}

// Center returns the midpoint of the hull.
func (h Hull) Center() Vec2 {
	return Vec2{(h.Left + h.Right) / 2, (h.Bottom + h.Top) / 2}
}

// TopLeft returns the top-left corner.
func (h Hull) TopLeft() Vec2 {
	return Vec2{h.Left, h.Top}
}

// BottomRight returns the bottom-right corner.
func (h Hull) BottomRight() Vec2 {
	return Vec2{h.Right, h.Bottom}
}

// ContainsPoint returns true if p lies within the hull, borders included.
func (h Hull) ContainsPoint(p Vec2) bool {
	return p.X >= h.Left && p.X <= h.Right && p.Y >= h.Bottom && p.Y <= h.Top
}

// Contains returns true if other lies entirely within h.
func (h Hull) Contains(other Hull) bool {
	return other.Left >= h.Left && other.Right <= h.Right &&
		other.Bottom >= h.Bottom && other.Top <= h.Top
}

// Overlaps returns true if the two hulls share any area.
func (h Hull) Overlaps(other Hull) bool {
	return h.Left <= other.Right && h.Right >= other.Left &&
		h.Bottom <= other.Top && h.Top >= other.Bottom
}

// Merged returns the smallest hull containing both h and other.
func (h Hull) Merged(other Hull) Hull {
	m := h
	if other.Top > m.Top {
		m.Top = other.Top
	}
	if other.Bottom < m.Bottom {
		m.Bottom = other.Bottom
	}
	if other.Left < m.Left {
		m.Left = other.Left
	}
	if other.Right > m.Right {
		m.Right = other.Right
	}
	return m
}

// Bumped returns the hull expanded by the given amount on every side.
func (h Hull) Bumped(bump float32) Hull {
	return Hull{
		Top:    h.Top + bump,
		Bottom: h.Bottom - bump,
		Left:   h.Left - bump,
		Right:  h.Right + bump,
	}
}

// Translated returns the hull moved by delta.
func (h Hull) Translated(delta Vec2) Hull {
	return Hull{
		Top:    h.Top + delta.Y,
		Bottom: h.Bottom + delta.Y,
		Left:   h.Left + delta.X,
		Right:  h.Right + delta.X,
	}
}
