package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry is returned when an operation would produce a polygon
// that is not simple, not convex, or has fewer than 3 vertices.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Tolerance for cross product and winding checks.
const epsilon = 1e-4

// ConvexPolygon is a simple convex polygon with at least 3 vertices, stored
// in counter-clockwise order. All mutating operations validate the result
// before committing; on failure the polygon is left unchanged.
type ConvexPolygon struct {
	vertices []Vec2
}

// NewPolygon creates a polygon from the given vertices. The input may be in
// either winding order; it is normalized to counter-clockwise. Returns
// ErrInvalidGeometry if the vertices do not form a simple convex polygon.
func NewPolygon(vertices []Vec2) (*ConvexPolygon, error) {
	vs := make([]Vec2, len(vertices))
	copy(vs, vertices)

	if signedArea(vs) < 0 {
		reverse(vs)
	}
	if err := validateConvex(vs); err != nil {
		return nil, err
	}
	return &ConvexPolygon{vertices: vs}, nil
}

// VertexCount returns the number of vertices.
func (p *ConvexPolygon) VertexCount() int {
	return len(p.vertices)
}

// Vertex returns the vertex at index i.
func (p *ConvexPolygon) Vertex(i int) Vec2 {
	return p.vertices[i]
}

// Vertices returns a copy of the vertex list in counter-clockwise order.
func (p *ConvexPolygon) Vertices() []Vec2 {
	vs := make([]Vec2, len(p.vertices))
	copy(vs, p.vertices)
	return vs
}

// Hull returns the axis-aligned bounds of the polygon.
func (p *ConvexPolygon) Hull() Hull {
	h, _ := HullFromPoints(p.vertices)
	return h
}

// Center returns the centroid of the vertices.
func (p *ConvexPolygon) Center() Vec2 {
	var sum Vec2
	for _, v := range p.vertices {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float32(len(p.vertices)))
}

// Area returns the enclosed area.
func (p *ConvexPolygon) Area() float32 {
	return signedArea(p.vertices)
}

// ContainsPoint returns true if pt lies inside the polygon or on its border.
func (p *ConvexPolygon) ContainsPoint(pt Vec2) bool {
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		a := p.vertices[i]
		b := p.vertices[(i+1)%n]
		if b.Sub(a).Cross(pt.Sub(a)) < -epsilon {
			return false
		}
	}
	return true
}

// AddVertex inserts v before index i. Fails with ErrInvalidGeometry if the
// resulting polygon would not be simple and convex.
func (p *ConvexPolygon) AddVertex(i int, v Vec2) error {
	if i < 0 || i > len(p.vertices) {
		return fmt.Errorf("%w: vertex index %d out of range", ErrInvalidGeometry, i)
	}

	vs := make([]Vec2, 0, len(p.vertices)+1)
	vs = append(vs, p.vertices[:i]...)
	vs = append(vs, v)
	vs = append(vs, p.vertices[i:]...)

	if err := validateConvex(vs); err != nil {
		return err
	}
	p.vertices = vs
	return nil
}

// RemoveVertex removes the vertex at index i. Fails with ErrInvalidGeometry
// if the polygon would drop below 3 vertices or lose convexity.
func (p *ConvexPolygon) RemoveVertex(i int) error {
	if i < 0 || i >= len(p.vertices) {
		return fmt.Errorf("%w: vertex index %d out of range", ErrInvalidGeometry, i)
	}
	if len(p.vertices) == 3 {
		return fmt.Errorf("%w: removing vertex %d would leave fewer than 3 vertices", ErrInvalidGeometry, i)
	}

	vs := make([]Vec2, 0, len(p.vertices)-1)
	vs = append(vs, p.vertices[:i]...)
	vs = append(vs, p.vertices[i+1:]...)

	if err := validateConvex(vs); err != nil {
		return err
	}
	p.vertices = vs
	return nil
}

// MoveVertex moves the vertex at index i to v. Fails with ErrInvalidGeometry
// if the move breaks convexity.
func (p *ConvexPolygon) MoveVertex(i int, v Vec2) error {
	if i < 0 || i >= len(p.vertices) {
		return fmt.Errorf("%w: vertex index %d out of range", ErrInvalidGeometry, i)
	}

	vs := make([]Vec2, len(p.vertices))
	copy(vs, p.vertices)
	vs[i] = v

	if err := validateConvex(vs); err != nil {
		return err
	}
	p.vertices = vs
	return nil
}

// Translate moves every vertex by delta. Translation preserves convexity so
// it cannot fail.
func (p *ConvexPolygon) Translate(delta Vec2) {
	for i := range p.vertices {
		p.vertices[i] = p.vertices[i].Add(delta)
	}
}

// Translated returns a new polygon moved by delta.
func (p *ConvexPolygon) Translated(delta Vec2) *ConvexPolygon {
	vs := make([]Vec2, len(p.vertices))
	for i, v := range p.vertices {
		vs[i] = v.Add(delta)
	}
	return &ConvexPolygon{vertices: vs}
}

// Clone returns a deep copy.
func (p *ConvexPolygon) Clone() *ConvexPolygon {
	return &ConvexPolygon{vertices: p.Vertices()}
}

// Equal returns true if both polygons have identical vertices in the same
// order.
func (p *ConvexPolygon) Equal(other *ConvexPolygon) bool {
	if len(p.vertices) != len(other.vertices) {
		return false
	}
	for i, v := range p.vertices {
		if v != other.vertices[i] {
			return false
		}
	}
	return true
}

// Split cuts the polygon along the chord between vertices i and j, returning
// the two halves. Both endpoints appear in both halves. Fails with
// ErrInvalidGeometry if i and j are adjacent or equal, or if either half
// would be degenerate; the receiver is never modified.
func (p *ConvexPolygon) Split(i, j int) (*ConvexPolygon, *ConvexPolygon, error) {
	n := len(p.vertices)
	if i < 0 || i >= n || j < 0 || j >= n {
		return nil, nil, fmt.Errorf("%w: split indices %d,%d out of range", ErrInvalidGeometry, i, j)
	}
	if i == j || (i+1)%n == j || (j+1)%n == i {
		return nil, nil, fmt.Errorf("%w: split chord %d-%d does not cross the interior", ErrInvalidGeometry, i, j)
	}

	first := chord(p.vertices, i, j)
	second := chord(p.vertices, j, i)

	if err := validateConvex(first); err != nil {
		return nil, nil, err
	}
	if err := validateConvex(second); err != nil {
		return nil, nil, err
	}
	return &ConvexPolygon{vertices: first}, &ConvexPolygon{vertices: second}, nil
}

// Merge joins p with other along a shared edge, returning the union polygon.
// Fails with ErrInvalidGeometry if the polygons share no edge or the union is
// not convex; neither input is modified.
func (p *ConvexPolygon) Merge(other *ConvexPolygon) (*ConvexPolygon, error) {
	n, m := len(p.vertices), len(other.vertices)

	for i := 0; i < n; i++ {
		a := p.vertices[i]
		b := p.vertices[(i+1)%n]

		for j := 0; j < m; j++ {
			// Shared edges run in opposite directions since both
			// polygons wind counter-clockwise.
			if !nearlyEqual(other.vertices[j], b) || !nearlyEqual(other.vertices[(j+1)%m], a) {
				continue
			}

			vs := make([]Vec2, 0, n+m-2)
			for k := 0; k < n; k++ {
				vs = append(vs, p.vertices[(i+1+k)%n])
			}
			for k := 2; k < m; k++ {
				vs = append(vs, other.vertices[(j+k)%m])
			}

			if err := validateConvex(vs); err != nil {
				return nil, err
			}
			return &ConvexPolygon{vertices: vs}, nil
		}
	}

	return nil, fmt.Errorf("%w: polygons share no edge", ErrInvalidGeometry)
}

// chord returns the vertex run from index i to index j inclusive, walking
// forward around the polygon.
func chord(vs []Vec2, i, j int) []Vec2 {
	n := len(vs)
	out := make([]Vec2, 0, n)
	for k := i; ; k = (k + 1) % n {
		out = append(out, vs[k])
		if k == j {
			break
		}
	}
	return out
}

// validateConvex checks that vs is a simple convex counter-clockwise polygon
// with at least 3 vertices. Collinear runs are allowed (interior angles of
// exactly 180 degrees), but duplicate consecutive vertices are not.
func validateConvex(vs []Vec2) error {
	if len(vs) < 3 {
		return fmt.Errorf("%w: %d vertices, need at least 3", ErrInvalidGeometry, len(vs))
	}

	n := len(vs)
	var turn float64
	degenerate := true

	for i := 0; i < n; i++ {
		a := vs[i]
		b := vs[(i+1)%n]
		c := vs[(i+2)%n]

		ab := b.Sub(a)
		bc := c.Sub(b)

		if ab.Length() < epsilon {
			return fmt.Errorf("%w: duplicate consecutive vertices at index %d", ErrInvalidGeometry, i)
		}
		cross := ab.Cross(bc)
		if cross < -epsilon {
			return fmt.Errorf("%w: concave corner at vertex %d", ErrInvalidGeometry, (i+1)%n)
		}
		if cross > epsilon {
			degenerate = false
		}
		turn += float64(ab.AngleTo(bc))
	}

	if degenerate {
		return fmt.Errorf("%w: all vertices are collinear", ErrInvalidGeometry)
	}

	// A simple convex loop turns through exactly one revolution. More than
	// one means the vertex sequence winds over itself.
	if math.Abs(turn-2*math.Pi) > 0.01 {
		return fmt.Errorf("%w: vertex sequence is self-intersecting", ErrInvalidGeometry)
	}
	return nil
}

func signedArea(vs []Vec2) float32 {
	var area float32
	n := len(vs)
	for i := 0; i < n; i++ {
		area += vs[i].Cross(vs[(i+1)%n])
	}
	return area / 2
}

func reverse(vs []Vec2) {
	for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
		vs[i], vs[j] = vs[j], vs[i]
	}
}

func nearlyEqual(a, b Vec2) bool {
	return a.Distance(b) < epsilon
}
