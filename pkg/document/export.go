package document

import (
	"github.com/cloudcalvin/HillVacuum/pkg/brush"
	"github.com/cloudcalvin/HillVacuum/pkg/path"
	"github.com/cloudcalvin/HillVacuum/pkg/properties"
	"github.com/cloudcalvin/HillVacuum/pkg/thing"
)

// Export is the full entity listing of a document in a form external tooling
// can consume. All fields marshal cleanly to YAML.
type Export struct {
	Brushes []BrushRecord `yaml:"brushes"`
	Things  []ThingRecord `yaml:"things"`
}

// Point is a plain coordinate pair for export records.
type Point struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// BrushRecord is one exported brush.
type BrushRecord struct {
	ID         uint64            `yaml:"id"`
	Vertices   []Point           `yaml:"vertices"`
	Texture    string            `yaml:"texture"`
	Collision  bool              `yaml:"collision"`
	Path       []Point           `yaml:"path,omitempty"`
	Properties map[string]string `yaml:"properties,omitempty"`
}

// ThingRecord is one exported thing instance.
type ThingRecord struct {
	ID         uint64            `yaml:"id"`
	Thing      uint16            `yaml:"thing"`
	Pos        Point             `yaml:"pos"`
	Path       []Point           `yaml:"path,omitempty"`
	Properties map[string]string `yaml:"properties,omitempty"`
}

func exportPath(p *path.Path) []Point {
	if p == nil {
		return nil
	}
	out := make([]Point, 0, p.Len())
	for _, n := range p.Nodes() {
		out = append(out, Point{X: n.Pos.X, Y: n.Pos.Y})
	}
	return out
}

func exportProperties(inst properties.Instance) map[string]string {
	if len(inst) == 0 {
		return nil
	}
	out := make(map[string]string, len(inst))
	for name, v := range inst {
		out[name] = v.String()
	}
	return out
}

func exportBrush(b *brush.Brush) BrushRecord {
	vs := b.Polygon().Vertices()
	vertices := make([]Point, 0, len(vs))
	for _, v := range vs {
		vertices = append(vertices, Point{X: v.X, Y: v.Y})
	}
	return BrushRecord{
		ID:         b.ID,
		Vertices:   vertices,
		Texture:    b.Texture.Name,
		Collision:  b.Collision,
		Path:       exportPath(b.Path),
		Properties: exportProperties(b.Properties),
	}
}

func exportThing(t *thing.Instance) ThingRecord {
	return ThingRecord{
		ID:         t.ID,
		Thing:      t.Thing,
		Pos:        Point{X: t.Pos.X, Y: t.Pos.Y},
		Path:       exportPath(t.Path),
		Properties: exportProperties(t.Properties),
	}
}

// Export yields the document's full brush and thing listing.
func (d *Document) Export() *Export {
	e := &Export{
		Brushes: make([]BrushRecord, 0, len(d.brushes)),
		Things:  make([]ThingRecord, 0, len(d.things)),
	}
	for _, b := range d.brushes {
		e.Brushes = append(e.Brushes, exportBrush(b))
	}
	for _, t := range d.things {
		e.Things = append(e.Things, exportThing(t))
	}
	return e
}
