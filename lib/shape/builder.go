package shape

import (
	"context"

	"oss.terrastruct.com/geoshape/lib/geo"
)

// Builder collects a shape's inputs before anything is validated.
// Nothing is checked until Build, which goes through NewShape, so a
// half-configured Builder can never be mistaken for a valid Shape.
type Builder struct {
	shapeType string
	vertices  geo.Points
	edges     geo.Lines
	opts      Opts
}

func NewBuilder(shapeType string) *Builder {
	return &Builder{shapeType: shapeType}
}

func (b *Builder) Type(shapeType string) *Builder {
	b.shapeType = shapeType
	return b
}

// Vertices replaces all vertices
func (b *Builder) Vertices(vertices ...*geo.Point) *Builder {
	b.vertices = append(geo.Points(nil), vertices...)
	return b
}

// Point appends a vertex
func (b *Builder) Point(x, y float64) *Builder {
	b.vertices = append(b.vertices, geo.NewPoint(x, y))
	return b
}

// Edges replaces all edges. Passing none goes back to deriving them from the vertices.
func (b *Builder) Edges(edges ...*geo.Line) *Builder {
	if len(edges) == 0 {
		b.edges = nil
		return b
	}
	b.edges = append(geo.Lines(nil), edges...)
	return b
}

func (b *Builder) Regular(regular bool) *Builder {
	b.opts.Regular = regular
	return b
}

func (b *Builder) Strict(strict bool) *Builder {
	b.opts.Strict = strict
	return b
}

func (b *Builder) Build(ctx context.Context) (Shape, error) {
	opts := b.opts
	return NewShape(ctx, b.shapeType, b.vertices, b.edges, &opts)
}
