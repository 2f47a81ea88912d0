package shape

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"oss.terrastruct.com/util-go/go2"
	"oss.terrastruct.com/util-go/xdefer"

	"oss.terrastruct.com/geoshape/lib/geo"
	"oss.terrastruct.com/geoshape/lib/log"
)

const (
	TRIANGLE_TYPE       = "Triangle"
	ISOSCELES_TYPE      = "Isosceles"
	EQUILATERAL_TYPE    = "Equilateral"
	SCALENE_TYPE        = "Scalene"
	RIGHT_TRIANGLE_TYPE = "RightTriangle"

	RECTANGLE_TYPE = "Rectangle"
	SQUARE_TYPE    = "Square"
)

// Types lists every shape type NewShape can build
var Types = []string{
	TRIANGLE_TYPE,
	ISOSCELES_TYPE,
	EQUILATERAL_TYPE,
	SCALENE_TYPE,
	RIGHT_TRIANGLE_TYPE,
	RECTANGLE_TYPE,
	SQUARE_TYPE,
}

// Shape is a validated polygon. All metrics are computed once at construction
// and every accessor returns a copy, so a Shape never changes after it's built.
type Shape interface {
	Is(shapeType string) bool
	GetType() string
	IsRegular() bool

	Vertices() geo.Points
	Edges() geo.Lines

	Area() float64
	Perimeter() float64
	// InnerAngles are in degrees, in vertex order
	InnerAngles() []float64

	Centroid() *geo.Point
	Bound() *geo.Box
}

type baseShape struct {
	Type    string
	Regular bool

	vertices geo.Points
	edges    geo.Lines

	// derived edges are rebuilt over copied vertices so the copies still share endpoints
	derived bool

	centroid *geo.Point
	bound    *geo.Box
}

// newBaseShape copies vertices and edges and checks that there are exactly n of each.
// Without edges, they're derived by closing the vertices into a cycle.
func newBaseShape(shapeType string, regular bool, vertices geo.Points, edges geo.Lines, n int) (*baseShape, error) {
	if len(vertices) != n {
		return nil, errorf(InvalidGeometry, shapeType, "%s needs %d vertices, got %d", shapeType, n, len(vertices))
	}
	for i, v := range vertices {
		if v == nil {
			return nil, errorf(InvalidGeometry, shapeType, "vertex %d is missing", i)
		}
	}

	s := &baseShape{
		Type:     shapeType,
		Regular:  regular,
		vertices: vertices.Copy(),
	}
	s.centroid = s.vertices.Centroid()
	s.bound = s.vertices.Bound()
	if edges == nil {
		s.edges = s.vertices.Edges()
		s.derived = true
		return s, nil
	}

	if len(edges) != n {
		return nil, errorf(InvalidGeometry, shapeType, "%s needs %d edges, got %d", shapeType, n, len(edges))
	}
	for i, e := range edges {
		if e == nil || e.Start == nil || e.End == nil {
			return nil, errorf(InvalidGeometry, shapeType, "edge %d is missing an endpoint", i)
		}
	}
	s.edges = edges.Copy()
	return s, nil
}

func (s baseShape) Is(shapeType string) bool {
	return s.Type == shapeType
}

func (s baseShape) GetType() string {
	return s.Type
}

func (s baseShape) IsRegular() bool {
	return s.Regular
}

func (s baseShape) Vertices() geo.Points {
	return s.vertices.Copy()
}

// Edges derived from the vertices share endpoints between neighbours, like the
// shape's own edges. Explicit edges are copied line by line.
func (s baseShape) Edges() geo.Lines {
	if s.derived {
		return s.vertices.Copy().Edges()
	}
	return s.edges.Copy()
}

func (s baseShape) Centroid() *geo.Point {
	return s.centroid.Copy()
}

func (s baseShape) Bound() *geo.Box {
	return s.bound.Copy()
}

type Opts struct {
	// Regular flags a plain Triangle as regular. Every other type decides regularity itself.
	Regular bool
	// Strict checks rectangles and squares against their coordinates:
	// opposite sides equal and four right corners.
	Strict bool
}

// NormalizeType resolves a case-insensitive type name to one of Types
func NormalizeType(shapeType string) (string, bool) {
	for _, t := range Types {
		if strings.EqualFold(t, shapeType) {
			return t, true
		}
	}
	return shapeType, false
}

// NewShape builds the named shape type from vertices and optional edges.
// Unknown types fail with an UnimplementedOperation error.
func NewShape(ctx context.Context, shapeType string, vertices geo.Points, edges geo.Lines, opts *Opts) (s Shape, err error) {
	defer xdefer.Errorf(&err, "failed to build %s", shapeType)

	if opts == nil {
		opts = &Opts{}
	}
	shapeType, _ = NormalizeType(shapeType)
	if !go2.Contains(Types, shapeType) {
		return nil, errorf(UnimplementedOperation, shapeType, "unimplemented shape %q", shapeType)
	}

	switch shapeType {
	case TRIANGLE_TYPE:
		s, err = newTriangle(AnyTriangle, opts.Regular, vertices, edges)
	case ISOSCELES_TYPE:
		s, err = NewIsosceles(vertices, edges)
	case EQUILATERAL_TYPE:
		s, err = NewEquilateral(vertices, edges)
	case SCALENE_TYPE:
		s, err = NewScalene(vertices, edges)
	case RIGHT_TRIANGLE_TYPE:
		s, err = NewRightTriangle(vertices, edges)
	case RECTANGLE_TYPE:
		s, err = newRectangle(RECTANGLE_TYPE, false, vertices, edges, opts.Strict)
	case SQUARE_TYPE:
		s, err = newSquare(vertices, edges, opts.Strict)
	}
	if err != nil {
		log.Debug(ctx, "rejected shape", slog.String("type", shapeType), slog.String("vertices", vertices.ToString()), slog.Any("err", err))
		return nil, err
	}

	log.Debug(ctx, "built shape",
		slog.String("type", s.GetType()),
		slog.Float64("area", s.Area()),
		slog.Float64("perimeter", s.Perimeter()),
		slog.String("angles", fmt.Sprint(s.InnerAngles())),
	)
	return s, nil
}
