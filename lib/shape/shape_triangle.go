package shape

import (
	"math"

	"oss.terrastruct.com/geoshape/lib/geo"
)

// TriangleKind is the side/angle pattern a triangle was validated against
type TriangleKind string

const (
	AnyTriangle TriangleKind = TRIANGLE_TYPE
	Isosceles   TriangleKind = ISOSCELES_TYPE
	Equilateral TriangleKind = EQUILATERAL_TYPE
	Scalene     TriangleKind = SCALENE_TYPE
	Right       TriangleKind = RIGHT_TRIANGLE_TYPE
)

// Triangle sides a, b and c are the lengths of edges 0, 1 and 2.
// Inner angle i is the one opposite side i.
type Triangle struct {
	*baseShape
	Kind TriangleKind

	a, b, c float64

	area        float64
	perimeter   float64
	innerAngles [3]float64
}

// NewTriangle builds a triangle from exactly 3 vertices. edges may be nil, in which
// case they're derived from the vertices.
func NewTriangle(vertices geo.Points, edges geo.Lines) (*Triangle, error) {
	return newTriangle(AnyTriangle, false, vertices, edges)
}

func newTriangle(kind TriangleKind, regular bool, vertices geo.Points, edges geo.Lines) (*Triangle, error) {
	base, err := newBaseShape(string(kind), regular, vertices, edges, 3)
	if err != nil {
		return nil, err
	}
	sides := base.edges.Lengths()
	t := &Triangle{
		baseShape: base,
		Kind:      kind,
		a:         sides[0],
		b:         sides[1],
		c:         sides[2],
	}

	if degenerate(t.a, t.b, t.c) {
		return nil, errorf(InvalidTriangle, string(kind), "the provided vertices/edges do not form a valid triangle (triangle inequality violated)")
	}

	t.area = t.computeArea()
	t.perimeter = t.a + t.b + t.c
	t.innerAngles = t.computeInnerAngles()

	if err := kind.validate(t); err != nil {
		return nil, err
	}
	return t, nil
}

// degenerateTolerance is relative to the longest side, so float noise on collinear
// points like (1,1),(2,2),(4,4) can't pass for a sliver of a triangle
const degenerateTolerance = 1e-9

// degenerate reports whether the two shorter sides fail to reach strictly past the longest.
// Collinear and coincident points are degenerate.
func degenerate(a, b, c float64) bool {
	longest := math.Max(a, math.Max(b, c))
	if longest == 0 {
		return true
	}
	return geo.PrecisionCompare(a+b+c-longest, longest, longest*degenerateTolerance) <= 0
}

// Heron's formula
func (t *Triangle) computeArea() float64 {
	s := (t.a + t.b + t.c) / 2
	return math.Sqrt(math.Max(0, s*(s-t.a)*(s-t.b)*(s-t.c)))
}

// law of cosines, rounded to 2 decimals
func (t *Triangle) computeInnerAngles() [3]float64 {
	a, b, c := t.a, t.b, t.c
	return [3]float64{
		geo.Round(geo.AcosDegrees((b*b+c*c-a*a)/(2*b*c)), 2),
		geo.Round(geo.AcosDegrees((a*a+c*c-b*b)/(2*a*c)), 2),
		geo.Round(geo.AcosDegrees((a*a+b*b-c*c)/(2*a*b)), 2),
	}
}

func (t *Triangle) Sides() (a, b, c float64) {
	return t.a, t.b, t.c
}

func (t *Triangle) Area() float64 {
	return t.area
}

func (t *Triangle) Perimeter() float64 {
	return t.perimeter
}

func (t *Triangle) InnerAngles() []float64 {
	return []float64{t.innerAngles[0], t.innerAngles[1], t.innerAngles[2]}
}
