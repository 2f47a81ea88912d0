package shape

import (
	"math"

	"go.uber.org/multierr"

	"oss.terrastruct.com/geoshape/lib/geo"
)

// Rectangle takes its width from edge 0 and its height from edge 1.
// By default the other two edges and the corner angles are trusted, not checked.
type Rectangle struct {
	*baseShape

	a, b float64
}

func NewRectangle(vertices geo.Points, edges geo.Lines) (*Rectangle, error) {
	return newRectangle(RECTANGLE_TYPE, false, vertices, edges, false)
}

// NewStrictRectangle also requires opposite sides to match and every corner to be a right angle.
func NewStrictRectangle(vertices geo.Points, edges geo.Lines) (*Rectangle, error) {
	return newRectangle(RECTANGLE_TYPE, false, vertices, edges, true)
}

func newRectangle(shapeType string, regular bool, vertices geo.Points, edges geo.Lines, strict bool) (*Rectangle, error) {
	base, err := newBaseShape(shapeType, regular, vertices, edges, 4)
	if err != nil {
		return nil, err
	}
	if strict {
		if err := validateCorners(base); err != nil {
			return nil, err
		}
	}
	return &Rectangle{
		baseShape: base,
		a:         base.edges[0].Length(),
		b:         base.edges[1].Length(),
	}, nil
}

// validateCorners reports every mismatched pair of opposite sides and every corner off 90°.
func validateCorners(s *baseShape) (err error) {
	sides := s.edges.Lengths()
	for i := 0; i < 2; i++ {
		if geo.Round(sides[i], 5) != geo.Round(sides[i+2], 5) {
			err = multierr.Append(err, errorf(InvalidRectangle, s.Type, "edges %d and %d are opposite but have lengths %v and %v", i, i+2, sides[i], sides[i+2]))
		}
	}
	n := len(s.vertices)
	for i, v := range s.vertices {
		angle := geo.CornerAngle(s.vertices[(i+n-1)%n], v, s.vertices[(i+1)%n])
		if math.Abs(angle-90) >= rightAngleTolerance {
			err = multierr.Append(err, errorf(InvalidRectangle, s.Type, "corner %d at %s is %v°, not a right angle", i, v.ToString(), geo.Round(angle, 2)))
		}
	}
	return err
}

func (r *Rectangle) Width() float64 {
	return r.a
}

func (r *Rectangle) Height() float64 {
	return r.b
}

func (r *Rectangle) Area() float64 {
	return r.a * r.b
}

func (r *Rectangle) Perimeter() float64 {
	return (r.a + r.b) * 2
}

// InnerAngles are always four right angles, they aren't measured from the vertices
func (r *Rectangle) InnerAngles() []float64 {
	return []float64{90, 90, 90, 90}
}
