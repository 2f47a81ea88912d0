package shape

import (
	"oss.terrastruct.com/geoshape/lib/geo"
)

// Square is a regular Rectangle whose metrics only use the side length.
type Square struct {
	*Rectangle
}

func NewSquare(vertices geo.Points, edges geo.Lines) (*Square, error) {
	return newSquare(vertices, edges, false)
}

func newSquare(vertices geo.Points, edges geo.Lines, strict bool) (*Square, error) {
	r, err := newRectangle(SQUARE_TYPE, true, vertices, edges, strict)
	if err != nil {
		return nil, err
	}
	// Compared before b is pinned to a, otherwise the check could never fail
	if geo.Round(r.a, 5) != geo.Round(r.b, 5) {
		return nil, errorf(InvalidSquare, SQUARE_TYPE, "square must have equal sides")
	}
	r.b = r.a
	return &Square{Rectangle: r}, nil
}

func (s *Square) Side() float64 {
	return s.a
}

func (s *Square) Area() float64 {
	return s.a * s.a
}

func (s *Square) Perimeter() float64 {
	return s.a * 4
}
