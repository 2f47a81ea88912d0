package shape

import (
	"math"

	"oss.terrastruct.com/geoshape/lib/geo"
)

const rightAngleTolerance = 0.01

// NewIsosceles requires exactly two equal sides (compared at 5 decimals)
func NewIsosceles(vertices geo.Points, edges geo.Lines) (*Triangle, error) {
	return newTriangle(Isosceles, false, vertices, edges)
}

// NewEquilateral requires three equal sides (compared at 2 decimals). Equilateral triangles are regular.
func NewEquilateral(vertices geo.Points, edges geo.Lines) (*Triangle, error) {
	return newTriangle(Equilateral, true, vertices, edges)
}

// NewScalene requires three different sides, compared exactly
func NewScalene(vertices geo.Points, edges geo.Lines) (*Triangle, error) {
	return newTriangle(Scalene, false, vertices, edges)
}

// NewRightTriangle requires an inner angle within 0.01° of 90°
func NewRightTriangle(vertices geo.Points, edges geo.Lines) (*Triangle, error) {
	return newTriangle(Right, false, vertices, edges)
}

// validate runs after the triangle inequality check, on the cached sides and angles.
func (k TriangleKind) validate(t *Triangle) error {
	switch k {
	case Isosceles:
		switch distinct(geo.Round(t.a, 5), geo.Round(t.b, 5), geo.Round(t.c, 5)) {
		case 1:
			return errorf(InvalidVariant, string(k), "isosceles triangle cannot have 3 equal sides")
		case 3:
			return errorf(InvalidVariant, string(k), "isosceles triangle must have exactly two equal sides")
		}
	case Equilateral:
		if distinct(geo.Round(t.a, 2), geo.Round(t.b, 2), geo.Round(t.c, 2)) != 1 {
			return errorf(InvalidVariant, string(k), "equilateral triangle must have equal sides")
		}
	case Scalene:
		if t.a == t.b || t.b == t.c || t.a == t.c {
			return errorf(InvalidVariant, string(k), "scalene triangle cannot have equal sides")
		}
	case Right:
		for _, angle := range t.innerAngles {
			if math.Abs(angle-90) < rightAngleTolerance {
				return nil
			}
		}
		return errorf(InvalidVariant, string(k), "right triangle must have one right angle")
	}
	return nil
}

func distinct(vs ...float64) int {
	seen := make(map[float64]struct{}, len(vs))
	for _, v := range vs {
		seen[v] = struct{}{}
	}
	return len(seen)
}
