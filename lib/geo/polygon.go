package geo

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Edges closes the points into a polygon cycle:
// edge i connects point i to point (i+1) mod n.
//
//	p0 ──e0──▶ p1
//	▲          │
//	e2         e1
//	│          ▼
//	└───────── p2
//
// Adjacent edges share the same *Point.
func (ps Points) Edges() Lines {
	if len(ps) == 0 {
		return nil
	}
	edges := make(Lines, 0, len(ps))
	for i := range ps {
		edges = append(edges, NewLine(ps[i], ps[(i+1)%len(ps)]))
	}
	return edges
}

// CornerAngle is the angle at `at` between the rays towards prev and next, in degrees
func CornerAngle(prev, at, next *Point) float64 {
	u := at.VectorTo(prev)
	v := at.VectorTo(next)
	if u.Length() == 0 || v.Length() == 0 {
		return 0
	}
	return Degrees(math.Atan2(math.Abs(u.Cross(v)), u.Dot(v)))
}

func (ps Points) ring() orb.Ring {
	r := make(orb.Ring, 0, len(ps)+1)
	for _, p := range ps {
		r = append(r, orb.Point{p.X, p.Y})
	}
	if len(ps) > 0 {
		r = append(r, r[0])
	}
	return r
}

// Centroid is the area-weighted center of the closed polygon
func (ps Points) Centroid() *Point {
	if len(ps) == 0 {
		return nil
	}
	c, _ := planar.CentroidArea(ps.ring())
	return NewPoint(c.X(), c.Y())
}

// Bound is the smallest axis-aligned box containing every point
func (ps Points) Bound() *Box {
	if len(ps) == 0 {
		return nil
	}
	b := ps.ring().Bound()
	return NewBox(NewPoint(b.Min.X(), b.Min.Y()), b.Max.X()-b.Min.X(), b.Max.Y()-b.Min.Y())
}
