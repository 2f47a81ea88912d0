package geo

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// A N-Dimensional Vector with components (x, y, z, ...) based on the origin
type Vector []float64

// New Vector from components
func NewVector(components ...float64) Vector {
	return components
}

func (a Vector) Minus(b Vector) Vector {
	c := []float64{}
	for i := 0; i < len(a); i++ {
		c = append(c, a[i]-b[i])
	}
	return c
}

func (a Vector) Length() float64 {
	sum := 0.0
	for _, comp := range a {
		sum += comp * comp
	}
	return math.Sqrt(sum)
}

// Dot and Cross only look at the first two components
func (a Vector) Dot(b Vector) float64 {
	return r2.Dot(a.toVec(), b.toVec())
}

// Cross returns the z component of a×b
func (a Vector) Cross(b Vector) float64 {
	return r2.Cross(a.toVec(), b.toVec())
}

func (a Vector) toVec() r2.Vec {
	return r2.Vec{X: a[0], Y: a[1]}
}
