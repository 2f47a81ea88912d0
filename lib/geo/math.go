package geo

import (
	"math"

	"github.com/golang/geo/s1"
	"golang.org/x/exp/constraints"
)

func EuclideanDistance(x1, y1, x2, y2 float64) float64 {
	if x1 == x2 {
		return math.Abs(y1 - y2)
	} else if y1 == y2 {
		return math.Abs(x1 - x2)
	} else {
		return math.Sqrt((x1-x2)*(x1-x2) + (y1-y2)*(y1-y2))
	}
}

// compare a and b and consider them equal if
// difference is less than precision e (e.g. e=0.001)
func PrecisionCompare(a, b, e float64) int {
	if math.Abs(a-b) < e {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

// Round rounds v to the given number of decimal places, half away from zero.
func Round[T constraints.Float](v T, places int) T {
	pow := math.Pow(10, float64(places))
	return T(math.Round(float64(v)*pow) / pow)
}

// Degrees converts an angle in radians to degrees
func Degrees(radians float64) float64 {
	return s1.Angle(radians).Degrees()
}

// AcosDegrees returns acos(cos) in degrees. cos is clamped into [-1, 1] first
// since side lengths carry rounding noise.
func AcosDegrees(cos float64) float64 {
	cos = math.Max(-1, math.Min(1, cos))
	return Degrees(math.Acos(cos))
}
