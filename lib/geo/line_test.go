package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineLength(t *testing.T) {
	l := NewLine(NewPoint(0, 0), NewPoint(3, 4))
	assert.Equal(t, 5.0, l.Length())

	// degenerate lines are fine at this level
	p := NewPoint(2, 2)
	assert.Equal(t, 0.0, NewLine(p, p).Length())
}

func TestLineToString(t *testing.T) {
	l := NewLine(NewPoint(0, 0), NewPoint(3, 0))
	assert.Equal(t, "Line((0, 0), (3, 0))", l.ToString())
}

func TestLinesLengths(t *testing.T) {
	ls := Points{NewPoint(0, 0), NewPoint(3, 0), NewPoint(0, 4)}.Edges()
	assert.Equal(t, []float64{3, 5, 4}, ls.Lengths())

	cp := ls.Copy()
	cp[0].Start.X = 100
	assert.Equal(t, 0.0, ls[0].Start.X)
	assert.True(t, cp[1].Equals(ls[1]))
}
