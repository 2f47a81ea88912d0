package geo

import (
	"fmt"
	"strings"
)

// Line is a pair of endpoints. It doesn't own them: adjacent edges of a shape share points.
type Line struct {
	Start *Point `json:"start"`
	End   *Point `json:"end"`
}

func NewLine(from, to *Point) *Line {
	return &Line{from, to}
}

// Length is the distance between the endpoints. Zero-length lines are allowed here,
// shapes reject them when they validate.
func (l Line) Length() float64 {
	return l.Start.DistanceTo(l.End)
}

func (l *Line) Copy() *Line {
	if l == nil {
		return nil
	}
	return NewLine(l.Start.Copy(), l.End.Copy())
}

func (l *Line) Equals(other *Line) bool {
	if l == nil {
		return other == nil
	} else if other == nil {
		return false
	}
	return l.Start.Equals(other.Start) && l.End.Equals(other.End)
}

func (l Line) ToString() string {
	return fmt.Sprintf("Line(%v, %v)", l.Start.ToString(), l.End.ToString())
}

type Lines []*Line

func (ls Lines) Copy() Lines {
	if ls == nil {
		return nil
	}
	out := make(Lines, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.Copy())
	}
	return out
}

// Lengths returns the length of every line, in order
func (ls Lines) Lengths() []float64 {
	out := make([]float64, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.Length())
	}
	return out
}

func (ls Lines) ToString() string {
	strs := make([]string, 0, len(ls))
	for _, l := range ls {
		strs = append(strs, l.ToString())
	}
	return strings.Join(strs, ", ")
}
