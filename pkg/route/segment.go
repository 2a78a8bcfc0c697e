package route

import (
	"math"

	"github.com/matzehuels/gitdiagram/pkg/layout"
)

// Segment is one piece of a connector.
type Segment interface {
	// From returns the segment's first point.
	From() layout.Point
	// To returns the segment's last point.
	To() layout.Point
	// Heading returns the unit direction of travel at the start (end=false)
	// or the end (end=true) of the segment.
	Heading(end bool) layout.Point
}

// Line is a straight segment.
type Line struct {
	Start, End layout.Point
}

func (l Line) From() layout.Point { return l.Start }
func (l Line) To() layout.Point   { return l.End }

// Heading is the same at both ends; a zero-length line has no heading.
func (l Line) Heading(bool) layout.Point {
	dx, dy := l.End.X-l.Start.X, l.End.Y-l.Start.Y
	n := math.Hypot(dx, dy)
	if n == 0 {
		return layout.Point{}
	}
	return layout.Point{X: dx / n, Y: dy / n}
}

// Length returns the distance between the endpoints.
func (l Line) Length() float64 {
	return math.Hypot(l.End.X-l.Start.X, l.End.Y-l.Start.Y)
}

// Arc is a circular arc. Angles are degrees, clockwise from +x in image
// space; a negative Sweep runs counter-clockwise.
type Arc struct {
	Center layout.Point
	Radius float64
	Start  float64
	Sweep  float64
}

// End returns the angle the arc stops at.
func (a Arc) End() float64 { return a.Start + a.Sweep }

// At returns the point on the arc's circle at angle deg.
func (a Arc) At(deg float64) layout.Point {
	c, s := unit(deg)
	return layout.Point{X: a.Center.X + a.Radius*c, Y: a.Center.Y + a.Radius*s}
}

func (a Arc) From() layout.Point { return a.At(a.Start) }
func (a Arc) To() layout.Point   { return a.At(a.End()) }

func (a Arc) Heading(end bool) layout.Point {
	deg := a.Start
	if end {
		deg = a.End()
	}
	c, s := unit(deg)
	if a.Sweep < 0 {
		return layout.Point{X: s, Y: -c}
	}
	return layout.Point{X: -s, Y: c}
}

// StartRadians and EndRadians return the arc's angles for drawing APIs that
// take radians.
func (a Arc) StartRadians() float64 { return a.Start * math.Pi / 180 }
func (a Arc) EndRadians() float64   { return a.End() * math.Pi / 180 }

// unit returns cos and sin of deg, exact at multiples of 90° so that arc
// endpoints meet the adjoining lines without rounding noise.
func unit(deg float64) (cos, sin float64) {
	if q := deg / 90; q == math.Trunc(q) {
		switch int(math.Mod(math.Mod(q, 4)+4, 4)) {
		case 0:
			return 1, 0
		case 1:
			return 0, 1
		case 2:
			return -1, 0
		default:
			return 0, -1
		}
	}
	s, c := math.Sincos(deg * math.Pi / 180)
	return c, s
}
