package route

import (
	"math"

	"github.com/matzehuels/gitdiagram/pkg/layout"
)

// Params controls connector geometry.
type Params struct {
	Clearance    float64 // distance kept from both node centres
	CornerRadius float64 // largest radius of the S-curve bends; see the package doc
	ArrowSize    float64 // arrowhead half-height and depth to its notch
	ArrowGap     float64 // space between the line's end and the arrowhead notch
}

// ParamsFor derives routing parameters from a layout config.
func ParamsFor(cfg layout.Config) Params {
	return Params{
		Clearance:    cfg.Clearance(),
		CornerRadius: cfg.CornerRadius,
		ArrowSize:    cfg.ArrowSize,
		ArrowGap:     cfg.ArrowGap,
	}
}

// Path is a routed connector.
type Path struct {
	Segments []Segment

	// Arrowhead lists the polygon clockwise from the back-top corner:
	// back-top, notch, back-bottom, tip.
	Arrowhead [4]layout.Point
}

// Tip returns the point of the arrowhead.
func (p Path) Tip() layout.Point { return p.Arrowhead[3] }

// Curved reports whether the path contains arcs.
func (p Path) Curved() bool {
	for _, s := range p.Segments {
		if _, ok := s.(Arc); ok {
			return true
		}
	}
	return false
}

// Route connects from to to.
func Route(from, to layout.Point, p Params) Path {
	tipX := to.X - p.Clearance
	stopX := tipX - p.ArrowSize - p.ArrowGap
	begin := layout.Point{X: from.X + p.Clearance, Y: from.Y}

	path := Path{Arrowhead: arrowhead(tipX, to.Y, p)}

	if from.Y == to.Y {
		path.Segments = []Segment{Line{Start: begin, End: layout.Point{X: stopX, Y: to.Y}}}
		return path
	}

	// Downward: first bend 270°→360°, second 180°→90°.
	// Upward: first bend 90°→0°, second 180°→270°.
	dir, firstStart := 1.0, 270.0
	if to.Y < from.Y {
		dir, firstStart = -1, 90
	}
	midX := (from.X + to.X) / 2
	// The bends must fit between the rows and between the node edges, or a
	// run would double back on itself.
	r := max(0, min(p.CornerRadius, math.Abs(to.Y-from.Y)/2, midX-begin.X, stopX-midX))

	if r <= 0 {
		path.Segments = []Segment{
			Line{Start: begin, End: layout.Point{X: midX, Y: from.Y}},
			Line{Start: layout.Point{X: midX, Y: from.Y}, End: layout.Point{X: midX, Y: to.Y}},
			Line{Start: layout.Point{X: midX, Y: to.Y}, End: layout.Point{X: stopX, Y: to.Y}},
		}
		return path
	}

	first := Arc{
		Center: layout.Point{X: midX - r, Y: from.Y + dir*r},
		Radius: r,
		Start:  firstStart,
		Sweep:  90 * dir,
	}
	second := Arc{
		Center: layout.Point{X: midX + r, Y: to.Y - dir*r},
		Radius: r,
		Start:  180,
		Sweep:  -90 * dir,
	}

	path.Segments = []Segment{
		Line{Start: begin, End: first.From()},
		first,
		Line{Start: first.To(), End: second.From()},
		second,
		Line{Start: second.To(), End: layout.Point{X: stopX, Y: to.Y}},
	}
	return path
}

func arrowhead(tipX, y float64, p Params) [4]layout.Point {
	notchX := tipX - p.ArrowSize
	backX := notchX - p.ArrowGap
	return [4]layout.Point{
		{X: backX, Y: y - p.ArrowSize},
		{X: notchX, Y: y},
		{X: backX, Y: y + p.ArrowSize},
		{X: tipX, Y: y},
	}
}
