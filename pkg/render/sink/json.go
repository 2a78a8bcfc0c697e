package sink

import (
	"encoding/json"

	"github.com/matzehuels/gitdiagram/pkg/palette"
	"github.com/matzehuels/gitdiagram/pkg/route"
)

// RenderJSON exports the composed scene with absolute coordinates for
// external tools.
func RenderJSON(s *Scene) ([]byte, error) {
	out := jsonOutput{
		Width:      s.Width,
		Height:     s.Height,
		Background: palette.Hex(s.Background),
		Guides:     make([]jsonGuide, len(s.Guides)),
		Nodes:      make([]jsonNode, len(s.Nodes)),
		Connectors: make([]jsonConnector, len(s.Connectors)),
	}

	for i, g := range s.Guides {
		out.Guides[i] = jsonGuide{
			Branch: g.Branch.Index,
			Name:   g.Branch.Name,
			Y:      g.Y,
			X1:     g.X1,
			X2:     g.X2,
			Color:  palette.Hex(g.Color),
		}
	}
	for i, n := range s.Nodes {
		out.Nodes[i] = jsonNode{
			Commit: n.Commit.Commit,
			Branch: n.Commit.Branch,
			X:      n.Center.X,
			Y:      n.Center.Y,
			Radius: n.Fill,
			Fill:   palette.Hex(n.FillColor),
			Border: palette.Hex(n.BorderColor),
		}
	}
	for i, c := range s.Connectors {
		jc := jsonConnector{
			From:     c.Link.From.String(),
			To:       c.Link.To.String(),
			Segments: make([]jsonSegment, len(c.Path.Segments)),
		}
		for j, seg := range c.Path.Segments {
			jc.Segments[j] = toJSONSegment(seg)
		}
		for j, p := range c.Path.Arrowhead {
			jc.Arrowhead[j] = [2]float64{p.X, p.Y}
		}
		out.Connectors[i] = jc
	}

	return json.MarshalIndent(out, "", "  ")
}

func toJSONSegment(seg route.Segment) jsonSegment {
	from, to := seg.From(), seg.To()
	js := jsonSegment{From: [2]float64{from.X, from.Y}, To: [2]float64{to.X, to.Y}}
	switch seg := seg.(type) {
	case route.Line:
		js.Kind = "line"
	case route.Arc:
		js.Kind = "arc"
		js.Center = &[2]float64{seg.Center.X, seg.Center.Y}
		js.Radius = seg.Radius
		js.Start = seg.Start
		js.Sweep = seg.Sweep
	}
	return js
}

type jsonOutput struct {
	Width      int             `json:"width"`
	Height     int             `json:"height"`
	Background string          `json:"background"`
	Guides     []jsonGuide     `json:"guides"`
	Nodes      []jsonNode      `json:"nodes"`
	Connectors []jsonConnector `json:"connectors"`
}

type jsonGuide struct {
	Branch int     `json:"branch"`
	Name   string  `json:"name"`
	Y      float64 `json:"y"`
	X1     float64 `json:"x1"`
	X2     float64 `json:"x2"`
	Color  string  `json:"color"`
}

type jsonNode struct {
	Commit int     `json:"commit"`
	Branch int     `json:"branch"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	Fill   string  `json:"fill"`
	Border string  `json:"border"`
}

type jsonConnector struct {
	From      string        `json:"from"`
	To        string        `json:"to"`
	Segments  []jsonSegment `json:"segments"`
	Arrowhead [4][2]float64 `json:"arrowhead"`
}

type jsonSegment struct {
	Kind   string      `json:"kind"`
	From   [2]float64  `json:"from"`
	To     [2]float64  `json:"to"`
	Center *[2]float64 `json:"center,omitempty"`
	Radius float64     `json:"radius,omitempty"`
	Start  float64     `json:"start,omitempty"`
	Sweep  float64     `json:"sweep,omitempty"`
}
