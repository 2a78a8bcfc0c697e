package sink

import (
	"image/color"

	"github.com/matzehuels/gitdiagram/pkg/diagram"
	"github.com/matzehuels/gitdiagram/pkg/layout"
	"github.com/matzehuels/gitdiagram/pkg/palette"
	"github.com/matzehuels/gitdiagram/pkg/route"
)

// Guide line style.
const (
	GuideWidth = 2.0
	GuideDash  = 8.0
)

// Scene is a composed diagram ready to draw.
type Scene struct {
	Width, Height int

	// Config is the layout the scene was composed with, after any automatic
	// widening.
	Config layout.Config

	Background color.RGBA
	LinkColor  color.RGBA
	LabelColor color.RGBA

	Guides     []Guide
	Nodes      []Node
	Connectors []Connector
}

// Guide is a branch's dashed row line and its label.
type Guide struct {
	Branch diagram.Branch
	Y      float64
	X1, X2 float64
	Color  color.RGBA

	// LabelX is the right edge of the label; the label is centred on Y.
	LabelX float64
}

// Node is a commit marker. Radii grow from Fill to Cutout.
type Node struct {
	Commit diagram.Commit
	Center layout.Point

	Fill, Ring, Cutout float64

	FillColor   color.RGBA
	BorderColor color.RGBA
}

// Connector is a routed link.
type Connector struct {
	Link diagram.Link
	Path route.Path
}

// Compose validates d and cfg and lays the diagram out.
//
// With cfg.AutoWidth set, the diagram width grows to fit the largest commit
// index. Otherwise a commit beyond the diagram width is an INVALID_CONFIG
// error.
func Compose(d *diagram.Diagram, cfg layout.Config) (*Scene, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.FitTo(d.MaxCommit())
	if err := cfg.Fit(d.MaxCommit()); err != nil {
		return nil, err
	}

	w, h := cfg.Canvas(d.BranchCount())
	s := &Scene{
		Width:      w,
		Height:     h,
		Config:     cfg,
		Background: palette.Background,
		LinkColor:  palette.Link,
		LabelColor: palette.Label,
		Guides:     make([]Guide, 0, d.BranchCount()),
		Nodes:      make([]Node, 0, len(d.Commits)),
		Connectors: make([]Connector, 0, len(d.Links)),
	}

	for _, b := range d.BranchList() {
		s.Guides = append(s.Guides, Guide{
			Branch: b,
			Y:      cfg.RowY(b.Index),
			X1:     cfg.MarginLeft,
			X2:     cfg.GuideEnd(),
			Color:  palette.Fill(b.Index),
			LabelX: cfg.MarginLeft - cfg.LabelGap,
		})
	}

	for _, c := range d.Commits {
		s.Nodes = append(s.Nodes, Node{
			Commit:      c,
			Center:      cfg.Map(c.Commit, c.Branch),
			Fill:        cfg.NodeRadius,
			Ring:        cfg.BorderRadius(),
			Cutout:      cfg.Clearance(),
			FillColor:   palette.Fill(c.Branch),
			BorderColor: palette.Border(c.Branch),
		})
	}

	params := route.ParamsFor(cfg)
	for _, l := range d.Links {
		from := cfg.Map(l.From.Commit, l.From.Branch)
		to := cfg.Map(l.To.Commit, l.To.Branch)
		s.Connectors = append(s.Connectors, Connector{Link: l, Path: route.Route(from, to, params)})
	}

	return s, nil
}
