package sink

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/matzehuels/gitdiagram/pkg/errors"
	"github.com/matzehuels/gitdiagram/pkg/fonts"
	"github.com/matzehuels/gitdiagram/pkg/route"
)

// MaxPixels bounds the raster canvas, about 1 GiB of RGBA.
const MaxPixels = 1 << 28

// RasterOption configures [RenderRaster].
type RasterOption func(*rasterRenderer)

type rasterRenderer struct {
	scale float64
}

// WithScale draws the scene s times larger, for high-DPI output.
// Non-positive values are ignored.
func WithScale(s float64) RasterOption {
	return func(r *rasterRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// RenderRaster draws the scene into a new RGBA image.
func RenderRaster(s *Scene, opts ...RasterOption) (image.Image, error) {
	r := rasterRenderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}

	fw, fh := float64(s.Width)*r.scale, float64(s.Height)*r.scale
	if fw*fh > MaxPixels {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"canvas %.0fx%.0f exceeds %d pixels; lower the scale or the diagram size", fw, fh, MaxPixels)
	}
	w, h := int(fw), int(fh)
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeRenderBackend, "canvas %dx%d is empty", w, h)
	}

	dc := gg.NewContext(w, h)
	dc.Scale(r.scale, r.scale)
	dc.SetColor(s.Background)
	dc.Clear()

	if err := r.drawGuides(dc, s); err != nil {
		return nil, err
	}
	drawNodes(dc, s)
	drawConnectors(dc, s)

	return dc.Image(), nil
}

func (r rasterRenderer) drawGuides(dc *gg.Context, s *Scene) error {
	dc.SetLineWidth(GuideWidth)
	dc.SetLineCap(gg.LineCapButt)
	dc.SetDash(GuideDash, GuideDash)
	for _, g := range s.Guides {
		dc.SetColor(g.Color)
		dc.DrawLine(g.X1, g.Y, g.X2, g.Y)
		dc.Stroke()
	}
	dc.SetDash()

	size := s.Config.LabelSize
	if size <= 0 {
		return nil
	}
	// gg measures and draws text in device space, so labels are placed
	// without the scale transform using a face sized for the output.
	face, err := fonts.Face(size * r.scale)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderBackend, err, "load label font")
	}
	dc.Push()
	dc.Identity()
	dc.SetFontFace(face)
	dc.SetColor(s.LabelColor)
	for _, g := range s.Guides {
		dc.DrawStringAnchored(g.Branch.Name, g.LabelX*r.scale, g.Y*r.scale, 1, 0.5)
	}
	dc.Pop()
	return nil
}

func drawNodes(dc *gg.Context, s *Scene) {
	for _, n := range s.Nodes {
		dc.SetColor(s.Background)
		dc.DrawCircle(n.Center.X, n.Center.Y, n.Cutout)
		dc.Fill()

		dc.SetColor(n.BorderColor)
		dc.DrawCircle(n.Center.X, n.Center.Y, n.Ring)
		dc.Fill()

		dc.SetColor(n.FillColor)
		dc.DrawCircle(n.Center.X, n.Center.Y, n.Fill)
		dc.Fill()
	}
}

func drawConnectors(dc *gg.Context, s *Scene) {
	dc.SetColor(s.LinkColor)
	dc.SetLineWidth(s.Config.LineThickness)
	dc.SetLineCap(gg.LineCapButt)
	dc.SetLineJoin(gg.LineJoinRound)

	for _, c := range s.Connectors {
		if s.Config.LineThickness > 0 {
			tracePath(dc, c.Path)
			dc.Stroke()
		}

		head := c.Path.Arrowhead
		dc.MoveTo(head[0].X, head[0].Y)
		for _, p := range head[1:] {
			dc.LineTo(p.X, p.Y)
		}
		dc.ClosePath()
		dc.Fill()
	}
}

func tracePath(dc *gg.Context, p route.Path) {
	dc.NewSubPath()
	for i, seg := range p.Segments {
		switch seg := seg.(type) {
		case route.Line:
			if i == 0 {
				dc.MoveTo(seg.Start.X, seg.Start.Y)
			}
			dc.LineTo(seg.End.X, seg.End.Y)
		case route.Arc:
			// DrawArc joins the arc to the current point.
			dc.DrawArc(seg.Center.X, seg.Center.Y, seg.Radius, seg.StartRadians(), seg.EndRadians())
		}
	}
}
