package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/matzehuels/gitdiagram/pkg/fonts"
	"github.com/matzehuels/gitdiagram/pkg/layout"
	"github.com/matzehuels/gitdiagram/pkg/palette"
	"github.com/matzehuels/gitdiagram/pkg/route"
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	embedFont bool
}

// WithEmbeddedFont inlines the label font so the SVG looks the same on
// machines without it. This adds roughly 170 KB.
func WithEmbeddedFont() SVGOption { return func(r *svgRenderer) { r.embedFont = true } }

// RenderSVG writes the scene as a standalone SVG document.
func RenderSVG(s *Scene, opts ...SVGOption) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		s.Width, s.Height, s.Width, s.Height)
	if r.embedFont {
		fmt.Fprintf(&buf, "  <defs><style>@font-face { font-family: '%s'; src: url(data:font/ttf;base64,%s) format('truetype'); }</style></defs>\n",
			fonts.FontFamily, fonts.TTFBase64())
	}
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", palette.Hex(s.Background))

	renderGuides(&buf, s)
	renderNodes(&buf, s)
	renderConnectors(&buf, s)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderGuides(buf *bytes.Buffer, s *Scene) {
	fmt.Fprintf(buf, `  <g class="guides" stroke-width="%s" stroke-dasharray="%s %s">`+"\n",
		num(GuideWidth), num(GuideDash), num(GuideDash))
	for _, g := range s.Guides {
		fmt.Fprintf(buf, `    <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`+"\n",
			num(g.X1), num(g.Y), num(g.X2), num(g.Y), palette.Hex(g.Color))
	}
	buf.WriteString("  </g>\n")

	if s.Config.LabelSize <= 0 {
		return
	}
	fmt.Fprintf(buf, `  <g class="labels" fill="%s" font-family="%s" font-size="%s" text-anchor="end" dominant-baseline="central">`+"\n",
		palette.Hex(s.LabelColor), escapeXML(fonts.FallbackFontFamily), num(s.Config.LabelSize))
	for _, g := range s.Guides {
		fmt.Fprintf(buf, `    <text x="%s" y="%s">%s</text>`+"\n", num(g.LabelX), num(g.Y), escapeXML(g.Branch.Name))
	}
	buf.WriteString("  </g>\n")
}

func renderNodes(buf *bytes.Buffer, s *Scene) {
	buf.WriteString(`  <g class="nodes">` + "\n")
	for _, n := range s.Nodes {
		fmt.Fprintf(buf, `    <g id="commit-%d-%d">`+"\n", n.Commit.Commit, n.Commit.Branch)
		circle(buf, n.Center, n.Cutout, s.Background)
		circle(buf, n.Center, n.Ring, n.BorderColor)
		circle(buf, n.Center, n.Fill, n.FillColor)
		buf.WriteString("    </g>\n")
	}
	buf.WriteString("  </g>\n")
}

func circle(buf *bytes.Buffer, c layout.Point, r float64, fill color.RGBA) {
	fmt.Fprintf(buf, `      <circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n", num(c.X), num(c.Y), num(r), palette.Hex(fill))
}

func renderConnectors(buf *bytes.Buffer, s *Scene) {
	link := palette.Hex(s.LinkColor)
	fmt.Fprintf(buf, `  <g class="connectors" fill="none" stroke="%s" stroke-width="%s" stroke-linejoin="round">`+"\n",
		link, num(s.Config.LineThickness))
	for _, c := range s.Connectors {
		fmt.Fprintf(buf, `    <path d="%s"/>`+"\n", pathData(c.Path))
	}
	buf.WriteString("  </g>\n")

	fmt.Fprintf(buf, `  <g class="arrowheads" fill="%s">`+"\n", link)
	for _, c := range s.Connectors {
		pts := make([]string, len(c.Path.Arrowhead))
		for i, p := range c.Path.Arrowhead {
			pts[i] = num(p.X) + "," + num(p.Y)
		}
		fmt.Fprintf(buf, `    <polygon points="%s"/>`+"\n", strings.Join(pts, " "))
	}
	buf.WriteString("  </g>\n")
}

// pathData converts a routed path into SVG path commands. Positive sweeps
// are clockwise on screen, which is SVG's sweep-flag 1.
func pathData(p route.Path) string {
	var b strings.Builder
	for i, seg := range p.Segments {
		if i == 0 {
			from := seg.From()
			fmt.Fprintf(&b, "M %s %s", num(from.X), num(from.Y))
		}
		to := seg.To()
		switch seg := seg.(type) {
		case route.Line:
			fmt.Fprintf(&b, " L %s %s", num(to.X), num(to.Y))
		case route.Arc:
			sweep := 0
			if seg.Sweep > 0 {
				sweep = 1
			}
			large := 0
			if seg.Sweep > 180 || seg.Sweep < -180 {
				large = 1
			}
			fmt.Fprintf(&b, " A %s %s 0 %d %d %s %s", num(seg.Radius), num(seg.Radius), large, sweep, num(to.X), num(to.Y))
		}
	}
	return b.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
