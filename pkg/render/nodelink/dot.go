package nodelink

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/gitdiagram/pkg/diagram"
	"github.com/matzehuels/gitdiagram/pkg/errors"
	"github.com/matzehuels/gitdiagram/pkg/palette"
)

// Options configures node-link diagram generation.
type Options struct {
	// Detailed adds the commit slot to each node label.
	Detailed bool
}

// ToDOT converts a diagram to Graphviz DOT source. Every commit and every
// link endpoint becomes one node, even if it is not listed as a commit.
func ToDOT(d *diagram.Diagram, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", palette.Hex(palette.Background))
	buf.WriteString("  node [shape=circle, style=\"filled\", penwidth=3, fontname=\"Helvetica\", fontsize=12, fontcolor=white];\n")
	fmt.Fprintf(&buf, "  edge [color=%q, penwidth=2, arrowsize=0.8];\n", palette.Hex(palette.Link))
	buf.WriteString("  ranksep=0.8;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	commits := distinctCommits(d)
	for _, c := range commits {
		p := palette.For(c.Branch)
		fmt.Fprintf(&buf, "  %s [label=%q, fillcolor=%q, color=%q];\n",
			nodeID(c), label(d, c, opts.Detailed), palette.Hex(p.Fill), palette.Hex(p.Border))
	}

	buf.WriteString("\n")
	for i := 0; i < len(commits); {
		j := i
		for j < len(commits) && commits[j].Commit == commits[i].Commit {
			j++
		}
		if j-i > 1 {
			buf.WriteString("  { rank=same;")
			for _, c := range commits[i:j] {
				buf.WriteString(" " + nodeID(c) + ";")
			}
			buf.WriteString(" }\n")
		}
		i = j
	}

	for _, l := range d.Links {
		fmt.Fprintf(&buf, "  %s -> %s;\n", nodeID(l.From), nodeID(l.To))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func distinctCommits(d *diagram.Diagram) []diagram.Commit {
	seen := make(map[diagram.Commit]bool)
	var out []diagram.Commit
	add := func(c diagram.Commit) {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, c := range d.Commits {
		add(c)
	}
	for _, l := range d.Links {
		add(l.From)
		add(l.To)
	}
	slices.SortFunc(out, func(a, b diagram.Commit) int {
		return cmp.Or(cmp.Compare(a.Commit, b.Commit), cmp.Compare(a.Branch, b.Branch))
	})
	return out
}

func nodeID(c diagram.Commit) string {
	return fmt.Sprintf("c%d_b%d", c.Commit, c.Branch)
}

func label(d *diagram.Diagram, c diagram.Commit, detailed bool) string {
	name := strconv.Itoa(c.Branch)
	if c.Branch >= 0 && c.Branch < len(d.Branches) {
		name = d.Branches[c.Branch]
	}
	if !detailed {
		return name
	}
	return fmt.Sprintf("%s\n#%d", name, c.Commit)
}

// RenderSVG renders DOT source to SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	data, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(data), nil
}

// RenderPNG renders DOT source to PNG.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderBackend, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderBackend, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderBackend, err, "render %s", format)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg tag with one whose
// pixel size matches the view box.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
