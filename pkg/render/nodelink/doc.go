// Package nodelink renders a diagram as a Graphviz node-link graph.
//
// # Overview
//
// The grid view in [sink] places every commit at a fixed slot. This package
// instead lets Graphviz lay the commits out left to right, one rank per
// commit index, which is handy for checking the link structure of a large
// diagram at a glance.
//
//	dot := nodelink.ToDOT(d, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// Nodes take their branch colours from [palette]; edges use the connector
// colour of the grid view.
//
// # DOT Format
//
// [ToDOT] produces plain Graphviz source that can also be saved and
// processed with external Graphviz tools. Node IDs have the form
// "c<commit>_b<branch>".
//
// # Dependencies
//
// Rendering runs in-process through [github.com/goccy/go-graphviz]; no
// Graphviz installation is needed.
//
// [sink]: github.com/matzehuels/gitdiagram/pkg/render/sink
// [palette]: github.com/matzehuels/gitdiagram/pkg/palette
package nodelink
