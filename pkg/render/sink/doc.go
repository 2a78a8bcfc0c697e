// Package sink turns a diagram into pictures.
//
// # Scene
//
// [Compose] lays a [diagram.Diagram] out with a [layout.Config] and returns a
// [Scene]: a display list of branch guides, commit nodes and routed
// connectors in absolute pixel coordinates. Composition validates the
// diagram and the config and checks that every commit fits the diagram
// width, so a scene that composes always draws.
//
// Everything is drawn in three passes, back to front:
//
//  1. A dashed guide line and a right-aligned label per branch.
//  2. A node per commit: background cutout, border ring and fill disc.
//  3. A connector per link, stroked and finished with a notched arrowhead.
//
// The cutout masks the guide around each node, and connectors stop at its
// edge, so they never run under a node.
//
// # Outputs
//
// [RenderRaster] draws the scene with [github.com/fogleman/gg]:
//
//	scene, err := sink.Compose(d, layout.Default())
//	img, err := sink.RenderRaster(scene, sink.WithScale(2))
//
// [RenderSVG] writes the same scene as SVG, with arcs emitted as SVG arc
// commands.
//
// [diagram.Diagram]: github.com/matzehuels/gitdiagram/pkg/diagram.Diagram
// [layout.Config]: github.com/matzehuels/gitdiagram/pkg/layout.Config
package sink
