// Package render holds the output side of gitdiagram.
//
// # Overview
//
// Drawing happens in two subpackages:
//
//   - [sink] composes a diagram into a scene and draws it as a raster image
//     or SVG
//   - [nodelink] renders the same diagram as a Graphviz node-link graph
//
// This package encodes raster images into files. [FormatFromPath] picks the
// format from the output extension and [Encode] writes the image:
//
//	img, err := sink.RenderRaster(scene)
//	format, err := render.FormatFromPath("git_diagram.png")
//	err = render.Encode(w, img, format)
//
// Encoding is delegated to [github.com/disintegration/imaging], which covers
// PNG, JPEG, GIF, TIFF and BMP.
//
// [sink]: github.com/matzehuels/gitdiagram/pkg/render/sink
// [nodelink]: github.com/matzehuels/gitdiagram/pkg/render/nodelink
package render
