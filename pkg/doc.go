// Package pkg provides the libraries behind gitdiagram, which draws static
// branch/commit diagrams.
//
// # Overview
//
// A diagram is a list of branch rows, commits placed on a (commit, branch)
// grid, and links between commits. The pkg directory is organized into three
// areas:
//
//  1. Model: [diagram] (data and validation) and [io] (JSON/YAML files)
//  2. Geometry: [layout] (grid mapping and sizes) and [route] (connector paths)
//  3. Output: [render/sink], [render/nodelink] and [render] (encoders)
//
// [pipeline] ties them together for the command line.
//
// # Architecture
//
// The data flow through gitdiagram:
//
//	diagram file or built-in example
//	         ↓
//	    [io] package (decode and validate)
//	         ↓
//	    [layout] + [route] packages (grid points and connector paths)
//	         ↓
//	    [render/sink] package (scene, then raster or SVG)
//	         ↓
//	    PNG/JPEG/GIF/TIFF/BMP/SVG/JSON output
//
// # Quick Start
//
// Render the built-in example to PNG:
//
//	import (
//	    "os"
//
//	    "github.com/matzehuels/gitdiagram/pkg/diagram"
//	    "github.com/matzehuels/gitdiagram/pkg/layout"
//	    "github.com/matzehuels/gitdiagram/pkg/render"
//	    "github.com/matzehuels/gitdiagram/pkg/render/sink"
//	)
//
//	scene, err := sink.Compose(diagram.Example(), layout.Default())
//	if err != nil {
//	    return err
//	}
//	img, err := sink.RenderRaster(scene)
//	if err != nil {
//	    return err
//	}
//	f, _ := os.Create("git_diagram.png")
//	defer f.Close()
//	return render.Encode(f, img, render.PNG)
//
// # Main Packages
//
// [diagram] - Branches, commits and links, plus the validation every
// renderer relies on.
//
// [layout] - The layout configuration (margins, cell sizes, node radii,
// corner radius, arrow size) and the mapping from grid slots to pixels.
//
// [route] - Connector geometry: a straight run for links within one branch,
// an S-curve with two rounded bends otherwise, and a notched arrowhead.
//
// [palette] - Fill and border colours per branch row.
//
// [render/sink] - The scene display list and its raster, SVG and JSON sinks.
//
// [render/nodelink] - A Graphviz node-link view of the same diagram.
//
// [pipeline] - Load, compose, render and write, with statistics and
// [observability] hooks.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/route/...    # Specific package
//	go test -run Example ./... # Examples only
package pkg
