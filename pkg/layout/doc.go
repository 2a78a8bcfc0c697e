// Package layout maps abstract diagram coordinates to pixels.
//
// # Configuration
//
// All geometry is driven by an immutable [Config]. [Default] returns the
// stock values; [Load] and [Decode] overlay a TOML file on top of them, so a
// file only needs the keys it changes:
//
//	# layout.toml
//	cell_width = 120
//	corner_radius = 30
//
// # Coordinate Mapper
//
// [Config.Map] places commit c on branch b at
//
//	x = c*CellWidth  + MarginLeft
//	y = b*CellHeight + MarginY
//
// Points are never cached; they are a pure function of the config and the
// coordinates.
//
// # Canvas
//
// [Config.Canvas] derives the image size from the branch count alone:
//
//	width  = MarginLeft + DiagramWidth + MarginRight
//	height = (branches-1)*CellHeight + 2*MarginY
//
// Commit indices never influence the canvas. [Config.Fit] reports commits
// that would land outside the fixed diagram width, and [Config.FitTo]
// returns a copy whose DiagramWidth is grown to hold them when AutoWidth is set.
package layout
