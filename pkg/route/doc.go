// Package route synthesizes the connector drawn between two commits.
//
// # Overview
//
// [Route] turns two pixel anchors into a [Path]: an ordered list of
// [Segment] values ([Line] or [Arc]) followed by a notched arrowhead
// polygon. Connectors always leave the source to the right and enter the
// target from the left, stopping short of both nodes by the node clearance.
//
// # Same Row
//
// When both anchors share a y coordinate the path is a single [Line]:
//
//	(startX+clearance, y) ──────────▶ (endX-clearance-arrowSize-arrowGap, y)
//
// # Different Rows
//
// Otherwise the connector is an S-curve made of five segments:
//
//	──────╮
//	      │
//	      ╰──────▶
//
//  1. a horizontal run to midX-r
//  2. a quarter arc turning towards the target row
//  3. a vertical run along midX
//  4. a quarter arc turning back to horizontal
//  5. a horizontal run from midX+r to the arrowhead
//
// Angles are in degrees, 0 pointing along +x and increasing clockwise in
// image space (y down). Routing downwards the first arc sweeps 270°→360° and
// the second 180°→90°; routing upwards the first sweeps 90°→0° and the
// second 180°→270°. Every junction is tangent-continuous.
//
// CornerRadius is an upper bound, not the exact bend radius. The radius used
// is
//
//	r = max(0, min(CornerRadius, |dy|/2, midX-startX', stopX-midX))
//
// where startX' is the connector's first x and stopX its last. Neighbouring
// commits on the default grid (150px apart, corner radius 40) therefore bend
// at r = 35 and end in a zero-length final run. With r = 0 the connector is
// three straight lines.
//
// # Arrowhead
//
// The arrowhead is a four point polygon with a notch in its back edge. Its
// tip always sits at (endX-clearance, endY), regardless of the source.
package route
