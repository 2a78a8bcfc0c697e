// Package palette maps branch indices to the fill and border colours used
// for their guides and commit nodes.
//
// The table covers the first four branches. Every other index, including
// negative ones, falls back to yellow, so lookups never fail.
package palette

import "image/color"

// Pair is the colour pair for one branch: Fill for the guide and node body,
// Border for the ring around each node.
type Pair struct {
	Fill   color.RGBA
	Border color.RGBA
}

var table = []Pair{
	{Fill: rgb(27, 161, 226), Border: rgb(0, 110, 175)}, // blue
	{Fill: rgb(216, 0, 115), Border: rgb(165, 0, 64)},   // pink
	{Fill: rgb(96, 169, 23), Border: rgb(45, 118, 0)},   // green
	{Fill: rgb(240, 163, 10), Border: rgb(189, 112, 0)}, // orange
}

// Fallback is returned for branch indices outside the table.
var Fallback = Pair{Fill: rgb(227, 200, 0), Border: rgb(176, 149, 0)}

// Fixed colours shared by every branch.
var (
	Background = rgb(24, 20, 29)
	Link       = rgb(200, 200, 200)
	Label      = rgb(245, 245, 245)
)

// For returns the colour pair for branch index i.
func For(i int) Pair {
	if i < 0 || i >= len(table) {
		return Fallback
	}
	return table[i]
}

// Fill returns the fill colour for branch index i.
func Fill(i int) color.RGBA { return For(i).Fill }

// Border returns the border colour for branch index i.
func Border(i int) color.RGBA { return For(i).Border }

// Hex formats c as a #rrggbb string.
func Hex(c color.RGBA) string {
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{c.R, c.G, c.B} {
		b[1+2*i] = digits[v>>4]
		b[2+2*i] = digits[v&0x0f]
	}
	return string(b)
}

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 0xff} }
