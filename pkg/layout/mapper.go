package layout

import (
	"math"

	"github.com/matzehuels/gitdiagram/pkg/errors"
)

// Point is a position in pixel space, y growing downwards.
type Point struct {
	X, Y float64
}

// Map returns the centre of commit slot commit on branch row branch.
func (c Config) Map(commit, branch int) Point {
	return Point{
		X: float64(commit)*c.CellWidth + c.MarginLeft,
		Y: float64(branch)*c.CellHeight + c.MarginY,
	}
}

// RowY returns the y coordinate of a branch row.
func (c Config) RowY(branch int) float64 {
	return float64(branch)*c.CellHeight + c.MarginY
}

// Canvas returns the image size for a diagram with the given branch count.
func (c Config) Canvas(branches int) (width, height int) {
	w := c.MarginLeft + c.DiagramWidth + c.MarginRight
	h := float64(branches-1)*c.CellHeight + 2*c.MarginY
	return int(math.Ceil(w)), int(math.Ceil(h))
}

// GuideEnd returns the x coordinate where branch guide lines stop.
func (c Config) GuideEnd() float64 {
	return c.MarginLeft + c.DiagramWidth
}

// Fit checks that a commit at index maxCommit, including its cutout, lies
// within the diagram width. A negative maxCommit always fits.
func (c Config) Fit(maxCommit int) error {
	if maxCommit < 0 {
		return nil
	}
	right := float64(maxCommit)*c.CellWidth + c.Clearance()
	if right > c.DiagramWidth {
		return errors.New(errors.ErrCodeInvalidConfig,
			"commit index %d needs a diagram width of %g, have %g (enable auto_width or raise diagram_width)",
			maxCommit, right, c.DiagramWidth)
	}
	return nil
}

// FitTo returns c unchanged when the commits fit or AutoWidth is off.
// Otherwise the copy's DiagramWidth is grown so that maxCommit plus one
// spare cell fits.
func (c Config) FitTo(maxCommit int) Config {
	if !c.AutoWidth || c.Fit(maxCommit) == nil {
		return c
	}
	c.DiagramWidth = max(float64(maxCommit+1)*c.CellWidth, float64(maxCommit)*c.CellWidth+c.Clearance())
	return c
}
