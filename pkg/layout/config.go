package layout

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gitdiagram/pkg/errors"
)

// Default layout values.
const (
	DefaultMarginLeft    = 230
	DefaultMarginRight   = 50
	DefaultMarginY       = 50
	DefaultDiagramWidth  = 2000
	DefaultCellWidth     = 150
	DefaultCellHeight    = 100
	DefaultNodeRadius    = 18
	DefaultNodeBorder    = 3
	DefaultNodeOffset    = 4
	DefaultCornerRadius  = 40
	DefaultLineThickness = 3
	DefaultArrowSize     = 10
	DefaultArrowGap      = 5
	DefaultLabelSize     = 24
	DefaultLabelGap      = 20
)

// Config holds every size used to lay out a diagram, in pixels.
type Config struct {
	MarginLeft    float64 `toml:"margin_left"`
	MarginRight   float64 `toml:"margin_right"`
	MarginY       float64 `toml:"margin_y"`
	DiagramWidth  float64 `toml:"diagram_width"`
	CellWidth     float64 `toml:"cell_width"`
	CellHeight    float64 `toml:"cell_height"`
	NodeRadius    float64 `toml:"node_radius"`
	NodeBorder    float64 `toml:"node_border"`
	NodeOffset    float64 `toml:"node_offset"`
	CornerRadius  float64 `toml:"corner_radius"`
	LineThickness float64 `toml:"line_thickness"`
	ArrowSize     float64 `toml:"arrow_size"`
	ArrowGap      float64 `toml:"arrow_gap"` // space between a connector's end and its arrowhead
	LabelSize     float64 `toml:"label_size"`
	LabelGap      float64 `toml:"label_gap"` // space between a branch label and its guide line

	// AutoWidth grows DiagramWidth to fit the largest commit index instead
	// of rejecting commits that fall outside it.
	AutoWidth bool `toml:"auto_width"`
}

// Default returns the stock layout.
func Default() Config {
	return Config{
		MarginLeft:    DefaultMarginLeft,
		MarginRight:   DefaultMarginRight,
		MarginY:       DefaultMarginY,
		DiagramWidth:  DefaultDiagramWidth,
		CellWidth:     DefaultCellWidth,
		CellHeight:    DefaultCellHeight,
		NodeRadius:    DefaultNodeRadius,
		NodeBorder:    DefaultNodeBorder,
		NodeOffset:    DefaultNodeOffset,
		CornerRadius:  DefaultCornerRadius,
		LineThickness: DefaultLineThickness,
		ArrowSize:     DefaultArrowSize,
		ArrowGap:      DefaultArrowGap,
		LabelSize:     DefaultLabelSize,
		LabelGap:      DefaultLabelGap,
	}
}

// Load reads a TOML layout file on top of [Default].
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout config %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r on top of [Default] and validates the result.
// Unknown keys are rejected so typos do not pass silently.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode layout")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown layout key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate checks that sizes are usable: cells, diagram width and the three
// node radii must be positive, everything else non-negative. Positive
// border and offset keep the fill, ring and cutout discs strictly nested.
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"diagram_width", c.DiagramWidth},
		{"cell_width", c.CellWidth},
		{"cell_height", c.CellHeight},
		{"node_radius", c.NodeRadius},
		{"node_border", c.NodeBorder},
		{"node_offset", c.NodeOffset},
	}
	for _, f := range positive {
		if f.v <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be positive, got %g", f.name, f.v)
		}
	}

	nonNegative := []struct {
		name string
		v    float64
	}{
		{"margin_left", c.MarginLeft},
		{"margin_right", c.MarginRight},
		{"margin_y", c.MarginY},
		{"corner_radius", c.CornerRadius},
		{"line_thickness", c.LineThickness},
		{"arrow_size", c.ArrowSize},
		{"arrow_gap", c.ArrowGap},
		{"label_size", c.LabelSize},
		{"label_gap", c.LabelGap},
	}
	for _, f := range nonNegative {
		if f.v < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must not be negative, got %g", f.name, f.v)
		}
	}
	return nil
}

// BorderRadius is the radius of a node's border ring.
func (c Config) BorderRadius() float64 { return c.NodeRadius + c.NodeBorder }

// Clearance is the radius of a node's background cutout. Connectors stop
// at this distance from a node's centre.
func (c Config) Clearance() float64 { return c.NodeRadius + c.NodeBorder + c.NodeOffset }
