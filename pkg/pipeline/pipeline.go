// Package pipeline provides the render pipeline shared by every gitdiagram
// entry point.
//
// # Architecture
//
// A run has three stages:
//
//  1. Load: read the diagram from a JSON or YAML file, or take the built-in
//     example, and validate it
//  2. Compose: lay the diagram out on the grid (graph view) or build Graphviz
//     source (nodelink view)
//  3. Render: produce one artifact per requested format
//
// Writing artifacts is a separate step so callers decide where files go.
// The context is checked between stages; a stage itself is never
// interrupted.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:   "history.yaml",
//	    Formats: []string{"png", "svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	paths, err := runner.Write(ctx, result, "git_diagram.png")
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gitdiagram/pkg/diagram"
	"github.com/matzehuels/gitdiagram/pkg/errors"
	"github.com/matzehuels/gitdiagram/pkg/layout"
	"github.com/matzehuels/gitdiagram/pkg/render"
	"github.com/matzehuels/gitdiagram/pkg/render/sink"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultOutput is the output path used when none is given.
	DefaultOutput = "git_diagram.png"

	// DefaultScale renders at the configured pixel size.
	DefaultScale = 1.0

	// MaxScale bounds Scale so supersampled canvases stay allocatable.
	MaxScale = 8.0

	// ExampleSource names the built-in data set in logs and hooks.
	ExampleSource = "example"
)

// Visualization types.
const (
	VizTypeGraph    = "graph"
	VizTypeNodelink = "nodelink"
)

// DefaultVizType is the default visualization type.
const DefaultVizType = VizTypeGraph

// Non-raster output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeGraph:    true,
	VizTypeNodelink: true,
}

// vizFormats lists the non-raster formats each visualization supports.
// Both support every raster format.
var vizFormats = map[string][]string{
	VizTypeGraph:    {FormatSVG, FormatJSON},
	VizTypeNodelink: {FormatSVG, FormatDOT},
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
type Options struct {
	// Input is a .json, .yaml or .yml diagram file. When both Input and
	// Diagram are empty the built-in example is rendered.
	Input string

	// Diagram is an already loaded diagram. It takes precedence over Input.
	Diagram *diagram.Diagram

	// Layout overrides the default layout config.
	Layout *layout.Config

	// AutoWidth forces automatic diagram widening on top of Layout.
	AutoWidth bool

	VizType string
	Formats []string

	// Scale multiplies the pixel size of raster output of the graph view.
	Scale float64

	// EmbedFont inlines the label font into SVG output.
	EmbedFont bool

	// Logger receives stage progress. Defaults to a discarding logger.
	Logger *log.Logger

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Diagram is the loaded and validated input.
	Diagram *diagram.Diagram

	// Scene is the composed grid layout. It is nil for the nodelink view.
	Scene *sink.Scene

	// DOT is the Graphviz source. It is empty for the graph view.
	DOT string

	// Artifacts contains rendered outputs keyed by format, in the order the
	// formats were requested.
	Artifacts []Artifact

	// Stats contains timing and size information.
	Stats Stats
}

// Artifact is one rendered output.
type Artifact struct {
	Format string
	Data   []byte
}

// Artifact returns the data rendered for format, if any.
func (r *Result) Artifact(format string) ([]byte, bool) {
	for _, a := range r.Artifacts {
		if a.Format == format {
			return a.Data, true
		}
	}
	return nil, false
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Branches    int
	Commits     int
	Links       int
	Width       int
	Height      int
	LoadTime    time.Duration
	ComposeTime time.Duration
	RenderTime  time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid viz type %q (must be one of: graph, nodelink)", vizType)
	}
	return nil
}

// ValidateFormat checks that vizType can produce format.
func ValidateFormat(vizType, format string) error {
	if render.IsRaster(format) || slices.Contains(vizFormats[vizType], format) {
		return nil
	}
	valid := append(slices.Clone(vizFormats[vizType]), render.RasterExtensions...)
	return errors.New(errors.ErrCodeInvalidFormat,
		"invalid %s format %q (must be one of: %s)", vizType, format, strings.Join(valid, ", "))
}

// ValidateFormats checks all formats and rejects duplicates.
func ValidateFormats(vizType string, formats []string) error {
	seen := make(map[string]bool, len(formats))
	for _, f := range formats {
		if err := ValidateFormat(vizType, f); err != nil {
			return err
		}
		if seen[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "format %q requested twice", f)
		}
		seen[f] = true
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults normalizes formats, applies defaults and validates.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}

	formats := make([]string, 0, len(o.Formats))
	for _, f := range o.Formats {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			formats = append(formats, f)
		}
	}
	if len(formats) == 0 {
		formats = []string{"png"}
	}
	if err := ValidateFormats(o.VizType, formats); err != nil {
		return err
	}
	o.Formats = formats

	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Scale < 0 || o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidConfig, "scale must be in (0, %g], got %g", MaxScale, o.Scale)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// LayoutConfig returns the layout to compose with.
func (o *Options) LayoutConfig() layout.Config {
	cfg := layout.Default()
	if o.Layout != nil {
		cfg = *o.Layout
	}
	if o.AutoWidth {
		cfg.AutoWidth = true
	}
	return cfg
}

// Source names the diagram input for logs.
func (o *Options) Source() string {
	switch {
	case o.Diagram != nil:
		return "diagram"
	case o.Input != "":
		return o.Input
	}
	return ExampleSource
}

// IsNodelink returns true if this is a nodelink visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == VizTypeNodelink
}
