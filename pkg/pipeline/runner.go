package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gitdiagram/pkg/diagram"
	"github.com/matzehuels/gitdiagram/pkg/errors"
	"github.com/matzehuels/gitdiagram/pkg/io"
	"github.com/matzehuels/gitdiagram/pkg/observability"
	"github.com/matzehuels/gitdiagram/pkg/render/nodelink"
	"github.com/matzehuels/gitdiagram/pkg/render/sink"
)

// Runner executes the pipeline.
//
// The Runner holds no per-run state, so one Runner may serve several
// goroutines with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger uses the default logger.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs load → compose → render.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	d, err := r.Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Diagram = d
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Branches = d.BranchCount()
	result.Stats.Commits = len(d.Commits)
	result.Stats.Links = len(d.Links)

	r.Logger.Info("loaded diagram",
		"source", opts.Source(),
		"branches", result.Stats.Branches,
		"commits", result.Stats.Commits,
		"links", result.Stats.Links,
		"duration", result.Stats.LoadTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Compose
	composeStart := time.Now()
	if err := r.Compose(ctx, d, opts, result); err != nil {
		return nil, err
	}
	result.Stats.ComposeTime = time.Since(composeStart)

	r.Logger.Info("composed layout",
		"viz", opts.VizType,
		"width", result.Stats.Width,
		"height", result.Stats.Height,
		"duration", result.Stats.ComposeTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, result, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load returns opts.Diagram, the file at opts.Input, or the built-in
// example, validated.
func (r *Runner) Load(ctx context.Context, opts Options) (d *diagram.Diagram, err error) {
	source := opts.Source()
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, source)
	start := time.Now()
	defer func() {
		var counts observability.Counts
		if d != nil {
			counts = observability.Counts{Branches: d.BranchCount(), Commits: len(d.Commits), Links: len(d.Links)}
		}
		hooks.OnLoadComplete(ctx, source, counts, time.Since(start), err)
	}()

	switch {
	case opts.Diagram != nil:
		d = opts.Diagram
	case opts.Input != "":
		r.Logger.Debug("reading diagram", "path", opts.Input)
		return io.Import(opts.Input)
	default:
		d = diagram.Example()
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Compose lays d out for opts.VizType and records the result.
func (r *Runner) Compose(ctx context.Context, d *diagram.Diagram, opts Options, result *Result) (err error) {
	hooks := observability.Pipeline()
	hooks.OnComposeStart(ctx, opts.VizType)
	start := time.Now()
	defer func() {
		hooks.OnComposeComplete(ctx, opts.VizType, result.Stats.Width, result.Stats.Height, time.Since(start), err)
	}()

	if opts.IsNodelink() {
		result.DOT = nodelink.ToDOT(d, nodelink.Options{Detailed: true})
		r.Logger.Debug("generated DOT", "bytes", len(result.DOT))
		return nil
	}

	cfg := opts.LayoutConfig()
	scene, err := sink.Compose(d, cfg)
	if err != nil {
		return err
	}
	if scene.Config.DiagramWidth != cfg.DiagramWidth {
		r.Logger.Debug("widened diagram", "from", cfg.DiagramWidth, "to", scene.Config.DiagramWidth)
	}
	result.Scene = scene
	result.Stats.Width = scene.Width
	result.Stats.Height = scene.Height
	return nil
}

// Render produces one artifact per format from a composed result.
func (r *Runner) Render(ctx context.Context, result *Result, opts Options) (artifacts []Artifact, err error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	}()

	if opts.IsNodelink() {
		if result.DOT == "" {
			return nil, errors.New(errors.ErrCodeInternal, "nodelink render without DOT source")
		}
		return renderNodelink(ctx, result.DOT, opts)
	}
	if result.Scene == nil {
		return nil, errors.New(errors.ErrCodeInternal, "graph render without a composed scene")
	}
	return renderGraph(result.Scene, opts)
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
