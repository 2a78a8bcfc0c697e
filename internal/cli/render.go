package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gitdiagram/pkg/layout"
	"github.com/matzehuels/gitdiagram/pkg/observability"
	"github.com/matzehuels/gitdiagram/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string  // output file; other formats reuse its base name
	formats    string  // comma-separated formats
	vizType    string  // "graph" or "nodelink"
	configPath string  // TOML layout file
	autoWidth  bool    // grow the diagram to fit all commits
	scale      float64 // raster scale factor
	embedFont  bool    // inline the label font in SVG output
	open       bool    // show the first output in the system viewer
}

// renderCommand creates the render command.
//
// Defaults: output git_diagram.png, graph view, format from the output
// extension, and the result opened in the system viewer.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		output:  pipeline.DefaultOutput,
		vizType: pipeline.DefaultVizType,
		scale:   pipeline.DefaultScale,
		open:    true,
	}

	cmd := &cobra.Command{
		Use:   "render [diagram.json|diagram.yaml]",
		Short: "Render a branch/commit diagram",
		Long: `Render a branch/commit diagram to an image.

Without a file the built-in example is rendered. The input lists branch names
in row order, the commits as (commit, branch) slots and the links between them;
run 'gitdiagram example' for a starting point.

Layout sizes come from a TOML file (-c); 'gitdiagram config' prints the
defaults.`,
		Example: `  gitdiagram render
  gitdiagram render history.yaml -o history.png
  gitdiagram render history.yaml -f png,svg --scale 2 --open=false
  gitdiagram render history.yaml -t nodelink -f svg,dot`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) == 1 {
				input = args[0]
			}
			return c.runRender(cmd.Context(), input, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file (other formats reuse its base name)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): png, jpg, gif, tiff, bmp, svg, json (graph), dot (nodelink); comma-separated")
	cmd.Flags().StringVarP(&opts.vizType, "type", "t", opts.vizType, "visualization type: graph, nodelink")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "layout config file (TOML)")
	cmd.Flags().BoolVar(&opts.autoWidth, "auto-width", false, "widen the diagram to fit every commit")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster scale factor, at most 8 (graph view)")
	cmd.Flags().BoolVar(&opts.embedFont, "embed-font", false, "embed the label font in SVG output")
	cmd.Flags().BoolVar(&opts.open, "open", opts.open, "open the result in the system viewer")

	return cmd
}

// pipelineOptions converts flags into pipeline options, loading the layout
// config if one is given.
func (o renderOpts) pipelineOptions(input string) (pipeline.Options, error) {
	opts := pipeline.Options{
		Input:     input,
		VizType:   o.vizType,
		Formats:   parseFormats(o.formats, o.output, o.vizType),
		AutoWidth: o.autoWidth,
		Scale:     o.scale,
		EmbedFont: o.embedFont,
	}
	if o.configPath != "" {
		cfg, err := layout.Load(o.configPath)
		if err != nil {
			return pipeline.Options{}, err
		}
		opts.Layout = &cfg
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}

// runRender renders the diagram, writes every artifact and optionally opens
// the first one.
func (c *CLI) runRender(ctx context.Context, input string, flags renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	opts, err := flags.pipelineOptions(input)
	if err != nil {
		return err
	}
	opts.Logger = logger

	runner := c.newRunner()

	spinner := newSpinnerWithContext(ctx, "Rendering diagram...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}

	spinner.SetMessage("Writing files...")
	paths, err := runner.Write(ctx, result, flags.output)
	if err != nil {
		spinner.StopWithError("Write failed")
		return err
	}
	spinner.Stop()
	prog.done("Rendered diagram", "files", len(paths))

	printSuccess("Rendered %s", opts.Source())
	printStats(result.Stats)
	for _, p := range paths {
		printFile(p)
	}

	if flags.open && len(paths) > 0 {
		err := openFile(paths[0])
		observability.Output().OnOpen(ctx, paths[0], err)
		if err != nil {
			logger.Warn("could not open viewer", "path", paths[0], "err", err)
		}
	}
	return nil
}
