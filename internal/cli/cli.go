// Package cli implements the gitdiagram command-line interface.
//
// # Commands
//
//   - render: draw a diagram file, or the built-in example, to PNG, SVG and more
//   - example: write the built-in example as an editable JSON or YAML file
//   - config: print the layout configuration as TOML
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// also attached to the command context so helpers can reach it through
// loggerFromContext.
package cli

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gitdiagram/pkg/buildinfo"
	"github.com/matzehuels/gitdiagram/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "gitdiagram"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "gitdiagram draws branch and commit diagrams",
		Long: `gitdiagram draws static branch/commit diagrams: one dashed guide per branch,
coloured commit discs and rounded arrows between commits.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.exampleCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats splits a comma-separated format list. An empty list picks
// the format from the output extension, falling back to PNG.
func parseFormats(s, output, vizType string) []string {
	if s != "" {
		return strings.Split(s, ",")
	}
	if output != "" {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(output), "."))
		if ext != "" && pipeline.ValidateFormat(vizType, ext) == nil {
			return []string{ext}
		}
	}
	return []string{"png"}
}
