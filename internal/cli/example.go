package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gitdiagram/pkg/diagram"
	dio "github.com/matzehuels/gitdiagram/pkg/io"
)

// exampleCommand creates the example command, which writes the built-in
// diagram as an editable input file.
func (c *CLI) exampleCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write the built-in example diagram as JSON or YAML",
		Long: `Write the built-in example diagram as an input file for 'gitdiagram render'.

The format follows the output extension (.json, .yaml or .yml). Without -o the
example is printed to stdout as JSON.`,
		Example: `  gitdiagram example -o history.yaml
  gitdiagram example > history.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := diagram.Example()
			if output == "" {
				return dio.WriteJSON(d, cmd.OutOrStdout())
			}
			if err := dio.Export(d, output); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("wrote example", "path", output)
			printSuccess("Wrote example diagram")
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.json, .yaml or .yml)")
	return cmd
}
