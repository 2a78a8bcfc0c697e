package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gitdiagram/pkg/layout"
)

// configCommand creates the config command, which prints a layout config as
// TOML. With -c the file is loaded first, so the output shows the defaults
// merged with the overrides it contains.
func (c *CLI) configCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the layout configuration as TOML",
		Example: `  gitdiagram config > layout.toml
  gitdiagram config -c layout.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := layout.Default()
			if configPath != "" {
				var err error
				if cfg, err = layout.Load(configPath); err != nil {
					return err
				}
			}
			return cfg.Encode(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "layout config file (TOML) to merge with the defaults")
	return cmd
}
