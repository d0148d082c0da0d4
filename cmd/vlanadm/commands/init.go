package commands

import (
	"github.com/spf13/cobra"

	"github.com/vlanadm/vlanadm/cmd/vlanadm/handlers"
)

// Init returns the command for interactively creating a defaults file.
//
// This command guides users through creating a vlanadm.yaml file using an
// interactive wizard with text inputs and single-select prompts. The file
// can then be passed to create and delete via --config.
//
// Flags:
//
//	--output, -o: Path to output file (default "vlanadm.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a vlanadm defaults file",
		Long: `Interactively create a vlanadm.yaml defaults file.

This command guides you through configuring a VLAN network step by
step. It will ask about:

  - Naming (prefix and namespace)
  - Attachment kind (bridge or localnet) and its settings
  - The VLAN id range and worker concurrency
  - Labels applied to every attachment
  - An optional description template

The generated file supplies defaults for create and delete; any flag
given on the command line overrides the file value.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "vlanadm.yaml", "Output file path")

	return cmd
}
