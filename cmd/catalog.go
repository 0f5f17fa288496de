package cmd

import (
	"github.com/spf13/cobra"
)

// catalogCmd represents the catalog command.
var catalogCmd = newCatalogCmd()

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the checks detect runs",
		Long:  "List every category, check, probe kind and target path the detect command evaluates, in output order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return newWorkflow(cmd).Catalog(cmd.Context())
		},
	}
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
