package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"

	"wpprep.dev/pkg/wpprep/internal/domain"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version, the VCS revision and the number of checks in the catalog.",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("catalog checks\t", len(domain.DefaultCatalog.Entries()))

			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				return
			}

			cmd.Println("tool version\t", info.Main.Version)
			cmd.Println("go version\t", info.GoVersion)

			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" {
					cmd.Println("revision\t", setting.Value)
				}
			}
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
