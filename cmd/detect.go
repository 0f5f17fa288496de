package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wpprep.dev/pkg/wpprep/internal/domain"
	m "wpprep.dev/pkg/wpprep/internal/model"
)

const detectLongDescription = `Run every check once against the project directory (default: the current
directory) and print the state snapshot followed by a summary of what the
scaffolding step will create, install, merge or skip.

Skills are looked up under ~/.copilot/skills and ~/.agents/skills.

Vitest counts as configured only when a vitest.config.{js,ts,mjs} file exists
and package.json declares vitest in devDependencies or dependencies. A config
file alone still reports "will install and configure".`

var detectFormatFlag string

var detectParallelFlag int

// detectCmd represents the detect command.
var detectCmd = newDetectCmd()

func newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect [path]",
		Short: "Detect the project state and report what is missing",
		Long:  detectLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := m.ParseFormat(viper.GetString(formatConfigKey))
			if err != nil {
				return err
			}

			target, err := resolveTarget(args)
			if err != nil {
				return err
			}

			return newWorkflow(cmd).Detect(cmd.Context(), domain.DetectArgs{
				Target:   target,
				Format:   format,
				Parallel: viper.GetInt(parallelConfigKey),
			})
		},
	}

	configureDetectFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func configureDetectFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&detectFormatFlag, formatFlagName, "f", viper.GetString(formatConfigKey), "snapshot format: json, yaml or table")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), formatConfigKey)

	cmd.Flags().IntVarP(&detectParallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of checks to run concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)
}

// resolveTarget turns the optional path argument into an absolute root and
// looks up the home directory once. An unresolvable home only disables the
// skill checks.
func resolveTarget(args []string) (m.Target, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	root, err := filepath.Abs(path)
	if err != nil {
		return m.Target{}, fmt.Errorf("resolve project root %q: %w", path, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		slog.Warn("home directory not resolvable, skill checks will report missing", "error", err)

		home = ""
	}

	return m.Target{Root: m.Path(root), Home: m.Path(home)}, nil
}
