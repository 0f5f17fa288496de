// Package cmd provides the root command and CLI setup for wpprep.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"wpprep.dev/pkg/wpprep/internal/adapter"
	"wpprep.dev/pkg/wpprep/internal/controller"
	"wpprep.dev/pkg/wpprep/internal/domain"
)

var fsAdapter adapter.ProjectFSAdapter

// verboseFlag enables debug logging.
var verboseFlag bool

// logFileFlag redirects logs to a rotating file.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	fsAdapter = adapter.NewLocalProjectFSAdapter()
}

const rootLongDescription = `wpprep inspects a WordPress project directory and reports which development
environment artifacts are present, missing or partially configured: git,
package.json and composer.json, agent skills, Composer packages and scripts,
Husky hooks, .editorconfig and .gitignore, Vitest and i18n scaffolding.

Detection is read-only. The JSON snapshot and the summary it prints are meant
to drive a separate scaffolding step.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "wpprep",
		Short:        "WordPress project state detector",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey), cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "write logs to a rotating file instead of stderr")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// newWorkflow builds a workflow printing to the command's output, styled
// when that output is a terminal.
func newWorkflow(cmd *cobra.Command) domain.Workflow {
	ui := controller.NewUI(cmd, isTTY(cmd.OutOrStdout()))

	return domain.NewWorkflow(fsAdapter, ui, domain.DefaultCatalog)
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return controller.IsTTY(f)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
