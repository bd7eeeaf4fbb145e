package cli

import (
	"github.com/example/mm-worker/internal/config"
	"github.com/example/mm-worker/internal/shell"
	"github.com/spf13/cobra"
)

// Execute builds the root command tree and runs the CLI.
func Execute() error {
	return newRootCmd(&config.Loader{ConfigPath: config.DefaultConfigPath, EnvFile: config.DefaultEnvFile}, nil).Execute()
}

// newRootCmd wires the sub-commands. A nil executor selects the local shell runner.
func newRootCmd(loader *config.Loader, executor shell.Executor) *cobra.Command {
	rootOpts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "mm-worker",
		Short:         "Worker helpers for the MadMiner analysis pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}
	rootCmd.SetVersionTemplate("mm-worker version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&rootOpts.ConfigPath, "config", loader.ConfigPath, "Path to mm-worker.config.yml (optional)")
	rootCmd.PersistentFlags().StringVar(&rootOpts.EnvFile, "env-file", loader.EnvFile, "Path to a .env file loaded before reading MMW_* variables")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if rootOpts.ConfigPath != "" {
			loader.ConfigPath = rootOpts.ConfigPath
		}
		loader.EnvFile = rootOpts.EnvFile
	}

	rootCmd.AddCommand(
		newInitCmd(loader),
		newRunCmd(loader, executor),
		newFoldersCmd(loader),
		newFormatCmd(loader),
		newDoctorCmd(loader, executor),
		newVersionCmd(),
	)

	return rootCmd
}

type rootOptions struct {
	ConfigPath string
	EnvFile    string
}
