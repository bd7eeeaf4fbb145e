package cli

import (
	"fmt"

	"github.com/example/mm-worker/internal/config"
	"github.com/spf13/cobra"
)

// runtimeFlagSet tracks shared flags before they are converted into config overrides.
type runtimeFlagSet struct {
	debug     bool
	quiet     bool
	logFormat string
	folders   string
	precision int
	logFile   string
}

func bindRuntimeFlags(cmd *cobra.Command, flags *runtimeFlagSet) {
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "Log at debug level")
	cmd.Flags().BoolVar(&flags.quiet, "quiet", false, "Do not print the startup banner")
	cmd.Flags().StringVar(&flags.logFormat, "log-format", "", "Log format: text or json")
	cmd.Flags().StringVar(&flags.folders, "folders", "", "Comma-separated folders to create (overrides config)")
	cmd.Flags().IntVar(&flags.precision, "precision", 0, fmt.Sprintf("Digits after the decimal point (0-%d)", config.MaxPrecision))
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "File receiving command output instead of capturing it")
}

func (f runtimeFlagSet) toOverrides(cmd *cobra.Command) config.Overrides {
	ov := config.Overrides{}
	if cmd.Flags().Changed("debug") {
		ov.Debug = &f.debug
	}

	if cmd.Flags().Changed("quiet") {
		ov.Quiet = &f.quiet
	}

	if cmd.Flags().Changed("log-format") {
		ov.LogFormat = f.logFormat
	}

	if cmd.Flags().Changed("folders") {
		ov.Folders = config.ParseFolderList(f.folders)
	}

	if cmd.Flags().Changed("precision") {
		ov.Precision = f.precision
		ov.PrecisionSet = true
	}

	if cmd.Flags().Changed("log-file") {
		ov.LogFile = f.logFile
	}

	return ov
}
