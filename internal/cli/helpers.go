package cli

import (
	"github.com/example/mm-worker/internal/bootstrap"
	"github.com/example/mm-worker/internal/config"
	"github.com/example/mm-worker/internal/shell"
	"github.com/spf13/cobra"
)

// loadRuntime merges and validates configuration, then builds the logging
// environment on the command's stderr. The banner is written only when banner
// is set and the configuration is not quiet.
func loadRuntime(cmd *cobra.Command, loader *config.Loader, flags *runtimeFlagSet, banner bool) (config.RuntimeConfig, *bootstrap.Environment, error) {
	cfg, err := loader.Load(flags.toOverrides(cmd))
	if err != nil {
		return cfg, nil, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	env := bootstrap.Init(bootstrap.Options{
		Debug:  cfg.Debug,
		Output: cmd.ErrOrStderr(),
		JSON:   cfg.LogFormat == config.LogFormatJSON,
		Quiet:  cfg.Quiet || !banner,
	})

	return cfg, env, nil
}

// ExitCode maps an error returned by Execute to the process exit status.
func ExitCode(err error) int {
	return shell.ExitCode(err)
}
