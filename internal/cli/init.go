package cli

import (
	"fmt"

	"github.com/example/mm-worker/internal/config"
	"github.com/example/mm-worker/internal/folders"
	"github.com/spf13/cobra"
)

func newInitCmd(loader *config.Loader) *cobra.Command {
	flags := &runtimeFlagSet{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Print the banner, validate configuration and create the configured folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, env, err := loadRuntime(cmd, loader, flags, true)
			if err != nil {
				return err
			}

			if err := folders.CreateMissing(cfg.Folders); err != nil {
				return err
			}

			if cfg.LogFile != "" {
				if err := folders.EnsureParent(cfg.LogFile); err != nil {
					return err
				}
			}

			env.Logger.WithField("folders", len(cfg.Folders)).Debug("folders ready")
			fmt.Fprintf(cmd.OutOrStdout(), "Environment looks good. %d folder(s) ready, precision %d.\n", len(cfg.Folders), cfg.Precision)
			return nil
		},
	}

	bindRuntimeFlags(cmd, flags)

	return cmd
}
