package cli

import (
	"errors"

	"github.com/example/mm-worker/internal/config"
	"github.com/example/mm-worker/internal/events"
	"github.com/example/mm-worker/internal/folders"
	"github.com/spf13/cobra"
)

func newFoldersCmd(loader *config.Loader) *cobra.Command {
	flags := &runtimeFlagSet{}

	cmd := &cobra.Command{
		Use:   "folders [path...]",
		Short: "Create missing folders, failing if a path exists but is not a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, env, err := loadRuntime(cmd, loader, flags, false)
			if err != nil {
				return err
			}

			paths := cfg.Folders
			if len(args) > 0 {
				paths = args
			}
			if len(paths) == 0 {
				return errors.New("no folders given; pass paths, --folders, or set MMW_FOLDERS")
			}

			if err := folders.CreateMissing(paths); err != nil {
				return err
			}

			env.Logger.WithField("count", len(paths)).Debug("folders ready")
			return events.NewEmitter(cmd.OutOrStdout()).EmitFields(events.TypeFoldersReady, "", map[string]interface{}{"folders": paths})
		},
	}

	bindRuntimeFlags(cmd, flags)

	return cmd
}
