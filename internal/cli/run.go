package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/example/mm-worker/internal/config"
	"github.com/example/mm-worker/internal/events"
	"github.com/example/mm-worker/internal/folders"
	"github.com/example/mm-worker/internal/shell"
	"github.com/spf13/cobra"
)

func newRunCmd(loader *config.Loader, executor shell.Executor) *cobra.Command {
	flags := &runtimeFlagSet{}
	var useShell bool
	var stream bool
	var workDir string

	cmd := &cobra.Command{
		Use:   "run [flags] -- command [args...]",
		Short: "Run an external command and fail on a nonzero exit code",
		Long: `Run executes the command synchronously. Without --log-file its output is
captured and included in the error when it fails; with --log-file both output
streams are written to that file, replacing previous content.

With --stream the command's output is forwarded to this process's stdout and
stderr as it is produced instead of being captured.

Arguments are passed to the program without shell interpretation. Use --shell
to run a single script string through the platform shell instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, env, err := loadRuntime(cmd, loader, flags, false)
			if err != nil {
				return err
			}

			target, err := buildCommand(args, useShell)
			if err != nil {
				return err
			}
			target.Dir = workDir

			if stream && cfg.LogFile != "" {
				return errors.New("--stream cannot be combined with a log file")
			}

			if cfg.LogFile != "" {
				if err := folders.EnsureParent(cfg.LogFile); err != nil {
					return err
				}
			}

			runner := executor
			if runner == nil {
				runner = shell.NewRunner(env.Logger)
			}

			emitter := events.NewEmitter(cmd.OutOrStdout())
			if err := emitter.EmitFields(events.TypeCommandStart, "Calling command", map[string]interface{}{"command": target.String(), "logFile": cfg.LogFile}); err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			var code int
			var runErr error
			if stream {
				code, runErr = runner.Stream(ctx, target, cmd.OutOrStdout(), cmd.ErrOrStderr())
			} else {
				code, runErr = runner.Run(ctx, target, shell.RunOptions{LogFile: cfg.LogFile})
			}
			if runErr != nil {
				if err := emitter.EmitFields(events.TypeCommandFailed, "Command failed", map[string]interface{}{"command": target.String(), "exitCode": code}); err != nil {
					return err
				}
				return runErr
			}

			return emitter.EmitFields(events.TypeCommandFinished, "Command finished", map[string]interface{}{"command": target.String(), "exitCode": code})
		},
	}

	cmd.Flags().SetInterspersed(false)
	bindRuntimeFlags(cmd, flags)
	cmd.Flags().BoolVar(&useShell, "shell", false, "Interpret the single argument as a shell script")
	cmd.Flags().BoolVar(&stream, "stream", false, "Forward the command's output instead of capturing it")
	cmd.Flags().StringVar(&workDir, "dir", "", "Working directory for the command")

	return cmd
}

func buildCommand(args []string, useShell bool) (shell.Command, error) {
	if useShell {
		if len(args) != 1 {
			return shell.Command{}, errors.New("--shell takes exactly one script argument")
		}
		if strings.TrimSpace(args[0]) == "" {
			return shell.Command{}, errors.New("shell script cannot be empty")
		}
		return shell.ShellCommand(args[0]), nil
	}

	if strings.TrimSpace(args[0]) == "" {
		return shell.Command{}, errors.New("command name cannot be empty")
	}
	return shell.Command{Name: args[0], Args: args[1:]}, nil
}
