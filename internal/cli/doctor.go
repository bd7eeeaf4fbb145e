package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/example/mm-worker/internal/config"
	"github.com/example/mm-worker/internal/shell"
	"github.com/spf13/cobra"
)

type doctorCheck struct {
	Name   string
	Status string // "✓", "✗" or "⊘"
	Detail string
	Error  error
}

func newDoctorCmd(loader *config.Loader, executor shell.Executor) *cobra.Command {
	flags := &runtimeFlagSet{}
	var required []string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the shell, required binaries, configuration and folders",
		Long: `The doctor subcommand checks the worker environment:
- Go runtime version
- platform shell used for script commands
- binaries passed with --require
- configuration validity
- configured folders and log file location`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loader.Load(flags.toOverrides(cmd))
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			checker := executor
			if checker == nil {
				checker = shell.NewRunner(nil)
			}

			checks := runDoctorChecks(checker, &cfg, required)
			printDoctorReport(cmd, checks)

			for _, check := range checks {
				if check.Error != nil {
					return fmt.Errorf("doctor checks failed")
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), "\n✓ All checks passed. System is ready.")
			return nil
		},
	}

	bindRuntimeFlags(cmd, flags)
	cmd.Flags().StringArrayVar(&required, "require", nil, "Binary that must be on PATH (repeatable)")

	return cmd
}

func runDoctorChecks(checker shell.Executor, cfg *config.RuntimeConfig, required []string) []doctorCheck {
	checks := []doctorCheck{checkGoVersion()}

	checks = append(checks, checkBinary("Shell", shell.ShellCommand("").Name, checker))
	for _, name := range required {
		checks = append(checks, checkBinary("Binary "+name, name, checker))
	}

	checks = append(checks, checkConfiguration(cfg))

	for _, folder := range cfg.Folders {
		checks = append(checks, checkFolder(folder))
	}

	if cfg.LogFile != "" {
		checks = append(checks, checkLogFile(cfg.LogFile))
	}

	return checks
}

func checkGoVersion() doctorCheck {
	return doctorCheck{
		Name:   "Go Runtime",
		Status: "✓",
		Detail: fmt.Sprintf("Version %s", runtime.Version()),
	}
}

func checkBinary(label, name string, checker shell.Executor) doctorCheck {
	if err := checker.EnsureBinary(name); err != nil {
		return doctorCheck{
			Name:   label,
			Status: "✗",
			Detail: fmt.Sprintf("%s not found in PATH", name),
			Error:  err,
		}
	}

	return doctorCheck{
		Name:   label,
		Status: "✓",
		Detail: name,
	}
}

func checkConfiguration(cfg *config.RuntimeConfig) doctorCheck {
	if err := cfg.Validate(); err != nil {
		return doctorCheck{
			Name:   "Configuration",
			Status: "✗",
			Detail: "Invalid configuration",
			Error:  err,
		}
	}

	return doctorCheck{
		Name:   "Configuration",
		Status: "✓",
		Detail: fmt.Sprintf("%d folders, precision=%d, log format=%s", len(cfg.Folders), cfg.Precision, cfg.LogFormat),
	}
}

// checkFolder reports on a folder without creating it.
func checkFolder(path string) doctorCheck {
	check := doctorCheck{Name: "Folder " + path, Detail: path}

	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		check.Status = "✓"
	case err == nil:
		check.Status = "✗"
		check.Detail = "Exists but is not a directory"
		check.Error = &fs.PathError{Op: "doctor", Path: path, Err: errors.New("not a directory")}
	case errors.Is(err, fs.ErrNotExist):
		check.Status = "⊘"
		check.Detail = "Missing, will be created"
	default:
		check.Status = "✗"
		check.Detail = "Not accessible"
		check.Error = err
	}

	return check
}

func checkLogFile(path string) doctorCheck {
	check := doctorCheck{Name: "Log File", Detail: path}

	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		check.Status = "✗"
		check.Detail = "Path is a directory"
		check.Error = fmt.Errorf("log file %s is a directory", path)
	case err == nil:
		check.Status = "✓"
		check.Detail = path + " (will be truncated)"
	case errors.Is(err, fs.ErrNotExist):
		check.Status = "✓"
	default:
		check.Status = "✗"
		check.Error = err
	}

	return check
}

func printDoctorReport(cmd *cobra.Command, checks []doctorCheck) {
	fmt.Fprintln(cmd.OutOrStdout(), "Running environment diagnostics...")

	for _, check := range checks {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %-30s %s\n", check.Status, check.Name+":", check.Detail)
		if check.Error != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "   Error: %v\n", check.Error)
		}
	}
}
