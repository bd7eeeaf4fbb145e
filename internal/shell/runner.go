package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// RunOptions controls where command output goes.
type RunOptions struct {
	// LogFile receives stdout and stderr when set. Existing content is truncated.
	LogFile string
}

// Executor is the subset of Runner used by callers that want a test double.
type Executor interface {
	EnsureBinary(name string) error
	Run(ctx context.Context, c Command, opts RunOptions) (int, error)
	Stream(ctx context.Context, c Command, stdout, stderr io.Writer) (int, error)
}

// Runner executes commands synchronously on the local host.
type Runner struct {
	// Logger receives a debug line per invocation. Nil disables logging.
	Logger logrus.FieldLogger
}

// NewRunner returns a runner that logs invocations to logger.
func NewRunner(logger logrus.FieldLogger) *Runner {
	return &Runner{Logger: logger}
}

// EnsureBinary verifies that name is discoverable on PATH.
func (r *Runner) EnsureBinary(name string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return nil
}

// Run executes c and blocks until it exits. It returns the exit code, which
// is 0 whenever err is nil.
func (r *Runner) Run(ctx context.Context, c Command, opts RunOptions) (int, error) {
	var stdout, stderr bytes.Buffer
	if opts.LogFile == "" {
		return r.execute(ctx, c, &stdout, &stderr, func(code int, signal string) error {
			if signal != "" {
				return &SignalError{Command: c.String(), Signal: signal, Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
			}
			return &ExitError{Command: c.String(), Code: code, Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
		})
	}

	out, err := os.OpenFile(opts.LogFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return -1, fmt.Errorf("open log file: %w", err)
	}
	defer out.Close()

	return r.execute(ctx, c, out, out, func(code int, signal string) error {
		if signal != "" {
			return &SignalError{Command: c.String(), Signal: signal, LogFile: opts.LogFile}
		}
		return &ExitError{Command: c.String(), Code: code, LogFile: opts.LogFile}
	})
}

// Stream runs c with stdout and stderr attached to the given writers. Output
// is not captured, so an *ExitError carries no stdout or stderr.
func (r *Runner) Stream(ctx context.Context, c Command, stdout, stderr io.Writer) (int, error) {
	return r.execute(ctx, c, stdout, stderr, func(code int, signal string) error {
		if signal != "" {
			return &SignalError{Command: c.String(), Signal: signal}
		}
		return &ExitError{Command: c.String(), Code: code}
	})
}

// Call runs script through the platform shell. Output goes to logFile when
// it is not empty and is captured for the error message otherwise.
func Call(ctx context.Context, script, logFile string) (int, error) {
	return (&Runner{}).Run(ctx, ShellCommand(script), RunOptions{LogFile: logFile})
}

func (r *Runner) execute(ctx context.Context, c Command, stdout, stderr io.Writer, failed func(code int, signal string) error) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// Command and arguments come from the caller; no shell is involved unless
	// the caller asked for one through ShellCommand.
	cmd := exec.CommandContext(ctx, c.Name, c.Args...) // #nosec G204
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if r != nil && r.Logger != nil {
		r.Logger.WithField("command", c.String()).Debug("calling command")
	}

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code == -1 {
			return code, failed(code, strings.TrimPrefix(exitErr.String(), "signal: "))
		}
		return code, failed(code, "")
	}

	if errors.Is(err, exec.ErrNotFound) || (c.Dir == "" && errors.Is(err, os.ErrNotExist)) {
		return 127, &StartError{Command: c.String(), Err: fmt.Errorf("%w: %v", ErrNotFound, err)}
	}

	return -1, &StartError{Command: c.String(), Err: err}
}
