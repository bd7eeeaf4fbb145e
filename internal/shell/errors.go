package shell

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that the executable could not be located.
var ErrNotFound = errors.New("executable not found")

// ExitError is returned when a command exits with a nonzero code.
type ExitError struct {
	Command string
	Code    int
	// LogFile is set when output was redirected to a file.
	LogFile string
	Stdout  []byte
	Stderr  []byte
}

func (e *ExitError) Error() string {
	if e.LogFile != "" {
		return fmt.Sprintf("calling command %s returned exit code %d. Output in file %s.", e.Command, e.Code, e.LogFile)
	}
	return fmt.Sprintf("calling command %s returned exit code %d.\n\nStd output:\n\n%sError output:\n\n%s",
		e.Command, e.Code, e.Stdout, e.Stderr)
}

// StartError is returned when the process could not be started at all.
type StartError struct {
	Command string
	Err     error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("starting command %s: %v", e.Command, e.Err)
}

func (e *StartError) Unwrap() error {
	return e.Err
}

// SignalError is returned when the process was killed by a signal.
type SignalError struct {
	Command string
	Signal  string
	LogFile string
	Stdout  []byte
	Stderr  []byte
}

func (e *SignalError) Error() string {
	if e.LogFile != "" {
		return fmt.Sprintf("command %s terminated by signal %s. Output in file %s.", e.Command, e.Signal, e.LogFile)
	}
	return fmt.Sprintf("command %s terminated by signal %s.\n\nStd output:\n\n%sError output:\n\n%s",
		e.Command, e.Signal, e.Stdout, e.Stderr)
}

// ExitCode maps an error returned by Run to a process exit status.
// It returns 0 for nil, 127 for a missing executable and 1 for other failures.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	if errors.Is(err, ErrNotFound) {
		return 127
	}

	return 1
}
