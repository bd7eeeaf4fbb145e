package shell

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShellCommand(t *testing.T) {
	c := ShellCommand("exit 7")
	if runtime.GOOS == "windows" {
		assert.Equal(t, Command{Name: "cmd", Args: []string{"/C", "exit 7"}}, c)
		return
	}
	assert.Equal(t, Command{Name: "sh", Args: []string{"-c", "exit 7"}}, c)
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		name     string
		cmd      Command
		expected string
	}{
		{name: "bare", cmd: Command{Name: "true"}, expected: "true"},
		{name: "plain args", cmd: Command{Name: "mg5_aMC", Args: []string{"-f", "proc_card.dat"}}, expected: "mg5_aMC -f proc_card.dat"},
		{name: "quoted args", cmd: Command{Name: "sh", Args: []string{"-c", "exit 7"}}, expected: "sh -c 'exit 7'"},
		{name: "empty arg", cmd: Command{Name: "echo", Args: []string{""}}, expected: "echo ''"},
		{name: "single quote", cmd: Command{Name: "echo", Args: []string{"it's"}}, expected: `echo 'it'"'"'s'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cmd.String())
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 3, ExitCode(fmt.Errorf("wrapped: %w", &ExitError{Code: 3})))
	assert.Equal(t, 127, ExitCode(&StartError{Err: ErrNotFound}))
	assert.Equal(t, 1, ExitCode(errors.New("other")))
}

func TestExitErrorMessage(t *testing.T) {
	withLog := &ExitError{Command: "run.sh", Code: 5, LogFile: "logs/run.log"}
	assert.Equal(t, "calling command run.sh returned exit code 5. Output in file logs/run.log.", withLog.Error())

	captured := &ExitError{Command: "run.sh", Code: 5, Stdout: []byte("out\n"), Stderr: []byte("err\n")}
	assert.Equal(t, "calling command run.sh returned exit code 5.\n\nStd output:\n\nout\nError output:\n\nerr\n", captured.Error())
}

func TestSignalErrorMessage(t *testing.T) {
	withLog := &SignalError{Command: "run.sh", Signal: "killed", LogFile: "logs/run.log"}
	assert.Equal(t, "command run.sh terminated by signal killed. Output in file logs/run.log.", withLog.Error())

	captured := &SignalError{Command: "run.sh", Signal: "killed", Stdout: []byte("out\n"), Stderr: []byte("err\n")}
	assert.Equal(t, "command run.sh terminated by signal killed.\n\nStd output:\n\nout\nError output:\n\nerr\n", captured.Error())
}
