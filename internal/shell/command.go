package shell

import (
	"runtime"
	"strings"
)

// Command is a single program invocation. Args are passed as-is, without
// shell interpretation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the caller's.
	Dir string
	// Env is appended to the current environment when non-empty.
	Env []string
}

// ShellCommand wraps script for execution by the platform shell.
func ShellCommand(script string) Command {
	if runtime.GOOS == "windows" {
		return Command{Name: "cmd", Args: []string{"/C", script}}
	}
	return Command{Name: "sh", Args: []string{"-c", script}}
}

// String renders the command for messages. Arguments containing whitespace
// or quotes are single-quoted.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}

	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, arg := range c.Args {
		parts = append(parts, quote(arg))
	}
	return strings.Join(parts, " ")
}

func quote(value string) string {
	if value == "" {
		return "''"
	}
	if !strings.ContainsAny(value, " \t\n'\"\\$`;&|<>*?") {
		return value
	}
	return "'" + strings.ReplaceAll(value, "'", `'"'"'`) + "'"
}
