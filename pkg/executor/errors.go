package executor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrToolFailure matches every error returned for a failed external command,
// whether the binary is missing, exits non-zero or is killed by a deadline.
var ErrToolFailure = errors.New("external tool failure")

// ToolError describes a failed invocation.
type ToolError struct {
	Command  string
	ExitCode int // -1 when the process never exited normally
	Stderr   string
	Err      error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("command '%s' failed: %v", e.Command, e.Err)
	if e.Stderr != "" {
		msg += "\nstderr: " + e.Stderr
	}
	return msg
}

func (e *ToolError) Unwrap() error { return e.Err }

func (e *ToolError) Is(target error) bool { return target == ErrToolFailure }

// CommandLine renders name and args as a single shell-like line.
// Arguments containing whitespace or quotes are double-quoted.
func CommandLine(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	for _, a := range append([]string{name}, args...) {
		parts = append(parts, quote(a))
	}
	return strings.Join(parts, " ")
}

func quote(s string) string {
	if s == "" {
		return `""`
	}
	if !strings.ContainsAny(s, " \t\n\"'\\$`") {
		return s
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")
	return `"` + r.Replace(s) + `"`
}
