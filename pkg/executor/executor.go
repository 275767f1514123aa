package executor

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// defaultWaitDelay bounds how long Run waits for stdout/stderr to close
// after the process is killed. Children that inherit the pipes would
// otherwise keep Run blocked past the timeout.
const defaultWaitDelay = 5 * time.Second

type implExecutor struct {
	timeout   time.Duration
	waitDelay time.Duration
}

// Option configures an Executor.
type Option func(*implExecutor)

// WithTimeout bounds every invocation. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(e *implExecutor) {
		e.timeout = d
	}
}

// WithWaitDelay sets how long to wait for the output pipes to close once
// the process has been killed.
func WithWaitDelay(d time.Duration) Option {
	return func(e *implExecutor) {
		e.waitDelay = d
	}
}

// New creates a new Executor instance
func New(opts ...Option) Executor {
	e := &implExecutor{waitDelay: defaultWaitDelay}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs an external command with the given arguments
func (e *implExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return e.run(ctx, "", name, args...)
}

// ExecuteInDir runs an external command in a specific working directory
func (e *implExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	return e.run(ctx, dir, name, args...)
}

func (e *implExecutor) run(ctx context.Context, dir string, name string, args ...string) (string, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.WaitDelay = e.waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// A killed process reports "signal: killed"; the context error says why.
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = errors.Join(err, ctxErr)
		}
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", &ToolError{
			Command:  CommandLine(name, args...),
			ExitCode: exitCode,
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}
	}

	return stdout.String(), nil
}
