package sshfs

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// DefaultWaitDelay bounds how long Run waits for output pipes after the
// process exited. A daemonizing wrapper may leave a child holding stderr.
const DefaultWaitDelay = 3 * time.Second

// Result holds the captured output of a finished invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes invocations.
type Runner interface {
	Run(ctx context.Context, inv Invocation) (Result, error)
}

// ExecRunner runs invocations as child processes without a shell.
type ExecRunner struct {
	Logger *slog.Logger
	// WaitDelay overrides DefaultWaitDelay when positive.
	WaitDelay time.Duration
}

// NewExecRunner returns an ExecRunner logging to logger, or slog.Default when nil.
func NewExecRunner(logger *slog.Logger) *ExecRunner {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExecRunner{Logger: logger}
}

// Run starts the process, waits for it and returns its output. A non-zero
// exit status is returned as an error wrapping *exec.ExitError.
func (r *ExecRunner) Run(ctx context.Context, inv Invocation) (Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("running command", "cmd", inv.Redacted())

	cmd := exec.CommandContext(ctx, inv.Name, inv.Args...)
	cmd.WaitDelay = DefaultWaitDelay
	if r.WaitDelay > 0 {
		cmd.WaitDelay = r.WaitDelay
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if inv.Stdin != "" {
		cmd.Stdin = strings.NewReader(inv.Stdin)
	}

	err := cmd.Run()
	if errors.Is(err, exec.ErrWaitDelay) {
		// The process itself exited cleanly; only a leftover child kept the pipes open.
		logger.Debug("output pipes left open after exit", "cmd", inv.Name)
		err = nil
	}
	res := Result{
		Stdout:   stdout.String(),
		Stderr:   strings.TrimSpace(stderr.String()),
		ExitCode: cmd.ProcessState.ExitCode(),
	}
	if err != nil {
		logger.Debug("command failed", "cmd", inv.Name, "exit", res.ExitCode, "stderr", res.Stderr)
		if res.Stderr != "" {
			return res, fmt.Errorf("%s: %w: %s", inv.Name, err, res.Stderr)
		}
		return res, fmt.Errorf("%s: %w", inv.Name, err)
	}
	logger.Debug("command finished", "cmd", inv.Name)
	return res, nil
}
