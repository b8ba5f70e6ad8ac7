// Package exec runs the external tools invoked after a project is generated.
package exec

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/arthur-debert/iacinit/pkg/logging"
	"github.com/rs/zerolog"
)

// ExitTimeout is the exit code reported when a command exceeds its timeout
const ExitTimeout = 124

// CmdResult holds the result of a command execution
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// RunOpts holds optional parameters for command execution
type RunOpts struct {
	Dir     string            // working directory
	Env     map[string]string // overlay on the inherited environment
	Timeout time.Duration     // zero means no timeout
}

// Runner runs external commands. A non-zero exit is reported through
// CmdResult.ExitCode, not as an error; errors are reserved for failures to
// run at all (binary missing, ctx canceled, io failure).
type Runner interface {
	Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error)
	LookPath(name string) (string, error)
}

// waitDelay bounds how long Run waits for pipes held open by descendants
// after the command itself was killed
const waitDelay = 500 * time.Millisecond

// OSRunner runs commands with os/exec
type OSRunner struct{}

// NewOSRunner creates a runner backed by os/exec
func NewOSRunner() *OSRunner {
	return &OSRunner{}
}

// logger is resolved per call so a runner built before logging.SetupLogger
// still writes to the configured sinks
func (r *OSRunner) logger() zerolog.Logger {
	return logging.GetLogger("exec")
}

// LookPath resolves name on PATH
func (r *OSRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes the command and captures stdout/stderr. On timeout or
// cancellation the whole process group is killed, so installers that fork
// cannot outlive the deadline.
func (r *OSRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error) {
	logger := r.logger()
	logging.LogCommand(logger, name, args)

	runCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, name, args...)
	killProcessGroup(cmd)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	if len(opts.Env) > 0 {
		cmd.Env = cmd.Environ()
		for k, v := range opts.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	start := time.Now()
	err := cmd.Run()

	result := CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	result.ExitCode, err = exitStatus(err, ctx, runCtx)
	switch {
	case err != nil:
		return result, err
	case result.ExitCode == ExitTimeout && opts.Timeout > 0 && runCtx.Err() != nil:
		logger.Warn().Str("command", name).Dur("timeout", opts.Timeout).Msg("Command timed out")
	case result.ExitCode != 0:
		logger.Debug().Str("command", name).Int("exitCode", result.ExitCode).Msg("Command exited non-zero")
	default:
		logger.Debug().Str("command", name).Dur("duration", result.Duration).Msg("Command finished")
	}
	return result, nil
}

// exitStatus classifies the outcome of cmd.Run. A command that exited 0 is
// a success even if a deadline fired right after. Otherwise the parent ctx
// wins over our own deadline, and an expired deadline reports ExitTimeout.
func exitStatus(err error, parent, run context.Context) (int, error) {
	if err == nil {
		return 0, nil
	}
	if parent.Err() != nil {
		return -1, parent.Err()
	}
	if errors.Is(run.Err(), context.DeadlineExceeded) {
		return ExitTimeout, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
