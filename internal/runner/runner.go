// internal/runner/runner.go
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/TheItcor/rawIDE/internal/config"
	"github.com/TheItcor/rawIDE/internal/logger"
)

// Result holds the outcome of one external command invocation. Timeouts and
// missing binaries are folded into the result (exit code -1 with the reason
// in Stderr), so callers display every outcome the same way.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Executor runs external commands. The session core depends on this
// interface rather than os/exec so command handling can be tested without
// spawning processes.
type Executor interface {
	Execute(argv []string, workDir string, timeout time.Duration) Result
}

// CommandRunner executes commands through os/exec, blocking until the
// process exits or the timeout elapses. A timed-out process is killed and
// reported as failed; there is no retry.
type CommandRunner struct{}

// New creates a CommandRunner.
func New() *CommandRunner {
	return &CommandRunner{}
}

// Execute runs argv in workDir and captures stdout and stderr. A
// non-positive timeout falls back to config.DefaultExecTimeout.
func (r *CommandRunner) Execute(argv []string, workDir string, timeout time.Duration) Result {
	if len(argv) == 0 {
		return Result{ExitCode: -1, Stderr: "empty command"}
	}
	if timeout <= 0 {
		timeout = config.DefaultExecTimeout
	}

	logger.Debugf("Runner: executing %v (cwd=%q, timeout=%s)", argv, workDir, timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return Result{ExitCode: -1, Stderr: fmt.Sprintf("Timeout after %d seconds", int(timeout.Seconds()))}
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{ExitCode: exitErr.ExitCode(), Stdout: stdout.String(), Stderr: stderr.String()}
		}
		if errors.Is(err, exec.ErrNotFound) {
			return Result{ExitCode: -1, Stderr: fmt.Sprintf("Command not found: %s", argv[0])}
		}
		return Result{ExitCode: -1, Stdout: stdout.String(), Stderr: err.Error()}
	}
	return Result{ExitCode: 0, Stdout: stdout.String(), Stderr: stderr.String()}
}

// FormatOutput renders a result the way the output popup displays it.
func FormatOutput(res Result) string {
	return fmt.Sprintf("--- stdout ---\n%s\n--- stderr ---\n%s\n(returncode=%d)\n", res.Stdout, res.Stderr, res.ExitCode)
}

// FormatCompileFailure renders a failed compile phase, marked so it cannot
// be mistaken for program output.
func FormatCompileFailure(res Result) string {
	return "--- compile failed ---\n" + FormatOutput(res)
}

var _ Executor = (*CommandRunner)(nil)
