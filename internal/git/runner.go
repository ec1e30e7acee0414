// Package git wraps the git command-line interface and go-git for
// repository state queries. All mutating operations shell out to git;
// go-git is used for read-only queries only.
package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	churnerrors "gitchurn.dev/gitchurn/internal/errors"
	"gitchurn.dev/gitchurn/internal/output"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// CommandRunner executes git commands in a working directory and echoes
// their captured output through an injected Printer.
type CommandRunner struct {
	workingDir string
	printer    *output.Printer
}

// NewCommandRunner creates a new CommandRunner. A nil printer disables echoing.
func NewCommandRunner(workingDir string, printer *output.Printer) *CommandRunner {
	return &CommandRunner{workingDir: workingDir, printer: printer}
}

// WorkingDir returns the runner's working directory.
func (r *CommandRunner) WorkingDir() string {
	return r.workingDir
}

// Run executes a git command, echoes its output, and returns trimmed stdout.
// A nonzero exit becomes a *errors.CommandError.
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	stdout, stderr, code, err := r.capture(ctx, args...)
	if r.printer != nil {
		r.printer.Echo(output.StdoutRole, stdout)
		r.printer.Echo(output.StderrRole, stderr)
	}
	if err != nil {
		return "", churnerrors.NewCommandError("git", args, stdout, stderr, code, err)
	}
	return strings.TrimSpace(stdout), nil
}

// RunRaw executes a git command like Run but returns stdout without
// trimming. Needed where leading whitespace is significant, e.g. porcelain
// status output.
func (r *CommandRunner) RunRaw(ctx context.Context, args ...string) (string, error) {
	stdout, stderr, code, err := r.capture(ctx, args...)
	if r.printer != nil {
		r.printer.Echo(output.StdoutRole, stdout)
		r.printer.Echo(output.StderrRole, stderr)
	}
	if err != nil {
		return "", churnerrors.NewCommandError("git", args, stdout, stderr, code, err)
	}
	return stdout, nil
}

// RunLines executes a git command and returns its output as lines.
func (r *CommandRunner) RunLines(ctx context.Context, args ...string) ([]string, error) {
	out, err := r.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return []string{}, nil
	}
	return strings.Split(out, "\n"), nil
}

// Probe executes a git command in non-throwing mode: a nonzero exit is
// reported through the exit code, not an error. Used only to interrogate
// state, never to perform an action, and its output is not echoed.
func (r *CommandRunner) Probe(ctx context.Context, args ...string) (string, int, error) {
	stdout, _, code, err := r.capture(ctx, args...)
	if err != nil {
		// Only a real nonzero exit is meaningful probe state; a spawn
		// failure or a command killed by the context is still an error.
		if code == 0 || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return "", 0, churnerrors.NewCommandError("git", args, "", "", code, err)
		}
	}
	return strings.TrimSpace(stdout), code, nil
}

func (r *CommandRunner) capture(ctx context.Context, args ...string) (string, string, int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		if ctx.Err() != nil {
			err = ctx.Err()
		}
	}
	return stdout.String(), stderr.String(), code, err
}
