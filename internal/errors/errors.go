// Package errors provides sentinel errors and custom error types for the gitchurn application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNoFilesToModify indicates that a modify mutation was requested
	// while the tracked-file set under the source root is empty
	ErrNoFilesToModify = errors.New("no files to modify")

	// ErrNotInRepository indicates that the working directory is not inside a git repository
	ErrNotInRepository = errors.New("not in a git repository")
)

// NoFilesToModifyError is returned when a modify mutation finds no tracked files
// under the source root.
type NoFilesToModifyError struct {
	Root string
}

func (e *NoFilesToModifyError) Error() string {
	return fmt.Sprintf("no tracked files to modify under %s", e.Root)
}

// Is returns true if the target error is ErrNoFilesToModify
func (e *NoFilesToModifyError) Is(target error) bool {
	return target == ErrNoFilesToModify
}

// NewNoFilesToModifyError creates a new NoFilesToModifyError
func NewNoFilesToModifyError(root string) *NoFilesToModifyError {
	return &NoFilesToModifyError{Root: root}
}

// CommandError represents an error from an external command execution.
// It carries the failing command text, its exit code and captured output.
type CommandError struct {
	Command  string
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed: %s", e.CommandLine())
	if e.ExitCode != 0 {
		msg += fmt.Sprintf(" (exit %d)", e.ExitCode)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

// CommandLine returns the full command text, as invoked.
func (e *CommandError) CommandLine() string {
	if len(e.Args) == 0 {
		return e.Command
	}
	return e.Command + " " + strings.Join(e.Args, " ")
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError
func NewCommandError(command string, args []string, stdout, stderr string, exitCode int, err error) *CommandError {
	return &CommandError{
		Command:  command,
		Args:     args,
		Stdout:   stdout,
		Stderr:   stderr,
		ExitCode: exitCode,
		Err:      err,
	}
}

// QueryError represents a failed repository state query.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("state query %s failed: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// NewQueryError creates a new QueryError
func NewQueryError(op string, err error) *QueryError {
	return &QueryError{Op: op, Err: err}
}

// CommitError represents a failed commit attempt, e.g. nothing staged even
// after a change was manufactured.
type CommitError struct {
	Message string
	Err     error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commit failed: %v", e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

// NewCommitError creates a new CommitError
func NewCommitError(message string, err error) *CommitError {
	return &CommitError{Message: message, Err: err}
}
