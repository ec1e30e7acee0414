package git

import (
	"context"
	"fmt"
)

// CheckoutBranch checks out an existing branch.
func (r *Repository) CheckoutBranch(ctx context.Context, name string) error {
	_, err := r.runner.Run(ctx, "checkout", name)
	if err != nil {
		return fmt.Errorf("failed to checkout %s: %w", name, err)
	}
	return nil
}

// CreateAndCheckoutBranch creates a new branch from the current head and
// checks it out.
func (r *Repository) CreateAndCheckoutBranch(ctx context.Context, name string) error {
	_, err := r.runner.Run(ctx, "checkout", "-b", name)
	if err != nil {
		return fmt.Errorf("failed to create branch %s: %w", name, err)
	}
	return nil
}

// DeleteBranches force-deletes the given local branches.
func (r *Repository) DeleteBranches(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}
	args := append([]string{"branch", "-D"}, names...)
	_, err := r.runner.Run(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to delete branches %v: %w", names, err)
	}
	return nil
}

// Reset resets the current branch to the given revision. Without hard the
// reset uses git's default mixed mode; hard also discards the working tree.
func (r *Repository) Reset(ctx context.Context, revision string, hard bool) error {
	args := []string{"reset"}
	if hard {
		args = append(args, "--hard")
	}
	args = append(args, revision)
	_, err := r.runner.Run(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to reset to %s: %w", revision, err)
	}
	return nil
}

// CleanUntracked removes all untracked files and directories under the
// repository root, except the harness's own config and log files.
// Destructive and irreversible.
func (r *Repository) CleanUntracked(ctx context.Context) error {
	_, err := r.runner.Run(ctx, "clean", "-fd", "-e", ".gitchurn.yaml", "-e", ".gitchurn*.log*")
	if err != nil {
		return fmt.Errorf("failed to clean untracked files: %w", err)
	}
	return nil
}

// StageAll stages all changes, including untracked files, under the given root.
func (r *Repository) StageAll(ctx context.Context, under string) error {
	_, err := r.runner.Run(ctx, "add", "-A", "--", under)
	if err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	return nil
}

// Commit creates a commit with the given message.
func (r *Repository) Commit(ctx context.Context, message string) error {
	_, err := r.runner.Run(ctx, "commit", "-m", message)
	return err
}
