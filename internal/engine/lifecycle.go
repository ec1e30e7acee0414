package engine

import (
	"context"
	"fmt"
	"log/slog"
)

// CreateFeatureBranch creates and checks out a new dev-prefixed branch from
// the current head. No precondition checks: the attempt is always made.
// Returns the branch name.
func (e *Engine) CreateFeatureBranch(ctx context.Context) (string, error) {
	e.nextOp("branch")

	name := e.repo.DevPrefix() + e.words.Word()
	if err := e.repo.CreateAndCheckoutBranch(ctx, name); err != nil {
		return "", err
	}
	return name, nil
}

// ReturnToBaseline checks out the baseline branch. Identity when already there.
func (e *Engine) ReturnToBaseline(ctx context.Context) error {
	e.nextOp("branch --home")
	return e.repo.CheckoutBranch(ctx, e.repo.BaselineBranch())
}

// ResetToBaseline checks out the baseline branch and resets it to the
// baseline revision. When head already equals the baseline revision no reset
// command is issued. Without hard, git's default mixed reset mode applies.
func (e *Engine) ResetToBaseline(ctx context.Context, hard bool) error {
	e.nextOp("reset")

	exists, err := e.repo.BranchExists(ctx, e.repo.BaselineBranch())
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("baseline branch %s does not exist", e.repo.BaselineBranch())
	}

	if err := e.repo.CheckoutBranch(ctx, e.repo.BaselineBranch()); err != nil {
		return err
	}

	current, err := e.repo.CurrentRevision(ctx)
	if err != nil {
		return err
	}
	baseline, err := e.repo.BaselineRevision(ctx)
	if err != nil {
		return err
	}

	if current == baseline {
		slog.Info("already at baseline revision", "revision", baseline)
		if e.printer != nil {
			e.printer.Notice("%s is already at %s, nothing to reset", e.repo.BaselineBranch(), baseline)
		}
		return nil
	}

	return e.repo.Reset(ctx, baseline, hard)
}

// Cleanup force-deletes all dev-prefixed branches and removes untracked
// files and directories. Destructive and irreversible; only performed when
// hard is set.
func (e *Engine) Cleanup(ctx context.Context, hard bool) error {
	if !hard {
		return nil
	}
	e.nextOp("cleanup")

	devBranches, err := e.repo.Branches(e.repo.DevPrefix())
	if err != nil {
		return err
	}
	if len(devBranches) > 0 {
		if err := e.repo.DeleteBranches(ctx, devBranches); err != nil {
			return err
		}
	}

	return e.repo.CleanUntracked(ctx)
}
