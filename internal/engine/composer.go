package engine

import (
	"context"
	"fmt"
	"strings"

	churnerrors "gitchurn.dev/gitchurn/internal/errors"
)

// ComposeAndCommit stages pending changes under the source root and commits
// them with a message summarizing the changed paths. When nothing is
// pending, one mutation is manufactured first so there is always something
// to commit.
func (e *Engine) ComposeAndCommit(ctx context.Context) error {
	e.nextOp("commit")

	subject := e.words.Word()

	changes, err := e.repo.PendingChanges(ctx, e.repo.SourceRoot(), true)
	if err != nil {
		return err
	}
	if len(changes) == 0 {
		if err := e.DecideOperation(ctx); err != nil {
			return err
		}
		changes, err = e.repo.PendingChanges(ctx, e.repo.SourceRoot(), true)
		if err != nil {
			return err
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "'%s' commit message for:\n", subject)
	for _, change := range changes {
		fmt.Fprintf(&b, "  %s\n", change.Raw)
	}
	message := strings.TrimSuffix(b.String(), "\n")

	if err := e.repo.Commit(ctx, message); err != nil {
		return churnerrors.NewCommitError(message, err)
	}
	return nil
}
