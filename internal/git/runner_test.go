package git_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	churnerrors "gitchurn.dev/gitchurn/internal/errors"
	"gitchurn.dev/gitchurn/internal/git"
	"gitchurn.dev/gitchurn/testhelpers"
)

func TestRunnerRun(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CommitFile("a.txt", "a\n", "first")
	})
	runner := git.NewCommandRunner(scene.Dir, nil)

	out, err := runner.Run(context.Background(), "rev-parse", "--abbrev-ref", "HEAD")
	require.NoError(t, err)
	require.Equal(t, "main", out)
}

func TestRunnerRunPropagatesCommandError(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)
	runner := git.NewCommandRunner(scene.Dir, nil)

	// No commits yet: HEAD cannot be resolved.
	_, err := runner.Run(context.Background(), "rev-parse", "HEAD")
	require.Error(t, err)

	var cmdErr *churnerrors.CommandError
	require.ErrorAs(t, err, &cmdErr)
	require.NotZero(t, cmdErr.ExitCode)
	require.Contains(t, cmdErr.CommandLine(), "rev-parse")
}

func TestRunnerProbeDoesNotPropagateFailure(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CommitFile("a.txt", "a\n", "first")
	})
	runner := git.NewCommandRunner(scene.Dir, nil)

	ctx := context.Background()
	_, code, err := runner.Probe(ctx, "rev-parse", "--verify", "--quiet", "refs/heads/missing")
	require.NoError(t, err)
	require.NotZero(t, code)

	out, code, err := runner.Probe(ctx, "rev-parse", "--verify", "--quiet", "refs/heads/main")
	require.NoError(t, err)
	require.Zero(t, code)
	require.NotEmpty(t, out)
}

func TestRunnerProbeFailsWhenContextExpires(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CommitFile("a.txt", "a\n", "first")
	})
	runner := git.NewCommandRunner(scene.Dir, nil)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	// An expired context must surface as an error, never as "not found".
	_, _, err := runner.Probe(ctx, "rev-parse", "--verify", "--quiet", "refs/heads/main")
	require.Error(t, err)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunnerRunLines(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		if err := s.Repo.CommitFile("a.txt", "a\n", "first"); err != nil {
			return err
		}
		return s.Repo.CommitFile("b.txt", "b\n", "second")
	})
	runner := git.NewCommandRunner(scene.Dir, nil)

	lines, err := runner.RunLines(context.Background(), "ls-files")
	require.NoError(t, err)
	require.Equal(t, []string{"a.txt", "b.txt"}, lines)
}
