package engine_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gitchurn.dev/gitchurn/internal/engine"
	churnerrors "gitchurn.dev/gitchurn/internal/errors"
	"gitchurn.dev/gitchurn/internal/git"
	"gitchurn.dev/gitchurn/testhelpers"
)

// sequenceWords is a deterministic WordSource cycling through a fixed list.
type sequenceWords struct {
	words []string
	next  int
}

func (s *sequenceWords) Word() string {
	w := s.words[s.next%len(s.words)]
	s.next++
	return w
}

func openRepo(t *testing.T, scene *testhelpers.Scene) *git.Repository {
	t.Helper()
	repo, err := git.Open(git.Options{Dir: scene.Dir})
	require.NoError(t, err)
	return repo
}

func newEngine(t *testing.T, repo *git.Repository, words ...string) *engine.Engine {
	t.Helper()
	opts := engine.Options{Seed: 42}
	if len(words) > 0 {
		opts.Words = &sequenceWords{words: words}
	}
	return engine.New(repo, opts)
}

func TestModifyFailsWithNoTrackedFiles(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)
	repo := openRepo(t, scene)
	eng := newEngine(t, repo)

	err := eng.Modify(context.Background(), engine.ModifyRandom)
	require.Error(t, err)
	require.ErrorIs(t, err, churnerrors.ErrNoFilesToModify)

	var nfErr *churnerrors.NoFilesToModifyError
	require.ErrorAs(t, err, &nfErr)

	// No filesystem writes happened: the tree holds nothing but .git.
	entries, err := os.ReadDir(scene.Dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, ".git", entries[0].Name())
}

func TestModifyTouchesBetweenOneAndAllTrackedFiles(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		for _, name := range []string{"aa.txt", "bb.txt", "cc.txt", "dd.txt"} {
			if err := s.Repo.WriteFile(name, "one\ntwo\nthree\n"); err != nil {
				return err
			}
		}
		if err := s.Repo.RunGitCommand("add", "-A"); err != nil {
			return err
		}
		return s.Repo.RunGitCommand("commit", "-m", "seed files")
	})
	repo := openRepo(t, scene)
	eng := newEngine(t, repo)

	err := eng.Modify(context.Background(), engine.ModifyAppend)
	require.NoError(t, err)

	tracked, err := repo.TrackedFiles(context.Background(), repo.SourceRoot())
	require.NoError(t, err)

	out, err := scene.Repo.RunGitCommandAndGetOutput("diff", "--name-only")
	require.NoError(t, err)
	require.NotEmpty(t, out, "modify must touch at least one file")

	changed := map[string]bool{}
	count := 0
	for _, p := range splitLines(out) {
		changed[p] = true
		count++
	}
	require.LessOrEqual(t, count, len(tracked))

	// Selection comes from the front of the tracked list: the changed set is
	// exactly the first count entries.
	for _, p := range tracked[:count] {
		require.True(t, changed[p], "expected %s to be modified", p)
	}
}

func TestModifyAppendsLine(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		if err := s.Repo.WriteFile("only.txt", "foo\nbar\nbaz\n"); err != nil {
			return err
		}
		if err := s.Repo.RunGitCommand("add", "-A"); err != nil {
			return err
		}
		return s.Repo.RunGitCommand("commit", "-m", "seed")
	})
	repo := openRepo(t, scene)
	eng := newEngine(t, repo, "qux")

	err := eng.Modify(context.Background(), engine.ModifyAppend)
	require.NoError(t, err)

	content, err := scene.Repo.ReadFile("only.txt")
	require.NoError(t, err)
	lines := splitLines(content)
	require.Len(t, lines, 4)
	require.Contains(t, lines, "qux")
}

func TestCreateRoundTrip(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)
	repo := openRepo(t, scene)
	eng := newEngine(t, repo, "alpha", "beta", "gamma", "delta")

	path, err := eng.Create(context.Background())
	require.NoError(t, err)
	require.FileExists(t, path)

	rel, err := filepath.Rel(repo.Root(), path)
	require.NoError(t, err)

	changes, err := repo.PendingChanges(context.Background(), repo.SourceRoot(), true)
	require.NoError(t, err)
	require.NotEmpty(t, changes)
	paths := make([]string, 0, len(changes))
	for _, c := range changes {
		paths = append(paths, c.Path)
	}
	require.Contains(t, paths, filepath.ToSlash(rel))

	// Once staged, the created path shows up as tracked.
	tracked, err := repo.TrackedFiles(context.Background(), repo.SourceRoot())
	require.NoError(t, err)
	require.Contains(t, tracked, filepath.ToSlash(rel))
}

func TestCreateContentIsNewlineJoinedWords(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)
	repo := openRepo(t, scene)
	eng := newEngine(t, repo, "word")

	path, err := eng.Create(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := splitLines(string(data))
	require.GreaterOrEqual(t, len(lines), 1)
	require.LessOrEqual(t, len(lines), 3)
	for _, line := range lines {
		require.Equal(t, "word", line)
	}
}

func TestDecideOperationCreatesWhenNothingTracked(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)
	repo := openRepo(t, scene)
	eng := newEngine(t, repo)

	err := eng.DecideOperation(context.Background())
	require.NoError(t, err)

	changes, err := repo.PendingChanges(context.Background(), repo.SourceRoot(), true)
	require.NoError(t, err)
	require.NotEmpty(t, changes, "decide must fall back to create on an empty tracked set")
}

func TestSeededRunsAreReproducible(t *testing.T) {
	run := func() string {
		scene := testhelpers.NewScene(t, nil)
		repo := openRepo(t, scene)
		eng := engine.New(repo, engine.Options{Seed: 7})

		path, err := eng.Create(context.Background())
		require.NoError(t, err)

		rel, err := filepath.Rel(repo.Root(), path)
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		return rel + "\n" + string(data)
	}

	require.Equal(t, run(), run())
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
