// Package engine implements the randomized mutation engine and the
// branch/commit lifecycle orchestrator: it decides what change to make to
// the working tree, expresses it as a textual transformation, and reconciles
// branch state against the baseline revision.
package engine

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	churnerrors "gitchurn.dev/gitchurn/internal/errors"
	"gitchurn.dev/gitchurn/internal/git"
	"gitchurn.dev/gitchurn/internal/output"
)

// DefaultMaxDepth is the default maximum directory depth for created files.
const DefaultMaxDepth = 2

// maxContentWords bounds the number of words written into a created file.
const maxContentWords = 3

// Engine is the single logical actor driving randomized working-tree
// evolution. Synchronous and single-threaded: each operation issues one
// external command at a time and blocks until it completes.
type Engine struct {
	repo     *git.Repository
	words    WordSource
	rng      *rand.Rand
	printer  *output.Printer
	maxDepth int
	opCount  int
}

// Options configures New.
type Options struct {
	// Seed makes the run reproducible; 0 draws a random seed.
	Seed uint64
	// MaxDepth is the maximum directory depth for created files.
	// Defaults to DefaultMaxDepth.
	MaxDepth int
	// Words overrides the default word source; mainly for tests.
	Words WordSource
	// Printer reports no-op notices; nil disables them.
	Printer *output.Printer
}

// New creates an Engine over the given repository.
func New(repo *git.Repository, opts Options) *Engine {
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	words := opts.Words
	if words == nil {
		words = NewWordSource(seed)
	}
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Engine{
		repo:     repo,
		words:    words,
		rng:      rand.New(rand.NewPCG(seed, seed)),
		printer:  opts.Printer,
		maxDepth: maxDepth,
	}
}

// nextOp advances the human-readable operation counter used in log lines.
func (e *Engine) nextOp(name string) {
	e.opCount++
	slog.Info("running operation", "n", e.opCount, "op", name)
}

// DecideOperation performs exactly one mutation: a create when no tracked
// files exist, otherwise uniformly a create or a modify.
func (e *Engine) DecideOperation(ctx context.Context) error {
	tracked, err := e.repo.TrackedFiles(ctx, e.repo.SourceRoot())
	if err != nil {
		return err
	}
	if len(tracked) == 0 || e.rng.IntN(2) == 0 {
		_, err := e.Create(ctx)
		return err
	}
	return e.Modify(ctx, ModifyRandom)
}

// Create writes a new file at a randomized nested path under the source
// root: a random depth in [0, maxDepth] of word-named directories, a word
// file name, and one to three words joined by newlines as content. Returns
// the created path.
func (e *Engine) Create(ctx context.Context) (string, error) {
	e.nextOp("create")

	dir := e.repo.SourceRoot()
	depth := e.rng.IntN(e.maxDepth + 1)
	for range depth {
		dir = filepath.Join(dir, e.words.Word())
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, e.words.Word())

	wordCount := e.rng.IntN(maxContentWords) + 1
	content := make([]string, wordCount)
	for i := range content {
		content[i] = e.words.Word()
	}

	if err := os.WriteFile(path, []byte(strings.Join(content, "\n")+"\n"), 0o644); err != nil {
		return "", err
	}
	slog.Debug("created file", "path", path, "words", wordCount)
	return path, nil
}

// Modify applies one line transform to each of the first c tracked files,
// where c is uniform in [1, len(tracked)]. The file selection order is the
// order the state accessor returns; only the count is randomized. A
// ModifyRandom kind is resolved once, before the loop, to one of the four
// terminal kinds.
func (e *Engine) Modify(ctx context.Context, kind ModifyType) error {
	e.nextOp("modify")

	tracked, err := e.repo.TrackedFiles(ctx, e.repo.SourceRoot())
	if err != nil {
		return err
	}
	if len(tracked) == 0 {
		return churnerrors.NewNoFilesToModifyError(e.repo.SourceRoot())
	}

	if kind == ModifyRandom {
		kind = terminalModifyTypes[e.rng.IntN(len(terminalModifyTypes))]
	}

	count := e.rng.IntN(len(tracked)) + 1
	for _, rel := range tracked[:count] {
		path := filepath.Join(e.repo.Root(), rel)
		if err := e.modifyFile(path, kind); err != nil {
			return err
		}
	}
	slog.Debug("modified files", "count", count, "kind", kind.String())
	return nil
}

// modifyFile applies a single randomized line transform to one file.
func (e *Engine) modifyFile(path string, kind ModifyType) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")

	transform := LineTransform{
		Target:  lines[e.rng.IntN(len(lines))],
		Content: e.words.Word(),
		Kind:    kind,
	}
	lines = transform.Apply(lines)

	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
}
