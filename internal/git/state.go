package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	gogit "github.com/go-git/go-git/v5"

	churnerrors "gitchurn.dev/gitchurn/internal/errors"
	"gitchurn.dev/gitchurn/internal/output"
)

// Repository is the single per-process handle on the repository under churn.
// It is immutable after construction; every state query re-reads git, which
// is the sole source of truth. Nothing is cached between operations.
type Repository struct {
	root           string
	baselineBranch string
	devPrefix      string
	sourceRoot     string
	controlPath    string
	runner         *CommandRunner
	repo           *gogit.Repository
}

// Options configures Open.
type Options struct {
	// Dir is any directory inside the repository. Defaults to the working directory.
	Dir string
	// BaselineBranch is the long-lived branch feature branches are created
	// from and reset back to. Defaults to "main".
	BaselineBranch string
	// DevPrefix classifies feature branches. Defaults to "dev/".
	DevPrefix string
	// SourceRoot, relative to the repository root, is the path under which
	// mutations occur. Defaults to the repository root itself.
	SourceRoot string
	// ControlPath is the path whose history determines the baseline
	// revision. Defaults to the repository root when empty.
	ControlPath string
	// Printer echoes output of invoked git commands; nil disables echoing.
	Printer *output.Printer
}

// Open locates the repository containing opts.Dir and constructs the
// process-wide Repository handle.
func Open(opts Options) (*Repository, error) {
	dir := opts.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	root, err := FindRepoRoot(dir)
	if err != nil {
		return nil, err
	}

	repo, err := openGoGit(root)
	if err != nil {
		return nil, err
	}

	baseline := opts.BaselineBranch
	if baseline == "" {
		baseline = "main"
	}
	devPrefix := opts.DevPrefix
	if devPrefix == "" {
		devPrefix = "dev/"
	}
	sourceRoot := root
	if opts.SourceRoot != "" && opts.SourceRoot != "." {
		sourceRoot = filepath.Join(root, opts.SourceRoot)
	}
	controlPath := opts.ControlPath
	if controlPath == "" {
		controlPath = root
	}

	return &Repository{
		root:           root,
		baselineBranch: baseline,
		devPrefix:      devPrefix,
		sourceRoot:     sourceRoot,
		controlPath:    controlPath,
		runner:         NewCommandRunner(root, opts.Printer),
		repo:           repo,
	}, nil
}

// Root returns the repository root directory.
func (r *Repository) Root() string { return r.root }

// BaselineBranch returns the configured baseline branch name.
func (r *Repository) BaselineBranch() string { return r.baselineBranch }

// DevPrefix returns the feature-branch name prefix.
func (r *Repository) DevPrefix() string { return r.devPrefix }

// SourceRoot returns the absolute path under which mutations occur.
func (r *Repository) SourceRoot() string { return r.sourceRoot }

// Runner returns the git command runner for this repository.
func (r *Repository) Runner() *CommandRunner { return r.runner }

// artifactExcludes hides the harness's own files from state queries, so a
// repo-local config file or log is never staged, committed or mutated.
var artifactExcludes = []string{
	":(glob,exclude)**/.gitchurn.yaml",
	":(glob,exclude)**/.gitchurn*.log*",
}

// Change is one (status, path) pair from a working-tree status query.
// Ephemeral: recomputed on every call, never persisted.
type Change struct {
	Status string
	Path   string
	Raw    string
}

// CurrentRevision returns the revision hash of the current head.
func (r *Repository) CurrentRevision(ctx context.Context) (string, error) {
	rev, err := r.runner.Run(ctx, "rev-parse", "HEAD")
	if err != nil {
		return "", churnerrors.NewQueryError("current revision", err)
	}
	return rev, nil
}

// BaselineRevision returns the hash of the most recent commit that touched
// the control path. This is the reset target. Note: this is deliberately the
// most recent qualifying commit, not any earlier one.
func (r *Repository) BaselineRevision(ctx context.Context) (string, error) {
	rev, err := r.runner.Run(ctx, "log", "-n", "1", "--pretty=format:%H", "--", r.controlPath)
	if err != nil {
		return "", churnerrors.NewQueryError("baseline revision", err)
	}
	if rev == "" {
		return "", churnerrors.NewQueryError("baseline revision",
			fmt.Errorf("no commit touches control path %s", r.controlPath))
	}
	return rev, nil
}

// TrackedFiles returns the paths known to git under the given root,
// repository-relative. Returns an empty list when under is not an existing
// directory. The list is queried fresh on every call.
func (r *Repository) TrackedFiles(ctx context.Context, under string) ([]string, error) {
	if !isDir(under) {
		return []string{}, nil
	}
	args := append([]string{"ls-files", "--", under}, artifactExcludes...)
	files, err := r.runner.RunLines(ctx, args...)
	if err != nil {
		return nil, churnerrors.NewQueryError("tracked files", err)
	}
	return files, nil
}

// PendingChanges returns the changed paths under the given root, staging
// them first when autoStage is set. Returns an empty list when under is not
// an existing directory.
func (r *Repository) PendingChanges(ctx context.Context, under string, autoStage bool) ([]Change, error) {
	if !isDir(under) {
		return []Change{}, nil
	}
	if autoStage {
		args := append([]string{"add", "-A", "--", under}, artifactExcludes...)
		if _, err := r.runner.Run(ctx, args...); err != nil {
			return nil, churnerrors.NewQueryError("pending changes", err)
		}
	}
	args := append([]string{"status", "--porcelain", "--", under}, artifactExcludes...)
	out, err := r.runner.RunRaw(ctx, args...)
	if err != nil {
		return nil, churnerrors.NewQueryError("pending changes", err)
	}
	return parsePorcelain(out), nil
}

// Branches returns local branch names starting with prefix; all local
// branches when prefix is empty.
func (r *Repository) Branches(prefix string) ([]string, error) {
	names, err := branchNames(r.repo, prefix)
	if err != nil {
		return nil, churnerrors.NewQueryError("branches", err)
	}
	return names, nil
}

// BranchExists probes whether a local branch exists, without propagating a
// command failure: a missing branch is state, not an error.
func (r *Repository) BranchExists(ctx context.Context, name string) (bool, error) {
	_, code, err := r.runner.Probe(ctx, "rev-parse", "--verify", "--quiet", "refs/heads/"+name)
	if err != nil {
		return false, err
	}
	return code == 0, nil
}

func parsePorcelain(out string) []Change {
	changes := []Change{}
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		status := line
		path := ""
		if len(line) > 3 {
			status = line[:2]
			path = porcelainPath(strings.TrimSpace(line[3:]))
		}
		changes = append(changes, Change{
			Status: strings.TrimSpace(status),
			Path:   path,
			Raw:    line,
		})
	}
	return changes
}

// porcelainPath extracts the effective path from a porcelain path field:
// renames ("old -> new") resolve to the destination, and C-style quoted
// paths are unquoted.
func porcelainPath(field string) string {
	if _, after, ok := strings.Cut(field, " -> "); ok {
		field = after
	}
	if strings.HasPrefix(field, `"`) {
		if unquoted, err := strconv.Unquote(field); err == nil {
			return unquoted
		}
	}
	return field
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
