package testhelpers

import (
	"testing"
)

// Scene is a test scene holding a temporary git repository.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup seeds a scene with repository content.
type SceneSetup func(*Scene) error

// NewScene creates a temporary git repository and runs the optional setup.
// Cleanup is handled by t.TempDir.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	dir := t.TempDir()
	repo, err := NewGitRepo(dir)
	if err != nil {
		t.Fatalf("failed to create git repo: %v", err)
	}

	scene := &Scene{Dir: dir, Repo: repo}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("scene setup failed: %v", err)
		}
	}

	return scene
}
