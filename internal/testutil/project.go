// Package testutil provides helpers for creating temporary project trees
// for end-to-end testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
)

// TestProject is a builder for a temporary project directory with controlled
// file content for e2e testing.
type TestProject struct {
	t    testing.TB
	root string
}

// NewTestProject creates a project rooted in a fresh temporary directory.
func NewTestProject(t testing.TB) *TestProject {
	t.Helper()
	return &TestProject{t: t, root: t.TempDir()}
}

// Root returns the project root directory.
func (p *TestProject) Root() string {
	return p.root
}

// WriteFile creates a file under the project root, creating intermediate
// directories as needed, and returns its absolute path.
func (p *TestProject) WriteFile(rel, content string) string {
	p.t.Helper()

	path := filepath.Join(p.root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		p.t.Fatalf("creating directories for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		p.t.Fatalf("writing %s: %v", rel, err)
	}
	return path
}

// ReadFile returns the content of a file under the project root.
func (p *TestProject) ReadFile(rel string) string {
	p.t.Helper()

	data, err := os.ReadFile(filepath.Join(p.root, rel))
	if err != nil {
		p.t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

// InitGit initializes a git repository at the project root with the given
// user identity in its local configuration.
func (p *TestProject) InitGit(name, email string) {
	p.t.Helper()

	repo, err := gogit.PlainInit(p.root, false)
	if err != nil {
		p.t.Fatalf("initializing repo: %v", err)
	}

	cfg, err := repo.Config()
	if err != nil {
		p.t.Fatalf("reading config: %v", err)
	}
	cfg.User.Name = name
	cfg.User.Email = email
	if err := repo.SetConfig(cfg); err != nil {
		p.t.Fatalf("saving config: %v", err)
	}
}
