// Package gitid looks up author identity from a project's git configuration.
// It is a best-effort fallback: projects that are not git repositories simply
// yield nothing.
package gitid

import (
	gogit "github.com/go-git/go-git/v5"
	gogitconfig "github.com/go-git/go-git/v5/config"
)

// Identity is the author identity recorded in git configuration.
type Identity struct {
	Name  string
	Email string
}

// Lookup reads user.name and user.email for the repository enclosing root,
// merging repository-local and global git configuration. The boolean is
// false when root is not inside a git repository or the configuration cannot
// be read; this is never an error for the caller.
func Lookup(root string) (Identity, bool) {
	repo, err := gogit.PlainOpenWithOptions(root, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Identity{}, false
	}

	cfg, err := repo.ConfigScoped(gogitconfig.GlobalScope)
	if err != nil {
		return Identity{}, false
	}

	if cfg.User.Name == "" && cfg.User.Email == "" {
		return Identity{}, false
	}
	return Identity{Name: cfg.User.Name, Email: cfg.User.Email}, true
}
