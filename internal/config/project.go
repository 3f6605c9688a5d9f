package config

import "path/filepath"

// Project configures header handling for one directory tree. Projects are
// read once at process start and immutable afterwards; the root path is the
// key used for ancestor matching.
type Project struct {
	// Root is the absolute path of the project's root directory.
	Root string `yaml:"root"`
	// Name is the display name. Defaults to the base name of Root.
	Name *string `yaml:"name"`
	// Create overrides the global create switch for this project.
	Create *bool `yaml:"create"`
	// Update overrides the global update switch for this project.
	Update *bool `yaml:"update"`
	// Locale overrides the global locale for this project.
	Locale *string `yaml:"locale"`
	// Data overrides parts of the global identity for this project.
	Data *Identity `yaml:"data"`
	// Ignore lists additional doublestar glob patterns for this project.
	Ignore []string `yaml:"ignore"`
}

// DisplayName returns the configured project name, falling back to the base
// name of the root directory.
func (p *Project) DisplayName() string {
	if p.Name != nil && *p.Name != "" {
		return *p.Name
	}
	return filepath.Base(filepath.Clean(p.Root))
}

// ResolveIdentity merges the project's identity overrides against the given
// fallback identity. A project without identity data uses the fallback alone,
// which still must be complete.
func (p *Project) ResolveIdentity(fallback Identity) (EffectiveIdentity, error) {
	if p == nil || p.Data == nil {
		return MergeIdentity(Identity{}, fallback)
	}
	return MergeIdentity(*p.Data, fallback)
}
