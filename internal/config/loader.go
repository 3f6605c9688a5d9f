package config

import (
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// LoadFromFile reads and parses an autoheader configuration file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}
	cfg, err := LoadFromBytes(data)
	if err != nil {
		return nil, errors.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromBytes parses autoheader configuration from raw YAML bytes.
// Unknown keys are rejected so that typos surface instead of silently
// disabling settings.
func LoadFromBytes(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// Validate checks structural requirements and normalizes paths. It does not
// enforce template completeness: that is the merge layer's job, where the
// double-absence rule produces precise ErrFieldUnset failures.
func (cfg *Config) Validate() error {
	if cfg.Default.Name == "" {
		cfg.Default.Name = "*"
	}

	seen := make(map[string]struct{}, len(cfg.Projects))
	for i := range cfg.Projects {
		p := &cfg.Projects[i]
		if p.Root == "" {
			return errors.Errorf("project %d: root is required", i)
		}
		p.Root = filepath.Clean(p.Root)
		if _, dup := seen[p.Root]; dup {
			return errors.Errorf("duplicate project root %q", p.Root)
		}
		seen[p.Root] = struct{}{}
	}

	for i := range cfg.Languages {
		if cfg.Languages[i].Name == "" {
			return errors.Errorf("language template %d: name is required", i)
		}
	}

	return nil
}
