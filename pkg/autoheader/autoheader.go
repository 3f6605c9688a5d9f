// Package autoheader provides the public API for inserting and updating
// standardized comment headers in source files.
//
// Basic usage:
//
//	result, err := autoheader.Process(ctx, autoheader.Options{
//	    Path:       "/home/me/projects/app/src/main.go",
//	    ConfigPath: "/home/me/.config/autoheader/configuration.yaml",
//	})
//	fmt.Println(result.Outcome) // "Created"
package autoheader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"go-autoheader/internal/config"
	"go-autoheader/internal/gitid"
	"go-autoheader/internal/header"
	"go-autoheader/internal/language"
	"go-autoheader/internal/project"
)

// Outcome classifies what Process did with a file.
type Outcome int

const (
	// OutcomeCreated means a new header was prepended to the file.
	OutcomeCreated Outcome = iota
	// OutcomePatched means tracked lines of an existing header were rewritten.
	OutcomePatched
	// OutcomeNothingToDo means the configured switches allowed no action.
	OutcomeNothingToDo
	// OutcomeSkippedNoProject means the file lies outside every configured project.
	OutcomeSkippedNoProject
	// OutcomeSkippedNoTemplate means strict matching found no template for the language.
	OutcomeSkippedNoTemplate
	// OutcomeSkippedIgnored means an ignore pattern matched the file.
	OutcomeSkippedIgnored
	// OutcomeSkippedDisabled means the project forbids both creation and update.
	OutcomeSkippedDisabled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "Created"
	case OutcomePatched:
		return "Patched"
	case OutcomeNothingToDo:
		return "NothingToDo"
	case OutcomeSkippedNoProject:
		return "SkippedNoProject"
	case OutcomeSkippedNoTemplate:
		return "SkippedNoTemplate"
	case OutcomeSkippedIgnored:
		return "SkippedIgnored"
	case OutcomeSkippedDisabled:
		return "SkippedDisabled"
	default:
		return "Unknown"
	}
}

// Skipped reports whether the outcome is one of the deliberate-skip kinds.
func (o Outcome) Skipped() bool {
	switch o {
	case OutcomeSkippedNoProject, OutcomeSkippedNoTemplate, OutcomeSkippedIgnored, OutcomeSkippedDisabled:
		return true
	}
	return false
}

// Options configures processing of a single file.
type Options struct {
	// Path of the file to process. Relative paths are resolved against WorkDir.
	Path string

	// WorkDir anchors relative paths. Defaults to the process working directory.
	WorkDir string

	// ConfigPath is the configuration file to load. Ignored when Config is set.
	ConfigPath string

	// Config is a pre-loaded configuration, useful for library callers.
	Config *config.Config

	// UpdateOnly forbids header creation even when the configuration enables it.
	UpdateOnly bool

	// Clock overrides the wall clock (tests). Nil means the system clock.
	Clock header.Clock

	// Stat overrides file timestamp lookup (tests). Nil means real metadata.
	Stat header.StatFunc

	// Detect overrides language detection (tests). Nil means detection from
	// the file name.
	Detect func(path string) string
}

// Result describes what Process did.
type Result struct {
	// Outcome classifies the action taken.
	Outcome Outcome
	// Reason is an operator-facing explanation for skip and no-op outcomes.
	Reason string
	// Project is the display name of the resolved project, when any.
	Project string
	// Language is the detected language tag.
	Language string
	// HeaderPresent reports whether a matching header was found in the file.
	HeaderPresent bool
	// Header holds the rendered header lines.
	Header []string
}

// Process runs the full pipeline for one file: resolve the project, merge
// identity and template, render the header, and reconcile it with the file.
// Deliberate skips come back as Result outcomes with a nil error;
// configuration, path, and filesystem failures come back as errors.
func Process(ctx context.Context, opts Options) (Result, error) {
	logger := zerolog.Ctx(ctx)

	path, err := absolutePath(opts)
	if err != nil {
		return Result{}, err
	}

	cfg := opts.Config
	if cfg == nil {
		cfg, err = config.LoadFromFile(opts.ConfigPath)
		if err != nil {
			return Result{}, err
		}
	}

	proj := project.Resolve(cfg.Projects, path)
	if proj == nil {
		logger.Info().Str("path", path).Msg("no project configured for file")
		return Result{
			Outcome: OutcomeSkippedNoProject,
			Reason:  fmt.Sprintf("no configuration found for file %s", path),
		}, nil
	}
	res := Result{Project: proj.DisplayName()}

	eopts := config.ResolveOptions(cfg, proj)

	if pattern, ignored := matchIgnore(eopts.Ignore, proj.Root, path); ignored {
		logger.Info().Str("path", path).Str("pattern", pattern).Msg("file ignored")
		res.Outcome = OutcomeSkippedIgnored
		res.Reason = fmt.Sprintf("file matches ignore pattern %q", pattern)
		return res, nil
	}

	if !eopts.Create && !eopts.Update {
		logger.Info().Str("project", res.Project).Msg("creation and update both disabled")
		res.Outcome = OutcomeSkippedDisabled
		res.Reason = "project configuration forbids creation and update of headers"
		return res, nil
	}

	identity, err := resolveIdentity(cfg, proj, eopts)
	if err != nil {
		return res, err
	}

	detect := opts.Detect
	if detect == nil {
		detect = language.Detect
	}
	tag := detect(path)
	res.Language = tag
	logger.Debug().Str("language", tag).Str("project", res.Project).Msg("resolved file context")

	selected, err := config.SelectTemplate(cfg, tag)
	if err != nil {
		if errors.Is(err, config.ErrNoLanguageTemplate) {
			res.Outcome = OutcomeSkippedNoTemplate
			res.Reason = fmt.Sprintf("no configuration for file %s (language %s)", path, tag)
			return res, nil
		}
		return res, err
	}
	tpl, err := config.MergeTemplate(*selected, cfg.Default)
	if err != nil {
		return res, err
	}

	renderer := header.NewRenderer(opts.Clock, opts.Stat, eopts.Locale)
	lines, err := renderer.Render(tpl, identity, res.Project, proj.Root, path)
	if err != nil {
		return res, err
	}
	res.Header = lines

	present, err := header.Exists(path, lines, tpl)
	if err != nil {
		return res, err
	}
	res.HeaderPresent = present

	create := eopts.Create && !opts.UpdateOnly

	switch {
	case present && eopts.Update:
		if err := header.Patch(path, lines, tpl); err != nil {
			return res, errors.Errorf("updating header: %w", err)
		}
		logger.Info().Str("path", path).Msg("header updated")
		res.Outcome = OutcomePatched
	case !present && create:
		if err := header.Create(path, lines); err != nil {
			return res, errors.Errorf("writing header: %w", err)
		}
		logger.Info().Str("path", path).Msg("header created")
		res.Outcome = OutcomeCreated
	default:
		res.Outcome = OutcomeNothingToDo
		res.Reason = fmt.Sprintf(
			"nothing to do: header exists = %t with configuration create = %t and update = %t",
			present, create, eopts.Update,
		)
	}

	return res, nil
}

// resolveIdentity merges the project identity over the global one, after the
// global layer is (optionally) topped up from git configuration. Git values
// only ever fill fields absent from the global data; they never override a
// configured value.
func resolveIdentity(cfg *config.Config, proj *config.Project, eopts config.EffectiveOptions) (config.EffectiveIdentity, error) {
	fallback := cfg.Data

	if eopts.GitIdentity {
		if gid, ok := gitid.Lookup(proj.Root); ok {
			if fallback.Author == nil && gid.Name != "" {
				fallback.Author = config.String(gid.Name)
			}
			if fallback.AuthorMail == nil && gid.Email != "" {
				fallback.AuthorMail = config.String(gid.Email)
			}
		}
	}

	return proj.ResolveIdentity(fallback)
}

// matchIgnore tests the file against the effective ignore globs, both as a
// path relative to the project root and as a bare file name.
func matchIgnore(patterns []string, root, path string) (string, bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	base := filepath.Base(path)

	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return pattern, true
		}
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return pattern, true
		}
	}
	return "", false
}

func absolutePath(opts Options) (string, error) {
	if filepath.IsAbs(opts.Path) {
		return filepath.Clean(opts.Path), nil
	}
	dir := opts.WorkDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Errorf("resolving working directory: %w", err)
		}
		dir = wd
	}
	return filepath.Clean(filepath.Join(dir, opts.Path)), nil
}
