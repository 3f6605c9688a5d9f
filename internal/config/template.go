package config

import (
	"strings"

	"gitlab.com/tozd/go/errors"

	"go-autoheader/internal/language"
)

// Template is a named, mergeable bundle of header-formatting rules, either
// the default one or a language specific one.
type Template struct {
	// Name is the language tag the template applies to ("*" for the default).
	Name string `yaml:"name"`
	// Prefix is put at the beginning of every body line in the header.
	Prefix *string `yaml:"prefix"`
	// Before lines are emitted unprefixed ahead of the header body
	// (shebangs, for example).
	Before *[]string `yaml:"before"`
	// After lines are emitted unprefixed behind the header body.
	After *[]string `yaml:"after"`
	// Body is the header text, containing placeholder tokens.
	Body *string `yaml:"template"`
	// CopyrightNotice is substituted into the body before any other token.
	CopyrightNotice *string `yaml:"copyright-notice"`
	// TrackChanges lists line prefixes whose rendered lines may be rewritten
	// in place when an existing header is updated.
	TrackChanges *[]string `yaml:"track-changes"`
}

// EffectiveTemplate is a fully resolved template with every field guaranteed
// to have a value. Produced by MergeTemplate.
type EffectiveTemplate struct {
	Name            string
	Prefix          string
	Before          []string
	After           []string
	Body            string
	CopyrightNotice string
	TrackChanges    []string
}

// MergeTemplate resolves a template field by field against the default one:
// the specific value wins, the default fills the gaps. Name is never merged.
// A field absent from both layers is a configuration error (ErrFieldUnset).
func MergeTemplate(specific, fallback Template) (EffectiveTemplate, error) {
	prefix, err := resolveString("prefix", specific.Prefix, fallback.Prefix)
	if err != nil {
		return EffectiveTemplate{}, err
	}
	before, err := resolveStrings("before", specific.Before, fallback.Before)
	if err != nil {
		return EffectiveTemplate{}, err
	}
	after, err := resolveStrings("after", specific.After, fallback.After)
	if err != nil {
		return EffectiveTemplate{}, err
	}
	body, err := resolveString("template", specific.Body, fallback.Body)
	if err != nil {
		return EffectiveTemplate{}, err
	}
	notice, err := resolveString("copyright-notice", specific.CopyrightNotice, fallback.CopyrightNotice)
	if err != nil {
		return EffectiveTemplate{}, err
	}
	tracked, err := resolveStrings("track-changes", specific.TrackChanges, fallback.TrackChanges)
	if err != nil {
		return EffectiveTemplate{}, err
	}

	return EffectiveTemplate{
		Name:            specific.Name,
		Prefix:          prefix,
		Before:          before,
		After:           after,
		Body:            body,
		CopyrightNotice: notice,
		TrackChanges:    tracked,
	}, nil
}

// SelectTemplate picks the template to merge for a detected language tag.
// With no language specific templates configured the default applies. An
// exact match (modulo well-known language aliases) wins; otherwise the
// default applies unless strict matching is enabled, in which case
// ErrNoLanguageTemplate signals a deliberate skip.
func SelectTemplate(cfg *Config, tag string) (*Template, error) {
	if len(cfg.Languages) == 0 {
		return &cfg.Default, nil
	}

	for i := range cfg.Languages {
		name := language.Normalize(cfg.Languages[i].Name)
		if strings.EqualFold(name, tag) {
			return &cfg.Languages[i], nil
		}
	}

	if derefBool(cfg.LanguageStrict, false) {
		return nil, errors.Errorf("%w %q", ErrNoLanguageTemplate, tag)
	}
	return &cfg.Default, nil
}

func resolveString(field string, specific, fallback *string) (string, error) {
	if specific != nil {
		return *specific, nil
	}
	if fallback != nil {
		return *fallback, nil
	}
	return "", errors.Errorf("%w: %s", ErrFieldUnset, field)
}

func resolveStrings(field string, specific, fallback *[]string) ([]string, error) {
	if specific != nil {
		return *specific, nil
	}
	if fallback != nil {
		return *fallback, nil
	}
	return nil, errors.Errorf("%w: %s", ErrFieldUnset, field)
}
