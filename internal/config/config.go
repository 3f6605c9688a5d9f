// Package config provides YAML configuration loading, template and identity
// merging, and effective configuration resolution for autoheader. All optional
// fields are pointers to support merge semantics: nil means "not set, inherit
// from the fallback layer".
package config

// DefaultLocale is used when no locale is configured anywhere.
const DefaultLocale = "en"

// Config is the root configuration for autoheader.
type Config struct {
	// Create controls whether a header is written when absent.
	Create *bool `yaml:"create"`
	// Update controls whether tracked lines of an existing header are rewritten.
	Update *bool `yaml:"update"`
	// LanguageStrict disables the default-template fallback for languages
	// without a specific template.
	LanguageStrict *bool `yaml:"language-strict"`
	// Locale used for date formatting (e.g. "en", "fr", "de_DE").
	Locale *string `yaml:"locale"`
	// Data fills the template placeholders (names, mail addresses, etc.).
	Data Identity `yaml:"data"`
	// Default is the fallback template. It also fills the blanks left in
	// language specific templates.
	Default Template `yaml:"default"`
	// Languages holds language specific templates, keyed by their Name.
	Languages []Template `yaml:"language"`
	// Projects holds per-project configurations.
	Projects []Project `yaml:"project"`
	// Ignore lists doublestar glob patterns for files to leave untouched.
	Ignore []string `yaml:"ignore"`
	// GitIdentity enables filling missing author name/mail from the
	// project's git configuration.
	GitIdentity *bool `yaml:"git-identity"`
}

// EffectiveOptions is the fully resolved set of per-invocation switches,
// produced by layering a project's overrides on top of the global values.
type EffectiveOptions struct {
	Create         bool
	Update         bool
	LanguageStrict bool
	Locale         string
	GitIdentity    bool
	Ignore         []string
}

// ResolveOptions resolves the effective switches for a project. Project-level
// values win over global ones; proj may be nil, in which case only the global
// values apply. Ignore patterns accumulate instead of overriding.
func ResolveOptions(cfg *Config, proj *Project) EffectiveOptions {
	opts := EffectiveOptions{
		Create:         derefBool(cfg.Create, false),
		Update:         derefBool(cfg.Update, false),
		LanguageStrict: derefBool(cfg.LanguageStrict, false),
		Locale:         derefString(cfg.Locale, DefaultLocale),
		GitIdentity:    derefBool(cfg.GitIdentity, false),
		Ignore:         append([]string(nil), cfg.Ignore...),
	}

	if proj != nil {
		opts.Create = derefBool(proj.Create, opts.Create)
		opts.Update = derefBool(proj.Update, opts.Update)
		opts.Locale = derefString(proj.Locale, opts.Locale)
		opts.Ignore = append(opts.Ignore, proj.Ignore...)
	}

	return opts
}

func derefString(p *string, fallback string) string {
	if p != nil {
		return *p
	}
	return fallback
}

func derefBool(p *bool, fallback bool) bool {
	if p != nil {
		return *p
	}
	return fallback
}
