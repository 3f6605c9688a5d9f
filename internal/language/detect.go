// Package language detects the language of a source file from its file name,
// backed by the chroma lexer registry.
package language

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Wildcard is the sentinel tag used when no language can be detected. The
// default template carries it as its name.
const Wildcard = "*"

// Detect returns the canonical language tag for a file path, or Wildcard
// when the file name matches no known language.
func Detect(path string) string {
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		return Wildcard
	}
	return canonical(lexer.Config())
}

// Normalize maps any known language name or alias ("rs", "Rust", "golang")
// to its canonical tag ("rust", "go"). Unknown names pass through lowercased
// so that exact-name template matching still works for languages chroma does
// not know about.
func Normalize(name string) string {
	if name == Wildcard {
		return Wildcard
	}
	if lexer := lexers.Get(name); lexer != nil {
		return canonical(lexer.Config())
	}
	return strings.ToLower(name)
}

// canonical picks the stable tag for a lexer: its first alias when it has
// one, its lowercased display name otherwise.
func canonical(cfg *chroma.Config) string {
	if len(cfg.Aliases) > 0 {
		return strings.ToLower(cfg.Aliases[0])
	}
	return strings.ToLower(cfg.Name)
}
