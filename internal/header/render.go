// Package header renders effective templates into concrete header lines and
// reconciles them against target files.
package header

import (
	"path/filepath"
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"

	"go-autoheader/internal/config"
)

// ErrOutsideProject reports a file that does not live under its resolved
// project root, which makes the relative-path placeholder meaningless.
var ErrOutsideProject = errors.Base("file is not inside the project root")

// Renderer turns an effective template plus identity and file metadata into
// an ordered sequence of header lines. The clock and the metadata lookup are
// injected rather than read ambiently, keeping output deterministic in tests.
type Renderer struct {
	clock  Clock
	stat   StatFunc
	locale string
}

// NewRenderer creates a Renderer. A nil clock means the system clock, a nil
// stat means real filesystem metadata, an empty locale means the default one.
func NewRenderer(clock Clock, stat StatFunc, locale string) *Renderer {
	if clock == nil {
		clock = SystemClock()
	}
	if stat == nil {
		stat = StatTimes
	}
	if locale == "" {
		locale = config.DefaultLocale
	}
	return &Renderer{clock: clock, stat: stat, locale: locale}
}

// Render produces the header lines for a file. The copyright notice is
// substituted into the body first, so the notice text may itself carry
// placeholder tokens; the remaining tokens are disjoint and applied from a
// fixed table. Every body line gets the template prefix, including empty
// ones; before and after lines stay unprefixed.
func (r *Renderer) Render(
	tpl config.EffectiveTemplate,
	id config.EffectiveIdentity,
	projectName string,
	projectRoot string,
	filePath string,
) ([]string, error) {
	rel, err := filepath.Rel(projectRoot, filePath)
	if err != nil {
		return nil, errors.Errorf("%w: %s", ErrOutsideProject, filePath)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, errors.Errorf("%w: %s (root %s)", ErrOutsideProject, filePath, projectRoot)
	}

	ts, err := r.stat(filePath)
	if err != nil {
		return nil, err
	}

	body := strings.ReplaceAll(tpl.Body, TokenCopyrightNotice, tpl.CopyrightNotice)

	subs := []substitution{
		{TokenFileCreation, formatCreation(ts.Created, r.locale)},
		{TokenDateNow, formatModification(ts.Modified, r.locale)},
		{TokenRelativePath, filepath.ToSlash(rel)},
		{TokenProjectName, projectName},
		{TokenAuthorName, id.Author},
		{TokenAuthorMail, bracketed(id.AuthorMail)},
		{TokenCopyrightHolders, bracketed(id.CopyrightHolders)},
		{TokenCopyrightYear, strconv.Itoa(r.clock.Now().Year())},
	}
	for _, s := range subs {
		body = strings.ReplaceAll(body, s.token, s.value)
	}

	bodyLines := strings.Split(body, "\n")
	lines := make([]string, 0, len(tpl.Before)+len(bodyLines)+len(tpl.After))
	lines = append(lines, tpl.Before...)
	for _, l := range bodyLines {
		lines = append(lines, tpl.Prefix+l)
	}
	lines = append(lines, tpl.After...)

	return lines, nil
}
