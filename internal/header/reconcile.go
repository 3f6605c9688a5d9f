package header

import (
	"os"
	"strings"

	"gitlab.com/tozd/go/errors"

	"go-autoheader/internal/config"
)

// creationMarker identifies the creation-date line of a rendered header.
// Creation dates are immutable facts computed once, so that line is exempt
// from the byte-equality comparison: a file moved or regenerated later keeps
// its original creation date without being flagged as headerless.
const creationMarker = "Creation date"

// Exists reports whether the file already carries a header matching the
// rendered one. The first len(header) lines are compared pairwise; a pair
// matches when it is identical, when the rendered line is the creation-date
// line, or when the rendered line (prefix stripped) starts with a tracked
// prefix. A file with fewer lines than the header counts as headerless, and
// so does any untracked difference.
func Exists(path string, header []string, tpl config.EffectiveTemplate) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Errorf("reading %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) < len(header) {
		return false, nil
	}

	for i, rendered := range header {
		if lines[i] == rendered {
			continue
		}
		if strings.Contains(rendered, creationMarker) {
			continue
		}
		if isTracked(rendered, tpl) {
			continue
		}
		return false, nil
	}
	return true, nil
}

// Patch rewrites in place every line whose rendered counterpart is tracked,
// leaving all other lines untouched. It never inserts or removes lines, so
// it only makes sense after Exists reported a match.
func Patch(path string, header []string, tpl config.EffectiveTemplate) error {
	data, perm, err := readWithMode(path)
	if err != nil {
		return err
	}

	lines := strings.Split(string(data), "\n")
	for i, rendered := range header {
		if i >= len(lines) {
			break
		}
		if isTracked(rendered, tpl) {
			lines[i] = rendered
		}
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), perm); err != nil {
		return errors.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Create prepends the rendered header to the file's existing content. The
// existing content is never truncated or altered.
func Create(path string, header []string) error {
	data, perm, err := readWithMode(path)
	if err != nil {
		return err
	}

	content := append([]byte(strings.Join(header, "\n")+"\n"), data...)
	if err := os.WriteFile(path, content, perm); err != nil {
		return errors.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// isTracked reports whether a rendered line, with the template prefix
// stripped, starts with one of the tracked prefixes.
func isTracked(rendered string, tpl config.EffectiveTemplate) bool {
	stripped := rendered
	if tpl.Prefix != "" {
		stripped = strings.ReplaceAll(rendered, tpl.Prefix, "")
	}
	for _, t := range tpl.TrackChanges {
		if t != "" && strings.HasPrefix(stripped, t) {
			return true
		}
	}
	return false
}

func readWithMode(path string) ([]byte, os.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, errors.Errorf("inspecting %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, errors.Errorf("reading %s: %w", path, err)
	}
	return data, info.Mode().Perm(), nil
}
