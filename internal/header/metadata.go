package header

import (
	"time"

	"github.com/djherbis/times"
	"gitlab.com/tozd/go/errors"
)

// FileTimes carries the filesystem timestamps a header depends on.
type FileTimes struct {
	Created  time.Time
	Modified time.Time
}

// StatFunc looks up the timestamps of a file. Injected into the Renderer so
// tests can run without real filesystem metadata.
type StatFunc func(path string) (FileTimes, error)

// StatTimes reads a file's timestamps from filesystem metadata. The creation
// time is the birth time where the platform records one; filesystems without
// birth times fall back to the change time, then the modification time.
func StatTimes(path string) (FileTimes, error) {
	ts, err := times.Stat(path)
	if err != nil {
		return FileTimes{}, errors.Errorf("reading file metadata: %w", err)
	}

	created := ts.ModTime()
	switch {
	case ts.HasBirthTime():
		created = ts.BirthTime()
	case ts.HasChangeTime():
		created = ts.ChangeTime()
	}

	return FileTimes{Created: created, Modified: ts.ModTime()}, nil
}
