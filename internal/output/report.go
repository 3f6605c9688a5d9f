// Package output writes processing results in the formats the CLI supports.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gitlab.com/tozd/go/errors"

	"go-autoheader/pkg/autoheader"
)

// WriteReport writes the operator-facing one-line summary of a result.
func WriteReport(w io.Writer, path string, res autoheader.Result) error {
	var err error
	switch {
	case res.Reason != "":
		_, err = fmt.Fprintf(w, "%s: %s\n", path, res.Reason)
	default:
		_, err = fmt.Fprintf(w, "%s: %s\n", path, res.Outcome)
	}
	return err
}

// jsonReport is the stable wire shape of a result.
type jsonReport struct {
	Path          string `json:"path"`
	Outcome       string `json:"outcome"`
	Reason        string `json:"reason,omitempty"`
	Project       string `json:"project,omitempty"`
	Language      string `json:"language,omitempty"`
	HeaderPresent bool   `json:"header_present"`
}

// WriteJSON writes the result as pretty-printed JSON.
func WriteJSON(w io.Writer, path string, res autoheader.Result) error {
	data, err := json.MarshalIndent(jsonReport{
		Path:          path,
		Outcome:       res.Outcome.String(),
		Reason:        res.Reason,
		Project:       res.Project,
		Language:      res.Language,
		HeaderPresent: res.HeaderPresent,
	}, "", "  ")
	if err != nil {
		return errors.Errorf("marshaling result: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return errors.Errorf("writing JSON output: %w", err)
	}
	_, err = w.Write([]byte("\n"))
	return err
}
