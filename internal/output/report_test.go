package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"go-autoheader/pkg/autoheader"
)

func TestWriteReport_Outcome(t *testing.T) {
	var buf bytes.Buffer
	res := autoheader.Result{Outcome: autoheader.OutcomeCreated}

	require.NoError(t, WriteReport(&buf, "/p/main.go", res))
	require.Equal(t, "/p/main.go: Created\n", buf.String())
}

func TestWriteReport_Reason(t *testing.T) {
	var buf bytes.Buffer
	res := autoheader.Result{
		Outcome: autoheader.OutcomeSkippedNoProject,
		Reason:  "no configuration found for file /p/main.go",
	}

	require.NoError(t, WriteReport(&buf, "/p/main.go", res))
	require.Equal(t, "/p/main.go: no configuration found for file /p/main.go\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	res := autoheader.Result{
		Outcome:       autoheader.OutcomePatched,
		Project:       "Demo",
		Language:      "go",
		HeaderPresent: true,
	}

	require.NoError(t, WriteJSON(&buf, "/p/main.go", res))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, "Patched", decoded["outcome"])
	require.Equal(t, "Demo", decoded["project"])
	require.Equal(t, "go", decoded["language"])
	require.Equal(t, true, decoded["header_present"])
	require.NotContains(t, decoded, "reason")
}
