package gitid

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"go-autoheader/internal/testutil"
)

func TestLookup_RepositoryIdentity(t *testing.T) {
	proj := testutil.NewTestProject(t)
	proj.InitGit("Jane Doe", "jane@example.com")

	id, ok := Lookup(proj.Root())
	require.True(t, ok)
	require.Equal(t, "Jane Doe", id.Name)
	require.Equal(t, "jane@example.com", id.Email)
}

func TestLookup_SubdirectoryOfRepository(t *testing.T) {
	proj := testutil.NewTestProject(t)
	proj.InitGit("Jane Doe", "jane@example.com")
	path := proj.WriteFile("src/deep/file.go", "package deep\n")

	id, ok := Lookup(filepath.Dir(path))
	require.True(t, ok)
	require.Equal(t, "Jane Doe", id.Name)
}

func TestLookup_NotARepository(t *testing.T) {
	_, ok := Lookup(t.TempDir())
	require.False(t, ok)
}
