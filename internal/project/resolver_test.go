package project

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go-autoheader/internal/config"
)

func projects(roots ...string) []config.Project {
	ps := make([]config.Project, len(roots))
	for i, r := range roots {
		ps[i] = config.Project{Root: r}
	}
	return ps
}

func TestResolve_DirectParent(t *testing.T) {
	ps := projects("/home/me/app")
	got := Resolve(ps, "/home/me/app/main.go")
	require.NotNil(t, got)
	require.Equal(t, "/home/me/app", got.Root)
}

func TestResolve_DeepNesting(t *testing.T) {
	ps := projects("/home/me/app")
	got := Resolve(ps, "/home/me/app/src/internal/deep/nested/file.go")
	require.NotNil(t, got)
	require.Equal(t, "/home/me/app", got.Root)
}

func TestResolve_NearestAncestorWins(t *testing.T) {
	ps := projects("/home/me", "/home/me/app")
	got := Resolve(ps, "/home/me/app/src/file.go")
	require.NotNil(t, got)
	require.Equal(t, "/home/me/app", got.Root)
}

func TestResolve_OutsideAllRoots(t *testing.T) {
	ps := projects("/home/me/app")
	require.Nil(t, Resolve(ps, "/tmp/elsewhere/file.go"))
}

func TestResolve_NoPrefixMatching(t *testing.T) {
	// "/home/me/app-extra" is not inside "/home/me/app".
	ps := projects("/home/me/app")
	require.Nil(t, Resolve(ps, "/home/me/app-extra/file.go"))
}

func TestResolve_EmptyProjectList(t *testing.T) {
	require.Nil(t, Resolve(nil, "/home/me/app/file.go"))
}

func TestResolve_UncleanedRoot(t *testing.T) {
	ps := projects("/home/me/app/")
	got := Resolve(ps, "/home/me/app/file.go")
	require.NotNil(t, got)
}
