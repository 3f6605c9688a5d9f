package config

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestMergeIdentity_SpecificWins(t *testing.T) {
	specific := Identity{
		Author:           String("Jane"),
		AuthorMail:       String("jane@example.com"),
		CopyrightHolders: String("Jane Inc"),
	}
	fallback := Identity{
		Author:           String("Global"),
		AuthorMail:       String("global@example.com"),
		CopyrightHolders: String("Global Inc"),
	}

	id, err := MergeIdentity(specific, fallback)
	require.NoError(t, err)
	require.Equal(t, "Jane", id.Author)
	require.Equal(t, "jane@example.com", id.AuthorMail)
	require.Equal(t, "Jane Inc", id.CopyrightHolders)
}

func TestMergeIdentity_FallbackFillsGaps(t *testing.T) {
	specific := Identity{Author: String("Jane")}
	fallback := Identity{
		Author:           String("Global"),
		AuthorMail:       String("global@example.com"),
		CopyrightHolders: String("Global Inc"),
	}

	id, err := MergeIdentity(specific, fallback)
	require.NoError(t, err)
	require.Equal(t, "Jane", id.Author)
	require.Equal(t, "global@example.com", id.AuthorMail)
	require.Equal(t, "Global Inc", id.CopyrightHolders)
}

func TestMergeIdentity_EmptyStringIsPresent(t *testing.T) {
	// A deliberately empty value must survive merging, not fall back.
	specific := Identity{AuthorMail: String("")}
	fallback := Identity{
		Author:           String("Global"),
		AuthorMail:       String("global@example.com"),
		CopyrightHolders: String(""),
	}

	id, err := MergeIdentity(specific, fallback)
	require.NoError(t, err)
	require.Equal(t, "", id.AuthorMail)
	require.Equal(t, "", id.CopyrightHolders)
}

func TestMergeIdentity_DoubleAbsenceIsError(t *testing.T) {
	specific := Identity{Author: String("Jane")}
	fallback := Identity{Author: String("Global"), AuthorMail: String("m@example.com")}

	_, err := MergeIdentity(specific, fallback)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrFieldUnset))
	require.Contains(t, err.Error(), "cp-holders")
}

func TestMergeIdentity_Idempotent(t *testing.T) {
	full := Identity{
		Author:           String("Jane"),
		AuthorMail:       String("jane@example.com"),
		CopyrightHolders: String("Jane Inc"),
	}

	first, err := MergeIdentity(full, Identity{})
	require.NoError(t, err)

	second, err := MergeIdentity(full, full)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
