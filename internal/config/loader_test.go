package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleYAML = `
create: true
update: true
locale: fr
data:
  author: Jane Doe
  author-mail: jane@example.com
  cp-holders: Jane Doe
default:
  name: "*"
  prefix: "// "
  before: []
  after: []
  template: |-
    File: #file_relative_path
    #copyright_notice
  copyright-notice: "Copyright © #cp_year #cp_holders - All rights reserved"
  track-changes:
    - "Last Modified"
language:
  - name: python
    prefix: "# "
    before:
      - "#!/usr/bin/env python3"
project:
  - root: /home/jane/projects/app
    name: App
    locale: en
`

func TestLoadFromBytes(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(sampleYAML))
	require.NoError(t, err)

	require.True(t, *cfg.Create)
	require.True(t, *cfg.Update)
	require.Equal(t, "fr", *cfg.Locale)
	require.Equal(t, "Jane Doe", *cfg.Data.Author)
	require.Equal(t, "// ", *cfg.Default.Prefix)
	require.Len(t, cfg.Languages, 1)
	require.Equal(t, "python", cfg.Languages[0].Name)
	require.Equal(t, []string{"#!/usr/bin/env python3"}, *cfg.Languages[0].Before)
	require.Len(t, cfg.Projects, 1)
	require.Equal(t, "App", cfg.Projects[0].DisplayName())
}

func TestLoadFromBytes_UnknownKeyRejected(t *testing.T) {
	_, err := LoadFromBytes([]byte("crate: true\ndefault:\n  name: '*'\n"))
	require.Error(t, err)
}

func TestLoadFromBytes_MalformedYAML(t *testing.T) {
	_, err := LoadFromBytes([]byte("create: [true\n"))
	require.Error(t, err)
}

func TestValidate_ProjectRootRequired(t *testing.T) {
	cfg := &Config{Projects: []Project{{Name: String("App")}}}
	require.Error(t, cfg.Validate())
}

func TestValidate_DuplicateRoots(t *testing.T) {
	cfg := &Config{Projects: []Project{
		{Root: "/a/b"},
		{Root: "/a/b/"},
	}}
	require.Error(t, cfg.Validate())
}

func TestValidate_LanguageNameRequired(t *testing.T) {
	cfg := &Config{Languages: []Template{{Prefix: String("# ")}}}
	require.Error(t, cfg.Validate())
}

func TestValidate_DefaultNameDefaulted(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Validate())
	require.Equal(t, "*", cfg.Default.Name)
}
