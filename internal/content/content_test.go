package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHasUniqueArticleIDs(t *testing.T) {
	site := Default()

	seen := map[int]bool{}
	for _, a := range site.Articles {
		assert.False(t, seen[a.ID], "duplicate article id %d", a.ID)
		seen[a.ID] = true
	}
}

func TestDefaultIsComplete(t *testing.T) {
	site := Default()

	assert.NotEmpty(t, site.Person.FirstName)
	assert.NotEmpty(t, site.Social)
	assert.NotEmpty(t, site.Experience)
	assert.NotEmpty(t, site.Navigation)
	assert.NotEmpty(t, site.Articles)
	assert.NotEmpty(t, site.Newsletter.Email)
}

func TestFullName(t *testing.T) {
	site := Default()
	assert.Equal(t, "Sergey Paramoshkin", site.Person.FullName())
}

func TestLoadReplacesWholesale(t *testing.T) {
	src := `
person:
  first_name: Ada
  last_name: Lovelace
  role: Engineer
navigation:
  - label: Home
    path: /
articles:
  - id: 0
    title: Building Scalable React Applications
    date: "2023-04-12"
    tags: [react]
newsletter:
  email: ada@example.com
  enabled: true
`
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	site, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", site.Person.FullName())
	require.Len(t, site.Articles, 1)
	assert.Equal(t, 0, site.Articles[0].ID)
	assert.Equal(t, []string{"react"}, site.Articles[0].Tags)
	// Nothing from the compiled-in defaults leaks through.
	assert.Empty(t, site.Social)
	assert.Empty(t, site.Experience)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("person: [not a mapping"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
