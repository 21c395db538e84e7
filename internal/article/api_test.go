package article

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/portfolio/internal/markdown"
	"github.com/SergeyParamoshkin/portfolio/internal/model"
)

var testArticles = []model.Article{
	{
		ID:          0,
		Title:       "Building Scalable React Applications",
		Description: "Patterns that keep a growing front end maintainable.",
		Date:        "2023-04-12",
		Cover:       "/static/img/articles/0.png",
		Tags:        []string{"react", "architecture"},
	},
	{ID: 1, Title: "second", Date: "2023-07-02"},
}

func newTestServer(t *testing.T, articlesDir string) *httptest.Server {
	t.Helper()

	author := &model.Person{FirstName: "Sergey", LastName: "Paramoshkin"}
	api := NewAPI(
		NewStore(testArticles),
		markdown.NewLoader(articlesDir, markdown.NewRenderer()),
		author,
		zap.NewNop().Sugar(),
	)

	r := chi.NewRouter()
	r.Mount("/articles", api.Routes())

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return srv
}

func get(t *testing.T, url string) (*http.Response, map[string]interface{}) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var body map[string]interface{}
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	}

	return resp, body
}

func TestListArticles(t *testing.T) {
	srv := newTestServer(t, t.TempDir())

	resp, err := http.Get(srv.URL + "/articles")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 2)
	assert.Equal(t, "Building Scalable React Applications", list[0]["title"])
	assert.Equal(t, float64(0), list[0]["id"])
}

func TestGetArticleRendered(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0.md"), []byte("# Hello"), 0o644))
	srv := newTestServer(t, dir)

	resp, body := get(t, srv.URL+"/articles/0")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Metadata passes through unchanged next to the rendered body.
	assert.Equal(t, "Building Scalable React Applications", body["title"])
	assert.Equal(t, "2023-04-12", body["date"])
	assert.Equal(t, "/static/img/articles/0.png", body["cover"])
	assert.Contains(t, body["bodyHtml"], "<h1>Hello</h1>")
	assert.Equal(t, "rendered", body["bodyStatus"])

	author, ok := body["author"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Sergey Paramoshkin", author["name"])
}

func TestGetArticleTable(t *testing.T) {
	dir := t.TempDir()
	src := "| a | b |\n| - | - |\n| 1 | 2 |\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0.md"), []byte(src), 0o644))
	srv := newTestServer(t, dir)

	resp, body := get(t, srv.URL+"/articles/0")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body["bodyHtml"], "<table>")
}

func TestGetArticleMissingFileFallsBack(t *testing.T) {
	srv := newTestServer(t, t.TempDir())

	resp, body := get(t, srv.URL+"/articles/1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, markdown.FallbackText, body["bodyHtml"])
	assert.Equal(t, "fallback", body["bodyStatus"])
	assert.Equal(t, "second", body["title"])
}

func TestGetArticleNotFound(t *testing.T) {
	// The articles directory does not exist at all: proof that an unknown id
	// is rejected by the metadata lookup before any file access.
	srv := newTestServer(t, "/nonexistent/articles")

	resp, err := http.Get(srv.URL + "/articles/999")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetArticleNonNumericID(t *testing.T) {
	srv := newTestServer(t, t.TempDir())

	resp, err := http.Get(srv.URL + "/articles/not-a-number")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetArticleIdempotent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0.md"), []byte("# Hello"), 0o644))
	srv := newTestServer(t, dir)

	_, first := get(t, srv.URL+"/articles/0")
	_, second := get(t, srv.URL+"/articles/0")
	assert.Equal(t, first, second)
}
