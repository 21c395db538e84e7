package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHeading(t *testing.T) {
	out, err := NewRenderer().Render([]byte("# Hello"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "<h1>Hello</h1>")
}

func TestRenderTable(t *testing.T) {
	src := "| a | b |\n| - | - |\n| 1 | 2 |\n"

	out, err := NewRenderer().Render([]byte(src))
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<td>1</td>")
}

func TestRenderStrikethrough(t *testing.T) {
	out, err := NewRenderer().Render([]byte("~~gone~~"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "<del>gone</del>")
}
