package markdown

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/frontmatter"
)

// FallbackText is substituted for the article body whenever the markdown file
// is missing or unreadable. The substitution is non-fatal, the rest of the
// page renders normally.
const FallbackText = "File cannot be used"

// Status says whether an article body came from its markdown file or from the
// fallback text.
type Status string

const (
	StatusRendered Status = "rendered"
	StatusFallback Status = "fallback"
)

// Result is the outcome of loading and rendering one article body. Callers can
// tell "rendered fine" from "file missing" without inspecting the HTML.
type Result struct {
	HTML   string
	Status Status
	Meta   FrontMatter
}

// FrontMatter carries the optional metadata block at the top of an article
// file. Fields the body does not set stay zero.
type FrontMatter struct {
	Title string    `yaml:"title"`
	Date  time.Time `yaml:"date"`
	Tags  []string  `yaml:"tags"`
	Draft bool      `yaml:"draft"`
}

// Loader reads article bodies from a fixed directory, keyed by numeric id as
// <dir>/<id>.md, and renders them to HTML.
type Loader struct {
	dir      string
	renderer *Renderer
}

func NewLoader(dir string, renderer *Renderer) *Loader {
	return &Loader{dir: dir, renderer: renderer}
}

// Path returns the conventional file location for an article id.
func (l *Loader) Path(id int) string {
	return filepath.Join(l.dir, fmt.Sprintf("%d.md", id))
}

// Load reads, parses and renders the body for the given article id. A read
// failure is not an error: the fallback text is rendered instead and the
// result is marked StatusFallback. An error is returned only when the
// markdown engine itself fails.
func (l *Loader) Load(id int) (Result, error) {
	raw, err := os.ReadFile(l.Path(id))
	if err != nil {
		return Result{HTML: FallbackText, Status: StatusFallback}, nil
	}

	var meta FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		// A malformed metadata block should not take the page down,
		// render the file as-is.
		body = raw
		meta = FrontMatter{}
	}

	html, err := l.renderer.Render(body)
	if err != nil {
		return Result{}, err
	}

	return Result{HTML: string(html), Status: StatusRendered, Meta: meta}, nil
}
