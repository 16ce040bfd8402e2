package content

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

var ErrPageNotFound = errors.New("page not found")

var pageName = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// raw HTML in the markdown source is escaped, WithUnsafe is not set
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

type Page struct {
	Name  string
	Title string
	Body  template.HTML
}

// Pages serves markdown documents named <name>.<lang>.md or <name>.md.
type Pages struct {
	fsys fs.FS
}

func NewPages(fsys fs.FS) *Pages {
	return &Pages{fsys: fsys}
}

// Load renders the page for a language, falling back to the page without a
// language suffix.
func (p *Pages) Load(name, lang string) (Page, error) {
	if !pageName.MatchString(name) {
		return Page{}, fmt.Errorf("%w: %q", ErrPageNotFound, name)
	}
	candidates := []string{name + ".md"}
	if lang != "" {
		candidates = []string{name + "." + strings.ToLower(lang) + ".md", name + ".md"}
	}
	for _, c := range candidates {
		src, err := fs.ReadFile(p.fsys, c)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Page{}, err
		}
		return Render(name, src)
	}
	return Page{}, fmt.Errorf("%w: %q", ErrPageNotFound, name)
}

// Render converts a markdown document; the first level one heading becomes
// the title.
func Render(name string, src []byte) (Page, error) {
	doc := mdRenderer.Parser().Parse(text.NewReader(src))
	var buf bytes.Buffer
	if err := mdRenderer.Renderer().Render(&buf, src, doc); err != nil {
		return Page{}, err
	}
	return Page{
		Name:  name,
		Title: firstHeading(doc, src),
		Body:  template.HTML(buf.String()),
	}, nil
}

func firstHeading(doc ast.Node, src []byte) string {
	var title strings.Builder
	found := false
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if found {
			return ast.WalkStop, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok || !entering || h.Level != 1 {
			return ast.WalkContinue, nil
		}
		_ = ast.Walk(h, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
			if t, ok := c.(*ast.Text); ok && entering {
				title.Write(t.Segment.Value(src))
				if t.SoftLineBreak() {
					title.WriteByte(' ')
				}
			}
			return ast.WalkContinue, nil
		})
		found = true
		return ast.WalkStop, nil
	})
	return strings.TrimSpace(title.String())
}
