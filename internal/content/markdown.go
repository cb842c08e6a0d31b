package content

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"go.abhg.dev/goldmark/toc"
)

// firstH1Re matches a top-level ATX heading: "# " followed by a non-"#"
// character. "## " and deeper headings do not match.
var firstH1Re = regexp.MustCompile(`^# [^#]`)

// Renderer converts Markdown source into HTML using goldmark with GFM,
// typographer, and syntax highlighting extensions.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a Renderer with the standard extension set.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	return &Renderer{md: md}
}

// Render converts Markdown source into HTML. The first top-level H1 line is
// removed before rendering so that the post title never appears twice (the
// template renders it from front matter).
func (r *Renderer) Render(source []byte) ([]byte, error) {
	body := []byte(RemoveFirstH1(string(source)))
	var buf bytes.Buffer
	if err := r.md.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderWithTOC behaves like Render but also produces a table of contents as
// a nested HTML list, returned separately.
func (r *Renderer) RenderWithTOC(source []byte) (htmlOut, tocOut []byte, err error) {
	body := []byte(RemoveFirstH1(string(source)))

	doc := r.md.Parser().Parse(text.NewReader(body))

	tocTree, err := toc.Inspect(doc, body)
	if err != nil {
		return nil, nil, fmt.Errorf("toc inspect: %w", err)
	}

	if tocList := toc.RenderList(tocTree); tocList != nil {
		var tocBuf bytes.Buffer
		if err := r.md.Renderer().Render(&tocBuf, body, tocList); err != nil {
			return nil, nil, fmt.Errorf("toc render: %w", err)
		}
		tocOut = tocBuf.Bytes()
	}

	var contentBuf bytes.Buffer
	if err := r.md.Renderer().Render(&contentBuf, body, doc); err != nil {
		return nil, nil, fmt.Errorf("markdown render: %w", err)
	}

	return contentBuf.Bytes(), tocOut, nil
}

// RemoveFirstH1 removes the first top-level H1 heading line from a Markdown
// body. Exactly one line is removed, on the first match only; the match is
// case-sensitive on the "# " marker and ignores surrounding indentation.
func RemoveFirstH1(markdown string) string {
	lines := strings.Split(markdown, "\n")
	removed := false
	filtered := lines[:0]

	for _, line := range lines {
		if !removed && firstH1Re.MatchString(strings.TrimSpace(line)) {
			removed = true
			continue
		}
		filtered = append(filtered, line)
	}

	return strings.Join(filtered, "\n")
}
