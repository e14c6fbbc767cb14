// Package markdown renders post bodies to HTML and exposes them as templ components.
package markdown

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
			highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
		parser.WithASTTransformers(util.Prioritized(externalLinks{}, 100)),
	),
)

// Markdown returns a templ.Component that writes already rendered HTML.
func Markdown(rendered string) templ.Component {
	return templ.Raw(rendered)
}

// RenderMarkdown writes the HTML representation of src to buf. Raw HTML in
// the source is omitted and unsafe link schemes are dropped.
func RenderMarkdown(buf *bytes.Buffer, src string) error {
	return md.Convert([]byte(src), buf)
}

// ToHTML is RenderMarkdown returning a string.
func ToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := RenderMarkdown(&buf, src); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// externalLinks opens absolute links to other hosts in a new tab.
type externalLinks struct{}

func (externalLinks) Transform(doc *ast.Document, _ text.Reader, _ parser.Context) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if link, ok := n.(*ast.Link); ok && IsExternal(string(link.Destination)) {
			link.SetAttributeString("target", []byte("_blank"))
			link.SetAttributeString("rel", []byte("noopener noreferrer"))
		}
		return ast.WalkContinue, nil
	})
}

// IsExternal reports whether raw is an absolute http(s) URL pointing away
// from vector.dev.
func IsExternal(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return false
	}
	host := strings.ToLower(u.Hostname())
	return host != "vector.dev" && !strings.HasSuffix(host, ".vector.dev")
}
