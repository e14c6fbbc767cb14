package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// htmlWriter writes markup and remembers the first error so components can
// be written as straight-line code.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func component(fn func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}
		fn(h)
		return h.err
	})
}

// raw writes trusted markup.
func (h *htmlWriter) raw(parts ...string) {
	for _, p := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, p)
	}
}

// text writes escaped text content.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// href writes a URL attribute, replacing unsafe schemes.
func (h *htmlWriter) href(name, value string) {
	h.attr(name, string(templ.URL(value)))
}

// class writes a class attribute from templ class arguments.
func (h *htmlWriter) class(classes ...any) {
	if c := templ.Classes(classes...).String(); c != "" {
		h.attr("class", c)
	}
}

// child renders a nested component.
func (h *htmlWriter) child(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// Fragment renders components in order.
func Fragment(children ...templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		for _, c := range children {
			h.child(c)
		}
	})
}

// RenderString renders c to a string. Used by tests and the static exporter.
func RenderString(ctx context.Context, c templ.Component) (string, error) {
	var b strings.Builder
	if err := c.Render(ctx, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}
