package views

import (
	"github.com/a-h/templ"

	"github.com/timberio/vectorsite/site"
)

// NotFound renders the 404 page.
func NotFound(cfg site.Config) templ.Component {
	return Layout(cfg, PageMeta{Title: "Page Not Found"}, errorBody("Page Not Found", "We could not find what you were looking for."))
}

// ServerError renders the 500 page.
func ServerError(cfg site.Config) templ.Component {
	return Layout(cfg, PageMeta{Title: "Something Went Wrong"}, errorBody("Something Went Wrong", "Please try again in a moment."))
}

func errorBody(title, message string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<main class="container margin-vert--xl text--center"><h1>`)
		h.text(title)
		h.raw(`</h1><p>`)
		h.text(message)
		h.raw(`</p><p><a href="/blog/">Back to the blog</a></p></main>`)
	})
}
