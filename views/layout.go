package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/timberio/vectorsite/site"
)

// Stylesheet is the path of the embedded site stylesheet.
const Stylesheet = "/public/styles.css"

type navLink struct {
	Label    string
	Href     string
	External bool
}

var navLinks = []navLink{
	{Label: "Docs", Href: "https://vector.dev/docs/", External: true},
	{Label: "Blog", Href: "/blog/"},
	{Label: "Community", Href: "/community/"},
	{Label: "GitHub", Href: "https://github.com/timberio/vector", External: true},
}

// PageTitle appends the site title unless title already equals it.
func PageTitle(cfg site.Config, title string) string {
	if title == "" || title == cfg.Title {
		return cfg.Title
	}
	return title + " | " + cfg.Title
}

// Layout is the page shell: head, navbar, body, footer.
func Layout(cfg site.Config, meta PageMeta, body templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		description := meta.Description
		if description == "" {
			description = cfg.Tagline
		}
		ogType := meta.OGType
		if ogType == "" {
			ogType = "website"
		}

		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		h.raw("<title>")
		h.text(PageTitle(cfg, meta.Title))
		h.raw("</title>")
		if description != "" {
			h.raw(`<meta name="description"`)
			h.attr("content", description)
			h.raw("/>")
		}
		if meta.URL != "" {
			h.raw(`<link rel="canonical"`)
			h.href("href", meta.URL)
			h.raw("/>")
			h.raw(`<meta property="og:url"`)
			h.attr("content", meta.URL)
			h.raw("/>")
		}
		h.raw(`<meta property="og:title"`)
		h.attr("content", PageTitle(cfg, meta.Title))
		h.raw(`/><meta property="og:type"`)
		h.attr("content", ogType)
		h.raw("/>")
		h.raw(`<link rel="stylesheet" href="`, Stylesheet, `"/>`)
		h.raw(`<link rel="alternate" type="application/rss+xml"`)
		h.attr("title", cfg.Title+" Blog")
		h.raw(` href="/feed.xml"/>`)
		if meta.JSONLD != "" {
			// json.Marshal escapes <, > and &, so the block cannot close the script tag.
			h.raw(`<script type="application/ld+json">`, meta.JSONLD, `</script>`)
		}
		h.raw("</head><body>")

		h.raw(`<nav class="navbar"><div class="navbar__inner"><a class="navbar__brand" href="/">`)
		h.text(cfg.Title)
		h.raw(`</a><div class="navbar__items">`)
		for _, l := range navLinks {
			h.raw(`<a class="navbar__item navbar__link"`)
			h.href("href", l.Href)
			if l.External {
				h.raw(` target="_blank" rel="noopener noreferrer"`)
			}
			h.raw(">")
			h.text(l.Label)
			h.raw("</a>")
		}
		h.raw(`</div></div></nav>`)

		h.raw(`<div class="main-wrapper">`)
		h.child(body)
		h.raw(`</div>`)

		h.raw(`<footer class="footer"><div class="container"><div class="footer__copyright">`)
		h.text(cfg.Title)
		if cfg.Tagline != "" {
			h.raw(" &middot; ")
			h.text(cfg.Tagline)
		}
		h.raw(`</div></div></footer></body></html>`)
	})
}

// AnchoredHeading renders a heading with a direct link to itself.
func AnchoredHeading(level int, id, title string) templ.Component {
	if level < 1 || level > 6 {
		level = 2
	}
	tag := "h" + strconv.Itoa(level)
	return component(func(h *htmlWriter) {
		h.raw("<", tag, ` class="anchor"`)
		h.attr("id", id)
		h.raw(">")
		h.text(title)
		h.raw(`<a class="hash-link"`)
		h.attr("href", "#"+id)
		h.raw(` title="Direct link to heading">#</a></`, tag, ">")
	})
}
