package views

import (
	"github.com/a-h/templ"

	"github.com/timberio/vectorsite/content"
	"github.com/timberio/vectorsite/site"
	"github.com/timberio/vectorsite/tags"
)

// BlogIndexPage lists posts, optionally filtered to one tag. activeTag is the
// tag label being filtered on, or empty.
func BlogIndexPage(cfg site.Config, posts []content.Post, activeTag string) templ.Component {
	title := "Blog"
	url := buildURL(cfg.URL, "blog")
	if activeTag != "" {
		title = "Posts tagged \"" + activeTag + "\""
		url = buildURL(cfg.URL, "blog", "tags", tags.Slug(activeTag))
	}
	meta := PageMeta{Title: title, URL: url, JSONLD: WebsiteJsonLD(cfg)}
	return Layout(cfg, meta, BlogIndexContent(cfg, posts, title))
}

// BlogIndexContent renders the post list without the layout shell.
func BlogIndexContent(cfg site.Config, posts []content.Post, heading string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="container container--narrow margin-vert--xl"><h1>`)
		h.text(heading)
		h.raw(`</h1>`)
		if len(posts) == 0 {
			h.raw(`<p class="blog-list__empty">No posts yet.</p>`)
		}
		for _, p := range posts {
			header := DeriveHeader(p)
			h.raw(`<article class="blog-list__item"><h2><a`)
			h.href("href", p.Metadata.Permalink)
			h.raw(">")
			h.text(p.Metadata.Title)
			h.raw(`</a></h2>`)
			h.child(Avatar(cfg, header.AuthorID, AvatarOptions{Size: "sm", NameSuffix: header.NameSuffix()}))
			if p.Metadata.Description != "" {
				h.raw(`<p>`)
				h.text(p.Metadata.Description)
				h.raw(`</p>`)
			}
			h.child(BlogPostTags(header.Tags))
			h.raw(`</article>`)
		}
		h.raw(`</div>`)
	})
}
