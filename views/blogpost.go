package views

import (
	"github.com/a-h/templ"

	"github.com/timberio/vectorsite/content"
	"github.com/timberio/vectorsite/markdown"
	"github.com/timberio/vectorsite/site"
	"github.com/timberio/vectorsite/tags"
)

// BlogPostPage renders a full blog post page.
func BlogPostPage(cfg site.Config, post content.Post) templ.Component {
	meta := PageMeta{
		Title:       post.Metadata.Title,
		Description: post.Metadata.Description,
		URL:         buildURL(cfg.URL, "blog", post.Slug),
		OGType:      "article",
		JSONLD:      BlogPostingJsonLD(cfg, post),
	}
	return Layout(cfg, meta, BlogPostContent(cfg, post))
}

// BlogPostContent renders the article without the layout shell.
func BlogPostContent(cfg site.Config, post content.Post) templ.Component {
	header := DeriveHeader(post)
	return component(func(h *htmlWriter) {
		h.raw(`<article class="blog-post"><header class="hero blog-post__header"><div`)
		h.class("domain-bg", header.BackgroundClass(), "blog-post__header-background")
		h.raw(`></div><div class="container blog-post__header-container"><div>`)
		h.child(Avatar(cfg, header.AuthorID, AvatarOptions{
			Size:       "lg",
			NameSuffix: header.NameSuffix(),
			Vertical:   true,
		}))
		h.raw(`<h1>`)
		h.text(header.Title)
		h.raw(`</h1><div class="blog-post__header-tags">`)
		h.child(BlogPostTags(header.Tags))
		h.raw(`</div></div></div></header>`)

		h.raw(`<div class="container container--narrow container--bleed margin-vert--xl">`)
		h.raw(`<section class="markdown">`)
		h.child(markdown.Markdown(post.HTML))
		h.raw(`</section>`)
		h.raw(`<section class="panel bleed" style="text-align: center">`)
		h.child(MailingListForm(cfg.MailingList, MailingListOptions{Size: "lg", Description: true}))
		h.raw(`</section>`)
		if post.Metadata.NextItem != nil || post.Metadata.PrevItem != nil {
			h.raw(`<div class="bleed margin-vert--xl">`)
			h.child(Paginator(post.Metadata.PrevItem, post.Metadata.NextItem))
			h.raw(`</div>`)
		}
		h.raw(`</div></article>`)
	})
}

// BlogPostTags renders tag badges linking to their tag listings.
func BlogPostTags(enriched []tags.Tag) templ.Component {
	return component(func(h *htmlWriter) {
		if len(enriched) == 0 {
			return
		}
		h.raw(`<div class="badges">`)
		for _, t := range enriched {
			h.raw("<a")
			h.href("href", t.Permalink)
			h.class("badge", "badge--rounded", "badge--"+t.Style)
			if t.Category != tags.Uncategorized {
				h.attr("title", t.Category)
			}
			h.raw(">")
			h.text(tags.DisplayValue(t))
			h.raw("</a>")
		}
		h.raw(`</div>`)
	})
}

// Paginator renders links to the newer (prev) and older (next) posts.
func Paginator(prev, next *content.PostLink) templ.Component {
	return component(func(h *htmlWriter) {
		if prev == nil && next == nil {
			return
		}
		h.raw(`<nav class="pagination-nav" aria-label="Blog post page navigation"><div class="pagination-nav__item">`)
		if prev != nil {
			h.raw(`<a class="pagination-nav__link"`)
			h.href("href", prev.Permalink)
			h.raw(`><div class="pagination-nav__sublabel">Newer Post</div><div class="pagination-nav__label">&laquo; `)
			h.text(prev.Title)
			h.raw(`</div></a>`)
		}
		h.raw(`</div><div class="pagination-nav__item pagination-nav__item--next">`)
		if next != nil {
			h.raw(`<a class="pagination-nav__link"`)
			h.href("href", next.Permalink)
			h.raw(`><div class="pagination-nav__sublabel">Older Post</div><div class="pagination-nav__label">`)
			h.text(next.Title)
			h.raw(` &raquo;</div></a>`)
		}
		h.raw(`</div></nav>`)
	})
}
