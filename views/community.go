package views

import (
	"github.com/a-h/templ"

	"github.com/timberio/vectorsite/site"
)

type connectPanel struct {
	Href        string
	Icon        string
	Title       string
	Description templ.Component
}

var connectPanels = []connectPanel{
	{
		Href:        "https://chat.vector.dev",
		Icon:        "icon-message-circle",
		Title:       "Chat",
		Description: templ.Raw("Ask questions and get help"),
	},
	{
		Href:        "https://twitter.com/timberdotio",
		Icon:        "icon-twitter",
		Title:       "Twitter @timberdotio",
		Description: templ.Raw("Stay up-to-date with <code>#vector</code>"),
	},
	{
		Href:        "https://github.com/timberio/vector",
		Icon:        "icon-github",
		Title:       "Github timberio/vector",
		Description: templ.Raw("Issues, code, and development"),
	},
}

// CommunityPage renders the full community page.
func CommunityPage(cfg site.Config) templ.Component {
	meta := PageMeta{
		Title:  "Community",
		URL:    buildURL(cfg.URL, "community"),
		JSONLD: WebsiteJsonLD(cfg),
	}
	return Layout(cfg, meta, CommunityContent(cfg))
}

// CommunityContent renders the community page body without the layout shell.
func CommunityContent(cfg site.Config) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<header class="hero"><div class="container container--fluid"><h1>`)
		h.text(cfg.Title + " Community")
		h.raw(`</h1>`)
		h.child(MailingListForm(cfg.MailingList, MailingListOptions{Size: "lg", Description: true}))
		h.raw(`</div></header><main>`)

		h.raw(`<section><div class="container">`)
		h.child(AnchoredHeading(2, "connect", "Connect"))
		h.raw(`<div class="row">`)
		for _, p := range connectPanels {
			h.raw(`<div class="col"><a`)
			h.href("href", p.Href)
			h.raw(` target="_blank" rel="noopener noreferrer" class="panel panel--link text--center"><div class="panel--icon"><i`)
			h.class("feather", p.Icon)
			h.raw(`></i></div><div class="panel--title">`)
			h.text(p.Title)
			h.raw(`</div><div class="panel--description">`)
			h.child(p.Description)
			h.raw(`</div></a></div>`)
		}
		h.raw(`</div></div></section>`)

		h.raw(`<section><div class="container">`)
		h.child(AnchoredHeading(2, "contribute", "Contribute"))
		h.raw(`<p>Vector is <a href="https://github.com/timberio/vector">open-source</a> and welcomes contributions. A few guidelines to help you get started:</p>`)
		h.raw(`<ol>`)
		h.raw(`<li>Read our <a href="https://github.com/timberio/vector/blob/master/CONTRIBUTING.md">contribution guide</a>.</li>`)
		h.raw(`<li>Start with <a href="https://github.com/timberio/vector/contribute">good first issues</a>.</li>`)
		h.raw(`<li>Join our <a href="https://chat.vector.dev">chat</a> if you have any questions.</li>`)
		h.raw(`</ol></div></section>`)

		h.raw(`<section><div class="container">`)
		h.child(AnchoredHeading(2, "team", "Meet The Team"))
		h.child(TeamGrid(cfg.Team()))
		h.raw(`</div></section></main>`)
	})
}
