package views

import (
	"github.com/a-h/templ"

	"github.com/timberio/vectorsite/site"
)

// AvatarOptions controls how Avatar renders a team member.
type AvatarOptions struct {
	Size       string // sm, md, lg, xl; defaults to md
	NameSuffix string // appended after the name, e.g. " / May 1st, 2020 / 3 min read"
	SubTitle   string // omitted when empty
	Vertical   bool
}

// Avatar renders the team member with the given id. Unknown ids render the
// id as the name without a photo.
func Avatar(cfg site.Config, id string, opts AvatarOptions) templ.Component {
	size := opts.Size
	if size == "" {
		size = "md"
	}
	member, found := cfg.Member(id)
	if !found {
		member = site.TeamMember{ID: id, Name: id}
	}
	return component(func(h *htmlWriter) {
		h.raw("<div")
		h.class("avatar", "avatar--"+size, templ.KV("avatar--vertical", opts.Vertical))
		h.raw(">")
		if member.Avatar != "" {
			h.raw("<img")
			h.class("avatar__photo", "avatar__photo--"+size)
			h.href("src", member.Avatar)
			h.attr("alt", member.Name)
			h.raw("/>")
		}
		h.raw(`<div class="avatar__intro"><div class="avatar__name">`)
		if member.GitHub != "" {
			h.raw("<a")
			h.href("href", member.GitHub)
			h.raw(` target="_blank" rel="noopener noreferrer">`)
			h.text(member.Name)
			h.raw("</a>")
		} else {
			h.text(member.Name)
		}
		h.text(opts.NameSuffix)
		h.raw("</div>")
		if opts.SubTitle != "" {
			h.raw(`<small class="avatar__subtitle">`)
			h.text(opts.SubTitle)
			h.raw("</small>")
		}
		h.raw("</div></div>")
	})
}

// TeamGrid renders one card per member in list order. An empty list renders
// nothing.
func TeamGrid(members []site.TeamMember) templ.Component {
	return component(func(h *htmlWriter) {
		if len(members) == 0 {
			return
		}
		h.raw(`<div class="community__core-team">`)
		for _, m := range members {
			h.raw(`<div class="avatar avatar--vertical"><img class="avatar__photo avatar__photo--xl"`)
			h.href("src", m.Avatar)
			h.attr("alt", m.Name)
			h.raw(`/><div class="avatar__intro"><h4 class="avatar__name">`)
			h.text(m.Name)
			h.raw(`</h4></div></div>`)
		}
		h.raw(`</div>`)
	})
}
