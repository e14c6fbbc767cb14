package views

import (
	"github.com/a-h/templ"

	"github.com/timberio/vectorsite/site"
)

// MailingListDescription is shown above the form when requested.
const MailingListDescription = "The easiest way to stay up-to-date. One email on the 1st of every month. No spam, ever."

// MailingListOptions controls the subscription form variant.
type MailingListOptions struct {
	Size        string // "" or "lg"
	Description bool
}

// MailingListForm renders a plain form that posts the email address to the
// hosted mailing-list endpoint. The browser handles submission and the
// provider handles the result.
func MailingListForm(ml site.MailingList, opts MailingListOptions) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="mailing-list">`)
		if opts.Description {
			h.raw(`<div class="mailing-list--description">`)
			h.text(MailingListDescription)
			h.raw(`</div>`)
		}
		h.raw("<form")
		h.href("action", ml.Action())
		h.raw(` method="post"><div class="subscribe_form"><input`)
		h.class("input", templ.KV("input--"+opts.Size, opts.Size != ""))
		h.raw(` name="email" placeholder="you@email.com" type="email"/><button`)
		h.class("button", "button--primary", templ.KV("button--"+opts.Size, opts.Size != ""))
		h.raw(` type="submit">Subscribe</button></div></form></div>`)
	})
}
