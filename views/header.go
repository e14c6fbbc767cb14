package views

import (
	"strings"

	"github.com/timberio/vectorsite/content"
	"github.com/timberio/vectorsite/datefmt"
	"github.com/timberio/vectorsite/readingtime"
	"github.com/timberio/vectorsite/tags"
)

// PostHeader holds everything derived for a blog post header.
type PostHeader struct {
	Title     string
	AuthorID  string
	Date      string // empty when the date string cannot be parsed
	DateErr   error
	Reading   readingtime.Stats
	Tags      []tags.Tag
	Domain    string
	HasDomain bool
}

// DeriveHeader computes the header data for post. It never fails: an
// unparseable date leaves Date empty and records DateErr.
func DeriveHeader(post content.Post) PostHeader {
	title := post.FrontMatter.Title
	if title == "" {
		title = post.Metadata.Title
	}
	enriched := tags.Enrich(post.Metadata.Tags)
	domain, hasDomain := tags.Domain(enriched)
	date, dateErr := datefmt.Format(post.Metadata.DateString)
	return PostHeader{
		Title:     title,
		AuthorID:  post.FrontMatter.AuthorID,
		Date:      date,
		DateErr:   dateErr,
		Reading:   readingtime.Estimate(post.String()),
		Tags:      enriched,
		Domain:    domain,
		HasDomain: hasDomain,
	}
}

// NameSuffix is the text appended to the author name: " / date / reading time".
func (h PostHeader) NameSuffix() string {
	var b strings.Builder
	if h.Date != "" {
		b.WriteString(" / ")
		b.WriteString(h.Date)
	}
	b.WriteString(" / ")
	b.WriteString(h.Reading.Text)
	return b.String()
}

// BackgroundClass selects the header background for the post's domain.
func (h PostHeader) BackgroundClass() string {
	if !h.HasDomain {
		return "domain-bg--default"
	}
	slug := tags.Slug(h.Domain)
	if slug == "" {
		return "domain-bg--default"
	}
	return "domain-bg--" + slug
}
