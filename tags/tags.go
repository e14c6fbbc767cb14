// Package tags turns raw post tags such as "domain: networking" into
// categorized tags used for badges, tag listings and header theming.
package tags

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Uncategorized is the category assigned to tags that do not follow the
// "category:value" format.
const Uncategorized = "uncategorized"

// Well-known categories.
const (
	CategoryDomain    = "domain"
	CategoryType      = "type"
	CategoryPlatform  = "platform"
	CategoryProvider  = "provider"
	CategorySource    = "source"
	CategorySink      = "sink"
	CategoryTransform = "transform"
	CategoryGuide     = "guide"
)

// DefaultStyle is the badge style for unknown and uncategorized tags.
const DefaultStyle = "primary"

var styles = map[string]string{
	CategoryDomain:    "blue",
	CategoryType:      "pink",
	CategoryPlatform:  "purple",
	CategoryProvider:  "green",
	CategorySource:    "orange",
	CategorySink:      "orange",
	CategoryTransform: "orange",
	CategoryGuide:     "secondary",
}

// Tag is a raw tag split into its category and value.
type Tag struct {
	Label     string // raw tag as written in front matter
	Category  string
	Value     string
	Style     string // badge color
	Permalink string // tag listing URL
}

// Parse splits a single raw tag on its first ':' separator. Malformed tags
// land in the Uncategorized bucket instead of failing.
func Parse(raw string) Tag {
	label := strings.TrimSpace(raw)
	t := Tag{
		Label:     label,
		Category:  Uncategorized,
		Value:     label,
		Style:     DefaultStyle,
		Permalink: Permalink(label),
	}
	category, value, ok := strings.Cut(label, ":")
	category = strings.TrimSpace(category)
	value = strings.TrimSpace(value)
	if !ok || category == "" || value == "" {
		return t
	}
	t.Category = category
	t.Value = value
	if s, ok := styles[category]; ok {
		t.Style = s
	}
	return t
}

// Enrich parses every raw tag, preserving input order. Duplicates are kept.
func Enrich(raw []string) []Tag {
	out := make([]Tag, 0, len(raw))
	for _, r := range raw {
		out = append(out, Parse(r))
	}
	return out
}

// Domain returns the value of the first tag in the "domain" category.
func Domain(tags []Tag) (string, bool) {
	for _, t := range tags {
		if t.Category == CategoryDomain {
			return t.Value, true
		}
	}
	return "", false
}

// Slug converts a tag label to a URL-safe slug ("domain: networking" becomes
// "domain-networking").
func Slug(label string) string {
	s := strings.ToLower(strings.TrimSpace(label))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// Permalink returns the listing URL for a tag label.
func Permalink(label string) string {
	slug := Slug(label)
	if slug == "" {
		return "/blog/"
	}
	return "/blog/tags/" + slug + "/"
}

// DisplayValue returns the tag value formatted for display.
func DisplayValue(t Tag) string {
	// Casers are stateful and must not be shared across goroutines.
	return cases.Title(language.English).String(t.Value)
}
