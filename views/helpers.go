package views

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/timberio/vectorsite/content"
	"github.com/timberio/vectorsite/site"
)

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block using cfg values.
func WebsiteJsonLD(cfg site.Config) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Title,
		"url":      buildURL(cfg.URL),
	}
	if cfg.Tagline != "" {
		data["description"] = cfg.Tagline
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD produces a Schema.org BlogPosting JSON-LD block for a post.
func BlogPostingJsonLD(cfg site.Config, post content.Post) string {
	postURL := buildURL(cfg.URL, "blog", post.Slug)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Metadata.Title,
		"description":   post.Metadata.Description,
		"datePublished": post.Metadata.DateString,
		"url":           postURL,
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  cfg.Title,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if m, ok := cfg.Member(post.FrontMatter.AuthorID); ok {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  m.Name,
		}
	}
	if len(post.Metadata.Tags) > 0 {
		data["keywords"] = strings.Join(post.Metadata.Tags, ", ")
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
