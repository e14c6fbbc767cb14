// Package content loads blog posts from markdown files with YAML front
// matter and derives the metadata the page renderers consume.
package content

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/adrg/frontmatter"

	"github.com/timberio/vectorsite/datefmt"
	"github.com/timberio/vectorsite/markdown"
)

// FrontMatter is the YAML header of a post file.
type FrontMatter struct {
	AuthorID    string   `yaml:"author_id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Date        string   `yaml:"date"`
	Slug        string   `yaml:"slug"`
	Tags        []string `yaml:"tags"`
	Draft       bool     `yaml:"draft"`
}

// PostLink points at another post.
type PostLink struct {
	Title     string
	Permalink string
}

// Metadata is derived from the front matter and the file name. NextItem and
// PrevItem are nil when there is no neighbor in that direction.
type Metadata struct {
	Title       string
	Description string
	DateString  string
	Permalink   string
	Tags        []string
	NextItem    *PostLink // older post
	PrevItem    *PostLink // newer post
}

// Post is a loaded blog post.
type Post struct {
	Slug        string
	SourcePath  string
	FrontMatter FrontMatter
	Metadata    Metadata
	HTML        string // rendered body
	Text        string // plain text of the rendered body
}

// String returns the plain text of the post body.
func (p Post) String() string {
	return p.Text
}

// Link returns a PostLink pointing at p.
func (p Post) Link() PostLink {
	return PostLink{Title: p.Metadata.Title, Permalink: p.Metadata.Permalink}
}

// Permalink returns the canonical path of a post slug.
func Permalink(slug string) string {
	return "/blog/" + slug + "/"
}

const descriptionLimit = 200

// Parse reads one post. name is the file name, used for the slug and date
// when the front matter does not set them.
func Parse(name string, r io.Reader) (Post, error) {
	var fm FrontMatter
	body, err := frontmatter.Parse(r, &fm)
	if err != nil {
		return Post{}, fmt.Errorf("parse front matter %s: %w", name, err)
	}

	html, err := markdown.ToHTML(string(body))
	if err != nil {
		return Post{}, fmt.Errorf("render %s: %w", name, err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Post{}, fmt.Errorf("extract text %s: %w", name, err)
	}

	fileDate, fileSlug, _ := datefmt.FromFilename(name)
	slug := strings.TrimSpace(fm.Slug)
	if slug == "" {
		slug = fileSlug
	}
	date := strings.TrimSpace(fm.Date)
	if date == "" {
		date = fileDate
	}
	title := strings.TrimSpace(fm.Title)
	if title == "" {
		title = slug
	}
	description := strings.TrimSpace(fm.Description)
	if description == "" {
		description = truncate(plainText(doc.Find("p").First()), descriptionLimit)
	}

	return Post{
		Slug:        slug,
		SourcePath:  name,
		FrontMatter: fm,
		Metadata: Metadata{
			Title:       title,
			Description: description,
			DateString:  date,
			Permalink:   Permalink(slug),
			Tags:        fm.Tags,
		},
		HTML: html,
		Text: plainText(doc.Selection),
	}, nil
}

// ParseBytes is Parse over an in-memory file.
func ParseBytes(name string, src []byte) (Post, error) {
	return Parse(name, bytes.NewReader(src))
}

// plainText returns the visible text of sel with whitespace runs collapsed.
func plainText(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	cut := string(r[:limit])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}
