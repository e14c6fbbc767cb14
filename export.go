package vectorsite

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/a-h/templ"
	"github.com/sirupsen/logrus"

	"github.com/timberio/vectorsite/tags"
	"github.com/timberio/vectorsite/views"
)

// Export renders every page and feed into dir as a static site. Files are
// laid out so that dir can be served as-is with the same URLs as the server.
func (a *App) Export(ctx context.Context, dir string) error {
	if a.Store == nil {
		if err := a.Open(); err != nil {
			return err
		}
	}
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return fmt.Errorf("export: list posts: %w", err)
	}
	tagLabels, err := a.Cache.ListTags()
	if err != nil {
		return fmt.Errorf("export: list tags: %w", err)
	}

	pages := map[string]templ.Component{
		filepath.Join("community", "index.html"): views.CommunityPage(a.Site),
		filepath.Join("blog", "index.html"):      views.BlogIndexPage(a.Site, posts, ""),
	}
	for _, p := range posts {
		pages[filepath.Join("blog", p.Slug, "index.html")] = views.BlogPostPage(a.Site, p)
	}
	for _, label := range tagLabels {
		tagged, err := a.Cache.ListPosts(label)
		if err != nil {
			return fmt.Errorf("export: list tag %q: %w", label, err)
		}
		pages[filepath.Join("blog", "tags", tags.Slug(label), "index.html")] = views.BlogIndexPage(a.Site, tagged, label)
	}

	for name, cmp := range pages {
		if err := ctx.Err(); err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := cmp.Render(ctx, &buf); err != nil {
			return fmt.Errorf("export: render %s: %w", name, err)
		}
		if err := writeFile(dir, name, buf.Bytes()); err != nil {
			return err
		}
	}

	var feed, sitemap bytes.Buffer
	if err := writeRSS(&feed, a.Site, posts); err != nil {
		return fmt.Errorf("export: feed: %w", err)
	}
	if err := writeSitemap(&sitemap, a.Site.URL, posts, tagLabels); err != nil {
		return fmt.Errorf("export: sitemap: %w", err)
	}
	css, err := stylesheet()
	if err != nil {
		return fmt.Errorf("export: stylesheet: %w", err)
	}
	files := map[string][]byte{
		"feed.xml":                            feed.Bytes(),
		"sitemap.xml":                         sitemap.Bytes(),
		"robots.txt":                          []byte(robotsTxt(a.Site.URL)),
		filepath.Join("public", "styles.css"): css,
	}
	for name, body := range files {
		if err := writeFile(dir, name, body); err != nil {
			return err
		}
	}

	a.log.WithFields(logrus.Fields{
		"dir":   dir,
		"pages": len(pages),
		"posts": len(posts),
	}).Info("site exported")
	return nil
}

func writeFile(dir, name string, body []byte) error {
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
