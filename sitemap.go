package vectorsite

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/timberio/vectorsite/content"
	"github.com/timberio/vectorsite/datefmt"
	"github.com/timberio/vectorsite/tags"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

func writeSitemap(w io.Writer, base string, posts []content.Post, tagLabels []string) error {
	urls := []sitemapURL{
		{Loc: BuildURL(base, "community")},
		{Loc: BuildURL(base, "blog")},
	}
	for _, p := range posts {
		lastMod := ""
		if t, err := datefmt.Parse(p.Metadata.DateString); err == nil {
			lastMod = t.Format(datefmt.ISODate)
		}
		urls = append(urls, sitemapURL{
			Loc:     BuildURL(base, "blog", p.Slug),
			LastMod: lastMod,
		})
	}
	for _, label := range tagLabels {
		urls = append(urls, sitemapURL{Loc: BuildURL(base, "blog", "tags", tags.Slug(label))})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(sitemap)
}

func robotsTxt(base string) string {
	return fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s\n", strings.TrimSuffix(base, "/")+"/sitemap.xml")
}
