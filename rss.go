package vectorsite

import (
	"encoding/xml"
	"io"
	"time"

	"github.com/timberio/vectorsite/content"
	"github.com/timberio/vectorsite/datefmt"
	"github.com/timberio/vectorsite/site"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate,omitempty"`
	GUID        string   `xml:"guid"`
	Categories  []string `xml:"category"`
}

func writeRSS(w io.Writer, cfg site.Config, posts []content.Post) error {
	base := cfg.URL
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		pubDate := ""
		if t, err := datefmt.Parse(p.Metadata.DateString); err == nil {
			pubDate = t.Format(time.RFC1123Z)
		}
		postURL := BuildURL(base, "blog", p.Slug)
		items = append(items, rssItem{
			Title:       p.Metadata.Title,
			Link:        postURL,
			Description: p.Metadata.Description,
			PubDate:     pubDate,
			GUID:        postURL,
			Categories:  p.Metadata.Tags,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       cfg.Title + " Blog",
			Link:        BuildURL(base, "blog"),
			Description: cfg.Tagline,
			Items:       items,
		},
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(feed)
}
