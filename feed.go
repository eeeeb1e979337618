package folio

import (
	"bytes"
	"encoding/xml"
	"time"
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
	Language    string    `xml:"language"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Categories  []string `xml:"category,omitempty"`
	PubDate     string   `xml:"pubDate,omitempty"`
	GUID        string   `xml:"guid"`
}

// RenderFeed returns the RSS 2.0 feed of the articles written in loc.
func (a *App) RenderFeed(site *Site, loc Locale) ([]byte, error) {
	base := a.Config.URL
	articles := site.Content.Items(loc)
	items := make([]rssItem, 0, len(articles))
	for _, art := range articles {
		pubDate := ""
		if t, err := time.Parse("2006-01-02", art.Date); err == nil {
			pubDate = t.Format(time.RFC1123Z)
		}
		articleURL := BuildURL(base, art.Path)
		items = append(items, rssItem{
			Title:       art.Title,
			Link:        articleURL,
			Description: art.Description,
			Categories:  art.Tags,
			PubDate:     pubDate,
			GUID:        articleURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Name,
			Link:        BuildURL(base, a.Locales.PagePath(loc, "")),
			Description: a.Config.Description,
			Language:    loc.Tag.String(),
			Items:       items,
		},
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(feed); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
