package folio

import (
	"bytes"
	"encoding/xml"
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

// RenderSitemap returns the sitemap of pages. Duplicate paths are listed once.
func (a *App) RenderSitemap(pages []Page) ([]byte, error) {
	base := a.Config.URL
	seen := make(map[string]bool, len(pages))
	var urls []sitemapURL
	for _, p := range pages {
		loc := BuildURL(base, p.Path)
		if seen[loc] {
			continue
		}
		seen[loc] = true
		u := sitemapURL{Loc: loc}
		if p.Article != nil {
			u.LastMod = p.Article.Date
		}
		urls = append(urls, u)
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(sitemap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
