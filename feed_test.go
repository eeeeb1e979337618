package folio

import (
	"encoding/xml"
	"strings"
	"testing"
)

func TestRenderFeed(t *testing.T) {
	a := newTestApp(t, SiteConfig{Description: "Notes"})
	site, err := a.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	body, err := a.RenderFeed(site, English)
	if err != nil {
		t.Fatalf("RenderFeed: %v", err)
	}
	var feed rssXML
	if err := xml.Unmarshal(body, &feed); err != nil {
		t.Fatalf("invalid xml: %v", err)
	}
	ch := feed.Channel
	if feed.Version != "2.0" || ch.Language != "en" || ch.Link != "https://example.com/" || ch.Description != "Notes" {
		t.Errorf("channel = %+v", ch)
	}
	if len(ch.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(ch.Items))
	}
	first := ch.Items[0]
	if first.Title != "Hello" || first.Link != "https://example.com/story/hello/" || first.GUID != first.Link {
		t.Errorf("first item = %+v", first)
	}
	if !strings.HasPrefix(first.PubDate, "Fri, 01 Mar 2024") {
		t.Errorf("pubDate = %q", first.PubDate)
	}
	if strings.Join(ch.Items[1].Categories, ",") != "rust,go" {
		t.Errorf("categories = %v", ch.Items[1].Categories)
	}

	pt, err := a.RenderFeed(site, Portuguese)
	if err != nil {
		t.Fatalf("RenderFeed(pt): %v", err)
	}
	if !strings.Contains(string(pt), "<link>https://example.com/pt/</link>") {
		t.Errorf("pt feed = %s", pt)
	}
}

func TestRenderSitemap(t *testing.T) {
	a := newTestApp(t, SiteConfig{})
	pages := []Page{
		{Path: "/", Locale: English, Kind: PageHome},
		{Path: "/", Locale: English, Kind: PageHome},
		{Path: "/story/x", Locale: English, Kind: PageStory, Article: &Article{Date: "2024-01-02"}},
	}
	body, err := a.RenderSitemap(pages)
	if err != nil {
		t.Fatalf("RenderSitemap: %v", err)
	}
	var set sitemapURLSet
	if err := xml.Unmarshal(body, &set); err != nil {
		t.Fatalf("invalid xml: %v", err)
	}
	if len(set.URLs) != 2 {
		t.Fatalf("urls = %+v", set.URLs)
	}
	if set.URLs[0].Loc != "https://example.com/" || set.URLs[0].LastMod != "" {
		t.Errorf("first = %+v", set.URLs[0])
	}
	if set.URLs[1].Loc != "https://example.com/story/x/" || set.URLs[1].LastMod != "2024-01-02" {
		t.Errorf("second = %+v", set.URLs[1])
	}
}
