package folio

import (
	"strings"
	"testing"
)

func TestRoute(t *testing.T) {
	a := newTestApp(t, SiteConfig{})
	site, err := a.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	tests := []struct {
		path   string
		kind   PageKind
		locale string
	}{
		{"/", PageHome, "en"},
		{"/home", PageHome, "en"},
		{"/pt", PageHome, "pt"},
		{"/pt/home/", PageHome, "pt"},
		{"/categories", PageCategories, "en"},
		{"/pt/categories", PageCategories, "pt"},
		{"/resume", PageResume, "en"},
		{"/pt/feed.rss", PageFeed, "pt"},
		{"/story/hello", PageStory, "en"},
		{"/pt/story/ola", PageStory, "pt"},
	}
	for _, tt := range tests {
		p, ok := a.Route(site, tt.path)
		if !ok {
			t.Errorf("Route(%q) not found", tt.path)
			continue
		}
		if p.Kind != tt.kind || p.Locale.ID != tt.locale {
			t.Errorf("Route(%q) = %s/%s, want %s/%s", tt.path, p.Kind, p.Locale.ID, tt.kind, tt.locale)
		}
	}
}

func TestRouteUnknown(t *testing.T) {
	a := newTestApp(t, SiteConfig{})
	site, _ := a.Load()
	for _, p := range []string{"/nope", "/story/ola", "/pt/story/hello", "/pt/a/b/c", "/assets/site.css"} {
		if _, ok := a.Route(site, p); ok {
			t.Errorf("Route(%q) matched, want not found", p)
		}
	}
}

func TestPages(t *testing.T) {
	a := newTestApp(t, SiteConfig{})
	site, _ := a.Load()
	paths := map[string]PageKind{}
	for _, p := range a.Pages(site) {
		paths[p.Path] = p.Kind
	}
	want := map[string]PageKind{
		"/":              PageHome,
		"/home":          PageHome,
		"/categories":    PageCategories,
		"/resume":        PageResume,
		"/pt":            PageHome,
		"/pt/home":       PageHome,
		"/pt/categories": PageCategories,
		"/pt/resume":     PageResume,
		"/story/hello":   PageStory,
		"/story/rust":    PageStory,
		"/pt/story/ola":  PageStory,
	}
	if len(paths) != len(want) {
		t.Errorf("got %d pages, want %d: %v", len(paths), len(want), paths)
	}
	for path, kind := range want {
		if paths[path] != kind {
			t.Errorf("page %q = %q, want %q", path, paths[path], kind)
		}
	}
}

func TestComponent(t *testing.T) {
	a := newTestApp(t, SiteConfig{})
	site, _ := a.Load()
	tests := []struct {
		path string
		want string
	}{
		{"/", "home en Home head=Hello rest=1 switch=/pt/home"},
		{"/pt/home", "home pt Início head=Olá rest=0 switch=/home"},
		{"/pt/categories", "categories pt Categorias go"},
		{"/categories", "categories en Categories go,rust"},
		{"/resume", `resume en "# Resume\n\nEnglish resume."`},
		{"/pt/resume", `resume pt ""`},
		{"/story/rust", "story en Rust Tagged with: rust, go"},
		{"/pt/story/ola", "story pt Olá Marcado com: go"},
	}
	for _, tt := range tests {
		p, ok := a.Route(site, tt.path)
		if !ok {
			t.Fatalf("Route(%q) not found", tt.path)
		}
		if got := renderString(t, a.Component(site, p)); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestChromeMeta(t *testing.T) {
	a := newTestApp(t, SiteConfig{})
	site, _ := a.Load()

	ch := a.chrome(site, Page{Path: "/pt/categories", Locale: Portuguese, Kind: PageCategories})
	if ch.Meta.URL != "https://example.com/pt/categories/" {
		t.Errorf("URL = %q", ch.Meta.URL)
	}
	if ch.Meta.Lang != "pt" {
		t.Errorf("Lang = %q", ch.Meta.Lang)
	}
	if len(ch.Meta.Alternates) != 1 || ch.Meta.Alternates[0].URL != "https://example.com/categories/" {
		t.Errorf("Alternates = %+v", ch.Meta.Alternates)
	}
	if got := ch.T("Home"); got != "Início" {
		t.Errorf("T(Home) = %q", got)
	}
	if !strings.Contains(ch.JSONLD, `"inLanguage":"pt"`) {
		t.Errorf("JSONLD = %s", ch.JSONLD)
	}

	story := a.chrome(site, Page{Path: "/pt/story/ola", Locale: Portuguese, Kind: PageStory})
	if len(story.Meta.Alternates) != 0 {
		t.Errorf("story alternates = %+v, want none", story.Meta.Alternates)
	}
}

func TestStorySwitchTargetsHome(t *testing.T) {
	a := newTestApp(t, SiteConfig{})
	site, _ := a.Load()
	tests := []struct {
		page Page
		want string
	}{
		{Page{Path: "/pt/story/ola", Locale: Portuguese, Kind: PageStory}, "/home"},
		{Page{Path: "/story/hello", Locale: English, Kind: PageStory}, "/pt/home"},
		{Page{Path: "/pt/categories", Locale: Portuguese, Kind: PageCategories}, "/categories"},
	}
	for _, tt := range tests {
		ch := a.chrome(site, tt.page)
		if ch.Nav.Switch.Href != tt.want {
			t.Errorf("%s: switch = %q, want %q", tt.page.Path, ch.Nav.Switch.Href, tt.want)
		}
		if _, ok := a.Route(site, ch.Nav.Switch.Href); !ok {
			t.Errorf("%s: switch target %q does not route", tt.page.Path, ch.Nav.Switch.Href)
		}
	}
}

func TestNotFoundComponent(t *testing.T) {
	a := newTestApp(t, SiteConfig{})
	site, _ := a.Load()
	if got := renderString(t, a.NotFoundComponent(site, "/pt/missing")); got != "notfound pt Página não encontrada" {
		t.Errorf("got %q", got)
	}
}
