package folio

import (
	"reflect"
	"strings"
	"testing"
	"testing/fstest"
)

func TestNewArticleView(t *testing.T) {
	l := NewLocalizer(DefaultCatalog())
	a := Article{Title: "T", Tags: []string{"go", "rust"}, Text: "one two three"}

	v := NewArticleView(a, English, l)
	if v.TaggedLine != "Tagged with: go, rust" {
		t.Errorf("TaggedLine = %q", v.TaggedLine)
	}
	if v.ReadingLine != "3 words; 1 minutes to read" {
		t.Errorf("ReadingLine = %q", v.ReadingLine)
	}

	untagged := NewArticleView(Article{Title: "T", Text: "x"}, English, l)
	if untagged.TaggedLine != "" || untagged.ReadingLine != "" {
		t.Errorf("untagged lines = %q, %q", untagged.TaggedLine, untagged.ReadingLine)
	}
}

func TestNewHomePageLimit(t *testing.T) {
	var articles []Article
	for i := 0; i < 9; i++ {
		articles = append(articles, Article{Title: string(rune('a' + i)), Locale: "en"})
	}
	p := NewHomePage(English, NewContentStore(articles), NewLocalizer(DefaultCatalog()))
	if p.Head == nil || p.Head.Title != "a" {
		t.Fatalf("Head = %v", p.Head)
	}
	if len(p.Remaining) != HomeLimit-1 {
		t.Errorf("len(Remaining) = %d, want %d", len(p.Remaining), HomeLimit-1)
	}
	if p.Title != "Home" || p.MoreLabel != "More" {
		t.Errorf("labels = %q, %q", p.Title, p.MoreLabel)
	}
}

func TestNewHomePageEmpty(t *testing.T) {
	p := NewHomePage(Portuguese, NewContentStore(nil), NewLocalizer(DefaultCatalog()))
	if p.Head != nil || len(p.Remaining) != 0 {
		t.Errorf("empty home = %+v", p)
	}
	if p.Title != "Início" || p.MoreLabel != "Mais" {
		t.Errorf("labels = %q, %q", p.Title, p.MoreLabel)
	}
}

func TestNewCategoriesPage(t *testing.T) {
	p := NewCategoriesPage(English, NewContentStore(testArticles()), NewLocalizer(DefaultCatalog()))
	var tags []string
	for _, c := range p.Categories {
		tags = append(tags, c.Tag)
	}
	if !reflect.DeepEqual(tags, []string{"go", "rust"}) {
		t.Errorf("tags = %v", tags)
	}
	if len(p.Map["go"]) != 2 || len(p.Categories[0].Articles) != 2 {
		t.Errorf("go category = %v", titles(p.Map["go"]))
	}
}

func TestNewResumePage(t *testing.T) {
	res := NewResources(fstest.MapFS{
		"resume_pt.md": {Data: []byte("# Currículo")},
		"resume_en.md": {Data: []byte{0xff, 0xfe, 0xfd}},
	})
	l := NewLocalizer(DefaultCatalog())

	pt := NewResumePage(Portuguese, res, l)
	if pt.Body != "# Currículo" || pt.Title != "Currículo" {
		t.Errorf("pt = %+v", pt)
	}
	if en := NewResumePage(English, res, l); en.Body != "" {
		t.Errorf("invalid utf-8 body = %q, want empty", en.Body)
	}
	if missing := NewResumePage(Locale{ID: "es"}, res, l); missing.Body != "" {
		t.Errorf("missing body = %q", missing.Body)
	}
	if got := NewResumePage(English, NewResources(nil), l).Body; got != "" {
		t.Errorf("nil resources body = %q", got)
	}
}

func TestNewStoryPage(t *testing.T) {
	store := NewContentStore(testArticles())
	a, _ := store.Find(English, "b")
	p := NewStoryPage(English, a, store, NewLocalizer(DefaultCatalog()))
	if p.Article.TaggedLine != "Tagged with: go, rust" {
		t.Errorf("TaggedLine = %q", p.Article.TaggedLine)
	}
	if got := titles(p.Related); !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("Related = %v", got)
	}
}

func TestNewNavBar(t *testing.T) {
	cfg := SiteConfig{GitHubURL: "https://github.com/someone", MastodonURL: "https://mastodon.social/@someone"}
	l := NewLocalizer(DefaultCatalog())

	nav := NewNavBar(cfg, DefaultLocales(), Portuguese, "/pt/categories", l)
	var labels []string
	for _, link := range nav.Links {
		labels = append(labels, link.Label)
	}
	want := []string{"Início", "Categorias", "Currículo", "GitHub", "Mastodon", "Feed"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v, want %v", labels, want)
	}
	if !nav.Links[1].Active || nav.Links[0].Active {
		t.Errorf("active flags = %+v", nav.Links)
	}
	if nav.Switch.Href != "/categories" || nav.Switch.Label != "See in English" {
		t.Errorf("Switch = %+v", nav.Switch)
	}
	if nav.HomeHref != "/pt/home" || nav.FeedHref != "/pt/feed.rss" {
		t.Errorf("hrefs = %q, %q", nav.HomeHref, nav.FeedHref)
	}

	en := NewNavBar(SiteConfig{}, DefaultLocales(), English, "/", l)
	if len(en.Links) != 4 {
		t.Errorf("links without social = %d, want 4", len(en.Links))
	}
	if en.Switch.Href != "/pt/home" || !strings.HasPrefix(en.Switch.Label, "Ver em") {
		t.Errorf("en Switch = %+v", en.Switch)
	}
}

func TestNewNavBarSwitchFromLocaleRoot(t *testing.T) {
	l := NewLocalizer(DefaultCatalog())
	tests := []struct {
		loc  Locale
		path string
		want string
	}{
		{Portuguese, "/pt", "/home"},
		{Portuguese, "/pt/home", "/home"},
		{English, "/", "/pt/home"},
		{English, "/home", "/pt/home"},
	}
	for _, tt := range tests {
		nav := NewNavBar(SiteConfig{}, DefaultLocales(), tt.loc, tt.path, l)
		if nav.Switch.Href != tt.want {
			t.Errorf("switch from %q = %q, want %q", tt.path, nav.Switch.Href, tt.want)
		}
	}
}

func TestNewNavBarSingleLocale(t *testing.T) {
	only, err := NewLocales(English)
	if err != nil {
		t.Fatal(err)
	}
	nav := NewNavBar(SiteConfig{}, only, English, "/", NewLocalizer(nil))
	if nav.Switch != (NavLink{}) {
		t.Errorf("Switch = %+v, want none", nav.Switch)
	}
}

func TestReadingMinutes(t *testing.T) {
	words := strings.Repeat("word ", 251)
	if got := (Article{Text: words}).ReadingMinutes(); got != 2 {
		t.Errorf("251 words = %d minutes, want 2", got)
	}
	if got := (Article{}).ReadingMinutes(); got != 0 {
		t.Errorf("empty = %d minutes, want 0", got)
	}
}
