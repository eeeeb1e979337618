package folio

import (
	"github.com/a-h/templ"
)

// PageKind names the kind of page a path renders.
type PageKind string

const (
	PageHome       PageKind = "home"
	PageCategories PageKind = "categories"
	PageResume     PageKind = "resume"
	PageStory      PageKind = "story"
	PageFeed       PageKind = "feed"
)

// Page is a routable page of the site.
type Page struct {
	Path    string // site path including the locale prefix
	Locale  Locale
	Kind    PageKind
	Article *Article // PageStory only
}

// Pages lists every HTML page of site: home (at the locale root and at
// /home), categories and resume per locale, then one story per article.
func (a *App) Pages(site *Site) []Page {
	var pages []Page
	for _, loc := range a.Locales.All() {
		pages = append(pages,
			Page{Path: a.Locales.PagePath(loc, ""), Locale: loc, Kind: PageHome},
			Page{Path: a.Locales.PagePath(loc, "home"), Locale: loc, Kind: PageHome},
			Page{Path: a.Locales.PagePath(loc, "categories"), Locale: loc, Kind: PageCategories},
			Page{Path: a.Locales.PagePath(loc, "resume"), Locale: loc, Kind: PageResume},
		)
	}
	for _, art := range site.Content.All() {
		loc, ok := a.Locales.Lookup(art.Locale)
		if !ok {
			continue
		}
		pages = append(pages, Page{Path: art.Path, Locale: loc, Kind: PageStory, Article: &art})
	}
	return pages
}

// Route resolves a request path to a page. Unknown paths report false.
func (a *App) Route(site *Site, urlPath string) (Page, bool) {
	segments := SplitPath(urlPath)
	loc := a.Locales.ResolveLocale(segments)
	canonical := a.Locales.Canonical(segments)
	path := joinPath(segments)

	switch len(canonical) {
	case 0:
		return Page{Path: path, Locale: loc, Kind: PageHome}, true
	case 1:
		switch canonical[0] {
		case "home":
			return Page{Path: path, Locale: loc, Kind: PageHome}, true
		case "categories":
			return Page{Path: path, Locale: loc, Kind: PageCategories}, true
		case "resume":
			return Page{Path: path, Locale: loc, Kind: PageResume}, true
		case "feed.rss":
			return Page{Path: path, Locale: loc, Kind: PageFeed}, true
		}
	case 2:
		if art, err := site.Content.FindPath(path); err == nil && art.Locale == loc.ID {
			return Page{Path: path, Locale: loc, Kind: PageStory, Article: &art}, true
		}
	}
	return Page{}, false
}

// Component builds the page model for p and returns the view rendering it.
func (a *App) Component(site *Site, p Page) templ.Component {
	chrome := a.chrome(site, p)
	l := site.Localizer
	switch p.Kind {
	case PageCategories:
		page := NewCategoriesPage(p.Locale, site.Content, l)
		chrome.Meta.Title = page.Title
		return a.Views.Categories(page, chrome)
	case PageResume:
		page := NewResumePage(p.Locale, site.Resources, l)
		chrome.Meta.Title = page.Title
		return a.Views.Resume(page, chrome)
	case PageStory:
		page := NewStoryPage(p.Locale, *p.Article, site.Content, l)
		chrome.Meta.Title = p.Article.Title
		chrome.Meta.Description = p.Article.Description
		chrome.Meta.OGType = "article"
		chrome.JSONLD = BlogPostingJsonLD(*p.Article, a.Config)
		return a.Views.Story(page, chrome)
	default:
		page := NewHomePage(p.Locale, site.Content, l)
		chrome.Meta.Title = page.Title
		return a.Views.Home(page, chrome)
	}
}

// NotFoundComponent renders the 404 page for urlPath in its locale.
func (a *App) NotFoundComponent(site *Site, urlPath string) templ.Component {
	loc := a.Locales.ResolveLocale(SplitPath(urlPath))
	chrome := a.chrome(site, Page{Path: urlPath, Locale: loc})
	chrome.Meta.Title = site.Localizer.String("Page not found", loc)
	return a.Views.NotFound(chrome)
}

func (a *App) chrome(site *Site, p Page) Chrome {
	segments := SplitPath(p.Path)
	meta := PageMeta{
		Title:       a.Config.Name,
		Description: a.Config.Description,
		URL:         BuildURL(a.Config.URL, p.Path),
		OGType:      "website",
		Lang:        p.Locale.Tag.String(),
	}
	for _, other := range a.Locales.All() {
		// Translations of an article do not share its path.
		if other.ID == p.Locale.ID || p.Kind == PageStory {
			continue
		}
		meta.Alternates = append(meta.Alternates, Alternate{
			Lang: other.Tag.String(),
			URL:  BuildURL(a.Config.URL, a.Locales.PathFor(segments, p.Locale, other)),
		})
	}
	nav := NewNavBar(a.Config, a.Locales, p.Locale, joinPath(segments), site.Localizer)
	if p.Kind == PageStory && nav.Switch.Href != "" {
		nav.Switch.Href = a.Locales.PagePath(a.Locales.LinkTarget(p.Locale), "home")
	}
	return Chrome{
		Site:   a.Config,
		Locale: p.Locale,
		Nav:    nav,
		Meta:   meta,
		JSONLD: WebsiteJsonLD(a.Config, p.Locale),
		T: func(key string) string {
			return site.Localizer.String(key, p.Locale)
		},
	}
}
