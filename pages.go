package folio

// HomeLimit is how many articles the home page shows, featured one included.
const HomeLimit = 6

// ArticleView is an article with its localized metadata lines.
type ArticleView struct {
	Article
	TaggedLine  string // empty when the article has no tags
	ReadingLine string // empty when the article has no tags
}

// NewArticleView localizes the metadata lines of a.
func NewArticleView(a Article, loc Locale, l *Localizer) ArticleView {
	v := ArticleView{Article: a}
	if a.HasTags() {
		v.TaggedLine = l.Format("Tagged with: %@", loc, a.TagList())
		v.ReadingLine = l.Format("%d words; %d minutes to read", loc, a.WordCount(), a.ReadingMinutes())
	}
	return v
}

func articleViews(articles []Article, loc Locale, l *Localizer) []ArticleView {
	out := make([]ArticleView, len(articles))
	for i, a := range articles {
		out[i] = NewArticleView(a, loc, l)
	}
	return out
}

// HomePage features the latest article and lists a few more.
type HomePage struct {
	Locale    Locale
	Title     string
	MoreLabel string
	Head      *ArticleView
	Remaining []ArticleView
}

// NewHomePage builds the home page of loc.
func NewHomePage(loc Locale, store *ContentStore, l *Localizer) HomePage {
	head, rest := store.HeadAndRest(loc, HomeLimit)
	p := HomePage{
		Locale:    loc,
		Title:     l.String("Home", loc),
		MoreLabel: l.String("More", loc),
		Remaining: articleViews(rest, loc, l),
	}
	if head != nil {
		v := NewArticleView(*head, loc, l)
		p.Head = &v
	}
	return p
}

// Category is one tag and the articles carrying it.
type Category struct {
	Tag      string
	Articles []Article
}

// CategoriesPage lists articles grouped by tag.
type CategoriesPage struct {
	Locale     Locale
	Title      string
	Map        map[string][]Article
	Categories []Category // Map sorted by tag
}

// NewCategoriesPage builds the categories page of loc.
func NewCategoriesPage(loc Locale, store *ContentStore, l *Localizer) CategoriesPage {
	m := store.Categories(loc)
	tags := store.Tags(loc)
	cats := make([]Category, 0, len(tags))
	for _, t := range tags {
		cats = append(cats, Category{Tag: t, Articles: m[t]})
	}
	return CategoriesPage{
		Locale:     loc,
		Title:      l.String("Categories", loc),
		Map:        m,
		Categories: cats,
	}
}

// ResumePage renders the resume document of a locale.
type ResumePage struct {
	Locale Locale
	Title  string
	Body   string // markdown, empty when no resume exists for the locale
}

// NewResumePage builds the resume page of loc.
func NewResumePage(loc Locale, res *Resources, l *Localizer) ResumePage {
	return ResumePage{
		Locale: loc,
		Title:  l.String("Resume", loc),
		Body:   res.Text(ResumeName(loc)),
	}
}

// StoryPage renders a single article.
type StoryPage struct {
	Locale       Locale
	Article      ArticleView
	RelatedLabel string
	Related      []Article
}

// NewStoryPage builds the page of a, with related articles from store.
func NewStoryPage(loc Locale, a Article, store *ContentStore, l *Localizer) StoryPage {
	return StoryPage{
		Locale:       loc,
		Article:      NewArticleView(a, loc, l),
		RelatedLabel: l.String("Related", loc),
		Related:      store.Related(a),
	}
}

// NavLink is one entry of the navigation bar.
type NavLink struct {
	Label  string
	Href   string
	Active bool
}

// NavBar is the top navigation: site links plus a language switch.
type NavBar struct {
	Links    []NavLink
	Switch   NavLink // zero when the site has a single locale
	HomeHref string
	FeedHref string
}

// NewNavBar builds the navigation bar shown on currentPath.
func NewNavBar(cfg SiteConfig, locales *Locales, loc Locale, currentPath string, l *Localizer) NavBar {
	link := func(label, href string) NavLink {
		return NavLink{Label: l.String(label, loc), Href: href, Active: href == currentPath}
	}
	nav := NavBar{
		HomeHref: locales.PagePath(loc, "home"),
		FeedHref: locales.PagePath(loc, "feed.rss"),
	}
	nav.Links = []NavLink{
		link("Home", nav.HomeHref),
		link("Categories", locales.PagePath(loc, "categories")),
		link("Resume", locales.PagePath(loc, "resume")),
	}
	if cfg.GitHubURL != "" {
		nav.Links = append(nav.Links, link("GitHub", cfg.GitHubURL))
	}
	if cfg.MastodonURL != "" {
		nav.Links = append(nav.Links, link("Mastodon", cfg.MastodonURL))
	}
	nav.Links = append(nav.Links, link("Feed", nav.FeedHref))

	target := locales.LinkTarget(loc)
	if target.ID != loc.ID {
		segments := SplitPath(currentPath)
		href := locales.PathFor(segments, loc, target)
		// "/" redirects to the remembered locale, so a switch from a locale
		// root goes to the target's /home instead.
		if len(locales.Canonical(segments)) == 0 {
			href = locales.PagePath(target, "home")
		}
		nav.Switch = NavLink{
			Label: l.String(locales.LinkLabel(loc), loc),
			Href:  href,
		}
	}
	return nav
}

// Chrome is the page-independent frame around every page: site settings,
// navigation and head metadata.
type Chrome struct {
	Site   SiteConfig
	Locale Locale
	Nav    NavBar
	Meta   PageMeta
	JSONLD string
	T      func(key string) string // Localizer.String bound to Locale
}
