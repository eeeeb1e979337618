// Package folio is a bilingual static site generator for a personal blog.
// It loads markdown articles, partitions them by locale and tag, localizes
// the UI through string catalogs and renders every page with templ, either
// to disk (Build) or live through an Echo preview server (Start).
//
// Users provide their own templ components via the ViewFuncs struct; folio
// builds the page models they render.
package folio

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// ViewFuncs holds user-provided templ components that folio calls when
// rendering pages.
type ViewFuncs struct {
	Home        func(page HomePage, chrome Chrome) templ.Component
	Categories  func(page CategoriesPage, chrome Chrome) templ.Component
	Resume      func(page ResumePage, chrome Chrome) templ.Component
	Story       func(page StoryPage, chrome Chrome) templ.Component
	NotFound    func(chrome Chrome) templ.Component
	ServerError func(chrome Chrome) templ.Component
}

// App is the central folio application. It wires together the locale
// registry, content loading, page models and user-provided templates.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Locales *Locales
	Views   ViewFuncs
	Cache   *SiteCache
	Logger  *log.Logger

	sources      *Sources
	detector     Detector
	detectorSet  bool
	customRoutes []func(*App)
}

// Site is one consistent snapshot of everything pages are built from.
type Site struct {
	Content   *ContentStore
	Localizer *Localizer
	Resources *Resources
	Static    fs.FS
}

// New creates a folio App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:  cfg,
		Echo:    echo.New(),
		Locales: DefaultLocales(),
		Views:   views,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Logger == nil {
		a.Logger = log.New("folio")
		a.Logger.SetLevel(log.INFO)
	}
	if !a.detectorSet {
		a.detector = NewLanguageDetector(a.Locales)
	}
	a.Echo.Logger = a.Logger
	a.Cache = NewSiteCache(a.Load, cfg.CacheTTL)
	return a
}

// Load reads content, catalogs and resources into a fresh Site.
func (a *App) Load() (*Site, error) {
	src := a.resolveSources()

	var articles []Article
	if src.Content != nil {
		loader := &Loader{Locales: a.Locales, Detector: a.detector}
		var err error
		articles, err = loader.Load(src.Content)
		if err != nil {
			return nil, err
		}
	}

	userCatalog, err := LoadCatalog(src.Locales)
	if err != nil {
		return nil, err
	}

	return &Site{
		Content:   NewContentStore(articles),
		Localizer: NewLocalizer(DefaultCatalog().Merge(userCatalog)),
		Resources: NewResources(src.Resources),
		Static:    src.Static,
	}, nil
}

func (a *App) resolveSources() Sources {
	if a.sources != nil {
		return *a.sources
	}
	return Sources{
		Content:   dirFS(a.Config.ContentDir),
		Locales:   dirFS(a.Config.LocalesDir),
		Resources: dirFS(a.Config.ResourcesDir),
		Static:    dirFS(a.Config.StaticDir),
	}
}

// dirFS returns nil when dir does not exist.
func dirFS(dir string) fs.FS {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil
	}
	return os.DirFS(dir)
}

// Start sets up middleware and routes and runs the preview server.
func (a *App) Start() error {
	if err := a.checkViews(); err != nil {
		return err
	}
	if _, err := a.Cache.Get(); err != nil {
		return fmt.Errorf("folio: initial load: %w", err)
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo
	e.GET("/", a.handleIndex)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/*", a.handlePage)
}

func (a *App) checkViews() error {
	v := a.Views
	if v.Home == nil || v.Categories == nil || v.Resume == nil || v.Story == nil || v.NotFound == nil || v.ServerError == nil {
		return errors.New("folio: every ViewFuncs component is required")
	}
	return nil
}

// Close shuts the preview server down.
func (a *App) Close() error {
	return a.Echo.Close()
}
