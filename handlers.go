package folio

import (
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
)

// handleIndex sends visitors to the home page of their preferred locale.
// The default locale's home is served in place.
func (a *App) handleIndex(c echo.Context) error {
	site, err := a.Cache.Get()
	if err != nil {
		return err
	}
	pref := a.preferredLocale(c)
	if !a.Locales.IsDefault(pref) {
		return c.Redirect(http.StatusFound, a.Locales.PagePath(pref, "home"))
	}
	return Render(c, a.Component(site, Page{Path: "/", Locale: pref, Kind: PageHome}))
}

func (a *App) handlePage(c echo.Context) error {
	site, err := a.Cache.Get()
	if err != nil {
		return err
	}
	urlPath := c.Request().URL.Path
	page, ok := a.Route(site, urlPath)
	if !ok {
		if name, ok := staticFile(site.Static, urlPath); ok {
			return serveStatic(c, site.Static, name)
		}
		return echo.ErrNotFound
	}
	if page.Kind == PageFeed {
		body, err := a.RenderFeed(site, page.Locale)
		if err != nil {
			return err
		}
		return c.Blob(http.StatusOK, "application/rss+xml; charset=utf-8", body)
	}
	if err := a.rememberLocale(c, page.Locale); err != nil {
		c.Logger().Warnf("remember locale: %v", err)
	}
	return Render(c, a.Component(site, page))
}

func (a *App) handleSitemap(c echo.Context) error {
	site, err := a.Cache.Get()
	if err != nil {
		return err
	}
	body, err := a.RenderSitemap(a.Pages(site))
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", body)
}

// preferredLocale picks the locale remembered in the session, then the best
// Accept-Language match, then the default.
func (a *App) preferredLocale(c echo.Context) Locale {
	if id, ok := sessionLocale(c); ok {
		if loc, ok := a.Locales.Lookup(id); ok {
			return loc
		}
	}
	if accept := strings.TrimSpace(c.Request().Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return a.Locales.Match(tags...)
		}
	}
	return a.Locales.Default()
}

// serveStatic writes name from fsys with a content type derived from its extension.
func serveStatic(c echo.Context, fsys fs.FS, name string) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return echo.ErrNotFound
	}
	ct := mime.TypeByExtension(path.Ext(name))
	if ct == "" {
		ct = http.DetectContentType(data)
	}
	return c.Blob(http.StatusOK, ct, data)
}

func staticFile(fsys fs.FS, urlPath string) (string, bool) {
	if fsys == nil {
		return "", false
	}
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		return "", false
	}
	info, err := fs.Stat(fsys, name)
	if err != nil || info.IsDir() {
		return "", false
	}
	return name, true
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	site, loadErr := a.Cache.Get()
	if loadErr != nil {
		c.Logger().Errorf("server error: %v (load: %v)", err, loadErr)
		_ = c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.NotFoundComponent(site, c.Request().URL.Path))
		return
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		loc := a.Locales.ResolveLocale(SplitPath(c.Request().URL.Path))
		chrome := a.chrome(site, Page{Path: c.Request().URL.Path, Locale: loc})
		chrome.Meta.Title = site.Localizer.String("Something went wrong", loc)
		_ = RenderStatus(c, code, a.Views.ServerError(chrome))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
