package folio

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	sessionName = "folio_session"
	localeKey   = "locale"
)

func (a *App) setupMiddleware() {
	e := a.Echo

	e.HTTPErrorHandler = a.httpErrorHandler

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogLatency:  true,
		Skipper: func(c echo.Context) bool {
			return isAsset(c.Request().URL.Path)
		},
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Status >= http.StatusInternalServerError {
				c.Logger().Errorf("%d %s from %s in %s", v.Status, v.URI, v.RemoteIP, v.Latency)
				return nil
			}
			c.Logger().Infof("%d %s from %s in %s", v.Status, v.URI, v.RemoteIP, v.Latency)
			return nil
		},
	}))

	e.Use(middleware.Recover())

	if a.Config.RateLimit > 0 {
		e.Use(rateLimitMiddleware(NewRateLimiter(a.Config.RateLimit, time.Minute)))
	}

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return isAsset(c.Request().URL.Path)
		},
	}))

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' https: data:; font-src 'self'; connect-src 'self'",
	}))

	e.Use(session.Middleware(a.newSessionStore()))

	e.Use(cacheControlMiddleware)
}

// isAsset reports whether path names a file rather than a page.
func isAsset(path string) bool {
	last := path[strings.LastIndex(path, "/")+1:]
	return strings.Contains(last, ".") && last != "feed.rss" && last != "sitemap.xml"
}

// The preview server always revalidates pages so content edits show up.
func cacheControlMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if isAsset(c.Request().URL.Path) {
			c.Response().Header().Set("Cache-Control", "public, max-age=300")
		} else {
			c.Response().Header().Set("Cache-Control", "no-cache")
		}
		return next(c)
	}
}

func (a *App) newSessionStore() *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(a.Config.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60 * 60 * 24 * 365,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Config.CookieSecure,
	}
	return store
}

// sessionLocale returns the locale id remembered for this visitor.
func sessionLocale(c echo.Context) (string, bool) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return "", false
	}
	id, ok := sess.Values[localeKey].(string)
	return id, ok && id != ""
}

// rememberLocale stores loc in the session when it changed.
func (a *App) rememberLocale(c echo.Context, loc Locale) error {
	if id, ok := sessionLocale(c); ok && id == loc.ID {
		return nil
	}
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Values[localeKey] = loc.ID
	return sess.Save(c.Request(), c.Response())
}
