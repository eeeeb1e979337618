package folio

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/labstack/gommon/log"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name           string `env:"SITE_NAME"`            // Site name (default "Blog")
	URL            string `env:"SITE_URL"`             // Canonical URL (default "http://localhost:3000")
	Description    string `env:"SITE_DESCRIPTION"`     // Site description for RSS and meta tags
	Author         string `env:"SITE_AUTHOR"`          // Author name for JSON-LD
	GitHubURL      string `env:"SITE_GITHUB_URL"`      // Navigation link, omitted when empty
	MastodonURL    string `env:"SITE_MASTODON_URL"`    // Navigation link and rel="me"
	MastodonHandle string `env:"SITE_MASTODON_HANDLE"` // fediverse:creator meta tag

	ContentDir   string `env:"CONTENT_DIR"`   // Articles (default "content")
	LocalesDir   string `env:"LOCALES_DIR"`   // UI string catalogs (default "locales")
	ResourcesDir string `env:"RESOURCES_DIR"` // Locale documents such as resume_en.md (default "resources")
	StaticDir    string `env:"STATIC_DIR"`    // Copied verbatim into the output (default "public")
	OutputDir    string `env:"OUTPUT_DIR"`    // Build output (default "build")
	ManifestPath string `env:"MANIFEST_PATH"` // Build manifest SQLite path (default "data/manifest.db")
	Concurrency  int    `env:"BUILD_CONCURRENCY"`

	Addr          string        `env:"ADDR"`           // Preview listen address (default ":3000")
	SessionSecret string        `env:"SESSION_SECRET"` // Random per process when empty
	CookieSecure  bool          `env:"COOKIE_SECURE"`  // Set true for HTTPS
	CacheTTL      time.Duration `env:"CACHE_TTL"`      // Preview content reload interval (default 2s)
	RateLimit     int           `env:"RATE_LIMIT"`     // Preview requests per minute per IP (default 600, negative disables)
}

// ConfigFromEnv reads a SiteConfig from environment variables.
func ConfigFromEnv() (SiteConfig, error) {
	var cfg SiteConfig
	if err := env.Parse(&cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("folio: parse env: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.LocalesDir == "" {
		c.LocalesDir = "locales"
	}
	if c.ResourcesDir == "" {
		c.ResourcesDir = "resources"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.OutputDir == "" {
		c.OutputDir = "build"
	}
	if c.ManifestPath == "" {
		c.ManifestPath = "data/manifest.db"
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 8
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.SessionSecret == "" {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err == nil {
			c.SessionSecret = hex.EncodeToString(b)
		}
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = 2 * time.Second
	}
	if c.RateLimit == 0 {
		c.RateLimit = 600
	}
}

// Sources are the filesystems a site is read from. A nil entry means the
// source does not exist.
type Sources struct {
	Content   fs.FS
	Locales   fs.FS
	Resources fs.FS
	Static    fs.FS
}

// Option configures additional App behavior.
type Option func(*App)

// WithLocales replaces the built-in English/Portuguese registry.
func WithLocales(l *Locales) Option {
	return func(a *App) {
		a.Locales = l
	}
}

// WithSources reads the site from the given filesystems instead of the
// configured directories.
func WithSources(s Sources) Option {
	return func(a *App) {
		a.sources = &s
	}
}

// WithDetector sets the language detector used for articles without a locale.
// Pass nil to disable detection.
func WithDetector(d Detector) Option {
	return func(a *App) {
		a.detector = d
		a.detectorSet = true
	}
}

// WithLogger sets the logger used by builds and the preview server.
func WithLogger(l *log.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the preview server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
