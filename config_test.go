package folio

import (
	"testing"
	"time"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SITE_NAME", "Cadernos")
	t.Setenv("SITE_URL", "https://cadernos.example")
	t.Setenv("BUILD_CONCURRENCY", "3")
	t.Setenv("CACHE_TTL", "5s")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.Name != "Cadernos" || cfg.URL != "https://cadernos.example" {
		t.Errorf("site = %q %q", cfg.Name, cfg.URL)
	}
	if cfg.Concurrency != 3 || cfg.CacheTTL != 5*time.Second || !cfg.CookieSecure {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.ContentDir != "content" || cfg.OutputDir != "build" || cfg.RateLimit != 600 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestConfigFromEnvInvalid(t *testing.T) {
	t.Setenv("BUILD_CONCURRENCY", "many")
	if _, err := ConfigFromEnv(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSetDefaults(t *testing.T) {
	var cfg SiteConfig
	cfg.setDefaults()
	if cfg.Name != "Blog" || cfg.Addr != ":3000" || cfg.Concurrency != 8 || cfg.ManifestPath != "data/manifest.db" {
		t.Errorf("defaults = %+v", cfg)
	}
	if len(cfg.SessionSecret) != 64 {
		t.Errorf("session secret length = %d", len(cfg.SessionSecret))
	}
}
