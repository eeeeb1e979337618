package folio

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

// BuildReport summarizes one Build.
type BuildReport struct {
	Written []string // output files written, sorted
	Skipped int      // outputs whose content did not change
	Removed []string // outputs from earlier builds that no longer exist
}

// Build renders every page, feed, the sitemap and static files into
// Config.OutputDir. Pages render in parallel; unchanged outputs are skipped
// and outputs of removed pages are deleted.
func (a *App) Build(ctx context.Context) (BuildReport, error) {
	if err := a.checkViews(); err != nil {
		return BuildReport{}, err
	}
	start := time.Now()

	site, err := a.Load()
	if err != nil {
		return BuildReport{}, err
	}
	manifest, err := OpenManifest(a.Config.ManifestPath)
	if err != nil {
		return BuildReport{}, fmt.Errorf("folio: open manifest: %w", err)
	}
	defer manifest.Close()

	out := &outputWriter{
		dir:      a.Config.OutputDir,
		manifest: manifest,
		logger:   a.Logger,
		seen:     map[string]struct{}{},
	}

	pages := a.Pages(site)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.Config.Concurrency)

	for _, p := range pages {
		g.Go(func() error {
			var buf bytes.Buffer
			if err := a.Component(site, p).Render(gctx, &buf); err != nil {
				return fmt.Errorf("folio: render %s: %w", p.Path, err)
			}
			return out.write(pageFile(p.Path), p.Locale.ID, buf.Bytes())
		})
	}
	for _, loc := range a.Locales.All() {
		g.Go(func() error {
			body, err := a.RenderFeed(site, loc)
			if err != nil {
				return fmt.Errorf("folio: render feed %s: %w", loc.ID, err)
			}
			return out.write(pageFile(a.Locales.PagePath(loc, "feed.rss")), loc.ID, body)
		})
	}
	g.Go(func() error {
		body, err := a.RenderSitemap(pages)
		if err != nil {
			return fmt.Errorf("folio: render sitemap: %w", err)
		}
		return out.write("sitemap.xml", "", body)
	})
	g.Go(func() error {
		return a.publishStatic(gctx, site, out)
	})

	if err := g.Wait(); err != nil {
		return BuildReport{}, err
	}

	removed, err := out.prune()
	if err != nil {
		return BuildReport{}, fmt.Errorf("folio: prune outputs: %w", err)
	}

	sort.Strings(out.written)
	report := BuildReport{Written: out.written, Skipped: out.skipped, Removed: removed}
	a.Logger.Infof("built %d pages: %d written, %d unchanged, %d removed in %s",
		len(pages), len(report.Written), report.Skipped, len(report.Removed), time.Since(start).Round(time.Millisecond))
	return report, nil
}

// publishStatic copies the static tree, shrinking oversized article images.
func (a *App) publishStatic(ctx context.Context, site *Site, out *outputWriter) error {
	if site.Static == nil {
		return nil
	}
	images := articleImages(site.Content.All())
	return fs.WalkDir(site.Static, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if name != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		data, err := fs.ReadFile(site.Static, name)
		if err != nil {
			return fmt.Errorf("folio: read static %s: %w", name, err)
		}
		if _, ok := images[name]; ok {
			resized, changed, err := resizeImage(data)
			if err != nil {
				a.Logger.Warnf("image %s: %v", name, err)
			} else if changed {
				a.Logger.Debugf("resized %s", name)
				data = resized
			}
		}
		return out.write(name, "", data)
	})
}

// pageFile maps a site path to the file serving it: "/" -> "index.html",
// "/pt/categories" -> "pt/categories/index.html", "/pt/feed.rss" -> "pt/feed.rss".
func pageFile(sitePath string) string {
	p := strings.Trim(path.Clean("/"+sitePath), "/")
	if p == "" {
		return "index.html"
	}
	if path.Ext(p) != "" {
		return p
	}
	return p + "/index.html"
}

// outputWriter writes build outputs, consulting the manifest to skip files
// whose content is unchanged.
type outputWriter struct {
	dir      string
	manifest *Manifest
	logger   *log.Logger

	mu      sync.Mutex
	seen    map[string]struct{}
	written []string
	skipped int
}

func (w *outputWriter) write(rel, locale string, data []byte) error {
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])
	full := filepath.Join(w.dir, filepath.FromSlash(rel))

	w.mu.Lock()
	w.seen[rel] = struct{}{}
	w.mu.Unlock()

	prev, err := w.manifest.Hash(rel)
	if err != nil {
		return fmt.Errorf("folio: manifest lookup %s: %w", rel, err)
	}
	if prev == hash {
		if _, err := os.Stat(full); err == nil {
			w.mu.Lock()
			w.skipped++
			w.mu.Unlock()
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("folio: write %s: %w", rel, err)
	}
	if err := w.manifest.Record(ManifestEntry{Path: rel, Locale: locale, Hash: hash}); err != nil {
		return fmt.Errorf("folio: manifest record %s: %w", rel, err)
	}
	w.logger.Debugf("wrote %s", rel)

	w.mu.Lock()
	w.written = append(w.written, rel)
	w.mu.Unlock()
	return nil
}

func (w *outputWriter) prune() ([]string, error) {
	removed, err := w.manifest.Prune(w.seen)
	if err != nil {
		return nil, err
	}
	for _, rel := range removed {
		err := os.Remove(filepath.Join(w.dir, filepath.FromSlash(rel)))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		w.logger.Debugf("removed %s", rel)
	}
	return removed, nil
}
