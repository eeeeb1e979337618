package folio

import (
	"path/filepath"
	"reflect"
	"testing"
)

func setupTestManifest(t *testing.T) *Manifest {
	t.Helper()
	m, err := OpenManifest(filepath.Join(t.TempDir(), "data", "manifest.db"))
	if err != nil {
		t.Fatalf("failed to open manifest: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestManifestHashMissing(t *testing.T) {
	m := setupTestManifest(t)
	hash, err := m.Hash("index.html")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if hash != "" {
		t.Errorf("hash = %q, want empty", hash)
	}
}

func TestManifestRecordAndEntries(t *testing.T) {
	m := setupTestManifest(t)
	entries := []ManifestEntry{
		{Path: "pt/index.html", Locale: "pt", Hash: "p1"},
		{Path: "index.html", Locale: "en", Hash: "e1"},
		{Path: "sitemap.xml", Hash: "s1"},
	}
	for _, e := range entries {
		if err := m.Record(e); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}
	if err := m.Record(ManifestEntry{Path: "index.html", Locale: "en", Hash: "e2"}); err != nil {
		t.Fatalf("Record (replace) failed: %v", err)
	}

	hash, err := m.Hash("index.html")
	if err != nil || hash != "e2" {
		t.Errorf("Hash = %q, %v; want e2", hash, err)
	}

	all, err := m.Entries("")
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	var paths []string
	for _, e := range all {
		paths = append(paths, e.Path)
		if e.BuiltAt.IsZero() {
			t.Errorf("%s: BuiltAt not set", e.Path)
		}
	}
	if want := []string{"index.html", "pt/index.html", "sitemap.xml"}; !reflect.DeepEqual(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}

	pt, err := m.Entries("pt")
	if err != nil {
		t.Fatalf("Entries(pt) failed: %v", err)
	}
	if len(pt) != 1 || pt[0].Path != "pt/index.html" {
		t.Errorf("Entries(pt) = %+v", pt)
	}
}

func TestManifestPrune(t *testing.T) {
	m := setupTestManifest(t)
	for _, p := range []string{"a.html", "b.html", "c.html"} {
		if err := m.Record(ManifestEntry{Path: p, Hash: "h"}); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}
	removed, err := m.Prune(map[string]struct{}{"b.html": {}})
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if want := []string{"a.html", "c.html"}; !reflect.DeepEqual(removed, want) {
		t.Errorf("removed = %v, want %v", removed, want)
	}
	left, _ := m.Entries("")
	if len(left) != 1 || left[0].Path != "b.html" {
		t.Errorf("left = %+v", left)
	}

	removed, err = m.Prune(map[string]struct{}{"b.html": {}})
	if err != nil || len(removed) != 0 {
		t.Errorf("second Prune = %v, %v", removed, err)
	}
}
