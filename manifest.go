package folio

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"
)

// Manifest records every file a build wrote, with a content hash, so later
// builds can skip unchanged outputs and prune outputs that disappeared.
type Manifest struct {
	db *sql.DB
}

// ManifestEntry is one output file.
type ManifestEntry struct {
	Path    string // relative to the output directory
	Locale  string // empty for locale independent files
	Hash    string
	BuiltAt time.Time
}

// OpenManifest opens (or creates) the SQLite manifest at path, ensures the
// data directory exists, and runs schema migrations.
func OpenManifest(path string) (*Manifest, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Pragmas apply per connection, so the pool is a single connection that
	// build goroutines share.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	m := &Manifest{db: db}
	if err := m.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return m, nil
}

// Close closes the underlying database connection.
func (m *Manifest) Close() error {
	return m.db.Close()
}

func (m *Manifest) ensureSchema() error {
	_, err := m.db.Exec(`
CREATE TABLE IF NOT EXISTS outputs (
    path TEXT PRIMARY KEY,
    locale TEXT NOT NULL,
    hash TEXT NOT NULL,
    built_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS outputs_locale ON outputs (locale);
`)
	return err
}

// Hash returns the recorded hash of path, or "" when it was never built.
func (m *Manifest) Hash(path string) (string, error) {
	var hash string
	err := sq.Select("hash").From("outputs").
		Where(sq.Eq{"path": path}).
		RunWith(m.db).QueryRow().Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return hash, err
}

// Record upserts one entry.
func (m *Manifest) Record(e ManifestEntry) error {
	if e.BuiltAt.IsZero() {
		e.BuiltAt = time.Now()
	}
	_, err := sq.Insert("outputs").Options("OR REPLACE").
		Columns("path", "locale", "hash", "built_at").
		Values(e.Path, e.Locale, e.Hash, e.BuiltAt.UTC().Format(time.RFC3339)).
		RunWith(m.db).Exec()
	return err
}

// Entries lists recorded outputs ordered by path. An empty locale lists all.
func (m *Manifest) Entries(locale string) ([]ManifestEntry, error) {
	q := sq.Select("path", "locale", "hash", "built_at").From("outputs").OrderBy("path")
	if locale != "" {
		q = q.Where(sq.Eq{"locale": locale})
	}
	rows, err := q.RunWith(m.db).Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ManifestEntry
	for rows.Next() {
		var e ManifestEntry
		var builtAt string
		if err := rows.Scan(&e.Path, &e.Locale, &e.Hash, &builtAt); err != nil {
			return nil, err
		}
		e.BuiltAt, _ = time.Parse(time.RFC3339, builtAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Prune deletes every entry whose path is not in keep and returns the
// removed paths, sorted.
func (m *Manifest) Prune(keep map[string]struct{}) ([]string, error) {
	entries, err := m.Entries("")
	if err != nil {
		return nil, err
	}
	var stale []string
	for _, e := range entries {
		if _, ok := keep[e.Path]; !ok {
			stale = append(stale, e.Path)
		}
	}
	if len(stale) == 0 {
		return nil, nil
	}
	if _, err := sq.Delete("outputs").Where(sq.Eq{"path": stale}).RunWith(m.db).Exec(); err != nil {
		return nil, err
	}
	sort.Strings(stale)
	return stale, nil
}
