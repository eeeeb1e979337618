package folio

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog stores the translated UI strings of every locale, keyed by the
// source string (or printf-style format) they replace.
type Catalog struct {
	tables map[string]map[string]string
}

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{tables: map[string]map[string]string{}}
}

// DefaultCatalog returns the catalog embedded in the binary.
func DefaultCatalog() *Catalog {
	sub, err := fs.Sub(EmbeddedLocales, "locales")
	if err != nil {
		panic(err)
	}
	c, err := LoadCatalog(sub)
	if err != nil {
		panic(err)
	}
	return c
}

// LoadCatalog reads every <locale>.yaml file at the root of fsys. A missing
// directory yields an empty catalog.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	c := NewCatalog()
	if fsys == nil {
		return c, nil
	}
	paths, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("folio: glob catalogs: %w", err)
	}
	sort.Strings(paths)
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("folio: read catalog %s: %w", p, err)
		}
		if err := c.addFile(p, data); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) addFile(p string, data []byte) error {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("folio: parse catalog %s: %w", p, err)
	}
	fromName := strings.TrimSuffix(path.Base(p), path.Ext(p))
	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		locale = fromName
	}
	if locale != fromName {
		return fmt.Errorf("folio: catalog %s: locale %q must match file name %q", p, locale, fromName)
	}
	for key, value := range file.Messages {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("folio: catalog %s: message key cannot be blank", p)
		}
		c.Set(locale, key, value)
	}
	if _, ok := c.tables[locale]; !ok {
		c.tables[locale] = map[string]string{}
	}
	return nil
}

// Set adds or replaces one message.
func (c *Catalog) Set(locale, key, value string) {
	t, ok := c.tables[locale]
	if !ok {
		t = map[string]string{}
		c.tables[locale] = t
	}
	t[key] = value
}

// HasLocale reports whether a table exists for locale.
func (c *Catalog) HasLocale(locale string) bool {
	if c == nil {
		return false
	}
	_, ok := c.tables[locale]
	return ok
}

// Message returns the translation of key in locale.
func (c *Catalog) Message(locale, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	t, ok := c.tables[locale]
	if !ok {
		return "", false
	}
	v, ok := t[key]
	return v, ok
}

// Locales returns the locales that have a table, sorted.
func (c *Catalog) Locales() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.tables))
	for l := range c.tables {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Merge returns a new catalog holding c overlaid with other.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	out := NewCatalog()
	for _, src := range []*Catalog{c, other} {
		if src == nil {
			continue
		}
		for locale, t := range src.tables {
			if _, ok := out.tables[locale]; !ok {
				out.tables[locale] = map[string]string{}
			}
			for k, v := range t {
				out.tables[locale][k] = v
			}
		}
	}
	return out
}
