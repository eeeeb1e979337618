package folio

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies one language variant of the site.
type Locale struct {
	ID          string       // path segment and catalog name, e.g. "pt"
	Tag         language.Tag // used for formatting and negotiation
	SwitchLabel string       // label of a link that switches to this locale
}

// English and Portuguese are the locales the site ships with.
var (
	English    = Locale{ID: "en", Tag: language.English, SwitchLabel: "See in English"}
	Portuguese = Locale{ID: "pt", Tag: language.Portuguese, SwitchLabel: "Ver em Português"}
)

// Locales is an ordered registry of supported locales. The first entry is the default.
type Locales struct {
	list []Locale
	byID map[string]Locale
}

// DefaultLocales returns the built-in English/Portuguese registry.
func DefaultLocales() *Locales {
	l, _ := NewLocales(English, Portuguese)
	return l
}

// NewLocales builds a registry. The first locale becomes the default.
func NewLocales(locales ...Locale) (*Locales, error) {
	if len(locales) == 0 {
		return nil, errors.New("folio: at least one locale is required")
	}
	l := &Locales{byID: make(map[string]Locale, len(locales))}
	for _, loc := range locales {
		id := strings.TrimSpace(loc.ID)
		if id == "" {
			return nil, errors.New("folio: locale id is required")
		}
		if strings.Contains(id, "/") {
			return nil, fmt.Errorf("folio: locale id %q must be a single path segment", id)
		}
		if _, dup := l.byID[id]; dup {
			return nil, fmt.Errorf("folio: duplicate locale %q", id)
		}
		loc.ID = id
		if loc.Tag == language.Und {
			if tag, err := language.Parse(id); err == nil {
				loc.Tag = tag
			}
		}
		l.list = append(l.list, loc)
		l.byID[id] = loc
	}
	return l, nil
}

// Default returns the locale whose paths carry no locale segment.
func (l *Locales) Default() Locale {
	return l.list[0]
}

// All returns every locale in registry order.
func (l *Locales) All() []Locale {
	out := make([]Locale, len(l.list))
	copy(out, l.list)
	return out
}

// Lookup finds a locale by id.
func (l *Locales) Lookup(id string) (Locale, bool) {
	loc, ok := l.byID[id]
	return loc, ok
}

// IsDefault reports whether loc is the default locale.
func (l *Locales) IsDefault(loc Locale) bool {
	return loc.ID == l.list[0].ID
}

// ResolveLocale inspects the first path segment. A segment naming a non-default
// locale selects it; anything else, including an empty path, selects the default.
func (l *Locales) ResolveLocale(segments []string) Locale {
	if len(segments) == 0 {
		return l.Default()
	}
	if loc, ok := l.byID[segments[0]]; ok && !l.IsDefault(loc) {
		return loc
	}
	return l.Default()
}

// Canonical strips a leading non-default locale segment.
func (l *Locales) Canonical(segments []string) []string {
	if len(segments) == 0 {
		return nil
	}
	if loc, ok := l.byID[segments[0]]; ok && !l.IsDefault(loc) {
		return segments[1:]
	}
	return segments
}

// PathFor returns the path equivalent to segments under target. When target
// equals current the path is returned unchanged.
func (l *Locales) PathFor(segments []string, current, target Locale) string {
	if target.ID == current.ID {
		return joinPath(segments)
	}
	rest := segments
	if !l.IsDefault(current) && len(rest) > 0 && rest[0] == current.ID {
		rest = rest[1:]
	}
	if !l.IsDefault(target) {
		rest = append([]string{target.ID}, rest...)
	}
	return joinPath(rest)
}

// LinkTarget returns the locale a language switch on a loc page points to:
// the next locale in registry order, wrapping around.
func (l *Locales) LinkTarget(loc Locale) Locale {
	for i, candidate := range l.list {
		if candidate.ID == loc.ID {
			return l.list[(i+1)%len(l.list)]
		}
	}
	return l.Default()
}

// LinkLabel returns the label used on a loc page to switch away from it.
func (l *Locales) LinkLabel(loc Locale) string {
	return l.LinkTarget(loc).SwitchLabel
}

// PagePath returns the path of a localized page named by slug, e.g.
// "/categories" or "/pt/categories".
func (l *Locales) PagePath(loc Locale, slug string) string {
	segments := SplitPath(slug)
	if !l.IsDefault(loc) {
		segments = append([]string{loc.ID}, segments...)
	}
	return joinPath(segments)
}

// Match picks the registered locale best matching the given language
// preferences (e.g. parsed from Accept-Language).
func (l *Locales) Match(prefs ...language.Tag) Locale {
	if len(prefs) == 0 {
		return l.Default()
	}
	tags := make([]language.Tag, len(l.list))
	for i, loc := range l.list {
		tags[i] = loc.Tag
	}
	_, idx, conf := language.NewMatcher(tags).Match(prefs...)
	if conf == language.No {
		return l.Default()
	}
	return l.list[idx]
}

// SplitPath turns "/pt/categories/" into ["pt", "categories"].
func SplitPath(p string) []string {
	var out []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func joinPath(segments []string) string {
	return "/" + strings.Join(segments, "/")
}
