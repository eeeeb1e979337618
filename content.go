package folio

import (
	"errors"
	"sort"
)

// ErrNotFound is returned when a requested article does not exist.
var ErrNotFound = errors.New("folio: not found")

// ContentStore holds every loaded article and exposes locale and tag views.
// It is never mutated after construction, so it is safe for concurrent readers.
type ContentStore struct {
	articles []Article
}

// NewContentStore keeps articles in the order given. Loaders produce most
// recent first.
func NewContentStore(articles []Article) *ContentStore {
	cp := make([]Article, len(articles))
	copy(cp, articles)
	return &ContentStore{articles: cp}
}

// All returns the full loaded set.
func (s *ContentStore) All() []Article {
	out := make([]Article, len(s.articles))
	copy(out, s.articles)
	return out
}

// Items returns the articles written in loc.
func (s *ContentStore) Items(loc Locale) []Article {
	out := []Article{}
	for _, a := range s.articles {
		if a.Locale == loc.ID {
			out = append(out, a)
		}
	}
	return out
}

// Tagged returns the articles in loc carrying tag.
func (s *ContentStore) Tagged(loc Locale, tag string) []Article {
	out := []Article{}
	for _, a := range s.Items(loc) {
		if a.HasTag(tag) {
			out = append(out, a)
		}
	}
	return out
}

// Typed returns the articles in loc of the given type.
func (s *ContentStore) Typed(loc Locale, typ string) []Article {
	out := []Article{}
	for _, a := range s.Items(loc) {
		if a.Type == typ {
			out = append(out, a)
		}
	}
	return out
}

// Categories groups the articles in loc by tag. Map iteration order is
// unspecified; use Tags for a sorted key list.
func (s *ContentStore) Categories(loc Locale) map[string][]Article {
	m := make(map[string][]Article)
	for _, a := range s.Items(loc) {
		for _, t := range a.Tags {
			if _, seen := m[t]; !seen {
				m[t] = s.Tagged(loc, t)
			}
		}
	}
	return m
}

// Tags returns the distinct tags used in loc, sorted.
func (s *ContentStore) Tags(loc Locale) []string {
	set := make(map[string]struct{})
	for _, a := range s.Items(loc) {
		for _, t := range a.Tags {
			set[t] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// HeadAndRest splits the first limit articles of loc into a featured head and
// the remainder. head is nil when loc has no articles.
func (s *ContentStore) HeadAndRest(loc Locale, limit int) (*Article, []Article) {
	items := s.Items(loc)
	if limit < len(items) {
		items = items[:max(limit, 0)]
	}
	if len(items) == 0 {
		return nil, []Article{}
	}
	head := items[0]
	if len(items) < 2 {
		return &head, []Article{}
	}
	rest := make([]Article, len(items)-1)
	copy(rest, items[1:])
	return &head, rest
}

// Find returns the article in loc with the given slug.
func (s *ContentStore) Find(loc Locale, slug string) (Article, error) {
	for _, a := range s.articles {
		if a.Locale == loc.ID && a.Slug == slug {
			return a, nil
		}
	}
	return Article{}, ErrNotFound
}

// FindPath returns the article published at path.
func (s *ContentStore) FindPath(path string) (Article, error) {
	for _, a := range s.articles {
		if a.Path == path {
			return a, nil
		}
	}
	return Article{}, ErrNotFound
}

// Related finds articles in the same locale sharing at least one tag with current.
func (s *ContentStore) Related(current Article) []Article {
	tagSet := make(map[string]struct{}, len(current.Tags))
	for _, t := range current.Tags {
		tagSet[t] = struct{}{}
	}
	var related []Article
	for _, a := range s.articles {
		if a.Locale != current.Locale || a.Path == current.Path {
			continue
		}
		for _, t := range a.Tags {
			if _, ok := tagSet[t]; ok {
				related = append(related, a)
				break
			}
		}
	}
	return related
}
