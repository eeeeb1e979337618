package folio

import (
	"math"
	"strings"

	"github.com/eringen/folio/markdown"
)

// wordsPerMinute drives the reading time estimate.
const wordsPerMinute = 250

// Article is one piece of published content loaded from the content directory.
type Article struct {
	Title            string
	Description      string
	Image            string
	ImageDescription string
	Tags             []string
	Locale           string // Locale.ID
	Type             string
	Slug             string
	Date             string // YYYY-MM-DD
	Path             string // site path, e.g. "/pt/story/hello"
	Text             string // markdown body
	Source           string // file the article was loaded from
}

// HasTags reports whether the article carries at least one tag.
func (a Article) HasTags() bool {
	return len(a.Tags) > 0
}

// HasTag reports whether tag is one of the article's tags.
func (a Article) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// TagList joins tags with ", ".
func (a Article) TagList() string {
	return strings.Join(a.Tags, ", ")
}

// WordCount is the number of words in the rendered body.
func (a Article) WordCount() int {
	return markdown.WordCount(a.Text)
}

// ReadingMinutes estimates the reading time, rounded up.
func (a Article) ReadingMinutes() int {
	words := a.WordCount()
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / wordsPerMinute))
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Lang        string
	Alternates  []Alternate
}

// Alternate is the same page in another locale, rendered as hreflang links.
type Alternate struct {
	Lang string
	URL  string
}
