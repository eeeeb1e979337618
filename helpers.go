package folio

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify converts a title to a URL-safe slug. Accents are folded, so
// "Programação" becomes "programacao".
func Slugify(s string) string {
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// BuildURL joins a base URL with a site path. Directory paths get a trailing
// slash; paths naming a file (feed.rss) are left alone.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	joined := path.Join(pathSegments...)
	u.Path = path.Join("/", u.Path, joined)
	if joined != "" && path.Ext(joined) == "" && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String()
}

// AbsoluteURL resolves ref against base unless it already is absolute.
func AbsoluteURL(base, ref string) string {
	if u, err := url.Parse(ref); err == nil && u.IsAbs() {
		return ref
	}
	return BuildURL(base, ref)
}

// FilterEmpty trims values and drops empty ones.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema using SiteConfig.
func WebsiteJsonLD(cfg SiteConfig, loc Locale) string {
	data := map[string]interface{}{
		"@context":   "https://schema.org",
		"@type":      "WebSite",
		"name":       cfg.Name,
		"url":        BuildURL(cfg.URL),
		"inLanguage": loc.Tag.String(),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD returns a JSON-LD string for a BlogPosting schema.
func BlogPostingJsonLD(article Article, cfg SiteConfig) string {
	articleURL := BuildURL(cfg.URL, article.Path)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      article.Title,
		"description":   article.Description,
		"datePublished": article.Date,
		"inLanguage":    article.Locale,
		"wordCount":     article.WordCount(),
		"url":           articleURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   articleURL,
		},
	}
	if article.Image != "" {
		data["image"] = AbsoluteURL(cfg.URL, article.Image)
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	if cfg.Name != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		}
	}
	if article.HasTags() {
		data["keywords"] = article.TagList()
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
