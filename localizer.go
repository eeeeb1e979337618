package folio

import (
	"fmt"
	"regexp"
)

// Localizer resolves UI strings for a locale. A missing table or key falls
// back to the key itself.
type Localizer struct {
	catalog *Catalog
}

// NewLocalizer returns a Localizer over c. A nil catalog is valid and echoes
// every key.
func NewLocalizer(c *Catalog) *Localizer {
	return &Localizer{catalog: c}
}

// String returns the translation of key for loc, or key when there is none.
func (l *Localizer) String(key string, loc Locale) string {
	if l == nil {
		return key
	}
	if v, ok := l.catalog.Message(loc.ID, key); ok {
		return v
	}
	return key
}

// Format resolves formatKey and substitutes args positionally. Cocoa style
// verbs such as %@ and %ld are accepted alongside Go verbs.
func (l *Localizer) Format(formatKey string, loc Locale, args ...any) string {
	return fmt.Sprintf(goVerbs(l.String(formatKey, loc)), args...)
}

var reVerb = regexp.MustCompile(`%%|%(\d+\$)?([-+ #0]*\d*(?:\.\d+)?)(?:ll|l|h|hh|q|z|t|j)?([@dDiuUoOxXfFeEgGsScCp])`)

// goVerbs rewrites printf verbs from Cocoa string files into fmt verbs.
func goVerbs(tmpl string) string {
	return reVerb.ReplaceAllStringFunc(tmpl, func(v string) string {
		if v == "%%" {
			return v
		}
		m := reVerb.FindStringSubmatch(v)
		index, flags, verb := m[1], m[2], m[3]
		switch verb {
		case "@", "S", "C":
			verb = "v"
		case "D", "i", "u", "U":
			verb = "d"
		case "O":
			verb = "o"
		}
		if index != "" {
			index = "[" + index[:len(index)-1] + "]"
		}
		return "%" + flags + index + verb
	})
}
