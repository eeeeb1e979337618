package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/folio"
)

// htmlWriter writes markup and remembers the first error.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(parts ...string) {
	for _, p := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, p)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// href writes an href attribute, neutralizing unsafe URL schemes.
func (h *htmlWriter) href(url string) {
	h.attr("href", string(templ.URL(url)))
}

func (h *htmlWriter) component(c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// component wraps fn as a templ.Component.
func component(fn func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}
		fn(h)
		return h.err
	})
}

// TagAnchor is the element id of a tag section on the categories page.
func TagAnchor(tag string) string {
	if slug := folio.Slugify(tag); slug != "" {
		return "tag-" + slug
	}
	return "tag"
}

// pageTitle joins the page title with the site name.
func pageTitle(ch folio.Chrome) string {
	if ch.Meta.Title == "" || ch.Meta.Title == ch.Site.Name {
		return ch.Site.Name
	}
	return ch.Meta.Title + " · " + ch.Site.Name
}

type metaTag struct {
	Property string
	Content  string
}

// ogTags lists the Open Graph properties that have a value.
func ogTags(ch folio.Chrome) []metaTag {
	m := ch.Meta
	all := []metaTag{
		{"og:title", m.Title},
		{"og:description", m.Description},
		{"og:url", m.URL},
		{"og:type", m.OGType},
		{"og:site_name", ch.Site.Name},
		{"og:locale", m.Lang},
	}
	tags := all[:0]
	for _, t := range all {
		if t.Content != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// jsonLD writes the structured data script. s comes from json.Marshal,
// which escapes <, > and &.
func jsonLD(s string) templ.Component {
	if s == "" {
		return templ.NopComponent
	}
	return templ.Raw(`<script type="application/ld+json">` + s + `</script>`)
}

func navClass(active bool) string {
	if active {
		return "nav-link active"
	}
	return "nav-link"
}
