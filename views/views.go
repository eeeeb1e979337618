// Package views holds the default folio components. Sites that want their
// own look pass different ViewFuncs to folio.New.
package views

//go:generate templ generate

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/folio"
	"github.com/eringen/folio/markdown"
)

// Views returns the default component set.
func Views() folio.ViewFuncs {
	return folio.ViewFuncs{
		Home:        Home,
		Categories:  Categories,
		Resume:      Resume,
		Story:       Story,
		NotFound:    NotFound,
		ServerError: ServerError,
	}
}

// Categories renders one collapsible section per tag.
func Categories(page folio.CategoriesPage, ch folio.Chrome) templ.Component {
	return Layout(ch, component(func(h *htmlWriter) {
		h.raw(`<section class="categories"><h1>`)
		h.text(page.Title)
		h.raw("</h1>")
		for _, c := range page.Categories {
			h.raw(`<details class="category" open`)
			h.attr("id", TagAnchor(c.Tag))
			h.raw("><summary>")
			h.text(c.Tag)
			h.raw(` <span class="count">`, strconv.Itoa(len(c.Articles)), "</span></summary><ul>")
			for _, a := range c.Articles {
				articleLink(h, a)
			}
			h.raw("</ul></details>")
		}
		h.raw("</section>")
	}))
}

// Resume renders the locale's resume document; nothing when it is missing.
func Resume(page folio.ResumePage, ch folio.Chrome) templ.Component {
	return Layout(ch, component(func(h *htmlWriter) {
		h.raw(`<section class="resume">`)
		if page.Body != "" {
			h.component(markdown.Markdown(page.Body))
		}
		h.raw("</section>")
	}))
}

// Story renders a full article and its related articles.
func Story(page folio.StoryPage, ch folio.Chrome) templ.Component {
	return Layout(ch, component(func(h *htmlWriter) {
		h.raw(`<article class="story">`)
		h.component(articleContent(page.Article))
		h.raw("</article>")
		if len(page.Related) > 0 {
			h.raw(`<aside class="related"><h2>`)
			h.text(page.RelatedLabel)
			h.raw("</h2><ul>")
			for _, a := range page.Related {
				articleLink(h, a)
			}
			h.raw("</ul></aside>")
		}
	}))
}

// NotFound renders the 404 page.
func NotFound(ch folio.Chrome) templ.Component {
	return errorPage(ch, "404")
}

// ServerError renders the 500 page.
func ServerError(ch folio.Chrome) templ.Component {
	return errorPage(ch, "500")
}

func errorPage(ch folio.Chrome, code string) templ.Component {
	return Layout(ch, component(func(h *htmlWriter) {
		h.raw(`<section class="error"><h1>`, code, "</h1><p>")
		h.text(ch.Meta.Title)
		h.raw("</p><a")
		h.href(ch.Nav.HomeHref)
		h.raw(">")
		h.text(ch.T("Back to home"))
		h.raw("</a></section>")
	}))
}

func articleLink(h *htmlWriter, a folio.Article) {
	h.raw("<li><a")
	h.href(a.Path)
	h.raw(">")
	h.text(a.Title)
	h.raw("</a>")
	if a.Date != "" {
		h.raw(` <time`)
		h.attr("datetime", a.Date)
		h.raw(">")
		h.text(a.Date)
		h.raw("</time>")
	}
	h.raw("</li>")
}
