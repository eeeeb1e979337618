// Package markdown renders article and resume bodies to HTML as templ components.
package markdown

import (
	"bytes"
	"context"
	"html"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/russross/blackfriday/v2"
)

const extensions = blackfriday.CommonExtensions | blackfriday.AutoHeadingIDs | blackfriday.Footnotes

// Markdown returns a templ.Component that renders md as HTML.
func Markdown(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		RenderMarkdown(&buf, content)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// RenderMarkdown writes the HTML representation of md to buf.
func RenderMarkdown(buf *bytes.Buffer, md string) {
	md = strings.ReplaceAll(md, "\r\n", "\n")
	buf.Write(blackfriday.Run([]byte(md),
		blackfriday.WithExtensions(extensions),
		blackfriday.WithRenderer(newRenderer()),
	))
}

// PlainText returns the visible text of md with all markup removed.
func PlainText(md string) string {
	var buf bytes.Buffer
	RenderMarkdown(&buf, md)
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		return md
	}
	return doc.Text()
}

// WordCount counts whitespace separated words in the rendered text of md.
func WordCount(md string) int {
	if strings.TrimSpace(md) == "" {
		return 0
	}
	return len(strings.Fields(PlainText(md)))
}

// renderer adds a language badge to fenced code blocks.
type renderer struct {
	*blackfriday.HTMLRenderer
}

func newRenderer() *renderer {
	return &renderer{
		HTMLRenderer: blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
			Flags: blackfriday.CommonHTMLFlags,
		}),
	}
}

func (r *renderer) RenderNode(w io.Writer, node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
	if node.Type == blackfriday.CodeBlock {
		r.renderCode(w, node)
		return blackfriday.GoToNext
	}
	return r.HTMLRenderer.RenderNode(w, node, entering)
}

func (r *renderer) renderCode(w io.Writer, node *blackfriday.Node) {
	lang := ""
	if fields := strings.Fields(string(node.Info)); len(fields) > 0 {
		lang = html.EscapeString(fields[0])
	}
	code := html.EscapeString(string(node.Literal))
	if lang == "" {
		io.WriteString(w, `<pre class="code-block"><code>`+code+"</code></pre>\n")
		return
	}
	io.WriteString(w, `<div class="code-block-wrapper"><span class="code-lang code-lang-`+lang+`">`+lang+`</span>`)
	io.WriteString(w, `<pre class="code-block"><code class="language-`+lang+`">`+code+"</code></pre></div>\n")
}
