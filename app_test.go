package folio

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/a-h/templ"
	"github.com/labstack/gommon/log"
)

func testContent() fstest.MapFS {
	return fstest.MapFS{
		"en/story/hello.md": {Data: []byte("---\ntitle: Hello\ndate: 2024-03-01\ntags: [go]\n---\nHello there.")},
		"en/story/rust.md":  {Data: []byte("---\ntitle: Rust\ndate: 2024-02-01\ntags: [rust, go]\n---\nRust body.")},
		"pt/story/ola.md":   {Data: []byte("---\ntitle: Olá\ndate: 2024-01-15\ntags: [go]\n---\nOlá mundo.")},
	}
}

func testSources() Sources {
	return Sources{
		Content:   testContent(),
		Resources: fstest.MapFS{"resume_en.md": {Data: []byte("# Resume\n\nEnglish resume.")}},
		Static:    fstest.MapFS{"assets/site.css": {Data: []byte("body{}")}},
	}
}

// stubViews renders each page as a single line describing its model.
func stubViews() ViewFuncs {
	line := func(format string, args ...any) templ.Component {
		return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			_, err := fmt.Fprintf(w, format, args...)
			return err
		})
	}
	return ViewFuncs{
		Home: func(p HomePage, c Chrome) templ.Component {
			head := ""
			if p.Head != nil {
				head = p.Head.Title
			}
			return line("home %s %s head=%s rest=%d switch=%s", c.Locale.ID, p.Title, head, len(p.Remaining), c.Nav.Switch.Href)
		},
		Categories: func(p CategoriesPage, c Chrome) templ.Component {
			tags := make([]string, 0, len(p.Categories))
			for _, cat := range p.Categories {
				tags = append(tags, cat.Tag)
			}
			return line("categories %s %s %s", c.Locale.ID, p.Title, strings.Join(tags, ","))
		},
		Resume: func(p ResumePage, c Chrome) templ.Component {
			return line("resume %s %q", c.Locale.ID, p.Body)
		},
		Story: func(p StoryPage, c Chrome) templ.Component {
			return line("story %s %s %s", c.Locale.ID, p.Article.Title, p.Article.TaggedLine)
		},
		NotFound: func(c Chrome) templ.Component {
			return line("notfound %s %s", c.Locale.ID, c.Meta.Title)
		},
		ServerError: func(c Chrome) templ.Component {
			return line("error %s", c.Locale.ID)
		},
	}
}

func quietLogger() *log.Logger {
	l := log.New("test")
	l.SetOutput(io.Discard)
	return l
}

func newTestApp(t *testing.T, cfg SiteConfig, opts ...Option) *App {
	t.Helper()
	if cfg.URL == "" {
		cfg.URL = "https://example.com"
	}
	if cfg.Name == "" {
		cfg.Name = "Test Blog"
	}
	base := []Option{WithSources(testSources()), WithDetector(nil), WithLogger(quietLogger())}
	return New(cfg, stubViews(), append(base, opts...)...)
}

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}
