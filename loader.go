package folio

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultArticleType is used when neither front matter nor directory name a type.
const DefaultArticleType = "story"

// Loader reads articles from a content tree laid out as
// [<locale>/][<type>/]<slug>.md with YAML (---) or TOML (+++) front matter.
type Loader struct {
	Locales  *Locales
	Detector Detector // optional
}

// Load walks fsys and returns published articles, most recent first.
func (l *Loader) Load(fsys fs.FS) ([]Article, error) {
	var articles []Article
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if ext := path.Ext(p); ext != ".md" && ext != ".markdown" {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		a, published, err := l.parse(p, data)
		if err != nil {
			return err
		}
		if published {
			articles = append(articles, a)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("folio: load content: %w", err)
	}
	sort.SliceStable(articles, func(i, j int) bool {
		if articles[i].Date != articles[j].Date {
			return articles[i].Date > articles[j].Date
		}
		return articles[i].Source < articles[j].Source
	})
	return articles, nil
}

func (l *Loader) parse(p string, data []byte) (Article, bool, error) {
	fm, body, err := ParseFrontMatter(data)
	if err != nil {
		return Article{}, false, fmt.Errorf("%s: %w", p, err)
	}

	dirs := strings.Split(path.Dir(p), "/")
	if dirs[0] == "." {
		dirs = nil
	}

	loc, dirs := l.locale(fm, dirs, body)

	typ := stringField(fm, "type")
	if typ == "" && len(dirs) > 0 {
		typ = dirs[0]
	}
	if typ == "" {
		typ = DefaultArticleType
	}
	typ = Slugify(typ)

	slug := stringField(fm, "slug")
	if slug == "" {
		slug = strings.TrimSuffix(path.Base(p), path.Ext(p))
	}
	slug = Slugify(slug)
	if slug == "" {
		return Article{}, false, fmt.Errorf("%s: cannot derive a slug", p)
	}

	title := stringField(fm, "title")
	if title == "" {
		title = slug
	}

	published := true
	if v, ok := fm["published"].(bool); ok {
		published = v
	}

	return Article{
		Title:            title,
		Description:      stringField(fm, "description"),
		Image:            stringField(fm, "image"),
		ImageDescription: firstNonEmpty(stringField(fm, "imageDescription"), stringField(fm, "image_description")),
		Tags:             tagsField(fm, "tags"),
		Locale:           loc.ID,
		Type:             typ,
		Slug:             slug,
		Date:             stringField(fm, "date"),
		Path:             l.Locales.PagePath(loc, typ+"/"+slug),
		Text:             body,
		Source:           p,
	}, published, nil
}

// locale picks the article locale: front matter, then leading directory, then
// language detection, then the default. The locale directory, if any, is
// removed from dirs.
func (l *Loader) locale(fm map[string]interface{}, dirs []string, body string) (Locale, []string) {
	var fromDir *Locale
	if len(dirs) > 0 {
		if loc, ok := l.Locales.Lookup(dirs[0]); ok {
			fromDir = &loc
			dirs = dirs[1:]
		}
	}
	if id := stringField(fm, "lang"); id != "" {
		if loc, ok := l.Locales.Lookup(id); ok {
			return loc, dirs
		}
	}
	if fromDir != nil {
		return *fromDir, dirs
	}
	if l.Detector != nil {
		if id, ok := l.Detector.Detect(body); ok {
			if loc, ok := l.Locales.Lookup(id); ok {
				return loc, dirs
			}
		}
	}
	return l.Locales.Default(), dirs
}

// ParseFrontMatter splits data into its front matter fields and body. Files
// without front matter have an empty field map.
func ParseFrontMatter(data []byte) (map[string]interface{}, string, error) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	str := strings.ReplaceAll(string(data), "\r\n", "\n")

	for _, delim := range []string{"---", "+++"} {
		if !strings.HasPrefix(str, delim+"\n") {
			continue
		}
		rest := str[len(delim)+1:]
		var raw, body string
		if strings.HasPrefix(rest, delim+"\n") || rest == delim {
			raw, body = "", strings.TrimPrefix(strings.TrimPrefix(rest, delim), "\n")
		} else {
			end := strings.Index(rest, "\n"+delim)
			if end < 0 {
				return nil, "", fmt.Errorf("unterminated front matter")
			}
			raw = rest[:end]
			body = strings.TrimPrefix(rest[end+1+len(delim):], "\n")
		}
		fm := map[string]interface{}{}
		var err error
		if delim == "---" {
			err = yaml.Unmarshal([]byte(raw), &fm)
		} else {
			err = toml.Unmarshal([]byte(raw), &fm)
		}
		if err != nil {
			return nil, "", fmt.Errorf("parse front matter: %w", err)
		}
		if fm == nil {
			fm = map[string]interface{}{}
		}
		return fm, strings.TrimSpace(body), nil
	}
	return map[string]interface{}{}, strings.TrimSpace(str), nil
}

func stringField(fm map[string]interface{}, key string) string {
	switch v := fm[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case time.Time:
		return v.Format("2006-01-02")
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// tagsField accepts both a list and a comma separated string.
func tagsField(fm map[string]interface{}, key string) []string {
	switch v := fm[key].(type) {
	case string:
		return FilterEmpty(strings.Split(v, ","))
	case []interface{}:
		vals := make([]string, 0, len(v))
		for _, t := range v {
			vals = append(vals, fmt.Sprint(t))
		}
		return FilterEmpty(vals)
	case []string:
		return FilterEmpty(v)
	}
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
