package folio

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// Detector guesses the locale an article body is written in.
type Detector interface {
	Detect(text string) (localeID string, ok bool)
}

// LanguageDetector detects languages restricted to a locale registry. The
// underlying models are loaded on first use.
type LanguageDetector struct {
	once     sync.Once
	langs    []lingua.Language
	byLang   map[lingua.Language]string
	detector lingua.LanguageDetector
}

// NewLanguageDetector returns a detector choosing among the locales in l.
func NewLanguageDetector(l *Locales) *LanguageDetector {
	d := &LanguageDetector{byLang: map[lingua.Language]string{}}
	for _, loc := range l.All() {
		base, _ := loc.Tag.Base()
		iso := lingua.GetIsoCode639_1FromValue(strings.ToUpper(base.String()))
		lang := lingua.GetLanguageFromIsoCode639_1(iso)
		if lang == lingua.Unknown {
			continue
		}
		if _, dup := d.byLang[lang]; dup {
			continue
		}
		d.byLang[lang] = loc.ID
		d.langs = append(d.langs, lang)
	}
	return d
}

// Detect returns the locale id of text. It reports false when the registry
// holds fewer than two detectable languages or the text is inconclusive.
func (d *LanguageDetector) Detect(text string) (string, bool) {
	if len(d.langs) < 2 || strings.TrimSpace(text) == "" {
		return "", false
	}
	d.once.Do(func() {
		d.detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(d.langs...).
			WithMinimumRelativeDistance(0.1).
			Build()
	})
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	id, ok := d.byLang[lang]
	return id, ok
}
