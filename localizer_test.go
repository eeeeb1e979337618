package folio

import (
	"testing"
	"testing/fstest"
)

func TestStringEchoesMissingKey(t *testing.T) {
	l := NewLocalizer(DefaultCatalog())
	if got := l.String("No such key", Portuguese); got != "No such key" {
		t.Errorf("missing key = %q", got)
	}
	if got := l.String("Home", Locale{ID: "de"}); got != "Home" {
		t.Errorf("missing table = %q", got)
	}
	if got := NewLocalizer(nil).String("Home", Portuguese); got != "Home" {
		t.Errorf("nil catalog = %q", got)
	}
	var nilLocalizer *Localizer
	if got := nilLocalizer.String("Home", Portuguese); got != "Home" {
		t.Errorf("nil localizer = %q", got)
	}
}

func TestStringTranslates(t *testing.T) {
	l := NewLocalizer(DefaultCatalog())
	tests := []struct {
		key  string
		loc  Locale
		want string
	}{
		{"Home", Portuguese, "Início"},
		{"Categories", Portuguese, "Categorias"},
		{"Resume", Portuguese, "Currículo"},
		{"Home", English, "Home"},
		{"Ver em Português", English, "Ver em Português"},
	}
	for _, tt := range tests {
		if got := l.String(tt.key, tt.loc); got != tt.want {
			t.Errorf("String(%q, %s) = %q, want %q", tt.key, tt.loc.ID, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	l := NewLocalizer(DefaultCatalog())
	if got := l.Format("Tagged with: %@", English, "go, rust"); got != "Tagged with: go, rust" {
		t.Errorf("en = %q", got)
	}
	if got := l.Format("Tagged with: %@", Portuguese, "go"); got != "Marcado com: go" {
		t.Errorf("pt = %q", got)
	}
	if got := l.Format("%d words; %d minutes to read", Portuguese, 120, 1); got != "120 palavras; 1 minutos de leitura" {
		t.Errorf("pt counts = %q", got)
	}
}

func TestFormatDoesNotGroupDigits(t *testing.T) {
	l := NewLocalizer(DefaultCatalog())
	if got := l.Format("%d words; %d minutes to read", English, 1234, 5); got != "1234 words; 5 minutes to read" {
		t.Errorf("en = %q", got)
	}
	if got := l.Format("%d words; %d minutes to read", Portuguese, 1234567, 4939); got != "1234567 palavras; 4939 minutos de leitura" {
		t.Errorf("pt = %q", got)
	}
}

func TestFormatUntranslatedKey(t *testing.T) {
	l := NewLocalizer(nil)
	if got := l.Format("%@ of %ld", English, "one", 2); got != "one of 2" {
		t.Errorf("got %q", got)
	}
}

func TestGoVerbs(t *testing.T) {
	tests := map[string]string{
		"Tagged with: %@":  "Tagged with: %v",
		"%ld items":        "%d items",
		"%2$@ before %1$@": "%[2]v before %[1]v",
		"100%% sure":       "100%% sure",
		"%.2f and %s":      "%.2f and %s",
		"%i and %u":        "%d and %d",
	}
	for in, want := range tests {
		if got := goVerbs(in); got != want {
			t.Errorf("goVerbs(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatPositional(t *testing.T) {
	c := NewCatalog()
	c.Set("pt", "%@ by %@", "%2$@ escreveu %1$@")
	l := NewLocalizer(c)
	if got := l.Format("%@ by %@", Portuguese, "Olá", "Ana"); got != "Ana escreveu Olá" {
		t.Errorf("got %q", got)
	}
}

func TestLoadCatalog(t *testing.T) {
	fsys := fstest.MapFS{
		"pt.yaml": {Data: []byte("locale: pt\nmessages:\n  Home: Casa\n  Extra: Adicional\n")},
		"es.yaml": {Data: []byte("messages:\n  Home: Inicio\n")},
		"README":  {Data: []byte("ignored")},
	}
	user, err := LoadCatalog(fsys)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if got := user.Locales(); len(got) != 2 || got[0] != "es" || got[1] != "pt" {
		t.Errorf("Locales = %v", got)
	}

	l := NewLocalizer(DefaultCatalog().Merge(user))
	if got := l.String("Home", Portuguese); got != "Casa" {
		t.Errorf("override = %q, want Casa", got)
	}
	if got := l.String("Categories", Portuguese); got != "Categorias" {
		t.Errorf("built-in kept = %q", got)
	}
	if got := l.String("Home", Locale{ID: "es"}); got != "Inicio" {
		t.Errorf("new locale = %q", got)
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	tests := map[string]fstest.MapFS{
		"mismatched locale": {"pt.yaml": {Data: []byte("locale: en\nmessages:\n  Home: Casa\n")}},
		"invalid yaml":      {"pt.yaml": {Data: []byte("messages: [unclosed\n")}},
		"blank key":         {"pt.yaml": {Data: []byte("messages:\n  \" \": x\n")}},
	}
	for name, fsys := range tests {
		if _, err := LoadCatalog(fsys); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadCatalogNil(t *testing.T) {
	c, err := LoadCatalog(nil)
	if err != nil {
		t.Fatalf("LoadCatalog(nil): %v", err)
	}
	if c.HasLocale("en") {
		t.Error("empty catalog reports a locale")
	}
}
