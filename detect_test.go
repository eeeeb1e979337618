package folio

import "testing"

func TestLanguageDetector(t *testing.T) {
	d := NewLanguageDetector(DefaultLocales())
	tests := []struct {
		text string
		want string
	}{
		{"This is a short story about writing software and the people who maintain it.", "en"},
		{"Esta é uma pequena história sobre escrever programas e as pessoas que os mantêm.", "pt"},
	}
	for _, tt := range tests {
		got, ok := d.Detect(tt.text)
		if !ok || got != tt.want {
			t.Errorf("Detect(%q) = %q, %v; want %q", tt.text, got, ok, tt.want)
		}
	}
	if _, ok := d.Detect("   "); ok {
		t.Error("blank text detected")
	}
}

func TestLanguageDetectorNeedsTwoLanguages(t *testing.T) {
	only, _ := NewLocales(English)
	if _, ok := NewLanguageDetector(only).Detect("Plenty of English words here."); ok {
		t.Error("single-language registry should not detect")
	}
}
