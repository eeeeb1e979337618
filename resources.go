package folio

import (
	"io/fs"
	"unicode/utf8"
)

// Resources looks up locale-specific documents such as the resume.
type Resources struct {
	fsys fs.FS
}

// NewResources returns Resources over fsys. A nil fsys has no documents.
func NewResources(fsys fs.FS) *Resources {
	return &Resources{fsys: fsys}
}

// Data returns the raw bytes of name.
func (r *Resources) Data(name string) ([]byte, bool) {
	if r == nil || r.fsys == nil {
		return nil, false
	}
	b, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return nil, false
	}
	return b, true
}

// Text returns name decoded as UTF-8, or "" when it is missing or not text.
func (r *Resources) Text(name string) string {
	b, ok := r.Data(name)
	if !ok || !utf8.Valid(b) {
		return ""
	}
	return string(b)
}

// ResumeName is the resource holding the resume written in loc.
func ResumeName(loc Locale) string {
	return "resume_" + loc.ID + ".md"
}
